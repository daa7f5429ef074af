// internal/handler/waitlist_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/repository"
)

// emailRegex matches the landing page's validation pattern exactly.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// WaitlistHandler collects signup emails from the public landing page.
type WaitlistHandler struct {
	Repo repository.WaitlistRepositoryInterface
	Log  *zap.SugaredLogger
}

func (h *WaitlistHandler) Join(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if !emailRegex.MatchString(body.Email) {
		writeError(w, http.StatusBadRequest, "Invalid email format")
		return
	}

	existing, err := h.Repo.GetByEmail(body.Email)
	if err != nil {
		h.Log.Errorw("waitlist lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "Email already on the waitlist")
		return
	}

	if _, err := h.Repo.Create(body.Email); err != nil {
		var duplicate *appErrors.ErrDuplicateEmail
		if errors.As(err, &duplicate) {
			// lost the race with a concurrent signup
			writeError(w, http.StatusBadRequest, "Email already on the waitlist")
			return
		}
		h.Log.Errorw("waitlist insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Email added to waitlist successfully"})
}

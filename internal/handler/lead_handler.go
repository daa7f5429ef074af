// internal/handler/lead_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/repository"
	"github.com/samar-703/Vyapaar/internal/service"
)

// LeadHandler serves the lead-generation surface: stored leads, outreach
// message drafting, and the monitor stub.
type LeadHandler struct {
	LeadRepo repository.LeadRepositoryInterface
	Outreach *service.OutreachService
	Log      *zap.SugaredLogger
}

// ListLeads returns every stored lead, newest first.
func (h *LeadHandler) ListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.ListAll()
	if err != nil {
		h.Log.Errorw("failed to list leads", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leads": leads, "count": len(leads)})
}

// GenerateMessage drafts one outreach message for the supplied lead.
func (h *LeadHandler) GenerateMessage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Lead          service.LeadProfile `json:"lead"`
		MatchedTopics []string            `json:"matchedTopics"`
		Template      string              `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	message, err := h.Outreach.GenerateMessage(r.Context(), body.Lead, body.MatchedTopics, body.Template)
	if err != nil {
		var missing *appErrors.ErrMissingCredential
		if errors.As(err, &missing) {
			writeError(w, http.StatusInternalServerError, missing.Error())
			return
		}
		h.Log.Errorw("message generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"status":  "success",
	})
}

// TwitterMonitor is not functional: searching other users' tweets needs a
// paid API tier. The handler validates credentials and reports that plainly
// instead of pretending to work.
func (h *LeadHandler) TwitterMonitor(w http.ResponseWriter, r *http.Request) {
	apiKey := r.Header.Get("X-API-Key")
	bearerToken := r.Header.Get("X-Bearer-Token")

	if apiKey == "" || bearerToken == "" {
		writeError(w, http.StatusUnauthorized, "API credentials are required")
		return
	}

	writeError(w, http.StatusNotImplemented, "Twitter lead monitoring requires a paid API tier and is not enabled")
}

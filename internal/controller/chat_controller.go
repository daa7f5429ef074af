// internal/controller/chat_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/ai"
	appErrors "github.com/samar-703/Vyapaar/internal/errors"
)

type ChatController struct {
	AI  ai.CompletionClient
	Log *zap.SugaredLogger
}

// Chat relays the conversation to the completion API unchanged.
func (c *ChatController) Chat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Messages []ai.Message `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	reply, err := c.AI.Complete(r.Context(), ai.Request{Messages: body.Messages})
	if err != nil {
		var missing *appErrors.ErrMissingCredential
		if errors.As(err, &missing) {
			writeError(w, http.StatusInternalServerError, missing.Error())
			return
		}
		c.Log.Errorw("chat completion failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
	Log             *zap.SugaredLogger
}

// CraftEmail drafts campaign copy for a region and optionally dispatches it.
func (c *CampaignController) CraftEmail(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Product     string `json:"product"`
		Region      string `json:"region"`
		PreviewOnly bool   `json:"previewOnly"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	result, err := c.CampaignService.DraftOrSend(r.Context(), body.Product, body.Region, body.PreviewOnly)
	if err != nil {
		var noRecipients *appErrors.ErrNoRecipients
		if errors.As(err, &noRecipients) {
			writeError(w, http.StatusNotFound, noRecipients.Error())
			return
		}
		var allFailed *appErrors.ErrAllSendsFailed
		if errors.As(err, &allFailed) {
			writeError(w, http.StatusInternalServerError, "Failed to send any emails")
			return
		}
		var missing *appErrors.ErrMissingCredential
		if errors.As(err, &missing) {
			writeError(w, http.StatusInternalServerError, missing.Error())
			return
		}

		c.Log.Errorw("craft-email failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to craft and send email")
		return
	}

	if result.PreviewOnly {
		writeJSON(w, http.StatusOK, map[string]any{
			"emailContent":   result.EmailContent,
			"recipientCount": result.RecipientCount,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "Emails sent successfully",
		"recipientCount": result.RecipientCount,
		"failedCount":    result.FailedCount,
		"totalAttempted": result.TotalAttempted,
		"results":        result.Results,
	})
}

// internal/controller/csv_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	appErrors "github.com/samar-703/Vyapaar/internal/errors"
	"github.com/samar-703/Vyapaar/internal/service"
)

type CSVController struct {
	ImportService *service.ImportService
	QueryService  *service.QueryService
	Log           *zap.SugaredLogger
}

// UploadCSV ingests the multipart "file" field. recordCount reports rows
// parsed; committedCount is alongside so callers can tell the two apart
// after a mid-batch failure.
func (c *CSVController) UploadCSV(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	result, err := c.ImportService.Import(file)
	if err != nil {
		var invalidRow *appErrors.ErrInvalidRow
		if errors.As(err, &invalidRow) {
			c.Log.Warnw("rejected CSV row", "row", invalidRow.Row)
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Invalid numerical values in CSV",
				"details": err.Error(),
			})
			return
		}

		var malformed *appErrors.ErrMalformedCSV
		if errors.As(err, &malformed) {
			c.Log.Warnw("unparseable CSV upload", "error", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":   "Failed to process CSV data",
				"details": err.Error(),
			})
			return
		}

		c.Log.Errorw("CSV import failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Database error occurred",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":        "CSV data processed successfully",
		"recordCount":    result.Parsed,
		"committedCount": result.Committed,
	})
}

// QueryCSV answers a natural-language question about the stored customers.
func (c *CSVController) QueryCSV(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	reply, err := c.QueryService.Answer(r.Context(), body.Query)
	if err != nil {
		var missing *appErrors.ErrMissingCredential
		if errors.As(err, &missing) {
			writeError(w, http.StatusInternalServerError, missing.Error())
			return
		}
		c.Log.Errorw("query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to get AI response")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reply": reply})
}

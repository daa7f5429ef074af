// internal/controller/customer_controller.go
package controller

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/samar-703/Vyapaar/internal/repository"
)

type CustomerController struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Log          *zap.SugaredLogger
}

// ListCustomers returns the full record set; the customers page and charts
// consume it without pagination.
func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerRepo.ListAll()
	if err != nil {
		c.Log.Errorw("failed to list customers", "error", err)
		writeError(w, http.StatusInternalServerError, "Database error occurred")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"customers": customers})
}

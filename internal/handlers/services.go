package handlers

import (
	"net/http"

	"github.com/sbilibin2017/nailstudio-booking/internal/models"
)

// ServicesResponse is the price catalogue
// swagger:model ServicesResponse
type ServicesResponse struct {
	// Always true
	// default: true
	Success bool `json:"success"`

	// Catalogue rows
	Services []models.ServicePrice `json:"servicios"`
}

// NewServicesHandler returns an HTTP handler serving the price catalogue.
// @Summary Price catalogue
// @Description Lists every service with its base price and whether the hands and feet discount applies.
// @Tags bookings
// @Produce json
// @Success 200 {object} handlers.ServicesResponse "Price catalogue"
// @Router /services [get]
func NewServicesHandler(catalog func() []models.ServicePrice) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ServicesResponse{
			Success:  true,
			Services: catalog(),
		})
	}
}

package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type PublicHandler struct {
	Booking *service.BookingService
}

func NewPublicHandler(booking *service.BookingService) *PublicHandler {
	return &PublicHandler{Booking: booking}
}

// GetAvailability serves the public booking page's slot picker.
func (h *PublicHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	serviceIDParam := r.URL.Query().Get("serviceId")
	if date == "" || serviceIDParam == "" {
		errors.WriteError(w, errors.ErrInvalidInput("date and serviceId are required"))
		return
	}
	serviceID, err := strconv.Atoi(serviceIDParam)
	if err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("serviceId must be a number"))
		return
	}

	availability, err := h.Booking.Availability(date, serviceID)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availability)
}

func (h *PublicHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}

	confirmation, err := h.Booking.CreateBooking(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, confirmation)
}

func (h *PublicHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Booking.ListPublicServices()
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

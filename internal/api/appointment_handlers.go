package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type AppointmentHandler struct {
	Service *service.AppointmentService
}

func NewAppointmentHandler(svc *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	barberID := 0
	if param := r.URL.Query().Get("barberId"); param != "" {
		id, err := strconv.Atoi(param)
		if err != nil {
			errors.WriteError(w, errors.ErrInvalidInput("barberId must be a number"))
			return
		}
		barberID = id
	}

	appointments, err := h.Service.ListAppointments(date, barberID, status)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req entities.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}

	appointment, err := h.Service.CreateAppointment(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, appointment)
}

func (h *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	var req entities.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}

	appointment, err := h.Service.UpdateAppointment(id, req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteAppointment(id); err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment deleted"})
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, errors.ErrInvalidInput("Invalid ID")
	}
	return id, nil
}

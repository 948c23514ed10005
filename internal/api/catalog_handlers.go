package api

import (
	"encoding/json"
	"net/http"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) ListBarbers(w http.ResponseWriter, r *http.Request) {
	barbers, err := h.Service.ListBarbers()
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, barbers)
}

func (h *CatalogHandler) GetBarber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	barber, err := h.Service.GetBarberDetail(id)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, barber)
}

func (h *CatalogHandler) CreateBarber(w http.ResponseWriter, r *http.Request) {
	var req entities.BarberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	barber, err := h.Service.CreateBarber(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, barber)
}

func (h *CatalogHandler) UpdateBarber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	var req entities.BarberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	barber, err := h.Service.UpdateBarber(id, req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, barber)
}

func (h *CatalogHandler) DeleteBarber(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	if err := h.Service.DeactivateBarber(id); err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Barber deactivated"})
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.ListServices()
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req entities.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	svc, err := h.Service.CreateService(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	var req entities.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	svc, err := h.Service.UpdateService(id, req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteService(id); err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Service deleted"})
}

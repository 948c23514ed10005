package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type ClientHandler struct {
	Service *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.Service.SearchClients(search, page, limit)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	client, err := h.Service.GetClientDetail(id)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req entities.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	client, err := h.Service.CreateClient(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	var req entities.ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	client, err := h.Service.UpdateClient(id, req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteClient(id); err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Client deleted"})
}

package api

import (
	"encoding/json"
	"net/http"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type InventoryHandler struct {
	Service *service.InventoryService
}

func NewInventoryHandler(svc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{Service: svc}
}

func (h *InventoryHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Service.ListProducts(r.URL.Query().Get("search"))
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *InventoryHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req entities.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	product, err := h.Service.CreateProduct(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct edits the product, or applies a stock movement when the body
// carries one, mirroring how the dashboard uses a single endpoint for both.
func (h *InventoryHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}

	var body struct {
		entities.ProductRequest
		Movement *entities.StockMovementRequest `json:"movement"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}

	var product *entities.ProductResponse
	if body.Movement != nil {
		product, err = h.Service.ApplyMovement(id, *body.Movement)
	} else {
		product, err = h.Service.UpdateProduct(id, body.ProductRequest)
	}
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}

func (h *InventoryHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	if err := h.Service.DeleteProduct(id); err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

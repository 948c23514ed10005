package api

import (
	"encoding/json"
	"net/http"

	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/service"
)

type FinancialHandler struct {
	Cash      *service.CashService
	Dashboard *service.DashboardService
}

func NewFinancialHandler(cash *service.CashService, dashboard *service.DashboardService) *FinancialHandler {
	return &FinancialHandler{Cash: cash, Dashboard: dashboard}
}

func (h *FinancialHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")

	report, err := h.Cash.GetFinancialReport(startDate, endDate)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *FinancialHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req entities.TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errors.WriteError(w, errors.ErrInvalidInput("Invalid request body"))
		return
	}
	tx, err := h.Cash.CreateTransaction(req)
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":      tx.ID,
		"message": "Transaction recorded",
	})
}

func (h *FinancialHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Dashboard.GetStats()
	if err != nil {
		errors.WriteError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

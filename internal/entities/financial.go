package entities

import "time"

type TransactionRequest struct {
	Type          string  `json:"type"` // "income" or "expense"
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	BarberID      int     `json:"barberId,omitempty"`
}

type TransactionResponse struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	BarberName    string    `json:"barberName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type FinancialSummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

type FinancialReport struct {
	Transactions []TransactionResponse `json:"transactions"`
	Summary      FinancialSummary      `json:"summary"`
}

package service

import (
	"database/sql"
	"fmt"
	"time"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/repository"
)

type CashService struct {
	Repo *repository.CashRepository
}

func NewCashService(repo *repository.CashRepository) *CashService {
	return &CashService{Repo: repo}
}

// GetFinancialReport returns the transactions in the range, newest first,
// with the income/expense/profit totals.
func (s *CashService) GetFinancialReport(startDate, endDate string) (*entities.FinancialReport, error) {
	if (startDate == "") != (endDate == "") {
		return nil, errors.ErrInvalidInput("startDate and endDate must be provided together")
	}

	transactions, err := s.Repo.ListTransactions(startDate, endDate)
	if err != nil {
		return nil, err
	}

	var summary entities.FinancialSummary
	for _, t := range transactions {
		switch t.Type {
		case "income":
			summary.Income += t.Amount
		case "expense":
			summary.Expenses += t.Amount
		}
	}
	summary.Profit = summary.Income - summary.Expenses

	return &entities.FinancialReport{Transactions: transactions, Summary: summary}, nil
}

// CreateTransaction posts a manual transaction to today's register, opening
// the register when needed.
func (s *CashService) CreateTransaction(req entities.TransactionRequest) (*db.Transaction, error) {
	if req.Type != "income" && req.Type != "expense" {
		return nil, errors.ErrInvalidInput("type must be income or expense")
	}
	if req.Amount <= 0 {
		return nil, errors.ErrInvalidInput("amount must be positive")
	}

	today := time.Now().Format("2006-01-02")
	register, err := s.Repo.GetOrOpenRegister(today)
	if err != nil {
		return nil, err
	}

	tx := &db.Transaction{
		CashRegisterID: register.ID,
		Type:           req.Type,
		Category:       req.Category,
		Description:    req.Description,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
	}
	if req.BarberID != 0 {
		tx.BarberID = sql.NullInt64{Int64: int64(req.BarberID), Valid: true}
	}
	if err := s.Repo.CreateTransaction(tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// RecordServiceIncome posts a completed appointment's price as income.
func (s *CashService) RecordServiceIncome(date string, appt *entities.AppointmentResponse, paymentMethod string) error {
	register, err := s.Repo.GetOrOpenRegister(date)
	if err != nil {
		return err
	}

	tx := &db.Transaction{
		CashRegisterID: register.ID,
		BarberID:       sql.NullInt64{Int64: int64(appt.BarberID), Valid: true},
		Type:           "income",
		Category:       "service",
		Description:    fmt.Sprintf("%s - %s", appt.ServiceName, appt.ClientName),
		Amount:         appt.Price,
		PaymentMethod:  paymentMethod,
	}
	return s.Repo.CreateTransaction(tx)
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"barberpro/internal/db"
	"barberpro/internal/entities"
)

type CashRepository struct {
	DB *sql.DB
}

func NewCashRepository(database *sql.DB) *CashRepository {
	return &CashRepository{DB: database}
}

// GetOrOpenRegister returns the cash register of the date, opening one with a
// zero balance when none exists yet.
func (r *CashRepository) GetOrOpenRegister(date string) (*db.CashRegister, error) {
	var reg db.CashRegister
	query := `
		SELECT id, date, opening_balance, closing_balance, status, created_at
		FROM cash_registers WHERE date = $1`
	err := r.DB.QueryRow(query, date).Scan(
		&reg.ID, &reg.Date, &reg.OpeningBalance, &reg.ClosingBalance, &reg.Status, &reg.CreatedAt,
	)
	if err == nil {
		return &reg, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("error querying cash register: %w", err)
	}

	query = `
		INSERT INTO cash_registers (date, opening_balance, status, created_at)
		VALUES ($1, 0, 'open', NOW())
		RETURNING id, date, opening_balance, closing_balance, status, created_at`
	err = r.DB.QueryRow(query, date).Scan(
		&reg.ID, &reg.Date, &reg.OpeningBalance, &reg.ClosingBalance, &reg.Status, &reg.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening cash register for %s: %w", date, err)
	}
	return &reg, nil
}

func (r *CashRepository) CreateTransaction(t *db.Transaction) error {
	query := `
		INSERT INTO transactions (cash_register_id, barber_id, type, category, description, amount, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at`
	return r.DB.QueryRow(query, t.CashRegisterID, t.BarberID, t.Type, t.Category,
		t.Description, t.Amount, t.PaymentMethod).
		Scan(&t.ID, &t.CreatedAt)
}

// ListTransactions returns transactions newest first, optionally restricted to
// a [startDate, endDate] day range.
func (r *CashRepository) ListTransactions(startDate, endDate string) ([]entities.TransactionResponse, error) {
	query := `
		SELECT t.id, t.type, t.category, t.description, t.amount, t.payment_method,
		       COALESCE(b.name, ''), t.created_at
		FROM transactions t
		LEFT JOIN barbers b ON t.barber_id = b.id`
	var args []interface{}
	if startDate != "" && endDate != "" {
		query += ` WHERE t.created_at >= $1::date AND t.created_at < $2::date + interval '1 day'`
		args = append(args, startDate, endDate)
	}
	query += ` ORDER BY t.created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	var txs []entities.TransactionResponse
	for rows.Next() {
		var t entities.TransactionResponse
		if err := rows.Scan(&t.ID, &t.Type, &t.Category, &t.Description, &t.Amount,
			&t.PaymentMethod, &t.BarberName, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

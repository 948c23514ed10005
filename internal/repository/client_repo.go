package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"barberpro/internal/db"
)

type ClientRepository struct {
	DB *sql.DB
}

func NewClientRepository(database *sql.DB) *ClientRepository {
	return &ClientRepository{DB: database}
}

const clientColumns = `id, name, phone, whatsapp, email, birth_date, notes, total_visits, loyalty_points, created_at, updated_at`

func (r *ClientRepository) SearchClients(search string, page, limit int) ([]db.Client, int64, error) {
	where := ""
	var args []interface{}
	if search != "" {
		args = append(args, "%"+search+"%")
		where = ` WHERE name ILIKE $1 OR phone ILIKE $1 OR whatsapp ILIKE $1`
	}

	var total int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM clients`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting clients: %w", err)
	}

	args = append(args, limit, (page-1)*limit)
	query := fmt.Sprintf(`SELECT %s FROM clients%s ORDER BY name LIMIT $%d OFFSET $%d`,
		clientColumns, where, len(args)-1, len(args))

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying clients: %w", err)
	}
	defer rows.Close()

	var clients []db.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning client: %w", err)
		}
		clients = append(clients, *c)
	}
	return clients, total, rows.Err()
}

func (r *ClientRepository) GetClient(id int) (*db.Client, error) {
	row := r.DB.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE id = $1`, id)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying client %d: %w", id, err)
	}
	return c, nil
}

func (r *ClientRepository) GetClientByPhone(phone string) (*db.Client, error) {
	row := r.DB.QueryRow(`SELECT `+clientColumns+` FROM clients WHERE phone = $1`, phone)
	c, err := scanClient(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying client by phone: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) CreateClient(c *db.Client) error {
	query := `
		INSERT INTO clients (name, phone, whatsapp, email, birth_date, notes, total_visits, loyalty_points, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query, c.Name, c.Phone, c.Whatsapp, c.Email, c.BirthDate,
		c.Notes, c.TotalVisits, c.LoyaltyPoints).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (r *ClientRepository) UpdateClient(c *db.Client) error {
	query := `
		UPDATE clients
		SET name = $1, phone = $2, whatsapp = $3, email = $4, birth_date = $5, notes = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`
	err := r.DB.QueryRow(query, c.Name, c.Phone, c.Whatsapp, c.Email, c.BirthDate, c.Notes, c.ID).
		Scan(&c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("client %d not found", c.ID)
	}
	return err
}

func (r *ClientRepository) DeleteClient(id int) error {
	_, err := r.DB.Exec(`DELETE FROM clients WHERE id = $1`, id)
	return err
}

// RecordVisit bumps the loyalty counters when a booking is created.
func (r *ClientRepository) RecordVisit(id int) error {
	_, err := r.DB.Exec(`
		UPDATE clients
		SET total_visits = total_visits + 1, loyalty_points = loyalty_points + 10, updated_at = NOW()
		WHERE id = $1`, id)
	return err
}

func scanClient(row rowScanner) (*db.Client, error) {
	var c db.Client
	var whatsapp, email, birthDate, notes sql.NullString
	err := row.Scan(&c.ID, &c.Name, &c.Phone, &whatsapp, &email, &birthDate, &notes,
		&c.TotalVisits, &c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Whatsapp = whatsapp.String
	c.Email = email.String
	c.BirthDate = birthDate.String
	c.Notes = notes.String
	return &c, nil
}

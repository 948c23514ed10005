package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"barberpro/internal/db"
)

type CatalogRepository struct {
	DB *sql.DB
}

func NewCatalogRepository(database *sql.DB) *CatalogRepository {
	return &CatalogRepository{DB: database}
}

func (r *CatalogRepository) GetService(id int) (*db.Service, error) {
	var svc db.Service
	query := `
		SELECT id, name, category, duration_minutes, price, commission, active, created_at, updated_at
		FROM services WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&svc.ID, &svc.Name, &svc.Category, &svc.DurationMinutes, &svc.Price,
		&svc.Commission, &svc.Active, &svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying service %d: %w", id, err)
	}
	return &svc, nil
}

func (r *CatalogRepository) ListServices(activeOnly bool) ([]db.Service, error) {
	query := `
		SELECT id, name, category, duration_minutes, price, commission, active, created_at, updated_at
		FROM services`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY category, name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying services: %w", err)
	}
	defer rows.Close()

	var services []db.Service
	for rows.Next() {
		var svc db.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Category, &svc.DurationMinutes,
			&svc.Price, &svc.Commission, &svc.Active, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning service: %w", err)
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (r *CatalogRepository) CreateService(svc *db.Service) error {
	query := `
		INSERT INTO services (name, category, duration_minutes, price, commission, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at`
	return r.DB.QueryRow(query, svc.Name, svc.Category, svc.DurationMinutes, svc.Price, svc.Commission).
		Scan(&svc.ID, &svc.Active, &svc.CreatedAt, &svc.UpdatedAt)
}

func (r *CatalogRepository) UpdateService(svc *db.Service) error {
	query := `
		UPDATE services
		SET name = $1, category = $2, duration_minutes = $3, price = $4, commission = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`
	err := r.DB.QueryRow(query, svc.Name, svc.Category, svc.DurationMinutes, svc.Price, svc.Commission, svc.ID).
		Scan(&svc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("service %d not found", svc.ID)
	}
	return err
}

func (r *CatalogRepository) DeleteService(id int) error {
	_, err := r.DB.Exec(`DELETE FROM services WHERE id = $1`, id)
	return err
}

func (r *CatalogRepository) GetActiveBarbers() ([]db.Barber, error) {
	query := `
		SELECT id, name, phone, email, specialties, commission, active, created_at, updated_at
		FROM barbers WHERE active = TRUE ORDER BY name`
	return r.queryBarbers(query)
}

func (r *CatalogRepository) GetBarber(id int) (*db.Barber, error) {
	var b db.Barber
	query := `
		SELECT id, name, phone, email, specialties, commission, active, created_at, updated_at
		FROM barbers WHERE id = $1`
	err := r.DB.QueryRow(query, id).Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email, &b.Specialties, &b.Commission,
		&b.Active, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying barber %d: %w", id, err)
	}
	return &b, nil
}

func (r *CatalogRepository) CreateBarber(b *db.Barber) error {
	query := `
		INSERT INTO barbers (name, phone, email, specialties, commission, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at`
	return r.DB.QueryRow(query, b.Name, b.Phone, b.Email, b.Specialties, b.Commission).
		Scan(&b.ID, &b.Active, &b.CreatedAt, &b.UpdatedAt)
}

func (r *CatalogRepository) UpdateBarber(b *db.Barber) error {
	query := `
		UPDATE barbers
		SET name = $1, phone = $2, email = $3, specialties = $4, commission = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`
	err := r.DB.QueryRow(query, b.Name, b.Phone, b.Email, b.Specialties, b.Commission, b.ID).
		Scan(&b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("barber %d not found", b.ID)
	}
	return err
}

// DeactivateBarber is a soft delete so history keeps its barber references.
func (r *CatalogRepository) DeactivateBarber(id int) error {
	_, err := r.DB.Exec(`UPDATE barbers SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *CatalogRepository) queryBarbers(query string, args ...interface{}) ([]db.Barber, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying barbers: %w", err)
	}
	defer rows.Close()

	var barbers []db.Barber
	for rows.Next() {
		var b db.Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Phone, &b.Email, &b.Specialties,
			&b.Commission, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning barber: %w", err)
		}
		barbers = append(barbers, b)
	}
	return barbers, rows.Err()
}

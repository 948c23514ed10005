package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/schedule"
)

const appointmentColumns = `
	a.id, a.date, a.time, a.status,
	a.client_id, c.name, c.phone,
	a.service_id, s.name,
	a.barber_id, b.name,
	a.price, a.booked_duration, a.payment_method, a.created_at, a.updated_at`

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(database *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: database}
}

// GetDaySchedule returns every non-cancelled appointment of the date in the
// shape the availability calculator consumes. booked_duration is the duration
// stored at booking time, never the service's current duration.
func (r *AppointmentRepository) GetDaySchedule(date string) ([]schedule.Appointment, error) {
	query := `
		SELECT barber_id, time, booked_duration
		FROM appointments
		WHERE date = $1 AND status <> 'cancelled'
		ORDER BY time`
	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying day schedule: %w", err)
	}
	defer rows.Close()

	var appts []schedule.Appointment
	for rows.Next() {
		var a schedule.Appointment
		if err := rows.Scan(&a.BarberID, &a.Time, &a.DurationMinutes); err != nil {
			return nil, fmt.Errorf("error scanning day schedule row: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

// HasConflict reports whether a non-cancelled appointment already exists for
// the same barber, date and time. This is the authoritative double-booking
// guard; availability results are advisory.
func (r *AppointmentRepository) HasConflict(date, timeOfDay string, barberID int) (bool, error) {
	var id int
	query := `
		SELECT id FROM appointments
		WHERE date = $1 AND time = $2 AND barber_id = $3 AND status <> 'cancelled'
		LIMIT 1`
	err := r.DB.QueryRow(query, date, timeOfDay, barberID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error checking appointment conflict: %w", err)
	}
	return true, nil
}

func (r *AppointmentRepository) CreateAppointment(a *db.Appointment) error {
	query := `
		INSERT INTO appointments
		(date, time, status, client_id, service_id, barber_id, price, booked_duration,
		 payment_method, stripe_session_id, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		a.Date, a.Time, a.Status, a.ClientID, a.ServiceID, a.BarberID,
		a.Price, a.BookedDuration, a.PaymentMethod, a.StripeSessionID, a.PaymentStatus,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AppointmentRepository) GetAppointment(id int) (*entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.id = $1`
	row := r.DB.QueryRow(query, id)
	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying appointment %d: %w", id, err)
	}
	return appt, nil
}

func (r *AppointmentRepository) ListAppointments(date string, barberID int, status string) ([]entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE 1=1`
	var args []interface{}
	if date != "" {
		args = append(args, date)
		query += fmt.Sprintf(" AND a.date = $%d", len(args))
	}
	if barberID != 0 {
		args = append(args, barberID)
		query += fmt.Sprintf(" AND a.barber_id = $%d", len(args))
	}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND a.status = $%d", len(args))
	}
	query += ` ORDER BY a.date, a.time`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	var appts []entities.AppointmentResponse
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		appts = append(appts, *appt)
	}
	return appts, rows.Err()
}

// ListClientAppointments returns the client's most recent appointments.
func (r *AppointmentRepository) ListClientAppointments(clientID, limit int) ([]entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.client_id = $1
		ORDER BY a.date DESC, a.time DESC
		LIMIT $2`
	rows, err := r.DB.Query(query, clientID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying client appointments: %w", err)
	}
	defer rows.Close()

	var appts []entities.AppointmentResponse
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning client appointment: %w", err)
		}
		appts = append(appts, *appt)
	}
	return appts, rows.Err()
}

func (r *AppointmentRepository) UpdateAppointment(id int, req entities.AppointmentRequest) error {
	query := `
		UPDATE appointments
		SET date = $1, time = $2, client_id = $3, service_id = $4, barber_id = $5,
		    status = $6, payment_method = $7, updated_at = NOW()
		WHERE id = $8`
	result, err := r.DB.Exec(query, req.Date, req.Time, req.ClientID, req.ServiceID,
		req.BarberID, req.Status, req.PaymentMethod, id)
	if err != nil {
		return fmt.Errorf("error updating appointment %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *AppointmentRepository) UpdateAppointmentStatus(id int, status string) error {
	_, err := r.DB.Exec(`UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	return err
}

func (r *AppointmentRepository) DeleteAppointment(id int) error {
	_, err := r.DB.Exec(`DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func (r *AppointmentRepository) GetAppointmentByStripeSessionID(sessionID string) (*entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.stripe_session_id = $1`
	row := r.DB.QueryRow(query, sessionID)
	appt, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment for session '%s' not found: %w", sessionID, err)
		}
		return nil, fmt.Errorf("error querying appointment by session: %w", err)
	}
	return appt, nil
}

func (r *AppointmentRepository) UpdateStatusBySessionID(sessionID, status, paymentStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE appointments SET status = $1, payment_status = $2, updated_at = NOW()
		WHERE stripe_session_id = $3`,
		status, paymentStatus, sessionID)
	return err
}

// GetPaymentInfo returns the Stripe session and payment status of an
// appointment, empty strings when it was not paid online.
func (r *AppointmentRepository) GetPaymentInfo(id int) (string, string, error) {
	var sessionID, paymentStatus sql.NullString
	err := r.DB.QueryRow(`
		SELECT stripe_session_id, payment_status FROM appointments WHERE id = $1`, id).
		Scan(&sessionID, &paymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("error querying payment info for appointment %d: %w", id, err)
	}
	return sessionID.String, paymentStatus.String, nil
}

func (r *AppointmentRepository) MarkRefunded(id int) error {
	_, err := r.DB.Exec(`
		UPDATE appointments SET payment_status = 'refunded', updated_at = NOW()
		WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*entities.AppointmentResponse, error) {
	var a entities.AppointmentResponse
	var paymentMethod sql.NullString
	err := row.Scan(
		&a.ID, &a.Date, &a.Time, &a.Status,
		&a.ClientID, &a.ClientName, &a.ClientPhone,
		&a.ServiceID, &a.ServiceName,
		&a.BarberID, &a.BarberName,
		&a.Price, &a.BookedDuration, &paymentMethod, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.PaymentMethod = paymentMethod.String
	return &a, nil
}

package repository

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"

	"barberpro/internal/entities"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// ReminderTarget is one appointment due a reminder, with the contact details
// already joined in.
type ReminderTarget struct {
	Appointment entities.AppointmentResponse
	ClientEmail string
}

// GetAppointmentsForReminder returns pending and confirmed appointments of
// the given date.
func (r *JobRepository) GetAppointmentsForReminder(date string) ([]ReminderTarget, error) {
	query := `
		SELECT ` + appointmentColumns + `, COALESCE(c.email, '')
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.date = $1 AND a.status IN ('pending', 'confirmed')
		ORDER BY a.time`
	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying reminder appointments: %w", err)
	}
	defer rows.Close()

	var targets []ReminderTarget
	for rows.Next() {
		var t ReminderTarget
		var a entities.AppointmentResponse
		var paymentMethod sql.NullString
		err := rows.Scan(
			&a.ID, &a.Date, &a.Time, &a.Status,
			&a.ClientID, &a.ClientName, &a.ClientPhone,
			&a.ServiceID, &a.ServiceName,
			&a.BarberID, &a.BarberName,
			&a.Price, &a.BookedDuration, &paymentMethod, &a.CreatedAt, &a.UpdatedAt,
			&t.ClientEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reminder appointment: %w", err)
		}
		a.PaymentMethod = paymentMethod.String
		t.Appointment = a
		targets = append(targets, t)
	}
	return targets, rows.Err()
}

// GetStaleOnlineBookingIDs returns online-payment appointments still pending
// payment after the cutoff.
func (r *JobRepository) GetStaleOnlineBookingIDs(cutoffMinutes int) ([]int, error) {
	query := `
		SELECT id FROM appointments
		WHERE payment_method = 'online'
		  AND payment_status = 'pending'
		  AND status = 'pending'
		  AND created_at < NOW() - $1 * interval '1 minute'`
	rows, err := r.DB.Query(query, cutoffMinutes)
	if err != nil {
		return nil, fmt.Errorf("error querying stale online bookings: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning appointment ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateAppointmentStatuses sets the status for a batch of appointments.
func (r *JobRepository) UpdateAppointmentStatuses(ids []int, newStatus string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error updating appointment statuses: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
	} else {
		log.Printf("Updated status for %d appointments to '%s'", rowsAffected, newStatus)
	}
	return nil
}

// CloseStaleRegisters closes cash registers of past days that were left open,
// writing the closing balance from the register's income minus expenses.
func (r *JobRepository) CloseStaleRegisters() (int64, error) {
	query := `
		UPDATE cash_registers cr
		SET status = 'closed',
		    closing_balance = cr.opening_balance + COALESCE((
				SELECT SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE -t.amount END)
				FROM transactions t
				WHERE t.cash_register_id = cr.id
		    ), 0)
		WHERE cr.status = 'open' AND cr.date < CURRENT_DATE::text`
	result, err := r.DB.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("error closing stale cash registers: %w", err)
	}
	return result.RowsAffected()
}

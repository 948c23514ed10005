package repository

import (
	"database/sql"
	"fmt"

	"barberpro/internal/entities"
)

// ReportRepository serves the read-only aggregates behind the dashboard.
type ReportRepository struct {
	DB *sql.DB
}

func NewReportRepository(database *sql.DB) *ReportRepository {
	return &ReportRepository{DB: database}
}

func (r *ReportRepository) IncomeForDay(date string) (float64, error) {
	var total float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE type = 'income' AND created_at::date = $1::date`, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing day income: %w", err)
	}
	return total, nil
}

func (r *ReportRepository) IncomeSince(date string) (float64, error) {
	var total float64
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE type = 'income' AND created_at >= $1::date`, date).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error summing income: %w", err)
	}
	return total, nil
}

func (r *ReportRepository) CountAppointments(date, status string) (int, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE date = $1`
	args := []interface{}{date}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return count, nil
}

func (r *ReportRepository) CountAppointmentsSince(date, status string) (int, error) {
	query := `SELECT COUNT(*) FROM appointments WHERE date >= $1`
	args := []interface{}{date}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	var count int
	if err := r.DB.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting appointments: %w", err)
	}
	return count, nil
}

// TopServices ranks completed appointments since the date by booking count.
func (r *ReportRepository) TopServices(since string, limit int) ([]entities.ServiceRank, error) {
	rows, err := r.DB.Query(`
		SELECT s.name, COUNT(*), COALESCE(SUM(a.price), 0)
		FROM appointments a
		JOIN services s ON a.service_id = s.id
		WHERE a.date >= $1 AND a.status = 'completed'
		GROUP BY s.name
		ORDER BY COUNT(*) DESC
		LIMIT $2`, since, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top services: %w", err)
	}
	defer rows.Close()

	var ranks []entities.ServiceRank
	for rows.Next() {
		var rank entities.ServiceRank
		if err := rows.Scan(&rank.Name, &rank.Count, &rank.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning service rank: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}

// TopBarbers ranks completed appointments since the date by revenue.
func (r *ReportRepository) TopBarbers(since string) ([]entities.BarberRank, error) {
	rows, err := r.DB.Query(`
		SELECT b.name, COUNT(*), COALESCE(SUM(a.price), 0)
		FROM appointments a
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.date >= $1 AND a.status = 'completed'
		GROUP BY b.name
		ORDER BY SUM(a.price) DESC`, since)
	if err != nil {
		return nil, fmt.Errorf("error querying top barbers: %w", err)
	}
	defer rows.Close()

	var ranks []entities.BarberRank
	for rows.Next() {
		var rank entities.BarberRank
		if err := rows.Scan(&rank.Name, &rank.Count, &rank.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning barber rank: %w", err)
		}
		ranks = append(ranks, rank)
	}
	return ranks, rows.Err()
}

// RevenueByDay returns one row per calendar day of the window, zero-filled for
// days without income.
func (r *ReportRepository) RevenueByDay(days int) ([]entities.DailyRevenue, error) {
	rows, err := r.DB.Query(`
		SELECT gs.day::date::text, COALESCE(SUM(t.amount), 0)
		FROM generate_series(
			CURRENT_DATE - ($1 - 1) * interval '1 day',
			CURRENT_DATE,
			interval '1 day'
		) AS gs(day)
		LEFT JOIN transactions t
			ON t.type = 'income'
			AND t.created_at::date = gs.day::date
		GROUP BY gs.day
		ORDER BY gs.day`, days)
	if err != nil {
		return nil, fmt.Errorf("error querying revenue by day: %w", err)
	}
	defer rows.Close()

	var revenue []entities.DailyRevenue
	for rows.Next() {
		var d entities.DailyRevenue
		if err := rows.Scan(&d.Date, &d.Revenue); err != nil {
			return nil, fmt.Errorf("error scanning daily revenue: %w", err)
		}
		revenue = append(revenue, d)
	}
	return revenue, rows.Err()
}

// PeakHours counts completed appointments per starting hour, busiest first.
func (r *ReportRepository) PeakHours() ([]entities.HourCount, error) {
	rows, err := r.DB.Query(`
		SELECT substring(time from 1 for 2) || ':00' AS hour, COUNT(*)
		FROM appointments
		WHERE status = 'completed'
		GROUP BY hour
		ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying peak hours: %w", err)
	}
	defer rows.Close()

	var hours []entities.HourCount
	for rows.Next() {
		var h entities.HourCount
		if err := rows.Scan(&h.Hour, &h.Count); err != nil {
			return nil, fmt.Errorf("error scanning hour count: %w", err)
		}
		hours = append(hours, h)
	}
	return hours, rows.Err()
}

func (r *ReportRepository) CountClients() (int64, error) {
	var count int64
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting clients: %w", err)
	}
	return count, nil
}

// MonthlyBarberAppointments returns the barber's completed appointments since
// the date, newest first, for the barber detail stats.
func (r *ReportRepository) MonthlyBarberAppointments(barberID int, since string) ([]entities.AppointmentResponse, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments a
		JOIN clients c ON a.client_id = c.id
		JOIN services s ON a.service_id = s.id
		JOIN barbers b ON a.barber_id = b.id
		WHERE a.barber_id = $1 AND a.date >= $2 AND a.status = 'completed'
		ORDER BY a.date DESC, a.time DESC`
	rows, err := r.DB.Query(query, barberID, since)
	if err != nil {
		return nil, fmt.Errorf("error querying barber appointments: %w", err)
	}
	defer rows.Close()

	var appts []entities.AppointmentResponse
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning barber appointment: %w", err)
		}
		appts = append(appts, *appt)
	}
	return appts, rows.Err()
}

package service

import (
	"math"
	"time"

	"barberpro/internal/entities"
	"barberpro/internal/repository"
)

type DashboardService struct {
	Repo *repository.ReportRepository
}

func NewDashboardService(repo *repository.ReportRepository) *DashboardService {
	return &DashboardService{Repo: repo}
}

// GetStats assembles the dashboard numbers: revenue for today and the month,
// appointment counts, cancellation rate, rankings, the 15 day revenue series
// and the busiest hours.
func (s *DashboardService) GetStats() (*entities.DashboardStats, error) {
	today := time.Now().Format("2006-01-02")
	firstOfMonth := today[:7] + "-01"

	stats := &entities.DashboardStats{}
	var err error

	if stats.TodayRevenue, err = s.Repo.IncomeForDay(today); err != nil {
		return nil, err
	}
	if stats.MonthRevenue, err = s.Repo.IncomeSince(firstOfMonth); err != nil {
		return nil, err
	}
	if stats.TodayAppointments, err = s.Repo.CountAppointments(today, ""); err != nil {
		return nil, err
	}
	if stats.CompletedToday, err = s.Repo.CountAppointments(today, StatusCompleted); err != nil {
		return nil, err
	}

	cancelledMonth, err := s.Repo.CountAppointmentsSince(firstOfMonth, StatusCancelled)
	if err != nil {
		return nil, err
	}
	totalMonth, err := s.Repo.CountAppointmentsSince(firstOfMonth, "")
	if err != nil {
		return nil, err
	}
	if totalMonth > 0 {
		rate := float64(cancelledMonth) / float64(totalMonth) * 100
		stats.CancellationRate = math.Round(rate*10) / 10
	}

	if stats.TopServices, err = s.Repo.TopServices(firstOfMonth, 5); err != nil {
		return nil, err
	}
	if stats.TopBarbers, err = s.Repo.TopBarbers(firstOfMonth); err != nil {
		return nil, err
	}
	if stats.RevenueByDay, err = s.Repo.RevenueByDay(15); err != nil {
		return nil, err
	}
	if stats.PeakHours, err = s.Repo.PeakHours(); err != nil {
		return nil, err
	}
	if stats.TotalClients, err = s.Repo.CountClients(); err != nil {
		return nil, err
	}

	return stats, nil
}

package service

import (
	"fmt"
	"log"
	"time"

	"barberpro/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	Sender *SenderService
}

func NewJobService(repo *repository.JobRepository, sender *SenderService) *JobService {
	return &JobService{Repo: repo, Sender: sender}
}

// SendAppointmentReminders notifies every client with a pending or confirmed
// appointment tomorrow.
func (s *JobService) SendAppointmentReminders() error {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	log.Printf("Cron Job: sending reminders for appointments on %s...", tomorrow)

	targets, err := s.Repo.GetAppointmentsForReminder(tomorrow)
	if err != nil {
		return fmt.Errorf("cron job: failed to get appointments for reminder: %w", err)
	}
	if len(targets) == 0 {
		log.Println("Cron Job: no appointments to remind.")
		return nil
	}

	for _, target := range targets {
		s.Sender.SendReminder(target.Appointment, target.ClientEmail)
	}
	log.Printf("Cron Job: sent %d appointment reminders.", len(targets))
	return nil
}

// CloseStaleCashRegisters closes registers of past days left open.
func (s *JobService) CloseStaleCashRegisters() error {
	closed, err := s.Repo.CloseStaleRegisters()
	if err != nil {
		return fmt.Errorf("cron job: failed to close stale cash registers: %w", err)
	}
	if closed > 0 {
		log.Printf("Cron Job: closed %d stale cash registers.", closed)
	}
	return nil
}

// CancelStaleOnlineBookings frees slots held by online bookings whose
// checkout was never completed.
func (s *JobService) CancelStaleOnlineBookings(cutoffMinutes int) error {
	ids, err := s.Repo.GetStaleOnlineBookingIDs(cutoffMinutes)
	if err != nil {
		return fmt.Errorf("cron job: failed to get stale online bookings: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	log.Printf("Cron Job: cancelling %d stale online bookings. IDs: %v", len(ids), ids)
	if err := s.Repo.UpdateAppointmentStatuses(ids, StatusCancelled); err != nil {
		return fmt.Errorf("cron job: failed to cancel stale online bookings: %w", err)
	}
	return nil
}

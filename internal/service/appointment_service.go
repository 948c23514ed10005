package service

import (
	"database/sql"
	"log"
	"time"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/repository"
	"barberpro/internal/schedule"
)

type AppointmentService struct {
	Hours   schedule.Hours
	Repo    *repository.AppointmentRepository
	Catalog *repository.CatalogRepository
	Clients *repository.ClientRepository
	Cash    *CashService
	Stripe  *StripeService
}

func NewAppointmentService(repo *repository.AppointmentRepository, catalog *repository.CatalogRepository, clients *repository.ClientRepository, cash *CashService, stripeSvc *StripeService) *AppointmentService {
	return &AppointmentService{
		Hours:   schedule.DefaultHours(),
		Repo:    repo,
		Catalog: catalog,
		Clients: clients,
		Cash:    cash,
		Stripe:  stripeSvc,
	}
}

func (s *AppointmentService) ListAppointments(date string, barberID int, status string) ([]entities.AppointmentResponse, error) {
	return s.Repo.ListAppointments(date, barberID, status)
}

// CreateAppointment is the dashboard booking path: same conflict guard as the
// public flow, but the client already exists.
func (s *AppointmentService) CreateAppointment(req entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !s.Hours.OnGrid(req.Time) {
		return nil, errors.ErrInvalidInput("time must be a valid slot start")
	}
	if req.ClientID <= 0 || req.ServiceID <= 0 || req.BarberID <= 0 {
		return nil, errors.ErrInvalidInput("clientId, serviceId and barberId are required")
	}

	svc, err := s.Catalog.GetService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.ErrNotFound("Service not found")
	}

	conflict, err := s.Repo.HasConflict(req.Date, req.Time, req.BarberID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errors.ErrConflict("Time slot conflict")
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	appointment := &db.Appointment{
		Date:           req.Date,
		Time:           req.Time,
		Status:         status,
		ClientID:       req.ClientID,
		ServiceID:      req.ServiceID,
		BarberID:       req.BarberID,
		Price:          svc.Price,
		BookedDuration: svc.DurationMinutes,
		PaymentMethod:  req.PaymentMethod,
	}
	if err := s.Repo.CreateAppointment(appointment); err != nil {
		return nil, err
	}

	if err := s.Clients.RecordVisit(req.ClientID); err != nil {
		log.Printf("Could not update visit counters for client %d: %v", req.ClientID, err)
	}

	return s.Repo.GetAppointment(appointment.ID)
}

// UpdateAppointment applies the change and, when the appointment moves to
// completed, posts the income to the day's cash register.
func (s *AppointmentService) UpdateAppointment(id int, req entities.AppointmentRequest) (*entities.AppointmentResponse, error) {
	current, err := s.Repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.ErrNotFound("Appointment not found")
	}

	if req.Status == "" {
		req.Status = current.Status
	}
	if req.Date == "" {
		req.Date = current.Date
	}
	if req.Time == "" {
		req.Time = current.Time
	}
	if req.ClientID == 0 {
		req.ClientID = current.ClientID
	}
	if req.ServiceID == 0 {
		req.ServiceID = current.ServiceID
	}
	if req.BarberID == 0 {
		req.BarberID = current.BarberID
	}

	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !s.Hours.OnGrid(req.Time) {
		return nil, errors.ErrInvalidInput("time must be a valid slot start")
	}

	if err := s.Repo.UpdateAppointment(id, req); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.ErrNotFound("Appointment not found")
		}
		return nil, err
	}

	updated, err := s.Repo.GetAppointment(id)
	if err != nil {
		return nil, err
	}

	if req.Status == StatusCompleted && current.Status != StatusCompleted {
		paymentMethod := req.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "cash"
		}
		today := time.Now().Format("2006-01-02")
		if err := s.Cash.RecordServiceIncome(today, updated, paymentMethod); err != nil {
			log.Printf("Could not record income for completed appointment %d: %v", id, err)
		}
	}

	if req.Status == StatusCancelled && current.Status != StatusCancelled {
		s.refundOnlinePayment(id)
	}

	return updated, nil
}

func (s *AppointmentService) DeleteAppointment(id int) error {
	s.refundOnlinePayment(id)
	return s.Repo.DeleteAppointment(id)
}

// refundOnlinePayment returns the prepayment of an online booking that is
// being cancelled or removed. Refund failures only log; the status change
// already happened and support can retry the refund in Stripe.
func (s *AppointmentService) refundOnlinePayment(id int) {
	sessionID, paymentStatus, err := s.Repo.GetPaymentInfo(id)
	if err != nil {
		log.Printf("Could not load payment info for appointment %d: %v", id, err)
		return
	}
	if sessionID == "" || paymentStatus != "paid" {
		return
	}
	if err := s.Stripe.RefundPaymentBySessionID(sessionID); err != nil {
		log.Printf("ALERT: refund for appointment %d failed: %v", id, err)
		return
	}
	if err := s.Repo.MarkRefunded(id); err != nil {
		log.Printf("Could not mark appointment %d as refunded: %v", id, err)
	}
}

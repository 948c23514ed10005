package service

import (
	"fmt"
	"log"
	"time"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/schedule"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentOnsite = "onsite"
	PaymentOnline = "online"
)

// CatalogStore is the slice of the catalog repository the booking flow needs.
type CatalogStore interface {
	GetService(id int) (*db.Service, error)
	GetBarber(id int) (*db.Barber, error)
	GetActiveBarbers() ([]db.Barber, error)
	ListServices(activeOnly bool) ([]db.Service, error)
}

// AppointmentStore is the slice of the appointment repository the booking
// flow needs.
type AppointmentStore interface {
	GetDaySchedule(date string) ([]schedule.Appointment, error)
	HasConflict(date, timeOfDay string, barberID int) (bool, error)
	CreateAppointment(a *db.Appointment) error
}

// ClientStore is the slice of the client repository the booking flow needs.
type ClientStore interface {
	GetClientByPhone(phone string) (*db.Client, error)
	CreateClient(c *db.Client) error
	RecordVisit(id int) error
}

type BookingService struct {
	Hours   schedule.Hours
	catalog CatalogStore
	appts   AppointmentStore
	clients ClientStore
	stripe  *StripeService
	sender  *SenderService
}

func NewBookingService(catalog CatalogStore, appts AppointmentStore, clients ClientStore, stripeSvc *StripeService, sender *SenderService) *BookingService {
	return &BookingService{
		Hours:   schedule.DefaultHours(),
		catalog: catalog,
		appts:   appts,
		clients: clients,
		stripe:  stripeSvc,
		sender:  sender,
	}
}

// Availability resolves the service and the day's bookings and runs the slot
// calculator. Barbers come back in catalog order (alphabetical); barbers with
// no free slot are omitted.
func (s *BookingService) Availability(date string, serviceID int) (*entities.AvailabilityResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if serviceID <= 0 {
		return nil, errors.ErrInvalidInput("serviceId is required")
	}

	svc, err := s.catalog.GetService(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.ErrNotFound("Service not found")
	}

	barbers, err := s.catalog.GetActiveBarbers()
	if err != nil {
		return nil, err
	}
	appts, err := s.appts.GetDaySchedule(date)
	if err != nil {
		return nil, err
	}

	gridBarbers := make([]schedule.Barber, len(barbers))
	for i, b := range barbers {
		gridBarbers[i] = schedule.Barber{ID: b.ID, Name: b.Name, Specialties: b.Specialties}
	}

	slots, err := schedule.AvailableSlots(s.Hours, svc.DurationMinutes, gridBarbers, appts)
	if err != nil {
		return nil, err
	}

	return &entities.AvailabilityResponse{
		Service: entities.ServiceSummary{
			ID:              svc.ID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		},
		Date:    date,
		Barbers: slots,
	}, nil
}

// ListPublicServices returns the active services shown on the booking page.
func (s *BookingService) ListPublicServices() ([]entities.ServiceResponse, error) {
	services, err := s.catalog.ListServices(true)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = entities.ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Category:        svc.Category,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
			Commission:      svc.Commission,
			Active:          svc.Active,
		}
	}
	return out, nil
}

// CreateBooking books an appointment from the public flow: validates the
// request, re-checks the slot at write time, finds or creates the client by
// phone and, for online payment, opens a Stripe checkout session. The
// write-time conflict check is what actually prevents double booking; the
// availability response is advisory.
func (s *BookingService) CreateBooking(req entities.BookingRequest) (*entities.BookingConfirmation, error) {
	if err := s.validateBooking(req); err != nil {
		return nil, err
	}

	svc, err := s.catalog.GetService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, errors.ErrNotFound("Service not found")
	}
	barber, err := s.catalog.GetBarber(req.BarberID)
	if err != nil {
		return nil, err
	}
	if barber == nil || !barber.Active {
		return nil, errors.ErrNotFound("Barber not found")
	}

	conflict, err := s.appts.HasConflict(req.Date, req.Time, req.BarberID)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, errors.ErrConflict("Time slot no longer available")
	}

	client, err := s.clients.GetClientByPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &db.Client{
			Name:     req.Name,
			Phone:    req.Phone,
			Whatsapp: req.Phone,
			Email:    req.Email,
		}
		if err := s.clients.CreateClient(client); err != nil {
			return nil, err
		}
	}

	appointment := &db.Appointment{
		Date:           req.Date,
		Time:           req.Time,
		Status:         StatusPending,
		ClientID:       client.ID,
		ServiceID:      svc.ID,
		BarberID:       barber.ID,
		Price:          svc.Price,
		BookedDuration: svc.DurationMinutes,
		PaymentMethod:  req.PaymentMethod,
	}

	var checkoutURL string
	if req.PaymentMethod == PaymentOnline {
		description := fmt.Sprintf("%s - %s %s", svc.Name, req.Date, req.Time)
		url, sessionID, err := s.stripe.CreateCheckoutSession(
			int64(svc.Price*100), "brl", description, client.Email)
		if err != nil {
			return nil, err
		}
		appointment.StripeSessionID = sessionID
		appointment.PaymentStatus = StatusPending
		checkoutURL = url
	}

	if err := s.appts.CreateAppointment(appointment); err != nil {
		log.Printf("Error creating appointment in repository: %v", err)
		return nil, err
	}

	if err := s.clients.RecordVisit(client.ID); err != nil {
		log.Printf("Could not update visit counters for client %d: %v", client.ID, err)
	}

	confirmation := &entities.BookingConfirmation{
		AppointmentID: appointment.ID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Service:       svc.Name,
		Barber:        barber.Name,
		Client:        client.Name,
		Price:         svc.Price,
		CheckoutURL:   checkoutURL,
	}

	if s.sender != nil && req.PaymentMethod != PaymentOnline {
		s.sender.SendBookingNotifications(*confirmation, client.Phone, client.Email, StatusConfirmed)
	}

	return confirmation, nil
}

func (s *BookingService) validateBooking(req entities.BookingRequest) error {
	if req.Name == "" || req.Phone == "" {
		return errors.ErrInvalidInput("name and phone are required")
	}
	if req.ServiceID <= 0 || req.BarberID <= 0 {
		return errors.ErrInvalidInput("serviceId and barberId are required")
	}
	if err := validateDate(req.Date); err != nil {
		return err
	}
	if !s.Hours.OnGrid(req.Time) {
		return errors.ErrInvalidInput("time must be a valid slot start")
	}
	if req.PaymentMethod != PaymentOnsite && req.PaymentMethod != PaymentOnline {
		return errors.ErrInvalidInput("paymentMethod must be onsite or online")
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return errors.ErrInvalidInput("date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errors.ErrInvalidInput("date must be YYYY-MM-DD")
	}
	return nil
}

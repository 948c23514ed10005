package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	apperrors "barberpro/internal/errors"
	"barberpro/internal/schedule"
)

type fakeCatalog struct {
	services map[int]*db.Service
	barbers  map[int]*db.Barber
	active   []db.Barber
}

func (f *fakeCatalog) GetService(id int) (*db.Service, error) { return f.services[id], nil }
func (f *fakeCatalog) GetBarber(id int) (*db.Barber, error)   { return f.barbers[id], nil }
func (f *fakeCatalog) GetActiveBarbers() ([]db.Barber, error) { return f.active, nil }
func (f *fakeCatalog) ListServices(activeOnly bool) ([]db.Service, error) {
	var out []db.Service
	for _, s := range f.services {
		if !activeOnly || s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeAppointments struct {
	schedule []schedule.Appointment
	conflict bool
	created  []*db.Appointment
}

func (f *fakeAppointments) GetDaySchedule(date string) ([]schedule.Appointment, error) {
	return f.schedule, nil
}

func (f *fakeAppointments) HasConflict(date, timeOfDay string, barberID int) (bool, error) {
	return f.conflict, nil
}

func (f *fakeAppointments) CreateAppointment(a *db.Appointment) error {
	a.ID = len(f.created) + 1
	f.created = append(f.created, a)
	return nil
}

type fakeClients struct {
	byPhone map[string]*db.Client
	created []*db.Client
	visits  []int
}

func (f *fakeClients) GetClientByPhone(phone string) (*db.Client, error) {
	return f.byPhone[phone], nil
}

func (f *fakeClients) CreateClient(c *db.Client) error {
	c.ID = 100 + len(f.created)
	f.created = append(f.created, c)
	return nil
}

func (f *fakeClients) RecordVisit(id int) error {
	f.visits = append(f.visits, id)
	return nil
}

func newTestBookingService(catalog *fakeCatalog, appts *fakeAppointments, clients *fakeClients) *BookingService {
	return NewBookingService(catalog, appts, clients, nil, nil)
}

func defaultCatalog() *fakeCatalog {
	return &fakeCatalog{
		services: map[int]*db.Service{
			1: {ID: 1, Name: "Haircut", DurationMinutes: 30, Price: 50, Active: true},
			2: {ID: 2, Name: "Cut and beard", DurationMinutes: 60, Price: 80, Active: true},
		},
		barbers: map[int]*db.Barber{
			1: {ID: 1, Name: "Carlos", Active: true},
			2: {ID: 2, Name: "Rafael", Active: false},
		},
		active: []db.Barber{
			{ID: 1, Name: "Carlos", Active: true},
		},
	}
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	httpErr, ok := err.(*apperrors.HTTPError)
	require.True(t, ok, "expected HTTPError, got %T", err)
	return httpErr.Code
}

func TestAvailabilityRejectsBadInput(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{}, &fakeClients{})

	_, err := svc.Availability("", 1)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = svc.Availability("31-12-2026", 1)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))

	_, err = svc.Availability("2026-12-31", 0)
	assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
}

func TestAvailabilityUnknownService(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{}, &fakeClients{})

	_, err := svc.Availability("2026-12-31", 99)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestAvailabilityResponseShape(t *testing.T) {
	appts := &fakeAppointments{
		schedule: []schedule.Appointment{
			{BarberID: 1, Time: "10:00", DurationMinutes: 30},
		},
	}
	svc := newTestBookingService(defaultCatalog(), appts, &fakeClients{})

	resp, err := svc.Availability("2026-12-31", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Service.ID)
	assert.Equal(t, "Haircut", resp.Service.Name)
	assert.Equal(t, 30, resp.Service.DurationMinutes)
	assert.Equal(t, "2026-12-31", resp.Date)

	require.Len(t, resp.Barbers, 1)
	assert.Equal(t, "Carlos", resp.Barbers[0].Name)
	assert.NotContains(t, resp.Barbers[0].AvailableSlots, "10:00")
	assert.Contains(t, resp.Barbers[0].AvailableSlots, "09:00")
	assert.Contains(t, resp.Barbers[0].AvailableSlots, "10:30")
}

func TestAvailabilityOmitsFullyBookedBarber(t *testing.T) {
	catalog := defaultCatalog()
	var busy []schedule.Appointment
	for m := 9 * 60; m < 18*60; m += 30 {
		busy = append(busy, schedule.Appointment{BarberID: 1, Time: schedule.Label(m), DurationMinutes: 30})
	}
	svc := newTestBookingService(catalog, &fakeAppointments{schedule: busy}, &fakeClients{})

	resp, err := svc.Availability("2026-12-31", 1)
	require.NoError(t, err)
	assert.Empty(t, resp.Barbers)
}

func validBooking() entities.BookingRequest {
	return entities.BookingRequest{
		Name:          "Joao Silva",
		Phone:         "11999990000",
		Email:         "joao@example.com",
		ServiceID:     1,
		BarberID:      1,
		Date:          "2026-12-31",
		Time:          "10:00",
		PaymentMethod: PaymentOnsite,
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{}, &fakeClients{})

	cases := []struct {
		name   string
		mutate func(*entities.BookingRequest)
	}{
		{"missing name", func(r *entities.BookingRequest) { r.Name = "" }},
		{"missing phone", func(r *entities.BookingRequest) { r.Phone = "" }},
		{"missing service", func(r *entities.BookingRequest) { r.ServiceID = 0 }},
		{"missing barber", func(r *entities.BookingRequest) { r.BarberID = 0 }},
		{"bad date", func(r *entities.BookingRequest) { r.Date = "not-a-date" }},
		{"off grid time", func(r *entities.BookingRequest) { r.Time = "10:15" }},
		{"before opening", func(r *entities.BookingRequest) { r.Time = "08:30" }},
		{"at closing", func(r *entities.BookingRequest) { r.Time = "18:00" }},
		{"bad payment method", func(r *entities.BookingRequest) { r.PaymentMethod = "cash" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validBooking()
			tc.mutate(&req)
			_, err := svc.CreateBooking(req)
			assert.Equal(t, http.StatusBadRequest, httpCode(t, err))
		})
	}
}

func TestCreateBookingUnknownServiceOrBarber(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{}, &fakeClients{})

	req := validBooking()
	req.ServiceID = 99
	_, err := svc.CreateBooking(req)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))

	req = validBooking()
	req.BarberID = 99
	_, err = svc.CreateBooking(req)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreateBookingInactiveBarber(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{}, &fakeClients{})

	req := validBooking()
	req.BarberID = 2
	_, err := svc.CreateBooking(req)
	assert.Equal(t, http.StatusNotFound, httpCode(t, err))
}

func TestCreateBookingConflict(t *testing.T) {
	svc := newTestBookingService(defaultCatalog(), &fakeAppointments{conflict: true}, &fakeClients{})

	_, err := svc.CreateBooking(validBooking())
	assert.Equal(t, http.StatusConflict, httpCode(t, err))
}

func TestCreateBookingCreatesClientByPhone(t *testing.T) {
	appts := &fakeAppointments{}
	clients := &fakeClients{byPhone: map[string]*db.Client{}}
	svc := newTestBookingService(defaultCatalog(), appts, clients)

	conf, err := svc.CreateBooking(validBooking())
	require.NoError(t, err)

	require.Len(t, clients.created, 1)
	assert.Equal(t, "Joao Silva", clients.created[0].Name)
	assert.Equal(t, "11999990000", clients.created[0].Phone)
	assert.Equal(t, []int{clients.created[0].ID}, clients.visits)

	require.Len(t, appts.created, 1)
	created := appts.created[0]
	assert.Equal(t, StatusPending, created.Status)
	assert.Equal(t, 30, created.BookedDuration)
	assert.Equal(t, 50.0, created.Price)
	assert.Equal(t, clients.created[0].ID, created.ClientID)

	assert.Equal(t, created.ID, conf.AppointmentID)
	assert.Equal(t, "Haircut", conf.Service)
	assert.Equal(t, "Carlos", conf.Barber)
	assert.Empty(t, conf.CheckoutURL)
}

func TestCreateBookingReusesExistingClient(t *testing.T) {
	existing := &db.Client{ID: 7, Name: "Joao Silva", Phone: "11999990000"}
	clients := &fakeClients{byPhone: map[string]*db.Client{"11999990000": existing}}
	appts := &fakeAppointments{}
	svc := newTestBookingService(defaultCatalog(), appts, clients)

	_, err := svc.CreateBooking(validBooking())
	require.NoError(t, err)

	assert.Empty(t, clients.created)
	assert.Equal(t, []int{7}, clients.visits)
	require.Len(t, appts.created, 1)
	assert.Equal(t, 7, appts.created[0].ClientID)
}

func TestCreateBookingStoresDurationAtBookingTime(t *testing.T) {
	catalog := defaultCatalog()
	appts := &fakeAppointments{}
	svc := newTestBookingService(catalog, appts, &fakeClients{byPhone: map[string]*db.Client{}})

	req := validBooking()
	req.ServiceID = 2
	_, err := svc.CreateBooking(req)
	require.NoError(t, err)

	require.Len(t, appts.created, 1)
	assert.Equal(t, 60, appts.created[0].BookedDuration)

	// A later price or duration change on the service must not rewrite
	// what was booked.
	catalog.services[2].DurationMinutes = 90
	assert.Equal(t, 60, appts.created[0].BookedDuration)
}

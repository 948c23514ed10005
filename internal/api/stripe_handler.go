package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"

	"barberpro/internal/entities"
	"barberpro/internal/repository"
	"barberpro/internal/service"
)

const (
	paymentPaid   = "paid"
	paymentFailed = "failed"
)

type StripeWebhookHandler struct {
	StripeSecret string
	appointments *repository.AppointmentRepository
	sender       *service.SenderService
}

func NewStripeWebhookHandler(stripeSecret string, appointments *repository.AppointmentRepository, sender *service.SenderService) *StripeWebhookHandler {
	return &StripeWebhookHandler{
		StripeSecret: stripeSecret,
		appointments: appointments,
		sender:       sender,
	}
}

func (h *StripeWebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	const maxBodyBytes = int64(65536)
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("Error reading body: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sigHeader, h.StripeSecret)
	if err != nil {
		log.Printf("Webhook signature verification failed: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.confirmBooking(sess.ID)
	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			log.Printf("Error parsing checkout.session: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		h.expireBooking(sess.ID)
	default:
		log.Printf("Unhandled Stripe event type: %s", event.Type)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *StripeWebhookHandler) confirmBooking(sessionID string) {
	if err := h.appointments.UpdateStatusBySessionID(sessionID, service.StatusConfirmed, paymentPaid); err != nil {
		log.Printf("Error confirming booking for session %s: %v", sessionID, err)
		return
	}

	appt, err := h.appointments.GetAppointmentByStripeSessionID(sessionID)
	if err != nil {
		log.Printf("Error loading confirmed booking for session %s: %v", sessionID, err)
		return
	}
	h.sender.SendBookingNotifications(entities.BookingConfirmation{
		AppointmentID: appt.ID,
		Date:          appt.Date,
		Time:          appt.Time,
		Service:       appt.ServiceName,
		Barber:        appt.BarberName,
		Client:        appt.ClientName,
		Price:         appt.Price,
	}, appt.ClientPhone, "", service.StatusConfirmed)
}

func (h *StripeWebhookHandler) expireBooking(sessionID string) {
	if err := h.appointments.UpdateStatusBySessionID(sessionID, service.StatusCancelled, paymentFailed); err != nil {
		log.Printf("Error expiring booking for session %s: %v", sessionID, err)
	}
}

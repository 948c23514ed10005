package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"barberpro/internal/entities"
	"barberpro/internal/utils"
)

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendBookingNotifications sends the confirmation SMS, and the email when the
// client left an address. Both go out asynchronously; failures are logged,
// never surfaced to the booking flow.
func (s *SenderService) SendBookingNotifications(booking entities.BookingConfirmation, phone, email, status string) {
	s.sendBookingSMS(booking, phone, status)
	if email != "" {
		s.sendBookingEmail(booking, email, status)
	}
}

// SendReminder sends the day-before reminder for an appointment.
func (s *SenderService) SendReminder(appt entities.AppointmentResponse, email string) {
	message := fmt.Sprintf("BarberPro: reminder of your %s appointment tomorrow (%s) at %s with %s. See you there!",
		appt.ServiceName, appt.Date, appt.Time, appt.BarberName)

	if err := SendSMS(utils.NormalizePhone(appt.ClientPhone), message); err != nil {
		log.Printf("ALERT: reminder SMS for appointment %d failed: %v", appt.ID, err)
	}

	if email != "" {
		subject := fmt.Sprintf("Reminder: %s tomorrow at %s", appt.ServiceName, appt.Time)
		go func() {
			if err := SendEmailWithSendGrid(email, appt.ClientName, subject, message, ""); err != nil {
				log.Printf("ALERT (async): reminder email for appointment %d failed: %v", appt.ID, err)
			}
		}()
	}
}

func (s *SenderService) sendBookingSMS(booking entities.BookingConfirmation, phone, status string) {
	message := fmt.Sprintf("BarberPro: your %s booking on %s at %s with %s is %s.\nMore details in your email.",
		booking.Service, booking.Date, booking.Time, booking.Barber, status)

	go func(to, body string) {
		if err := SendSMS(to, body); err != nil {
			log.Printf("ALERT (async): confirmation SMS for booking %d failed: %v", booking.AppointmentID, err)
		}
	}(utils.NormalizePhone(phone), message)
}

func (s *SenderService) sendBookingEmail(booking entities.BookingConfirmation, email, status string) {
	emailData := entities.BookingEmailData{
		ClientName:    booking.Client,
		ServiceName:   booking.Service,
		BarberName:    booking.Barber,
		DateFormatted: booking.Date,
		TimeFormatted: booking.Time,
		Price:         booking.Price,
		CurrentYear:   time.Now().Year(),
		Status:        status,
	}

	subject := fmt.Sprintf("Your BarberPro appointment is %s - %s at %s", status, booking.Date, booking.Time)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment at BarberPro is %s.\n\n"+
			"Appointment details:\n"+
			"Service: %s\n"+
			"Barber: %s\n"+
			"Date: %s at %s\n"+
			"Price: %.2f\n\n"+
			"Thank you for choosing BarberPro.\n\n"+
			"BarberPro. All rights reserved.",
		emailData.ClientName, status, emailData.ServiceName, emailData.BarberName,
		emailData.DateFormatted, emailData.TimeFormatted, emailData.Price,
	)

	tmplPath := filepath.Join("internal", "templates", "booking_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: error parsing booking email template (%s): %v", tmplPath, err)
	}

	var htmlBodyBuffer bytes.Buffer
	if tmpl != nil {
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: error executing booking email template for booking %d: %v", booking.AppointmentID, err)
		}
	}
	htmlBody := htmlBodyBuffer.String()

	go func(toEmail, userName, subj, plainBody, htmlBodyContent string) {
		if err := SendEmailWithSendGrid(toEmail, userName, subj, plainBody, htmlBodyContent); err != nil {
			log.Printf("ALERT (async): confirmation email for booking %d failed: %v", booking.AppointmentID, err)
		}
	}(email, emailData.ClientName, subject, plainTextBody, htmlBody)
}

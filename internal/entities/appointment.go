package entities

import "time"

type AppointmentRequest struct {
	Date          string `json:"date"`
	Time          string `json:"time"`
	ClientID      int    `json:"clientId"`
	ServiceID     int    `json:"serviceId"`
	BarberID      int    `json:"barberId"`
	Status        string `json:"status,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

type AppointmentResponse struct {
	ID              int       `json:"id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	ClientID        int       `json:"clientId"`
	ClientName      string    `json:"clientName"`
	ClientPhone     string    `json:"clientPhone"`
	ServiceID       int       `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	BarberID        int       `json:"barberId"`
	BarberName      string    `json:"barberName"`
	Price           float64   `json:"price"`
	BookedDuration  int       `json:"bookedDuration"`
	PaymentMethod   string    `json:"paymentMethod,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

package entities

// BookingRequest is the public booking payload. Every field except Email is
// required; Time must be a grid slot start.
type BookingRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	ServiceID     int    `json:"serviceId"`
	BarberID      int    `json:"barberId"`
	Date          string `json:"date"`          // "YYYY-MM-DD"
	Time          string `json:"time"`          // "HH:MM"
	PaymentMethod string `json:"paymentMethod"` // "onsite" or "online"
}

type BookingConfirmation struct {
	AppointmentID int     `json:"appointmentId"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Service       string  `json:"service"`
	Barber        string  `json:"barber"`
	Client        string  `json:"client"`
	Price         float64 `json:"price"`
	// CheckoutURL is set only for online prepayment.
	CheckoutURL string `json:"checkoutUrl,omitempty"`
}

type BookingEmailData struct {
	ClientName    string
	ServiceName   string
	BarberName    string
	DateFormatted string
	TimeFormatted string
	Price         float64
	CurrentYear   int
	Status        string
}

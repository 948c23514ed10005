package entities

type BarberRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Specialties string  `json:"specialties"`
	Commission  float64 `json:"commission"`
}

type BarberResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Specialties string  `json:"specialties"`
	Commission  float64 `json:"commission"`
	Active      bool    `json:"active"`
}

// BarberStats is the current-month performance block on the barber detail.
type BarberStats struct {
	MonthlyAppointments int                   `json:"monthlyAppointments"`
	MonthlyRevenue      float64               `json:"monthlyRevenue"`
	MonthlyCommission   float64               `json:"monthlyCommission"`
	RecentAppointments  []AppointmentResponse `json:"recentAppointments"`
}

type BarberDetail struct {
	BarberResponse
	Stats BarberStats `json:"stats"`
}

type ServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Commission      float64 `json:"commission"`
}

type ServiceResponse struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Commission      float64 `json:"commission"`
	Active          bool    `json:"active"`
}

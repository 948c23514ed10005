package db

import (
	"database/sql"
	"time"
)

type Barber struct {
	ID          int
	Name        string
	Phone       string
	Email       string
	Specialties string
	Commission  float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Service struct {
	ID              int
	Name            string
	Category        string
	DurationMinutes int
	Price           float64
	Commission      float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Client struct {
	ID            int
	Name          string
	Phone         string
	Whatsapp      string
	Email         string
	BirthDate     string
	Notes         string
	TotalVisits   int
	LoyaltyPoints int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Appointment struct {
	ID              int
	Date            string // "YYYY-MM-DD"
	Time            string // "HH:MM", grid aligned
	Status          string
	ClientID        int
	ServiceID       int
	BarberID        int
	Price           float64
	BookedDuration  int // minutes, copied from the service at booking time
	PaymentMethod   string
	StripeSessionID string
	PaymentStatus   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Product struct {
	ID        int
	Name      string
	Category  string
	Quantity  int
	MinStock  int
	CostPrice float64
	SalePrice float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type StockMovement struct {
	ID        int
	ProductID int
	Type      string // "in" or "out"
	Quantity  int
	Reason    string
	CreatedAt time.Time
}

type CashRegister struct {
	ID             int
	Date           string // "YYYY-MM-DD"
	OpeningBalance float64
	ClosingBalance sql.NullFloat64
	Status         string // "open" or "closed"
	CreatedAt      time.Time
}

type Transaction struct {
	ID             int
	CashRegisterID int
	BarberID       sql.NullInt64
	Type           string // "income" or "expense"
	Category       string
	Description    string
	Amount         float64
	PaymentMethod  string
	CreatedAt      time.Time
}

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Role         string // "admin", "barber" or "reception"
	Active       bool
	CreatedAt    time.Time
}

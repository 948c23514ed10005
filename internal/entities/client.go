package entities

type ClientRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	Notes     string `json:"notes"`
}

type ClientResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Whatsapp      string `json:"whatsapp"`
	Email         string `json:"email"`
	BirthDate     string `json:"birthDate"`
	Notes         string `json:"notes"`
	TotalVisits   int    `json:"totalVisits"`
	LoyaltyPoints int    `json:"loyaltyPoints"`
}

type ClientsList struct {
	Clients []ClientResponse `json:"clients"`
	Total   int64            `json:"total"`
	Pages   int              `json:"pages"`
}

type ClientDetail struct {
	ClientResponse
	Appointments []AppointmentResponse `json:"appointments"`
}

package service

import (
	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/repository"
)

type ClientService struct {
	Repo  *repository.ClientRepository
	Appts *repository.AppointmentRepository
}

func NewClientService(repo *repository.ClientRepository, appts *repository.AppointmentRepository) *ClientService {
	return &ClientService{Repo: repo, Appts: appts}
}

func (s *ClientService) SearchClients(search string, page, limit int) (*entities.ClientsList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	clients, total, err := s.Repo.SearchClients(search, page, limit)
	if err != nil {
		return nil, err
	}

	list := &entities.ClientsList{Total: total}
	for _, c := range clients {
		list.Clients = append(list.Clients, clientResponse(c))
	}
	list.Pages = int((total + int64(limit) - 1) / int64(limit))
	return list, nil
}

// GetClientDetail returns the client with their 20 most recent appointments.
func (s *ClientService) GetClientDetail(id int) (*entities.ClientDetail, error) {
	client, err := s.Repo.GetClient(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.ErrNotFound("Client not found")
	}

	recent, err := s.Appts.ListClientAppointments(id, 20)
	if err != nil {
		return nil, err
	}

	return &entities.ClientDetail{
		ClientResponse: clientResponse(*client),
		Appointments:   recent,
	}, nil
}

func (s *ClientService) CreateClient(req entities.ClientRequest) (*entities.ClientResponse, error) {
	if req.Name == "" || req.Phone == "" {
		return nil, errors.ErrInvalidInput("name and phone are required")
	}
	client := &db.Client{
		Name:      req.Name,
		Phone:     req.Phone,
		Whatsapp:  req.Whatsapp,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		Notes:     req.Notes,
	}
	if err := s.Repo.CreateClient(client); err != nil {
		return nil, err
	}
	resp := clientResponse(*client)
	return &resp, nil
}

func (s *ClientService) UpdateClient(id int, req entities.ClientRequest) (*entities.ClientResponse, error) {
	existing, err := s.Repo.GetClient(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrNotFound("Client not found")
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Whatsapp = req.Whatsapp
	existing.Email = req.Email
	existing.BirthDate = req.BirthDate
	existing.Notes = req.Notes
	if err := s.Repo.UpdateClient(existing); err != nil {
		return nil, err
	}
	resp := clientResponse(*existing)
	return &resp, nil
}

func (s *ClientService) DeleteClient(id int) error {
	return s.Repo.DeleteClient(id)
}

func clientResponse(c db.Client) entities.ClientResponse {
	return entities.ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Whatsapp:      c.Whatsapp,
		Email:         c.Email,
		BirthDate:     c.BirthDate,
		Notes:         c.Notes,
		TotalVisits:   c.TotalVisits,
		LoyaltyPoints: c.LoyaltyPoints,
	}
}

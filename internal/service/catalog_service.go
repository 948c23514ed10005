package service

import (
	"time"

	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/repository"
)

type CatalogService struct {
	Repo    *repository.CatalogRepository
	Reports *repository.ReportRepository
}

func NewCatalogService(repo *repository.CatalogRepository, reports *repository.ReportRepository) *CatalogService {
	return &CatalogService{Repo: repo, Reports: reports}
}

func (s *CatalogService) ListBarbers() ([]entities.BarberResponse, error) {
	barbers, err := s.Repo.GetActiveBarbers()
	if err != nil {
		return nil, err
	}
	out := make([]entities.BarberResponse, len(barbers))
	for i, b := range barbers {
		out[i] = barberResponse(b)
	}
	return out, nil
}

// GetBarberDetail returns the barber with the current month's performance.
func (s *CatalogService) GetBarberDetail(id int) (*entities.BarberDetail, error) {
	barber, err := s.Repo.GetBarber(id)
	if err != nil {
		return nil, err
	}
	if barber == nil {
		return nil, errors.ErrNotFound("Barber not found")
	}

	firstOfMonth := time.Now().Format("2006-01") + "-01"
	appts, err := s.Reports.MonthlyBarberAppointments(id, firstOfMonth)
	if err != nil {
		return nil, err
	}

	var revenue float64
	for _, a := range appts {
		revenue += a.Price
	}
	recent := appts
	if len(recent) > 10 {
		recent = recent[:10]
	}

	return &entities.BarberDetail{
		BarberResponse: barberResponse(*barber),
		Stats: entities.BarberStats{
			MonthlyAppointments: len(appts),
			MonthlyRevenue:      revenue,
			MonthlyCommission:   revenue * barber.Commission / 100,
			RecentAppointments:  recent,
		},
	}, nil
}

func (s *CatalogService) CreateBarber(req entities.BarberRequest) (*entities.BarberResponse, error) {
	if req.Name == "" {
		return nil, errors.ErrInvalidInput("name is required")
	}
	barber := &db.Barber{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Specialties: req.Specialties,
		Commission:  req.Commission,
	}
	if err := s.Repo.CreateBarber(barber); err != nil {
		return nil, err
	}
	resp := barberResponse(*barber)
	return &resp, nil
}

func (s *CatalogService) UpdateBarber(id int, req entities.BarberRequest) (*entities.BarberResponse, error) {
	existing, err := s.Repo.GetBarber(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrNotFound("Barber not found")
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.Email = req.Email
	existing.Specialties = req.Specialties
	existing.Commission = req.Commission
	if err := s.Repo.UpdateBarber(existing); err != nil {
		return nil, err
	}
	resp := barberResponse(*existing)
	return &resp, nil
}

func (s *CatalogService) DeactivateBarber(id int) error {
	return s.Repo.DeactivateBarber(id)
}

func (s *CatalogService) ListServices() ([]entities.ServiceResponse, error) {
	services, err := s.Repo.ListServices(false)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ServiceResponse, len(services))
	for i, svc := range services {
		out[i] = serviceResponse(svc)
	}
	return out, nil
}

func (s *CatalogService) CreateService(req entities.ServiceRequest) (*entities.ServiceResponse, error) {
	if req.Name == "" {
		return nil, errors.ErrInvalidInput("name is required")
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.ErrInvalidInput("durationMinutes must be positive")
	}
	svc := &db.Service{
		Name:            req.Name,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Commission:      req.Commission,
	}
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	resp := serviceResponse(*svc)
	return &resp, nil
}

func (s *CatalogService) UpdateService(id int, req entities.ServiceRequest) (*entities.ServiceResponse, error) {
	existing, err := s.Repo.GetService(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.ErrNotFound("Service not found")
	}
	if req.DurationMinutes <= 0 {
		return nil, errors.ErrInvalidInput("durationMinutes must be positive")
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.DurationMinutes = req.DurationMinutes
	existing.Price = req.Price
	existing.Commission = req.Commission
	if err := s.Repo.UpdateService(existing); err != nil {
		return nil, err
	}
	resp := serviceResponse(*existing)
	return &resp, nil
}

func (s *CatalogService) DeleteService(id int) error {
	return s.Repo.DeleteService(id)
}

func barberResponse(b db.Barber) entities.BarberResponse {
	return entities.BarberResponse{
		ID:          b.ID,
		Name:        b.Name,
		Phone:       b.Phone,
		Email:       b.Email,
		Specialties: b.Specialties,
		Commission:  b.Commission,
		Active:      b.Active,
	}
}

func serviceResponse(svc db.Service) entities.ServiceResponse {
	return entities.ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Category:        svc.Category,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Commission:      svc.Commission,
		Active:          svc.Active,
	}
}

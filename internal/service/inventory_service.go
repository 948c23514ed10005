package service

import (
	"barberpro/internal/db"
	"barberpro/internal/entities"
	"barberpro/internal/errors"
	"barberpro/internal/repository"
)

type InventoryService struct {
	Repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{Repo: repo}
}

func (s *InventoryService) ListProducts(search string) ([]entities.ProductResponse, error) {
	products, err := s.Repo.ListProducts(search)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProductResponse, len(products))
	for i, p := range products {
		out[i] = productResponse(p)
	}
	return out, nil
}

func (s *InventoryService) CreateProduct(req entities.ProductRequest) (*entities.ProductResponse, error) {
	if req.Name == "" {
		return nil, errors.ErrInvalidInput("name is required")
	}
	product := &db.Product{
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
	}
	if err := s.Repo.CreateProduct(product); err != nil {
		return nil, err
	}
	resp := productResponse(*product)
	return &resp, nil
}

func (s *InventoryService) UpdateProduct(id int, req entities.ProductRequest) (*entities.ProductResponse, error) {
	product := &db.Product{
		ID:        id,
		Name:      req.Name,
		Category:  req.Category,
		Quantity:  req.Quantity,
		MinStock:  req.MinStock,
		CostPrice: req.CostPrice,
		SalePrice: req.SalePrice,
	}
	if err := s.Repo.UpdateProduct(product); err != nil {
		return nil, err
	}
	resp := productResponse(*product)
	return &resp, nil
}

// ApplyMovement records a stock movement and returns the adjusted product.
func (s *InventoryService) ApplyMovement(productID int, req entities.StockMovementRequest) (*entities.ProductResponse, error) {
	if req.Quantity <= 0 {
		return nil, errors.ErrInvalidInput("quantity must be positive")
	}
	var direction int
	switch req.Type {
	case "in":
		direction = 1
	case "out":
		direction = -1
	default:
		return nil, errors.ErrInvalidInput("type must be in or out")
	}

	movement := &db.StockMovement{
		ProductID: productID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Reason:    req.Reason,
	}
	product, err := s.Repo.ApplyStockMovement(movement, direction)
	if err != nil {
		return nil, err
	}
	resp := productResponse(*product)
	return &resp, nil
}

func (s *InventoryService) DeleteProduct(id int) error {
	return s.Repo.DeleteProduct(id)
}

func productResponse(p db.Product) entities.ProductResponse {
	return entities.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Quantity:  p.Quantity,
		MinStock:  p.MinStock,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
	}
}

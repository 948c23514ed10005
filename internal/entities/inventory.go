package entities

type ProductRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	MinStock  int     `json:"minStock"`
	CostPrice float64 `json:"costPrice"`
	SalePrice float64 `json:"salePrice"`
}

type ProductResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	MinStock  int     `json:"minStock"`
	CostPrice float64 `json:"costPrice"`
	SalePrice float64 `json:"salePrice"`
}

// StockMovementRequest adjusts a product's quantity. Type is "in" or "out".
type StockMovementRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Reason   string `json:"reason"`
}

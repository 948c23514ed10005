package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"barberpro/internal/db"
)

type InventoryRepository struct {
	DB *sql.DB
}

func NewInventoryRepository(database *sql.DB) *InventoryRepository {
	return &InventoryRepository{DB: database}
}

func (r *InventoryRepository) ListProducts(search string) ([]db.Product, error) {
	query := `
		SELECT id, name, category, quantity, min_stock, cost_price, sale_price, created_at, updated_at
		FROM products`
	var args []interface{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []db.Product
	for rows.Next() {
		var p db.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.MinStock,
			&p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *InventoryRepository) CreateProduct(p *db.Product) error {
	query := `
		INSERT INTO products (name, category, quantity, min_stock, cost_price, sale_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query, p.Name, p.Category, p.Quantity, p.MinStock, p.CostPrice, p.SalePrice).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *InventoryRepository) UpdateProduct(p *db.Product) error {
	query := `
		UPDATE products
		SET name = $1, category = $2, quantity = $3, min_stock = $4, cost_price = $5, sale_price = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at`
	err := r.DB.QueryRow(query, p.Name, p.Category, p.Quantity, p.MinStock,
		p.CostPrice, p.SalePrice, p.ID).Scan(&p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("product %d not found", p.ID)
	}
	return err
}

// DeleteProduct removes the product together with its movement history.
func (r *InventoryRepository) DeleteProduct(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM stock_movements WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("error deleting stock movements: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	return tx.Commit()
}

// ApplyStockMovement records the movement and adjusts the product quantity in
// one transaction. direction is +1 for "in" and -1 for "out".
func (r *InventoryRepository) ApplyStockMovement(m *db.StockMovement, direction int) (*db.Product, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO stock_movements (product_id, type, quantity, reason, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`
	if err := tx.QueryRow(query, m.ProductID, m.Type, m.Quantity, m.Reason).
		Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("error inserting stock movement: %w", err)
	}

	var p db.Product
	err = tx.QueryRow(`
		UPDATE products SET quantity = quantity + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, category, quantity, min_stock, cost_price, sale_price, created_at, updated_at`,
		direction*m.Quantity, m.ProductID).
		Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.MinStock,
			&p.CostPrice, &p.SalePrice, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d not found", m.ProductID)
		}
		return nil, fmt.Errorf("error adjusting product quantity: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &p, nil
}

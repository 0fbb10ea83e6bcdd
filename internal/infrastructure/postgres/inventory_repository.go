package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Create persiste un nuevo producto de inventario.
func (r *InventoryRepo) Create(item *entity.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, product_code, name, description, quantity, purchase_price, sale_price, min_stock, max_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductCode, item.Name, item.Description, item.Quantity,
		item.PurchasePrice, item.SalePrice, item.MinStock, item.MaxStock,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *InventoryRepo) GetByID(id string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, product_code, name, description, quantity, purchase_price, sale_price, min_stock, max_stock, created_at, updated_at
		FROM inventory_items WHERE id = $1`
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ProductCode, &i.Name, &i.Description, &i.Quantity,
		&i.PurchasePrice, &i.SalePrice, &i.MinStock, &i.MaxStock,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &i, nil
}

// GetByProductCode obtiene un producto por su código único.
func (r *InventoryRepo) GetByProductCode(code string) (*entity.InventoryItem, error) {
	query := `
		SELECT id, product_code, name, description, quantity, purchase_price, sale_price, min_stock, max_stock, created_at, updated_at
		FROM inventory_items WHERE product_code = $1`
	var i entity.InventoryItem
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&i.ID, &i.ProductCode, &i.Name, &i.Description, &i.Quantity,
		&i.PurchasePrice, &i.SalePrice, &i.MinStock, &i.MaxStock,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item by code: %w", err)
	}
	return &i, nil
}

// Update actualiza un producto. No toca Quantity: las existencias se mueven
// solo vía DecrementStock/IncrementStock.
func (r *InventoryRepo) Update(item *entity.InventoryItem) error {
	query := `
		UPDATE inventory_items SET name = $2, description = $3, purchase_price = $4, sale_price = $5, min_stock = $6, max_stock = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.PurchasePrice, item.SalePrice,
		item.MinStock, item.MaxStock, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory item: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *InventoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	return nil
}

// List lista inventario con filtros tipados y paginación.
func (r *InventoryRepo) List(filter repository.InventoryFilter, limit, offset int) ([]*entity.InventoryItem, error) {
	query := `
		SELECT id, product_code, name, description, quantity, purchase_price, sale_price, min_stock, max_stock, created_at, updated_at
		FROM inventory_items WHERE 1=1`
	args := []any{}
	idx := 1
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (product_code ILIKE $%d OR name ILIKE $%d)", idx, idx)
		args = append(args, "%"+filter.Search+"%")
		idx++
	}
	if filter.LowOnly {
		query += " AND quantity <= min_stock"
	}
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryItem
	for rows.Next() {
		var i entity.InventoryItem
		if err := rows.Scan(&i.ID, &i.ProductCode, &i.Name, &i.Description, &i.Quantity,
			&i.PurchasePrice, &i.SalePrice, &i.MinStock, &i.MaxStock, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// DecrementStock resta qty en una sola sentencia condicionada a que alcance la
// existencia. Cero filas afectadas significa stock insuficiente (o producto
// inexistente): dos ventas concurrentes nunca dejan la cantidad en negativo.
func (r *InventoryRepo) DecrementStock(id string, qty decimal.Decimal) error {
	query := `
		UPDATE inventory_items SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// IncrementStock suma qty a la existencia del producto.
func (r *InventoryRepo) IncrementStock(id string, qty decimal.Decimal) error {
	query := `
		UPDATE inventory_items SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return fmt.Errorf("increment stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

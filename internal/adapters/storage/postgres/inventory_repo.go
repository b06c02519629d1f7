package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic-api/internal/domain/inventory"
)

type InventoryRepo struct {
	db *sql.DB
}

func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

func (r *InventoryRepo) Create(ctx context.Context, p inventory.Product) (inventory.Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, category, sku, price, quantity, reorder_level, description, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		p.Name,
		p.Category,
		p.SKU,
		p.Price,
		p.Quantity,
		p.ReorderLevel,
		p.Description,
		p.ImageURL,
	).Scan(&p.ID)
	if err != nil {
		return inventory.Product{}, err
	}
	return p, nil
}

func (r *InventoryRepo) GetByID(ctx context.Context, id int64) (inventory.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, category, sku, price, quantity, reorder_level, description, image_url
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return inventory.Product{}, inventory.ErrNotFound
		}
		return inventory.Product{}, err
	}
	return p, nil
}

func (r *InventoryRepo) List(ctx context.Context) ([]inventory.Product, error) {
	return r.query(ctx, `
		SELECT id, name, category, sku, price, quantity, reorder_level, description, image_url
		FROM products
		ORDER BY id ASC
	`)
}

func (r *InventoryRepo) Update(ctx context.Context, p inventory.Product) (inventory.Product, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $2, category = $3, sku = $4, price = $5, quantity = $6,
		    reorder_level = $7, description = $8, image_url = $9
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Category,
		p.SKU,
		p.Price,
		p.Quantity,
		p.ReorderLevel,
		p.Description,
		p.ImageURL,
	)
	if err != nil {
		return inventory.Product{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return inventory.Product{}, inventory.ErrNotFound
	}
	return p, nil
}

func (r *InventoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *InventoryRepo) ListLowStock(ctx context.Context) ([]inventory.Product, error) {
	return r.query(ctx, `
		SELECT id, name, category, sku, price, quantity, reorder_level, description, image_url
		FROM products
		WHERE quantity <= reorder_level
		ORDER BY id ASC
	`)
}

func (r *InventoryRepo) query(ctx context.Context, q string, args ...any) ([]inventory.Product, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]inventory.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func scanProduct(row rowScanner) (inventory.Product, error) {
	var p inventory.Product
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Category,
		&p.SKU,
		&p.Price,
		&p.Quantity,
		&p.ReorderLevel,
		&p.Description,
		&p.ImageURL,
	); err != nil {
		return inventory.Product{}, err
	}
	return p, nil
}

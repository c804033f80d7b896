package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/sumansi/storefront/internal/domain"
)

type productsRepo struct {
	db dbtx
}

const productColumns = `id, name, description, price, image, category, sizes,
	in_stock, created_at, updated_at`

func scanProduct(row *sql.Row) (domain.Product, error) {
	var p domain.Product
	var sizes string
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
		&sizes, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Product{}, mapNotFound(err)
	}
	p.Sizes = splitSizes(sizes)
	return p, nil
}

func (r *productsRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	return scanProduct(r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id))
}

func (r *productsRepo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		var sizes string
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.Category,
			&sizes, &p.InStock, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Sizes = splitSizes(sizes)
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *productsRepo) CreateProduct(ctx context.Context, p domain.Product) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (id, name, description, price, image, category, sizes, in_stock, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.Category,
		joinSizes(p.Sizes), p.InStock, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *productsRepo) UpdateProduct(ctx context.Context, p domain.Product) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, description = ?, price = ?, image = ?,
		 category = ?, sizes = ?, in_stock = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Image, p.Category,
		joinSizes(p.Sizes), p.InStock, time.Now().UTC(), p.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *productsRepo) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

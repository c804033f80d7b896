package sqlite

import (
	"context"

	"github.com/sumansi/storefront/internal/domain"
)

type cartItemsRepo struct {
	db dbtx
}

func (r *cartItemsRepo) ListCartItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, product_id, size, quantity, added_at
		 FROM cart_items WHERE user_id = ? ORDER BY added_at ASC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Size,
			&item.Quantity, &item.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *cartItemsRepo) AddCartItem(ctx context.Context, item domain.CartItem) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (id, user_id, product_id, size, quantity, added_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.ProductID, item.Size, item.Quantity, item.AddedAt,
	)
	return mapConstraint(err)
}

func (r *cartItemsRepo) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	// Scoped to the owning user so one user cannot delete another's items.
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *cartItemsRepo) ClearCart(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}

package sqlite

import (
	"context"

	"github.com/sumansi/storefront/internal/domain"
)

type wishlistsRepo struct {
	db dbtx
}

func (r *wishlistsRepo) ListWishlist(ctx context.Context, userID string) ([]domain.WishlistEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, product_id, added_at
		 FROM wishlist_entries WHERE user_id = ? ORDER BY added_at DESC, product_id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WishlistEntry
	for rows.Next() {
		var e domain.WishlistEntry
		if err := rows.Scan(&e.UserID, &e.ProductID, &e.AddedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *wishlistsRepo) HasWishlistEntry(ctx context.Context, userID, productID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM wishlist_entries WHERE user_id = ? AND product_id = ?`,
		userID, productID).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *wishlistsRepo) AddWishlistEntry(ctx context.Context, e domain.WishlistEntry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wishlist_entries (user_id, product_id, added_at) VALUES (?, ?, ?)`,
		e.UserID, e.ProductID, e.AddedAt,
	)
	return mapConstraint(err)
}

func (r *wishlistsRepo) RemoveWishlistEntry(ctx context.Context, userID, productID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_entries WHERE user_id = ? AND product_id = ?`,
		userID, productID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

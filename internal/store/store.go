package store

import (
	"context"
	"errors"
	"time"

	"github.com/sumansi/storefront/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Products() Products
	Announcements() Announcements
	CartItems() CartItems
	Wishlists() Wishlists

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUserID returns a user by its public opaque id.
	GetUserByUserID(ctx context.Context, userID string) (domain.User, error)

	// GetUserByEmail is used during login and duplicate-email checks.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByResetTokenHash returns the user holding an active reset token.
	GetUserByResetTokenHash(ctx context.Context, hash string) (domain.User, error)

	// CreateUser inserts a new user. The email column is UNIQUE; inserting a
	// duplicate returns ErrAlreadyExists, which closes the check-then-insert
	// race under concurrent signups.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates name/phone/avatar and bumps updated_at.
	UpdateProfile(ctx context.Context, userID, name, phone, avatar string) error

	// UpdatePasswordHash sets the password_hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// SetResetToken stores the fingerprint and expiry of a password-reset token.
	SetResetToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// ClearResetToken removes any active reset token.
	ClearResetToken(ctx context.Context, userID string) error

	// ListUsers returns all users, newest first.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Products interface {
	GetProductByID(ctx context.Context, id string) (domain.Product, error)

	// ListProducts returns the catalog, newest first.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// CreateProduct inserts a product; a duplicate id returns ErrAlreadyExists.
	CreateProduct(ctx context.Context, p domain.Product) error

	// UpdateProduct replaces the mutable fields and bumps updated_at.
	UpdateProduct(ctx context.Context, p domain.Product) error

	// DeleteProduct cascades to cart items and wishlist entries (per schema).
	DeleteProduct(ctx context.Context, id string) error
}

type Announcements interface {
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, a domain.Announcement) error
	UpdateAnnouncement(ctx context.Context, a domain.Announcement) error
	DeleteAnnouncement(ctx context.Context, id string) error
}

type CartItems interface {
	// ListCartItems returns a user's cart, oldest first.
	ListCartItems(ctx context.Context, userID string) ([]domain.CartItem, error)

	// AddCartItem inserts a line item.
	AddCartItem(ctx context.Context, item domain.CartItem) error

	// RemoveCartItem deletes a line item owned by the user. Removing an item
	// that is not theirs (or gone) returns ErrNotFound.
	RemoveCartItem(ctx context.Context, userID, itemID string) error

	// ClearCart drops all of a user's items.
	ClearCart(ctx context.Context, userID string) error
}

type Wishlists interface {
	// ListWishlist returns a user's wished product entries, newest first.
	ListWishlist(ctx context.Context, userID string) ([]domain.WishlistEntry, error)

	// HasWishlistEntry reports whether the product is already wished.
	HasWishlistEntry(ctx context.Context, userID, productID string) (bool, error)

	AddWishlistEntry(ctx context.Context, e domain.WishlistEntry) error
	RemoveWishlistEntry(ctx context.Context, userID, productID string) error
}

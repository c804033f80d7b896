package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/sumansi/storefront/internal/store"
	"github.com/sumansi/storefront/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestUser(email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		UserID:       domain.NewUserID(),
		Name:         "Alice",
		Email:        email,
		Phone:        "0400000000",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUsersRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("alice@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	t.Run("lookup by public id and email", func(t *testing.T) {
		got, err := s.Users().GetUserByUserID(ctx, user.UserID)
		require.NoError(t, err)
		require.Equal(t, user.Email, got.Email)

		got, err = s.Users().GetUserByEmail(ctx, user.Email)
		require.NoError(t, err)
		require.Equal(t, user.UserID, got.UserID)
	})

	t.Run("missing user maps to ErrNotFound", func(t *testing.T) {
		_, err := s.Users().GetUserByEmail(ctx, "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate email maps to ErrAlreadyExists", func(t *testing.T) {
		dup := newTestUser(user.Email)
		err := s.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("profile update", func(t *testing.T) {
		require.NoError(t, s.Users().UpdateProfile(ctx, user.UserID, "Alice B", "0411111111", "https://cdn.example/a.png"))

		got, err := s.Users().GetUserByUserID(ctx, user.UserID)
		require.NoError(t, err)
		require.Equal(t, "Alice B", got.Name)
		require.Equal(t, "0411111111", got.Phone)
		require.Equal(t, "https://cdn.example/a.png", got.Avatar)
	})

	t.Run("profile update for unknown user fails", func(t *testing.T) {
		err := s.Users().UpdateProfile(ctx, "missing", "X", "", "")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("reset token round trip", func(t *testing.T) {
		expires := time.Now().Add(time.Hour).UTC()
		require.NoError(t, s.Users().SetResetToken(ctx, user.UserID, "fingerprint", expires))

		got, err := s.Users().GetUserByResetTokenHash(ctx, "fingerprint")
		require.NoError(t, err)
		require.Equal(t, user.UserID, got.UserID)
		require.NotNil(t, got.ResetTokenExpires)

		require.NoError(t, s.Users().ClearResetToken(ctx, user.UserID))
		_, err = s.Users().GetUserByResetTokenHash(ctx, "fingerprint")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("list users", func(t *testing.T) {
		users, err := s.Users().ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
	})
}

func TestProductsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	product := domain.Product{
		ID:          idx.New().String(),
		Name:        "Classic Tee",
		Description: "A plain tee",
		Price:       2999,
		Image:       "https://cdn.example/tee.png",
		Category:    "shirts",
		Sizes:       []string{"S", "M", "L"},
		InStock:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, s.Products().CreateProduct(ctx, product))

	t.Run("sizes survive the round trip", func(t *testing.T) {
		got, err := s.Products().GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		require.Equal(t, []string{"S", "M", "L"}, got.Sizes)
	})

	t.Run("update replaces mutable fields", func(t *testing.T) {
		product.Price = 1999
		product.InStock = false
		require.NoError(t, s.Products().UpdateProduct(ctx, product))

		got, err := s.Products().GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1999, got.Price)
		require.False(t, got.InStock)
	})

	t.Run("delete cascades to cart and wishlist", func(t *testing.T) {
		user := newTestUser("bob@example.com")
		require.NoError(t, s.Users().CreateUser(ctx, user))
		require.NoError(t, s.CartItems().AddCartItem(ctx, domain.CartItem{
			ID: idx.New().String(), UserID: user.UserID, ProductID: product.ID,
			Size: "M", Quantity: 1, AddedAt: now,
		}))
		require.NoError(t, s.Wishlists().AddWishlistEntry(ctx, domain.WishlistEntry{
			UserID: user.UserID, ProductID: product.ID, AddedAt: now,
		}))

		require.NoError(t, s.Products().DeleteProduct(ctx, product.ID))

		items, err := s.CartItems().ListCartItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, items)

		entries, err := s.Wishlists().ListWishlist(ctx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, entries)
	})
}

func TestCartItemsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	user := newTestUser("carol@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	other := newTestUser("dave@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, other))

	product := domain.Product{ID: idx.New().String(), Name: "Hat", Price: 1500, InStock: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Products().CreateProduct(ctx, product))

	item := domain.CartItem{
		ID: idx.New().String(), UserID: user.UserID, ProductID: product.ID,
		Quantity: 2, AddedAt: now,
	}
	require.NoError(t, s.CartItems().AddCartItem(ctx, item))

	t.Run("items are scoped per user", func(t *testing.T) {
		items, err := s.CartItems().ListCartItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Len(t, items, 1)

		items, err = s.CartItems().ListCartItems(ctx, other.UserID)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("cannot remove another user's item", func(t *testing.T) {
		err := s.CartItems().RemoveCartItem(ctx, other.UserID, item.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("owner removes item", func(t *testing.T) {
		require.NoError(t, s.CartItems().RemoveCartItem(ctx, user.UserID, item.ID))

		items, err := s.CartItems().ListCartItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	t.Run("clear cart", func(t *testing.T) {
		require.NoError(t, s.CartItems().AddCartItem(ctx, domain.CartItem{
			ID: idx.New().String(), UserID: user.UserID, ProductID: product.ID,
			Quantity: 1, AddedAt: now,
		}))
		require.NoError(t, s.CartItems().ClearCart(ctx, user.UserID))

		items, err := s.CartItems().ListCartItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}

func TestWishlistsRepo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	now := time.Now().UTC()
	user := newTestUser("erin@example.com")
	require.NoError(t, s.Users().CreateUser(ctx, user))

	product := domain.Product{ID: idx.New().String(), Name: "Scarf", Price: 900, InStock: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Products().CreateProduct(ctx, product))

	entry := domain.WishlistEntry{UserID: user.UserID, ProductID: product.ID, AddedAt: now}
	require.NoError(t, s.Wishlists().AddWishlistEntry(ctx, entry))

	t.Run("duplicate wish maps to ErrAlreadyExists", func(t *testing.T) {
		err := s.Wishlists().AddWishlistEntry(ctx, entry)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("has entry", func(t *testing.T) {
		ok, err := s.Wishlists().HasWishlistEntry(ctx, user.UserID, product.ID)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("remove entry", func(t *testing.T) {
		require.NoError(t, s.Wishlists().RemoveWishlistEntry(ctx, user.UserID, product.ID))

		ok, err := s.Wishlists().HasWishlistEntry(ctx, user.UserID, product.ID)
		require.NoError(t, err)
		require.False(t, ok)

		err = s.Wishlists().RemoveWishlistEntry(ctx, user.UserID, product.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	user := newTestUser("frank@example.com")
	err := s.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, user); err != nil {
			return err
		}
		return context.Canceled // force rollback
	})
	require.Error(t, err)

	_, err = s.Users().GetUserByEmail(ctx, user.Email)
	require.ErrorIs(t, err, store.ErrNotFound)
}

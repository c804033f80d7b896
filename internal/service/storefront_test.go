package service

import (
	"context"
	"testing"

	"github.com/sumansi/storefront/internal/domain"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, svc *ProductService) domain.Product {
	t.Helper()

	p, err := svc.CreateProduct(context.Background(), domain.Product{
		Name:    "Classic Tee",
		Price:   2999,
		Image:   "https://cdn.example/tee.png",
		Sizes:   []string{"S", "M"},
		InStock: true,
	})
	require.NoError(t, err)
	return p
}

func TestProductService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &ProductService{Store: st}

	t.Run("name and image required", func(t *testing.T) {
		_, err := svc.CreateProduct(ctx, domain.Product{Name: "No image"})
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		p := seedProduct(t, svc)
		require.NotEmpty(t, p.ID)
		require.False(t, p.CreatedAt.IsZero())
	})

	t.Run("duplicate explicit id rejected", func(t *testing.T) {
		p := seedProduct(t, svc)
		_, err := svc.CreateProduct(ctx, domain.Product{ID: p.ID, Name: "Clone", Image: "https://cdn.example/x.png"})
		require.ErrorIs(t, err, ErrProductExists)
	})

	t.Run("update and delete", func(t *testing.T) {
		p := seedProduct(t, svc)
		p.Price = 1999
		updated, err := svc.UpdateProduct(ctx, p)
		require.NoError(t, err)
		require.EqualValues(t, 1999, updated.Price)

		require.NoError(t, svc.DeleteProduct(ctx, p.ID))
		_, err = svc.GetProduct(ctx, p.ID)
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, svc.DeleteProduct(ctx, p.ID), ErrNotFound)
	})
}

func TestCartService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	products := &ProductService{Store: st}
	carts := &CartService{Store: st}

	auth := &AuthService{Store: st, Issuer: newTestIssuer(t)}
	user, _, err := auth.Signup(ctx, "Alice", "alice@example.com", "0400000000", "pw")
	require.NoError(t, err)

	product := seedProduct(t, products)

	t.Run("unknown product rejected", func(t *testing.T) {
		_, err := carts.AddItem(ctx, user.UserID, "missing", "M", 1)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("quantity defaults to one", func(t *testing.T) {
		item, err := carts.AddItem(ctx, user.UserID, product.ID, "M", 0)
		require.NoError(t, err)
		require.Equal(t, 1, item.Quantity)
	})

	t.Run("list, remove and clear", func(t *testing.T) {
		item, err := carts.AddItem(ctx, user.UserID, product.ID, "S", 2)
		require.NoError(t, err)

		items, err := carts.ListItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.NoError(t, carts.RemoveItem(ctx, user.UserID, item.ID))
		require.ErrorIs(t, carts.RemoveItem(ctx, user.UserID, item.ID), ErrNotFound)

		require.NoError(t, carts.Clear(ctx, user.UserID))
		items, err = carts.ListItems(ctx, user.UserID)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}

func TestWishlistService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	products := &ProductService{Store: st}
	wishlists := &WishlistService{Store: st}

	auth := &AuthService{Store: st, Issuer: newTestIssuer(t)}
	user, _, err := auth.Signup(ctx, "Bob", "bob@example.com", "0400000000", "pw")
	require.NoError(t, err)

	product := seedProduct(t, products)

	t.Run("toggle flips state", func(t *testing.T) {
		wished, err := wishlists.Toggle(ctx, user.UserID, product.ID)
		require.NoError(t, err)
		require.True(t, wished)

		entries, err := wishlists.List(ctx, user.UserID)
		require.NoError(t, err)
		require.Len(t, entries, 1)

		wished, err = wishlists.Toggle(ctx, user.UserID, product.ID)
		require.NoError(t, err)
		require.False(t, wished)
	})

	t.Run("toggle on unknown product rejected", func(t *testing.T) {
		_, err := wishlists.Toggle(ctx, user.UserID, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("explicit remove", func(t *testing.T) {
		_, err := wishlists.Toggle(ctx, user.UserID, product.ID)
		require.NoError(t, err)
		require.NoError(t, wishlists.Remove(ctx, user.UserID, product.ID))
		require.ErrorIs(t, wishlists.Remove(ctx, user.UserID, product.ID), ErrNotFound)
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	users := &UserService{Store: st}

	auth := &AuthService{Store: st, Issuer: newTestIssuer(t)}
	user, _, err := auth.Signup(ctx, "Carol", "carol@example.com", "0400000000", "pw")
	require.NoError(t, err)

	t.Run("profile update round trip", func(t *testing.T) {
		updated, err := users.UpdateProfile(ctx, user.UserID, "Carol B", "0411111111", "https://cdn.example/c.png")
		require.NoError(t, err)
		require.Equal(t, "Carol B", updated.Name)
		require.Equal(t, "0411111111", updated.Phone)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, user.UserID, "  ", "", "")
		require.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, "missing", "X", "", "")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("list never leaks secrets", func(t *testing.T) {
		list, err := users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.Equal(t, user.UserID, list[0].UserID)
	})
}

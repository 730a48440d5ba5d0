package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/transport"
)

func TestGetCart_CreatedLazily(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")

	rec := env.doJSON(http.MethodGet, "/cart/", nil, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeJSON[models.Cart](t, rec)
	assert.NotZero(t, cart.ID)
	assert.Empty(t, cart.Items)

	// A second fetch returns the same cart, not a new one.
	rec = env.doJSON(http.MethodGet, "/cart/", nil, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	again := decodeJSON[models.Cart](t, rec)
	assert.Equal(t, cart.ID, again.ID)

	var count int64
	require.NoError(t, env.DB.Model(&models.Cart{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAddItem_MergesQuantities(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")
	product := env.createProduct("Copper Bottle", 49.99, "copper-bottles")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	}, bearer)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	item := decodeJSON[models.CartItem](t, rec)
	assert.Equal(t, 2, item.Quantity)

	rec = env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  3,
	}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	merged := decodeJSON[models.CartItem](t, rec)
	assert.Equal(t, item.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	var count int64
	require.NoError(t, env.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "duplicate add must merge, not create a second line")
}

func TestAddItem_UnknownProduct(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{
		ProductID: 9999,
		Quantity:  1,
	}, bearer)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateItem_SetsQuantity(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")
	product := env.createProduct("Copper Bottle", 49.99, "copper-bottles")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: product.ID, Quantity: 2}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeJSON[models.CartItem](t, rec)

	rec = env.doJSON(http.MethodPut, fmt.Sprintf("/cart/items/%d", item.ID), transport.UpdateCartItemRequest{Quantity: 7}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[models.CartItem](t, rec)
	assert.Equal(t, 7, updated.Quantity, "update replaces the quantity instead of adding to it")
}

func TestUpdateItem_NonPositiveQuantityDeletes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")
	bottle := env.createProduct("Copper Bottle", 49.99, "copper-bottles")
	mandala := env.createProduct("Mandala", 89.99, "wall-art")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: bottle.ID, Quantity: 2}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeJSON[models.CartItem](t, rec)
	rec = env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: mandala.ID, Quantity: 1}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeJSON[models.CartItem](t, rec)

	rec = env.doJSON(http.MethodPut, fmt.Sprintf("/cart/items/%d", first.ID), transport.UpdateCartItemRequest{Quantity: 0}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	removed := decodeJSON[transport.ItemRemovedResponse](t, rec)
	assert.Equal(t, first.ID, removed.ID)
	assert.Equal(t, "Item removed from cart", removed.Message)

	var count int64
	require.NoError(t, env.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "exactly one item deleted")

	rec = env.doJSON(http.MethodPut, fmt.Sprintf("/cart/items/%d", second.ID), transport.UpdateCartItemRequest{Quantity: -3}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	removed = decodeJSON[transport.ItemRemovedResponse](t, rec)
	assert.Equal(t, second.ID, removed.ID)

	require.NoError(t, env.DB.Model(&models.CartItem{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestRemoveItem(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")
	product := env.createProduct("Copper Bottle", 49.99, "copper-bottles")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: product.ID, Quantity: 2}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeJSON[models.CartItem](t, rec)

	rec = env.doJSON(http.MethodDelete, fmt.Sprintf("/cart/items/%d", item.ID), nil, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeJSON[transport.MessageResponse](t, rec)
	assert.Equal(t, "Item removed from cart", resp.Message)

	rec = env.doJSON(http.MethodDelete, fmt.Sprintf("/cart/items/%d", item.ID), nil, bearer)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartItems_ScopedToOwner(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	env.createUser("mallory@example.com", "pw", false)
	alice := env.loginToken("alice@example.com", "pw")
	mallory := env.loginToken("mallory@example.com", "pw")
	product := env.createProduct("Copper Bottle", 49.99, "copper-bottles")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: product.ID, Quantity: 2}, alice)
	require.Equal(t, http.StatusOK, rec.Code)
	item := decodeJSON[models.CartItem](t, rec)

	// Mallory has no cart yet, and even with one cannot touch Alice's item.
	rec = env.doJSON(http.MethodPut, fmt.Sprintf("/cart/items/%d", item.ID), transport.UpdateCartItemRequest{Quantity: 1}, mallory)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.doJSON(http.MethodGet, "/cart/", nil, mallory)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.doJSON(http.MethodDelete, fmt.Sprintf("/cart/items/%d", item.ID), nil, mallory)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCart_EmbedsProducts(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	env.createUser("alice@example.com", "pw", false)
	bearer := env.loginToken("alice@example.com", "pw")
	product := env.createProduct("Copper Bottle", 49.99, "copper-bottles")

	rec := env.doJSON(http.MethodPost, "/cart/items/", transport.AddCartItemRequest{ProductID: product.ID, Quantity: 2}, bearer)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.doJSON(http.MethodGet, "/cart/", nil, bearer)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decodeJSON[models.Cart](t, rec)
	require.Len(t, cart.Items, 1)
	require.NotNil(t, cart.Items[0].Product)
	assert.Equal(t, "Copper Bottle", cart.Items[0].Product.Name)
	assert.Equal(t, 49.99, cart.Items[0].Product.Price)
}

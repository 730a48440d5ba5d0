package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/repo"
)

type CartService struct {
	Carts    *repo.CartRepo
	Products *repo.ProductRepo
}

// GetOrCreate returns the user's cart with items and their products,
// creating an empty cart on first access.
func (s *CartService) GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error) {
	cart, err := s.Carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.Carts.WithItems(ctx, cart.ID)
}

// AddItem puts quantity of a product into the user's cart. A second add of
// the same product merges into the existing line instead of creating a new
// one.
func (s *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*models.CartItem, error) {
	l := logging.FromContext(ctx).With("svc", "cart.add_item", "user_id", userID)

	if _, err := s.Products.ByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("add_item_error", "status", 404, "product_id", productID)
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}

	cart, err := s.Carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.Carts.ItemByProduct(ctx, cart.ID, productID)
	switch {
	case err == nil:
		item.Quantity += quantity
		if err := s.Carts.SaveItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = &models.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Quantity:  quantity,
		}
		if err := s.Carts.CreateItem(ctx, item); err != nil {
			return nil, err
		}
		return item, nil
	default:
		return nil, err
	}
}

// UpdateItem sets an item's quantity. A quantity of zero or less deletes the
// item; the second return value reports that deletion.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID uint, quantity int) (*models.CartItem, bool, error) {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, false, err
	}

	if quantity <= 0 {
		if err := s.Carts.DeleteItem(ctx, item); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}

	item.Quantity = quantity
	if err := s.Carts.SaveItem(ctx, item); err != nil {
		return nil, false, err
	}
	return item, false, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	item, err := s.ownedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.Carts.DeleteItem(ctx, item)
}

// ownedItem loads an item scoped to the caller's cart. Missing cart, missing
// item and foreign item are all the same NotFound.
func (s *CartService) ownedItem(ctx context.Context, userID, itemID uint) (*models.CartItem, error) {
	cart, err := s.Carts.ByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart not found", ErrNotFound)
		}
		return nil, err
	}

	item, err := s.Carts.ItemByID(ctx, cart.ID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cart item not found", ErrNotFound)
		}
		return nil, err
	}
	return item, nil
}

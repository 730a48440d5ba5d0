package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/models"
)

// ErrEmptyCart is returned when checkout finds no cart or no cart items.
var ErrEmptyCart = errors.New("cart is empty")

type OrderRepo struct {
	DB *gorm.DB
}

// CreateFromCart converts the user's cart into an order inside a single
// transaction: the order row, its items with prices re-read from the catalog
// at this moment, and the cart-item deletions commit together or not at all.
func (r *OrderRepo) CreateFromCart(ctx context.Context, userID uint, shippingAddress string) (*models.Order, error) {
	var orderID uint

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrEmptyCart
		}

		var total float64
		orderItems := make([]models.OrderItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}
			total += float64(item.Quantity) * product.Price
			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     product.Price,
			})
		}

		order := models.Order{
			UserID:          userID,
			TotalAmount:     total,
			ShippingAddress: shippingAddress,
			Status:          models.OrderStatusPending,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.WithItems(ctx, orderID)
}

func (r *OrderRepo) WithItems(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).Preload("Items.Product").First(&order, orderID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ByIDAndUser scopes the lookup to the owner, so a foreign order is
// indistinguishable from a missing one.
func (r *OrderRepo) ByIDAndUser(ctx context.Context, orderID, userID uint) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items.Product").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

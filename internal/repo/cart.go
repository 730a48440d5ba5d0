package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/models"
)

type CartRepo struct {
	DB *gorm.DB
}

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (r *CartRepo) GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{UserID: userID}
		if err := r.DB.WithContext(ctx).Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) ByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// WithItems reloads the cart with its items and their product records.
func (r *CartRepo) WithItems(ctx context.Context, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.DB.WithContext(ctx).Preload("Items.Product").First(&cart, cartID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepo) ItemByProduct(ctx context.Context, cartID, productID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) ItemByID(ctx context.Context, cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.DB.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepo) CreateItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *CartRepo) SaveItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Save(item).Error
}

func (r *CartRepo) DeleteItem(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Delete(item).Error
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/models"
)

type ProductRepo struct {
	DB *gorm.DB
}

// List pages through the catalog in insertion order, optionally narrowed to
// one category.
func (r *ProductRepo) List(ctx context.Context, category string, offset, limit int) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var products []models.Product
	if err := q.Order("id ASC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) ByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *ProductRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/mykafka"
	"github.com/coppercraft/shop/internal/repo"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

type CatalogService struct {
	Products *repo.ProductRepo
	Producer *mykafka.Producer
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Inventory   uint
	ImageURL    string
	Dimensions  string
	Weight      string
	Material    string
	Capacity    string
}

func (s *CatalogService) List(ctx context.Context, category string, skip, limit int) ([]models.Product, error) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.Products.List(ctx, category, skip, limit)
}

func (s *CatalogService) Get(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.Products.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product not found", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

// Create adds a catalog entry. Only admins may write to the catalog.
func (s *CatalogService) Create(ctx context.Context, caller *models.User, in CreateProductInput) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	if !caller.IsAdmin {
		l.Warn("create_product_error", "status", 403, "user_id", caller.ID)
		return nil, fmt.Errorf("%w: not authorized", ErrForbidden)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}

	product := &models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Inventory:   in.Inventory,
		ImageURL:    in.ImageURL,
		Dimensions:  in.Dimensions,
		Weight:      in.Weight,
		Material:    in.Material,
		Capacity:    in.Capacity,
	}
	if err := s.Products.Create(ctx, product); err != nil {
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]interface{}{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	}
	if err := s.Producer.PublishEvent(pubCtx, "product_events", fmt.Sprint(product.ID), event); err != nil {
		l.Error("kafka_publish_error", "topic", "product_events", "error", err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return product, nil
}

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

type OrderService struct {
	Orders   *repo.OrderRepo
	Producer *mykafka.Producer
}

// Place checks out the user's cart. The repository runs the whole sequence in
// one transaction, so a returned order always means the cart was cleared.
func (s *OrderService) Place(ctx context.Context, userID uint, shippingAddress string) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place", "user_id", userID)

	order, err := s.Orders.CreateFromCart(ctx, userID, shippingAddress)
	if err != nil {
		if errors.Is(err, repo.ErrEmptyCart) {
			l.Warn("place_order_error", "status", 400, "reason", "cart is empty")
			return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
		}
		return nil, err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	event := map[string]interface{}{
		"type":     "order_placed",
		"order_id": order.ID,
		"user_id":  userID,
		"total":    order.TotalAmount,
	}
	if err := s.Producer.PublishEvent(pubCtx, "order_events", fmt.Sprint(userID), event); err != nil {
		l.Error("kafka_publish_error", "topic", "order_events", "error", err)
	}

	l.Info("place_order_success", "order_id", order.ID, "total", order.TotalAmount)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.Orders.ListByUser(ctx, userID)
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.Orders.ByIDAndUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order not found", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

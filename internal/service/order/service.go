package order

import (
	"context"
	"errors"
	"io"
	"log"

	"canvas-store/internal/domain"
	"canvas-store/internal/metrics"
	"canvas-store/internal/notify"
	orderrepo "canvas-store/internal/repository/order"
)

// Service is the checkout orchestrator plus ownership-checked order reads.
type Service struct {
	orders     orderRepo
	carts      cartRepo
	users      userRepo
	dispatcher notify.Dispatcher
	metrics    *metrics.Metrics
	logger     *log.Logger
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) error
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

func New(orders orderrepo.Repository, carts cartRepo, users userRepo, dispatcher notify.Dispatcher, m *metrics.Metrics, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		orders:     orders,
		carts:      carts,
		users:      users,
		dispatcher: dispatcher,
		metrics:    m,
		logger:     logger,
	}
}

// Checkout converts the user's cart into an order.
//
// The order insert is the atomicity boundary: everything before it aborts
// the whole operation, everything after it (confirmation dispatch, cart
// clear) is best-effort and never fails the call. Order creation and cart
// clearing are two independent writes; a clear failure leaves the order
// committed and the cart intact.
func (s *Service) Checkout(ctx context.Context, userID string) (*domain.Order, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrEmptyCart
		}
		s.countCheckoutFailure()
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	// Totals come from the snapshot prices captured at add time, never from
	// the live product and never from the client.
	var totalCents int64
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		totalCents += item.PriceCents * int64(item.Quantity)
		items = append(items, domain.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			PriceCents:  item.PriceCents,
		})
	}

	order, err := s.orders.Create(ctx, orderrepo.CreateInput{
		UserID:     userID,
		TotalCents: totalCents,
		Status:     domain.OrderStatusConfirmed,
		Items:      items,
	})
	if err != nil {
		s.countCheckoutFailure()
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.OrdersCreated.Inc()
	}

	s.dispatchConfirmation(ctx, order)

	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order is already committed; a stale cart is acceptable.
		s.logger.Printf("checkout: cart clear failed user_id=%s order_id=%s error=%v", userID, order.ID, err)
		if s.metrics != nil {
			s.metrics.CartClearFailures.Inc()
		}
	}

	return order, nil
}

func (s *Service) dispatchConfirmation(ctx context.Context, order *domain.Order) {
	if s.dispatcher == nil {
		return
	}
	user, err := s.users.GetByID(ctx, order.UserID)
	if err != nil {
		s.logger.Printf("checkout: confirmation skipped, user lookup failed user_id=%s order_id=%s error=%v", order.UserID, order.ID, err)
		s.countNotificationFailure()
		return
	}
	if err := s.dispatcher.OrderConfirmed(ctx, order, user); err != nil {
		s.logger.Printf("checkout: confirmation dispatch failed order_id=%s error=%v", order.ID, err)
		s.countNotificationFailure()
	}
}

// Get returns the order after checking that requesterID owns it.
func (s *Service) Get(ctx context.Context, orderID, requesterID string) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != requesterID {
		return nil, domain.ErrForbidden
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *Service) countCheckoutFailure() {
	if s.metrics != nil {
		s.metrics.CheckoutFailures.Inc()
	}
}

func (s *Service) countNotificationFailure() {
	if s.metrics != nil {
		s.metrics.NotificationFailures.Inc()
	}
}

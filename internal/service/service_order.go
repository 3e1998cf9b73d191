package service

import (
	"context"

	"github.com/avolkova/gift-certificates/internal/links"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/store"
	"github.com/avolkova/gift-certificates/internal/validators"
	"github.com/avolkova/gift-certificates/models"
)

type orderService struct {
	orderRepository store.OrderRepository
	userRepository  store.UserRepository
	links           *links.Provider

	logger *logger.Logger
}

func NewOrderService(orderRepository store.OrderRepository, userRepository store.UserRepository, linkProvider *links.Provider, logger *logger.Logger) OrderService {
	return &orderService{
		orderRepository: orderRepository,
		userRepository:  userRepository,
		links:           linkProvider,
		logger:          logger,
	}
}

// FindByUserID validates both identifiers and fetches the order scoped
// to its owning user. A user that does not exist, an order that does
// not exist, and an order owned by someone else all produce the same
// not-found error, so the endpoint cannot be used to probe for other
// users' orders.
func (s *orderService) FindByUserID(ctx context.Context, userID, orderID int64) (models.Order, error) {
	if err := validators.ValidateID(userID); err != nil {
		return models.Order{}, err
	}
	if err := validators.ValidateID(orderID); err != nil {
		return models.Order{}, err
	}

	order, err := s.orderRepository.FindByUserID(ctx, userID, orderID)
	if err != nil {
		return models.Order{}, err
	}

	return s.links.Order(order), nil
}

// FindAllByUserID checks that the user exists before listing, so an
// absent user reports not-found rather than an empty page.
func (s *orderService) FindAllByUserID(ctx context.Context, userID int64, page, size int) ([]models.Order, error) {
	if err := validators.ValidateID(userID); err != nil {
		return nil, err
	}
	if err := validators.ValidatePagination(page, size); err != nil {
		return nil, err
	}

	if _, err := s.userRepository.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	orders, err := s.orderRepository.FindAllByUserID(ctx, userID, page, size)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i] = s.links.Order(orders[i])
	}

	return orders, nil
}

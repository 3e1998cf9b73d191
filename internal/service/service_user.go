package service

import (
	"context"

	"github.com/avolkova/gift-certificates/internal/links"
	"github.com/avolkova/gift-certificates/internal/logger"
	"github.com/avolkova/gift-certificates/internal/store"
	"github.com/avolkova/gift-certificates/internal/validators"
	"github.com/avolkova/gift-certificates/models"
)

type userService struct {
	userRepository store.UserRepository
	links          *links.Provider

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, linkProvider *links.Provider, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		links:          linkProvider,
		logger:         logger,
	}
}

func (s *userService) Signup(ctx context.Context, user models.User) (models.User, error) {
	if err := validators.ValidateUser(user); err != nil {
		return models.User{}, err
	}

	registered, err := s.userRepository.Create(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	return s.links.User(registered), nil
}

func (s *userService) FindAll(ctx context.Context, page, size int) ([]models.User, error) {
	if err := validators.ValidatePagination(page, size); err != nil {
		return nil, err
	}

	users, err := s.userRepository.FindAll(ctx, page, size)
	if err != nil {
		return nil, err
	}

	return s.enrich(users), nil
}

func (s *userService) FindByMostCost(ctx context.Context, page, size int) ([]models.User, error) {
	if err := validators.ValidatePagination(page, size); err != nil {
		return nil, err
	}

	users, err := s.userRepository.FindByMostCost(ctx, page, size)
	if err != nil {
		return nil, err
	}

	return s.enrich(users), nil
}

func (s *userService) FindByID(ctx context.Context, id int64) (models.User, error) {
	if err := validators.ValidateID(id); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	return s.links.User(user), nil
}

func (s *userService) enrich(users []models.User) []models.User {
	for i := range users {
		users[i] = s.links.User(users[i])
	}
	return users
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
	"github.com/google/uuid"
)

// ErrEmptyName is returned when a user is created without a name.
var ErrEmptyName = errors.New("user name is empty")

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, name string, planMonths int) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if planMonths == 0 {
		planMonths = domain.DefaultPlanMonths
	}
	if err := domain.ValidatePlanMonths(planMonths); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.User{
		ID:         uuid.New().String(),
		Name:       name,
		PlanMonths: planMonths,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) SetPlanMonths(ctx context.Context, id string, months int) error {
	if err := domain.ValidatePlanMonths(months); err != nil {
		return err
	}
	return s.users.UpdatePlanMonths(ctx, id, months)
}

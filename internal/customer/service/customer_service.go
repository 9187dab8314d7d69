package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/apoteklabs/apotek-cli/internal/customer/domain"
	"github.com/apoteklabs/apotek-cli/internal/customer/repository"
	"github.com/apoteklabs/apotek-cli/internal/platform/apperr"
	"github.com/apoteklabs/apotek-cli/internal/platform/logger"
)

type CustomerService interface {
	Register(ctx context.Context, name, phone string) (*domain.Customer, error)
	Lookup(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Register(ctx context.Context, name, phone string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("customer name must not be empty: %w", apperr.ErrInvalidArgument)
	}
	var phonePtr *string
	if phone = strings.TrimSpace(phone); phone != "" {
		phonePtr = &phone
	}
	customer, err := s.repo.Create(ctx, name, phonePtr)
	if err != nil {
		return nil, err
	}
	logger.Info("customer: registered %s with id %d", customer.Name, customer.ID)
	return customer, nil
}

func (s *customerService) Lookup(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

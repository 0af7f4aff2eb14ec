package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rkhan0192/sapienscare/internal/domain"
	"github.com/rkhan0192/sapienscare/internal/repository"
)

type CatalogUseCase interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}

type Cache interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	InvalidateProducts(ctx context.Context) error
}

type Service struct {
	repo  repository.ProductRepository
	cache Cache
}

type CreateProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	ImageURL    string `json:"image_url"`
}

func NewService(repo repository.ProductRepository, cache Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetProducts(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetProducts(ctx, products)
	}
	return products, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, errors.New("product name is required")
	}
	if input.PriceCents < 0 {
		return nil, errors.New("price must not be negative")
	}

	product := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		PriceCents:  input.PriceCents,
		ImageURL:    input.ImageURL,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateProducts(ctx)
	}
	return product, nil
}

var _ CatalogUseCase = (*Service)(nil)

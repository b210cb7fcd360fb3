// Package product реализует бизнес-логику работы с товарами.
package product

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/services"
)

// Repository определяет методы для работы с товарами в хранилище.
type Repository interface {
	CreateProduct(ctx context.Context, product models.Product) (int64, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	ReadProduct(ctx context.Context, id int64) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, product models.Product) (int64, error)
	RemoveProduct(ctx context.Context, id int64) (int64, error)
}

// Service реализует бизнес-логику работы с товарами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create сохраняет товар и возвращает его вместе с выданным ID.
func (s *Service) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product := models.NewProduct(0, req)
	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, services.Translate(err)
	}
	product.ID = id

	s.log.Info("created new product", slog.Int64("id", id))
	return &product, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *Service) Read(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.ReadProduct(ctx, id)
}

// Update полностью заменяет товар и возвращает запрос с ID из пути.
func (s *Service) Update(ctx context.Context, id int64, req models.ProductRequest) (*models.Product, int64, error) {
	product := models.NewProduct(id, req)
	count, err := s.repo.UpdateProduct(ctx, id, product)
	if err != nil {
		return nil, 0, services.Translate(err)
	}

	s.log.Info("updated product", slog.Int64("id", id), slog.Int64("updated_count", count))
	return &product, count, nil
}

// Remove удаляет товар вместе с заказами на него.
func (s *Service) Remove(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.RemoveProduct(ctx, id)
	if err != nil {
		return 0, services.Translate(err)
	}

	s.log.Info("removed product", slog.Int64("id", id), slog.Int64("deleted_count", count))
	return count, nil
}

// Package order реализует бизнес-логику работы с заказами.
// Дата заказа всегда проставляется сервером: при создании и при каждом обновлении.
package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/services"
)

// Repository определяет методы для работы с заказами в хранилище.
type Repository interface {
	CreateOrder(ctx context.Context, order models.Order) (int64, error)
	ListOrders(ctx context.Context) ([]*models.Order, error)
	ReadOrder(ctx context.Context, id int64) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, order models.Order) (int64, error)
	RemoveOrder(ctx context.Context, id int64) (int64, error)
}

// Service реализует бизнес-логику работы с заказами.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New создает новый экземпляр Service.
func New(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create сохраняет заказ с сегодняшней датой. Существование пользователя и товара
// заранее не проверяется: нарушение ссылки вернётся из хранилища как services.ErrReferenceNotFound.
func (s *Service) Create(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	order := models.NewOrder(0, req, s.now())
	id, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		return nil, services.Translate(err)
	}
	order.ID = id

	s.log.Info("created new order", slog.Int64("id", id), slog.String("date_time", order.DateTime))
	return &order, nil
}

func (s *Service) List(ctx context.Context) ([]*models.Order, error) {
	return s.repo.ListOrders(ctx)
}

func (s *Service) Read(ctx context.Context, id int64) (*models.Order, error) {
	return s.repo.ReadOrder(ctx, id)
}

// Update полностью заменяет заказ, дата заново проставляется сегодняшним днём.
func (s *Service) Update(ctx context.Context, id int64, req models.OrderRequest) (*models.Order, int64, error) {
	order := models.NewOrder(id, req, s.now())
	count, err := s.repo.UpdateOrder(ctx, id, order)
	if err != nil {
		return nil, 0, services.Translate(err)
	}

	s.log.Info("updated order", slog.Int64("id", id), slog.Int64("updated_count", count))
	return &order, count, nil
}

func (s *Service) Remove(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.RemoveOrder(ctx, id)
	if err != nil {
		return 0, services.Translate(err)
	}

	s.log.Info("removed order", slog.Int64("id", id), slog.Int64("deleted_count", count))
	return count, nil
}

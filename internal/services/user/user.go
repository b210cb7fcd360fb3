// Package user реализует бизнес-логику работы с пользователями магазина.
package user

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/services"
)

// Repository определяет методы для работы с пользователями в хранилище.
type Repository interface {
	// CreateUser добавляет пользователя и возвращает его ID.
	CreateUser(ctx context.Context, user models.User) (int64, error)
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// ReadUser возвращает пользователя по ID или nil.
	ReadUser(ctx context.Context, id int64) (*models.User, error)
	// UpdateUser перезаписывает пользователя и возвращает число изменённых строк.
	UpdateUser(ctx context.Context, id int64, user models.User) (int64, error)
	// RemoveUser удаляет пользователя и возвращает число удалённых строк.
	RemoveUser(ctx context.Context, id int64) (int64, error)
}

// Service реализует бизнес-логику работы с пользователями.
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

// Create сохраняет пользователя и возвращает его вместе с выданным ID.
func (s *Service) Create(ctx context.Context, req models.UserRequest) (*models.User, error) {
	user := models.NewUser(0, req)
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, services.Translate(err)
	}
	user.ID = id

	s.log.Info("created new user", slog.Int64("id", id))
	return &user, nil
}

// List возвращает всех пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Read возвращает пользователя по ID, nil без ошибки если его нет.
func (s *Service) Read(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.ReadUser(ctx, id)
}

// Update полностью заменяет данные пользователя. Результат — запрос с ID из пути
// независимо от того, была ли строка в хранилище.
func (s *Service) Update(ctx context.Context, id int64, req models.UserRequest) (*models.User, int64, error) {
	user := models.NewUser(id, req)
	count, err := s.repo.UpdateUser(ctx, id, user)
	if err != nil {
		return nil, 0, services.Translate(err)
	}

	s.log.Info("updated user", slog.Int64("id", id), slog.Int64("updated_count", count))
	return &user, count, nil
}

// Remove удаляет пользователя и возвращает число удалённых строк.
func (s *Service) Remove(ctx context.Context, id int64) (int64, error) {
	count, err := s.repo.RemoveUser(ctx, id)
	if err != nil {
		return 0, services.Translate(err)
	}

	s.log.Info("removed user", slog.Int64("id", id), slog.Int64("deleted_count", count))
	return count, nil
}

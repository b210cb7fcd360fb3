package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-api/internal/models"
	"github.com/magabrotheeeer/store-api/internal/services"
	"github.com/magabrotheeeer/store-api/internal/storage"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateOrder(ctx context.Context, order models.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListOrders(ctx context.Context) ([]*models.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Order), args.Error(1)
}

func (m *RepoMock) ReadOrder(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *RepoMock) UpdateOrder(ctx context.Context, id int64, order models.Order) (int64, error) {
	args := m.Called(ctx, id, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) RemoveOrder(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func ptr[T any](v T) *T {
	return &v
}

func fixedClock(day int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.October, day, 15, 4, 5, 0, time.UTC)
	}
}

func TestService_CreateStampsDate(t *testing.T) {
	req := models.OrderRequest{
		UserID:    1,
		ProductID: 1,
		DateTime:  "1999-01-01",
		Status:    ptr("pending"),
	}
	want := models.Order{UserID: 1, ProductID: 1, DateTime: "2026-10-19", Status: "pending"}

	repo := new(RepoMock)
	repo.On("CreateOrder", mock.Anything, want).Return(int64(1), nil).Once()

	got, err := New(repo, newNoopLogger(), WithClock(fixedClock(19))).Create(context.Background(), req)
	require.NoError(t, err)

	want.ID = 1
	assert.Equal(t, &want, got, "client supplied date is ignored")
	repo.AssertExpectations(t)
}

func TestService_CreateMissingReference(t *testing.T) {
	repo := new(RepoMock)
	repo.On("CreateOrder", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("storage.CreateOrder: %w", storage.ErrForeignKey)).Once()

	got, err := New(repo, newNoopLogger()).Create(context.Background(), models.OrderRequest{
		UserID:    100,
		ProductID: 1,
		Status:    ptr("pending"),
	})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}

func TestService_UpdateRestampsDate(t *testing.T) {
	req := models.OrderRequest{UserID: 1, ProductID: 1, Status: ptr("shipped")}

	repo := new(RepoMock)
	repo.On("UpdateOrder", mock.Anything, int64(1), mock.MatchedBy(func(o models.Order) bool {
		return o.ID == 1 && o.DateTime == "2026-10-20" && o.Status == "shipped"
	})).Return(int64(1), nil).Once()

	got, count, err := New(repo, newNoopLogger(), WithClock(fixedClock(20))).Update(context.Background(), 1, req)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, "2026-10-20", got.DateTime)
	repo.AssertExpectations(t)
}

func TestService_UpdateError(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UpdateOrder", mock.Anything, int64(1), mock.Anything).Return(int64(0), errors.New("db down")).Once()

	got, count, err := New(repo, newNoopLogger()).Update(context.Background(), 1, models.OrderRequest{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, services.ErrReferenceNotFound))
	assert.Nil(t, got)
	assert.Zero(t, count)
}

func TestService_ReadListRemove(t *testing.T) {
	order := &models.Order{ID: 1, UserID: 1, ProductID: 1, DateTime: "2026-10-19", Status: "pending"}

	repo := new(RepoMock)
	repo.On("ReadOrder", mock.Anything, int64(1)).Return(order, nil).Once()
	repo.On("ListOrders", mock.Anything).Return([]*models.Order{order}, nil).Once()
	repo.On("RemoveOrder", mock.Anything, int64(1)).Return(int64(1), nil).Once()

	s := New(repo, newNoopLogger())
	ctx := context.Background()

	got, err := s.Read(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, order, got)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*models.Order{order}, list)

	count, err := s.Remove(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	repo.AssertExpectations(t)
}

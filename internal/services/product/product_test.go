package product

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-api/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListProducts(ctx context.Context) ([]*models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Product), args.Error(1)
}

func (m *RepoMock) ReadProduct(ctx context.Context, id int64) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *RepoMock) UpdateProduct(ctx context.Context, id int64, product models.Product) (int64, error) {
	args := m.Called(ctx, id, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) RemoveProduct(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_Create(t *testing.T) {
	req := models.ProductRequest{Name: ptr("Pen"), Description: ptr("Blue ink"), Price: ptr(1.5)}

	repo := new(RepoMock)
	repo.On("CreateProduct", mock.Anything, models.Product{Name: "Pen", Description: "Blue ink", Price: 1.5}).
		Return(int64(1), nil).Once()

	got, err := New(repo, newNoopLogger()).Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, &models.Product{ID: 1, Name: "Pen", Description: "Blue ink", Price: 1.5}, got)
	repo.AssertExpectations(t)
}

func TestService_CreateZeroPrice(t *testing.T) {
	req := models.ProductRequest{Name: ptr("Gift"), Description: ptr(""), Price: ptr(0.0)}

	repo := new(RepoMock)
	repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p models.Product) bool {
		return p.Price == 0 && p.Name == "Gift" && p.Description == ""
	})).Return(int64(2), nil).Once()

	got, err := New(repo, newNoopLogger()).Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
	repo.AssertExpectations(t)
}

func TestService_Update(t *testing.T) {
	req := models.ProductRequest{Name: ptr("Pencil"), Description: ptr("HB"), Price: ptr(0.7)}

	tests := []struct {
		name      string
		count     int64
		repoErr   error
		wantCount int64
		wantErr   bool
	}{
		{name: "row updated", count: 1, wantCount: 1},
		{name: "no such row", count: 0, wantCount: 0},
		{name: "repo error", repoErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			repo.On("UpdateProduct", mock.Anything, int64(7), models.NewProduct(7, req)).
				Return(tt.count, tt.repoErr).Once()

			got, count, err := New(repo, newNoopLogger()).Update(context.Background(), 7, req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, &models.Product{ID: 7, Name: "Pencil", Description: "HB", Price: 0.7}, got)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Remove(t *testing.T) {
	repo := new(RepoMock)
	repo.On("RemoveProduct", mock.Anything, int64(1)).Return(int64(1), nil).Once()
	repo.On("RemoveProduct", mock.Anything, int64(1)).Return(int64(0), nil).Once()

	s := New(repo, newNoopLogger())

	count, err := s.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	count, err = s.Remove(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, count)

	repo.AssertExpectations(t)
}

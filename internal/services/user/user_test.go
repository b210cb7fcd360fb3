package user

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

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *RepoMock) ReadUser(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, id int64, user models.User) (int64, error) {
	args := m.Called(ctx, id, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *RepoMock) RemoveUser(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func ptr[T any](v T) *T {
	return &v
}

var annReq = models.UserRequest{
	FirstName:  ptr("Ann"),
	SecondName: ptr("Lee"),
	Email:      ptr("a@x.com"),
	Password:   ptr("secret1"),
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(r *RepoMock)
		want    *models.User
		wantErr bool
	}{
		{
			name: "success create",
			setup: func(r *RepoMock) {
				r.On("CreateUser", mock.Anything, models.NewUser(0, annReq)).Return(int64(1), nil).Once()
			},
			want: &models.User{ID: 1, FirstName: "Ann", SecondName: "Lee", Email: "a@x.com", Password: "secret1"},
		},
		{
			name: "repo error",
			setup: func(r *RepoMock) {
				r.On("CreateUser", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			tt.setup(repo)

			got, err := New(repo, newNoopLogger()).Create(context.Background(), annReq)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_Update_MissingIDStillAnswers(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UpdateUser", mock.Anything, int64(99), models.NewUser(99, annReq)).Return(int64(0), nil).Once()

	got, count, err := New(repo, newNoopLogger()).Update(context.Background(), 99, annReq)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, int64(99), got.ID)
	assert.Equal(t, "Ann", got.FirstName)
	repo.AssertExpectations(t)
}

func TestService_ReadListRemove(t *testing.T) {
	repo := new(RepoMock)
	user := &models.User{ID: 3, FirstName: "Ann"}
	repo.On("ReadUser", mock.Anything, int64(3)).Return(user, nil).Once()
	repo.On("ReadUser", mock.Anything, int64(4)).Return(nil, nil).Once()
	repo.On("ListUsers", mock.Anything).Return([]*models.User{user}, nil).Once()
	repo.On("RemoveUser", mock.Anything, int64(3)).Return(int64(1), nil).Once()
	repo.On("RemoveUser", mock.Anything, int64(5)).Return(int64(0), errors.New("db down")).Once()

	s := New(repo, newNoopLogger())
	ctx := context.Background()

	got, err := s.Read(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	got, err = s.Read(ctx, 4)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := s.Remove(ctx, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = s.Remove(ctx, 5)
	assert.Error(t, err)

	repo.AssertExpectations(t)
}

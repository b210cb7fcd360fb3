package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/store-api/internal/config"
	"github.com/magabrotheeeer/store-api/internal/migrations"
	"github.com/magabrotheeeer/store-api/internal/models"
)

// newSQLiteStorage открывает хранилище в новом файле и создаёт схему.
func newSQLiteStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(config.DriverSQLite, filepath.Join(t.TempDir(), "data", "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})

	require.NoError(t, migrations.Run(s.DB, config.DriverSQLite))
	return s
}

// reset очищает все таблицы, чтобы подтесты не видели данных друг друга.
func reset(t *testing.T, s *Storage) {
	t.Helper()
	for _, table := range []string{"orders", "products", "users"} {
		_, err := s.DB.Exec("DELETE FROM " + table)
		require.NoError(t, err)
	}
}

// testUser возвращает пользователя с уникальной почтой.
func testUser() models.User {
	return models.User{
		FirstName:  "Ann",
		SecondName: "Lee",
		Email:      uuid.NewString()[:8] + "@example.com",
		Password:   "secret1",
	}
}

func testProduct() models.Product {
	return models.Product{
		Name:        "Pen",
		Description: "Blue ink",
		Price:       1.5,
	}
}

// createUserAndProduct создаёт пару строк, на которые может ссылаться заказ.
func createUserAndProduct(t *testing.T, s *Storage) (int64, int64) {
	t.Helper()
	ctx := context.Background()

	userID, err := s.CreateUser(ctx, testUser())
	require.NoError(t, err)
	productID, err := s.CreateProduct(ctx, testProduct())
	require.NoError(t, err)
	return userID, productID
}

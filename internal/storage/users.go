package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/models"
)

// CreateUser вставляет нового пользователя и возвращает выданный ему ID.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO users (first_name, second_name, email, password)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var id int64
	err := s.DB.QueryRowContext(ctx, query,
		user.FirstName, user.SecondName, user.Email, user.Password).Scan(&id)
	if err != nil {
		return 0, classify(op, err)
	}
	return id, nil
}

// ListUsers возвращает всех пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, first_name, second_name, email, password
			  FROM users
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.User, 0)
	for rows.Next() {
		var item models.User
		if err := rows.Scan(&item.ID, &item.FirstName, &item.SecondName, &item.Email, &item.Password); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadUser возвращает пользователя по ID или nil, если такого нет.
func (s *Storage) ReadUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.ReadUser"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, first_name, second_name, email, password
			  FROM users WHERE id = $1`
	var result models.User
	err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&result.ID, &result.FirstName, &result.SecondName, &result.Email, &result.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateUser перезаписывает все поля пользователя с данным ID
// и возвращает количество изменённых строк. Отсутствующий ID даёт 0 без ошибки.
func (s *Storage) UpdateUser(ctx context.Context, id int64, user models.User) (int64, error) {
	const op = "storage.UpdateUser"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE users
			  SET first_name = $1, second_name = $2, email = $3, password = $4
			  WHERE id = $5`
	res, err := s.DB.ExecContext(ctx, query,
		user.FirstName, user.SecondName, user.Email, user.Password, id)
	if err != nil {
		return 0, classify(op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// RemoveUser удаляет пользователя по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveUser(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveUser"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, classify(op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

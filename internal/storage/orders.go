package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/models"
)

// CreateOrder вставляет заказ и возвращает его ID. Дата берётся из order как есть,
// её проставляет сервисный слой. Ссылки на пользователя и товар проверяет сама база.
func (s *Storage) CreateOrder(ctx context.Context, order models.Order) (int64, error) {
	const op = "storage.CreateOrder"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO orders (user_id, product_id, date_time, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		order.UserID, order.ProductID, order.DateTime, order.Status).Scan(&id); err != nil {
		return 0, classify(op, err)
	}
	return id, nil
}

// ListOrders возвращает все заказы.
func (s *Storage) ListOrders(ctx context.Context) ([]*models.Order, error) {
	const op = "storage.ListOrders"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, product_id, date_time, status
			  FROM orders
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Order, 0)
	for rows.Next() {
		var item models.Order
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.DateTime, &item.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadOrder возвращает заказ по ID или nil, если такого нет.
func (s *Storage) ReadOrder(ctx context.Context, id int64) (*models.Order, error) {
	const op = "storage.ReadOrder"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, product_id, date_time, status
			  FROM orders WHERE id = $1`
	var result models.Order
	err := s.DB.QueryRowContext(ctx, query, id).
		Scan(&result.ID, &result.UserID, &result.ProductID, &result.DateTime, &result.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateOrder перезаписывает заказ и возвращает количество изменённых строк.
func (s *Storage) UpdateOrder(ctx context.Context, id int64, order models.Order) (int64, error) {
	const op = "storage.UpdateOrder"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE orders
			  SET user_id = $1, product_id = $2, date_time = $3, status = $4
			  WHERE id = $5`
	res, err := s.DB.ExecContext(ctx, query,
		order.UserID, order.ProductID, order.DateTime, order.Status, id)
	if err != nil {
		return 0, classify(op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// RemoveOrder удаляет заказ по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveOrder(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveOrder"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

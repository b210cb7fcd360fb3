package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/models"
)

// CreateProduct вставляет новый товар и возвращает его ID.
func (s *Storage) CreateProduct(ctx context.Context, product models.Product) (int64, error) {
	const op = "storage.CreateProduct"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `INSERT INTO products (name, description, price)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		product.Name, product.Description, product.Price).Scan(&id); err != nil {
		return 0, classify(op, err)
	}
	return id, nil
}

// ListProducts возвращает все товары.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	const op = "storage.ListProducts"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, description, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]*models.Product, 0)
	for rows.Next() {
		var item models.Product
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ReadProduct возвращает товар по ID или nil, если такого нет.
func (s *Storage) ReadProduct(ctx context.Context, id int64) (*models.Product, error) {
	const op = "storage.ReadProduct"
	if err := ctxDone(ctx, op); err != nil {
		return nil, err
	}

	var result models.Product
	err := s.DB.QueryRowContext(ctx, `SELECT id, name, description, price FROM products WHERE id = $1`, id).
		Scan(&result.ID, &result.Name, &result.Description, &result.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// UpdateProduct перезаписывает товар и возвращает количество изменённых строк.
func (s *Storage) UpdateProduct(ctx context.Context, id int64, product models.Product) (int64, error) {
	const op = "storage.UpdateProduct"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	query := `UPDATE products
			  SET name = $1, description = $2, price = $3
			  WHERE id = $4`
	res, err := s.DB.ExecContext(ctx, query, product.Name, product.Description, product.Price, id)
	if err != nil {
		return 0, classify(op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

// RemoveProduct удаляет товар по ID и возвращает количество удалённых строк.
func (s *Storage) RemoveProduct(ctx context.Context, id int64) (int64, error) {
	const op = "storage.RemoveProduct"
	if err := ctxDone(ctx, op); err != nil {
		return 0, err
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return 0, classify(op, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return rowsAffected, nil
}

package models

import "strconv"

// ProductRequest используется для приёма данных товара из JSON-запроса.
// Поля передаются указателями: нулевая цена и пустое описание допустимы, отсутствующие поля — нет.
type ProductRequest struct {
	Name        *string  `json:"name" validate:"required,max=40"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
}

// Product представляет товар, доступный в магазине.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// NewProduct собирает запись товара из запроса и идентификатора.
// Непровалидированный запрос с nil-полями даёт нулевые значения.
func NewProduct(id int64, req ProductRequest) Product {
	p := Product{
		ID:          id,
		Name:        deref(req.Name),
		Description: deref(req.Description),
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	return p
}

func (Product) Columns() []string {
	return []string{"id", "name", "description", "price"}
}

func (p Product) Values() []string {
	return []string{
		strconv.FormatInt(p.ID, 10),
		p.Name,
		p.Description,
		strconv.FormatFloat(p.Price, 'f', -1, 64),
	}
}

package models

import (
	"strconv"
	"time"
)

// OrderDateLayout формат даты заказа в хранилище и в ответах.
const OrderDateLayout = time.DateOnly

// OrderRequest используется для приёма данных заказа из JSON-запроса.
// Поле DateTime принимается ради совместимости, но всегда перезаписывается сервером.
type OrderRequest struct {
	UserID    int64   `json:"user_id" validate:"required"`
	ProductID int64   `json:"product_id" validate:"required"`
	DateTime  string  `json:"date_time,omitempty"`
	Status    *string `json:"status" validate:"required,max=30"`
}

// Order представляет заказ пользователя на товар.
type Order struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	ProductID int64  `json:"product_id"`
	DateTime  string `json:"date_time"` // Дата заказа в формате 2006-01-02, проставляется сервером
	Status    string `json:"status"`
}

// NewOrder собирает запись заказа из запроса, идентификатора и даты, выданной сервером.
func NewOrder(id int64, req OrderRequest, date time.Time) Order {
	return Order{
		ID:        id,
		UserID:    req.UserID,
		ProductID: req.ProductID,
		DateTime:  date.Format(OrderDateLayout),
		Status:    deref(req.Status),
	}
}

func (Order) Columns() []string {
	return []string{"id", "user_id", "product_id", "date_time", "status"}
}

func (o Order) Values() []string {
	return []string{
		strconv.FormatInt(o.ID, 10),
		strconv.FormatInt(o.UserID, 10),
		strconv.FormatInt(o.ProductID, 10),
		o.DateTime,
		o.Status,
	}
}

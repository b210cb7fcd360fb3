// Package handlers содержит общие для всех обработчиков сущностей помощники:
// имена сущностей в ответах, разбор id из пути и выбор формата ответа.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
)

// Entity задаёт имена сущности в ответах: singular для одной записи, plural для списка.
type Entity struct {
	Singular string
	Plural   string
}

var (
	User    = Entity{Singular: "user", Plural: "users"}
	Product = Entity{Singular: "product", Plural: "products"}
	Order   = Entity{Singular: "order", Plural: "orders"}
)

// ParseID достаёт положительный идентификатор из параметра пути {id}.
func ParseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be positive", raw)
	}
	return id, nil
}

// WantsHTML сообщает, что клиент предпочитает HTML-таблицу JSON-ответу.
func WantsHTML(r *http.Request) bool {
	return render.GetAcceptedContentType(r) == render.ContentTypeHTML
}

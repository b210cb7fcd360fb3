// Package read реализует HTTP-обработчик получения одной записи по id.
//
// Отсутствующая запись не считается ошибкой: в ответе будет null.
package read

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-api/internal/http/handlers"
	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/http/view"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
)

// Handler отдаёт одну запись сущности: JSON по умолчанию или HTML-таблицу.
type Handler[T view.Row] struct {
	log     *slog.Logger
	service Service[T]
	entity  handlers.Entity
}

// Service описывает бизнес-логику чтения записи.
type Service[T view.Row] interface {
	Read(ctx context.Context, id int64) (*T, error)
}

// New создаёт обработчик чтения для сущности entity.
func New[T view.Row](log *slog.Logger, service Service[T], entity handlers.Entity) *Handler[T] {
	return &Handler[T]{
		log:     log,
		service: service,
		entity:  entity,
	}
}

// ServeHTTP читает запись по id из пути. Отсутствующая запись отдаётся как null
// или как пустая таблица.
func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity.Singular),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := handlers.ParseID(r)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		log.Error("failed to read record", sl.ID(id), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read "+h.entity.Singular))
		return
	}
	log.Info("success to read record", sl.ID(id), slog.Bool("found", res != nil))

	if handlers.WantsHTML(r) {
		var zero T
		var rows []view.Row
		if res != nil {
			rows = append(rows, *res)
		}
		page, err := view.Table(h.entity.Singular, zero.Columns(), rows)
		if err != nil {
			log.Error("failed to render table", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read "+h.entity.Singular))
			return
		}
		render.HTML(w, r, page)
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		h.entity.Singular: res,
	}))
}

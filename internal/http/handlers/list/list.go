// Package list реализует HTTP-обработчик получения всех записей сущности.
package list

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

// Handler отдаёт все записи сущности: JSON по умолчанию или HTML-таблицу.
type Handler[T view.Row] struct {
	log     *slog.Logger
	service Service[T]
	entity  handlers.Entity
}

// Service описывает бизнес-логику получения списка записей.
type Service[T view.Row] interface {
	List(ctx context.Context) ([]*T, error)
}

// New создаёт обработчик списка для сущности entity.
func New[T view.Row](log *slog.Logger, service Service[T], entity handlers.Entity) *Handler[T] {
	return &Handler[T]{
		log:     log,
		service: service,
		entity:  entity,
	}
}

// ServeHTTP отдаёт записи вместе с их количеством в list_count.
func (h *Handler[T]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity.Plural),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list "+h.entity.Plural))
		return
	}
	log.Info("success to list records", sl.Count(int64(len(res))))

	if handlers.WantsHTML(r) {
		var zero T
		rows := make([]view.Row, 0, len(res))
		for _, rec := range res {
			rows = append(rows, *rec)
		}
		page, err := view.Table(h.entity.Plural, zero.Columns(), rows)
		if err != nil {
			log.Error("failed to render table", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not list "+h.entity.Plural))
			return
		}
		render.HTML(w, r, page)
		return
	}

	if res == nil {
		res = []*T{}
	}
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count":    len(res),
		h.entity.Plural: res,
	}))
}

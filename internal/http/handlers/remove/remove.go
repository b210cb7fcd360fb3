// Package remove реализует HTTP-обработчик удаления записи по id.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/store-api/internal/http/handlers"
	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
)

// Handler управляет HTTP-запросами на удаление записей.
type Handler struct {
	log     *slog.Logger
	service Service
	entity  handlers.Entity
}

// Service описывает бизнес-логику удаления записи.
type Service interface {
	Remove(ctx context.Context, id int64) (int64, error)
}

// New создаёт обработчик удаления для сущности entity.
func New(log *slog.Logger, service Service, entity handlers.Entity) *Handler {
	return &Handler{
		log:     log,
		service: service,
		entity:  entity,
	}
}

// ServeHTTP удаляет запись по id из пути. Повторное удаление не ошибка: deleted_count равен 0.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.remove"
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

	count, err := h.service.Remove(r.Context(), id)
	if err != nil {
		log.Error("failed to remove record", sl.ID(id), sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete "+h.entity.Singular))
		return
	}

	log.Info("success to remove record", sl.ID(id), sl.Count(count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message":       h.entity.Singular + "_delete",
		"deleted_count": count,
	}))
}

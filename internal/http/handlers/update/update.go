// Package update реализует HTTP-обработчик полной замены записи по id.
//
// Если записи с таким id нет, ответ всё равно успешный, а updated_count равен 0.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/store-api/internal/http/handlers"
	"github.com/magabrotheeeer/store-api/internal/http/response"
	"github.com/magabrotheeeer/store-api/internal/lib/sl"
	"github.com/magabrotheeeer/store-api/internal/lib/validation"
	"github.com/magabrotheeeer/store-api/internal/services"
)

// Handler управляет HTTP-запросами на замену записей.
// T — тип записи хранилища, R — тип входящего запроса.
type Handler[T, R any] struct {
	log      *slog.Logger
	service  Service[T, R]
	entity   handlers.Entity
	validate *validator.Validate
}

// Service описывает бизнес-логику обновления записи.
type Service[T, R any] interface {
	Update(ctx context.Context, id int64, req R) (*T, int64, error)
}

// New создаёт обработчик обновления для сущности entity.
func New[T, R any](log *slog.Logger, service Service[T, R], entity handlers.Entity) *Handler[T, R] {
	return &Handler[T, R]{
		log:      log,
		service:  service,
		entity:   entity,
		validate: validation.New(),
	}
}

// ServeHTTP заменяет запись с id из пути данными из тела и возвращает
// итоговую запись вместе с количеством изменённых строк.
func (h *Handler[T, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.update"
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

	var req R
	if err = render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.TypeError(typeErr))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err = h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid request body"))
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(validateErrs))
		return
	}

	res, count, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		log.Error("failed to update record", sl.ID(id), sl.Err(err))
		if errors.Is(err, services.ErrReferenceNotFound) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(services.ErrReferenceNotFound.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update "+h.entity.Singular))
		return
	}

	log.Info("success to update record", sl.ID(id), sl.Count(count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		h.entity.Singular: res,
		"updated_count":   count,
	}))
}

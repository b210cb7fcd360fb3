// Package create реализует HTTP-обработчик создания записи.
//
// Handler принимает JSON с данными сущности, валидирует их, вызывает сервис
// и возвращает созданную запись вместе с выданным id.
package create

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

// Handler управляет HTTP-запросами на создание записей.
// T — тип записи хранилища, R — тип входящего запроса.
type Handler[T, R any] struct {
	log      *slog.Logger
	service  Service[T, R]
	entity   handlers.Entity
	validate *validator.Validate
}

// Service описывает бизнес-логику создания записи.
type Service[T, R any] interface {
	Create(ctx context.Context, req R) (*T, error)
}

// New создаёт обработчик создания для сущности entity.
func New[T, R any](log *slog.Logger, service Service[T, R], entity handlers.Entity) *Handler[T, R] {
	return &Handler[T, R]{
		log:      log,
		service:  service,
		entity:   entity,
		validate: validation.New(),
	}
}

// ServeHTTP декодирует и валидирует тело запроса, создаёт запись и возвращает её.
// Неверный тип поля и нарушение ограничений дают 422, ссылка на несуществующую запись — 409.
func (h *Handler[T, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("entity", h.entity.Singular),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req R
	if err := render.DecodeJSON(r.Body, &req); err != nil {
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

	if err := h.validate.Struct(req); err != nil {
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

	res, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create record", sl.Err(err))
		if errors.Is(err, services.ErrReferenceNotFound) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error(services.ErrReferenceNotFound.Error()))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create "+h.entity.Singular))
		return
	}

	log.Info("success to create record")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		h.entity.Singular: res,
	}))
}

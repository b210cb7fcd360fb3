package storeapi

import (
	"log/slog"
	"net/http"

	"github.com/magabrotheeeer/store-api/internal/http/handlers"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/create"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/list"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/read"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/remove"
	"github.com/magabrotheeeer/store-api/internal/http/handlers/update"
	"github.com/magabrotheeeer/store-api/internal/models"
	orderservice "github.com/magabrotheeeer/store-api/internal/services/order"
	productservice "github.com/magabrotheeeer/store-api/internal/services/product"
	userservice "github.com/magabrotheeeer/store-api/internal/services/user"
)

// Обработчики маршрутов вместе с аннотациями swag, из которых генерируется пакет docs.

// listUsers godoc
// @Summary Список пользователей
// @Description Возвращает все записи и их количество в list_count. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Users
// @Produce json
// @Produce html
// @Success 200 {object} response.Response "list_count и users"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users [get]
func listUsers(log *slog.Logger, svc *userservice.Service) http.HandlerFunc {
	return list.New[models.User](log, svc, handlers.User).ServeHTTP
}

// readUser godoc
// @Summary Получить пользователя
// @Description Возвращает запись по id или null, если её нет. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Users
// @Produce json
// @Produce html
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "user или null"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users/{id} [get]
func readUser(log *slog.Logger, svc *userservice.Service) http.HandlerFunc {
	return read.New[models.User](log, svc, handlers.User).ServeHTTP
}

// createUser godoc
// @Summary Создать пользователя
// @Description Создаёт запись и возвращает её с выданным id.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UserRequest true "Данные пользователя"
// @Success 200 {object} response.Response "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users [post]
func createUser(log *slog.Logger, svc *userservice.Service) http.HandlerFunc {
	return create.New[models.User, models.UserRequest](log, svc, handlers.User).ServeHTTP
}

// updateUser godoc
// @Summary Обновить пользователя
// @Description Полностью заменяет запись. Если записи нет, updated_count равен 0.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param request body models.UserRequest true "Данные пользователя"
// @Success 200 {object} response.Response "Запись и updated_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или id"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users/{id} [put]
func updateUser(log *slog.Logger, svc *userservice.Service) http.HandlerFunc {
	return update.New[models.User, models.UserRequest](log, svc, handlers.User).ServeHTTP
}

// removeUser godoc
// @Summary Удалить пользователя
// @Description Удаляет запись по id. Повторное удаление даёт deleted_count 0. Заказы, ссылающиеся на пользователя, удаляются вместе с ним.
// @Tags Users
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "message и deleted_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /users/{id} [delete]
func removeUser(log *slog.Logger, svc *userservice.Service) http.HandlerFunc {
	return remove.New(log, svc, handlers.User).ServeHTTP
}

// listProducts godoc
// @Summary Список товаров
// @Description Возвращает все записи и их количество в list_count. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Products
// @Produce json
// @Produce html
// @Success 200 {object} response.Response "list_count и products"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /products [get]
func listProducts(log *slog.Logger, svc *productservice.Service) http.HandlerFunc {
	return list.New[models.Product](log, svc, handlers.Product).ServeHTTP
}

// readProduct godoc
// @Summary Получить товар
// @Description Возвращает запись по id или null, если её нет. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Products
// @Produce json
// @Produce html
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "product или null"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /products/{id} [get]
func readProduct(log *slog.Logger, svc *productservice.Service) http.HandlerFunc {
	return read.New[models.Product](log, svc, handlers.Product).ServeHTTP
}

// createProduct godoc
// @Summary Создать товар
// @Description Создаёт запись и возвращает её с выданным id.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Данные товара"
// @Success 200 {object} response.Response "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /products [post]
func createProduct(log *slog.Logger, svc *productservice.Service) http.HandlerFunc {
	return create.New[models.Product, models.ProductRequest](log, svc, handlers.Product).ServeHTTP
}

// updateProduct godoc
// @Summary Обновить товар
// @Description Полностью заменяет запись. Если записи нет, updated_count равен 0.
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param request body models.ProductRequest true "Данные товара"
// @Success 200 {object} response.Response "Запись и updated_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или id"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /products/{id} [put]
func updateProduct(log *slog.Logger, svc *productservice.Service) http.HandlerFunc {
	return update.New[models.Product, models.ProductRequest](log, svc, handlers.Product).ServeHTTP
}

// removeProduct godoc
// @Summary Удалить товар
// @Description Удаляет запись по id. Повторное удаление даёт deleted_count 0. Заказы, ссылающиеся на товар, удаляются вместе с ним.
// @Tags Products
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "message и deleted_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /products/{id} [delete]
func removeProduct(log *slog.Logger, svc *productservice.Service) http.HandlerFunc {
	return remove.New(log, svc, handlers.Product).ServeHTTP
}

// listOrders godoc
// @Summary Список заказов
// @Description Возвращает все записи и их количество в list_count. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Orders
// @Produce json
// @Produce html
// @Success 200 {object} response.Response "list_count и orders"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /orders [get]
func listOrders(log *slog.Logger, svc *orderservice.Service) http.HandlerFunc {
	return list.New[models.Order](log, svc, handlers.Order).ServeHTTP
}

// readOrder godoc
// @Summary Получить заказ
// @Description Возвращает запись по id или null, если её нет. При Accept: text/html отдаёт HTML-таблицу.
// @Tags Orders
// @Produce json
// @Produce html
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "order или null"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /orders/{id} [get]
func readOrder(log *slog.Logger, svc *orderservice.Service) http.HandlerFunc {
	return read.New[models.Order](log, svc, handlers.Order).ServeHTTP
}

// createOrder godoc
// @Summary Создать заказ
// @Description Создаёт запись и возвращает её с выданным id. Дата заказа проставляется сервером.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body models.OrderRequest true "Данные заказа"
// @Success 200 {object} response.Response "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Пользователь или товар не существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /orders [post]
func createOrder(log *slog.Logger, svc *orderservice.Service) http.HandlerFunc {
	return create.New[models.Order, models.OrderRequest](log, svc, handlers.Order).ServeHTTP
}

// updateOrder godoc
// @Summary Обновить заказ
// @Description Полностью заменяет запись. Если записи нет, updated_count равен 0. Дата заказа проставляется сервером заново.
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param request body models.OrderRequest true "Данные заказа"
// @Success 200 {object} response.Response "Запись и updated_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или id"
// @Failure 409 {object} response.ErrorResponse "Пользователь или товар не существует"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /orders/{id} [put]
func updateOrder(log *slog.Logger, svc *orderservice.Service) http.HandlerFunc {
	return update.New[models.Order, models.OrderRequest](log, svc, handlers.Order).ServeHTTP
}

// removeOrder godoc
// @Summary Удалить заказ
// @Description Удаляет запись по id. Повторное удаление даёт deleted_count 0.
// @Tags Orders
// @Produce json
// @Param id path int true "ID записи"
// @Success 200 {object} response.Response "message и deleted_count"
// @Failure 400 {object} response.ErrorResponse "Некорректный id"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /orders/{id} [delete]
func removeOrder(log *slog.Logger, svc *orderservice.Service) http.HandlerFunc {
	return remove.New(log, svc, handlers.Order).ServeHTTP
}

// ready godoc
// @Summary Готовность
// @Description Проверяет, что хранилище отвечает и схема создана.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response "Хранилище доступно"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Router /health [get]
func ready(h *health.Handler) http.HandlerFunc {
	return h.Ready
}

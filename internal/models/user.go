// Package models содержит доменные структуры интернет-магазина: пользователей, товары и заказы.
// Для каждой сущности есть две модели: запрос (данные от клиента, без id)
// и запись (строка хранилища с id, выданным сервером).
package models

import "strconv"

// UserRequest используется для приёма данных пользователя из JSON-запроса
// при создании и полной замене записи. Строки передаются указателями:
// отсутствующее поле — ошибка, пустая строка — допустимое значение.
type UserRequest struct {
	FirstName  *string `json:"first_name" validate:"required,max=40"`     // Имя
	SecondName *string `json:"second_name" validate:"required,max=40"`    // Фамилия
	Email      *string `json:"email" validate:"required,max=100"`         // Адрес электронной почты
	Password   *string `json:"password" validate:"required,min=5,max=50"` // Пароль
}

// User представляет зарегистрированного пользователя магазина.
type User struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// NewUser собирает запись пользователя из запроса и идентификатора.
func NewUser(id int64, req UserRequest) User {
	return User{
		ID:         id,
		FirstName:  deref(req.FirstName),
		SecondName: deref(req.SecondName),
		Email:      deref(req.Email),
		Password:   deref(req.Password),
	}
}

// Columns возвращает заголовки колонок для табличного представления.
func (User) Columns() []string {
	return []string{"id", "first_name", "second_name", "email", "password"}
}

// Values возвращает значения колонок в порядке Columns.
func (u User) Values() []string {
	return []string{strconv.FormatInt(u.ID, 10), u.FirstName, u.SecondName, u.Email, u.Password}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Package services содержит общие для сервисов бизнес-логики ошибки.
// Сами сервисы лежат в подпакетах user, product и order.
package services

import (
	"errors"
	"fmt"

	"github.com/magabrotheeeer/store-api/internal/storage"
)

// ErrReferenceNotFound возвращается, когда заказ ссылается на несуществующего пользователя или товар.
var ErrReferenceNotFound = errors.New("referenced user or product does not exist")

// Translate приводит ошибки хранилища к ошибкам бизнес-логики, прочие возвращает как есть.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, storage.ErrForeignKey) {
		return fmt.Errorf("%w: %w", ErrReferenceNotFound, err)
	}
	return err
}

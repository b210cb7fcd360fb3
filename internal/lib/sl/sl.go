// Package sl содержит вспомогательные функции для структурированного логирования через slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
//
//	log.Error("failed to read user", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// ID возвращает slog.Attr с идентификатором записи.
func ID(id int64) slog.Attr {
	return slog.Int64("id", id)
}

// Count возвращает slog.Attr с количеством затронутых строк.
func Count(n int64) slog.Attr {
	return slog.Int64("count", n)
}

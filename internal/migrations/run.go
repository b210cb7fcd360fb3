// Package migrations создаёт схему хранилища: таблицы users, products и orders.
// SQL-файлы встроены в бинарник, для каждого драйвера свой каталог.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgxv5 "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/magabrotheeeer/store-api/internal/config"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// Run применяет все миграции для драйвера driver. Повторный запуск ничего не меняет.
// Закрывать migrate нельзя: вместе с ним закрылся бы переданный db.
func Run(db *sql.DB, driver string) error {
	const op = "migrations.Run"

	var (
		dbDriver database.Driver
		dir      string
		name     string
		err      error
	)
	switch driver {
	case config.DriverSQLite:
		dir, name = "sqlite", "sqlite"
		dbDriver, err = sqlite.WithInstance(db, &sqlite.Config{})
	case config.DriverPostgres:
		dir, name = "postgres", "pgx_v5"
		dbDriver, err = pgxv5.WithInstance(db, &pgxv5.Config{})
	default:
		return fmt.Errorf("%s: unknown driver %q", op, driver)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	src, err := iofs.New(files, dir)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, dbDriver)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

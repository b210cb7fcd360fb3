// Package storage реализует слой доступа к данным интернет-магазина
// поверх database/sql. Поддерживаются два драйвера: SQLite (один файл на диске)
// и PostgreSQL через pgx. Запросы общие: SQLite принимает плейсхолдеры $N по порядковому номеру.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/magabrotheeeer/store-api/internal/config"
)

// ErrForeignKey возвращается, когда запись ссылается на несуществующего
// пользователя или товар либо удаляется строка, на которую ссылаются заказы.
var ErrForeignKey = errors.New("foreign key violation")

const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

type sqliteDSN struct {
	dsn    string
	dir    string // каталог файла базы, пустой для базы в памяти и текущего каталога
	memory bool
}

// parseSQLiteDSN принимает путь к файлу, URI вида file:... или :memory:
// и дописывает прагмы к уже имеющимся параметрам.
func parseSQLiteDSN(dsn string) sqliteDSN {
	dsn = strings.TrimSpace(dsn)

	path, query, _ := strings.Cut(dsn, "?")
	memory := path == ":memory:" || path == "file::memory:" || strings.Contains(query, "mode=memory")

	if !strings.HasPrefix(path, "file:") && !memory {
		path = filepath.Clean(path)
	}

	var dir string
	if !memory {
		if d := filepath.Dir(strings.TrimPrefix(path, "file:")); d != "." {
			dir = d
		}
	}

	pragmas := sqlitePragmas
	if memory {
		// WAL недоступен для базы в памяти
		pragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	}
	if query != "" {
		query += "&" + pragmas
	} else {
		query = pragmas
	}

	return sqliteDSN{
		dsn:    path + "?" + query,
		dir:    dir,
		memory: memory,
	}
}

// Storage инкапсулирует пул соединений с базой данных
// и реализует методы работы с пользователями, товарами и заказами.
type Storage struct {
	DB     *sql.DB
	driver string
}

// New открывает хранилище для драйвера driver и проверяет соединение.
// Для SQLite dsn — путь к файлу, каталог создаётся при необходимости.
func New(driver, dsn string) (*Storage, error) {
	const op = "storage.New"

	var (
		db  *sql.DB
		err error
	)
	switch driver {
	case config.DriverSQLite:
		conn := parseSQLiteDSN(dsn)
		if conn.dir != "" {
			if err = os.MkdirAll(conn.dir, 0o755); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
		db, err = sql.Open("sqlite", conn.dsn)
		if err == nil && conn.memory {
			// у каждого соединения своя база в памяти, поэтому соединение одно
			db.SetMaxOpenConns(1)
			db.SetConnMaxLifetime(0)
			db.SetConnMaxIdleTime(0)
		}
	case config.DriverPostgres:
		db, err = sql.Open("pgx", dsn)
	default:
		return nil, fmt.Errorf("%s: unknown driver %q", op, driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB:     db,
		driver: driver,
	}, nil
}

// Driver возвращает имя драйвера, с которым открыто хранилище.
func (s *Storage) Driver() string {
	return s.driver
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// CheckDatabaseReady проверяет, что схема создана и база отвечает.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	const op = "storage.CheckDatabaseReady"

	for _, table := range []string{"users", "products", "orders"} {
		// Имя таблицы из фиксированного списка, подстановка безопасна.
		if _, err := s.DB.ExecContext(ctx, "SELECT 1 FROM "+table+" LIMIT 1"); err != nil {
			return fmt.Errorf("%s: required table %s missing or query error: %w", op, table, err)
		}
	}
	return nil
}

// classify оборачивает ошибку операции op, нарушения внешних ключей приводит к ErrForeignKey.
func classify(op string, err error) error {
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w: %s", op, ErrForeignKey, err.Error())
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

func ctxDone(ctx context.Context, op string) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
		return nil
	}
}

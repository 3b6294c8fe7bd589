// postgres предоставляет реализацию storage.Storage на базе PostgreSQL.
//
// Хранилище строково-ориентированное: SQL собирается из имени таблицы и
// ключей фильтра/полей, идентификаторы экранируются через pgx.Identifier,
// значения всегда уходят плейсхолдерами. Ключи сортируются, чтобы текст
// запроса был детерминированным.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pribylovaa/people-service/internal/storage"
)

type Storage struct {
	db *pgxpool.Pool
	// opTimeout ограничивает длительность одной операции; 0 — без лимита.
	opTimeout time.Duration
}

// New создает и инициализирует пул соединений к PostgreSQL.
func New(ctx context.Context, dbURL string, opTimeout time.Duration) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db, opTimeout: opTimeout}, nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// opCtx ограничивает операцию сконфигурированным таймаутом.
func (s *Storage) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opTimeout > 0 {
		return context.WithTimeout(ctx, s.opTimeout)
	}
	return ctx, func() {}
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)

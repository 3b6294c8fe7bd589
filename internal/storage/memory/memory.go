// memory предоставляет потокобезопасную реализацию storage.Storage в памяти:
// для тестов и как лёгкое встраиваемое хранилище без внешних зависимостей.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/pribylovaa/people-service/internal/storage"
)

// Storage — строковое хранилище в памяти. Строки таблицы хранятся в порядке
// вставки; на входе и выходе строки копируются, так что внутреннее состояние
// не алиасится с данными вызывающего.
type Storage struct {
	mu     sync.RWMutex
	tables map[string][]storage.Row
}

// New создаёт пустое хранилище.
func New() *Storage {
	return &Storage{tables: make(map[string][]storage.Row)}
}

// Select возвращает копии строк таблицы, удовлетворяющих фильтру,
// в порядке вставки. Неизвестная таблица — пустой результат.
func (s *Storage) Select(_ context.Context, table string, filter storage.Filter) ([]storage.Row, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []storage.Row
	for _, row := range s.tables[table] {
		if matches(row, filter) {
			result = append(result, maps.Clone(row))
		}
	}

	return result, nil
}

// Insert добавляет копию строки в конец таблицы.
func (s *Storage) Insert(_ context.Context, table string, fields storage.Row) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tables[table] = append(s.tables[table], maps.Clone(fields))
	return nil
}

// Delete удаляет строки, удовлетворяющие фильтру;
// отсутствие совпадений — не ошибка.
func (s *Storage) Delete(_ context.Context, table string, filter storage.Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.tables[table]
	kept := rows[:0]
	for _, row := range rows {
		if !matches(row, filter) {
			kept = append(kept, row)
		}
	}
	s.tables[table] = kept

	return nil
}

func matches(row storage.Row, filter storage.Filter) bool {
	for col, want := range filter {
		if row[col] != want {
			return false
		}
	}
	return true
}

// Проверка соответствия контракту.
var _ storage.Storage = (*Storage)(nil)

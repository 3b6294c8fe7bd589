package postgres

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/people-service/internal/storage"
)

// Select возвращает строки таблицы, удовлетворяющие фильтру, в текстовой
// хранимой форме. Набор колонок берётся из самой таблицы (SELECT *),
// отсутствие совпадений — пустой результат.
func (s *Storage) Select(ctx context.Context, table string, filter storage.Filter) ([]storage.Row, error) {
	const op = "storage/postgres/Select"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cond, args := where(filter)
	query := fmt.Sprintf(`SELECT * FROM %s%s`, pgx.Identifier{table}.Sanitize(), cond)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var result []storage.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		row := make(storage.Row, len(fields))
		for i, fd := range fields {
			row[fd.Name] = textValue(values[i])
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// Insert сохраняет новую строку таблицы.
func (s *Storage) Insert(ctx context.Context, table string, fields storage.Row) error {
	const op = "storage/postgres/Insert"

	if len(fields) == 0 {
		return fmt.Errorf("%s: empty fields", op)
	}

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	keys := sortedKeys(fields)

	cols := make([]string, 0, len(keys))
	placeholders := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		cols = append(cols, pgx.Identifier{k}.Sanitize())
		placeholders = append(placeholders, "$"+strconv.Itoa(i+1))
		args = append(args, fields[k])
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		pgx.Identifier{table}.Sanitize(), strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Delete удаляет строки таблицы, удовлетворяющие фильтру;
// отсутствие совпадений — не ошибка.
func (s *Storage) Delete(ctx context.Context, table string, filter storage.Filter) error {
	const op = "storage/postgres/Delete"

	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	cond, args := where(filter)
	query := fmt.Sprintf(`DELETE FROM %s%s`, pgx.Identifier{table}.Sanitize(), cond)

	if _, err := s.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// where собирает условие равенства по отсортированным ключам фильтра.
// Пустой фильтр — пустое условие (вся таблица).
func where(filter storage.Filter) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}

	keys := sortedKeys(filter)

	conds := make([]string, 0, len(keys))
	args := make([]any, 0, len(keys))
	for i, k := range keys {
		conds = append(conds, fmt.Sprintf("%s = $%d", pgx.Identifier{k}.Sanitize(), i+1))
		args = append(args, filter[k])
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// textValue приводит значение колонки к текстовой хранимой форме Row:
// NULL — пустая строка, даты без компонента времени — YYYY-MM-DD,
// прочие time.Time — RFC3339.
func textValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

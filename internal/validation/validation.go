// validation содержит проверки полей доменной модели people-service.
//
// Функции пакета не несут состояния и вызываются синхронно: каждая либо
// завершается успешно (возвращая нормализованное значение, если оно есть),
// либо возвращает *Error с именем поля и нарушенным правилом. Правила
// заданы сентинелами пакета и проверяются через errors.Is; имя поля
// извлекается через errors.As.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

// Сентинелы нарушенных правил.
var (
	// ErrNumeric — значение не является числовым идентификатором.
	ErrNumeric = errors.New("value is not numeric")
	// ErrLength — длина значения вне допустимого диапазона.
	ErrLength = errors.New("length out of range")
	// ErrAlphabetic — значение содержит не только буквы.
	ErrAlphabetic = errors.New("value is not alphabetic")
	// ErrDatetime — значение не является корректной датой.
	ErrDatetime = errors.New("value is not a valid date")
	// ErrBit — значение не является битовым флагом 0/1.
	ErrBit = errors.New("value is not a bit")
)

// dateLayouts — принимаемые строковые формы даты.
var dateLayouts = []string{time.DateOnly, time.DateTime, time.RFC3339}

// Error описывает нарушение правила валидации конкретного поля.
type Error struct {
	Field string // имя поля или аргумента
	Rule  error  // нарушенное правило (один из сентинелов пакета)
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Rule)
}

// Unwrap отдаёт нарушенное правило, чтобы работал errors.Is.
func (e *Error) Unwrap() error {
	return e.Rule
}

func fail(field string, rule error) *Error {
	return &Error{Field: field, Rule: rule}
}

// Numeric проверяет, что значение — числовой идентификатор: строка из цифр
// либо неотрицательное целое. Возвращает каноническую строковую форму.
func Numeric(v any, field string) (string, error) {
	switch val := v.(type) {
	case string:
		if !digits(val) {
			return "", fail(field, ErrNumeric)
		}
		return val, nil
	case int:
		return numericInt(int64(val), field)
	case int32:
		return numericInt(int64(val), field)
	case int64:
		return numericInt(val, field)
	case uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case uint64:
		return strconv.FormatUint(val, 10), nil
	default:
		return "", fail(field, ErrNumeric)
	}
}

func numericInt(n int64, field string) (string, error) {
	if n < 0 {
		return "", fail(field, ErrNumeric)
	}
	return strconv.FormatInt(n, 10), nil
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// MaxLength проверяет длину строки: от 1 до max символов (в рунах).
// Нижняя граница входит в правило — пустые значения недопустимы.
func MaxLength(v string, max int, field string) error {
	if n := utf8.RuneCountInString(v); n < 1 || n > max {
		return fail(field, ErrLength)
	}
	return nil
}

// Alphabetic проверяет, что строка непуста и состоит только из букв
// (unicode.IsLetter, без привязки к конкретному алфавиту).
func Alphabetic(v string, field string) error {
	if v == "" {
		return fail(field, ErrAlphabetic)
	}
	for _, r := range v {
		if !unicode.IsLetter(r) {
			return fail(field, ErrAlphabetic)
		}
	}
	return nil
}

// Datetime проверяет, что значение — дата: time.Time принимается как есть,
// строка обязана разбираться одной из поддерживаемых форм
// (YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339). Возвращает разобранное время.
func Datetime(v any, field string) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, val); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fail(field, ErrDatetime)
	default:
		return time.Time{}, fail(field, ErrDatetime)
	}
}

// Bit проверяет, что значение представляет битовый флаг 0/1, и возвращает
// его булеву форму. Принимаются ровно: булевы значения, целые 0 и 1,
// строки "0", "1", "true" и "false".
func Bit(v any, field string) (bool, error) {
	switch val := v.(type) {
	case bool:
		return val, nil
	case int:
		return bitInt(int64(val), field)
	case int32:
		return bitInt(int64(val), field)
	case int64:
		return bitInt(val, field)
	case uint:
		return bitInt(int64(val), field)
	case uint64:
		return bitInt(int64(val), field)
	case string:
		switch val {
		case "0", "false":
			return false, nil
		case "1", "true":
			return true, nil
		default:
			return false, fail(field, ErrBit)
		}
	default:
		return false, fail(field, ErrBit)
	}
}

func bitInt(n int64, field string) (bool, error) {
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fail(field, ErrBit)
	}
}

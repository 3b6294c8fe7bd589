package service

import (
	"context"
	"fmt"

	"github.com/pribylovaa/people-service/internal/models"
	"github.com/pribylovaa/people-service/internal/pkg/log"
	"github.com/pribylovaa/people-service/internal/storage"
	"github.com/pribylovaa/people-service/internal/validation"
)

// PersonByID возвращает сущность из таблицы people по идентификатору.
//
// Валидация:
//   - id обязан быть числовым (строка из цифр) — иначе ошибка валидации
//     по полю person_id.
//
// Поведение:
//   - при отсутствии строки возвращает ErrNotFound, текст ошибки несёт
//     запрошенный идентификатор;
//   - найденная строка считается доверенной: сущность восстанавливается
//     через models.FromRow без повторной валидации;
//   - ошибки хранилища доходят до вызывающего как есть.
func (s *Service) PersonByID(ctx context.Context, id string) (*models.Person, error) {
	const op = "service/people/PersonByID"

	lg := log.From(ctx).With("op", op, "person_id", id)

	normalized, err := validation.Numeric(id, "person_id")
	if err != nil {
		lg.Warn("invalid argument: person_id is not numeric")

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.store.Select(ctx, models.TablePeople, storage.Filter{"person_id": normalized})
	if err != nil {
		lg.Error("storage error on Select", "err", err)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(rows) == 0 {
		lg.Warn("person not found")

		return nil, fmt.Errorf("%s: person %s: %w", op, normalized, ErrNotFound)
	}

	return models.FromRow(rows[0]), nil
}

// SavePerson сохраняет сущность новой строкой таблицы people.
//
// Сохранение — всегда вставка: person_id в поля вставки не входит,
// идентификатор назначает хранилище. Повторный вызов для сущности с
// уже известным person_id создаст ещё одну строку, а не обновит прежнюю.
//
// Поведение:
//   - nil-сущность — ErrInvalidArgument;
//   - ошибки хранилища доходят до вызывающего как есть.
func (s *Service) SavePerson(ctx context.Context, person *models.Person) error {
	const op = "service/people/SavePerson"

	lg := log.From(ctx).With("op", op)

	if person == nil {
		lg.Warn("invalid argument: nil person")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	fields := person.Fields()
	delete(fields, "person_id")

	if err := s.store.Insert(ctx, models.TablePeople, fields); err != nil {
		lg.Error("storage error on Insert", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// DeletePerson удаляет строку сущности из таблицы people.
//
// Поведение:
//   - nil-сущность — ErrInvalidArgument;
//   - сущность без идентификатора — no-op: обращения к хранилищу нет;
//   - сущность в памяти не меняется: поля и person_id остаются на месте,
//     отсутствие совпавших строк при повторном удалении — не ошибка;
//   - ошибки хранилища доходят до вызывающего как есть.
func (s *Service) DeletePerson(ctx context.Context, person *models.Person) error {
	const op = "service/people/DeletePerson"

	lg := log.From(ctx).With("op", op)

	if person == nil {
		lg.Warn("invalid argument: nil person")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	id := person.PersonID()
	if id == "" {
		lg.Info("skip delete: person has no id")

		return nil
	}

	if err := s.store.Delete(ctx, models.TablePeople, storage.Filter{"person_id": id}); err != nil {
		lg.Error("storage error on Delete", "err", err)

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// service содержит бизнес-логику people-service: операции персистентности
// доменной сущности Person (чтение по идентификатору, сохранение, удаление)
// поверх строкового хранилища storage.Storage.
package service

import (
	"errors"

	"github.com/pribylovaa/people-service/internal/storage"
)

// Сентинельные ошибки сервисного слоя.
//
// Ошибки валидации возвращаются как есть (*validation.Error с нарушенным
// правилом); ошибки хранилища доходят до вызывающего без преобразования —
// обе категории лишь оборачиваются меткой op.
var (
	// ErrInvalidArgument — некорректные входные данные операции.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена.
	ErrNotFound = errors.New("not found")
)

// Service — описывает бизнес-логику people-service.
type Service struct {
	store storage.Storage
}

// New создает новый экземпляр Service.
func New(store storage.Storage) *Service {
	return &Service{store: store}
}

// storage содержит контракт слоя хранилища people-service.
//
// Хранилище строково-ориентированное: операции принимают имя таблицы,
// поля строки и фильтр равенства и ничего не знают о доменной модели.
// Значения ходят в текстовой хранимой форме (см. storage.Row); пустой
// фильтр означает «все строки таблицы».
//
// Ошибки реализаций доходят до вызывающего как есть — слой выше их не
// интерпретирует и не преобразует.
package storage

import "context"

// Row — строка таблицы: колонка -> значение в текстовой хранимой форме.
type Row map[string]string

// Filter — фильтр равенства: колонка -> требуемое значение;
// условия объединяются по И.
type Filter map[string]string

// Storage — контракт строкового хранилища.
type Storage interface {
	// Select возвращает строки таблицы, удовлетворяющие фильтру.
	// Отсутствие совпадений — пустой результат, не ошибка.
	Select(ctx context.Context, table string, filter Filter) ([]Row, error)
	// Insert сохраняет новую строку таблицы.
	Insert(ctx context.Context, table string, fields Row) error
	// Delete удаляет строки таблицы, удовлетворяющие фильтру.
	// Отсутствие совпадений — не ошибка.
	Delete(ctx context.Context, table string, filter Filter) error
}

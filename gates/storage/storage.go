package storage

import (
	"github.com/Slot148/tlist/internal/codes"
	errs "github.com/bdlm/errors"
	std "github.com/bdlm/std/error"
)

var (
	ErrOutOfRange        = errs.New(codes.ErrOutOfRange, "position out of range")
	ErrKindMismatch      = errs.New(codes.ErrKindMismatch, "element type does not match the declared kind")
	ErrDestroyed         = errs.New(codes.ErrDestroyed, "list destroyed")
	ErrExhausted         = errs.New(codes.ErrExhausted, "cursor exhausted")
	ErrCursorInvalidated = errs.New(codes.ErrCursorInvalidated, "list modified since the cursor last advanced")
	ErrCursorReleased    = errs.New(codes.ErrCursorReleased, "cursor released")
)

// Sequence это единый набор операций над односвязным списком, не зависящий от вида элементов.
// Позиции отсчитываются от нуля, обход всегда идет от головы к хвосту.
type Sequence[E any] interface {
	// Kind возвращает вид элементов, заданный при создании
	Kind() Kind
	// Append добавляет элемент в конец
	Append(value E) error
	// PopFront удаляет первый элемент и передает его вызывающей стороне
	PopFront() (E, bool)
	// Len считает элементы полным обходом
	Len() int
	// Peek возвращает элемент на позиции без передачи владения
	Peek(position int) (E, bool)
	// Replace перезаписывает элемент на позиции
	Replace(position int, value E) error
	// RemoveAt удаляет элемент на позиции
	RemoveAt(position int) error
	// InsertAt вставляет элемент перед текущим элементом на позиции
	InsertAt(position int, value E) error
	// TakeAt удаляет элемент на позиции и передает его вызывающей стороне
	TakeAt(position int) (E, bool)
	// ForEach вызывает visitor для каждого элемента по порядку
	ForEach(visitor func(value E)) error
	// Destroy освобождает все узлы списка
	Destroy() error
}

// Code возвращает код ошибки хранилища или 0, если ошибка не содержит кода.
func Code(err error) std.Code {
	if coded, ok := err.(interface{ Code() std.Code }); ok {
		return coded.Code()
	}
	return 0
}

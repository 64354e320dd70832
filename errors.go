package dllist

import "github.com/sirkon/errors"

const (
	// ErrNotIterable источник для From не может быть разложен на элементы.
	ErrNotIterable errors.Const = "source is not iterable"

	// ErrInvalidOperand операнд Concat не является связанным списком.
	ErrInvalidOperand errors.Const = "given operand is not a valid linked list"
)

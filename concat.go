package dllist

import (
	"fmt"

	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// Sequence связанный список, чьи значения можно получить целиком.
type Sequence[T any] interface {
	Linked
	ToArray() []T
}

// Concat возврат нового списка из значений данного списка, за которыми
// следуют значения other. Ни один из операндов не изменяется, узлы нового
// списка с ними не разделяются.
func (l *List[T]) Concat(other Sequence[T]) (*List[T], error) {
	if !Is(other) {
		err := errors.Wrap(ErrInvalidOperand, "concat").Str("operand-type", fmt.Sprintf("%T", other))
		l.log().OperandRejected("concat", err)
		return nil, err
	}

	tail := other.ToArray()
	values := append(slices.Grow(l.ToArray(), len(tail)), tail...)
	res := New(values...)
	res.logger = l.logger

	return res, nil
}

var _ Sequence[int] = &List[int]{}

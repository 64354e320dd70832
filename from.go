package dllist

import (
	"fmt"
	"reflect"

	"github.com/sirkon/errors"
)

// From построение нового списка из элементов источника в порядке их следования.
//
// Источником может быть строка (разбивается посимвольно), Iterator, слайс
// или массив. Для nil и прочих значений, включая числа и словари,
// возвращается ошибка ErrNotIterable.
func From(source any, opts ...Option) (*List[any], error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, errors.Wrap(err, "setup list")
	}

	l := &List[any]{
		nodes:  make([]node[any], 0, c.capacity),
		logger: c.logger,
	}

	switch v := source.(type) {
	case nil:
		err := errors.Wrap(ErrNotIterable, "build list").Str("source", "<nil>")
		c.log().OperandRejected("from", err)
		return nil, err
	case string:
		for _, r := range v {
			l.pushOne(string(r))
		}
		return l, nil
	case Iterator:
		if isNilPointer(v) {
			err := errors.Wrap(ErrNotIterable, "build list").Str("source-type", fmt.Sprintf("%T", source))
			c.log().OperandRejected("from", err)
			return nil, err
		}
		for v.Next() {
			l.pushOne(v.Value())
		}
		if err := v.Err(); err != nil {
			c.log().SourceFailed(err)
			return nil, errors.Wrap(err, "iterate source").Int("values-read", l.Len())
		}
		return l, nil
	}

	rv := reflect.ValueOf(source)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Len() > cap(l.nodes) {
			l.nodes = make([]node[any], 0, rv.Len())
		}
		for i := 0; i < rv.Len(); i++ {
			l.pushOne(rv.Index(i).Interface())
		}
		return l, nil
	default:
		err := errors.Wrap(ErrNotIterable, "build list").Str("source-type", fmt.Sprintf("%T", source))
		c.log().OperandRejected("from", err)
		return nil, err
	}
}

// FromSlice построение нового списка из значений слайса.
// Слайс не удерживается списком.
func FromSlice[T any](values []T) *List[T] {
	return New(values...)
}

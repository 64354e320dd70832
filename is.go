package dllist

import "reflect"

// Is проверка того, что значение имеет форму связанного списка.
//
// Проверка структурная и поверхностная: проверяется лишь наличие длины
// и граничных узлов, сами связи не проверяются. Поэтому, например,
// map[string]any{"length": 0, "head": nil, "tail": nil} тоже считается
// списком. Записью считается любой словарь со строковыми ключами,
// например map[string]int. Узлы записи проверяются только при
// положительной числовой длине, так что запись с отрицательной или
// нечисловой длиной проходит проверку без узлов.
// Полная проверка инвариантов делается методом List.Check.
func Is(candidate any) bool {
	switch v := candidate.(type) {
	case nil:
		return false
	case Linked:
		if isNilPointer(v) {
			return false
		}
		if v.Len() > 0 {
			return v.Front() != nil && v.Back() != nil
		}
		return true
	}

	rec, ok := asRecord(candidate)
	if !ok {
		return false
	}

	return isRecord(rec)
}

var (
	listKeys = []string{"length", "head", "tail"}
	nodeKeys = []string{"value", "next", "prev"}
)

func isRecord(rec reflect.Value) bool {
	if !hasKeys(rec, listKeys) {
		return false
	}

	length, ok := recordLength(recordField(rec, "length"))
	if !ok || length <= 0 {
		return true
	}

	for _, key := range []string{"head", "tail"} {
		n, ok := asRecord(recordField(rec, key))
		if !ok || !hasKeys(n, nodeKeys) {
			return false
		}
	}

	return true
}

// asRecord словарь со строковыми ключами. nil словарь записью не является.
func asRecord(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return reflect.Value{}, false
	}

	return rv, true
}

func recordField(rec reflect.Value, key string) any {
	v := rec.MapIndex(reflect.ValueOf(key).Convert(rec.Type().Key()))
	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}

func hasKeys(rec reflect.Value, keys []string) bool {
	for _, key := range keys {
		if !rec.MapIndex(reflect.ValueOf(key).Convert(rec.Type().Key())).IsValid() {
			return false
		}
	}

	return true
}

// recordLength численное значение длины записи. Нечисловая длина
// не требует проверки узлов.
func recordLength(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

type boundary[T any] struct {
	value T
	next  bool
	prev  bool
}

func (b boundary[T]) Value() any {
	return b.value
}

func (b boundary[T]) HasNext() bool {
	return b.next
}

func (b boundary[T]) HasPrev() bool {
	return b.prev
}

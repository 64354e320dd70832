package dllist

// link ссылка на узел в арене списка.
// Нулевое значение означает отсутствие узла, значение i+1 указывает на nodes[i].
// Разрядность совпадает с int, поэтому любой индекс арены представим.
type link uint

const noLink link = 0

func (r link) empty() bool {
	return r == noLink
}

func (r link) index() int {
	return int(r) - 1
}

// node узел содержащий данное значение в связанном списке.
type node[T any] struct {
	prev link
	next link

	value T
}

package dllist

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// New конструктор списка с данными начальными значениями.
// Вызов без аргументов даёт пустой список, любое переданное значение,
// в том числе нулевое, попадает в список.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.Push(values...)
	return l
}

// List двусвязный список значений.
// Узлы хранятся в арене списка, связи между ними задаются индексами.
// Нулевое значение является пустым списком готовым к использованию.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	nodes  []node[T]
	head   link
	tail   link
	length int

	logger Logger
}

// Len возврат длины списка.
func (l *List[T]) Len() int {
	return l.length
}

// SetLogger задаёт логгер списка. nil отключает логирование.
func (l *List[T]) SetLogger(logger Logger) {
	l.logger = logger
}

// Push добавление значений в конец списка в порядке их следования.
// Возвращает новую длину списка.
func (l *List[T]) Push(values ...T) int {
	l.nodes = slices.Grow(l.nodes, len(values))
	for _, v := range values {
		l.pushOne(v)
	}

	return l.length
}

// Unshift добавление значений в начало списка с сохранением их порядка:
// Unshift(a, b) для списка [x] даёт [a, b, x].
// Возвращает новую длину списка.
func (l *List[T]) Unshift(values ...T) int {
	l.nodes = slices.Grow(l.nodes, len(values))
	for i := len(values) - 1; i >= 0; i-- {
		l.unshiftOne(values[i])
	}

	return l.length
}

// Clear сброс списка в пустое состояние.
func (l *List[T]) Clear() {
	l.nodes = nil
	l.head = noLink
	l.tail = noLink
	l.length = 0
}

// ToArray возврат значений списка от начала к концу.
// Каждый вызов возвращает новый слайс.
func (l *List[T]) ToArray() []T {
	res := make([]T, 0, l.length)
	for cur := l.head; !cur.empty(); cur = l.node(cur).next {
		res = append(res, l.node(cur).value)
	}

	return res
}

// First получение первого значения списка.
func (l *List[T]) First() (T, bool) {
	if l.head.empty() {
		var zero T
		return zero, false
	}

	return l.node(l.head).value, true
}

// Last получение последнего значения списка.
func (l *List[T]) Last() (T, bool) {
	if l.tail.empty() {
		var zero T
		return zero, false
	}

	return l.node(l.tail).value, true
}

// Front для реализации Linked.
func (l *List[T]) Front() Boundary {
	return l.boundary(l.head)
}

// Back для реализации Linked.
func (l *List[T]) Back() Boundary {
	return l.boundary(l.tail)
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List[")
	for i, v := range l.ToArray() {
		if i > 0 {
			b.WriteString(", ")
		}
		_, _ = fmt.Fprint(&b, v)
	}
	b.WriteByte(']')

	return b.String()
}

func (l *List[T]) pushOne(v T) {
	n := l.alloc(v)
	if l.tail.empty() {
		// Первый узел является одновременно и головой, и хвостом.
		l.head = n
		l.tail = n
		l.length++
		return
	}

	l.node(n).prev = l.tail
	l.node(l.tail).next = n
	l.tail = n
	l.length++
}

func (l *List[T]) unshiftOne(v T) {
	n := l.alloc(v)
	if l.head.empty() {
		l.head = n
		l.tail = n
		l.length++
		return
	}

	l.node(n).next = l.head
	l.node(l.head).prev = n
	l.head = n
	l.length++
}

// alloc размещение нового несвязанного узла в арене.
// Указатели на узлы арены после вызова становятся недействительными.
func (l *List[T]) alloc(v T) link {
	l.nodes = append(l.nodes, node[T]{value: v})
	return link(len(l.nodes))
}

func (l *List[T]) node(r link) *node[T] {
	return &l.nodes[r.index()]
}

func (l *List[T]) boundary(r link) Boundary {
	if r.empty() {
		return nil
	}

	n := l.node(r)
	return boundary[T]{
		value: n.value,
		next:  !n.next.empty(),
		prev:  !n.prev.empty(),
	}
}

func (l *List[T]) log() Logger {
	if l.logger == nil {
		return nopLogger{}
	}

	return l.logger
}

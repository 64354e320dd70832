package dllist

//go:generate mockgen -destination=internal/mocks/iterator.go -package=mocks -mock_names Iterator=IteratorMock github.com/sirkon/dllist Iterator
//go:generate mockgen -destination=internal/mocks/linked.go -package=mocks -mock_names Linked=LinkedMock,Boundary=BoundaryMock github.com/sirkon/dllist Linked,Boundary
//go:generate mockgen -destination=internal/mocks/logger.go -package=mocks -mock_names Logger=LoggerMock github.com/sirkon/dllist Logger

// Iterator конечный источник значений для From.
type Iterator interface {
	// Next переход к следующему значению, false по исчерпании источника или ошибке.
	Next() bool
	// Value текущее значение.
	Value() any
	// Err ошибка итерации, nil при нормальном исчерпании источника.
	Err() error
}

// Linked форма связанного списка: длина и граничные узлы.
type Linked interface {
	Len() int
	// Front возврат головного узла или nil для пустого списка.
	Front() Boundary
	// Back возврат хвостового узла или nil для пустого списка.
	Back() Boundary
}

// Boundary представление граничного узла: значение и наличие связей.
type Boundary interface {
	Value() any
	HasNext() bool
	HasPrev() bool
}

package dllist

import "github.com/sirkon/errors"

// Check полная проверка целостности связей списка.
// В отличие от Is проходит список в обоих направлениях.
func (l *List[T]) Check() error {
	if l.length == 0 {
		if !l.head.empty() || !l.tail.empty() {
			return errors.New("empty list must have neither head nor tail").
				Bool("has-head", !l.head.empty()).
				Bool("has-tail", !l.tail.empty())
		}
		return nil
	}

	if l.head.empty() || l.tail.empty() {
		return errors.New("non-empty list must have both head and tail").
			Int("length", l.length).
			Bool("has-head", !l.head.empty()).
			Bool("has-tail", !l.tail.empty())
	}

	if l.length == 1 && l.head != l.tail {
		return errors.New("head and tail of a single element list must be the same node")
	}
	if l.length > 1 && l.head == l.tail {
		return errors.New("head and tail of a multiple elements list must differ").Int("length", l.length)
	}

	if !l.node(l.head).prev.empty() {
		return errors.New("head must not have a previous node")
	}
	if !l.node(l.tail).next.empty() {
		return errors.New("tail must not have a next node")
	}

	if err := l.checkWalk(); err != nil {
		return errors.Wrap(err, "check links")
	}

	return nil
}

func (l *List[T]) checkWalk() error {
	var (
		steps int
		last  link
	)
	for cur := l.head; !cur.empty(); cur = l.node(cur).next {
		if steps >= l.length {
			return errors.New("forward walk is longer than the list length").Int("length", l.length)
		}
		if next := l.node(cur).next; !next.empty() && l.node(next).prev != cur {
			return errors.New("asymmetric link").Str("direction", "forward").Int("position", steps)
		}
		last = cur
		steps++
	}
	if steps != l.length || last != l.tail {
		return errors.New("forward walk does not end at the tail").
			Int("length", l.length).
			Int("steps", steps)
	}

	steps = 0
	for cur := l.tail; !cur.empty(); cur = l.node(cur).prev {
		if steps >= l.length {
			return errors.New("backward walk is longer than the list length").Int("length", l.length)
		}
		if prev := l.node(cur).prev; !prev.empty() && l.node(prev).next != cur {
			return errors.New("asymmetric link").Str("direction", "backward").Int("position", steps)
		}
		last = cur
		steps++
	}
	if steps != l.length || last != l.head {
		return errors.New("backward walk does not end at the head").
			Int("length", l.length).
			Int("steps", steps)
	}

	return nil
}

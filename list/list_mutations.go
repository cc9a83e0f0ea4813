package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// Insert inserts the value immediately before the given position and returns an Iterator to the new element. The
// position can be any element or End().
func (l *List[T]) Insert(position Iterator[T], value T) Iterator[T] {
	l.requirePosition(position.node, "insert")

	inserted := l.linkBefore(position.node, &node[T]{value: value})
	l.mutated("insert")

	return Iterator[T]{inserted}
}

// InsertRange inserts a copy of the values in the range [first, last) before the given position and returns an
// Iterator to the first inserted element (or the position if the range is empty). The range may belong to the List
// itself.
func (l *List[T]) InsertRange(position Iterator[T], first, last ConstIterator[T]) Iterator[T] {
	return l.InsertValues(position, collect(first, last)...)
}

// InsertValues inserts the given values before the given position and returns an Iterator to the first inserted
// element (or the position if no values are given).
func (l *List[T]) InsertValues(position Iterator[T], values ...T) Iterator[T] {
	l.requirePosition(position.node, "insert")

	predecessor := position.node.prev
	for _, value := range values {
		l.linkBefore(position.node, &node[T]{value: value})
	}
	l.mutated("insert")

	return Iterator[T]{predecessor.next}
}

// PushFront inserts the value at the front of the List.
func (l *List[T]) PushFront(value T) Iterator[T] {
	return l.Insert(l.Begin(), value)
}

// PushBack inserts the value at the back of the List.
func (l *List[T]) PushBack(value T) Iterator[T] {
	return l.Insert(l.End(), value)
}

// Erase removes the element at the given position and returns an Iterator to the element that followed it.
func (l *List[T]) Erase(position Iterator[T]) Iterator[T] {
	l.requireElement(position.node, "erase")

	successor := position.node.next
	l.unlink(position.node)
	l.mutated("erase")

	return Iterator[T]{successor}
}

// EraseRange removes the elements in the range [first, last) and returns last.
func (l *List[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	count := Distance(first.Const(), last.Const())
	if count == 0 {
		return last
	}

	l.requireElement(first.node, "erase")
	for current := first.node; count > 0; count-- {
		successor := current.next
		l.unlink(current)
		current = successor
	}
	l.mutated("erase")

	return last
}

// PopFront removes the first element and returns its value.
func (l *List[T]) PopFront() (value T, err error) {
	if l.length == 0 {
		return value, ierrors.Wrap(ErrEmptyList, "pop front")
	}

	removed := l.head.next
	value = removed.value
	l.unlink(removed)
	l.mutated("pop front")

	return value, nil
}

// PopBack removes the last element and returns its value.
func (l *List[T]) PopBack() (value T, err error) {
	if l.length == 0 {
		return value, ierrors.Wrap(ErrEmptyList, "pop back")
	}

	removed := l.tail.prev
	value = removed.value
	l.unlink(removed)
	l.mutated("pop back")

	return value, nil
}

// Assign replaces the content of the List with the given values. Surplus elements are removed from the back, missing
// ones are appended and the retained elements are overwritten in place, so iterators to them stay valid.
func (l *List[T]) Assign(values ...T) {
	for l.length > len(values) {
		l.unlink(l.tail.prev)
	}

	current := l.head.next
	for _, value := range values {
		if current == l.tail {
			l.linkBefore(l.tail, &node[T]{value: value})

			continue
		}

		current.value = value
		current = current.next
	}
	l.mutated("assign")
}

// AssignRange replaces the content of the List with a copy of the values in the range [first, last). The range may
// belong to the List itself.
func (l *List[T]) AssignRange(first, last ConstIterator[T]) {
	l.Assign(collect(first, last)...)
}

// Clear removes all elements from the List.
func (l *List[T]) Clear() {
	for current := l.head.next; current != l.tail; {
		successor := current.next
		current.release()
		current = successor
	}

	l.head.next = l.tail
	l.tail.prev = l.head
	l.length = 0
	l.mutated("clear")
}

// linkBefore links the detached node n in front of position, increments the length and returns n.
func (l *List[T]) linkBefore(position, n *node[T]) *node[T] {
	n.next = position
	n.prev = position.prev
	position.prev.next = n
	position.prev = n
	l.length++

	return n
}

// detach unlinks the element n from the chain and decrements the length without clearing the links of n.
func (l *List[T]) detach(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.length--
}

// unlink removes the element n from the chain and releases it.
func (l *List[T]) unlink(n *node[T]) {
	l.detach(n)
	n.release()
}

// collect copies the values of the range [first, last) into a slice.
func collect[T any](first, last ConstIterator[T]) []T {
	values := make([]T, 0, Distance(first, last))
	for current := first.node; current != last.node; current = current.next {
		values = append(values, current.value)
	}

	return values
}

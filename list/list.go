// Package list provides a doubly linked list with bidirectional iterators that is built around a pair of sentinel
// nodes. Nodes are relinked in place by the structural operations (Splice, MergeFunc, Reverse, UniqueFunc, SortFunc),
// so iterators to elements that are not removed stay valid across mutations of the rest of the List.
//
// A List is not safe for concurrent use.
package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
)

// region List /////////////////////////////////////////////////////////////////////////////////////////////////////////

// List is a doubly linked list whose elements are bracketed by a head and a tail sentinel. Lists have to be created
// with one of the constructors.
type List[T any] struct {
	// head is the sentinel in front of the first element.
	head *node[T]

	// tail is the sentinel behind the last element.
	tail *node[T]

	// length is the number of elements excluding the sentinels.
	length int

	// logger is used to report structural transfers and invariant violations.
	logger *zap.Logger

	// invariantChecks enables the verification of the link structure after every mutation.
	invariantChecks bool
}

// New creates an empty List.
func New[T any](opts ...options.Option[List[T]]) *List[T] {
	return options.Apply(&List[T]{
		logger: zap.NewNop(),
	}, opts, (*List[T]).init)
}

// NewWithCount creates a List that holds count zero values.
func NewWithCount[T any](count int, opts ...options.Option[List[T]]) *List[T] {
	if count < 0 {
		panic(ierrors.Wrapf(ErrInvalidArgument, "negative element count %d", count))
	}

	l := New[T](opts...)
	for i := 0; i < count; i++ {
		l.linkBefore(l.tail, new(node[T]))
	}
	l.mutated("new")

	return l
}

// NewFromRange creates a List that holds a copy of the values in the range [first, last).
func NewFromRange[T any](first, last ConstIterator[T], opts ...options.Option[List[T]]) *List[T] {
	l := New[T](opts...)
	for current, count := first.node, Distance(first, last); count > 0; current, count = current.next, count-1 {
		l.linkBefore(l.tail, &node[T]{value: current.value})
	}
	l.mutated("new from range")

	return l
}

// NewFromValues creates a List that holds the given values in order.
func NewFromValues[T any](values []T, opts ...options.Option[List[T]]) *List[T] {
	l := New[T](opts...)
	for _, value := range values {
		l.linkBefore(l.tail, &node[T]{value: value})
	}
	l.mutated("new from values")

	return l
}

// NewFromSeq creates a List that holds the values yielded by the given (finite) sequence.
func NewFromSeq[T any](seq iter.Seq[T], opts ...options.Option[List[T]]) *List[T] {
	l := New[T](opts...)
	for value := range seq {
		l.linkBefore(l.tail, &node[T]{value: value})
	}
	l.mutated("new from seq")

	return l
}

// Clone returns a deep copy of the List that shares no nodes with the original and uses the same options.
func (l *List[T]) Clone() *List[T] {
	clone := New[T](WithLogger[T](l.logger), WithInvariantChecks[T](l.invariantChecks))
	for current := l.head.next; current != l.tail; current = current.next {
		clone.linkBefore(clone.tail, &node[T]{value: current.value})
	}
	clone.mutated("clone")

	return clone
}

// CopyFrom replaces the content of the List with a copy of the values of the other List. The List is cleared first
// and the values are inserted one after another, so the existing nodes are not reused.
func (l *List[T]) CopyFrom(other *List[T]) {
	if l == other {
		return
	}

	l.Clear()
	for current := other.head.next; current != other.tail; current = current.next {
		l.linkBefore(l.tail, &node[T]{value: current.value})
	}
	l.mutated("copy")
}

// Replace clears the List and inserts the given values in order.
func (l *List[T]) Replace(values ...T) {
	l.Clear()
	for _, value := range values {
		l.linkBefore(l.tail, &node[T]{value: value})
	}
	l.mutated("replace")
}

// Begin returns an Iterator to the first element (or End() if the List is empty).
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{l.head.next}
}

// End returns an Iterator to the tail sentinel.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{l.tail}
}

// CBegin returns a ConstIterator to the first element (or CEnd() if the List is empty).
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{l.head.next}
}

// CEnd returns a ConstIterator to the tail sentinel.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{l.tail}
}

// Empty returns true if the List holds no elements.
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Size returns the number of elements in the List.
func (l *List[T]) Size() int {
	return l.length
}

// Front returns the first value of the List.
func (l *List[T]) Front() (value T, err error) {
	if l.length == 0 {
		return value, ierrors.Wrap(ErrEmptyList, "front")
	}

	return l.head.next.value, nil
}

// Back returns the last value of the List.
func (l *List[T]) Back() (value T, err error) {
	if l.length == 0 {
		return value, ierrors.Wrap(ErrEmptyList, "back")
	}

	return l.tail.prev.value, nil
}

// All returns a sequence of the values of the List from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.head.next; current != l.tail; current = current.next {
			if !yield(current.value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the values of the List from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := l.tail.prev; current != l.head; current = current.prev {
			if !yield(current.value) {
				return
			}
		}
	}
}

// ForEach executes the given callback for the value of each element in the List. The iteration is aborted if the
// callback returns an error.
func (l *List[T]) ForEach(callback func(value T) error) error {
	for value := range l.All() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// ForEachReverse executes the given callback for the value of each element in the List in reverse order. The iteration
// is aborted if the callback returns an error.
func (l *List[T]) ForEachReverse(callback func(value T) error) error {
	for value := range l.Backward() {
		if err := callback(value); err != nil {
			return err
		}
	}

	return nil
}

// Range executes the given callback for the value of each element in the List.
func (l *List[T]) Range(callback func(value T)) {
	for value := range l.All() {
		callback(value)
	}
}

// Values returns a slice of all values in the List.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.length)
	for value := range l.All() {
		values = append(values, value)
	}

	return values
}

// init links the sentinels of an empty List.
func (l *List[T]) init() {
	l.head, l.tail = new(node[T]), new(node[T])
	l.head.next = l.tail
	l.tail.prev = l.head
	l.length = 0
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

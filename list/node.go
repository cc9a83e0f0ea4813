package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// node is the storage unit of a List. Sentinels use the same type but never carry a meaningful value.
//
// The link state encodes the role of a node:
//   - head sentinel: prev == nil, next != nil
//   - tail sentinel: next == nil, prev != nil
//   - linked element: prev != nil, next != nil
//   - released element: prev == nil, next == nil
type node[T any] struct {
	value T
	next  *node[T]
	prev  *node[T]
}

// isElement returns true if the node holds caller data and is linked into a chain.
func (n *node[T]) isElement() bool {
	return n != nil && n.prev != nil && n.next != nil
}

// isReleased returns true if the node was removed from its chain.
func (n *node[T]) isReleased() bool {
	return n == nil || (n.prev == nil && n.next == nil)
}

// forward returns the successor of the node and panics if there is none.
func (n *node[T]) forward() *node[T] {
	if n.isReleased() {
		panic(ierrors.Wrap(ErrInvalidIterator, "increment of a released iterator"))
	}

	if n.next == nil {
		panic(ierrors.Wrap(ErrIteratorOutOfRange, "increment past end"))
	}

	return n.next
}

// backward returns the predecessor of the node and panics if that would leave the range [Begin(), End()].
func (n *node[T]) backward() *node[T] {
	if n.isReleased() {
		panic(ierrors.Wrap(ErrInvalidIterator, "decrement of a released iterator"))
	}

	if n.prev == nil || n.prev.prev == nil {
		panic(ierrors.Wrap(ErrIteratorOutOfRange, "decrement before begin"))
	}

	return n.prev
}

// step moves k nodes forward (or -k nodes backward if k is negative).
func (n *node[T]) step(k int) *node[T] {
	for ; k > 0; k-- {
		n = n.forward()
	}

	for ; k < 0; k++ {
		n = n.backward()
	}

	return n
}

// load returns the value of the node and panics if the node is not a linked element.
func (n *node[T]) load() T {
	if !n.isElement() {
		panic(ierrors.Wrap(ErrInvalidIterator, "dereference of a non-element iterator"))
	}

	return n.value
}

// release clears the links of a node that was removed from its chain.
func (n *node[T]) release() {
	n.next = nil // avoid memory leaks
	n.prev = nil // avoid memory leaks
}

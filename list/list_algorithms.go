package list

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
)

// MergeFunc moves all elements of the other List into this List. Both Lists need to be sorted in ascending order
// according to cmp. An element of the other List is only moved in front of an element of this List if it compares
// strictly less, so equal elements keep the elements of this List first. The other List is empty afterward.
func (l *List[T]) MergeFunc(other *List[T], cmp func(a, b T) int) {
	if other == l || other.length == 0 {
		return
	}

	moved := other.length
	l.merge(other, cmp)

	l.logger.Debug("merged list", zap.Int("moved", moved), zap.Int("length", l.length))
	l.mutated("merge")
	other.mutated("merge")
}

// Splice moves all elements of the other List in front of the given position in O(1). The other List is empty
// afterward.
func (l *List[T]) Splice(position Iterator[T], other *List[T]) {
	if other == l {
		panic(ierrors.Wrap(ErrSelfSplice, "splice"))
	}

	l.requirePosition(position.node, "splice")
	if other.length == 0 {
		return
	}

	moved := other.length
	l.transfer(position.node, other)

	l.logger.Debug("spliced list", zap.Int("moved", moved), zap.Int("length", l.length))
	l.mutated("splice")
	other.mutated("splice")
}

// Reverse reverses the order of the elements by swapping their links.
func (l *List[T]) Reverse() {
	if l.length <= 1 {
		return
	}

	first, last := l.head.next, l.tail.prev
	for current := first; current != l.tail; {
		successor := current.next
		current.next, current.prev = current.prev, current.next
		current = successor
	}

	l.head.next, last.prev = last, l.head
	l.tail.prev, first.next = first, l.tail
	l.mutated("reverse")
}

// UniqueFunc removes the second element of every pair of adjacent elements that are equal according to eq, so every
// run of consecutive duplicates collapses into its first element. It returns the number of removed elements.
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) (removed int) {
	for current := l.head.next; current != l.tail && current.next != l.tail; {
		if successor := current.next; eq(current.value, successor.value) {
			l.unlink(successor)
			removed++
		} else {
			current = successor
		}
	}
	l.mutated("unique")

	return removed
}

// SortFunc sorts the List in ascending order according to cmp. The sort is stable and relinks the nodes without
// copying values, so iterators stay valid and follow their elements to the new positions.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	if l.length <= 1 {
		return
	}

	size := l.length
	carry := newRun[T]()
	runs := make([]*List[T], 0)

	defer func() {
		// a panicking comparator leaves the partial runs behind - hand them back to the List
		for _, run := range append(runs, carry) {
			if run.length > 0 {
				l.transfer(l.tail, run)
			}
		}
	}()

	for l.length > 0 {
		moved := l.head.next
		l.detach(moved)
		carry.linkBefore(carry.tail, moved)

		i := 0
		for ; i < len(runs) && runs[i].length > 0; i++ {
			runs[i].merge(carry, cmp)
			carry, runs[i] = runs[i], carry
		}

		if i == len(runs) {
			runs = append(runs, newRun[T]())
		}
		carry, runs[i] = runs[i], carry
	}

	for i := 1; i < len(runs); i++ {
		runs[i].merge(runs[i-1], cmp)
	}
	l.transfer(l.tail, runs[len(runs)-1])

	l.logger.Debug("sorted list", zap.Int("length", size), zap.Int("runs", len(runs)))
	l.mutated("sort")
}

// FindFunc returns an Iterator to the first element that satisfies the predicate or End() if there is none.
func (l *List[T]) FindFunc(predicate func(value T) bool) Iterator[T] {
	for current := l.head.next; current != l.tail; current = current.next {
		if predicate(current.value) {
			return Iterator[T]{current}
		}
	}

	return l.End()
}

// EqualFunc returns true if both Lists have the same length and all positional pairs of values are equal according
// to eq.
func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.length != other.length {
		return false
	}

	for current, otherCurrent := l.head.next, other.head.next; current != l.tail; current, otherCurrent = current.next, otherCurrent.next {
		if !eq(current.value, otherCurrent.value) {
			return false
		}
	}

	return true
}

// merge relinks the elements of the sorted other List into the sorted List. Every element is moved individually, so
// both Lists stay consistent if cmp panics.
func (l *List[T]) merge(other *List[T], cmp func(a, b T) int) {
	current := l.head.next
	for other.length > 0 && current != l.tail {
		if candidate := other.head.next; cmp(candidate.value, current.value) < 0 {
			other.detach(candidate)
			l.linkBefore(current, candidate)
		} else {
			current = current.next
		}
	}

	if other.length > 0 {
		l.transfer(l.tail, other)
	}
}

// transfer relinks all elements of the non-empty other List in front of position and resets the other List.
func (l *List[T]) transfer(position *node[T], other *List[T]) {
	first, last := other.head.next, other.tail.prev

	first.prev = position.prev
	position.prev.next = first
	last.next = position
	position.prev = last
	l.length += other.length

	other.head.next = other.tail
	other.tail.prev = other.head
	other.length = 0
}

// newRun creates an unconfigured List that holds a partial result of a sort.
func newRun[T any]() *List[T] {
	return New[T]()
}

// Merge merges the sorted src List into the sorted dst List using the natural order of the values.
func Merge[T constraints.Ordered](dst, src *List[T]) {
	dst.MergeFunc(src, lo.Compare[T])
}

// Sort sorts the List in ascending natural order.
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(lo.Compare[T])
}

// Unique collapses runs of consecutive equal values and returns the number of removed elements.
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

// Find returns an Iterator to the first element that is equal to value or End() if there is none.
func Find[T comparable](l *List[T], value T) Iterator[T] {
	return l.FindFunc(func(candidate T) bool {
		return candidate == value
	})
}

// Equal returns true if both Lists hold the same values in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool {
		return x == y
	})
}

package list

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/ierrors"
)

// Validate verifies the link structure of the List and returns an error wrapping ErrInvariantViolated if it is broken.
// It walks the chain in both directions and never follows more than Size() links per direction.
func (l *List[T]) Validate() error {
	switch {
	case l.head == nil || l.tail == nil:
		return ierrors.Wrap(ErrInvariantViolated, "missing sentinel")
	case l.head.prev != nil:
		return ierrors.Wrap(ErrInvariantViolated, "head sentinel has a predecessor")
	case l.tail.next != nil:
		return ierrors.Wrap(ErrInvariantViolated, "tail sentinel has a successor")
	case l.length < 0:
		return ierrors.Wrapf(ErrInvariantViolated, "negative length %d", l.length)
	case l.length == 0 && (l.head.next != l.tail || l.tail.prev != l.head):
		return ierrors.Wrap(ErrInvariantViolated, "sentinels of an empty list are not linked to each other")
	}

	current := l.head
	for i := 0; i < l.length; i++ {
		successor := current.next
		if successor == nil || successor == l.tail {
			return ierrors.Wrapf(ErrInvariantViolated, "forward chain ends after %d of %d elements", i, l.length)
		}

		if successor.prev != current {
			return ierrors.Wrapf(ErrInvariantViolated, "element %d does not link back to its predecessor", i)
		}

		current = successor
	}

	if current.next != l.tail || l.tail.prev != current {
		return ierrors.Wrapf(ErrInvariantViolated, "forward chain does not reach the tail after %d elements", l.length)
	}

	current = l.tail
	for i := 0; i < l.length; i++ {
		predecessor := current.prev
		if predecessor == nil || predecessor == l.head {
			return ierrors.Wrapf(ErrInvariantViolated, "backward chain ends after %d of %d elements", i, l.length)
		}

		if predecessor.next != current {
			return ierrors.Wrapf(ErrInvariantViolated, "element %d from the back does not link to its successor", i)
		}

		current = predecessor
	}

	if current.prev != l.head || l.head.next != current {
		return ierrors.Wrapf(ErrInvariantViolated, "backward chain does not reach the head after %d elements", l.length)
	}

	return nil
}

// mutated verifies the link structure after a mutation if the checked mode is enabled.
func (l *List[T]) mutated(operation string) {
	if !l.invariantChecks {
		return
	}

	if err := l.Validate(); err != nil {
		l.logger.Error("list invariant violated", zap.String("operation", operation), zap.Int("length", l.length), zap.Error(err))

		panic(err)
	}
}

// requirePosition panics if n can not be used as an insert position of the List.
func (l *List[T]) requirePosition(n *node[T], operation string) {
	if n == nil || n.prev == nil {
		panic(ierrors.Wrapf(ErrInvalidIterator, "%s at a position that is neither an element nor the end", operation))
	}

	l.requireOwnership(n, operation)
}

// requireElement panics if n is not an element of the List.
func (l *List[T]) requireElement(n *node[T], operation string) {
	if !n.isElement() {
		panic(ierrors.Wrapf(ErrInvalidIterator, "%s at a position that is not an element", operation))
	}

	l.requireOwnership(n, operation)
}

// requireOwnership panics in checked mode if n is neither an element nor the tail sentinel of the List.
func (l *List[T]) requireOwnership(n *node[T], operation string) {
	if !l.invariantChecks {
		return
	}

	for current := l.head.next; current != nil; current = current.next {
		if current == n {
			return
		}
	}

	err := ierrors.Wrapf(ErrForeignIterator, "%s", operation)
	l.logger.Error("foreign iterator", zap.String("operation", operation), zap.Error(err))

	panic(err)
}

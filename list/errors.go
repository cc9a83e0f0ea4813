package list

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrEmptyList is returned when an element is accessed or removed from an empty List.
	ErrEmptyList = ierrors.New("list is empty")

	// ErrInvalidIterator is raised when an iterator is dereferenced or used as a position although it does not
	// reference a node that can serve that purpose (End(), a zero iterator or a node that was already removed).
	ErrInvalidIterator = ierrors.New("invalid iterator")

	// ErrIteratorOutOfRange is raised when an iterator is moved past End() or before Begin().
	ErrIteratorOutOfRange = ierrors.New("iterator out of range")

	// ErrForeignIterator is raised in checked mode when a position does not belong to the List it is used with.
	ErrForeignIterator = ierrors.New("iterator does not belong to list")

	// ErrSelfSplice is raised when a List is spliced into itself.
	ErrSelfSplice = ierrors.New("cannot splice a list into itself")

	// ErrInvalidArgument is raised when an argument is outside of its valid domain.
	ErrInvalidArgument = ierrors.New("invalid argument")

	// ErrInvariantViolated is returned by Validate (and raised in checked mode) when the link structure is broken.
	ErrInvariantViolated = ierrors.New("list invariant violated")
)

package list

import (
	"go.uber.org/zap"

	"github.com/iotaledger/hive.go/runtime/options"
)

// WithLogger is an option for a List that sets the logger used to report structural transfers and invariant
// violations.
func WithLogger[T any](logger *zap.Logger) options.Option[List[T]] {
	return func(l *List[T]) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithInvariantChecks is an option for a List that enables the checked mode. In checked mode the complete link
// structure is verified after every mutation and positions are verified to belong to the List, which turns every
// operation into an O(n) operation.
func WithInvariantChecks[T any](enabled bool) options.Option[List[T]] {
	return func(l *List[T]) {
		l.invariantChecks = enabled
	}
}

package syncstate

import (
	"context"
	"time"
)

// Transaction identifies one attempt of a unit of work. It rides on the
// context for the dynamic extent of the transactional boundary that created
// it, so any nested call (including goroutines handed that context) can
// discover which transaction is active without it being passed explicitly.
type Transaction struct {
	// ID is unique per transaction attempt.
	ID UUID
	// StartTime is when the attempt began.
	StartTime time.Time
	// Name identifies the transactional boundary that created the attempt.
	Name string
}

type transactionKey struct{}

// NewContext returns a child context carrying txn as the active transaction.
// Establishing a context is re-entrant: a boundary invoked from within
// another boundary shadows the outer transaction for its own extent only;
// the outer one is visible again once the inner context is discarded.
func NewContext(ctx context.Context, txn *Transaction) context.Context {
	return context.WithValue(ctx, transactionKey{}, txn)
}

// CurrentTransaction returns the transaction active on the calling chain's
// context, or false when no transactional boundary is on that chain.
func CurrentTransaction(ctx context.Context) (*Transaction, bool) {
	txn, ok := ctx.Value(transactionKey{}).(*Transaction)
	return txn, ok
}

// Transactional wraps the unit of work op on target as a transactional
// boundary. It allocates a fresh Transaction, runs op exactly once with it
// active on the context, and on success flushes target's pending writes if
// target implements Flusher, waiting for the flush before returning.
//
// On op failure no flush happens and the error propagates unchanged; writes
// buffered during the failed attempt stay queued for a later attempt. A
// flush failure is the boundary's failure even though op succeeded.
func Transactional(ctx context.Context, name string, target any, op func(ctx context.Context) error) error {
	txn := &Transaction{
		ID:        NewUUID(),
		StartTime: time.Now(),
		Name:      name,
	}
	if err := op(NewContext(ctx, txn)); err != nil {
		return err
	}
	if f, ok := target.(Flusher); ok {
		// Flush still runs under the transaction that produced the writes.
		return f.Flush(NewContext(ctx, txn))
	}
	return nil
}

// TransactionalResult is Transactional for units of work that produce a
// result. The result is propagated unchanged on success; on failure the
// zero value is returned along with the error.
func TransactionalResult[T any](ctx context.Context, name string, target any, op func(ctx context.Context) (T, error)) (T, error) {
	var result T
	err := Transactional(ctx, name, target, func(ctx context.Context) error {
		var err error
		result, err = op(ctx)
		return err
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return result, nil
}

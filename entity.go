package syncstate

import (
	"context"
	"fmt"
	log "log/slog"
	"sync"
)

// pendingWrite is one deferred store write, closed over the key and value
// captured at the time of the property write.
type pendingWrite struct {
	key   string
	apply func(ctx context.Context, store Store) error
}

// Entity owns the remote store handle and the pending-write queue shared by
// all synchronized properties declared against it. A host object embeds or
// holds one Entity per logical record.
//
// The queue is scoped to the entity, not to a transaction attempt: two
// transactions concurrently writing through the same entity interleave into
// one queue, and a flush triggered by either one drains writes from both.
// Callers needing isolation should use one entity per in-flight transaction.
type Entity struct {
	store Store

	// flushMu serializes Flush so at most one drain is in flight; without it,
	// two overlapping flushes would snapshot the same batch, double-apply it
	// and trim the queue past its length.
	flushMu sync.Mutex

	mu      sync.Mutex
	pending []pendingWrite
}

// NewEntity returns an entity whose synchronized properties read from and
// flush to store.
func NewEntity(store Store) *Entity {
	return &Entity{store: store}
}

// Store returns the remote store backing this entity.
func (e *Entity) Store() Store {
	return e.store
}

// PendingWrites returns the number of buffered writes awaiting a flush.
// Every property write adds one element; nothing coalesces writes to the
// same key.
func (e *Entity) PendingWrites() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *Entity) enqueue(w pendingWrite) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = append(e.pending, w)
}

// Flush drains the writes buffered so far, applying them to the store.
// Writes to distinct keys are dispatched concurrently; writes to the same
// key are applied sequentially in enqueue order, so the store's final value
// per key is the entity's last write. The queue is cleared only when every
// write in the batch succeeds; on any failure the whole batch stays queued
// for a later attempt, though writes that did reach the store are not
// undone. Writes enqueued while the flush is running are not part of the
// batch and survive it.
//
// Flushes are serialized: a Flush arriving while another is in flight waits,
// then drains whatever is queued by the time it gets its turn.
func (e *Entity) Flush(ctx context.Context) error {
	e.flushMu.Lock()
	defer e.flushMu.Unlock()

	e.mu.Lock()
	batch := make([]pendingWrite, len(e.pending))
	copy(batch, e.pending)
	e.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	// Group per key, preserving enqueue order within each key.
	perKey := make(map[string][]pendingWrite, len(batch))
	keys := make([]string, 0, len(batch))
	for _, w := range batch {
		if _, ok := perKey[w.key]; !ok {
			keys = append(keys, w.key)
		}
		perKey[w.key] = append(perKey[w.key], w)
	}

	tr := NewTaskRunner(ctx, 8)
	for _, key := range keys {
		writes := perKey[key]
		tr.Go(func() error {
			for _, w := range writes {
				if err := w.apply(tr.GetContext(), e.store); err != nil {
					return Error{Code: FlushFailure, Err: err, UserData: w.key}
				}
			}
			return nil
		})
	}
	if err := tr.Wait(); err != nil {
		if txn, ok := CurrentTransaction(ctx); ok {
			log.Warn(fmt.Sprintf("flush failed for transaction %s(%s): %v", txn.Name, txn.ID.String(), err))
		}
		return err
	}

	// Remove only the drained batch; anything appended since stays.
	e.mu.Lock()
	e.pending = e.pending[len(batch):]
	e.mu.Unlock()
	return nil
}

// Package syncstate keeps local object state transparently synchronized with a
// remote key-value store. Declared fields are backed by synchronized properties:
// reads lazily fetch from the store and memoize the result, writes are cached
// locally and buffered as deferred put operations on the owning entity's
// pending-write queue. A transactional boundary wraps a unit of work, carries an
// ambient transaction record on the context for its full dynamic extent, and on
// success flushes the buffered writes to the store; on failure the writes stay
// buffered for a later attempt.
//
// The remote store is a capability, not a protocol: anything implementing Store
// can back an entity. Concrete adapters live in subpackages such as redis,
// cassandra, and aws_s3, with an in-process read-through layer in cache.
package syncstate

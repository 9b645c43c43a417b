package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/syncstate/syncstate"
)

// CloseableStore is a Store owning its own connection, to be Closed when no
// longer needed.
type CloseableStore interface {
	syncstate.Store
	Close() error
}

type store struct {
	conn    *Connection
	isOwner bool
}

// NewStore returns a Store over the package's singleton connection.
// OpenConnection should have been called beforehand.
func NewStore() syncstate.Store {
	return &store{
		conn: connection,
	}
}

// NewConnectionStore opens a dedicated Redis connection then returns a store
// wrapper for it. Provided for the case of wanting to use a separate Redis
// cluster from the one the singleton connection points at.
func NewConnectionStore(options Options) CloseableStore {
	return &store{
		conn:    openConnection(options),
		isOwner: true,
	}
}

// Close this store's connection if it owns one.
func (s *store) Close() error {
	if !s.isOwner || s.conn == nil {
		return nil
	}
	err := closeConnection(s.conn)
	s.conn = nil
	return err
}

// keyNotFound will detect whether error signifies key not found by Redis.
func (s *store) keyNotFound(err error) bool {
	return err == redis.Nil
}

// Ping tests connectivity for redis (PONG should be returned).
func (s *store) Ping(ctx context.Context) error {
	if s.conn == nil {
		return fmt.Errorf("Redis connection is not open, 'can't create new client")
	}
	return s.conn.Client.Ping(ctx).Err()
}

// Fetch executes the redis Get command, mapping a missing key to found=false.
func (s *store) Fetch(ctx context.Context, key string) (bool, []byte, error) {
	if s.conn == nil {
		return false, nil, fmt.Errorf("Redis connection is not open, 'can't create new client")
	}
	ba, err := s.conn.Client.Get(ctx, key).Bytes()
	if s.keyNotFound(err) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return true, ba, nil
}

// Put executes the redis Set command with no expiration; synchronized field
// values are durable, not cache entries.
func (s *store) Put(ctx context.Context, key string, value []byte) error {
	if s.conn == nil {
		return fmt.Errorf("Redis connection is not open, 'can't create new client")
	}
	return s.conn.Client.Set(ctx, key, value, 0).Err()
}

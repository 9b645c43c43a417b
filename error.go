package syncstate

import "fmt"

type ErrorCode int

const (
	Unknown ErrorCode = iota
	// FetchFailure tags a remote store read error surfaced by a property read.
	FetchFailure
	// FlushFailure tags a deferred write that errored while the queue was being drained.
	FlushFailure
	// MarshalFailure tags a value that could not be encoded for the store.
	MarshalFailure
)

// Error is the syncstate custom error. UserData typically carries the store
// key the failing operation was addressing.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

func (e Error) Error() string {
	return fmt.Sprintf("error code: %d, user data: %v, details: %v", e.Code, e.UserData, e.Err)
}

// Unwrap exposes the wrapped cause to errors.Is/As.
func (e Error) Unwrap() error {
	return e.Err
}

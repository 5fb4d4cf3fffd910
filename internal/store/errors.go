package store

import "errors"

var (
	ErrClosed       = errors.New("store is closed")
	ErrSyncFailed   = errors.New("failed to persist change, local state restored")
	ErrUnknownTable = errors.New("unknown table")
)

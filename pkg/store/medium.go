// Package store provides the string-keyed durable media the mood journal is
// persisted to.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// Medium is an asynchronous string key-value store. Calls block until the
// medium responds; no transactions span keys.
type Medium interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	AllKeys(ctx context.Context) ([]string, error)
	// MultiRemove removes every key it can and reports the failures. Missing
	// keys are not an error.
	MultiRemove(ctx context.Context, keys []string) error
}

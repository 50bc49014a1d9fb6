package out

import "context"

// EntryStore is a local key/value store holding whole JSON values.
// Get returns apperrors.ErrNotFound when the key has no value.
type EntryStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

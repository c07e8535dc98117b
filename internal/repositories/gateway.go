package repositories

import "context"

// Gateway defines the key/value persistence operations the collection
// store depends on.
//
// Get returns the stored value and whether the key was present. Set
// stores or replaces the value for a key. Implementations must keep
// writes for a given key in the order they are issued.
type Gateway interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

package kvstore

import "context"

// Store is a durable key/value slot for JSON-serializable collections.
// Read returns (nil, nil) when the key has never been written. Write
// replaces the stored value wholesale; the last Write is visible to the
// next Read within the same process run.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

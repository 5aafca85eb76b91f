package persist

import "context"

// Persister is the durable key-value substrate behind the storefront
// collections. Load returns (nil, nil) when the key has never been written;
// callers treat an unparseable value the same way as an absent one.
type Persister interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

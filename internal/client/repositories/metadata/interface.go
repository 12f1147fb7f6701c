package metadata

import (
	"context"
)

// Keys stored by the client.
const (
	KeyToken = "token"
)

// Repository is a small key/value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

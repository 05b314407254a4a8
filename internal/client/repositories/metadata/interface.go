// Package metadata is the local key/value storage of the CLI. One row per
// well-known key (user record, settings blob, preference flags).
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get reports a missing key with
// ok == false and a nil error; Delete and Clear succeed when nothing matches.
type Repository interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

package interfaces

import "context"

// IKeyValueStore abstracts the durable key-value backend the stores mirror
// their collections into.
//
// The stores need to be able to:
//   - read the whole serialized collection stored under one key
//   - overwrite that key with the next serialized collection after a mutation
//
// GetItem reports found=false (and no error) when the key was never written.

type IKeyValueStore interface {
	GetItem(ctx context.Context, key string) (value []byte, found bool, err error)
	SetItem(ctx context.Context, key string, value []byte) error
}

package cache

import "context"

// SizeCache remembers object sizes between HEAD probes. Misses and
// backend errors are indistinguishable to callers: both return ok=false.
type SizeCache interface {
	GetSize(ctx context.Context, key string) (size int64, ok bool)
	SetSize(ctx context.Context, key string, size int64)
}

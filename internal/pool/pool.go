// Package pool provides a sync.Pool-backed recycler for the scratch
// strings.Builder values the extractor allocates once per open anchor tag.
package pool

import (
	"strings"
	"sync"
)

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// GetBuilder returns a reset *strings.Builder, either recycled or new.
func GetBuilder() *strings.Builder {
	return builders.Get().(*strings.Builder)
}

// PutBuilder resets b and returns it to the pool. b must not be used again
// by the caller afterward.
func PutBuilder(b *strings.Builder) {
	b.Reset()
	builders.Put(b)
}

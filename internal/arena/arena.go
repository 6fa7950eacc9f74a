// Package arena provides the region allocator that owns every name record of a
// compilation context.
//
// Records are handed out as stable pointers: storage grows in fixed-size chunks
// and a chunk is never reallocated, so a pointer stays valid for as long as the
// arena is reachable. There is no individual free. Each allocation also gets a
// 1-based sequence number that callers use as a stable, run-local identity
// (for instance to order records that have no structural order).
package arena

import (
	"fmt"
	"iter"

	"fortio.org/safecast"
)

const defaultChunkSize = 64

// Seq is the allocation sequence number of a record. NoSeq is never handed out.
type Seq uint32

// NoSeq marks the absence of a record.
const NoSeq Seq = 0

// IsValid reports whether the sequence number refers to an allocated record.
func (s Seq) IsValid() bool { return s != NoSeq }

// Arena stores values of a single record kind.
type Arena[T any] struct {
	chunks    [][]T
	chunkSize int
	n         int
}

// New creates an arena whose chunks hold chunkSize records (0 picks a default).
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc returns a pointer to a zeroed record and its sequence number.
func (a *Arena[T]) Alloc() (*T, Seq) {
	if len(a.chunks) == 0 || len(a.chunks[len(a.chunks)-1]) == a.chunkSize {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
	}
	value, err := safecast.Conv[uint32](a.n + 1)
	if err != nil {
		panic(fmt.Errorf("arena overflow: %w", err))
	}
	last := len(a.chunks) - 1
	var zero T
	a.chunks[last] = append(a.chunks[last], zero)
	a.n++
	return &a.chunks[last][len(a.chunks[last])-1], Seq(value)
}

// Get returns the record allocated with seq, or nil.
func (a *Arena[T]) Get(seq Seq) *T {
	if !seq.IsValid() || int(seq) > a.n {
		return nil
	}
	i := int(seq) - 1
	return &a.chunks[i/a.chunkSize][i%a.chunkSize]
}

// Len reports how many records were allocated.
func (a *Arena[T]) Len() int { return a.n }

// All iterates records in allocation order.
func (a *Arena[T]) All() iter.Seq2[Seq, *T] {
	return func(yield func(Seq, *T) bool) {
		seq := Seq(0)
		for c := range a.chunks {
			for i := range a.chunks[c] {
				seq++
				if !yield(seq, &a.chunks[c][i]) {
					return
				}
			}
		}
	}
}

// Package transpositiontable implements a Zobrist-keyed, fixed-size,
// open-addressed hash table: one process-wide resource, initialized at
// startup, cleared on command, and otherwise read/written directly with
// an always-replace discipline (no locking — the engine is
// single-threaded).
package transpositiontable

import (
	. "github.com/umbrachess/umbra/internal/types"
)

type bucket struct {
	key  uint64
	data uint64
}

// Table is a power-of-two-sized, always-replace transposition table.
type Table struct {
	buckets []bucket
	mask    uint64
}

const defaultSizeMB = 64
const bucketSize = 16 // bytes: 8 (key) + 8 (packed data)

// New allocates a table sized to fit within sizeMB megabytes, rounded
// down to the nearest power of two bucket count. sizeMB <= 0 uses a
// 64 MB default.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = defaultSizeMB
	}
	wanted := uint64(sizeMB) * 1024 * 1024 / bucketSize
	count := uint64(1)
	for count*2 <= wanted {
		count *= 2
	}
	if count == 0 {
		count = 1
	}
	return &Table{buckets: make([]bucket, count), mask: count - 1}
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry for key iff its full hash matches — the full
// key comparison prevents false matches on index collision.
func (t *Table) Probe(key Key) (score Value, move Move, bound Bound, depth int, ok bool) {
	b := &t.buckets[t.index(key)]
	if b.key != uint64(key) {
		return 0, MoveNone, 0, 0, false
	}
	return unpackScore(b.data), unpackMove(b.data), unpackBound(b.data), unpackDepth(b.data), true
}

// Store unconditionally overwrites the bucket key maps to. score must
// already be in ply-independent form (ScoreToTT).
func (t *Table) Store(key Key, score Value, move Move, bound Bound, depth int) {
	b := &t.buckets[t.index(key)]
	b.key = uint64(key)
	b.data = pack(bound, score, depth, move)
}

// Clear empties every bucket.
func (t *Table) Clear() {
	for i := range t.buckets {
		t.buckets[i] = bucket{}
	}
}

// Len returns the number of buckets (the table's capacity in entries).
func (t *Table) Len() int { return len(t.buckets) }

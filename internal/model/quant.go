package model

import (
	"hash/fnv"
	"sort"
	"strconv"
)

// Enumerable is the constraint QuantDist items must satisfy: a
// comparable value with a deterministic, total-order sort key. SortKey is
// used to canonicalize iteration order before hashing, so equality and
// hashing never depend on insertion order.
type Enumerable interface {
	comparable
	SortKey() string
}

// Quant pairs an item with a positive count.
type Quant[T Enumerable] struct {
	Item  T
	Count uint32
}

// QuantDist is an immutable multiset of (item, count>0) pairs: no duplicate
// items, no zero counts, equality independent of insertion order. Two
// QuantDists are equal iff they carry the same (item, count) set; Key()
// returns a content hash suitable for use as a map key (see ProbDist).
type QuantDist[T Enumerable] struct {
	outcomes []Quant[T]
	key      string
}

// Outcomes returns the (item, count) pairs in canonical (sorted) order.
func (q *QuantDist[T]) Outcomes() []Quant[T] { return q.outcomes }

// Len returns the number of distinct items in this distribution.
func (q *QuantDist[T]) Len() int { return len(q.outcomes) }

// IsEmpty reports whether this distribution has no items.
func (q *QuantDist[T]) IsEmpty() bool { return len(q.outcomes) == 0 }

// Count returns the quantity of item in this distribution, or 0.
func (q *QuantDist[T]) Count(item T) uint32 {
	for _, o := range q.outcomes {
		if o.Item == item {
			return o.Count
		}
	}
	return 0
}

// Key returns the precomputed content hash, usable as a ProbDist map key.
func (q *QuantDist[T]) Key() string { return q.key }

// Equal reports whether q and other contain the same (item, count) pairs.
func (q *QuantDist[T]) Equal(other *QuantDist[T]) bool {
	return q.key == other.key
}

// NewQuantDist builds a frozen QuantDist from a slice of Quants, folding
// duplicate items by summing their counts.
func NewQuantDist[T Enumerable](quants ...Quant[T]) *QuantDist[T] {
	b := NewQuantDistBuilder[T]()
	for _, q := range quants {
		b.AddQuant(q)
	}
	return b.Build()
}

// QuantDistBuilder facilitates piecemeal construction of a QuantDist.
type QuantDistBuilder[T Enumerable] struct {
	index    map[T]int
	outcomes []Quant[T]
}

// NewQuantDistBuilder constructs an empty builder.
func NewQuantDistBuilder[T Enumerable]() *QuantDistBuilder[T] {
	return &QuantDistBuilder[T]{index: make(map[T]int)}
}

// NewQuantDistBuilderFrom seeds a builder with an existing distribution's
// contents, so it can be mutated without affecting the frozen original.
func NewQuantDistBuilderFrom[T Enumerable](dist *QuantDist[T]) *QuantDistBuilder[T] {
	b := NewQuantDistBuilder[T]()
	for _, q := range dist.outcomes {
		b.AddQuant(q)
	}
	return b
}

// Add adds count items of item to the distribution. A count of 0 is a no-op.
func (b *QuantDistBuilder[T]) Add(item T, count uint32) {
	b.AddQuant(Quant[T]{Item: item, Count: count})
}

// AddQuant adds quant.Count items of quant.Item to the distribution.
func (b *QuantDistBuilder[T]) AddQuant(quant Quant[T]) {
	if quant.Count == 0 {
		return
	}
	if idx, ok := b.index[quant.Item]; ok {
		b.outcomes[idx].Count += quant.Count
		return
	}
	b.index[quant.Item] = len(b.outcomes)
	b.outcomes = append(b.outcomes, quant)
}

// Remove removes up to count items of item and returns the number actually
// removed.
func (b *QuantDistBuilder[T]) Remove(item T, count uint32) uint32 {
	idx, ok := b.index[item]
	if !ok {
		return 0
	}
	removable := b.outcomes[idx].Count
	if removable > count {
		b.outcomes[idx].Count = removable - count
		return count
	}
	b.removeAt(idx)
	return removable
}

// RemoveAll removes every item of the given kind and returns the count
// removed.
func (b *QuantDistBuilder[T]) RemoveAll(item T) uint32 {
	idx, ok := b.index[item]
	if !ok {
		return 0
	}
	removable := b.outcomes[idx].Count
	b.removeAt(idx)
	return removable
}

func (b *QuantDistBuilder[T]) removeAt(idx int) {
	last := len(b.outcomes) - 1
	removedItem := b.outcomes[idx].Item
	b.outcomes[idx] = b.outcomes[last]
	b.outcomes = b.outcomes[:last]
	delete(b.index, removedItem)
	if idx < len(b.outcomes) {
		b.index[b.outcomes[idx].Item] = idx
	}
}

// Count returns the current quantity of item in this (unfrozen) builder.
func (b *QuantDistBuilder[T]) Count(item T) uint32 {
	if idx, ok := b.index[item]; ok {
		return b.outcomes[idx].Count
	}
	return 0
}

// Build consumes this builder and returns a frozen QuantDist with a stable
// content hash, canonicalized by sorting on each item's SortKey.
func (b *QuantDistBuilder[T]) Build() *QuantDist[T] {
	outcomes := append([]Quant[T](nil), b.outcomes...)
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i].Item.SortKey() < outcomes[j].Item.SortKey()
	})
	h := fnv.New64a()
	for _, q := range outcomes {
		h.Write([]byte(q.Item.SortKey()))
		h.Write([]byte{0})
		h.Write([]byte(strconv.FormatUint(uint64(q.Count), 10)))
		h.Write([]byte{0})
	}
	return &QuantDist[T]{
		outcomes: outcomes,
		key:      "qd:" + strconv.FormatUint(h.Sum64(), 16),
	}
}

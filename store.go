package urlencoded

import (
	"maps"
	"slices"
)

// Store is a multi-valued key/value map built from form-urlencoded data.
//
// It keeps every value of a duplicated key, in the order they appeared, and
// remembers the order in which distinct keys were first seen so the data can
// be re-encoded in its original shape. Mutation methods return the receiver
// so calls can be chained. A Store is meant to be owned by a single caller;
// it is not safe for concurrent mutation.
type Store struct {
	// text before the data segment, re-attached by the Encode* methods
	prefix string

	entries map[string][]string

	// keys in order of first appearance in the parsed input.
	// a deleted key stays in the ledger; if the same key is re-added later
	// it replays its old position in original-order views.
	parseOrder []string

	// keys first introduced by mutation, replayed after parseOrder
	addOrder []string
}

// New returns an empty Store with no prefix.
func New() *Store {
	return &Store{entries: map[string][]string{}}
}

// Parse builds a Store from s, which can be a full url, a query string
// starting with '?' or a bare data segment (see Split). Parsing never
// fails; empty input yields an empty store.
func Parse(s string) *Store {
	sc := NewScanner(s)
	st := New()
	st.prefix = sc.prefix
	for k, v := range sc.All() {
		if _, ok := st.entries[k]; !ok {
			st.parseOrder = append(st.parseOrder, k)
		}
		st.entries[k] = append(st.entries[k], v)
	}
	return st
}

// Prefix returns the text that preceded the data segment, including the
// first '?'. Empty if the input had none.
func (st *Store) Prefix() string {
	return st.prefix
}

// Count returns the total number of pairs.
func (st *Store) Count() int {
	n := 0
	for _, vals := range st.entries {
		n += len(vals)
	}
	return n
}

// KeyCount returns the number of distinct keys.
func (st *Store) KeyCount() int {
	return len(st.entries)
}

// Keys returns all keys in unspecified order.
func (st *Store) Keys() []string {
	return slices.Collect(maps.Keys(st.entries))
}

// KeysOriginalOrder returns keys in the order they were first seen during
// parsing. Keys introduced by mutation after the parse come last, in the
// order the mutations first introduced them.
func (st *Store) KeysOriginalOrder() []string {
	keys := make([]string, 0, len(st.entries))
	for _, k := range st.parseOrder {
		if _, ok := st.entries[k]; ok {
			keys = append(keys, k)
		}
	}
	for _, k := range st.addOrder {
		if _, ok := st.entries[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// KeysSortedOrder returns keys in ascending lexicographic order.
func (st *Store) KeysSortedOrder() []string {
	return slices.Sorted(maps.Keys(st.entries))
}

func (st *Store) pairsForKeys(keys []string) []Pair {
	pairs := make([]Pair, 0, st.Count())
	for _, k := range keys {
		for _, v := range st.entries[k] {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}
	return pairs
}

// Pairs returns all pairs in unspecified order. This is the fastest view;
// use PairsOriginalOrder or PairsSortedOrder when order matters.
func (st *Store) Pairs() []Pair {
	pairs := make([]Pair, 0, st.Count())
	for k, vals := range st.entries {
		for _, v := range vals {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}
	return pairs
}

// PairsOriginalOrder returns all pairs with keys in original order (see
// KeysOriginalOrder) and each key's values in insertion order.
func (st *Store) PairsOriginalOrder() []Pair {
	return st.pairsForKeys(st.KeysOriginalOrder())
}

// PairsSortedOrder returns all pairs with keys sorted lexicographically and
// each key's values in insertion order.
func (st *Store) PairsSortedOrder() []Pair {
	return st.pairsForKeys(st.KeysSortedOrder())
}

// Values returns all values for key in insertion order. The returned slice
// is a copy. ok is false if the key is absent.
func (st *Store) Values(key string) (vals []string, ok bool) {
	v, ok := st.entries[key]
	if !ok {
		return nil, false
	}
	return slices.Clone(v), true
}

// FirstValue returns the first value recorded for key.
func (st *Store) FirstValue(key string) (string, bool) {
	v, ok := st.entries[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// LastValue returns the most recently recorded value for key.
func (st *Store) LastValue(key string) (string, bool) {
	v, ok := st.entries[key]
	if !ok || len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// FirstValues flattens the store to a map of each key to its first value.
func (st *Store) FirstValues() map[string]string {
	m := make(map[string]string, len(st.entries))
	for k, vals := range st.entries {
		if len(vals) > 0 {
			m[k] = vals[0]
		}
	}
	return m
}

// LastValues flattens the store to a map of each key to its last value.
func (st *Store) LastValues() map[string]string {
	m := make(map[string]string, len(st.entries))
	for k, vals := range st.entries {
		if len(vals) > 0 {
			m[k] = vals[len(vals)-1]
		}
	}
	return m
}

func (st *Store) noteKey(key string) {
	if slices.Contains(st.parseOrder, key) || slices.Contains(st.addOrder, key) {
		return
	}
	st.addOrder = append(st.addOrder, key)
}

// Set replaces all values of key with the given values, discarding prior
// ones. A key new to the store is emitted after the parsed keys in
// original-order views.
func (st *Store) Set(key string, values ...string) *Store {
	st.noteKey(key)
	st.entries[key] = slices.Clone(values)
	return st
}

// Add appends value to key's values, creating the key if needed.
func (st *Store) Add(key, value string) *Store {
	st.noteKey(key)
	st.entries[key] = append(st.entries[key], value)
	return st
}

// Del removes key and all its values. No-op if the key is absent.
func (st *Store) Del(key string) *Store {
	delete(st.entries, key)
	return st
}

// Clear removes all keys and values. The prefix and the original-order
// ledger are kept, so a key re-added after Clear replays its old position
// in original-order views.
func (st *Store) Clear() *Store {
	clear(st.entries)
	return st
}

// Encode serializes the store back to prefix + encoded data segment, pairs
// in unspecified order. Fastest of the Encode* family.
func (st *Store) Encode() string {
	return st.prefix + Encode(st.Pairs())
}

// EncodeOriginalOrder serializes with keys in original order. For input
// already in the canonical encoding this round-trips Parse exactly.
func (st *Store) EncodeOriginalOrder() string {
	return st.prefix + Encode(st.PairsOriginalOrder())
}

// EncodeSortedOrder serializes with keys sorted lexicographically.
func (st *Store) EncodeSortedOrder() string {
	return st.prefix + Encode(st.PairsSortedOrder())
}

func (st *Store) String() string {
	return st.EncodeOriginalOrder()
}

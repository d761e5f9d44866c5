package urlencoded

import (
	"maps"
	"slices"

	"github.com/google/go-querystring/query"
)

// ParseStruct builds a Store from a struct encoded the way
// github.com/google/go-querystring does it, honoring `url:"..."` tags.
// Slice fields become repeated keys.
//
// go-querystring returns an unordered url.Values, so the store's original
// key order is the sorted key order. The error is go-querystring's own,
// returned for non-struct input.
func ParseStruct(v any) (*Store, error) {
	vals, err := query.Values(v)
	if err != nil {
		return nil, err
	}
	st := New()
	for _, k := range slices.Sorted(maps.Keys(vals)) {
		st.parseOrder = append(st.parseOrder, k)
		st.entries[k] = slices.Clone(vals[k])
	}
	return st, nil
}

package urlencoded

import (
	"iter"
	"strings"
)

// Scanner is a lazy decoder of form-urlencoded data. It holds the raw data
// segment and decodes pairs on demand, in order of appearance, without
// building any intermediate structure.
type Scanner struct {
	prefix string
	raw    string
}

// NewScanner creates a Scanner from s, which can be a full url, a query
// string starting with '?' or a bare data segment (see Split).
func NewScanner(s string) *Scanner {
	prefix, data := Split(s)
	return &Scanner{prefix: prefix, raw: data}
}

// Prefix returns the text before the data segment, including the first '?'.
// Empty if s had no '?'.
func (s *Scanner) Prefix() string {
	return s.prefix
}

// Raw returns the un-decoded data segment.
func (s *Scanner) Raw() string {
	return s.raw
}

// All returns an iterator over decoded (key, value) pairs in order of
// appearance. Ranging over it again re-parses from the start. Empty entries
// ("a=1&&b=2") are skipped. Duplicate keys are yielded as separate pairs.
func (s *Scanner) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		rest := s.raw
		for rest != "" {
			var entry string
			entry, rest, _ = strings.Cut(rest, "&")
			if entry == "" {
				continue
			}
			k, v, _ := strings.Cut(entry, "=")
			if !yield(DecodeComponent(k), DecodeComponent(v)) {
				return
			}
		}
	}
}

// Pairs drains the scanner into a slice.
func (s *Scanner) Pairs() []Pair {
	var pairs []Pair
	for k, v := range s.All() {
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}

func (s *Scanner) String() string {
	return s.raw
}

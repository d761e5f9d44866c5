// Package urlencoded manipulates data in application/x-www-form-urlencoded
// format: the query string of a url or an http body of that media type.
//
// The input can be a full url or a bare data segment. Everything after the
// first '?' is treated as the data segment; the part before it (plus the '?')
// is kept as a prefix and re-attached when serializing. No url validation is
// performed.
//
// # Lazy decoding
//
// Scanner yields decoded (key, value) pairs in order of appearance without
// building any intermediate structure:
//
//	sc := urlencoded.NewScanner("https://abc.com/?a=1&b=2&c=3&c=4")
//	for k, v := range sc.All() {
//	    fmt.Printf("%s = %s\n", k, v)
//	}
//
// # The store
//
// Parse drains the decoder into a Store: a multi-valued map that remembers
// the order in which keys first appeared. Reads come in three flavors
// (unordered, original order, sorted by key) and mutations chain:
//
//	s := urlencoded.Parse("https://abc.com/?q=rust&ei=code")
//	s.Set("q", "rust-lang").Add("page", "2")
//	fmt.Println(s.EncodeOriginalOrder())
//	// https://abc.com/?q=rust-lang&ei=code&page=2
//
// Duplicate keys are kept as separate values:
//
//	s := urlencoded.Parse("c=3&c=4")
//	s.Values("c")    // ["3", "4"]
//	s.FirstValue("c") // "3"
//	s.LastValue("c")  // "4"
//
// # Decoding is total
//
// Decoding never fails. A missing '=' means an empty value, a leading '='
// means an empty key and malformed percent escapes are passed through
// unchanged instead of being rejected. Callers that need strict rfc
// compliance must validate upstream.
//
// The Store is not safe for concurrent mutation. It's meant to be owned by
// one caller; wrap a finished store in your own synchronization if you need
// to share it.
package urlencoded

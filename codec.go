package urlencoded

import (
	"net/url"
	"strings"
)

// Pair is a single decoded key/value pair. Both halves are always present:
// an entry without '=' decodes to an empty Value, an entry starting with '='
// decodes to an empty Key. Empty strings are legal, distinct entries.
type Pair struct {
	Key   string
	Value string
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unHex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// DecodeComponent percent-decodes a single key or value token.
//
// '+' becomes a space and valid %XX escapes (upper or lower case hex) become
// the byte they encode. Unlike url.QueryUnescape this never fails: a '%' not
// followed by two hex digits is passed through unchanged.
func DecodeComponent(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '+':
			b.WriteByte(' ')
		case '%':
			if i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
				b.WriteByte(unHex(s[i+1])<<4 | unHex(s[i+2]))
				i += 2
			} else {
				b.WriteByte('%')
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// EncodeComponent percent-encodes a single key or value token: space becomes
// '+', other reserved and non-ascii bytes become %XX with upper-case hex.
func EncodeComponent(s string) string {
	return url.QueryEscape(s)
}

// Encode serializes pairs to a form-urlencoded string in the given order.
// Tokens are joined as key=value with '&' between entries, no trailing
// separator. An empty slice encodes to "".
//
//	Encode([]Pair{{"hello", "你好"}, {"world", "世界"}})
//	// hello=%E4%BD%A0%E5%A5%BD&world=%E4%B8%96%E7%95%8C
func Encode(pairs []Pair) string {
	if len(pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(EncodeComponent(p.Key))
		b.WriteByte('=')
		b.WriteString(EncodeComponent(p.Value))
	}
	return b.String()
}

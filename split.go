package urlencoded

import "strings"

// Split splits s into a prefix and a form-urlencoded data segment.
//
// If s has no '?' the prefix is empty and all of s is the data segment.
// Otherwise the prefix is everything up to and including the first '?' and
// the data segment is everything after it, with any extra leading '?'
// characters stripped (so "https://abc.com/???a=1" yields "a=1").
func Split(s string) (prefix string, data string) {
	idx := strings.IndexByte(s, '?')
	if idx < 0 {
		return "", s
	}
	return s[:idx+1], strings.TrimLeft(s[idx+1:], "?")
}

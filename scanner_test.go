package urlencoded

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testQS = "a=1&b=2&c=3&c=4&key_without_value&=value_without_key"

var testQSPairs = []Pair{
	{"a", "1"},
	{"b", "2"},
	{"c", "3"},
	{"c", "4"},
	{"key_without_value", ""},
	{"", "value_without_key"},
}

func TestScanner(t *testing.T) {
	inputs := []string{
		testQS,
		"https://abc.com/?" + testQS,
		"https://abc.com/?????" + testQS,
	}
	for _, s := range inputs {
		sc := NewScanner(s)
		require.Equal(t, testQS, sc.Raw(), "input: %q", s)
		require.Equal(t, testQSPairs, sc.Pairs(), "input: %q", s)
	}
}

func TestScannerRestartable(t *testing.T) {
	sc := NewScanner("a=1&b=2")
	for range 2 {
		var got []Pair
		for k, v := range sc.All() {
			got = append(got, Pair{k, v})
		}
		require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, got)
	}
}

func TestScannerEarlyBreak(t *testing.T) {
	sc := NewScanner(testQS)
	for k, v := range sc.All() {
		require.Equal(t, "a", k)
		require.Equal(t, "1", v)
		break
	}
}

func TestScannerSkipsEmptyEntries(t *testing.T) {
	sc := NewScanner("a=1&&&b=2&")
	require.Equal(t, []Pair{{"a", "1"}, {"b", "2"}}, sc.Pairs())

	require.Empty(t, NewScanner("").Pairs())
	require.Empty(t, NewScanner("https://abc.com/?").Pairs())
}

func TestScannerPrefix(t *testing.T) {
	sc := NewScanner("https://abc.com/?a=1")
	require.Equal(t, "https://abc.com/?", sc.Prefix())

	sc = NewScanner("a=1")
	require.Equal(t, "", sc.Prefix())
}

package urlencoded

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStruct(t *testing.T) {
	type searchOptions struct {
		Query string   `url:"q"`
		Page  int      `url:"page"`
		Tags  []string `url:"tag"`
	}

	st, err := ParseStruct(searchOptions{
		Query: "rust",
		Page:  2,
		Tags:  []string{"a", "b"},
	})
	require.NoError(t, err)

	require.Equal(t, 4, st.Count())
	vals, ok := st.Values("tag")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, vals)

	// key order is sorted, go-querystring gives us no other
	require.Equal(t, "page=2&q=rust&tag=a&tag=b", st.EncodeOriginalOrder())

	// chains like any other store
	st.Set("q", "go").Add("page", "3")
	require.Equal(t, "page=2&page=3&q=go&tag=a&tag=b", st.EncodeOriginalOrder())
}

func TestParseStructNonStruct(t *testing.T) {
	_, err := ParseStruct(42)
	require.Error(t, err)
}

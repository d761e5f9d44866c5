// Package httpform moves urlencoded stores in and out of http requests.
package httpform

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/carlmjohnson/requests"
	"github.com/kjk/urlencoded"
)

// ContentType is the media type this package reads and writes.
const ContentType = "application/x-www-form-urlencoded"

// MaxBodySize caps how many bytes of a request body ReadRequest will read.
var MaxBodySize int64 = 1024 * 1024

// ReadRequest extracts form-urlencoded data from an http request.
//
// For GET and HEAD requests it parses the url query string. For other
// methods it reads the body, which must have Content-Type
// application/x-www-form-urlencoded (parameters like charset are ignored).
func ReadRequest(r *http.Request) (*urlencoded.Store, error) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return urlencoded.Parse(r.URL.RawQuery), nil
	}
	ct := r.Header.Get("Content-Type")
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("httpform: bad Content-Type %q: %w", ct, err)
	}
	if mt != ContentType {
		return nil, fmt.Errorf("httpform: unexpected Content-Type %q", mt)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("httpform: reading body: %w", err)
	}
	return urlencoded.Parse(string(body)), nil
}

// Post sends the store's pairs as the body of a POST request to uri, encoded
// in original order. The store's prefix is not part of the body.
func Post(ctx context.Context, uri string, s *urlencoded.Store) error {
	body := urlencoded.Encode(s.PairsOriginalOrder())
	return requests.
		URL(uri).
		ContentType(ContentType).
		BodyBytes([]byte(body)).
		Fetch(ctx)
}

// Values converts the store to a url.Values for code that expects the
// stdlib type. Key order is lost.
func Values(s *urlencoded.Store) url.Values {
	vals := url.Values{}
	for _, p := range s.Pairs() {
		vals.Add(p.Key, p.Value)
	}
	return vals
}

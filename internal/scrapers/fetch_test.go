package scrapers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func newTestFetcher(rt roundTripFunc) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{Transport: rt, Timeout: 5 * time.Second},
		limiter:    newRateLimiter(1000),
		userAgent:  "test-agent",
	}
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{},
	}
}

func TestFetcherSetsHeaders(t *testing.T) {
	var gotUA, gotAccept string
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		gotUA = req.Header.Get("User-Agent")
		gotAccept = req.Header.Get("Accept")
		return response(200, "ok"), nil
	})

	body, err := f.Get(context.Background(), "https://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "ok" {
		t.Fatalf("body=%q", body)
	}
	if gotUA != "test-agent" {
		t.Fatalf("user-agent=%q", gotUA)
	}
	if gotAccept == "" {
		t.Fatal("accept header not set")
	}
}

func TestFetcherRetriesTransientStatus(t *testing.T) {
	calls := 0
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return response(503, "unavailable"), nil
		}
		return response(200, "recovered"), nil
	})

	body, err := f.Get(context.Background(), "https://example.com")
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "recovered" {
		t.Fatalf("body=%q", body)
	}
	if calls != 3 {
		t.Fatalf("calls=%d", calls)
	}
}

func TestFetcherDoesNotRetryClientError(t *testing.T) {
	calls := 0
	f := newTestFetcher(func(req *http.Request) (*http.Response, error) {
		calls++
		return response(404, "missing"), nil
	})

	if _, err := f.Get(context.Background(), "https://example.com"); err == nil {
		t.Fatal("expected error on 404")
	}
	if calls != 1 {
		t.Fatalf("404 retried: calls=%d", calls)
	}
}

func TestIsRetryableStatus(t *testing.T) {
	for _, status := range []int{429, 500, 502, 503, 504} {
		if !isRetryableStatus(status) {
			t.Errorf("status %d must be retryable", status)
		}
	}
	for _, status := range []int{200, 301, 400, 403, 404} {
		if isRetryableStatus(status) {
			t.Errorf("status %d must not be retryable", status)
		}
	}
}

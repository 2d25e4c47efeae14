package out_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	readingout "homedash/internal/modules/reading/adapter/out"
	"homedash/internal/modules/reading/domain"
	apperrors "homedash/internal/platform/errors"
)

const shelfXML = `<?xml version="1.0" encoding="UTF-8"?>
<GoodreadsResponse>
  <Request><authentication>true</authentication></Request>
  <reviews start="1" end="2" total="2">
    <review>
      <id>1</id>
      <book>
        <id type="integer">123</id>
        <title>Piranesi</title>
        <num_pages>272</num_pages>
      </book>
    </review>
    <review>
      <book>
        <title>  Untitled Pages  </title>
        <num_pages></num_pages>
      </book>
    </review>
  </reviews>
</GoodreadsResponse>`

func TestGoodreadsShelfParsesCurrentlyReading(t *testing.T) {
	t.Parallel()
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(shelfXML))
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: srv.URL, Key: "k1", UserID: "42"}, srv.Client())
	books, err := shelf.CurrentlyReading(context.Background())
	if err != nil {
		t.Fatalf("currently reading: %v", err)
	}
	want := []domain.Book{
		{Title: "Piranesi", Pages: 272, Current: true},
		{Title: "Untitled Pages", Pages: 0, Current: true},
	}
	if diff := cmp.Diff(want, books); diff != "" {
		t.Fatalf("unexpected books (-want +got):\n%s", diff)
	}
	if gotPath != "/review/list/42.xml" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	for _, part := range []string{"key=k1", "shelf=currently-reading", "v=2"} {
		if !strings.Contains(gotQuery, part) {
			t.Fatalf("query %q missing %s", gotQuery, part)
		}
	}
}

func TestGoodreadsShelfEmptyShelf(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<GoodreadsResponse><reviews start="0" end="0" total="0"></reviews></GoodreadsResponse>`))
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: srv.URL, Key: "k", UserID: "1"}, srv.Client())
	books, err := shelf.CurrentlyReading(context.Background())
	if err != nil {
		t.Fatalf("currently reading: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected empty shelf, got %+v", books)
	}
}

func TestGoodreadsShelfFailures(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: srv.URL, Key: "k", UserID: "1"}, srv.Client())
	if _, err := shelf.CurrentlyReading(context.Background()); !errors.Is(err, apperrors.ErrUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}

	calls := 0
	counting := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	defer counting.Close()
	for _, opts := range []readingout.GoodreadsOptions{
		{BaseURL: counting.URL},
		{BaseURL: counting.URL, Key: "  ", UserID: "1", Secret: "cs", Token: "t", TokenSecret: "ts"},
	} {
		noCreds := readingout.NewGoodreadsShelf(opts, counting.Client())
		if _, err := noCreds.CurrentlyReading(context.Background()); !errors.Is(err, apperrors.ErrMissingCredentials) {
			t.Fatalf("expected missing credentials, got %v", err)
		}
	}
	if calls != 0 {
		t.Fatalf("missing credentials must not hit the network, got %d calls", calls)
	}
}

func TestGoodreadsShelfSignsWhenTokenConfigured(t *testing.T) {
	t.Parallel()
	var auth, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`<GoodreadsResponse><reviews></reviews></GoodreadsResponse>`))
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{
		BaseURL: srv.URL, Key: "ck", Secret: "cs", UserID: "7", Token: "t", TokenSecret: "ts",
	}, srv.Client())
	if _, err := shelf.CurrentlyReading(context.Background()); err != nil {
		t.Fatalf("currently reading: %v", err)
	}
	if !strings.HasPrefix(auth, "OAuth ") || !strings.Contains(auth, `oauth_consumer_key="ck"`) {
		t.Fatalf("expected oauth header, got %q", auth)
	}
	if strings.Contains(query, "key=") {
		t.Fatalf("signed requests should not carry the key parameter: %s", query)
	}
}

func TestGoodreadsShelfTransportFailures(t *testing.T) {
	t.Parallel()
	truncated := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<GoodreadsResponse><reviews>`))
	}))
	defer truncated.Close()
	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: truncated.URL, Key: "k", UserID: "1"}, truncated.Client())
	if _, err := shelf.CurrentlyReading(context.Background()); err == nil || !strings.Contains(err.Error(), "decode goodreads shelf") {
		t.Fatalf("expected decode error for truncated xml, got %v", err)
	}

	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()
	shelf = readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: closedURL, Key: "k", UserID: "1"}, nil)
	if _, err := shelf.CurrentlyReading(context.Background()); err == nil {
		t.Fatalf("expected an error for a closed server")
	}
}

func TestGoodreadsShelfThrottlesAndHonoursCancellation(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`<GoodreadsResponse><reviews></reviews></GoodreadsResponse>`))
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{BaseURL: srv.URL, Key: "k", UserID: "1"}, srv.Client())
	if _, err := shelf.CurrentlyReading(context.Background()); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// The single token is spent, so an immediate second call must wait.
	short, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if _, err := shelf.CurrentlyReading(short); err == nil || !strings.Contains(err.Error(), "goodreads rate limit") {
		t.Fatalf("expected throttled call to fail, got %v", err)
	}

	cancelled, cancelNow := context.WithCancel(context.Background())
	cancelNow()
	if _, err := shelf.CurrentlyReading(cancelled); err == nil {
		t.Fatalf("expected cancelled call to fail")
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected exactly one request to reach the server, got %d", got)
	}
}

func TestGoodreadsShelfBlankTokenUsesKeyParameter(t *testing.T) {
	t.Parallel()
	var auth, query string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		query = r.URL.RawQuery
		_, _ = w.Write([]byte(`<GoodreadsResponse><reviews></reviews></GoodreadsResponse>`))
	}))
	defer srv.Close()

	shelf := readingout.NewGoodreadsShelf(readingout.GoodreadsOptions{
		BaseURL: srv.URL, Key: "ck", Secret: "cs", UserID: "7", Token: " ", TokenSecret: "ts",
	}, srv.Client())
	if _, err := shelf.CurrentlyReading(context.Background()); err != nil {
		t.Fatalf("currently reading: %v", err)
	}
	if auth != "" || !strings.Contains(query, "key=ck") {
		t.Fatalf("expected unsigned key request, got auth %q query %q", auth, query)
	}
}

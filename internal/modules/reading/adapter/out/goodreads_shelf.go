package out

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"homedash/internal/modules/reading/domain"
	readingout "homedash/internal/modules/reading/port/out"
	apperrors "homedash/internal/platform/errors"
	"homedash/internal/platform/tracing"
)

const maxShelfBody = 4 << 20

type GoodreadsOptions struct {
	BaseURL     string
	Key         string
	Secret      string
	UserID      string
	Token       string
	TokenSecret string
	Shelf       string
}

func (o GoodreadsOptions) hasCredentials() bool {
	return strings.TrimSpace(o.Key) != "" && strings.TrimSpace(o.UserID) != ""
}

// signed reports whether an OAuth access token is configured.
func (o GoodreadsOptions) signed() bool {
	return strings.TrimSpace(o.Secret) != "" && strings.TrimSpace(o.Token) != "" && strings.TrimSpace(o.TokenSecret) != ""
}

type GoodreadsShelf struct {
	opts    GoodreadsOptions
	client  *http.Client
	limiter *rate.Limiter
	signed  bool
}

// NewGoodreadsShelf builds a client that issues at most one request per
// second. A nil client means http.DefaultClient. With token credentials the
// client's transport is wrapped to sign requests with OAuth 1.0a.
func NewGoodreadsShelf(opts GoodreadsOptions, client *http.Client) readingout.ShelfClient {
	if client == nil {
		client = http.DefaultClient
	}
	if opts.Shelf == "" {
		opts.Shelf = "currently-reading"
	}
	g := &GoodreadsShelf{
		opts:    opts,
		client:  client,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		signed:  opts.signed(),
	}
	if g.signed {
		base := context.WithValue(context.Background(), oauth1.HTTPClient, client)
		signing := oauth1.NewConfig(opts.Key, opts.Secret).Client(base, oauth1.NewToken(opts.Token, opts.TokenSecret))
		signing.Timeout = client.Timeout
		g.client = signing
	}
	return g
}

type shelfResponse struct {
	XMLName xml.Name `xml:"GoodreadsResponse"`
	Reviews struct {
		Items []shelfReview `xml:"review"`
	} `xml:"reviews"`
}

type shelfReview struct {
	Book struct {
		Title    string `xml:"title"`
		NumPages string `xml:"num_pages"`
	} `xml:"book"`
}

func (g *GoodreadsShelf) CurrentlyReading(ctx context.Context) ([]domain.Book, error) {
	if !g.opts.hasCredentials() {
		return nil, fmt.Errorf("goodreads key and user id: %w", apperrors.ErrMissingCredentials)
	}

	var books []domain.Book
	err := tracing.Call(ctx, "goodreads.shelf", func(ctx context.Context) error {
		if err := g.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("goodreads rate limit: %w", err)
		}
		req, err := g.newRequest(ctx)
		if err != nil {
			return err
		}
		resp, err := g.client.Do(req)
		if err != nil {
			return fmt.Errorf("goodreads request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxShelfBody))
			return fmt.Errorf("goodreads status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
		}
		decoded := shelfResponse{}
		if err := xml.NewDecoder(io.LimitReader(resp.Body, maxShelfBody)).Decode(&decoded); err != nil {
			return fmt.Errorf("decode goodreads shelf: %w", err)
		}
		books = toBooks(decoded.Reviews.Items)
		return nil
	}, attribute.String("goodreads.shelf", g.opts.Shelf))
	if err != nil {
		return nil, err
	}
	return books, nil
}

func (g *GoodreadsShelf) newRequest(ctx context.Context) (*http.Request, error) {
	base := strings.TrimRight(g.opts.BaseURL, "/")
	endpoint := fmt.Sprintf("%s/review/list/%s.xml", base, url.PathEscape(g.opts.UserID))
	q := url.Values{}
	q.Set("v", "2")
	q.Set("shelf", g.opts.Shelf)
	q.Set("per_page", "20")
	if !g.signed {
		q.Set("key", g.opts.Key)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build goodreads request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")
	return req, nil
}

func toBooks(reviews []shelfReview) []domain.Book {
	out := make([]domain.Book, 0, len(reviews))
	for _, r := range reviews {
		title := strings.TrimSpace(r.Book.Title)
		if title == "" {
			continue
		}
		pages, _ := strconv.Atoi(strings.TrimSpace(r.Book.NumPages))
		out = append(out, domain.Book{Title: title, Pages: pages, Current: true})
	}
	return out
}

package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel/attribute"

	reviewout "homedash/internal/modules/review/port/out"
	apperrors "homedash/internal/platform/errors"
	"homedash/internal/platform/tracing"
)

const (
	reviewedTodayAction = "getNumCardsReviewedToday"
	ankiConnectVersion  = 6
	maxAnkiBody         = 1 << 20
)

type ankiRequest struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
}

type AnkiConnectClient struct {
	url    string
	client *http.Client
}

// NewAnkiConnectClient talks to the AnkiConnect add-on at url. A nil client
// means http.DefaultClient.
func NewAnkiConnectClient(url string, client *http.Client) reviewout.ReviewCounter {
	if client == nil {
		client = http.DefaultClient
	}
	return &AnkiConnectClient{url: url, client: client}
}

func (c *AnkiConnectClient) ReviewedToday(ctx context.Context) (int, error) {
	var count int
	err := tracing.Call(ctx, "ankiconnect."+reviewedTodayAction, func(ctx context.Context) error {
		body, err := c.call(ctx, ankiRequest{Action: reviewedTodayAction, Version: ankiConnectVersion})
		if err != nil {
			return err
		}
		result := gjson.GetBytes(body, "result")
		if result.Type != gjson.Number {
			return fmt.Errorf("ankiconnect result is %s, want number: %w", result.Type, apperrors.ErrUpstream)
		}
		if float64(result.Int()) != result.Num {
			return fmt.Errorf("ankiconnect result %s is not an integer: %w", result.Raw, apperrors.ErrUpstream)
		}
		if result.Int() < 0 {
			return fmt.Errorf("ankiconnect result %s is negative: %w", result.Raw, apperrors.ErrUpstream)
		}
		count = int(result.Int())
		return nil
	}, attribute.String("ankiconnect.url", c.url))
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *AnkiConnectClient) call(ctx context.Context, payload ankiRequest) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal ankiconnect request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build ankiconnect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ankiconnect request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxAnkiBody))
	if err != nil {
		return nil, fmt.Errorf("read ankiconnect response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("ankiconnect status %d: %w", resp.StatusCode, apperrors.ErrUpstream)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("ankiconnect returned invalid json: %w", apperrors.ErrUpstream)
	}
	if e := gjson.GetBytes(body, "error"); e.Exists() && e.Type != gjson.Null {
		return nil, fmt.Errorf("ankiconnect %s: %s: %w", payload.Action, e.String(), apperrors.ErrUpstream)
	}
	return body, nil
}

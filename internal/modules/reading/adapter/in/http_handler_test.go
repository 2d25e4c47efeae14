package in_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	readingin "homedash/internal/modules/reading/adapter/in"
	"homedash/internal/modules/reading/dto"
)

type stubUsecase struct{ out dto.ReadingOutput }

func (s stubUsecase) Resolve(context.Context) dto.ReadingOutput { return s.out }

func TestHTTPHandlerWritesPayloadAndCacheHeader(t *testing.T) {
	t.Parallel()
	h := readingin.NewHTTPHandler(stubUsecase{out: dto.ReadingOutput{Source: "goodreads", State: "none"}}, "public, s-maxage=60")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reading", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, s-maxage=60" {
		t.Fatalf("unexpected cache-control %q", got)
	}
	body := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["state"] != "none" || body["book"] != nil {
		t.Fatalf("unexpected body: %v", body)
	}
	if _, ok := body["message"]; ok {
		t.Fatalf("empty message should be omitted: %v", body)
	}
}

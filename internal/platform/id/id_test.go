package id_test

import (
	"testing"

	"github.com/google/uuid"

	"homedash/internal/platform/id"
)

func TestUUIDProducesDistinctValidIDs(t *testing.T) {
	t.Parallel()
	var gen id.Generator = id.UUID{}
	a, b := gen.New(), gen.New()
	if a == "" || a == b {
		t.Fatalf("expected distinct ids, got %q and %q", a, b)
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("uuid generator produced an invalid uuid: %v", err)
	}
}

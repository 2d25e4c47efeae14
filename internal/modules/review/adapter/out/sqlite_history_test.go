package out_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	reviewout "homedash/internal/modules/review/adapter/out"
	"homedash/internal/modules/review/domain"
)

func TestSQLiteHistoryUpsertsPerDay(t *testing.T) {
	t.Parallel()
	history, err := reviewout.NewSQLiteHistory(filepath.Join(t.TempDir(), "state", "homedash.db"))
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	defer history.Close()

	ctx := context.Background()
	day := func(d, h int) time.Time { return time.Date(2024, time.March, d, h, 0, 0, 0, time.UTC) }
	for _, rec := range []struct {
		at    time.Time
		count int
	}{
		{day(12, 9), 10},
		{day(13, 9), 4},
		{day(13, 22), 31},
		{day(14, 8), 2},
	} {
		if err := history.Record(ctx, rec.at, rec.count); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := history.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []domain.DayCount{
		{Day: time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), Count: 2},
		{Day: time.Date(2024, time.March, 13, 0, 0, 0, 0, time.UTC), Count: 31},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected history (-want +got):\n%s", diff)
	}
}

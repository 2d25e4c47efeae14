package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	readingout "homedash/internal/modules/reading/adapter/out"
	apperrors "homedash/internal/platform/errors"
)

func TestFileBookStoreLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "books.json")
	payload := `[{"title":"Piranesi","progress":62,"pages":272,"current":true},{"title":"Dune","progress":100,"pages":412,"current":false}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write books: %v", err)
	}
	books, err := readingout.NewFileBookStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(books) != 2 || !books[0].Current || books[0].Progress != 62 {
		t.Fatalf("unexpected books: %+v", books)
	}
}

func TestFileBookStoreErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if _, err := readingout.NewFileBookStore(filepath.Join(dir, "missing.json")).Load(context.Background()); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{"), 0o644); err != nil {
		t.Fatalf("write broken: %v", err)
	}
	if _, err := readingout.NewFileBookStore(broken).Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

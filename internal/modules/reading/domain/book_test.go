package domain_test

import (
	"testing"

	"homedash/internal/modules/reading/domain"
)

func TestBookValidate(t *testing.T) {
	t.Parallel()
	if err := (domain.Book{Title: "Dune", Pages: 412}).Validate(); err != nil {
		t.Fatalf("book should be valid: %v", err)
	}
	if err := (domain.Book{Title: "  "}).Validate(); err == nil {
		t.Fatalf("blank title should fail")
	}
	if err := (domain.Book{Title: "Dune", Pages: -1}).Validate(); err == nil {
		t.Fatalf("negative pages should fail")
	}
}

func TestNormalizedClampsProgress(t *testing.T) {
	t.Parallel()
	if got := (domain.Book{Title: "a", Progress: 140}).Normalized().Progress; got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	if got := (domain.Book{Title: "a", Progress: -3}).Normalized().Progress; got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCurrentBookSkipsInvalidAndInactive(t *testing.T) {
	t.Parallel()
	books := []domain.Book{
		{Title: "Finished", Progress: 100, Current: false},
		{Title: "", Current: true},
		{Title: " Piranesi ", Progress: 40, Pages: 272, Current: true},
		{Title: "Later", Current: true},
	}
	got, ok := domain.CurrentBook(books)
	if !ok {
		t.Fatalf("expected a current book")
	}
	if got.Title != "Piranesi" || got.Progress != 40 {
		t.Fatalf("unexpected current book: %+v", got)
	}
	if _, ok := domain.CurrentBook(books[:1]); ok {
		t.Fatalf("no current book expected")
	}
}

package domain

import (
	"fmt"
	"strings"
)

// Source names which backend answered a reading lookup.
type Source string

const (
	SourceGoodreads Source = "goodreads"
	SourceFallback  Source = "fallback"
)

// State distinguishes an active book from an empty shelf.
type State string

const (
	StateReading State = "reading"
	StateNone    State = "none"
)

type Book struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
	Pages    int    `json:"pages"`
	Current  bool   `json:"current"`
}

func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if b.Pages < 0 {
		return fmt.Errorf("pages must be non-negative")
	}
	return nil
}

// Normalized trims the title and clamps progress to 0..100.
func (b Book) Normalized() Book {
	b.Title = strings.TrimSpace(b.Title)
	if b.Progress < 0 {
		b.Progress = 0
	}
	if b.Progress > 100 {
		b.Progress = 100
	}
	return b
}

// CurrentBook returns the first valid book flagged as current.
func CurrentBook(books []Book) (Book, bool) {
	for _, b := range books {
		if !b.Current {
			continue
		}
		if err := b.Validate(); err != nil {
			continue
		}
		return b.Normalized(), true
	}
	return Book{}, false
}

// Resolution is the outcome of a lookup. Book is nil when State is none.
type Resolution struct {
	Source Source
	State  State
	Book   *Book
	Reason string
}

func Reading(source Source, book Book) Resolution {
	return Resolution{Source: source, State: StateReading, Book: &book}
}

func NoActiveBook(source Source) Resolution {
	return Resolution{Source: source, State: StateNone}
}

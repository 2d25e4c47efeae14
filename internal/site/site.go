// Package site renders the dashboard as static files.
package site

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"

	calendardto "homedash/internal/modules/calendar/dto"
	"homedash/internal/platform/atomicfile"
	"homedash/internal/web"
)

type Builder struct {
	page *web.Page
}

func NewBuilder(page *web.Page) Builder {
	return Builder{page: page}
}

// Result lists the files written, relative to the output directory.
type Result struct {
	Files []string
}

// Build writes index.html, the two API snapshots and the stylesheet into
// outDir. Each file is replaced atomically.
func (b Builder) Build(ctx context.Context, outDir string, month calendardto.MonthInput) (Result, error) {
	if outDir == "" {
		return Result{}, fmt.Errorf("output directory is required")
	}
	view, err := b.page.Build(ctx, month)
	if err != nil {
		return Result{}, fmt.Errorf("build page: %w", err)
	}

	var index bytes.Buffer
	if err := b.page.Execute(&index, view); err != nil {
		return Result{}, err
	}
	reading, err := encode(view.Reading)
	if err != nil {
		return Result{}, err
	}
	anki, err := encode(view.Review)
	if err != nil {
		return Result{}, err
	}
	css, err := web.Stylesheet()
	if err != nil {
		return Result{}, fmt.Errorf("read stylesheet: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{"index.html", index.Bytes()},
		{filepath.Join("api", "reading.json"), reading},
		{filepath.Join("api", "anki.json"), anki},
		{filepath.Join("static", "style.css"), css},
	}
	res := Result{}
	for _, f := range files {
		if err := atomicfile.Write(filepath.Join(outDir, f.name), f.data); err != nil {
			return res, err
		}
		res.Files = append(res.Files, filepath.ToSlash(f.name))
	}
	log.Printf("site: wrote %d files to %s", len(res.Files), outDir)
	return res, nil
}

func encode(v any) ([]byte, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return append(raw, '\n'), nil
}

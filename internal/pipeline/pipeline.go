// Package pipeline runs the full document load: cache check, per-page text
// extraction, line assembly, and cache write. The pipeline is
// single-threaded; pages are processed strictly in ascending order because
// assembly depends on global line order across the whole document.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/taoshops/shopdex/internal/cache"
	"github.com/taoshops/shopdex/internal/directory"
	"github.com/taoshops/shopdex/internal/pdftext"
)

// Stage names passed to the progress callback.
const (
	StageExtract = "extract"
	StageParse   = "parse"
)

// Request holds the parameters for one document load.
type Request struct {
	// PDFPath is the source document.
	PDFPath string
	// SkipCache bypasses the cache read (the result is still written back).
	SkipCache bool
	// Logger receives progress logs; defaults to slog.Default().
	Logger *slog.Logger
	// Progress, when set, is invoked before extraction and before parsing.
	// It is purely informational and may not affect the load; a panicking
	// callback is recovered and ignored.
	Progress func(stage string)
}

// Result is the outcome of a successful load.
type Result struct {
	Records   []directory.ShopRecord
	Pages     int
	FromCache bool
	RunID     string
}

// Pipeline loads shop records from the source document, backed by a cache
// store.
type Pipeline struct {
	store cache.Store

	// OpenDocument opens the fragment source for a path. Tests substitute
	// a stub source here.
	OpenDocument func(path string) (pdftext.Source, error)
}

// New creates a Pipeline. A nil store disables caching entirely.
func New(store cache.Store) *Pipeline {
	return &Pipeline{
		store: store,
		OpenDocument: func(path string) (pdftext.Source, error) {
			return pdftext.Open(path)
		},
	}
}

// Load parses the whole document into an ID-ordered record list.
// Either the full document parses or the caller gets an error; there is no
// partial-result contract. Failed loads are not retried here.
func (p *Pipeline) Load(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	runID := uuid.New().String()
	log = log.With("run_id", runID)

	if !req.SkipCache && p.store != nil {
		if records, ok := p.store.Get(ctx); ok {
			log.Debug("cache hit", "records", len(records))
			return &Result{Records: records, FromCache: true, RunID: runID}, nil
		}
	}

	notify(log, req.Progress, StageExtract)

	doc, err := p.OpenDocument(req.PDFPath)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	pages := doc.NumPages()
	log.Debug("extracting document", "path", req.PDFPath, "pages", pages)

	var lines []string
	for pageNum := 1; pageNum <= pages; pageNum++ {
		frags, err := doc.PageFragments(ctx, pageNum)
		if err != nil {
			return nil, fmt.Errorf("extract page %d: %w", pageNum, err)
		}
		for _, line := range pdftext.BuildLines(pageNum, frags) {
			lines = append(lines, line.Text)
		}
	}

	notify(log, req.Progress, StageParse)

	records := directory.Assemble(lines)
	log.Info("document parsed", "pages", pages, "lines", len(lines), "records", len(records))

	if p.store != nil {
		if err := p.store.Put(ctx, records); err != nil {
			// Cache write failure degrades the next load, not this one.
			log.Warn("cache write failed", "error", err)
		}
	}

	return &Result{Records: records, Pages: pages, RunID: runID}, nil
}

// notify invokes the progress callback, shielding the load from callback
// panics.
func notify(log *slog.Logger, progress func(stage string), stage string) {
	if progress == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn("progress callback panicked", "stage", stage, "panic", r)
		}
	}()
	progress(stage)
}

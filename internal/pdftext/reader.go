package pdftext

import (
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// Source yields positioned text fragments one page at a time.
// Pages are numbered 1..NumPages and must be consumed in ascending order;
// downstream assembly depends on global line order across the document.
type Source interface {
	NumPages() int
	PageFragments(ctx context.Context, pageNum int) ([]TextFragment, error)
	Close() error
}

// Document is a Source backed by the embedded text layer of a PDF file.
type Document struct {
	path   string
	closer interface{ Close() error }
	reader *pdf.Reader
}

// Open validates the PDF and prepares it for fragment extraction.
// Validation failures and unreadable files are terminal; there is no
// degraded extraction path.
func Open(path string) (*Document, error) {
	if err := pdfcpu.ValidateFile(path, nil); err != nil {
		return nil, fmt.Errorf("invalid pdf %s: %w", path, err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}

	return &Document{path: path, closer: f, reader: r}, nil
}

// NumPages returns the page count.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageFragments extracts the positioned fragments of one page.
// The underlying content parser panics on malformed content streams; that is
// converted into an error so a bad page fails the load instead of the
// process.
func (d *Document) PageFragments(_ context.Context, pageNum int) (frags []TextFragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frags = nil
			err = fmt.Errorf("extract page %d of %s: %v", pageNum, d.path, r)
		}
	}()

	page := d.reader.Page(pageNum)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d of %s not found", pageNum, d.path)
	}

	texts := page.Content().Text
	frags = make([]TextFragment, 0, len(texts))
	for _, t := range texts {
		frags = append(frags, TextFragment{Text: t.S, X: t.X, Y: t.Y})
	}
	return frags, nil
}

// Close releases the underlying file.
func (d *Document) Close() error {
	return d.closer.Close()
}

// PageCount reports a PDF's page count without opening it for extraction.
func PageCount(path string) (int, error) {
	n, err := pdfcpu.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count for %s: %w", path, err)
	}
	return n, nil
}

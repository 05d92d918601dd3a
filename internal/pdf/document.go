package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
)

const baseDPI = 72

// Renderer produces page rasters and embedded text from a PDF. Implemented
// by Document; the pipeline takes the interface so tests can fake pages.
type Renderer interface {
	NumPages() int
	RenderPNG(ctx context.Context, pageNumber int, scale float64) ([]byte, error)
	Text(pageNumber int) (string, error)
	Close() error
}

// Document wraps an open PDF. Pages are numbered from 1.
type Document struct {
	doc   *fitz.Document
	pages int
}

// Open opens a PDF from disk.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	n := doc.NumPage()
	if n == 0 {
		doc.Close()
		return nil, fmt.Errorf("pdf has no pages")
	}
	return &Document{doc: doc, pages: n}, nil
}

// OpenBytes opens a PDF held in memory.
func OpenBytes(data []byte) (*Document, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	n := doc.NumPage()
	if n == 0 {
		doc.Close()
		return nil, fmt.Errorf("pdf has no pages")
	}
	return &Document{doc: doc, pages: n}, nil
}

func (d *Document) NumPages() int { return d.pages }

// RenderPNG rasterizes one page at the given scale (1.0 is 72 DPI).
func (d *Document) RenderPNG(ctx context.Context, pageNumber int, scale float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pageNumber < 1 || pageNumber > d.pages {
		return nil, fmt.Errorf("page %d out of range [1,%d]", pageNumber, d.pages)
	}
	img, err := d.doc.ImageDPI(pageNumber-1, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", pageNumber, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode page %d: %w", pageNumber, err)
	}
	return buf.Bytes(), nil
}

// Text returns the embedded text layer of one page. Scanned pages come back
// empty or near-empty, which is how callers decide to fall back to OCR.
func (d *Document) Text(pageNumber int) (string, error) {
	if pageNumber < 1 || pageNumber > d.pages {
		return "", fmt.Errorf("page %d out of range [1,%d]", pageNumber, d.pages)
	}
	text, err := d.doc.Text(pageNumber - 1)
	if err != nil {
		return "", fmt.Errorf("extract text page %d: %w", pageNumber, err)
	}
	return strings.TrimSpace(text), nil
}

func (d *Document) Close() error {
	if d.doc == nil {
		return nil
	}
	err := d.doc.Close()
	d.doc = nil
	return err
}

// Package dom provides the document abstraction the fill engine operates on.
// It wraps a parsed HTML tree and exposes the small surface the engine needs:
// control enumeration, label resolution, and in-place value writes. The
// engine mutates the tree directly; rendering it back out is how a caller
// observes the result.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Error represents a document parse or render failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dom error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dom error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Parse builds a Document from an HTML stream.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &Error{Message: "failed to parse HTML", Cause: err}
	}
	return &Document{doc: doc}, nil
}

// ParseString builds a Document from an HTML string.
func ParseString(html string) (*Document, error) {
	return Parse(strings.NewReader(html))
}

// Render serializes the document, including any writes applied to it.
func (d *Document) Render() (string, error) {
	html, err := d.doc.Html()
	if err != nil {
		return "", &Error{Message: "failed to render HTML", Cause: err}
	}
	return html, nil
}

// Controls returns every form control in document order: inputs, textareas,
// and selects. Filtering of non-fillable kinds happens at the Control level.
func (d *Document) Controls() *goquery.Selection {
	return d.doc.Find("input, textarea, select")
}

// Find runs a CSS selector against the document.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// LabelFor returns the trimmed text of the label explicitly associated with
// the given control id, or the empty string when there is none.
func (d *Document) LabelFor(id string) string {
	if id == "" {
		return ""
	}
	label := d.doc.Find(fmt.Sprintf(`label[for=%q]`, id))
	if label.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(label.First().Text())
}

// Title returns the document title text.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// BodyText returns the document body's text content, lower-cased, for
// keyword scans.
func (d *Document) BodyText() string {
	return strings.ToLower(d.doc.Find("body").Text())
}

// Package inventory scans a document's form controls into field descriptors
// for the classifier. A scan is one-shot: descriptors are rebuilt on every
// call and never cached, so they always reflect the document as it stands.
package inventory

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-autofill/internal/dom"
	"github.com/jonathan/resume-autofill/internal/types"
)

// ancestorLevels is how far up the tree the context walk climbs collecting
// nearby label and heading text.
const ancestorLevels = 3

// Scan enumerates the document's fillable controls in document order and
// produces one descriptor per control. Hidden, submit, and button inputs are
// skipped.
func Scan(doc *dom.Document) []types.FieldDescriptor {
	var fields []types.FieldDescriptor

	doc.Controls().Each(func(_ int, sel *goquery.Selection) {
		ctrl, ok := dom.AsControl(sel)
		if !ok {
			return
		}
		fields = append(fields, Describe(doc, ctrl))
	})

	return fields
}

// Describe builds the descriptor for one control, including its aggregated
// context text. The bulk fill pass uses this for its pre-write guard; Scan
// uses it for every control it enumerates.
func Describe(doc *dom.Document, ctrl *dom.Control) types.FieldDescriptor {
	label := doc.LabelFor(ctrl.ID())
	return types.FieldDescriptor{
		Identifier:  ctrl.ID(),
		Name:        ctrl.Name(),
		Kind:        ctrl.Kind(),
		Label:       label,
		Placeholder: ctrl.Placeholder(),
		Context:     contextFor(ctrl, label),
	}
}

// contextFor aggregates the text signals surrounding a control: its resolved
// label, placeholder, aria-label, and then up to three ancestor levels of
// label elements (those without a for attribute, or whose for matches this
// control) and heading text. Everything is lower-cased for matching.
func contextFor(ctrl *dom.Control, label string) string {
	var parts []string

	appendText := func(text string) {
		text = strings.TrimSpace(text)
		if text != "" {
			parts = append(parts, text)
		}
	}

	appendText(label)
	appendText(ctrl.Placeholder())
	appendText(ctrl.AriaLabel())

	id := ctrl.ID()
	parent := ctrl.Selection().Parent()
	for level := 0; level < ancestorLevels && parent.Length() > 0; level++ {
		parent.Find("label").Each(func(_ int, l *goquery.Selection) {
			forAttr, hasFor := l.Attr("for")
			if !hasFor || forAttr == id {
				appendText(l.Text())
			}
		})
		parent.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
			appendText(h.Text())
		})
		parent = parent.Parent()
	}

	return strings.ToLower(strings.Join(parts, " "))
}

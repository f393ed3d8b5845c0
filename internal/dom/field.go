package dom

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Variant distinguishes how a control accepts a value. Text-like controls
// take the value verbatim; select-like controls pick the first option whose
// value or display text contains the value.
type Variant int

const (
	// TextLike covers text/email/tel inputs and textareas.
	TextLike Variant = iota
	// SelectLike covers select elements.
	SelectLike
)

// Control is a writable form control resolved once per element, so write
// sites never re-branch on the element's tag.
type Control struct {
	sel     *goquery.Selection
	variant Variant
	kind    types.Kind
}

// nonFillable input types are never treated as controls.
var nonFillable = map[string]bool{
	"hidden": true,
	"submit": true,
	"button": true,
}

// AsControl wraps a single-element selection as a writable control. It
// returns false for hidden/submit/button inputs and for non-form elements.
func AsControl(sel *goquery.Selection) (*Control, bool) {
	if sel == nil || sel.Length() == 0 {
		return nil, false
	}
	sel = sel.First()

	switch goquery.NodeName(sel) {
	case "input":
		typ := strings.ToLower(sel.AttrOr("type", "text"))
		if nonFillable[typ] {
			return nil, false
		}
		return &Control{sel: sel, variant: TextLike, kind: inputKind(typ)}, true
	case "textarea":
		return &Control{sel: sel, variant: TextLike, kind: types.KindTextarea}, true
	case "select":
		return &Control{sel: sel, variant: SelectLike, kind: types.KindSelect}, true
	default:
		return nil, false
	}
}

func inputKind(typ string) types.Kind {
	switch typ {
	case "email":
		return types.KindEmail
	case "tel":
		return types.KindTel
	case "text":
		return types.KindText
	default:
		return types.KindOther
	}
}

// Kind returns the control kind used by descriptors and the write guard.
func (c *Control) Kind() types.Kind {
	return c.kind
}

// ID returns the element's id attribute.
func (c *Control) ID() string {
	return c.sel.AttrOr("id", "")
}

// Name returns the element's name attribute.
func (c *Control) Name() string {
	return c.sel.AttrOr("name", "")
}

// Placeholder returns the element's placeholder attribute.
func (c *Control) Placeholder() string {
	return c.sel.AttrOr("placeholder", "")
}

// AriaLabel returns the element's aria-label attribute.
func (c *Control) AriaLabel() string {
	return c.sel.AttrOr("aria-label", "")
}

// Key identifies the control in logs and outcome records: id, else name,
// else a fixed placeholder.
func (c *Control) Key() string {
	if id := c.ID(); id != "" {
		return id
	}
	if name := c.Name(); name != "" {
		return name
	}
	return "unnamed"
}

// Selection exposes the underlying selection for context walks.
func (c *Control) Selection() *goquery.Selection {
	return c.sel
}

// Write applies the value to the control and reports whether anything was
// written. Text-like controls always accept a non-empty value; select-like
// controls only accept it when an option matches by case-insensitive
// substring of its value or display text. Successful writes are reported to
// the notifier with the events page scripts would observe.
func (c *Control) Write(value string, notifier Notifier) bool {
	if value == "" {
		return false
	}

	switch c.variant {
	case SelectLike:
		if !c.selectOption(value) {
			return false
		}
		notify(notifier, c, "change")
		return true
	default:
		if c.kind == types.KindTextarea {
			c.sel.SetText(value)
		} else {
			c.sel.SetAttr("value", value)
		}
		notify(notifier, c, "input", "change")
		return true
	}
}

// selectOption marks the first option matching the value and clears any
// previous selection. Returns false when no option matches.
func (c *Control) selectOption(value string) bool {
	needle := strings.ToLower(value)
	matched := false

	c.sel.Find("option").EachWithBreak(func(_ int, opt *goquery.Selection) bool {
		optValue := strings.ToLower(opt.AttrOr("value", ""))
		optText := strings.ToLower(strings.TrimSpace(opt.Text()))
		if !strings.Contains(optValue, needle) && !strings.Contains(optText, needle) {
			return true
		}
		c.sel.Find("option").RemoveAttr("selected")
		opt.SetAttr("selected", "selected")
		matched = true
		return false
	})

	return matched
}

// Value reads the control's current value: the value attribute for inputs,
// the text for textareas, and the selected option's value for selects.
func (c *Control) Value() string {
	switch c.variant {
	case SelectLike:
		selected := c.sel.Find("option[selected]").First()
		if selected.Length() == 0 {
			return ""
		}
		if v, ok := selected.Attr("value"); ok {
			return v
		}
		return strings.TrimSpace(selected.Text())
	default:
		if c.kind == types.KindTextarea {
			return c.sel.Text()
		}
		return c.sel.AttrOr("value", "")
	}
}

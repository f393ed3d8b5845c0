package types

import "strings"

// Kind identifies the control kind of a scanned form field.
type Kind string

const (
	KindText     Kind = "text"
	KindEmail    Kind = "email"
	KindTel      Kind = "tel"
	KindTextarea Kind = "textarea"
	KindSelect   Kind = "select"
	KindOther    Kind = "other"
)

// FieldDescriptor is the structured summary of one form control produced by
// an inventory scan. Descriptors are rebuilt on every fill invocation and
// never persisted.
type FieldDescriptor struct {
	Identifier  string `json:"id"`
	Name        string `json:"name"`
	Kind        Kind   `json:"type"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`

	// Context is the lower-cased concatenation of the resolved label,
	// placeholder, aria-label, and nearby label/heading text gathered from
	// up to three ancestor levels.
	Context string `json:"-"`
}

// IDName returns the lower-cased identifier and name joined for attribute
// matching. Both parts are included so either attribute can carry the signal.
func (d *FieldDescriptor) IDName() string {
	return LowerIDName(d.Identifier, d.Name)
}

// LowerIDName joins an element's id and name attributes into the lower-cased
// matching string used by the classifier.
func LowerIDName(identifier, name string) string {
	return strings.ToLower(strings.TrimSpace(identifier + " " + name))
}

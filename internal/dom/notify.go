package dom

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Notifier observes successful writes. In the browser this side of the
// engine highlighted the element and dispatched input/change events so page
// scripts saw the new value; here it is a pluggable collaborator so hosts
// can mirror that feedback however they like.
type Notifier interface {
	FieldFilled(field string, kind types.Kind, events []string)
}

// LogNotifier logs each write at debug level. It is the default collaborator
// when the host provides nothing else.
type LogNotifier struct {
	Log *zap.Logger
}

// FieldFilled implements Notifier.
func (n *LogNotifier) FieldFilled(field string, kind types.Kind, events []string) {
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("field filled",
		zap.String("field", field),
		zap.String("kind", string(kind)),
		zap.Strings("events", events),
	)
}

// RecordingNotifier captures write notifications for inspection in tests and
// verbose output.
type RecordingNotifier struct {
	Events []WriteEvent
}

// WriteEvent is one recorded write notification.
type WriteEvent struct {
	Field  string
	Kind   types.Kind
	Events []string
}

// FieldFilled implements Notifier.
func (n *RecordingNotifier) FieldFilled(field string, kind types.Kind, events []string) {
	n.Events = append(n.Events, WriteEvent{Field: field, Kind: kind, Events: events})
}

func notify(n Notifier, c *Control, events ...string) {
	if n == nil {
		return
	}
	n.FieldFilled(c.Key(), c.kind, events)
}

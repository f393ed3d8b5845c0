package types

// Method identifies which matching path produced the fills of one pass.
type Method string

const (
	// MethodHeuristic means only the local rule-based matcher ran.
	MethodHeuristic Method = "heuristic"
	// MethodRemoteAssisted means remote suggestions covered at least one field.
	MethodRemoteAssisted Method = "remoteAssisted"
)

// RemoteError classifies a remote suggestion failure surfaced alongside an
// otherwise successful heuristic outcome.
type RemoteError string

const (
	RemoteErrorNone        RemoteError = ""
	RemoteErrorRateLimited RemoteError = "rateLimited"
	RemoteErrorOther       RemoteError = "other"
)

// FillOutcome is the aggregate result of one fill pass over a document.
type FillOutcome struct {
	Success      bool        `json:"success"`
	FilledCount  int         `json:"filledCount"`
	SkippedCount int         `json:"skippedCount"`
	Method       Method      `json:"method"`
	RemoteError  RemoteError `json:"remoteError,omitempty"`

	// FilledFields and SkippedFields record which controls were touched,
	// keyed by id or name, for verbose output and logs.
	FilledFields  []string `json:"filledFields,omitempty"`
	SkippedFields []string `json:"skippedFields,omitempty"`
}

// RecordFill notes a successful write to the named control.
func (o *FillOutcome) RecordFill(field string) {
	o.FilledCount++
	if field != "" {
		o.FilledFields = append(o.FilledFields, field)
	}
}

// RecordSkip notes a control that was deliberately left alone.
func (o *FillOutcome) RecordSkip(field string) {
	o.SkippedCount++
	if field != "" {
		o.SkippedFields = append(o.SkippedFields, field)
	}
}

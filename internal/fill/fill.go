// Package fill drives the two-pass autofill over a document: a bulk pass
// over a fixed priority table of category selectors, then a per-field
// fallback pass that scans, classifies, and fills whatever the bulk pass
// missed. An optional remote suggester enriches the fallback pass; its
// failures never fail the fill.
package fill

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/jonathan/resume-autofill/internal/classify"
	"github.com/jonathan/resume-autofill/internal/dom"
	"github.com/jonathan/resume-autofill/internal/inventory"
	"github.com/jonathan/resume-autofill/internal/llm"
	"github.com/jonathan/resume-autofill/internal/types"
)

// Options configures one fill invocation. All fields are optional.
type Options struct {
	// Suggester, when set, is offered the field inventory before the
	// fallback pass runs.
	Suggester llm.Suggester
	// Notifier observes successful writes.
	Notifier dom.Notifier
	// Log receives skip and fault diagnostics.
	Log *zap.Logger
}

// run owns the state of one invocation. Nothing here outlives the call, so
// concurrent invocations on different documents never share counters.
type run struct {
	doc     *dom.Document
	profile *types.Profile
	opts    Options
	outcome *types.FillOutcome
	// filled tracks written elements so later passes do not re-fill (and
	// double-count) what an earlier pass already handled.
	filled map[*html.Node]bool
	// skipped tracks guard-rejected elements the same way: several selectors
	// in one category's list can match the same control.
	skipped map[*html.Node]bool
	log     *zap.Logger
}

// Run executes one fill pass over the document and reports the aggregate
// outcome. A document with no form controls is a successful pass with zero
// fills, and a fault while writing one field never stops the rest.
func Run(ctx context.Context, doc *dom.Document, profile *types.Profile, opts Options) *types.FillOutcome {
	outcome := &types.FillOutcome{Success: true, Method: types.MethodHeuristic}
	if doc == nil || profile == nil {
		return outcome
	}

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := &run{
		doc:     doc,
		profile: profile,
		opts:    opts,
		outcome: outcome,
		filled:  make(map[*html.Node]bool),
		skipped: make(map[*html.Node]bool),
		log:     log,
	}

	r.bulkPass()

	fields := inventory.Scan(doc)
	covered := map[string]bool{}
	if opts.Suggester != nil && len(fields) > 0 {
		covered = r.applySuggestions(ctx, fields)
	}
	r.fallbackPass(fields, covered)

	return outcome
}

// bulkPass walks the priority table. For each category with a resolvable
// value it attempts the selector list in order, stopping at the first
// selector that produced a write; every matching element of that selector is
// written, subject to the pre-write guard.
func (r *run) bulkPass() {
	targets := make([]bulkTarget, len(bulkTargets))
	copy(targets, bulkTargets)
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].priority < targets[j].priority
	})

	for _, target := range targets {
		value := classify.ResolveValue(r.profile, target.category)
		if value == "" {
			continue
		}

		for _, sel := range target.selectors {
			controls := sel.findAll(r.doc)
			if len(controls) == 0 {
				continue
			}

			wrote := false
			for _, ctrl := range controls {
				desc := inventory.Describe(r.doc, ctrl)
				if !classify.IsAppropriate(&desc, value, target.category) {
					r.recordSkip(ctrl, target.category)
					continue
				}
				if r.write(ctrl, value) {
					wrote = true
				}
			}
			if wrote {
				break
			}
		}
	}
}

// recordSkip counts one guard rejection per element. Without the dedup a
// control matched by both the id and name selector of a category would be
// counted as two skips.
func (r *run) recordSkip(ctrl *dom.Control, category classify.Category) {
	if node := ctrl.Selection().Get(0); node != nil {
		if r.skipped[node] {
			return
		}
		r.skipped[node] = true
	}
	r.outcome.RecordSkip(ctrl.Key())
	r.log.Debug("write guard rejected fill",
		zap.String("field", ctrl.Key()),
		zap.String("category", string(category)),
	)
}

// applySuggestions offers the inventory and profile to the remote suggester
// once and applies whatever usable mappings come back. Returns the ids and
// names the suggestions covered so the fallback pass leaves them alone.
// Suggester failures are recorded on the outcome (rate limits distinctly)
// but never abort the pass.
func (r *run) applySuggestions(ctx context.Context, fields []types.FieldDescriptor) map[string]bool {
	covered := map[string]bool{}

	mappings, err := r.opts.Suggester.Suggest(ctx, fields, r.profile)
	if err != nil {
		switch {
		case errors.Is(err, llm.ErrRateLimited):
			r.outcome.RemoteError = types.RemoteErrorRateLimited
			r.log.Warn("remote suggestions rate limited, using heuristics only")
		case errors.Is(err, llm.ErrNoCredential):
			r.log.Debug("no remote credential stored, using heuristics only")
		default:
			r.outcome.RemoteError = types.RemoteErrorOther
			r.log.Warn("remote suggestions unavailable, using heuristics only", zap.Error(err))
		}
		return covered
	}

	applied := false
	for _, m := range mappings {
		ctrl := r.findControl(m.FieldID, m.FieldName)
		if ctrl == nil {
			continue
		}
		if node := ctrl.Selection().Get(0); node != nil && r.filled[node] {
			continue
		}
		if r.write(ctrl, m.ResumeValue) {
			applied = true
			if m.FieldID != "" {
				covered[m.FieldID] = true
			}
			if m.FieldName != "" {
				covered[m.FieldName] = true
			}
		}
	}

	if applied {
		r.outcome.Method = types.MethodRemoteAssisted
	}
	return covered
}

// fallbackPass classifies each scanned descriptor and writes the resolved
// value. No guard applies here: category precedence already disambiguated
// the field, and the bulk pass's writes are skipped via the filled set.
func (r *run) fallbackPass(fields []types.FieldDescriptor, covered map[string]bool) {
	for i := range fields {
		desc := &fields[i]
		if (desc.Identifier != "" && covered[desc.Identifier]) ||
			(desc.Name != "" && covered[desc.Name]) {
			continue
		}

		ctrl := r.findControl(desc.Identifier, desc.Name)
		if ctrl == nil {
			continue
		}
		if node := ctrl.Selection().Get(0); node != nil && r.filled[node] {
			continue
		}

		category := classify.Classify(desc.Identifier, desc.Name, desc.Context)
		if category == classify.CategoryNone {
			continue
		}
		value := classify.ResolveValue(r.profile, category)
		if value == "" {
			continue
		}

		r.write(ctrl, value)
	}
}

// findControl resolves a control by element id, then by name attribute.
func (r *run) findControl(id, name string) *dom.Control {
	if id != "" {
		if ctrl, ok := dom.AsControl(r.doc.Find(fmt.Sprintf(`[id=%q]`, id))); ok {
			return ctrl
		}
	}
	if name != "" {
		if ctrl, ok := dom.AsControl(r.doc.Find(fmt.Sprintf(`[name=%q]`, name))); ok {
			return ctrl
		}
	}
	return nil
}

// write applies one value to one control, containing any fault to that
// field. A fault is logged and the pass moves on.
func (r *run) write(ctrl *dom.Control, value string) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Warn("fault while writing field",
				zap.String("field", ctrl.Key()),
				zap.Any("fault", rec),
			)
			ok = false
		}
	}()

	if !ctrl.Write(value, r.opts.Notifier) {
		return false
	}
	if node := ctrl.Selection().Get(0); node != nil {
		r.filled[node] = true
	}
	r.outcome.RecordFill(ctrl.Key())
	return true
}

package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-autofill/internal/types"
)

const sampleForm = `
<html>
<head><title>Apply Now</title></head>
<body>
  <h2>Application</h2>
  <form>
    <label for="name">Full Name</label>
    <input id="name" name="name" type="text">
    <input id="email" name="email" type="email" placeholder="you@example.com">
    <input type="hidden" name="csrf" value="token">
    <input type="submit" value="Apply">
    <textarea id="skills" name="skills"></textarea>
    <select id="state" name="state">
      <option value="">Choose</option>
      <option value="CA">California</option>
      <option value="NY">New York</option>
    </select>
  </form>
</body>
</html>`

func mustParse(t *testing.T, html string) *Document {
	t.Helper()
	doc, err := ParseString(html)
	require.NoError(t, err)
	return doc
}

func controlByID(t *testing.T, doc *Document, id string) *Control {
	t.Helper()
	ctrl, ok := AsControl(doc.Find("#" + id))
	require.True(t, ok, "expected %s to be a control", id)
	return ctrl
}

func TestDocumentBasics(t *testing.T) {
	doc := mustParse(t, sampleForm)

	assert.Equal(t, "Apply Now", doc.Title())
	assert.Contains(t, doc.BodyText(), "application")
	assert.Equal(t, "Full Name", doc.LabelFor("name"))
	assert.Empty(t, doc.LabelFor("email"))
	assert.Empty(t, doc.LabelFor(""))

	// Controls enumerates all form elements; filtering happens in AsControl.
	assert.Equal(t, 6, doc.Controls().Length())
}

func TestAsControl_SkipsNonFillable(t *testing.T) {
	doc := mustParse(t, sampleForm)

	_, ok := AsControl(doc.Find(`input[name="csrf"]`))
	assert.False(t, ok)

	_, ok = AsControl(doc.Find(`input[type="submit"]`))
	assert.False(t, ok)

	_, ok = AsControl(doc.Find("h2"))
	assert.False(t, ok)

	_, ok = AsControl(doc.Find("#missing"))
	assert.False(t, ok)
}

func TestControlKinds(t *testing.T) {
	doc := mustParse(t, sampleForm)

	assert.Equal(t, types.KindText, controlByID(t, doc, "name").Kind())
	assert.Equal(t, types.KindEmail, controlByID(t, doc, "email").Kind())
	assert.Equal(t, types.KindTextarea, controlByID(t, doc, "skills").Kind())
	assert.Equal(t, types.KindSelect, controlByID(t, doc, "state").Kind())
}

func TestControlKey(t *testing.T) {
	doc := mustParse(t, `<form><input name="only_name"><input type="text"></form>`)

	byName, ok := AsControl(doc.Find(`input[name="only_name"]`))
	require.True(t, ok)
	assert.Equal(t, "only_name", byName.Key())

	anon, ok := AsControl(doc.Find(`input[type="text"]`))
	require.True(t, ok)
	assert.Equal(t, "unnamed", anon.Key())
}

func TestWrite_TextInput(t *testing.T) {
	doc := mustParse(t, sampleForm)
	notifier := &RecordingNotifier{}

	ctrl := controlByID(t, doc, "name")
	assert.True(t, ctrl.Write("Jane Doe", notifier))
	assert.Equal(t, "Jane Doe", ctrl.Value())

	require.Len(t, notifier.Events, 1)
	assert.Equal(t, "name", notifier.Events[0].Field)
	assert.Equal(t, []string{"input", "change"}, notifier.Events[0].Events)

	// Writes survive a render round trip.
	html, err := doc.Render()
	require.NoError(t, err)
	assert.Contains(t, html, `value="Jane Doe"`)
}

func TestWrite_Textarea(t *testing.T) {
	doc := mustParse(t, sampleForm)

	ctrl := controlByID(t, doc, "skills")
	assert.True(t, ctrl.Write("Go, SQL", nil))
	assert.Equal(t, "Go, SQL", ctrl.Value())
}

func TestWrite_SelectMatchesOptionText(t *testing.T) {
	doc := mustParse(t, sampleForm)
	notifier := &RecordingNotifier{}

	ctrl := controlByID(t, doc, "state")
	// "California" matches the display text; the selected value is "CA".
	assert.True(t, ctrl.Write("California", notifier))
	assert.Equal(t, "CA", ctrl.Value())

	require.Len(t, notifier.Events, 1)
	assert.Equal(t, []string{"change"}, notifier.Events[0].Events)
}

func TestWrite_SelectMatchesOptionValue(t *testing.T) {
	doc := mustParse(t, sampleForm)

	ctrl := controlByID(t, doc, "state")
	assert.True(t, ctrl.Write("ny", nil))
	assert.Equal(t, "NY", ctrl.Value())
}

func TestWrite_SelectNoMatch(t *testing.T) {
	doc := mustParse(t, sampleForm)
	notifier := &RecordingNotifier{}

	ctrl := controlByID(t, doc, "state")
	assert.False(t, ctrl.Write("Texas", notifier))
	assert.Empty(t, ctrl.Value())
	assert.Empty(t, notifier.Events)
}

func TestWrite_SelectReplacesPreviousSelection(t *testing.T) {
	doc := mustParse(t, sampleForm)

	ctrl := controlByID(t, doc, "state")
	require.True(t, ctrl.Write("California", nil))
	require.True(t, ctrl.Write("New York", nil))
	assert.Equal(t, "NY", ctrl.Value())
}

func TestWrite_EmptyValue(t *testing.T) {
	doc := mustParse(t, sampleForm)
	notifier := &RecordingNotifier{}

	ctrl := controlByID(t, doc, "name")
	assert.False(t, ctrl.Write("", notifier))
	assert.Empty(t, notifier.Events)
}

func TestParse_InvalidReader(t *testing.T) {
	// An empty document still parses; goquery normalizes it.
	doc, err := ParseString("")
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Controls().Length())
}

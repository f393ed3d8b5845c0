package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-autofill/internal/types"
)

func desc(id, name string, kind types.Kind, context string) *types.FieldDescriptor {
	return &types.FieldDescriptor{
		Identifier: id,
		Name:       name,
		Kind:       kind,
		Context:    context,
	}
}

func TestIsAppropriate_PersonNameIntoCompanyField(t *testing.T) {
	field := desc("company_name", "", types.KindText, "")

	assert.False(t, IsAppropriate(field, "Jane Smith", CategoryCompany))

	// A value that does not look like a person's name is fine.
	assert.True(t, IsAppropriate(field, "Acme", CategoryCompany))
}

func TestIsAppropriate_CompanyValueIntoNameField(t *testing.T) {
	field := desc("full_name", "", types.KindText, "")

	assert.False(t, IsAppropriate(field, "Acme Corp Inc", CategoryFullName))
	assert.False(t, IsAppropriate(field, "Widgets LLC", CategoryFullName))
	assert.True(t, IsAppropriate(field, "Jane Smith", CategoryFullName))
}

func TestIsAppropriate_NameFieldExclusions(t *testing.T) {
	// first/last name fields are not treated as full-name fields, so the
	// corporate-token veto does not apply to them.
	field := desc("first_name", "", types.KindText, "")
	assert.True(t, IsAppropriate(field, "Acme Corp Inc", CategoryFullName))

	// A multi-word capitalized company name also matches the person-name
	// shape, so the company-field veto fires on it too. Known false
	// positive, preserved deliberately; see DESIGN.md.
	company := desc("company_name", "", types.KindText, "")
	assert.False(t, IsAppropriate(company, "Acme Corp Inc", CategoryCompany))
	assert.True(t, IsAppropriate(company, "ACME Widgets", CategoryCompany))
}

func TestIsAppropriate_AddressShapedValues(t *testing.T) {
	street := desc("street_address", "", types.KindText, "")
	assert.True(t, IsAppropriate(street, "123 Main St", CategoryAddress))

	// Context can carry the address role even when the attributes do not.
	labelled := desc("f2", "", types.KindText, "street address line 1")
	assert.True(t, IsAppropriate(labelled, "123 Main St", CategoryAddress))

	comment := desc("comments", "", types.KindTextarea, "")
	assert.False(t, IsAppropriate(comment, "123 Main St", CategoryAddress))
}

func TestIsAppropriate_DigitBearingValues(t *testing.T) {
	// Any digit-run-then-word value trips the address-shape test, so in the
	// guarded bulk pass phone numbers and zip codes only pass into fields
	// whose attributes mention an address role. The unguarded fallback pass
	// is what actually fills these fields.
	phone := desc("phone", "", types.KindTel, "")
	assert.False(t, IsAppropriate(phone, "555-010-0100", CategoryPhone))

	zip := desc("zip", "", types.KindText, "")
	assert.False(t, IsAppropriate(zip, "94103", CategoryZipCode))
}

func TestIsAppropriate_EmailValues(t *testing.T) {
	emailTyped := desc("f3", "", types.KindEmail, "")
	assert.True(t, IsAppropriate(emailTyped, "jane@example.com", CategoryEmail))

	emailNamed := desc("applicant_email", "", types.KindText, "")
	assert.True(t, IsAppropriate(emailNamed, "jane@example.com", CategoryEmail))

	emailContext := desc("f4", "", types.KindText, "your email")
	assert.True(t, IsAppropriate(emailContext, "jane@example.com", CategoryEmail))

	plain := desc("username", "", types.KindText, "")
	assert.False(t, IsAppropriate(plain, "jane@example.com", CategoryEmail))
}

func TestIsAppropriate_EmptyInputs(t *testing.T) {
	assert.False(t, IsAppropriate(nil, "value", CategoryNone))
	assert.False(t, IsAppropriate(desc("email", "", types.KindText, ""), "", CategoryEmail))
}

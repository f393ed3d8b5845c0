package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Value-shape and field-role patterns for the write-safety guard.
var (
	// rePersonName matches two or more capitalized words ("Jane Smith").
	rePersonName = regexp.MustCompile(`^[A-Z][a-z]+( [A-Z][a-z]+)+$`)
	// reCorporate matches tokens that almost always mark a company name.
	reCorporate = regexp.MustCompile(`(?i)Inc|LLC|Corp|Company|Ltd`)
	// reAddressShape matches a digit run followed by word characters
	// ("123 Main St").
	reAddressShape = regexp.MustCompile(`\d+.+\w+`)

	reAddressRole = regexp.MustCompile(`address|street|location`)
	reEmailRole   = regexp.MustCompile(`email`)

	// reNameFieldExclude deliberately omits "employer": an employer_name
	// field still counts as a name field for the corporate-token veto.
	reNameFieldExclude = regexp.MustCompile(`\bcompany\b|\bbusiness\b|\borganization\b|\bfirst\b|\blast\b`)
)

// IsAppropriate reports whether writing value into the described field is
// safe. It is the pre-write veto applied during the bulk priority pass; the
// per-field fallback pass relies on category precedence alone and does not
// consult it. The category is the label the caller resolved the value from
// and is carried for logging by callers; the rules themselves key off the
// field's role and the value's shape.
//
// A false result is a deliberate skip, not an error.
func IsAppropriate(desc *types.FieldDescriptor, value string, category Category) bool {
	if desc == nil || value == "" {
		return false
	}

	idName := desc.IDName()
	context := strings.ToLower(desc.Context)
	idWords := wordSeparators.Replace(idName)
	ctxWords := wordSeparators.Replace(context)

	companyField := matchEither(reCompany, idWords, ctxWords)
	nameField := strings.Contains(idName, "name") &&
		!reNameFieldExclude.MatchString(idWords)

	// A person's name must not land in a company field.
	if companyField && rePersonName.MatchString(value) {
		return false
	}

	// A company-looking value must not land in a personal-name field.
	if nameField && reCorporate.MatchString(value) {
		return false
	}

	// A street-address-shaped value only goes into fields that mention an
	// address role.
	if reAddressShape.MatchString(value) &&
		!matchEither(reAddressRole, idName, context) {
		return false
	}

	// An email-looking value only goes into email-typed or email-labelled
	// fields.
	if strings.Contains(value, "@") &&
		desc.Kind != types.KindEmail &&
		!matchEither(reEmailRole, idName, context) {
		return false
	}

	return true
}

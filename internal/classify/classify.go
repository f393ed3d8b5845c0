package classify

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-autofill/internal/types"
)

// Whole-word patterns for the mutually exclusive location and company flags.
// These overlap heavily in real forms ("billing_address_city"), which is why
// the resolution chain below tests them with explicit exclusions instead of
// first-substring-wins.
var (
	reAddress = regexp.MustCompile(`\baddress\b|\bstreet\b`)
	reCity    = regexp.MustCompile(`\bcity\b|\btown\b`)
	reState   = regexp.MustCompile(`\bstate\b|\bprovince\b`)
	reZip     = regexp.MustCompile(`\bzip\b|\bpostal\b`)
	reCode    = regexp.MustCompile(`\bcode\b`)
	rePostal  = regexp.MustCompile(`\bpostal\b`)
	reCompany = regexp.MustCompile(`\bcompany\b|\borganization\b|\bbusiness\b|\bemployer\b`)

	reNameWord    = regexp.MustCompile(`\bname\b`)
	reNameExclude = regexp.MustCompile(`city|state|zip|postal|code|company|organization|business|employer`)
)

// fallbackRules are tested in order against idName after the flag-based chain
// falls through. Order matters: looser substrings ("from", "to") sit below
// the more specific patterns that would otherwise never match.
var fallbackRules = []struct {
	re       *regexp.Regexp
	category Category
}{
	{regexp.MustCompile(`email`), CategoryEmail},
	{regexp.MustCompile(`phone|mobile`), CategoryPhone},
	{regexp.MustCompile(`university|school|college`), CategoryUniversity},
	{regexp.MustCompile(`degree`), CategoryDegree},
	{regexp.MustCompile(`major|field`), CategoryMajor},
	{regexp.MustCompile(`graduation|grad_date`), CategoryGraduationDate},
	{regexp.MustCompile(`gpa`), CategoryGPA},
	// company is normally caught by the flag chain above; this entry keeps a
	// safety net for values that only surface in the fallback order.
	{regexp.MustCompile(`company|employer`), CategoryCompany},
	{regexp.MustCompile(`title|position|role`), CategoryJobTitle},
	{regexp.MustCompile(`start_date|from`), CategoryStartDate},
	{regexp.MustCompile(`end_date|to`), CategoryEndDate},
	{regexp.MustCompile(`responsibilities|description|duties`), CategoryResponsibilities},
	{regexp.MustCompile(`skills`), CategorySkills},
}

// wordSeparators rewrites the token separators common in form attributes so
// the whole-word patterns above can see them. `\b` treats underscores as word
// characters, so without this "billing_address_city" would carry no location
// flag at all.
var wordSeparators = strings.NewReplacer("_", " ", "-", " ")

// Classify infers the semantic category of a form control from its id/name
// attributes and its surrounding context text. Resolution order is fixed:
// the location/company flag chain runs first, then the whole-word name test,
// then the substring fallback table. First match wins.
//
// A field flagged as both address and city (for example
// "billing_address_city") satisfies neither the address rule nor the city
// rule and falls through the chain; that mirrors the shipped matcher's rule
// order and is a known ambiguity, not an oversight.
func Classify(identifier, name, context string) Category {
	idName := types.LowerIDName(identifier, name)
	context = strings.ToLower(context)

	// Whole-word flags see normalized separators; the substring rules below
	// run against the raw attribute string so patterns like "grad_date"
	// still match.
	idWords := wordSeparators.Replace(idName)
	ctxWords := wordSeparators.Replace(context)

	addressFlag := matchEither(reAddress, idWords, ctxWords)
	cityFlag := matchEither(reCity, idWords, ctxWords)
	stateFlag := matchEither(reState, idWords, ctxWords)
	zipFlag := matchEither(reZip, idWords, ctxWords) ||
		(reCode.MatchString(idWords) && rePostal.MatchString(idWords))
	companyFlag := matchEither(reCompany, idWords, ctxWords)

	switch {
	case addressFlag && !cityFlag && !stateFlag && !zipFlag:
		return CategoryAddress
	case cityFlag && !addressFlag:
		return CategoryCity
	case stateFlag && !addressFlag:
		return CategoryState
	case zipFlag && !addressFlag:
		return CategoryZipCode
	case companyFlag:
		return CategoryCompany
	case reNameWord.MatchString(idWords) && !reNameExclude.MatchString(idName):
		return CategoryFullName
	}

	for _, rule := range fallbackRules {
		if rule.re.MatchString(idName) {
			return rule.category
		}
	}

	return CategoryNone
}

func matchEither(re *regexp.Regexp, a, b string) bool {
	return re.MatchString(a) || re.MatchString(b)
}

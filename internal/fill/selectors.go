package fill

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-autofill/internal/classify"
	"github.com/jonathan/resume-autofill/internal/dom"
)

// attrSelector matches one element tag by a single attribute test, with
// optional exclusion substrings on named attributes. It mirrors selector
// lists like `input[name*="city" i]:not([name*="address" i])` without
// depending on case-insensitive attribute-selector support.
type attrSelector struct {
	tag      string
	attr     string
	value    string // lower-cased needle
	exact    bool   // equals instead of contains
	excludes []attrExclude
}

// attrExclude is a substring that must not appear in the given attribute.
type attrExclude struct {
	attr  string
	value string
}

// match reports whether a single element satisfies the selector.
func (s attrSelector) match(sel *goquery.Selection) bool {
	if goquery.NodeName(sel) != s.tag {
		return false
	}

	got := strings.ToLower(sel.AttrOr(s.attr, defaultAttr(s.attr, sel)))
	if s.exact {
		if got != s.value {
			return false
		}
	} else if !strings.Contains(got, s.value) {
		return false
	}

	for _, ex := range s.excludes {
		if strings.Contains(strings.ToLower(sel.AttrOr(ex.attr, "")), ex.value) {
			return false
		}
	}
	return true
}

// defaultAttr supplies the implicit type of a bare input element so
// selectors on type behave like the browser's.
func defaultAttr(attr string, sel *goquery.Selection) string {
	if attr == "type" && goquery.NodeName(sel) == "input" {
		return "text"
	}
	return ""
}

// findAll returns the controls in the document matching the selector.
func (s attrSelector) findAll(doc *dom.Document) []*dom.Control {
	var controls []*dom.Control
	doc.Controls().Each(func(_ int, sel *goquery.Selection) {
		if !s.match(sel) {
			return
		}
		if ctrl, ok := dom.AsControl(sel); ok {
			controls = append(controls, ctrl)
		}
	})
	return controls
}

// Shorthand constructors keep the table below readable.

func contains(tag, attr, value string, excludes ...attrExclude) attrSelector {
	return attrSelector{tag: tag, attr: attr, value: value, excludes: excludes}
}

func equals(tag, attr, value string) attrSelector {
	return attrSelector{tag: tag, attr: attr, value: value, exact: true}
}

func not(attr string, values ...string) []attrExclude {
	excludes := make([]attrExclude, 0, len(values))
	for _, v := range values {
		excludes = append(excludes, attrExclude{attr: attr, value: v})
	}
	return excludes
}

// bulkTarget binds a category to its prioritized selector list for the bulk
// pass. Lower priority numbers fill first: company outranks fullName so a
// company value can never be confused with a later name fill.
type bulkTarget struct {
	category  classify.Category
	priority  int
	selectors []attrSelector
}

var locationExcludes = []string{"city", "state", "zip", "postal"}

// bulkTargets is the fixed priority table for the bulk pass. The selector
// lists mirror the exclusion patterns the shipped filler used; each list is
// attempted in order and the first selector with a writable match wins for
// its category.
var bulkTargets = []bulkTarget{
	{
		category: classify.CategoryCompany,
		priority: 1,
		selectors: []attrSelector{
			contains("input", "name", "company"),
			contains("input", "id", "company"),
			contains("input", "name", "employer"),
			contains("input", "id", "employer"),
			contains("input", "name", "organization"),
			contains("input", "id", "organization"),
			contains("input", "name", "business"),
			contains("input", "id", "business"),
		},
	},
	{
		category: classify.CategoryFullName,
		priority: 2,
		selectors: []attrSelector{
			equals("input", "name", "name"),
			equals("input", "name", "full_name"),
			equals("input", "name", "fullname"),
			equals("input", "name", "first_name"),
			equals("input", "id", "name"),
			equals("input", "id", "full_name"),
			equals("input", "id", "fullname"),
			equals("input", "placeholder", "full name"),
			contains("input", "name", "name",
				not("name", "company", "org", "business", "city", "state", "zip", "postal")...),
		},
	},
	{
		category: classify.CategoryEmail,
		priority: 3,
		selectors: []attrSelector{
			equals("input", "type", "email"),
			contains("input", "name", "email"),
			contains("input", "id", "email"),
			contains("input", "placeholder", "email"),
		},
	},
	{
		category: classify.CategoryPhone,
		priority: 3,
		selectors: []attrSelector{
			equals("input", "type", "tel"),
			contains("input", "name", "phone"),
			contains("input", "id", "phone"),
			contains("input", "placeholder", "phone"),
			contains("input", "name", "mobile"),
			contains("input", "id", "mobile"),
		},
	},
	{
		category: classify.CategoryAddress,
		priority: 3,
		selectors: []attrSelector{
			contains("input", "name", "address", not("name", locationExcludes...)...),
			contains("input", "id", "address", not("id", locationExcludes...)...),
			contains("input", "placeholder", "address", not("placeholder", locationExcludes...)...),
			contains("textarea", "name", "address"),
			contains("textarea", "id", "address"),
		},
	},
	{
		category: classify.CategoryCity,
		priority: 4,
		selectors: []attrSelector{
			contains("input", "name", "city", not("name", "address")...),
			contains("input", "id", "city", not("id", "address")...),
			contains("input", "placeholder", "city", not("placeholder", "address")...),
		},
	},
	{
		category: classify.CategoryState,
		priority: 4,
		selectors: []attrSelector{
			contains("input", "name", "state", not("name", "address")...),
			contains("input", "id", "state", not("id", "address")...),
			contains("input", "placeholder", "state", not("placeholder", "address")...),
			contains("select", "name", "state"),
			contains("select", "id", "state"),
		},
	},
	{
		category: classify.CategoryZipCode,
		priority: 4,
		selectors: []attrSelector{
			contains("input", "name", "zip", not("name", "address")...),
			contains("input", "id", "zip", not("id", "address")...),
			contains("input", "placeholder", "zip", not("placeholder", "address")...),
			contains("input", "name", "postal", not("name", "address")...),
			contains("input", "id", "postal", not("id", "address")...),
		},
	},
	{
		category: classify.CategoryUniversity,
		priority: 5,
		selectors: []attrSelector{
			contains("input", "name", "university"),
			contains("input", "id", "university"),
			contains("input", "name", "school"),
			contains("input", "id", "school"),
			contains("input", "name", "college"),
			contains("input", "id", "college"),
		},
	},
	{
		category: classify.CategoryDegree,
		priority: 5,
		selectors: []attrSelector{
			contains("input", "name", "degree"),
			contains("input", "id", "degree"),
			contains("select", "name", "degree"),
			contains("select", "id", "degree"),
		},
	},
	{
		category: classify.CategoryMajor,
		priority: 5,
		selectors: []attrSelector{
			contains("input", "name", "major"),
			contains("input", "id", "major"),
			contains("input", "name", "field"),
			contains("input", "id", "field"),
		},
	},
	{
		category: classify.CategoryGraduationDate,
		priority: 5,
		selectors: []attrSelector{
			contains("input", "name", "graduation"),
			contains("input", "id", "graduation"),
			contains("input", "name", "grad_date"),
			contains("input", "id", "grad_date"),
		},
	},
	{
		category: classify.CategoryGPA,
		priority: 5,
		selectors: []attrSelector{
			contains("input", "name", "gpa"),
			contains("input", "id", "gpa"),
		},
	},
	{
		category: classify.CategoryJobTitle,
		priority: 6,
		selectors: []attrSelector{
			contains("input", "name", "title"),
			contains("input", "id", "title"),
			contains("input", "name", "position"),
			contains("input", "id", "position"),
			contains("input", "name", "role"),
			contains("input", "id", "role"),
		},
	},
	{
		category: classify.CategoryStartDate,
		priority: 6,
		selectors: []attrSelector{
			contains("input", "name", "start_date"),
			contains("input", "id", "start_date"),
			contains("input", "name", "from"),
			contains("input", "id", "from"),
		},
	},
	{
		category: classify.CategoryEndDate,
		priority: 6,
		selectors: []attrSelector{
			contains("input", "name", "end_date"),
			contains("input", "id", "end_date"),
			contains("input", "name", "to"),
			contains("input", "id", "to"),
		},
	},
	{
		category: classify.CategoryResponsibilities,
		priority: 6,
		selectors: []attrSelector{
			contains("textarea", "name", "responsibilities"),
			contains("textarea", "id", "responsibilities"),
			contains("textarea", "name", "description"),
			contains("textarea", "id", "description"),
			contains("textarea", "name", "duties"),
			contains("textarea", "id", "duties"),
		},
	},
	{
		category: classify.CategorySkills,
		priority: 7,
		selectors: []attrSelector{
			contains("textarea", "name", "skills"),
			contains("textarea", "id", "skills"),
			contains("input", "name", "skills"),
			contains("input", "id", "skills"),
		},
	},
}

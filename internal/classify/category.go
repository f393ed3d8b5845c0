// Package classify implements the heuristic field-matching engine: it infers
// the semantic category of a form control from its attributes and surrounding
// text, resolves the résumé value for a category, and guards writes against
// cross-contamination (for example a company name landing in a personal-name
// field).
package classify

import "github.com/jonathan/resume-autofill/internal/types"

// Category is the semantic label assigned to a form field.
type Category string

const (
	CategoryNone Category = ""

	CategoryCompany  Category = "company"
	CategoryFullName Category = "fullName"
	CategoryEmail    Category = "email"
	CategoryPhone    Category = "phone"
	CategoryAddress  Category = "address"
	CategoryCity     Category = "city"
	CategoryState    Category = "state"
	CategoryZipCode  Category = "zipCode"

	CategoryUniversity     Category = "university"
	CategoryDegree         Category = "degree"
	CategoryMajor          Category = "major"
	CategoryGraduationDate Category = "graduationDate"
	CategoryGPA            Category = "gpa"

	CategoryJobTitle         Category = "jobTitle"
	CategoryStartDate        Category = "startDate"
	CategoryEndDate          Category = "endDate"
	CategoryResponsibilities Category = "responsibilities"

	CategorySkills Category = "skills"
)

// ResolveValue returns the profile value backing a category. Education
// categories read from the first education entry and experience categories
// from the first experience entry; a structurally matched category with no
// backing data resolves to the empty string, which callers treat as "nothing
// to write".
func ResolveValue(profile *types.Profile, category Category) string {
	if profile == nil {
		return ""
	}

	switch category {
	case CategoryFullName:
		return profile.FullName
	case CategoryEmail:
		return profile.Email
	case CategoryPhone:
		return profile.Phone
	case CategoryAddress:
		return profile.Address
	case CategoryCity:
		return profile.City
	case CategoryState:
		return profile.State
	case CategoryZipCode:
		return profile.ZipCode
	case CategorySkills:
		return profile.Skills
	}

	if edu := profile.FirstEducation(); edu != nil {
		switch category {
		case CategoryUniversity:
			return edu.University
		case CategoryDegree:
			return edu.Degree
		case CategoryMajor:
			return edu.Major
		case CategoryGraduationDate:
			return edu.GraduationDate
		case CategoryGPA:
			return edu.GPA
		}
	}

	if exp := profile.FirstExperience(); exp != nil {
		switch category {
		case CategoryCompany:
			return exp.Company
		case CategoryJobTitle:
			return exp.JobTitle
		case CategoryStartDate:
			return exp.StartDate
		case CategoryEndDate:
			return exp.EndDate
		case CategoryResponsibilities:
			return exp.Responsibilities
		}
	}

	return ""
}

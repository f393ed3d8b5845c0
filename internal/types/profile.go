// Package types provides type definitions for structured data used throughout the resume-autofill system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Profile represents the persisted résumé data used to fill application forms.
// All fields are optional; an empty string means "no value" and is never
// written into a form.
type Profile struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zipCode,omitempty"`

	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`

	Skills string `json:"skills,omitempty"`
}

// EducationEntry represents a single education record.
type EducationEntry struct {
	University     string `json:"university,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Major          string `json:"major,omitempty"`
	GraduationDate string `json:"graduationDate,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ExperienceEntry represents a single work experience record.
type ExperienceEntry struct {
	Company          string `json:"company,omitempty"`
	JobTitle         string `json:"jobTitle,omitempty"`
	StartDate        string `json:"startDate,omitempty"`
	EndDate          string `json:"endDate,omitempty"`
	Responsibilities string `json:"responsibilities,omitempty"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// IsEmpty reports whether the profile carries no usable data at all.
// An empty profile directs the user to complete their résumé first.
func (p *Profile) IsEmpty() bool {
	if p == nil {
		return true
	}
	if p.FullName != "" || p.Email != "" || p.Phone != "" || p.Address != "" ||
		p.City != "" || p.State != "" || p.ZipCode != "" || p.Skills != "" {
		return false
	}
	for _, edu := range p.Education {
		if edu != (EducationEntry{}) {
			return false
		}
	}
	for _, exp := range p.Experience {
		if exp != (ExperienceEntry{}) {
			return false
		}
	}
	return true
}

// FirstEducation returns the first education entry, or nil if none exists.
// Only the first entry participates in single-valued form categories.
func (p *Profile) FirstEducation() *EducationEntry {
	if p == nil || len(p.Education) == 0 {
		return nil
	}
	return &p.Education[0]
}

// FirstExperience returns the first experience entry, or nil if none exists.
func (p *Profile) FirstExperience() *ExperienceEntry {
	if p == nil || len(p.Experience) == 0 {
		return nil
	}
	return &p.Experience[0]
}

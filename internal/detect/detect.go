// Package detect decides whether a page looks like a job-application form
// worth filling. The signals are cheap: known portal hostnames in the URL,
// application vocabulary in the title and body, and the presence of the
// form fields every application page carries.
package detect

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-autofill/internal/dom"
)

// portalKeywords are URL fragments that mark known job portals and
// application vocabulary.
var portalKeywords = []string{
	"linkedin.com/jobs", "indeed.com", "glassdoor.com", "monster.com",
	"careerbuilder", "ziprecruiter", "dice.com", "lever.co", "greenhouse.io",
	"workday", "taleo", "brassring", "recruiter", "job application",
	"apply now", "submit application", "employment", "career",
}

// Report captures the individual detection signals alongside the combined
// verdict.
type Report struct {
	Likely bool `json:"likely"`

	PortalURL      bool `json:"portalUrl"`
	TitleKeywords  bool `json:"titleKeywords"`
	ApplyKeywords  bool `json:"applyKeywords"`
	NameField      bool `json:"nameField"`
	EmailField     bool `json:"emailField"`
	ResumeUpload   bool `json:"resumeUpload"`
	EducationText  bool `json:"educationText"`
	ExperienceText bool `json:"experienceText"`
}

// Page inspects the document together with its URL and title and reports
// the detection signals. A likely page needs one intent signal (portal URL,
// job-related title, or apply vocabulary next to name and email fields) and
// one content signal (a name field, a resume upload, or education or
// experience text).
func Page(doc *dom.Document, url, title string) Report {
	var r Report
	if doc == nil {
		return r
	}

	url = strings.ToLower(url)
	if title == "" {
		title = doc.Title()
	}
	title = strings.ToLower(title)
	body := doc.BodyText()

	for _, keyword := range portalKeywords {
		if strings.Contains(url, keyword) {
			r.PortalURL = true
			break
		}
	}

	r.TitleKeywords = strings.Contains(title, "job") ||
		strings.Contains(title, "career") ||
		strings.Contains(title, "application")
	r.ApplyKeywords = strings.Contains(body, "apply") ||
		strings.Contains(body, "submit application") ||
		strings.Contains(body, "job application")

	r.NameField = hasInput(doc, "name")
	r.EmailField = doc.Find(`input[type="email"]`).Length() > 0 || hasInput(doc, "email")
	r.ResumeUpload = hasUpload(doc, "resume") || hasUpload(doc, "cv")
	r.EducationText = strings.Contains(body, "education") &&
		(strings.Contains(body, "degree") || strings.Contains(body, "university"))
	r.ExperienceText = strings.Contains(body, "experience") ||
		strings.Contains(body, "employment") ||
		strings.Contains(body, "work history")

	intent := r.PortalURL || r.TitleKeywords ||
		(r.ApplyKeywords && r.NameField && r.EmailField)
	content := r.NameField || r.EducationText || r.ExperienceText || r.ResumeUpload
	r.Likely = intent && content

	return r
}

// hasInput reports whether any input carries the fragment in its name or id
// attribute, matched case-insensitively.
func hasInput(doc *dom.Document, fragment string) bool {
	found := false
	doc.Find("input").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if attrContains(sel, "name", fragment) || attrContains(sel, "id", fragment) {
			found = true
			return false
		}
		return true
	})
	return found
}

// hasUpload reports whether a file input mentions the fragment in its name.
func hasUpload(doc *dom.Document, fragment string) bool {
	found := false
	doc.Find(`input[type="file"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if attrContains(sel, "name", fragment) {
			found = true
			return false
		}
		return true
	})
	return found
}

func attrContains(sel *goquery.Selection, attr, fragment string) bool {
	value, _ := sel.Attr(attr)
	return strings.Contains(strings.ToLower(value), fragment)
}

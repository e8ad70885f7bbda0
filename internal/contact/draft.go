// Package contact implements the contact form: draft validation, the
// two-message relay through the email service, and the submission state
// machine with its in-flight guard.
package contact

import (
	"net/url"
	"strings"

	"github.com/hyperengineering/folio/internal/validation"
)

// Field length caps, in runes.
const (
	MaxNameLength    = 200
	MaxEmailLength   = 254
	MaxMessageLength = 5000
)

// ProjectTypes are the accepted values of Draft.ProjectType.
var ProjectTypes = []string{"new-app", "redesign", "modernization", "consultation", "other"}

// Budgets are the accepted values of Draft.Budget; empty means unspecified.
var Budgets = []string{"", "5k-10k", "10k-25k", "25k-50k", "50k+"}

// Option is a select-box choice rendered by the form.
type Option struct {
	Value string
	Label string
}

// ProjectTypeOptions labels ProjectTypes for display.
var ProjectTypeOptions = []Option{
	{"new-app", "New App Development"},
	{"redesign", "App Redesign"},
	{"modernization", "App Modernization"},
	{"consultation", "Consultation"},
	{"other", "Other"},
}

// BudgetOptions labels the non-empty Budgets for display.
var BudgetOptions = []Option{
	{"5k-10k", "$5,000 - $10,000"},
	{"10k-25k", "$10,000 - $25,000"},
	{"25k-50k", "$25,000 - $50,000"},
	{"50k+", "$50,000+"},
}

// NotSpecified replaces an empty budget in outgoing messages.
const NotSpecified = "Not specified"

// Draft is the transient form input. It is never persisted.
type Draft struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Budget      string `json:"budget,omitempty"`
	Message     string `json:"message"`
}

// DraftFromForm reads a draft from form-encoded values.
func DraftFromForm(v url.Values) Draft {
	return Draft{
		Name:        v.Get("name"),
		Email:       v.Get("email"),
		ProjectType: v.Get("projectType"),
		Budget:      v.Get("budget"),
		Message:     v.Get("message"),
	}
}

// Normalize trims surrounding whitespace from every field.
func (d Draft) Normalize() Draft {
	return Draft{
		Name:        strings.TrimSpace(d.Name),
		Email:       strings.TrimSpace(d.Email),
		ProjectType: strings.TrimSpace(d.ProjectType),
		Budget:      strings.TrimSpace(d.Budget),
		Message:     strings.TrimSpace(d.Message),
	}
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// BudgetOrDefault returns the budget, or NotSpecified when empty.
func (d Draft) BudgetOrDefault() string {
	if d.Budget == "" {
		return NotSpecified
	}
	return d.Budget
}

// Validate checks field presence and basic shape. It does not verify that
// the email address exists.
func (d Draft) Validate() []validation.ValidationError {
	var c validation.Collector

	c.Add(validation.ValidateRequired("name", d.Name))
	validation.ValidateText(&c, "name", d.Name, MaxNameLength)

	c.Add(validation.ValidateRequired("email", d.Email))
	c.Add(validation.ValidateMaxLength("email", d.Email, MaxEmailLength))
	c.Add(validation.ValidateEmail("email", d.Email))

	if r := validation.ValidateRequired("projectType", d.ProjectType); r != nil {
		c.Add(r)
	} else {
		c.Add(validation.ValidateEnum("projectType", d.ProjectType, ProjectTypes))
	}

	c.Add(validation.ValidateEnum("budget", d.Budget, Budgets))

	c.Add(validation.ValidateRequired("message", d.Message))
	validation.ValidateText(&c, "message", d.Message, MaxMessageLength)

	return c.Errors()
}

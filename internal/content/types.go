// Package content holds the typed, build-time content records rendered by the
// site: projects, services, testimonials, FAQs and the surrounding page copy.
// Records are loaded once and never mutated afterwards.
package content

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category classifies a project. The set is closed.
type Category string

const (
	CategoryECommerce    Category = "e-commerce"
	CategoryFintech      Category = "fintech"
	CategoryHealth       Category = "health"
	CategorySocial       Category = "social"
	CategoryProductivity Category = "productivity"
	CategoryUtility      Category = "utility"
	CategoryLocation     Category = "location"
	CategoryOther        Category = "other"
)

// Categories lists every valid project category in display order.
var Categories = []Category{
	CategoryECommerce,
	CategoryFintech,
	CategoryHealth,
	CategorySocial,
	CategoryProductivity,
	CategoryUtility,
	CategoryLocation,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label returns the display form, e.g. "e-commerce" -> "E-Commerce".
func (c Category) Label() string {
	// Casers carry state and are not safe to share across goroutines.
	return cases.Title(language.English).String(string(c))
}

// ServiceIcons lists the icon keys a service may reference.
var ServiceIcons = []string{
	"smartphone",
	"palette",
	"refresh-cw",
	"plug",
	"tool",
	"lightbulb",
}

// Project is one portfolio entry and the source of a case-study page.
type Project struct {
	ID            string   `yaml:"id"`
	Slug          string   `yaml:"slug"`
	Name          string   `yaml:"name"`
	Tagline       string   `yaml:"tagline"`
	Category      Category `yaml:"category"`
	Icon          string   `yaml:"icon"`
	Thumbnail     string   `yaml:"thumbnail"`
	HeroImage     string   `yaml:"heroImage"`
	Screenshots   []string `yaml:"screenshots"`
	TechStack     []string `yaml:"techStack"`
	Duration      string   `yaml:"duration"`
	Year          int      `yaml:"year"`
	TeamSize      string   `yaml:"teamSize"`
	Role          string   `yaml:"role"`
	ClientName    string   `yaml:"clientName,omitempty"`
	PlayStoreLink string   `yaml:"playStoreLink,omitempty"`
	Featured      bool     `yaml:"featured"`

	Challenge   Challenge           `yaml:"challenge"`
	Solution    Solution            `yaml:"solution"`
	Process     []Phase             `yaml:"process"`
	TechDetails []TechGroup         `yaml:"techDetails"`
	Results     []Result            `yaml:"results"`
	Testimonial *ProjectTestimonial `yaml:"testimonial,omitempty"`
}

// Challenge describes the problem a project addressed.
type Challenge struct {
	Overview string   `yaml:"overview"`
	Points   []string `yaml:"points"`
}

// Solution describes what was built.
type Solution struct {
	Overview string    `yaml:"overview"`
	Features []Feature `yaml:"features"`
}

// Feature is a single solution highlight.
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image,omitempty"`
}

// Phase is one step of a project's delivery timeline.
type Phase struct {
	Phase       string `yaml:"phase"`
	Description string `yaml:"description"`
	Duration    string `yaml:"duration"`
}

// TechGroup groups technologies under a heading.
type TechGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Result is a metric/value pair with an optional description.
type Result struct {
	Metric      string `yaml:"metric"`
	Value       string `yaml:"value"`
	Description string `yaml:"description,omitempty"`
}

// ProjectTestimonial is a client quote attached to a single project.
type ProjectTestimonial struct {
	Quote  string `yaml:"quote"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
	Image  string `yaml:"image,omitempty"`
}

// Service is an offering listed on the home page.
type Service struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Icon         string   `yaml:"icon"`
	Deliverables []string `yaml:"deliverables"`
}

// Testimonial is a client quote shown in the testimonials carousel.
type Testimonial struct {
	ID          string `yaml:"id"`
	Quote       string `yaml:"quote"`
	Author      string `yaml:"author"`
	Role        string `yaml:"role"`
	Company     string `yaml:"company"`
	Image       string `yaml:"image,omitempty"`
	Rating      int    `yaml:"rating"`
	ProjectName string `yaml:"projectName,omitempty"`
}

// FAQ is a question/answer pair.
type FAQ struct {
	ID       string `yaml:"id"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Profile is the site owner's identity and contact channels.
type Profile struct {
	Name     string          `yaml:"name"`
	Initials string          `yaml:"initials"`
	Title    string          `yaml:"title"`
	Email    string          `yaml:"email"`
	Location string          `yaml:"location"`
	Summary  string          `yaml:"summary"`
	Links    []ContactMethod `yaml:"links"`
}

// ContactMethod is a labelled channel; Href may be empty for plain text.
type ContactMethod struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href,omitempty"`
}

// External reports whether the link leaves the site.
func (m ContactMethod) External() bool {
	return strings.HasPrefix(m.Href, "http")
}

// Stat is an animated counter on the hero and about sections.
type Stat struct {
	Value  int    `yaml:"value"`
	Label  string `yaml:"label"`
	Suffix string `yaml:"suffix,omitempty"`
}

// Step is one stage of the general working process.
type Step struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

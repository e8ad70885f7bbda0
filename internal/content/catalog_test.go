package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/hyperengineering/folio/internal/validation"
)

func TestLoad_EmbeddedContent(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(c.Projects()); got != 4 {
		t.Errorf("len(Projects()) = %d, want 4", got)
	}
	if got := len(c.Services()); got != 6 {
		t.Errorf("len(Services()) = %d, want 6", got)
	}
	if got := len(c.Testimonials()); got != 6 {
		t.Errorf("len(Testimonials()) = %d, want 6", got)
	}
	if got := len(c.FAQs()); got != 8 {
		t.Errorf("len(FAQs()) = %d, want 8", got)
	}
	if got := len(c.Steps()); got != 6 {
		t.Errorf("len(Steps()) = %d, want 6", got)
	}
	if c.Profile().Email == "" {
		t.Error("Profile().Email is empty")
	}
}

func TestLoad_ProjectOrderAndFields(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	wantSlugs := []string{
		"home-workout-fitness-app",
		"smart-budget-manager",
		"utrackme-location-tracker",
		"vault-privacy-utility",
	}
	projects := c.Projects()
	for i, want := range wantSlugs {
		if projects[i].Slug != want {
			t.Errorf("Projects()[%d].Slug = %q, want %q", i, projects[i].Slug, want)
		}
	}

	vault := projects[3]
	if vault.PlayStoreLink != "" {
		t.Errorf("vault PlayStoreLink = %q, want empty", vault.PlayStoreLink)
	}
	if vault.Testimonial != nil {
		t.Error("vault Testimonial should be nil")
	}
	if len(vault.Screenshots) != 5 {
		t.Errorf("vault screenshots = %d, want 5", len(vault.Screenshots))
	}
	if vault.Category != CategoryUtility {
		t.Errorf("vault Category = %q, want %q", vault.Category, CategoryUtility)
	}
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	projects := c.Projects()
	projects[0].Slug = "mutated"

	again := c.Projects()
	if again[0].Slug == "mutated" {
		t.Error("mutating Projects() result changed the catalog")
	}
}

func TestCatalog_FeaturedProjects(t *testing.T) {
	c, err := Parse([]byte(`
profile: {name: Owner, email: owner@example.com}
projects:
  - {id: "1", name: A, slug: a, category: health, featured: true}
  - {id: "2", name: B, slug: b, category: other}
  - {id: "3", name: C, slug: c, category: fintech, featured: true}
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	featured := c.FeaturedProjects()
	if len(featured) != 2 || featured[0].Slug != "a" || featured[1].Slug != "c" {
		t.Errorf("FeaturedProjects() = %+v, want a and c", featured)
	}
}

func TestParse_NoProjects(t *testing.T) {
	_, err := Parse([]byte("profile: {name: Owner, email: owner@example.com}\nprojects: []\n"))
	if !errors.Is(err, ErrNoProjects) {
		t.Errorf("Parse() error = %v, want ErrNoProjects", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("projects: [unclosed"))
	if err == nil || !strings.Contains(err.Error(), "parsing content") {
		t.Errorf("Parse() error = %v, want parsing content error", err)
	}
}

func TestParse_InvariantViolations(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantField string
	}{
		{
			name: "duplicate slug",
			doc: `
projects:
  - {id: "1", name: A, slug: same, category: health}
  - {id: "2", name: B, slug: same, category: health}`,
			wantField: "projects[1].slug",
		},
		{
			name: "unknown category",
			doc: `
projects:
  - {id: "1", name: A, slug: a, category: gaming}`,
			wantField: "projects[0].category",
		},
		{
			name: "bad slug",
			doc: `
projects:
  - {id: "1", name: A, slug: "Not A Slug", category: health}`,
			wantField: "projects[0].slug",
		},
		{
			name: "rating out of range",
			doc: `
projects:
  - {id: "1", name: A, slug: a, category: health}
testimonials:
  - {id: "1", quote: Great, author: Ada, rating: 6}`,
			wantField: "testimonials[0].rating",
		},
		{
			name: "unknown service icon",
			doc: `
projects:
  - {id: "1", name: A, slug: a, category: health}
services:
  - {id: "1", title: Build, icon: rocket}`,
			wantField: "services[0].icon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "profile: {name: Owner, email: owner@example.com}\n" + tt.doc
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("Parse() error = nil, want validation error")
			}

			var verrs *validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Parse() error = %T, want *validation.Errors", err)
			}
			found := false
			for _, e := range verrs.List {
				if e.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("errors %+v missing field %q", verrs.List, tt.wantField)
			}
		})
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		category Category
		valid    bool
		label    string
	}{
		{CategoryECommerce, true, "E-Commerce"},
		{CategoryFintech, true, "Fintech"},
		{CategoryLocation, true, "Location"},
		{Category("gaming"), false, "Gaming"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			if got := tt.category.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
			if got := tt.category.Label(); got != tt.label {
				t.Errorf("Label() = %q, want %q", got, tt.label)
			}
		})
	}
}

func TestContactMethod_External(t *testing.T) {
	if !(ContactMethod{Href: "https://github.com/x"}).External() {
		t.Error("https link should be external")
	}
	if (ContactMethod{Href: "mailto:a@b.c"}).External() {
		t.Error("mailto link should not be external")
	}
	if (ContactMethod{}).External() {
		t.Error("empty href should not be external")
	}
}

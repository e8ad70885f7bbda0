package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hyperengineering/folio/internal/validation"
)

//go:embed data/site.yaml
var siteYAML []byte

// ErrNoProjects is returned when a document defines no projects.
var ErrNoProjects = errors.New("content defines no projects")

// document mirrors the on-disk YAML layout.
type document struct {
	Profile      Profile       `yaml:"profile"`
	HeroStats    []Stat        `yaml:"heroStats"`
	AboutStats   []Stat        `yaml:"aboutStats"`
	Steps        []Step        `yaml:"process"`
	Projects     []Project     `yaml:"projects"`
	Services     []Service     `yaml:"services"`
	Testimonials []Testimonial `yaml:"testimonials"`
	FAQs         []FAQ         `yaml:"faqs"`
}

// Catalog is the read-only set of content records. Accessors return copies
// of the top-level slices; the catalog itself is never modified after Parse.
type Catalog struct {
	doc document
}

// Load parses and validates the content embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(siteYAML)
}

// Parse decodes a content document and validates its invariants.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if len(doc.Projects) == 0 {
		return nil, ErrNoProjects
	}
	if err := validate(doc); err != nil {
		return nil, err
	}
	return &Catalog{doc: doc}, nil
}

// Profile returns the site owner's details.
func (c *Catalog) Profile() Profile {
	p := c.doc.Profile
	p.Links = append([]ContactMethod(nil), p.Links...)
	return p
}

// Projects returns every project in declared order.
func (c *Catalog) Projects() []Project {
	return append([]Project(nil), c.doc.Projects...)
}

// FeaturedProjects returns projects flagged for the home page showcase.
func (c *Catalog) FeaturedProjects() []Project {
	var out []Project
	for _, p := range c.doc.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Services returns every service in declared order.
func (c *Catalog) Services() []Service {
	return append([]Service(nil), c.doc.Services...)
}

// Testimonials returns every testimonial in declared order.
func (c *Catalog) Testimonials() []Testimonial {
	return append([]Testimonial(nil), c.doc.Testimonials...)
}

// FAQs returns every FAQ in declared order.
func (c *Catalog) FAQs() []FAQ {
	return append([]FAQ(nil), c.doc.FAQs...)
}

// HeroStats returns the counters shown in the hero section.
func (c *Catalog) HeroStats() []Stat {
	return append([]Stat(nil), c.doc.HeroStats...)
}

// AboutStats returns the counters shown in the about section.
func (c *Catalog) AboutStats() []Stat {
	return append([]Stat(nil), c.doc.AboutStats...)
}

// Steps returns the general working process.
func (c *Catalog) Steps() []Step {
	return append([]Step(nil), c.doc.Steps...)
}

// validate checks the authoring invariants and reports every violation at once.
func validate(doc document) error {
	var c validation.Collector

	c.Add(validation.ValidateRequired("profile.name", doc.Profile.Name))
	c.Add(validation.ValidateRequired("profile.email", doc.Profile.Email))
	c.Add(validation.ValidateEmail("profile.email", doc.Profile.Email))

	slugs := make(map[string]int, len(doc.Projects))
	for i, p := range doc.Projects {
		field := fmt.Sprintf("projects[%d]", i)
		c.Add(validation.ValidateRequired(field+".id", p.ID))
		c.Add(validation.ValidateRequired(field+".name", p.Name))
		c.Add(validation.ValidateSlug(field+".slug", p.Slug))
		if prev, dup := slugs[p.Slug]; dup {
			c.Add(&validation.ValidationError{
				Field:   field + ".slug",
				Message: fmt.Sprintf("duplicates projects[%d].slug %q", prev, p.Slug),
			})
		} else {
			slugs[p.Slug] = i
		}
		if !p.Category.Valid() {
			c.Add(&validation.ValidationError{
				Field:   field + ".category",
				Message: fmt.Sprintf("unknown category %q", p.Category),
			})
		}
	}

	for i, s := range doc.Services {
		field := fmt.Sprintf("services[%d]", i)
		c.Add(validation.ValidateRequired(field+".title", s.Title))
		c.Add(validation.ValidateEnum(field+".icon", s.Icon, ServiceIcons))
	}

	for i, t := range doc.Testimonials {
		field := fmt.Sprintf("testimonials[%d]", i)
		c.Add(validation.ValidateRequired(field+".quote", t.Quote))
		c.Add(validation.ValidateRequired(field+".author", t.Author))
		c.Add(validation.ValidateRange(field+".rating", t.Rating, 1, 5))
	}

	for i, f := range doc.FAQs {
		field := fmt.Sprintf("faqs[%d]", i)
		c.Add(validation.ValidateRequired(field+".question", f.Question))
		c.Add(validation.ValidateRequired(field+".answer", f.Answer))
	}

	if err := c.Err(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

// Package site renders the home page, case-study pages and the 404 page from
// the content catalog using embedded html/template files.
package site

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/hyperengineering/folio/internal/casestudy"
	"github.com/hyperengineering/folio/internal/contact"
	"github.com/hyperengineering/folio/internal/content"
	"github.com/hyperengineering/folio/internal/gallery"
	"github.com/hyperengineering/folio/internal/nav"
	"github.com/hyperengineering/folio/internal/tracker"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Banner copy for the contact form.
const (
	SuccessMessage = "Thank you! Your message has been sent. I'll get back to you within 24 hours."
	ErrorMessage   = "Oops! Something went wrong. Please try again or contact me directly via email."
)

const (
	pageHome      = "home.html"
	pageCaseStudy = "case_study.html"
	pageNotFound  = "not_found.html"
)

// Static returns the embedded asset tree rooted at the asset directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("site: static assets missing from binary")
	}
	return sub
}

// Banner is the transient status message shown above the contact form.
type Banner struct {
	Status       contact.Status
	DismissAfter time.Duration
}

// Visible reports whether the banner is shown.
func (b Banner) Visible() bool {
	return b.Status == contact.StatusSuccess || b.Status == contact.StatusError
}

// Message returns the banner text for the status.
func (b Banner) Message() string {
	switch b.Status {
	case contact.StatusSuccess:
		return SuccessMessage
	case contact.StatusError:
		return ErrorMessage
	default:
		return ""
	}
}

// DismissMillis is the dismissal delay handed to the client script.
func (b Banner) DismissMillis() int64 {
	return b.DismissAfter.Milliseconds()
}

// ContactState is what the contact section renders: the draft to refill the
// inputs with, the banner, and per-field errors.
type ContactState struct {
	Draft  contact.Draft
	Banner Banner
	Errors map[string]string
}

// ContactStateFor builds a ContactState from a submission outcome. A
// successful submission clears the draft; anything else keeps it.
func ContactStateFor(d contact.Draft, status contact.Status, errs map[string]string) ContactState {
	if status == contact.StatusSuccess {
		d = contact.Draft{}
	}
	return ContactState{
		Draft:  d,
		Banner: Banner{Status: status, DismissAfter: contact.DismissAfter},
		Errors: errs,
	}
}

// Site renders pages for one catalog. It is safe for concurrent use.
type Site struct {
	catalog     *content.Catalog
	resolver    *casestudy.Resolver
	links       []nav.Link
	autoPlay    time.Duration
	contactBase string
	pages       map[string]*template.Template
	now         func() time.Time
}

// Option configures a Site.
type Option func(*Site)

// WithAutoPlay sets the testimonial carousel interval.
func WithAutoPlay(d time.Duration) Option {
	return func(s *Site) {
		s.autoPlay = d
	}
}

// WithContactEndpoint points the contact form at the server at base, e.g.
// "https://api.example.com". Without it the form posts to the serving host.
func WithContactEndpoint(base string) Option {
	return func(s *Site) {
		s.contactBase = strings.TrimRight(base, "/")
	}
}

// WithClock overrides the clock used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(s *Site) {
		s.now = now
	}
}

// New parses the embedded templates for catalog.
func New(catalog *content.Catalog, opts ...Option) (*Site, error) {
	s := &Site{
		catalog:  catalog,
		resolver: casestudy.NewResolver(catalog.Projects()),
		links:    nav.DefaultLinks,
		autoPlay: gallery.DefaultAutoPlay,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	pages, err := parsePages(newMarkdown())
	if err != nil {
		return nil, err
	}
	s.pages = pages
	return s, nil
}

// ContactAction is the form-encoded fallback target.
func (s *Site) ContactAction() string {
	return s.contactBase + "/contact#contact"
}

// ContactEndpoint is the JSON endpoint used by the page script.
func (s *Site) ContactEndpoint() string {
	return s.contactBase + "/api/v1/contact"
}

// Resolver returns the case-study resolver for the catalog.
func (s *Site) Resolver() *casestudy.Resolver {
	return s.resolver
}

func parsePages(md goldmark.Markdown) (map[string]*template.Template, error) {
	funcs := template.FuncMap{
		"markdown": markdownFunc(md),
		"initial":  initial,
		"stars":    stars,
		"add":      func(a, b int) int { return a + b },
	}

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	pages := make(map[string]*template.Template, 3)
	for _, name := range []string{pageHome, pageCaseStudy, pageNotFound} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout: %w", err)
		}
		t, err := clone.ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

type layoutView struct {
	Title             string
	Description       string
	Profile           content.Profile
	Nav               []nav.Item
	OnHome            bool
	Year              int
	ScrolledThreshold float64
	ReferenceLine     float64
}

type homeView struct {
	layoutView
	HeroStats    []content.Stat
	AboutStats   []content.Stat
	Services     []content.Service
	Projects     []content.Project
	Steps        []content.Step
	Testimonials []content.Testimonial
	FAQs         []content.FAQ
	AutoPlayMS   int64
	Contact      ContactState
	ProjectTypes []contact.Option
	Budgets      []contact.Option

	ContactAction   string
	ContactEndpoint string
	DismissMS       int64
}

type caseStudyView struct {
	layoutView
	Project content.Project
	Next    content.Project
}

func (s *Site) layout(title, description string, onHome bool) layoutView {
	bar := nav.NewBar(s.links)
	return layoutView{
		Title:       title,
		Description: description,
		Profile:     s.catalog.Profile(),
		Nav:         bar.Items(onHome),
		OnHome:      onHome,
		Year:        s.now().Year(),

		ScrolledThreshold: tracker.DefaultScrolledThreshold,
		ReferenceLine:     tracker.DefaultReferenceLine,
	}
}

// RenderHome writes the home page with the given contact form state.
func (s *Site) RenderHome(w io.Writer, cs ContactState) error {
	p := s.catalog.Profile()
	v := homeView{
		layoutView:   s.layout(p.Name+" - "+p.Title, p.Summary, true),
		HeroStats:    s.catalog.HeroStats(),
		AboutStats:   s.catalog.AboutStats(),
		Services:     s.catalog.Services(),
		Projects:     s.catalog.FeaturedProjects(),
		Steps:        s.catalog.Steps(),
		Testimonials: s.catalog.Testimonials(),
		FAQs:         s.catalog.FAQs(),
		AutoPlayMS:   s.autoPlay.Milliseconds(),
		Contact:      cs,
		ProjectTypes: contact.ProjectTypeOptions,
		Budgets:      contact.BudgetOptions,

		ContactAction:   s.ContactAction(),
		ContactEndpoint: s.ContactEndpoint(),
		DismissMS:       contact.DismissAfter.Milliseconds(),
	}
	return s.execute(w, pageHome, v)
}

// RenderCaseStudy writes the case study for slug. It returns an error
// wrapping casestudy.ErrNotFound, without writing, when slug is unknown.
func (s *Site) RenderCaseStudy(w io.Writer, slug string) error {
	project, err := s.resolver.Resolve(slug)
	if err != nil {
		return fmt.Errorf("case study %q: %w", slug, err)
	}
	next, err := s.resolver.NextAfter(slug)
	if err != nil {
		return fmt.Errorf("next project after %q: %w", slug, err)
	}

	v := caseStudyView{
		layoutView: s.layout(project.Name+" - Case Study | "+s.catalog.Profile().Name, project.Tagline, false),
		Project:    project,
		Next:       next,
	}
	return s.execute(w, pageCaseStudy, v)
}

// RenderNotFound writes the full 404 page.
func (s *Site) RenderNotFound(w io.Writer) error {
	return s.execute(w, pageNotFound, s.layout("Page Not Found", "", false))
}

// execute renders into a buffer first so a template failure never leaves a
// half-written page.
func (s *Site) execute(w io.Writer, page string, data any) error {
	t, ok := s.pages[page]
	if !ok {
		return errors.New("site: unknown page " + page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("rendering %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func initial(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}

func stars(rating int) []struct{} {
	if rating < 0 {
		rating = 0
	}
	return make([]struct{}, rating)
}

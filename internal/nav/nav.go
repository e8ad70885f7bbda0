// Package nav models the site header: section links, the active-section
// highlight and its indicator.
package nav

import "github.com/hyperengineering/folio/internal/tracker"

// Link binds a label to a page section anchor.
type Link struct {
	Label   string
	Section string
}

// DefaultLinks are the header links in display order.
var DefaultLinks = []Link{
	{Label: "About", Section: "about"},
	{Label: "Services", Section: "services"},
	{Label: "Projects", Section: "projects"},
	{Label: "Testimonials", Section: "testimonials"},
	{Label: "Contact", Section: "contact"},
}

// Item is the render model for one header link.
type Item struct {
	Label   string
	Section string
	Href    string
	Active  bool
}

// Bar is the header state. It owns its tracker; callers feed it geometry.
type Bar struct {
	links     []Link
	tracker   *tracker.Tracker
	indicator tracker.Indicator
	scrolled  bool
}

// NewBar creates a Bar tracking the sections its links point at.
func NewBar(links []Link, opts ...tracker.Option) *Bar {
	sections := make([]string, len(links))
	for i, l := range links {
		sections[i] = l.Section
	}
	return &Bar{
		links:   append([]Link(nil), links...),
		tracker: tracker.New(sections, opts...),
	}
}

// Viewport is a snapshot of the geometry the header depends on.
type Viewport struct {
	ScrollY   float64
	Sections  tracker.Geometry
	Links     tracker.Geometry
	Container tracker.Rect
}

// Sync recomputes the scrolled flag and active section, and repositions the
// indicator when the active section changed. It returns the active section.
func (b *Bar) Sync(v Viewport) string {
	b.scrolled = tracker.Scrolled(v.ScrollY)

	prev := b.tracker.Active()
	active := b.tracker.Update(v.Sections)
	if active != "" && (active != prev || !b.indicator.Visible()) && v.Links != nil {
		if link, ok := v.Links.Bounds(active); ok {
			b.indicator = tracker.IndicatorFor(v.Container, link)
		}
	}
	return active
}

// Active returns the highlighted section, or "" when none.
func (b *Bar) Active() string {
	return b.tracker.Active()
}

// Indicator returns the current highlight placement.
func (b *Bar) Indicator() tracker.Indicator {
	return b.indicator
}

// Scrolled reports whether the header should render in its scrolled style.
func (b *Bar) Scrolled() bool {
	return b.scrolled
}

// Href returns the navigation target for section. On the home page this is
// an in-page anchor; elsewhere it points back at the home page.
func Href(section string, onHome bool) string {
	if onHome {
		return "#" + section
	}
	return "/#" + section
}

// Items returns the render model for the header links.
func (b *Bar) Items(onHome bool) []Item {
	active := b.tracker.Active()
	items := make([]Item, len(b.links))
	for i, l := range b.links {
		items[i] = Item{
			Label:   l.Label,
			Section: l.Section,
			Href:    Href(l.Section, onHome),
			Active:  l.Section == active,
		}
	}
	return items
}

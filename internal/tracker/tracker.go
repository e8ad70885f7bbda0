// Package tracker decides which named page section is "active" for a given
// viewport geometry, and where the navigation highlight should sit.
package tracker

// DefaultReferenceLine is the viewport-relative offset, in pixels, that a
// section must straddle to become active.
const DefaultReferenceLine = 100

// DefaultScrolledThreshold is the scroll offset past which the header is
// considered scrolled.
const DefaultScrolledThreshold = 50

// Rect is a bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Straddles reports whether the horizontal line y crosses r, edges included.
func (r Rect) Straddles(y float64) bool {
	return r.Top <= y && r.Bottom >= y
}

// Geometry reports the current bounds of a named section anchor.
// ok is false when the anchor is not present.
type Geometry interface {
	Bounds(name string) (r Rect, ok bool)
}

// GeometryFunc adapts a function to Geometry.
type GeometryFunc func(name string) (Rect, bool)

// Bounds calls f(name).
func (f GeometryFunc) Bounds(name string) (Rect, bool) {
	return f(name)
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithReferenceLine overrides DefaultReferenceLine.
func WithReferenceLine(y float64) Option {
	return func(t *Tracker) {
		t.line = y
	}
}

// Tracker holds the active section. It is owned by a single caller and is
// not safe for concurrent use.
type Tracker struct {
	sections []string
	line     float64
	active   string
	onChange func(string)
}

// New creates a Tracker over sections, evaluated in the given order.
func New(sections []string, opts ...Option) *Tracker {
	t := &Tracker{
		sections: append([]string(nil), sections...),
		line:     DefaultReferenceLine,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnChange registers the single subscriber notified when the active section
// changes. A later call replaces the earlier subscriber.
func (t *Tracker) OnChange(fn func(active string)) {
	t.onChange = fn
}

// Update re-evaluates the active section. The first section in declared
// order whose bounds straddle the reference line wins; missing anchors are
// skipped. When nothing straddles the line the previous value is kept.
func (t *Tracker) Update(g Geometry) string {
	for _, name := range t.sections {
		r, ok := g.Bounds(name)
		if !ok || !r.Straddles(t.line) {
			continue
		}
		t.set(name)
		break
	}
	return t.active
}

// Active returns the current active section, or "" before the first match.
func (t *Tracker) Active() string {
	return t.active
}

// Sections returns the tracked section names in order.
func (t *Tracker) Sections() []string {
	return append([]string(nil), t.sections...)
}

func (t *Tracker) set(name string) {
	if name == t.active {
		return
	}
	t.active = name
	if t.onChange != nil {
		t.onChange(name)
	}
}

// Scrolled reports whether the page has scrolled past the header threshold.
func Scrolled(offset float64) bool {
	return offset > DefaultScrolledThreshold
}

// Indicator is the position of the active-link highlight relative to the
// navigation container.
type Indicator struct {
	Left  float64
	Width float64
}

// Visible reports whether the indicator has a drawable width.
func (i Indicator) Visible() bool {
	return i.Width > 0
}

// IndicatorFor places the highlight under link within container.
func IndicatorFor(container, link Rect) Indicator {
	return Indicator{
		Left:  link.Left - container.Left,
		Width: link.Width(),
	}
}

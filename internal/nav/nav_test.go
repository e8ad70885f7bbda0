package nav

import (
	"testing"

	"github.com/hyperengineering/folio/internal/tracker"
)

func sectionsAt(rects map[string]tracker.Rect) tracker.Geometry {
	return tracker.GeometryFunc(func(name string) (tracker.Rect, bool) {
		r, ok := rects[name]
		return r, ok
	})
}

func linkGeometry() tracker.Geometry {
	return sectionsAt(map[string]tracker.Rect{
		"about":        {Left: 500, Right: 560},
		"services":     {Left: 590, Right: 670},
		"projects":     {Left: 700, Right: 770},
		"testimonials": {Left: 800, Right: 910},
		"contact":      {Left: 940, Right: 1005},
	})
}

func TestSync_HighlightsActiveLink(t *testing.T) {
	b := NewBar(DefaultLinks)

	active := b.Sync(Viewport{
		ScrollY: 1200,
		Sections: sectionsAt(map[string]tracker.Rect{
			"about":    {Top: -800, Bottom: -10},
			"services": {Top: -10, Bottom: 800},
		}),
		Links:     linkGeometry(),
		Container: tracker.Rect{Left: 480, Right: 1020},
	})

	if active != "services" {
		t.Fatalf("Sync() = %q, want services", active)
	}
	if got := b.Indicator(); got.Left != 110 || got.Width != 80 {
		t.Errorf("Indicator() = %+v, want {Left:110 Width:80}", got)
	}
	if !b.Scrolled() {
		t.Error("Scrolled() = false, want true")
	}

	items := b.Items(true)
	for _, it := range items {
		if it.Active != (it.Section == "services") {
			t.Errorf("item %q Active = %v", it.Section, it.Active)
		}
	}
}

func TestSync_RetainsIndicatorWhenNothingStraddles(t *testing.T) {
	b := NewBar(DefaultLinks)
	container := tracker.Rect{Left: 480, Right: 1020}

	b.Sync(Viewport{
		ScrollY:   1000,
		Sections:  sectionsAt(map[string]tracker.Rect{"about": {Top: 0, Bottom: 700}}),
		Links:     linkGeometry(),
		Container: container,
	})
	before := b.Indicator()

	active := b.Sync(Viewport{
		ScrollY:   0,
		Sections:  sectionsAt(map[string]tracker.Rect{"about": {Top: 600, Bottom: 1400}}),
		Links:     linkGeometry(),
		Container: container,
	})

	if active != "about" {
		t.Errorf("Sync() = %q, want about retained", active)
	}
	if b.Indicator() != before {
		t.Errorf("Indicator() = %+v, want unchanged %+v", b.Indicator(), before)
	}
	if b.Scrolled() {
		t.Error("Scrolled() = true at top of page")
	}
}

func TestItems_InitialStateHasNoActiveLink(t *testing.T) {
	b := NewBar(DefaultLinks)

	items := b.Items(false)
	if len(items) != len(DefaultLinks) {
		t.Fatalf("len(Items()) = %d, want %d", len(items), len(DefaultLinks))
	}
	for _, it := range items {
		if it.Active {
			t.Errorf("item %q active before any scroll", it.Section)
		}
	}
	if items[0].Href != "/#about" {
		t.Errorf("Href off home = %q, want /#about", items[0].Href)
	}
	if b.Indicator().Visible() {
		t.Error("indicator visible before any scroll")
	}
}

func TestHref(t *testing.T) {
	if got := Href("contact", true); got != "#contact" {
		t.Errorf("Href(home) = %q, want #contact", got)
	}
	if got := Href("contact", false); got != "/#contact" {
		t.Errorf("Href(elsewhere) = %q, want /#contact", got)
	}
}

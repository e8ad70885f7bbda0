// Package gallery implements the wrap-around index state behind the
// screenshot lightbox and the testimonial carousel.
package gallery

import (
	"errors"
	"time"
)

// ErrOutOfRange is returned when opening an index outside the item list.
var ErrOutOfRange = errors.New("gallery index out of range")

// DefaultAutoPlay is how long the carousel shows each testimonial.
const DefaultAutoPlay = 5 * time.Second

// wrap maps i into [0, n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Lightbox is a closed-or-open index over a fixed number of images.
type Lightbox struct {
	count int
	index int
	open  bool
}

// NewLightbox creates a closed lightbox over count images.
func NewLightbox(count int) *Lightbox {
	return &Lightbox{count: count}
}

// Open shows image i.
func (l *Lightbox) Open(i int) error {
	if i < 0 || i >= l.count {
		return ErrOutOfRange
	}
	l.index = i
	l.open = true
	return nil
}

// Next advances to (i+1) mod n. It is a no-op while closed.
func (l *Lightbox) Next() {
	if l.open {
		l.index = wrap(l.index+1, l.count)
	}
}

// Prev steps back to (i-1+n) mod n. It is a no-op while closed.
func (l *Lightbox) Prev() {
	if l.open {
		l.index = wrap(l.index-1, l.count)
	}
}

// Close clears the selection.
func (l *Lightbox) Close() {
	l.open = false
	l.index = 0
}

// Current returns the shown index and whether the lightbox is open.
func (l *Lightbox) Current() (int, bool) {
	return l.index, l.open
}

// Carousel is an always-visible rotating index with a slide direction.
type Carousel struct {
	count     int
	index     int
	direction int
	interval  time.Duration
}

// NewCarousel creates a carousel over count items starting at 0.
// A non-positive interval selects DefaultAutoPlay.
func NewCarousel(count int, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultAutoPlay
	}
	return &Carousel{count: count, interval: interval}
}

// Advance moves by direction (+1 forward, -1 back) with wrap-around and
// records the direction for the slide animation.
func (c *Carousel) Advance(direction int) int {
	if c.count == 0 {
		return 0
	}
	c.direction = direction
	c.index = wrap(c.index+direction, c.count)
	return c.index
}

// Index returns the current item.
func (c *Carousel) Index() int {
	return c.index
}

// Direction returns the last paging direction, or 0 before any paging.
func (c *Carousel) Direction() int {
	return c.direction
}

// Interval returns the auto-play period.
func (c *Carousel) Interval() time.Duration {
	return c.interval
}

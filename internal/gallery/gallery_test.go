package gallery

import (
	"errors"
	"testing"
	"time"
)

func TestLightbox_NextWrapsToZero(t *testing.T) {
	l := NewLightbox(5)
	if err := l.Open(4); err != nil {
		t.Fatalf("Open(4) error = %v", err)
	}

	l.Next()
	if i, open := l.Current(); i != 0 || !open {
		t.Errorf("Current() = (%d, %v), want (0, true)", i, open)
	}
}

func TestLightbox_PrevWrapsToLast(t *testing.T) {
	l := NewLightbox(6)
	if err := l.Open(0); err != nil {
		t.Fatalf("Open(0) error = %v", err)
	}

	l.Prev()
	if i, _ := l.Current(); i != 5 {
		t.Errorf("Current() = %d, want 5", i)
	}
}

func TestLightbox_Sequence(t *testing.T) {
	l := NewLightbox(3)
	_ = l.Open(1)

	steps := []struct {
		op   func()
		want int
	}{
		{l.Next, 2},
		{l.Next, 0},
		{l.Prev, 2},
		{l.Prev, 1},
	}
	for i, s := range steps {
		s.op()
		if got, _ := l.Current(); got != s.want {
			t.Errorf("step %d: Current() = %d, want %d", i, got, s.want)
		}
	}
}

func TestLightbox_Close(t *testing.T) {
	l := NewLightbox(3)
	_ = l.Open(2)
	l.Close()

	if _, open := l.Current(); open {
		t.Error("Current() open after Close()")
	}

	l.Next()
	if i, open := l.Current(); i != 0 || open {
		t.Errorf("Next() while closed changed state to (%d, %v)", i, open)
	}
}

func TestLightbox_OpenOutOfRange(t *testing.T) {
	l := NewLightbox(3)
	for _, i := range []int{-1, 3, 10} {
		if err := l.Open(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Open(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}
	if err := NewLightbox(0).Open(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Open on empty lightbox error = %v, want ErrOutOfRange", err)
	}
}

func TestCarousel_Advance(t *testing.T) {
	c := NewCarousel(6, 0)
	if c.Interval() != DefaultAutoPlay {
		t.Errorf("Interval() = %v, want %v", c.Interval(), DefaultAutoPlay)
	}

	if got := c.Advance(-1); got != 5 {
		t.Errorf("Advance(-1) from 0 = %d, want 5", got)
	}
	if c.Direction() != -1 {
		t.Errorf("Direction() = %d, want -1", c.Direction())
	}
	if got := c.Advance(1); got != 0 {
		t.Errorf("Advance(1) from 5 = %d, want 0", got)
	}
}

func TestCarousel_EmptyAndCustomInterval(t *testing.T) {
	c := NewCarousel(0, 2*time.Second)
	if got := c.Advance(1); got != 0 {
		t.Errorf("Advance on empty carousel = %d, want 0", got)
	}
	if c.Interval() != 2*time.Second {
		t.Errorf("Interval() = %v, want 2s", c.Interval())
	}
}

package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hyperengineering/folio/internal/validation"
)

// DismissAfter is how long the success or error banner stays up.
const DismissAfter = 5 * time.Second

var (
	// ErrInFlight is returned when Submit is called while a submission is running.
	ErrInFlight = errors.New("submission already in progress")
	// ErrUnknownField is returned by Set for a field the draft does not have.
	ErrUnknownField = errors.New("unknown form field")
)

// Status is the user-visible state of the form.
type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Timer is the handle returned by an AfterFunc.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. It matches time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithAfterFunc replaces the timer used for banner dismissal.
func WithAfterFunc(af AfterFunc) FormOption {
	return func(f *Form) {
		f.afterFunc = af
	}
}

// WithDismissAfter overrides DismissAfter.
func WithDismissAfter(d time.Duration) FormOption {
	return func(f *Form) {
		f.dismissAfter = d
	}
}

// Form holds a draft and drives it through
// idle -> submitting -> success|error -> idle.
type Form struct {
	mu           sync.Mutex
	submitter    Submitter
	draft        Draft
	status       Status
	dismissAfter time.Duration
	afterFunc    AfterFunc
	timer        Timer
	generation   uint64
	onChange     func(Status)
}

// NewForm creates an idle form with an empty draft.
func NewForm(s Submitter, opts ...FormOption) *Form {
	f := &Form{
		submitter:    s,
		dismissAfter: DismissAfter,
		afterFunc:    realAfterFunc,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// OnChange registers the subscriber notified on every status transition.
// It is called without the form's lock held.
func (f *Form) OnChange(fn func(Status)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onChange = fn
}

// Set updates one draft field by its form name.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "projectType":
		f.draft.ProjectType = value
	case "budget":
		f.draft.Budget = value
	case "message":
		f.draft.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Status returns the current status.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit validates the draft and relays it. While a submission is running
// further calls return ErrInFlight without side effects. On success the
// draft is cleared; on failure it is kept for a manual retry. Either outcome
// returns to idle after the dismissal delay.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrInFlight
	}
	draft := f.draft.Normalize()
	if errs := draft.Validate(); len(errs) > 0 {
		f.mu.Unlock()
		return &validation.Errors{List: errs}
	}
	f.cancelDismissLocked()
	notify := f.transitionLocked(StatusSubmitting)
	f.mu.Unlock()
	notify()

	err := f.submitter.Submit(ctx, draft)

	f.mu.Lock()
	next := StatusSuccess
	if err != nil {
		next = StatusError
	} else {
		f.draft = Draft{}
	}
	notify = f.transitionLocked(next)
	f.scheduleDismissLocked()
	f.mu.Unlock()
	notify()

	return err
}

// transitionLocked sets the status and returns the deferred notification.
func (f *Form) transitionLocked(s Status) func() {
	f.status = s
	fn := f.onChange
	return func() {
		if fn != nil {
			fn(s)
		}
	}
}

func (f *Form) cancelDismissLocked() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) scheduleDismissLocked() {
	f.generation++
	gen := f.generation
	f.timer = f.afterFunc(f.dismissAfter, func() {
		f.mu.Lock()
		if gen != f.generation || (f.status != StatusSuccess && f.status != StatusError) {
			f.mu.Unlock()
			return
		}
		f.timer = nil
		notify := f.transitionLocked(StatusIdle)
		f.mu.Unlock()
		notify()
	})
}

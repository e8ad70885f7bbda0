// Package casestudy resolves project slugs to case-study records and picks the
// project suggested after each one.
package casestudy

import (
	"errors"

	"github.com/hyperengineering/folio/internal/content"
)

var (
	// ErrNotFound is returned when no project has the requested slug.
	ErrNotFound = errors.New("case study not found")
	// ErrEmpty is returned by NextAfter when there are no projects at all.
	ErrEmpty = errors.New("no case studies")
)

// Resolver looks up projects by slug over a fixed, ordered list.
type Resolver struct {
	projects []content.Project
}

// NewResolver creates a Resolver over a private copy of projects.
func NewResolver(projects []content.Project) *Resolver {
	return &Resolver{projects: append([]content.Project(nil), projects...)}
}

// Resolve returns the project whose slug matches exactly.
func (r *Resolver) Resolve(slug string) (content.Project, error) {
	if i := r.indexOf(slug); i >= 0 {
		return r.projects[i], nil
	}
	return content.Project{}, ErrNotFound
}

// NextAfter returns the project following slug, wrapping from the last back
// to the first. An unknown slug has index -1 and so yields the first project.
func (r *Resolver) NextAfter(slug string) (content.Project, error) {
	if len(r.projects) == 0 {
		return content.Project{}, ErrEmpty
	}
	next := (r.indexOf(slug) + 1) % len(r.projects)
	return r.projects[next], nil
}

// Slugs returns every slug in declared order, for route enumeration.
func (r *Resolver) Slugs() []string {
	slugs := make([]string, len(r.projects))
	for i, p := range r.projects {
		slugs[i] = p.Slug
	}
	return slugs
}

func (r *Resolver) indexOf(slug string) int {
	for i, p := range r.projects {
		if p.Slug == slug {
			return i
		}
	}
	return -1
}

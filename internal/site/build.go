package site

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// CaseStudyPath returns the route of the case study for slug.
func CaseStudyPath(slug string) string {
	return "/case-study/" + slug
}

// Routes enumerates every page route: the home page followed by one case
// study per project in catalog order.
func (s *Site) Routes() []string {
	slugs := s.resolver.Slugs()
	routes := make([]string, 0, len(slugs)+1)
	routes = append(routes, "/")
	for _, slug := range slugs {
		routes = append(routes, CaseStudyPath(slug))
	}
	return routes
}

// Build pre-renders the site into dir: an index.html per route, 404.html and
// the static assets under static/. The directory is emptied first.
func (s *Site) Build(dir string) ([]string, error) {
	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("cleaning output directory %q: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %q: %w", dir, err)
	}

	var written []string
	write := func(rel string, data []byte) error {
		full := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			return fmt.Errorf("creating %q: %w", filepath.Dir(full), err)
		}
		if err := os.WriteFile(full, data, 0o644); err != nil {
			return fmt.Errorf("writing %q: %w", full, err)
		}
		written = append(written, rel)
		return nil
	}

	for _, route := range s.Routes() {
		var buf bytes.Buffer
		if route == "/" {
			if err := s.RenderHome(&buf, ContactState{}); err != nil {
				return written, err
			}
		} else {
			if err := s.RenderCaseStudy(&buf, strings.TrimPrefix(route, "/case-study/")); err != nil {
				return written, err
			}
		}
		if err := write(path.Join(strings.TrimPrefix(route, "/"), "index.html"), buf.Bytes()); err != nil {
			return written, err
		}
	}

	var notFound bytes.Buffer
	if err := s.RenderNotFound(&notFound); err != nil {
		return written, err
	}
	if err := write("404.html", notFound.Bytes()); err != nil {
		return written, err
	}

	assets := Static()
	err := fs.WalkDir(assets, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(assets, p)
		if err != nil {
			return fmt.Errorf("reading asset %q: %w", p, err)
		}
		return write(path.Join("static", p), data)
	})
	if err != nil {
		return written, err
	}

	slog.Info("site built", "component", "site", "dir", dir, "files", len(written))
	return written, nil
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"

	"github.com/hyperengineering/folio/internal/casestudy"
	"github.com/hyperengineering/folio/internal/contact"
	"github.com/hyperengineering/folio/internal/mail"
	"github.com/hyperengineering/folio/internal/site"
	"github.com/hyperengineering/folio/internal/validation"
)

// errRelayFailed marks a submission the email service did not accept.
var errRelayFailed = errors.New("contact relay failed")

// relayTimeout bounds both sends of one submission once detached from the
// request.
const relayTimeout = 30 * time.Second

// HealthResponse is the body of GET /api/v1/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Projects int    `json:"projects"`
}

// ContactResponse is the body of an accepted contact submission.
type ContactResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// Handler implements the page and API handlers
type Handler struct {
	site    *site.Site
	relay   contact.Submitter
	guard   *contact.Guard
	version string
}

// NewHandler creates a new Handler rendering s and relaying submissions through relay
func NewHandler(s *site.Site, relay contact.Submitter, version string) *Handler {
	return &Handler{
		site:    s,
		relay:   relay,
		guard:   contact.NewGuard(),
		version: version,
	}
}

// Health returns the health status
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:   "healthy",
		Version:  h.version,
		Projects: len(h.site.Resolver().Slugs()),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, site.ContactState{})
}

// CaseStudy handles GET /case-study/{slug}
func (h *Handler) CaseStudy(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.site.RenderCaseStudy(w, slug)
	switch {
	case err == nil:
	case errors.Is(err, casestudy.ErrNotFound):
		h.NotFound(w, r)
	default:
		slog.Error("render case study failed", "error", err, "slug", slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound renders the 404 page, or a problem response under /api/.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		WriteProblem(w, r, http.StatusNotFound, "Resource not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.site.RenderNotFound(w); err != nil {
		slog.Error("render not found page failed", "error", err)
	}
}

// Static serves the embedded stylesheet and script under /static/.
func (h *Handler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServer(http.FS(site.Static())))
}

// Contact handles POST /api/v1/contact
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var d contact.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteProblem(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
			return
		}
		WriteProblem(w, r, http.StatusBadRequest, fmt.Sprintf("Invalid JSON: %s", err.Error()))
		return
	}

	id, err := h.submit(r.Context(), d)
	if err != nil {
		MapSubmitError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(ContactResponse{Status: "sent", ID: id})
}

// ContactForm handles POST /contact, the form-encoded fallback used without
// scripting. It re-renders the home page with the outcome banner.
func (h *Handler) ContactForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, "Invalid form body")
		return
	}
	d := contact.DraftFromForm(r.PostForm)

	_, err := h.submit(r.Context(), d)
	if err == nil {
		h.renderHome(w, r, http.StatusOK, site.ContactStateFor(d, contact.StatusSuccess, nil))
		return
	}

	var verrs *validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs.List))
		for _, e := range verrs.List {
			if _, seen := fields[e.Field]; !seen {
				fields[e.Field] = e.Message
			}
		}
		h.renderHome(w, r, http.StatusUnprocessableEntity, site.ContactStateFor(d, contact.StatusIdle, fields))
		return
	}
	h.renderHome(w, r, statusForSubmitError(err), site.ContactStateFor(d, contact.StatusError, nil))
}

// submit validates d, claims the in-flight slot for its email and relays it.
// The relay runs detached from the request so a client disconnect cannot
// cut it off between the two messages.
func (h *Handler) submit(ctx context.Context, d contact.Draft) (string, error) {
	d = d.Normalize()
	if errs := d.Validate(); len(errs) > 0 {
		return "", &validation.Errors{List: errs}
	}

	release, ok := h.guard.Acquire(d.Email)
	if !ok {
		slog.WarnContext(ctx, "duplicate contact submission rejected", "component", "api")
		return "", contact.ErrInFlight
	}
	defer release()

	id := ulid.Make().String()
	slog.InfoContext(ctx, "contact submission received",
		"component", "api",
		"submission_id", id,
		"project_type", d.ProjectType,
		"request_id", GetRequestID(ctx),
	)

	relayCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), relayTimeout)
	defer cancel()

	if err := h.relay.Submit(relayCtx, d); err != nil {
		attrs := []any{"component", "api", "submission_id", id, "error", err}
		var sendErr *mail.SendError
		if errors.As(err, &sendErr) {
			attrs = append(attrs, "upstream_status", sendErr.Status)
		}
		slog.ErrorContext(ctx, "contact relay failed", attrs...)
		return id, fmt.Errorf("%w: %w", errRelayFailed, err)
	}

	slog.InfoContext(ctx, "contact submission sent", "component", "api", "submission_id", id)
	return id, nil
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, cs site.ContactState) {
	var buf strings.Builder
	if err := h.site.RenderHome(&buf, cs); err != nil {
		slog.Error("render home failed", "error", err, "path", r.URL.Path)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(buf.String()))
}

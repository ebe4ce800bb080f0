package web

import (
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/yctsai/chamber/internal/config"
	"github.com/yctsai/chamber/internal/errors"
	"github.com/yctsai/chamber/internal/ops"
)

// Handlers contains HTTP route handlers for the web UI. The latest
// grouping result and the form that produced it live in memory, so the
// rooms page survives reloads between runs.
type Handlers struct {
	cfg      *config.Config
	renderer *Renderer

	mu   sync.Mutex
	doc  *ops.ResultDoc
	form RosterForm
}

// session returns the current result document and form under the lock.
func (h *Handlers) session() (*ops.ResultDoc, RosterForm) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doc, h.form
}

func (h *Handlers) setSession(doc *ops.ResultDoc, form RosterForm) {
	h.mu.Lock()
	h.doc = doc
	h.form = form
	h.mu.Unlock()
}

// HandleRooms handles GET /rooms — the run form plus the current result.
func (h *Handlers) HandleRooms(w http.ResponseWriter, r *http.Request) {
	doc, form := h.session()
	if form.TargetPerRoom == 0 {
		form.TargetPerRoom = h.cfg.TargetPerRoom
	}

	data := RoomsPageData{
		PageData: PageData{
			Title:   "Rooms",
			Version: h.renderer.version,
			Nav:     "rooms",
		},
		Form:   form,
		Doc:    doc,
		HasRun: doc != nil,
	}
	if doc != nil {
		for _, room := range doc.Rooms {
			data.RoomIDs = append(data.RoomIDs, room.ID)
		}
	}

	h.renderer.renderPage(w, r, "rooms", data)
}

// HandleRun handles POST /rooms/run — run the assignment from form input.
func (h *Handlers) HandleRun(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	form := RosterForm{
		HostsText:     r.FormValue("hosts_text"),
		MembersText:   r.FormValue("members_text"),
		GuestsText:    r.FormValue("guests_text"),
		TableText:     r.FormValue("table_text"),
		AllowOverlap:  parseCheckbox(r, "allow_overlap"),
		TargetPerRoom: parseIntForm(r, "target_per_room", h.cfg.TargetPerRoom),
		Seed:          strings.TrimSpace(r.FormValue("seed")),
	}

	input := ops.GroupInput{
		HostsText:     form.HostsText,
		MembersText:   form.MembersText,
		GuestsText:    form.GuestsText,
		TableText:     ptrString(form.TableText),
		AllowOverlap:  &form.AllowOverlap,
		TargetPerRoom: &form.TargetPerRoom,
	}
	if form.Seed != "" {
		seed, err := strconv.ParseInt(form.Seed, 10, 64)
		if err != nil {
			h.renderer.renderError(w, r, errors.NewInvalidRequest("seed must be an integer"))
			return
		}
		input.Seed = &seed
	}

	doc, err := ops.Group(h.cfg, input)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.setSession(doc, form)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/rooms")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/rooms", http.StatusFound)
}

// HandleMove handles POST /rooms/move — move a person between rooms.
func (h *Handlers) HandleMove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	doc, form := h.session()
	if doc == nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("no grouping result yet; run an assignment first"))
		return
	}

	moved, err := ops.Move(ops.MoveInput{
		Doc:        doc,
		PersonID:   r.FormValue("person_id"),
		FromRoomID: r.FormValue("from_room_id"),
		ToRoomID:   r.FormValue("to_room_id"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.setSession(moved, form)

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", "/rooms")
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, "/rooms", http.StatusFound)
}

// HandleReport handles GET /report — the markdown report rendered as HTML.
func (h *Handlers) HandleReport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.session()
	if doc == nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("no grouping result yet; run an assignment first"))
		return
	}

	report, err := ops.Report(ops.ReportInput{Doc: doc})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "report", ReportPageData{
		PageData: PageData{
			Title:   "Report",
			Version: h.renderer.version,
			Nav:     "report",
		},
		RunID:        doc.RunID,
		RenderedHTML: renderMarkdown(report.Markdown),
	})
}

// HandleExport handles GET /export.csv — download the result as CSV.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.session()
	if doc == nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("no grouping result yet; run an assignment first"))
		return
	}

	out, err := ops.Export(ops.ExportInput{Doc: doc})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="chamber-`+doc.RunID+`.csv"`)
	_, _ = w.Write([]byte(out.CSV))
}

// HandleCategories handles GET /categories — the synergy table in effect.
func (h *Handlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	out, err := ops.Categories(h.cfg, ops.CategoriesInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "categories", CategoriesPageData{
		PageData: PageData{
			Title:   "Categories",
			Version: h.renderer.version,
			Nav:     "categories",
		},
		Categories: out.Categories,
	})
}

// parseIntForm parses an integer form value with a default.
func parseIntForm(r *http.Request, name string, defaultVal int) int {
	s := r.FormValue(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

// parseCheckbox parses a checkbox form value.
func parseCheckbox(r *http.Request, name string) bool {
	s := r.FormValue(name)
	return s == "on" || s == "true" || s == "1"
}

// ptrString returns a pointer to s if non-empty, nil otherwise.
func ptrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

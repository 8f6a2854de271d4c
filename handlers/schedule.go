// Copyright (c) 2026 Yu-Chieh Teng.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/ycteng/tabiplan/geo"
	"github.com/ycteng/tabiplan/mapview"
	"github.com/ycteng/tabiplan/middleware"
	"github.com/ycteng/tabiplan/models"
	"github.com/ycteng/tabiplan/selection"
	"github.com/ycteng/tabiplan/tripdata"
)

// daySession is one browsing context's view of a day: its own selection
// coordinator over the day's shared route.
type daySession struct {
	day      int
	route    *geo.Route
	coord    *selection.Coordinator
	renderer *mapview.Renderer
}

type ScheduleHandler struct {
	data *tripdata.TripData

	mu       sync.Mutex
	routes   map[int]*geo.Route
	sessions map[string]*daySession
}

func NewScheduleHandler(data *tripdata.TripData) *ScheduleHandler {
	h := &ScheduleHandler{
		data:     data,
		routes:   make(map[int]*geo.Route),
		sessions: make(map[string]*daySession),
	}
	// Routes are deterministic per day; build them once up front.
	for n := tripdata.MinDay; n <= tripdata.MaxDay; n++ {
		h.routes[n] = geo.NewRoute(data.DayByNumber(n).Items)
	}
	return h
}

// ListDays handles GET /days
func (h *ScheduleHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	summaries := make([]models.DaySummary, 0, len(h.data.Days))
	for _, d := range h.data.Days {
		summaries = append(summaries, models.DaySummary{
			Day:          d.Day,
			Date:         d.Date,
			Title:        d.Title,
			Icon:         d.Icon,
			Theme:        d.Theme,
			ItemCount:    len(d.Items),
			LocatedCount: h.routes[d.Day].Len(),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetDay handles GET /days/{day}
func (h *ScheduleHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	route := h.routes[day.Day]
	renderer := mapview.NewRenderer()
	renderer.SetPoints(route.Points())
	view, err := renderer.Render(-1)
	if err != nil {
		slog.Error("failed to render map view", "day", day.Day, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render day")
		return
	}

	resp := models.DayResponse{
		Day:      *day,
		Map:      view,
		Segments: route.Segments(),
	}
	if day.Day > tripdata.MinDay {
		prev := day.Day - 1
		resp.PrevDay = &prev
	}
	if day.Day < tripdata.MaxDay {
		next := day.Day + 1
		resp.NextDay = &next
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// CreateSession handles POST /days/{day}/sessions
// Each browsing context gets its own selection state for the day.
func (h *ScheduleHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	route := h.routes[day.Day]
	renderer := mapview.NewRenderer()
	renderer.SetPoints(route.Points())

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = &daySession{
		day:      day.Day,
		route:    route,
		coord:    selection.NewCoordinator(route),
		renderer: renderer,
	}
	h.mu.Unlock()

	slog.Info("schedule session created", "day", day.Day, "session_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{SessionID: id})
}

// GetSelection handles GET /days/{day}/selection
func (h *ScheduleHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeSelection(w, sess, false)
}

// Select handles POST /days/{day}/selection
// A list-view click carries full_index; a map-marker click carries
// marker_index, resolved through the route's inverse mapping.
func (h *ScheduleHandler) Select(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.SelectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var changed bool
	switch {
	case req.FullIndex != nil:
		i := *req.FullIndex
		if i < 0 || i >= len(h.data.DayByNumber(sess.day).Items) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "full_index out of range")
			return
		}
		// Clicks on items without a location are a no-op, not an error.
		changed = sess.coord.SelectFull(i)
	case req.MarkerIndex != nil:
		// Likewise for marker indexes with no inverse mapping.
		changed = sess.coord.SelectLocated(*req.MarkerIndex)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "full_index or marker_index is required")
		return
	}

	h.writeSelection(w, sess, changed)
}

func (h *ScheduleHandler) writeSelection(w http.ResponseWriter, sess *daySession, changed bool) {
	resp := models.SelectionResponse{}

	if i, ok := sess.coord.Selected(); ok {
		resp.SelectedIndex = &i
		if changed {
			scroll := i
			resp.ScrollTo = &scroll
		}
	}

	locIdx := -1
	if j, ok := sess.coord.LocatedSelected(); ok {
		resp.LocatedIndex = &j
		locIdx = j
	}

	view, err := sess.renderer.Render(locIdx)
	if err != nil {
		slog.Error("failed to render map view", "day", sess.day, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render selection")
		return
	}
	resp.Map = view

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// dayParam resolves the {day} path value, writing a 404 for numbers outside
// the trip's 1..6 range.
func (h *ScheduleHandler) dayParam(w http.ResponseWriter, r *http.Request) (*models.Day, bool) {
	n, err := strconv.Atoi(r.PathValue("day"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Day not found")
		return nil, false
	}
	day := h.data.DayByNumber(n)
	if day == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Day not found")
		return nil, false
	}
	return day, true
}

func (h *ScheduleHandler) session(w http.ResponseWriter, r *http.Request) (*daySession, bool) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return nil, false
	}

	id := r.Header.Get("X-Session-ID")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "X-Session-ID header is required")
		return nil, false
	}

	h.mu.Lock()
	sess := h.sessions[id]
	h.mu.Unlock()

	if sess == nil || sess.day != day.Day {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}

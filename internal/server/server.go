// Package server exposes the content categories over a small JSON HTTP API,
// the surface the presentation layer calls.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pfrederiksen/templepages/internal/logger"
	"github.com/pfrederiksen/templepages/internal/panchang"
	"github.com/pfrederiksen/templepages/internal/service"
)

// Server wraps the orchestrator behind a chi router.
type Server struct {
	svc    *service.Service
	router chi.Router
}

// New creates the server and mounts its routes.
func New(svc *service.Service) *Server {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/api/content/{category}", s.handleContent)
	r.Get("/api/calendar/{year}/{month}", s.handleCalendarMonth)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleContent serves one category record. ?refresh=1 forces a fetch
// attempt; per the cache protocol a failed forced fetch still serves the
// stale record.
func (s *Server) handleContent(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	force := r.URL.Query().Get("refresh") == "1"
	ctx := r.Context()

	var (
		rec interface{}
		err error
	)
	switch category {
	case "home":
		rec, err = s.svc.Home(ctx, force)
	case "events":
		rec, err = s.svc.Events(ctx, force)
	case "bookstore":
		rec, err = s.svc.Bookstore(ctx, force)
	case "donation":
		rec, err = s.svc.Donation(ctx, force)
	case "admissions":
		rec, err = s.svc.Admissions(ctx, force)
	case "contact":
		rec, err = s.svc.Contact(ctx, force)
	case "classes":
		rec, err = s.svc.Classes(ctx, force)
	case "calendar":
		rec, err = s.svc.Calendar(ctx, force)
	default:
		writeError(w, http.StatusNotFound, "unknown category: "+category)
		return
	}

	if err != nil {
		status := http.StatusBadGateway
		if !errors.Is(err, service.ErrNoContent) {
			status = http.StatusInternalServerError
		}
		logger.Error("content request failed", logger.Fields{"category": category}, err)
		writeError(w, status, "unable to load "+category)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// handleCalendarMonth serves the curated events of one month.
func (s *Server) handleCalendarMonth(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 1 || month > 12 {
		writeError(w, http.StatusBadRequest, "invalid month")
		return
	}

	src := panchang.NewSource(time.Now())
	events := src.EventsForMonth(year, time.Month(month))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"year":   year,
		"month":  month,
		"events": events,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response failed", logger.Fields{"err": err.Error()})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/mergington/internal/domain/activity"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	ActivitiesDependencies
	ParticipantsDependencies
}

// Activity mirrors the read shape returned by GET /activities.
type Activity = activity.Activity

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	activitiesHandler   *ActivitiesHandler
	participantsHandler *ParticipantsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		activitiesHandler:   NewActivitiesHandler(deps),
		participantsHandler: NewParticipantsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	handle := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.Handle(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}

	handle("GET /healthz", "healthz", s.healthHandler.HandleHealth)
	handle("GET /stats", "stats", s.statsHandler.HandleStats)
	handle("GET /activities", "activities", s.activitiesHandler.HandleList)
	handle("POST /activities/{activity}/signup", "signup", s.participantsHandler.HandleSignup)
	handle("DELETE /activities/{activity}/participants", "unregister", s.participantsHandler.HandleUnregister)
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError classifies err and writes the matching status and body.
func writeError(w http.ResponseWriter, err error) {
	e := classify(err)
	writeJSON(w, e.status, errorResponse{Code: e.code, Detail: e.detail})
}

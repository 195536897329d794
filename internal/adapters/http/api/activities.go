package api

import (
	"context"
	"net/http"

	"github.com/okian/mergington/pkg/logger"
)

// ActivitiesDependencies defines the read side of the registry.
type ActivitiesDependencies interface {
	Activities(ctx context.Context) (map[string]Activity, error)
}

// ActivitiesHandler handles GET /activities.
type ActivitiesHandler struct {
	deps ActivitiesDependencies
}

// NewActivitiesHandler creates a new activities handler.
func NewActivitiesHandler(deps ActivitiesDependencies) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps}
}

// HandleList writes every activity keyed by name.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_activities"
	all, err := h.deps.Activities(r.Context())
	if err != nil {
		logger.Get().Error(r.Context(), "listing activities failed", logger.Error(Wrap(op, err)))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

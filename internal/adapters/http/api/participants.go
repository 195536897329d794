package api

import (
	"context"
	"net/http"
	"strings"
)

// ParticipantsDependencies defines the roster mutations.
type ParticipantsDependencies interface {
	Signup(ctx context.Context, name, email string) (string, error)
	Unregister(ctx context.Context, name, email string) (string, error)
}

// ParticipantsHandler handles sign-up and unregister requests.
type ParticipantsHandler struct {
	deps ParticipantsDependencies
}

// NewParticipantsHandler creates a new participants handler.
func NewParticipantsHandler(deps ParticipantsDependencies) *ParticipantsHandler {
	return &ParticipantsHandler{deps: deps}
}

// HandleSignup handles POST /activities/{activity}/signup?email=.
func (h *ParticipantsHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "api.signup", h.deps.Signup)
}

// HandleUnregister handles DELETE /activities/{activity}/participants?email=.
func (h *ParticipantsHandler) HandleUnregister(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "api.unregister", h.deps.Unregister)
}

func (h *ParticipantsHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	fn func(ctx context.Context, name, email string) (string, error),
) {
	name := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if strings.TrimSpace(email) == "" {
		writeError(w, NewKind(op, ErrMissingEmail))
		return
	}

	msg, err := fn(r.Context(), name, email)
	if err != nil {
		writeError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

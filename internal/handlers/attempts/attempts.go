package attempts

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/services/attempt"
	"gitlab.com/codetrial.net/internal/handlers"
	"gitlab.com/codetrial.net/internal/handlers/response"
)

// Handler handles test-run and submission API requests
type Handler struct {
	attemptService attempt.IAttemptService
	logger         primary.Logger
}

func NewHandler(attemptService attempt.IAttemptService, logger primary.Logger) *Handler {
	return &Handler{
		attemptService: attemptService,
		logger:         logger,
	}
}

// RegisterRoutes registers the API routes for attempts
func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	authed := func(fn http.HandlerFunc) http.Handler {
		return mw.JWTMiddleware(fn)
	}
	router.Handle("/api/attempts/run", authed(h.Run)).Methods("POST")
	router.Handle("/api/attempts", authed(h.Submit)).Methods("POST")
	router.Handle("/api/attempts/{attemptId}", authed(h.Get)).Methods("GET")
	router.Handle("/api/challenges/{challengeId}/attempts", authed(h.ListByChallenge)).Methods("GET")
}

// RunRequest represents a request to execute code without recording an attempt
type RunRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	Code        string    `json:"code"`
	Language    string    `json:"language"`
}

// Run executes code against the challenge's test cases. Nothing is persisted,
// so candidates can iterate freely before committing a submission.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	result, err := h.attemptService.Run(r.Context(), actor, req.Code, req.Language, req.ChallengeID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, result)
}

// SubmitRequest represents a final submission for a challenge
type SubmitRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	Code        string    `json:"code"`
}

// Submit grades the code and records one immutable attempt.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	recorded, err := h.attemptService.Submit(r.Context(), actor, req.Code, req.ChallengeID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(recorded)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	attemptID, ok := handlers.PathUUID(w, r, "attemptId")
	if !ok {
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	found, err := h.attemptService.Get(r.Context(), actor, attemptID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, found)
}

func (h *Handler) ListByChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := handlers.PathUUID(w, r, "challengeId")
	if !ok {
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	attempts, err := h.attemptService.ListByChallenge(r.Context(), actor, challengeID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, attempts)
}

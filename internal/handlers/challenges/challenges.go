package challenges

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/services/challenge"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/handlers"
	"gitlab.com/codetrial.net/internal/handlers/response"
)

// Handler handles challenge API requests
type Handler struct {
	challengeService challenge.IChallengeService
	logger           primary.Logger
}

func NewHandler(challengeService challenge.IChallengeService, logger primary.Logger) *Handler {
	return &Handler{
		challengeService: challengeService,
		logger:           logger,
	}
}

// RegisterRoutes registers the API routes for challenges. Authoring is
// admin-only; reading is open to any authenticated caller.
func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	admin := func(fn http.HandlerFunc) http.Handler {
		return mw.JWTMiddleware(mw.RequireAdmin(fn))
	}
	router.Handle("/api/challenges", admin(h.Create)).Methods("POST")
	router.Handle("/api/challenges/{challengeId}", admin(h.Update)).Methods("PUT")
	router.Handle("/api/challenges/{challengeId}", admin(h.Delete)).Methods("DELETE")
	router.Handle("/api/challenges", mw.JWTMiddleware(http.HandlerFunc(h.List))).Methods("GET")
	router.Handle("/api/challenges/{challengeId}", mw.JWTMiddleware(http.HandlerFunc(h.Get))).Methods("GET")
}

// CreateChallengeRequest represents a request to author a challenge
type CreateChallengeRequest struct {
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Language        string            `json:"language"`
	TestCases       []domain.TestCase `json:"testcases"`
	ExpiresAt       *time.Time        `json:"expires_at"`
	DurationMinutes *int              `json:"duration_minutes"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	created, err := h.challengeService.Create(r.Context(), actor, &domain.Challenge{
		Title:           req.Title,
		Description:     req.Description,
		Language:        req.Language,
		TestCases:       req.TestCases,
		ExpiresAt:       req.ExpiresAt,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// UpdateChallengeRequest carries a partial update; absent fields keep their
// stored values.
type UpdateChallengeRequest struct {
	Title           *string           `json:"title"`
	Description     *string           `json:"description"`
	Language        *string           `json:"language"`
	TestCases       []domain.TestCase `json:"testcases"`
	ExpiresAt       *time.Time        `json:"expires_at"`
	DurationMinutes *int              `json:"duration_minutes"`
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := handlers.PathUUID(w, r, "challengeId")
	if !ok {
		return
	}

	var req UpdateChallengeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	updated, err := h.challengeService.Update(r.Context(), challengeID, &domain.ChallengePatch{
		Title:           req.Title,
		Description:     req.Description,
		Language:        req.Language,
		TestCases:       req.TestCases,
		ExpiresAt:       req.ExpiresAt,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := handlers.PathUUID(w, r, "challengeId")
	if !ok {
		return
	}

	if err := h.challengeService.Delete(r.Context(), challengeID); err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, map[string]string{"status": "deleted"})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, _ := handlers.ActorFromContext(r.Context())
	challenges, err := h.challengeService.List(r.Context(), actor)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, challenges)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := handlers.PathUUID(w, r, "challengeId")
	if !ok {
		return
	}

	actor, _ := handlers.ActorFromContext(r.Context())
	found, err := h.challengeService.Get(r.Context(), actor, challengeID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, found)
}

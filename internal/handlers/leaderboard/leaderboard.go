package leaderboard

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/services/leaderboard"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/handlers"
	"gitlab.com/codetrial.net/internal/handlers/response"
)

// Handler handles ranking and statistics API requests
type Handler struct {
	leaderboardService leaderboard.ILeaderboardService
	logger             primary.Logger
}

func NewHandler(leaderboardService leaderboard.ILeaderboardService, logger primary.Logger) *Handler {
	return &Handler{
		leaderboardService: leaderboardService,
		logger:             logger,
	}
}

// RegisterRoutes registers the API routes for leaderboards and statistics
func (h *Handler) RegisterRoutes(router *mux.Router, mw *handlers.MiddlewareProvider) {
	router.Handle("/api/challenges/{challengeId}/leaderboard",
		mw.JWTMiddleware(http.HandlerFunc(h.ChallengeLeaderboard))).Methods("GET")
	router.Handle("/api/statistics",
		mw.JWTMiddleware(mw.RequireAdmin(http.HandlerFunc(h.PlatformStatistics)))).Methods("GET")
	router.Handle("/api/candidates/me/stats",
		mw.JWTMiddleware(http.HandlerFunc(h.MyStats))).Methods("GET")
}

// ChallengeLeaderboardResponse pairs the ranked rows with the challenge they
// were computed for.
type ChallengeLeaderboardResponse struct {
	ChallengeID    string                  `json:"challenge_id"`
	ChallengeTitle string                  `json:"challenge_title"`
	Leaderboard    []domain.LeaderboardRow `json:"leaderboard"`
}

func (h *Handler) ChallengeLeaderboard(w http.ResponseWriter, r *http.Request) {
	challengeID, ok := handlers.PathUUID(w, r, "challengeId")
	if !ok {
		return
	}

	challenge, rows, err := h.leaderboardService.ChallengeLeaderboard(r.Context(), challengeID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, ChallengeLeaderboardResponse{
		ChallengeID:    challenge.ID.String(),
		ChallengeTitle: challenge.Title,
		Leaderboard:    rows,
	})
}

func (h *Handler) PlatformStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leaderboardService.PlatformStatistics(r.Context())
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, stats)
}

// MyStats summarizes the calling candidate's own attempts per challenge.
func (h *Handler) MyStats(w http.ResponseWriter, r *http.Request) {
	actor, _ := handlers.ActorFromContext(r.Context())
	stats, err := h.leaderboardService.CandidateStats(r.Context(), actor.UserID)
	if err != nil {
		handlers.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, stats)
}

package leaderboard

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

// ILeaderboardService defines the interface for rankings and statistics
type ILeaderboardService interface {
	// ChallengeLeaderboard folds all committed attempts for a challenge into
	// one ranked row per candidate. It is recomputed on every read.
	ChallengeLeaderboard(ctx context.Context, challengeID uuid.UUID) (*domain.Challenge, []domain.LeaderboardRow, error)

	// PlatformStatistics aggregates admin-facing totals across the platform
	PlatformStatistics(ctx context.Context) (*domain.PlatformStats, error)

	// CandidateStats summarizes one candidate's attempts across all challenges
	CandidateStats(ctx context.Context, candidateID uuid.UUID) (*domain.CandidateStats, error)
}

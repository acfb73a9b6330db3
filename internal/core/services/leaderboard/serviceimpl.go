package leaderboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

var _ ILeaderboardService = (*LeaderboardService)(nil)

// LeaderboardService implements the LeaderboardService interface
type LeaderboardService struct {
	challengeRepo secondary.ChallengeRepository
	attemptRepo   secondary.AttemptRepository
	userPort      secondary.UserPort
	logger        primary.Logger
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	challengeRepo secondary.ChallengeRepository,
	attemptRepo secondary.AttemptRepository,
	userPort secondary.UserPort,
	logger primary.Logger,
) *LeaderboardService {
	return &LeaderboardService{
		challengeRepo: challengeRepo,
		attemptRepo:   attemptRepo,
		userPort:      userPort,
		logger:        logger,
	}
}

// ChallengeLeaderboard ranks all candidates who attempted a challenge
func (s *LeaderboardService) ChallengeLeaderboard(ctx context.Context, challengeID uuid.UUID) (*domain.Challenge, []domain.LeaderboardRow, error) {
	found, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to get challenge for leaderboard", "challengeId", challengeID, "error", err)
		return nil, nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if found == nil {
		return nil, nil, errs.ChallengeNotFound
	}

	attempts, err := s.attemptRepo.ListByChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to list attempts for leaderboard", "challengeId", challengeID, "error", err)
		return nil, nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	return found, Rank(attempts), nil
}

// PlatformStatistics aggregates admin-facing totals
func (s *LeaderboardService) PlatformStatistics(ctx context.Context) (*domain.PlatformStats, error) {
	challenges, err := s.challengeRepo.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	attempts, err := s.attemptRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	registered, err := s.userPort.CountByRole(ctx, domain.RoleCandidate)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}

	stats := &domain.PlatformStats{
		TotalChallenges:           len(challenges),
		TotalAttempts:             len(attempts),
		TotalCandidatesRegistered: registered,
	}

	candidates := make(map[uuid.UUID]struct{})
	scoreSum := 0
	for _, a := range attempts {
		candidates[a.CandidateID] = struct{}{}
		scoreSum += a.Score
	}
	stats.TotalCandidates = len(candidates)
	if len(attempts) > 0 {
		stats.AverageScore = float64(scoreSum) / float64(len(attempts))
	}

	return stats, nil
}

// CandidateStats summarizes one candidate's attempts across all challenges
func (s *LeaderboardService) CandidateStats(ctx context.Context, candidateID uuid.UUID) (*domain.CandidateStats, error) {
	attempts, err := s.attemptRepo.ListByCandidate(ctx, candidateID)
	if err != nil {
		s.logger.Error("Failed to list attempts for candidate stats", "candidateId", candidateID, "error", err)
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	challenges, err := s.challengeRepo.ListChallenges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	byChallenge := make(map[uuid.UUID][]*domain.Attempt)
	stats := &domain.CandidateStats{TotalAttempts: len(attempts)}
	scoreSum := 0
	for _, a := range attempts {
		byChallenge[a.ChallengeID] = append(byChallenge[a.ChallengeID], a)
		scoreSum += a.Score
		if a.Score > stats.BestScore {
			stats.BestScore = a.Score
		}
	}
	stats.ChallengesAttempted = len(byChallenge)
	if len(attempts) > 0 {
		stats.AverageScore = float64(scoreSum) / float64(len(attempts))
	}

	// Every challenge appears in the summary, attempted or not.
	stats.Challenges = make([]domain.CandidateChallengeStats, 0, len(challenges))
	for _, c := range challenges {
		row := domain.CandidateChallengeStats{
			ChallengeID:     c.ID,
			ChallengeTitle:  c.Title,
			Language:        c.Language,
			DurationMinutes: c.DurationMinutes,
		}
		for _, a := range byChallenge[c.ID] {
			row.AttemptCount++
			if a.Score > row.BestScore {
				row.BestScore = a.Score
			}
			if a.Passed > row.BestPassed {
				row.BestPassed = a.Passed
			}
			if row.LastAttempt == nil || a.SubmittedAt.After(*row.LastAttempt) {
				t := a.SubmittedAt
				row.LastAttempt = &t
			}
		}
		stats.Challenges = append(stats.Challenges, row)
	}

	return stats, nil
}

package challenge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

// windowTTLSlack keeps the window record alive well past the deadline so a
// late submit still finds the evidence it needs to be rejected.
const windowTTLSlack = 24 * time.Hour

var _ IChallengeService = (*ChallengeService)(nil)

// ChallengeService implements the ChallengeService interface
type ChallengeService struct {
	challengeRepo secondary.ChallengeRepository
	windows       secondary.AttemptWindowStore
	logger        primary.Logger
}

// NewChallengeService creates a new challenge service
func NewChallengeService(
	challengeRepo secondary.ChallengeRepository,
	windows secondary.AttemptWindowStore,
	logger primary.Logger,
) *ChallengeService {
	return &ChallengeService{
		challengeRepo: challengeRepo,
		windows:       windows,
		logger:        logger,
	}
}

// Create stores a new challenge
func (s *ChallengeService) Create(ctx context.Context, actor domain.AuthPayload, challenge *domain.Challenge) (*domain.Challenge, error) {
	if challenge.Title == "" || challenge.Description == "" || challenge.Language == "" || challenge.TestCases == nil {
		return nil, fmt.Errorf("%w: title, description, language and testcases are required", errs.ValidationFailed)
	}

	created := domain.NewChallenge(challenge.Title, challenge.Description, challenge.Language, challenge.TestCases, actor.UserID)
	created.ExpiresAt = challenge.ExpiresAt
	created.DurationMinutes = challenge.DurationMinutes

	if err := s.challengeRepo.SaveChallenge(ctx, created); err != nil {
		s.logger.Error("Failed to save challenge", "title", challenge.Title, "error", err)
		return nil, fmt.Errorf("failed to save challenge: %w", err)
	}

	s.logger.Info("Challenge created", "challengeId", created.ID, "title", created.Title)
	return created, nil
}

// Update applies a field-wise patch to an existing challenge
func (s *ChallengeService) Update(ctx context.Context, challengeID uuid.UUID, patch *domain.ChallengePatch) (*domain.Challenge, error) {
	updated, err := s.challengeRepo.UpdateChallenge(ctx, challengeID, patch)
	if err != nil {
		s.logger.Error("Failed to update challenge", "challengeId", challengeID, "error", err)
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}
	if updated == nil {
		return nil, errs.ChallengeNotFound
	}
	return updated, nil
}

// Delete removes a challenge
func (s *ChallengeService) Delete(ctx context.Context, challengeID uuid.UUID) error {
	existed, err := s.challengeRepo.DeleteChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to delete challenge", "challengeId", challengeID, "error", err)
		return fmt.Errorf("failed to delete challenge: %w", err)
	}
	if !existed {
		return errs.ChallengeNotFound
	}
	s.logger.Info("Challenge deleted", "challengeId", challengeID)
	return nil
}

// List retrieves all challenges, redacted for non-admin callers
func (s *ChallengeService) List(ctx context.Context, actor domain.AuthPayload) ([]*domain.Challenge, error) {
	challenges, err := s.challengeRepo.ListChallenges(ctx)
	if err != nil {
		s.logger.Error("Failed to list challenges", "error", err)
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}

	if !actor.IsAdmin() {
		for _, c := range challenges {
			c.TestCases = domain.RedactTestCases(c.TestCases)
		}
	}
	return challenges, nil
}

// Get retrieves one challenge, redacted for candidates
func (s *ChallengeService) Get(ctx context.Context, actor domain.AuthPayload, challengeID uuid.UUID) (*domain.Challenge, error) {
	found, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to get challenge", "challengeId", challengeID, "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if found == nil {
		return nil, errs.ChallengeNotFound
	}

	if !actor.IsAdmin() {
		found.TestCases = domain.RedactTestCases(found.TestCases)
		s.startWindow(ctx, found, actor)
	}
	return found, nil
}

// startWindow records the first access to a time-limited challenge. A store
// failure is logged, not surfaced: reading the challenge stays available and
// the deadline simply starts at the first access that does get recorded.
func (s *ChallengeService) startWindow(ctx context.Context, c *domain.Challenge, actor domain.AuthPayload) {
	if s.windows == nil || c.DurationMinutes == nil {
		return
	}

	ttl := time.Duration(*c.DurationMinutes)*time.Minute + windowTTLSlack
	if _, err := s.windows.StartWindow(ctx, c.ID, actor.UserID, time.Now(), ttl); err != nil {
		s.logger.Error("Failed to record attempt window start",
			"challengeId", c.ID,
			"candidateId", actor.UserID,
			"error", err)
	}
}

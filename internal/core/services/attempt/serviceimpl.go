package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/core/services/evaluation"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

var _ IAttemptService = (*AttemptService)(nil)

// AttemptService implements the AttemptService interface
type AttemptService struct {
	challengeRepo secondary.ChallengeRepository
	attemptRepo   secondary.AttemptRepository
	executionSvc  evaluation.IExecutionService
	windows       secondary.AttemptWindowStore
	logger        primary.Logger
}

// NewAttemptService creates a new attempt service
func NewAttemptService(
	challengeRepo secondary.ChallengeRepository,
	attemptRepo secondary.AttemptRepository,
	executionSvc evaluation.IExecutionService,
	windows secondary.AttemptWindowStore,
	logger primary.Logger,
) *AttemptService {
	return &AttemptService{
		challengeRepo: challengeRepo,
		attemptRepo:   attemptRepo,
		executionSvc:  executionSvc,
		windows:       windows,
		logger:        logger,
	}
}

// Run executes code without persisting anything
func (s *AttemptService) Run(ctx context.Context, actor domain.AuthPayload, code, language string, challengeID uuid.UUID) (*domain.ExecutionResult, error) {
	if code == "" || language == "" || challengeID == uuid.Nil {
		return nil, fmt.Errorf("%w: code, language and challenge_id are required", errs.ValidationFailed)
	}

	found, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to get challenge for run", "challengeId", challengeID, "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if found == nil {
		return nil, errs.ChallengeNotFound
	}

	return s.executionSvc.Execute(ctx, code, language, found.TestCases), nil
}

// Submit grades the code, scores it and records one immutable attempt
func (s *AttemptService) Submit(ctx context.Context, actor domain.AuthPayload, code string, challengeID uuid.UUID) (*domain.Attempt, error) {
	if code == "" || challengeID == uuid.Nil {
		return nil, fmt.Errorf("%w: code and challenge_id are required", errs.ValidationFailed)
	}

	found, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		s.logger.Error("Failed to get challenge for submit", "challengeId", challengeID, "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	if found == nil {
		return nil, errs.ChallengeNotFound
	}

	now := time.Now()
	if found.Expired(now) {
		return nil, errs.ChallengeExpired
	}
	if err := s.checkWindow(ctx, found, actor, now); err != nil {
		return nil, err
	}

	// Final submissions are always graded against the challenge's own
	// language, not whatever the request claims.
	result := s.executionSvc.Execute(ctx, code, found.Language, found.TestCases)
	score := evaluation.Score(result, len(found.TestCases))

	record := domain.NewAttempt(challengeID, actor.UserID, code, result, score)
	if err := s.attemptRepo.SaveAttempt(ctx, record); err != nil {
		// No attempt row exists, so the candidate can safely retry; each
		// retry that succeeds creates its own separate attempt.
		s.logger.Error("Failed to save attempt",
			"challengeId", challengeID,
			"candidateId", actor.UserID,
			"error", err)
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	s.logger.Info("Attempt recorded",
		"attemptId", record.ID,
		"challengeId", challengeID,
		"candidateId", actor.UserID,
		"score", score,
		"status", record.Status)

	if !actor.IsAdmin() {
		record.Redact()
	}
	return record, nil
}

// ListByChallenge retrieves attempts for a challenge, scoped by role
func (s *AttemptService) ListByChallenge(ctx context.Context, actor domain.AuthPayload, challengeID uuid.UUID) ([]*domain.Attempt, error) {
	var (
		attempts []*domain.Attempt
		err      error
	)
	if actor.IsAdmin() {
		attempts, err = s.attemptRepo.ListByChallenge(ctx, challengeID)
	} else {
		attempts, err = s.attemptRepo.ListByChallengeAndCandidate(ctx, challengeID, actor.UserID)
	}
	if err != nil {
		s.logger.Error("Failed to list attempts", "challengeId", challengeID, "error", err)
		return nil, fmt.Errorf("failed to list attempts: %w", err)
	}

	if !actor.IsAdmin() {
		for _, a := range attempts {
			a.Redact()
		}
	}
	return attempts, nil
}

// Get retrieves a single attempt, owner or admin only
func (s *AttemptService) Get(ctx context.Context, actor domain.AuthPayload, attemptID uuid.UUID) (*domain.Attempt, error) {
	found, err := s.attemptRepo.GetAttempt(ctx, attemptID)
	if err != nil {
		s.logger.Error("Failed to get attempt", "attemptId", attemptID, "error", err)
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	if found == nil {
		return nil, errs.AttemptNotFound
	}

	if !actor.IsAdmin() {
		if found.CandidateID != actor.UserID {
			return nil, errs.AccessDenied
		}
		// The owning candidate still never sees their submitted source.
		found.Redact()
	}
	return found, nil
}

// checkWindow rejects submissions arriving after the candidate's recorded
// attempt window closed. A candidate who never opened the challenge has no
// recorded window and is not rejected; their window effectively starts now.
func (s *AttemptService) checkWindow(ctx context.Context, c *domain.Challenge, actor domain.AuthPayload, now time.Time) error {
	if s.windows == nil || c.DurationMinutes == nil || actor.IsAdmin() {
		return nil
	}

	startedAt, err := s.windows.GetWindowStart(ctx, c.ID, actor.UserID)
	if err != nil {
		// The window store is best-effort: losing it must not block
		// submissions.
		s.logger.Error("Failed to read attempt window", "challengeId", c.ID, "candidateId", actor.UserID, "error", err)
		return nil
	}
	if startedAt == nil {
		return nil
	}

	deadline := startedAt.Add(time.Duration(*c.DurationMinutes) * time.Minute)
	if now.After(deadline) {
		return errs.WindowExpired
	}
	return nil
}

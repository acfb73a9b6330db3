package attempt

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

// IAttemptService defines the interface for test runs and final submissions
type IAttemptService interface {
	// Run executes code against a challenge's test cases without persisting
	// anything. Candidates use it for self-checking before submitting.
	Run(ctx context.Context, actor domain.AuthPayload, code, language string, challengeID uuid.UUID) (*domain.ExecutionResult, error)

	// Submit executes the code against the challenge's own language, scores
	// the result and records one immutable attempt.
	Submit(ctx context.Context, actor domain.AuthPayload, code string, challengeID uuid.UUID) (*domain.Attempt, error)

	// ListByChallenge retrieves attempts for a challenge: all of them for
	// admins, the caller's own otherwise.
	ListByChallenge(ctx context.Context, actor domain.AuthPayload, challengeID uuid.UUID) ([]*domain.Attempt, error)

	// Get retrieves a single attempt, owner or admin only
	Get(ctx context.Context, actor domain.AuthPayload, attemptID uuid.UUID) (*domain.Attempt, error)
}

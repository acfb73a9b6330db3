package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

type AttemptRepository interface {
	// SaveAttempt appends one immutable attempt row
	SaveAttempt(ctx context.Context, attempt *domain.Attempt) error

	// GetAttempt retrieves an attempt by ID, nil when not found
	GetAttempt(ctx context.Context, attemptID uuid.UUID) (*domain.Attempt, error)

	// ListByChallenge retrieves all attempts for a challenge, newest first
	ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*domain.Attempt, error)

	// ListByChallengeAndCandidate retrieves one candidate's attempts for a challenge, newest first
	ListByChallengeAndCandidate(ctx context.Context, challengeID, candidateID uuid.UUID) ([]*domain.Attempt, error)

	// ListByCandidate retrieves all attempts by a candidate across challenges
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Attempt, error)

	// ListAll retrieves every attempt on the platform, for admin statistics
	ListAll(ctx context.Context) ([]*domain.Attempt, error)
}

package challenge

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

// IChallengeService defines the interface for managing challenges
type IChallengeService interface {
	// Create stores a new challenge authored by an admin
	Create(ctx context.Context, actor domain.AuthPayload, challenge *domain.Challenge) (*domain.Challenge, error)

	// Update applies a field-wise patch to an existing challenge
	Update(ctx context.Context, challengeID uuid.UUID, patch *domain.ChallengePatch) (*domain.Challenge, error)

	// Delete removes a challenge
	Delete(ctx context.Context, challengeID uuid.UUID) error

	// List retrieves all challenges, redacted for non-admin callers
	List(ctx context.Context, actor domain.AuthPayload) ([]*domain.Challenge, error)

	// Get retrieves one challenge. For candidates the expected outputs are
	// stripped and, on time-limited challenges, the attempt window starts on
	// first access.
	Get(ctx context.Context, actor domain.AuthPayload, challengeID uuid.UUID) (*domain.Challenge, error)
}

package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

type ChallengeRepository interface {
	// SaveChallenge inserts a new challenge
	SaveChallenge(ctx context.Context, challenge *domain.Challenge) error

	// GetChallenge retrieves a challenge by ID, nil when not found
	GetChallenge(ctx context.Context, challengeID uuid.UUID) (*domain.Challenge, error)

	// ListChallenges retrieves all challenges, newest first
	ListChallenges(ctx context.Context) ([]*domain.Challenge, error)

	// UpdateChallenge applies non-nil fields onto an existing challenge
	UpdateChallenge(ctx context.Context, challengeID uuid.UUID, patch *domain.ChallengePatch) (*domain.Challenge, error)

	// DeleteChallenge removes a challenge, reporting whether it existed
	DeleteChallenge(ctx context.Context, challengeID uuid.UUID) (bool, error)
}

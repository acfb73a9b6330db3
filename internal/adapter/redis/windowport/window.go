package windowport

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
)

const windowKeyPrefix = "window:"

var _ secondary.AttemptWindowStore = (*WindowStore)(nil)

// WindowStore keeps challenge attempt windows in Redis. The key expires on
// its own once the window plus slack has passed, so stale entries never need
// explicit cleanup.
type WindowStore struct {
	redisClient *redis.Client
	logger      primary.Logger
}

func NewWindowStore(redisClient *redis.Client, logger primary.Logger) *WindowStore {
	return &WindowStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

func windowKey(challengeID, candidateID uuid.UUID) string {
	return fmt.Sprintf("%s%s:%s", windowKeyPrefix, challengeID, candidateID)
}

// StartWindow records startedAt under the pair's key unless a window is
// already open, in which case the earlier start wins. SETNX keeps concurrent
// first opens from resetting each other.
func (s *WindowStore) StartWindow(ctx context.Context, challengeID, candidateID uuid.UUID, startedAt time.Time, ttl time.Duration) (time.Time, error) {
	key := windowKey(challengeID, candidateID)
	set, err := s.redisClient.SetNX(ctx, key, startedAt.UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		s.logger.Error("Failed to record attempt window", "key", key, "error", err)
		return time.Time{}, fmt.Errorf("failed to record attempt window: %w", err)
	}
	if set {
		return startedAt, nil
	}

	existing, err := s.GetWindowStart(ctx, challengeID, candidateID)
	if err != nil {
		return time.Time{}, err
	}
	if existing == nil {
		// The key expired between SETNX and GET; treat this call as the opener.
		return startedAt, nil
	}

	return *existing, nil
}

func (s *WindowStore) GetWindowStart(ctx context.Context, challengeID, candidateID uuid.UUID) (*time.Time, error) {
	key := windowKey(challengeID, candidateID)
	raw, err := s.redisClient.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		s.logger.Error("Failed to read attempt window", "key", key, "error", err)
		return nil, fmt.Errorf("failed to read attempt window: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		s.logger.Error("Failed to parse attempt window start", "key", key, "error", err)
		return nil, fmt.Errorf("failed to parse attempt window start: %w", err)
	}

	return &startedAt, nil
}

package secondary

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AttemptWindowStore records when a candidate first opened a time-limited
// challenge so submissions arriving after the window closes can be rejected
// server-side rather than trusting the browser countdown.
type AttemptWindowStore interface {
	// StartWindow records the window start for a candidate+challenge pair if
	// none exists yet and returns the effective start time either way.
	StartWindow(ctx context.Context, challengeID, candidateID uuid.UUID, startedAt time.Time, ttl time.Duration) (time.Time, error)

	// GetWindowStart returns the recorded start time, nil when no window was opened.
	GetWindowStart(ctx context.Context, challengeID, candidateID uuid.UUID) (*time.Time, error)
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// LeaderboardRow is a derived per-candidate summary of their performance on
// one challenge. It is recomputed on every read, never stored. The aggregates
// are each taken independently across the candidate's attempts, so best_score
// and best_time may come from different submissions.
type LeaderboardRow struct {
	CandidateID    uuid.UUID `json:"user_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email,omitempty"`
	BestScore      int       `json:"best_score"`
	BestPassed     int       `json:"best_passed"`
	BestTimeMs     *int64    `json:"best_time"`
	TotalAttempts  int       `json:"total_attempts"`
	LastSubmission time.Time `json:"last_submission"`
}

// PlatformStats is the admin-facing aggregate over the whole platform.
type PlatformStats struct {
	TotalChallenges           int     `json:"total_challenges"`
	TotalAttempts             int     `json:"total_attempts"`
	TotalCandidates           int     `json:"total_candidates"`
	AverageScore              float64 `json:"average_score"`
	TotalCandidatesRegistered int     `json:"total_candidates_registered"`
}

// CandidateChallengeStats summarizes one candidate's attempts on one challenge.
type CandidateChallengeStats struct {
	ChallengeID     uuid.UUID  `json:"challenge_id"`
	ChallengeTitle  string     `json:"challenge_title"`
	Language        string     `json:"language"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	AttemptCount    int        `json:"attempt_count"`
	BestScore       int        `json:"best_score"`
	BestPassed      int        `json:"best_passed"`
	LastAttempt     *time.Time `json:"last_attempt,omitempty"`
}

// CandidateStats is the candidate-facing dashboard summary.
type CandidateStats struct {
	TotalAttempts       int                       `json:"total_attempts"`
	ChallengesAttempted int                       `json:"challenges_attempted"`
	BestScore           int                       `json:"best_score"`
	AverageScore        float64                   `json:"average_score"`
	Challenges          []CandidateChallengeStats `json:"challenges"`
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attempt represents one immutable record of a candidate's final submission
// and its graded outcome. Test runs are never recorded as attempts.
type Attempt struct {
	ID              uuid.UUID    `db:"id" json:"id"`
	ChallengeID     uuid.UUID    `db:"challenge_id" json:"challenge_id"`
	CandidateID     uuid.UUID    `db:"candidate_id" json:"candidate_id"`
	Code            *string      `db:"code" json:"code"`
	Output          string       `db:"output" json:"output"`
	Score           int          `db:"score" json:"score"`
	Passed          int          `db:"passed" json:"passed"`
	Failed          int          `db:"failed" json:"failed"`
	ExecutionTimeMs int64        `db:"execution_time_ms" json:"execution_time_ms"`
	Status          Status       `db:"status" json:"status"`
	TestResults     []TestResult `json:"test_results"`
	SubmittedAt     time.Time    `db:"submitted_at" json:"submitted_at"`

	// Joined display fields, populated on reads only.
	CandidateName  string `json:"candidate_name,omitempty"`
	CandidateEmail string `json:"candidate_email,omitempty"`
	ChallengeTitle string `json:"challenge_title,omitempty"`
}

// NewAttempt creates an attempt record from a scored execution result.
func NewAttempt(challengeID, candidateID uuid.UUID, code string, result *ExecutionResult, score int) *Attempt {
	return &Attempt{
		ID:              uuid.New(),
		ChallengeID:     challengeID,
		CandidateID:     candidateID,
		Code:            &code,
		Output:          result.Output,
		Score:           score,
		Passed:          result.Passed,
		Failed:          result.Failed,
		ExecutionTimeMs: result.ExecutionTimeMs,
		Status:          result.Status,
		TestResults:     result.TestResults,
		SubmittedAt:     time.Now(),
	}
}

// Redact hides the submitted source from non-admin viewers, the owning
// candidate included.
func (a *Attempt) Redact() {
	a.Code = nil
}

type AttemptTable struct {
	ID              string
	ChallengeID     string
	CandidateID     string
	Code            string
	Output          string
	Score           string
	Passed          string
	Failed          string
	ExecutionTimeMs string
	Status          string
	TestResults     string
	SubmittedAt     string
}

func GetAttemptTable() AttemptTable {
	return AttemptTable{
		ID:              "id",
		ChallengeID:     "challenge_id",
		CandidateID:     "candidate_id",
		Code:            "code",
		Output:          "output",
		Score:           "score",
		Passed:          "passed",
		Failed:          "failed",
		ExecutionTimeMs: "execution_time_ms",
		Status:          "status",
		TestResults:     "test_results",
		SubmittedAt:     "submitted_at",
	}
}

func (AttemptTable) TableName() string {
	return "attempts"
}

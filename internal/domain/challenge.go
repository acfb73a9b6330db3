package domain

import (
	"time"

	"github.com/google/uuid"
)

// Challenge represents an authored coding problem with a hidden set of test cases
type Challenge struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Title           string     `db:"title" json:"title"`
	Description     string     `db:"description" json:"description"`
	Language        string     `db:"language" json:"language"`
	TestCases       []TestCase `json:"testcases"`
	CreatedBy       *uuid.UUID `db:"created_by" json:"created_by,omitempty"`
	CreatedByName   string     `json:"created_by_name,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt       *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	DurationMinutes *int       `db:"duration_minutes" json:"duration_minutes,omitempty"`
}

// NewChallenge creates a new challenge
func NewChallenge(title, description, language string, testCases []TestCase, createdBy uuid.UUID) *Challenge {
	return &Challenge{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Language:    language,
		TestCases:   testCases,
		CreatedBy:   &createdBy,
		CreatedAt:   time.Now(),
	}
}

// Expired reports whether the challenge's global deadline has passed.
func (c *Challenge) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

// ChallengePatch carries the fields of an admin update; nil fields keep the
// stored value (COALESCE semantics).
type ChallengePatch struct {
	Title           *string
	Description     *string
	Language        *string
	TestCases       []TestCase
	ExpiresAt       *time.Time
	DurationMinutes *int
}

type ChallengeTable struct {
	ID              string
	Title           string
	Description     string
	Language        string
	TestCases       string
	CreatedBy       string
	CreatedAt       string
	ExpiresAt       string
	DurationMinutes string
}

func GetChallengeTable() ChallengeTable {
	return ChallengeTable{
		ID:              "id",
		Title:           "title",
		Description:     "description",
		Language:        "language",
		TestCases:       "testcases",
		CreatedBy:       "created_by",
		CreatedAt:       "created_at",
		ExpiresAt:       "expires_at",
		DurationMinutes: "duration_minutes",
	}
}

func (ChallengeTable) TableName() string {
	return "challenges"
}

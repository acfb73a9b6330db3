package attemptrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/domain"
)

const selectAttempt = `
	SELECT a.id, a.challenge_id, a.candidate_id, a.code, a.output,
		   a.score, a.passed, a.failed, a.execution_time_ms, a.status,
		   a.test_results, a.submitted_at,
		   u.user_name AS candidate_name, u.email AS candidate_email,
		   c.title AS challenge_title
	FROM attempts a
	JOIN users u ON a.candidate_id = u.id
	JOIN challenges c ON a.challenge_id = c.id
`

var _ secondary.AttemptRepository = (*AttemptRepository)(nil)

// AttemptRepository implements the AttemptRepository interface with
// PostgreSQL. Attempts are append-only: there is no update path.
type AttemptRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewAttemptRepository creates a new PostgreSQL attempt repository
func NewAttemptRepository(db *sqlx.DB, logger primary.Logger) *AttemptRepository {
	return &AttemptRepository{
		db:     db,
		logger: logger,
	}
}

// SaveAttempt appends one immutable attempt row
func (r *AttemptRepository) SaveAttempt(ctx context.Context, attempt *domain.Attempt) error {
	testResultsJSON, err := json.Marshal(attempt.TestResults)
	if err != nil {
		r.logger.Error("Failed to marshal test results", "error", err)
		return fmt.Errorf("failed to marshal test results: %w", err)
	}

	query := `
		INSERT INTO attempts (
			id, challenge_id, candidate_id, code, output,
			score, passed, failed, execution_time_ms, status,
			test_results, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		attempt.ID,
		attempt.ChallengeID,
		attempt.CandidateID,
		attempt.Code,
		attempt.Output,
		attempt.Score,
		attempt.Passed,
		attempt.Failed,
		attempt.ExecutionTimeMs,
		attempt.Status,
		testResultsJSON,
		attempt.SubmittedAt,
	)

	if err != nil {
		r.logger.Error("Failed to save attempt", "error", err)
		return fmt.Errorf("failed to save attempt: %w", err)
	}

	return nil
}

// GetAttempt retrieves an attempt by ID
func (r *AttemptRepository) GetAttempt(ctx context.Context, attemptID uuid.UUID) (*domain.Attempt, error) {
	row := r.db.QueryRowContext(ctx, selectAttempt+" WHERE a.id = $1", attemptID)
	attempt, err := scanAttempt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get attempt", "error", err)
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}

	return attempt, nil
}

// ListByChallenge retrieves all attempts for a challenge, newest first
func (r *AttemptRepository) ListByChallenge(ctx context.Context, challengeID uuid.UUID) ([]*domain.Attempt, error) {
	return r.queryAttempts(ctx, selectAttempt+" WHERE a.challenge_id = $1 ORDER BY a.submitted_at DESC", challengeID)
}

// ListByChallengeAndCandidate retrieves one candidate's attempts for a challenge
func (r *AttemptRepository) ListByChallengeAndCandidate(ctx context.Context, challengeID, candidateID uuid.UUID) ([]*domain.Attempt, error) {
	return r.queryAttempts(ctx, selectAttempt+" WHERE a.challenge_id = $1 AND a.candidate_id = $2 ORDER BY a.submitted_at DESC", challengeID, candidateID)
}

// ListByCandidate retrieves all attempts by a candidate across challenges
func (r *AttemptRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*domain.Attempt, error) {
	return r.queryAttempts(ctx, selectAttempt+" WHERE a.candidate_id = $1 ORDER BY a.submitted_at DESC", candidateID)
}

// ListAll retrieves every attempt on the platform
func (r *AttemptRepository) ListAll(ctx context.Context) ([]*domain.Attempt, error) {
	return r.queryAttempts(ctx, selectAttempt+" ORDER BY a.submitted_at DESC")
}

func (r *AttemptRepository) queryAttempts(ctx context.Context, query string, args ...interface{}) ([]*domain.Attempt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query attempts", "error", err)
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]*domain.Attempt, 0)
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			r.logger.Error("Failed to scan attempt row", "error", err)
			return nil, fmt.Errorf("failed to scan attempt row: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating attempt rows", "error", err)
		return nil, fmt.Errorf("error iterating attempt rows: %w", err)
	}

	return attempts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAttempt(row rowScanner) (*domain.Attempt, error) {
	var attempt domain.Attempt
	var code sql.NullString
	var testResultsJSON []byte
	var candidateEmail sql.NullString

	err := row.Scan(
		&attempt.ID,
		&attempt.ChallengeID,
		&attempt.CandidateID,
		&code,
		&attempt.Output,
		&attempt.Score,
		&attempt.Passed,
		&attempt.Failed,
		&attempt.ExecutionTimeMs,
		&attempt.Status,
		&testResultsJSON,
		&attempt.SubmittedAt,
		&attempt.CandidateName,
		&candidateEmail,
		&attempt.ChallengeTitle,
	)
	if err != nil {
		return nil, err
	}

	if code.Valid {
		attempt.Code = &code.String
	}
	if candidateEmail.Valid {
		attempt.CandidateEmail = candidateEmail.String
	}

	if err := json.Unmarshal(testResultsJSON, &attempt.TestResults); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test results: %w", err)
	}

	return &attempt, nil
}

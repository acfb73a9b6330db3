// package postgres contains PostgreSQL implementations of repositories
package challengerepository

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

var _ secondary.ChallengeRepository = (*ChallengeRepository)(nil)

// ChallengeRepository implements the ChallengeRepository interface with PostgreSQL
type ChallengeRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewChallengeRepository creates a new PostgreSQL challenge repository
func NewChallengeRepository(db *sqlx.DB, logger primary.Logger) *ChallengeRepository {
	return &ChallengeRepository{
		db:     db,
		logger: logger,
	}
}

// SaveChallenge inserts a new challenge
func (r *ChallengeRepository) SaveChallenge(ctx context.Context, challenge *domain.Challenge) error {
	testCasesJSON, err := json.Marshal(challenge.TestCases)
	if err != nil {
		r.logger.Error("Failed to marshal test cases", "error", err)
		return fmt.Errorf("failed to marshal test cases: %w", err)
	}

	query := `
		INSERT INTO challenges (
			id, title, description, language, testcases,
			created_by, created_at, expires_at, duration_minutes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		challenge.ID,
		challenge.Title,
		challenge.Description,
		challenge.Language,
		testCasesJSON,
		challenge.CreatedBy,
		challenge.CreatedAt,
		challenge.ExpiresAt,
		challenge.DurationMinutes,
	)

	if err != nil {
		r.logger.Error("Failed to save challenge", "error", err)
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ID
func (r *ChallengeRepository) GetChallenge(ctx context.Context, challengeID uuid.UUID) (*domain.Challenge, error) {
	query := `
		SELECT c.id, c.title, c.description, c.language, c.testcases,
			   c.created_by, c.created_at, c.expires_at, c.duration_minutes,
			   u.user_name AS created_by_name
		FROM challenges c
		LEFT JOIN users u ON c.created_by = u.id
		WHERE c.id = $1
	`

	row := r.db.QueryRowContext(ctx, query, challengeID)
	challenge, err := scanChallenge(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get challenge", "error", err)
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	return challenge, nil
}

// ListChallenges retrieves all challenges, newest first
func (r *ChallengeRepository) ListChallenges(ctx context.Context) ([]*domain.Challenge, error) {
	query := `
		SELECT c.id, c.title, c.description, c.language, c.testcases,
			   c.created_by, c.created_at, c.expires_at, c.duration_minutes,
			   u.user_name AS created_by_name
		FROM challenges c
		LEFT JOIN users u ON c.created_by = u.id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list challenges", "error", err)
		return nil, fmt.Errorf("failed to list challenges: %w", err)
	}
	defer rows.Close()

	challenges := make([]*domain.Challenge, 0)
	for rows.Next() {
		challenge, err := scanChallenge(rows)
		if err != nil {
			r.logger.Error("Failed to scan challenge row", "error", err)
			return nil, fmt.Errorf("failed to scan challenge row: %w", err)
		}
		challenges = append(challenges, challenge)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating challenge rows", "error", err)
		return nil, fmt.Errorf("error iterating challenge rows: %w", err)
	}

	return challenges, nil
}

// UpdateChallenge applies non-nil patch fields onto an existing challenge
func (r *ChallengeRepository) UpdateChallenge(ctx context.Context, challengeID uuid.UUID, patch *domain.ChallengePatch) (*domain.Challenge, error) {
	var testCasesJSON interface{}
	if patch.TestCases != nil {
		raw, err := json.Marshal(patch.TestCases)
		if err != nil {
			r.logger.Error("Failed to marshal test cases", "error", err)
			return nil, fmt.Errorf("failed to marshal test cases: %w", err)
		}
		testCasesJSON = raw
	}

	query := `
		UPDATE challenges
		SET title = COALESCE($1, title),
			description = COALESCE($2, description),
			language = COALESCE($3, language),
			testcases = COALESCE($4, testcases),
			expires_at = COALESCE($5, expires_at),
			duration_minutes = COALESCE($6, duration_minutes)
		WHERE id = $7
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		patch.Title,
		patch.Description,
		patch.Language,
		testCasesJSON,
		patch.ExpiresAt,
		patch.DurationMinutes,
		challengeID,
	)
	if err != nil {
		r.logger.Error("Failed to update challenge", "error", err)
		return nil, fmt.Errorf("failed to update challenge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return nil, fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, nil
	}

	return r.GetChallenge(ctx, challengeID)
}

// DeleteChallenge removes a challenge, reporting whether it existed
func (r *ChallengeRepository) DeleteChallenge(ctx context.Context, challengeID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM challenges WHERE id = $1", challengeID)
	if err != nil {
		r.logger.Error("Failed to delete challenge", "error", err)
		return false, fmt.Errorf("failed to delete challenge: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return false, fmt.Errorf("error checking rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChallenge(row rowScanner) (*domain.Challenge, error) {
	var challenge domain.Challenge
	var testCasesJSON []byte
	var createdBy uuid.NullUUID
	var createdByName sql.NullString
	var expiresAt sql.NullTime
	var durationMinutes sql.NullInt64

	err := row.Scan(
		&challenge.ID,
		&challenge.Title,
		&challenge.Description,
		&challenge.Language,
		&testCasesJSON,
		&createdBy,
		&challenge.CreatedAt,
		&expiresAt,
		&durationMinutes,
		&createdByName,
	)
	if err != nil {
		return nil, err
	}

	if createdBy.Valid {
		challenge.CreatedBy = &createdBy.UUID
	}
	if createdByName.Valid {
		challenge.CreatedByName = createdByName.String
	}
	if expiresAt.Valid {
		challenge.ExpiresAt = &expiresAt.Time
	}
	if durationMinutes.Valid {
		minutes := int(durationMinutes.Int64)
		challenge.DurationMinutes = &minutes
	}

	if err := json.Unmarshal(testCasesJSON, &challenge.TestCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal test cases: %w", err)
	}

	return &challenge, nil
}

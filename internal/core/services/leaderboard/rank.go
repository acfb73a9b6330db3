package leaderboard

import (
	"sort"

	"github.com/google/uuid"

	"gitlab.com/codetrial.net/internal/domain"
)

// MaxRows caps the leaderboard at a fixed display size. It is not a
// pagination cursor.
const MaxRows = 100

// Rank folds attempts for one challenge into one row per candidate.
//
// Each aggregate (best score, best passed count, best time, last submission)
// is taken independently over the candidate's attempts, so the row may mix
// values from different submissions; best_score can come from a slow attempt
// while best_time comes from a low-scoring one. That best-of-breed display is
// long-standing behavior and is kept deliberately.
//
// Ordering: best_score descending, then best_time ascending (rows without a
// time sort last), then earliest last_submission.
func Rank(attempts []*domain.Attempt) []domain.LeaderboardRow {
	byCandidate := make(map[uuid.UUID]*domain.LeaderboardRow)
	rows := make([]*domain.LeaderboardRow, 0)

	for _, a := range attempts {
		row, ok := byCandidate[a.CandidateID]
		if !ok {
			row = &domain.LeaderboardRow{
				CandidateID:    a.CandidateID,
				CandidateName:  a.CandidateName,
				CandidateEmail: a.CandidateEmail,
			}
			byCandidate[a.CandidateID] = row
			rows = append(rows, row)
		}

		row.TotalAttempts++
		if a.Score > row.BestScore {
			row.BestScore = a.Score
		}
		if a.Passed > row.BestPassed {
			row.BestPassed = a.Passed
		}
		if row.BestTimeMs == nil || a.ExecutionTimeMs < *row.BestTimeMs {
			t := a.ExecutionTimeMs
			row.BestTimeMs = &t
		}
		if a.SubmittedAt.After(row.LastSubmission) {
			row.LastSubmission = a.SubmittedAt
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].BestScore != rows[j].BestScore {
			return rows[i].BestScore > rows[j].BestScore
		}
		ti, tj := rows[i].BestTimeMs, rows[j].BestTimeMs
		switch {
		case ti != nil && tj != nil && *ti != *tj:
			return *ti < *tj
		case ti == nil && tj != nil:
			return false
		case ti != nil && tj == nil:
			return true
		}
		return rows[i].LastSubmission.Before(rows[j].LastSubmission)
	})

	if len(rows) > MaxRows {
		rows = rows[:MaxRows]
	}

	ranked := make([]domain.LeaderboardRow, len(rows))
	for i, row := range rows {
		ranked[i] = *row
	}
	return ranked
}

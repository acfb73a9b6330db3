package leaderboard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codetrial.net/internal/core/services/leaderboard"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

type fakeChallengeRepo struct {
	challenges []*domain.Challenge
}

func (f *fakeChallengeRepo) SaveChallenge(_ context.Context, c *domain.Challenge) error {
	f.challenges = append(f.challenges, c)
	return nil
}

func (f *fakeChallengeRepo) GetChallenge(_ context.Context, id uuid.UUID) (*domain.Challenge, error) {
	for _, c := range f.challenges {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeChallengeRepo) ListChallenges(_ context.Context) ([]*domain.Challenge, error) {
	return f.challenges, nil
}

func (f *fakeChallengeRepo) UpdateChallenge(_ context.Context, _ uuid.UUID, _ *domain.ChallengePatch) (*domain.Challenge, error) {
	return nil, nil
}

func (f *fakeChallengeRepo) DeleteChallenge(_ context.Context, _ uuid.UUID) (bool, error) {
	return false, nil
}

type fakeAttemptRepo struct {
	attempts []*domain.Attempt
}

func (f *fakeAttemptRepo) SaveAttempt(_ context.Context, a *domain.Attempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

func (f *fakeAttemptRepo) GetAttempt(_ context.Context, _ uuid.UUID) (*domain.Attempt, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) ListByChallenge(_ context.Context, challengeID uuid.UUID) ([]*domain.Attempt, error) {
	var out []*domain.Attempt
	for _, a := range f.attempts {
		if a.ChallengeID == challengeID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) ListByChallengeAndCandidate(_ context.Context, challengeID, candidateID uuid.UUID) ([]*domain.Attempt, error) {
	var out []*domain.Attempt
	for _, a := range f.attempts {
		if a.ChallengeID == challengeID && a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]*domain.Attempt, error) {
	var out []*domain.Attempt
	for _, a := range f.attempts {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttemptRepo) ListAll(_ context.Context) ([]*domain.Attempt, error) {
	return f.attempts, nil
}

type fakeUserPort struct {
	candidates int
}

func (f *fakeUserPort) Create(_ context.Context, _ *domain.Users) error { return nil }
func (f *fakeUserPort) Get(_ context.Context, _ uuid.UUID) (*domain.Users, error) {
	return nil, nil
}
func (f *fakeUserPort) GetByUserName(_ context.Context, _ string) (*domain.Users, error) {
	return nil, nil
}
func (f *fakeUserPort) GetByGoogleID(_ context.Context, _ string) (*domain.Users, error) {
	return nil, nil
}
func (f *fakeUserPort) CountByRole(_ context.Context, _ domain.Role) (int, error) {
	return f.candidates, nil
}

func TestChallengeLeaderboard(t *testing.T) {
	c := domain.NewChallenge("Add Two Numbers", "Sum the inputs", "python", nil, uuid.New())
	winner, runnerUp := uuid.New(), uuid.New()
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	attemptRepo := &fakeAttemptRepo{attempts: []*domain.Attempt{
		{ID: uuid.New(), ChallengeID: c.ID, CandidateID: runnerUp, Score: 60, SubmittedAt: base},
		{ID: uuid.New(), ChallengeID: c.ID, CandidateID: winner, Score: 100, SubmittedAt: base.Add(time.Minute)},
		// Attempt on another challenge must not leak in.
		{ID: uuid.New(), ChallengeID: uuid.New(), CandidateID: winner, Score: 10, SubmittedAt: base},
	}}
	svc := leaderboard.NewLeaderboardService(&fakeChallengeRepo{challenges: []*domain.Challenge{c}}, attemptRepo, &fakeUserPort{}, noopLogger{})

	challenge, rows, err := svc.ChallengeLeaderboard(context.Background(), c.ID)
	require.NoError(t, err)

	assert.Equal(t, c.ID, challenge.ID)
	require.Len(t, rows, 2)
	assert.Equal(t, winner, rows[0].CandidateID)
	assert.Equal(t, 100, rows[0].BestScore)
	assert.Equal(t, runnerUp, rows[1].CandidateID)

	_, _, err = svc.ChallengeLeaderboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, errs.ChallengeNotFound)
}

func TestPlatformStatistics(t *testing.T) {
	c1 := domain.NewChallenge("One", "d", "python", nil, uuid.New())
	c2 := domain.NewChallenge("Two", "d", "go", nil, uuid.New())
	alice, bob := uuid.New(), uuid.New()

	attemptRepo := &fakeAttemptRepo{attempts: []*domain.Attempt{
		{ID: uuid.New(), ChallengeID: c1.ID, CandidateID: alice, Score: 80},
		{ID: uuid.New(), ChallengeID: c1.ID, CandidateID: alice, Score: 100},
		{ID: uuid.New(), ChallengeID: c2.ID, CandidateID: bob, Score: 60},
	}}
	svc := leaderboard.NewLeaderboardService(
		&fakeChallengeRepo{challenges: []*domain.Challenge{c1, c2}},
		attemptRepo,
		&fakeUserPort{candidates: 7},
		noopLogger{},
	)

	stats, err := svc.PlatformStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalChallenges)
	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 2, stats.TotalCandidates)
	assert.Equal(t, 7, stats.TotalCandidatesRegistered)
	assert.InDelta(t, 80.0, stats.AverageScore, 0.001)
}

func TestCandidateStatsListsEveryChallenge(t *testing.T) {
	c1 := domain.NewChallenge("Attempted", "d", "python", nil, uuid.New())
	c2 := domain.NewChallenge("Untouched", "d", "go", nil, uuid.New())
	candidate := uuid.New()
	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	attemptRepo := &fakeAttemptRepo{attempts: []*domain.Attempt{
		{ID: uuid.New(), ChallengeID: c1.ID, CandidateID: candidate, Score: 50, Passed: 5, SubmittedAt: base},
		{ID: uuid.New(), ChallengeID: c1.ID, CandidateID: candidate, Score: 90, Passed: 9, SubmittedAt: base.Add(time.Hour)},
		{ID: uuid.New(), ChallengeID: c1.ID, CandidateID: uuid.New(), Score: 100, SubmittedAt: base},
	}}
	svc := leaderboard.NewLeaderboardService(
		&fakeChallengeRepo{challenges: []*domain.Challenge{c1, c2}},
		attemptRepo,
		&fakeUserPort{},
		noopLogger{},
	)

	stats, err := svc.CandidateStats(context.Background(), candidate)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalAttempts)
	assert.Equal(t, 1, stats.ChallengesAttempted)
	assert.Equal(t, 90, stats.BestScore)
	assert.InDelta(t, 70.0, stats.AverageScore, 0.001)

	require.Len(t, stats.Challenges, 2)
	byTitle := map[string]domain.CandidateChallengeStats{}
	for _, row := range stats.Challenges {
		byTitle[row.ChallengeTitle] = row
	}
	assert.Equal(t, 2, byTitle["Attempted"].AttemptCount)
	assert.Equal(t, 90, byTitle["Attempted"].BestScore)
	assert.Equal(t, 9, byTitle["Attempted"].BestPassed)
	assert.Zero(t, byTitle["Untouched"].AttemptCount)
	assert.Nil(t, byTitle["Untouched"].LastAttempt)
}

package challenge_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codetrial.net/internal/core/services/challenge"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{})  {}

type fakeChallengeRepo struct {
	challenges map[uuid.UUID]*domain.Challenge
}

func newFakeChallengeRepo() *fakeChallengeRepo {
	return &fakeChallengeRepo{challenges: make(map[uuid.UUID]*domain.Challenge)}
}

func (f *fakeChallengeRepo) SaveChallenge(_ context.Context, c *domain.Challenge) error {
	f.challenges[c.ID] = c
	return nil
}

func (f *fakeChallengeRepo) GetChallenge(_ context.Context, id uuid.UUID) (*domain.Challenge, error) {
	c, ok := f.challenges[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	clone.TestCases = append([]domain.TestCase(nil), c.TestCases...)
	return &clone, nil
}

func (f *fakeChallengeRepo) ListChallenges(_ context.Context) ([]*domain.Challenge, error) {
	out := make([]*domain.Challenge, 0, len(f.challenges))
	for id := range f.challenges {
		c, _ := f.GetChallenge(context.Background(), id)
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeChallengeRepo) UpdateChallenge(_ context.Context, id uuid.UUID, patch *domain.ChallengePatch) (*domain.Challenge, error) {
	c, ok := f.challenges[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.TestCases != nil {
		c.TestCases = patch.TestCases
	}
	return f.GetChallenge(context.Background(), id)
}

func (f *fakeChallengeRepo) DeleteChallenge(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.challenges[id]
	delete(f.challenges, id)
	return ok, nil
}

type recordingWindowStore struct {
	started int
}

func (r *recordingWindowStore) StartWindow(_ context.Context, _, _ uuid.UUID, startedAt time.Time, _ time.Duration) (time.Time, error) {
	r.started++
	return startedAt, nil
}

func (r *recordingWindowStore) GetWindowStart(_ context.Context, _, _ uuid.UUID) (*time.Time, error) {
	return nil, nil
}

var (
	adminActor     = domain.AuthPayload{UserID: uuid.New(), Username: "admin", Role: string(domain.RoleAdmin)}
	candidateActor = domain.AuthPayload{UserID: uuid.New(), Username: "candidate", Role: string(domain.RoleCandidate)}
)

func seededService(t *testing.T) (*challenge.ChallengeService, *fakeChallengeRepo, *recordingWindowStore, *domain.Challenge) {
	t.Helper()
	repo := newFakeChallengeRepo()
	windows := &recordingWindowStore{}
	svc := challenge.NewChallengeService(repo, windows, noopLogger{})

	created, err := svc.Create(context.Background(), adminActor, &domain.Challenge{
		Title:       "Add Two Numbers",
		Description: "Sum the inputs",
		Language:    "python",
		TestCases: []domain.TestCase{
			{Input: "5, 3", ExpectedOutput: "8", Description: "simple sum"},
		},
	})
	require.NoError(t, err)
	return svc, repo, windows, created
}

func TestCreateChallenge(t *testing.T) {
	svc, repo, _, created := seededService(t)

	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, adminActor.UserID, *created.CreatedBy)
	assert.Contains(t, repo.challenges, created.ID)

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := svc.Create(context.Background(), adminActor, &domain.Challenge{Title: "no body"})
		assert.ErrorIs(t, err, errs.ValidationFailed)
	})
}

func TestGetChallengeVisibility(t *testing.T) {
	svc, _, windows, created := seededService(t)

	t.Run("admin sees expected outputs", func(t *testing.T) {
		found, err := svc.Get(context.Background(), adminActor, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "8", found.TestCases[0].ExpectedOutput)
	})

	t.Run("candidate gets redacted test cases", func(t *testing.T) {
		found, err := svc.Get(context.Background(), candidateActor, created.ID)
		require.NoError(t, err)
		require.Len(t, found.TestCases, 1)
		assert.Empty(t, found.TestCases[0].ExpectedOutput)
		assert.Equal(t, "5, 3", found.TestCases[0].Input)
		assert.Equal(t, "simple sum", found.TestCases[0].Description)
	})

	t.Run("unknown challenge", func(t *testing.T) {
		_, err := svc.Get(context.Background(), candidateActor, uuid.New())
		assert.ErrorIs(t, err, errs.ChallengeNotFound)
	})

	// No duration on this challenge, so no window is opened.
	assert.Zero(t, windows.started)
}

func TestGetStartsWindowForTimedChallenge(t *testing.T) {
	svc, repo, windows, created := seededService(t)
	duration := 45
	repo.challenges[created.ID].DurationMinutes = &duration

	_, err := svc.Get(context.Background(), candidateActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, windows.started)

	// Admin reads never open a window.
	_, err = svc.Get(context.Background(), adminActor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, windows.started)
}

func TestListChallengesRedaction(t *testing.T) {
	svc, _, _, _ := seededService(t)

	adminView, err := svc.List(context.Background(), adminActor)
	require.NoError(t, err)
	require.Len(t, adminView, 1)
	assert.NotEmpty(t, adminView[0].TestCases[0].ExpectedOutput)

	candidateView, err := svc.List(context.Background(), candidateActor)
	require.NoError(t, err)
	require.Len(t, candidateView, 1)
	assert.Empty(t, candidateView[0].TestCases[0].ExpectedOutput)
}

func TestUpdateChallenge(t *testing.T) {
	svc, _, _, created := seededService(t)
	title := "Renamed"

	updated, err := svc.Update(context.Background(), created.ID, &domain.ChallengePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, created.Description, updated.Description)

	_, err = svc.Update(context.Background(), uuid.New(), &domain.ChallengePatch{Title: &title})
	assert.ErrorIs(t, err, errs.ChallengeNotFound)
}

func TestDeleteChallenge(t *testing.T) {
	svc, repo, _, created := seededService(t)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.challenges)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), errs.ChallengeNotFound)
}

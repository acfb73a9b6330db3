package auth_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codetrial.net/internal/adapter/crypto"
	"gitlab.com/codetrial.net/internal/config"
	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/services/auth"
	"gitlab.com/codetrial.net/internal/domain"
	"gitlab.com/codetrial.net/internal/static/errs"
)

type fakeUserPort struct {
	byUserName map[string]*domain.Users
	byGoogleID map[string]*domain.Users
	created    []*domain.Users
}

func newFakeUserPort() *fakeUserPort {
	return &fakeUserPort{
		byUserName: make(map[string]*domain.Users),
		byGoogleID: make(map[string]*domain.Users),
	}
}

func (f *fakeUserPort) Create(_ context.Context, user *domain.Users) error {
	f.created = append(f.created, user)
	f.byUserName[user.UserName] = user
	if user.GoogleID != nil {
		f.byGoogleID[*user.GoogleID] = user
	}
	return nil
}

func (f *fakeUserPort) Get(_ context.Context, _ uuid.UUID) (*domain.Users, error) {
	return nil, nil
}

func (f *fakeUserPort) GetByUserName(_ context.Context, userName string) (*domain.Users, error) {
	return f.byUserName[userName], nil
}

func (f *fakeUserPort) GetByGoogleID(_ context.Context, googleID string) (*domain.Users, error) {
	return f.byGoogleID[googleID], nil
}

func (f *fakeUserPort) CountByRole(_ context.Context, _ domain.Role) (int, error) {
	return 0, nil
}

func newJWTService() primary.JWTService {
	return crypto.NewJWTService(&config.JwtConfig{Secret: "test-secret"})
}

func seedLocalUser(t *testing.T, users *fakeUserPort, jwtSvc primary.JWTService, userName, password, role string) *domain.Users {
	t.Helper()
	hash, err := jwtSvc.EncryptPassword(context.Background(), password)
	require.NoError(t, err)
	u := &domain.Users{
		ID:           uuid.New(),
		UserName:     userName,
		PasswordHash: &hash,
		Role:         role,
		AuthProvider: string(domain.ProviderLocal),
	}
	users.byUserName[userName] = u
	return u
}

func TestLocalLogin(t *testing.T) {
	users := newFakeUserPort()
	jwtSvc := newJWTService()
	seeded := seedLocalUser(t, users, jwtSvc, "ada", "s3cret", string(domain.RoleAdmin))
	svc := auth.NewLocalAuthService(users, jwtSvc)

	t.Run("valid credentials issue a decodable token", func(t *testing.T) {
		password := "s3cret"
		token, err := svc.Login(context.Background(), &domain.Users{UserName: "ada", PasswordHash: &password})
		require.NoError(t, err)

		payload, err := jwtSvc.DecodeTokenPayload(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, payload.UserID)
		assert.Equal(t, "ada", payload.Username)
		assert.True(t, payload.IsAdmin())
	})

	t.Run("wrong password", func(t *testing.T) {
		password := "nope"
		_, err := svc.Login(context.Background(), &domain.Users{UserName: "ada", PasswordHash: &password})
		assert.ErrorIs(t, err, errs.InvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		password := "s3cret"
		_, err := svc.Login(context.Background(), &domain.Users{UserName: "ghost", PasswordHash: &password})
		assert.ErrorIs(t, err, errs.InvalidCredentials)
	})
}

func googleLoginUser(googleID, email string) *domain.Users {
	return &domain.Users{
		GoogleID:     &googleID,
		Email:        &email,
		AuthProvider: string(domain.ProviderGoogle),
	}
}

func TestGoogleLogin(t *testing.T) {
	users := newFakeUserPort()
	jwtSvc := newJWTService()
	svc := auth.NewGoogleAuthService(users, jwtSvc, &config.GGAuthConfig{AllowedDomain: "example.com"})

	t.Run("first sign-in provisions a candidate", func(t *testing.T) {
		token, err := svc.Login(context.Background(), googleLoginUser("gid-1", "ada@example.com"))
		require.NoError(t, err)

		require.Len(t, users.created, 1)
		created := users.created[0]
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "ada", created.UserName)
		assert.Equal(t, string(domain.RoleCandidate), created.Role)
		assert.Nil(t, created.PasswordHash)

		payload, err := jwtSvc.DecodeTokenPayload(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, payload.UserID)
		assert.False(t, payload.IsAdmin())
	})

	t.Run("returning user is not re-created", func(t *testing.T) {
		_, err := svc.Login(context.Background(), googleLoginUser("gid-1", "ada@example.com"))
		require.NoError(t, err)
		assert.Len(t, users.created, 1)
	})

	t.Run("foreign email domain is rejected", func(t *testing.T) {
		_, err := svc.Login(context.Background(), googleLoginUser("gid-2", "mallory@elsewhere.org"))
		assert.ErrorIs(t, err, errs.EmailDomainDenied)
	})

	t.Run("missing google id", func(t *testing.T) {
		email := "ada@example.com"
		_, err := svc.Login(context.Background(), &domain.Users{Email: &email, AuthProvider: string(domain.ProviderGoogle)})
		assert.ErrorIs(t, err, errs.InvalidCredentials)
	})
}

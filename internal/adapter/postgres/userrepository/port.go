package userrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codetrial.net/internal/core/ports/primary"
	"gitlab.com/codetrial.net/internal/core/ports/secondary"
	"gitlab.com/codetrial.net/internal/domain"
	querybuilder "gitlab.com/codetrial.net/internal/utils"
)

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(
		userTbl.ID, userTbl.UserName, userTbl.Email, userTbl.PasswordHash,
		userTbl.Role,
		userTbl.AuthProvider, userTbl.GoogleID,
	).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.UserName, user.Email, user.PasswordHash,
			user.Role,
			user.AuthProvider, user.GoogleID,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		u.logger.Error("failed to insert user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (u userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(userTbl.Columns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id).
		Build()

	return u.getOne(ctx, query, args)
}

func (u userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(userTbl.Columns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", userTbl.UserName), userName).
		Build()

	return u.getOne(ctx, query, args)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(userTbl.Columns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", userTbl.GoogleID), googleID).
		Build()

	return u.getOne(ctx, query, args)
}

func (u userRepo) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	userTbl := domain.GetUserTable()
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s.%s WHERE %s = $1", u.schema, userTbl.GetTableName(), userTbl.Role)

	var count int
	if err := u.db.GetContext(ctx, &count, query, string(role)); err != nil {
		u.logger.Error("failed to count users by role", "role", role, "error", err)
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}

	return count, nil
}

func (u userRepo) getOne(ctx context.Context, query string, args []interface{}) (*domain.Users, error) {
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

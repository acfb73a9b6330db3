package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCandidate Role = "candidate"
)

type Users struct {
	ID           uuid.UUID `db:"id"`
	UserName     string    `db:"user_name"`
	PasswordHash *string   `db:"password_hash"`
	Email        *string   `db:"email"`
	Role         string    `db:"role"`
	AuthProvider string    `db:"auth_provider"`
	GoogleID     *string   `db:"google_id"`
}

// IsAdmin reports whether the user can see hidden test data and all attempts.
func (u *Users) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

type UsersTable struct {
	ID           string
	UserName     string
	PasswordHash string
	Email        string
	Role         string
	AuthProvider string
	GoogleID     string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		UserName:     "user_name",
		PasswordHash: "password_hash",
		Email:        "email",
		Role:         "role",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}

func (t UsersTable) Columns() []string {
	return []string{t.ID, t.UserName, t.PasswordHash, t.Email, t.Role, t.AuthProvider, t.GoogleID}
}

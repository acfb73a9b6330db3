package querybuilder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	querybuilder "gitlab.com/codetrial.net/internal/utils"
)

func TestBuildSelect(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Select("id", "user_name").
		From("users").
		Where("google_id = ?", "gid-1").
		And("role = ?", "candidate").
		OrderBy("user_name", true).
		Build()

	assert.Equal(t, "SELECT id, user_name FROM public.users WHERE google_id = ? AND role = ? ORDER BY user_name ASC", query)
	assert.Equal(t, []interface{}{"gid-1", "candidate"}, args)
}

func TestBuildSelectWithJoin(t *testing.T) {
	query, _ := querybuilder.NewQueryBuilder("public").
		Select("a.id", "u.user_name").
		From("attempts a").
		Join(querybuilder.JoinTypeLeft, "users", "u", "u.id = a.candidate_id").
		Build()

	assert.Equal(t, "SELECT a.id, u.user_name FROM public.attempts a LEFT JOIN users u ON u.id = a.candidate_id", query)
}

func TestBuildInsert(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Insert("id", "user_name").
		Into("users").
		Values("u-1", "ada").
		Build()

	assert.Equal(t, "INSERT INTO public.users (id, user_name) VALUES (?, ?)", query)
	assert.Equal(t, []interface{}{"u-1", "ada"}, args)
}

func TestBuildInsertMultipleRows(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Insert("id", "user_name").
		Into("users").
		Values("u-1", "ada").
		Values("u-2", "grace").
		Build()

	assert.Equal(t, "INSERT INTO public.users (id, user_name) VALUES (?, ?), (?, ?)", query)
	assert.Len(t, args, 4)
}

func TestBuildInsertArityMismatch(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Insert("id", "user_name").
		Into("users").
		Values("only-one").
		Build()

	assert.Empty(t, query)
	assert.Nil(t, args)
}

func TestBuildUpdate(t *testing.T) {
	query, args := querybuilder.NewQueryBuilder("public").
		Update("users", querybuilder.UpdateData{"role": "admin"}).
		Where("id = ?", "u-1").
		Build()

	assert.Equal(t, "UPDATE public.users SET role = ? WHERE id = ?", query)
	assert.Equal(t, []interface{}{"admin", "u-1"}, args)
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
)

func TestCompanyRepository(t *testing.T) {
	users := NewUserRepository()
	r := NewCompanyRepository(users)
	ctx := context.Background()

	initech := r.Add(&entity.Company{Name: "Initech"})
	globex := r.Add(&entity.Company{Name: "Globex"})

	u := &entity.User{Credentials: entity.Credentials{Username: "alice"}, Active: true, CompanyIDs: []int64{initech}}
	require.NoError(t, users.Create(ctx, u))

	t.Run("get by id aggregates employees", func(t *testing.T) {
		c, err := r.GetByID(ctx, initech)
		require.NoError(t, err)
		assert.Equal(t, "Initech", c.Name)
		assert.Equal(t, []int64{u.ID}, c.EmployeeIDs)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := r.GetByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("list is ordered", func(t *testing.T) {
		all, err := r.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, initech, all[0].ID)
		assert.Equal(t, globex, all[1].ID)
	})

	t.Run("employees per company", func(t *testing.T) {
		emps, err := r.ListEmployees(ctx, initech)
		require.NoError(t, err)
		require.Len(t, emps, 1)
		assert.Equal(t, "alice", emps[0].Credentials.Username)

		emps, err = r.ListEmployees(ctx, globex)
		require.NoError(t, err)
		assert.Empty(t, emps)
	})
}

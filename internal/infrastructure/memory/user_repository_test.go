package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
)

func TestUserRepositoryCRUD(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{
		Credentials: entity.Credentials{Username: "alice", Password: "pw"},
		Active:      true,
		Status:      entity.StatusPending,
		CompanyIDs:  []int64{1},
	}
	require.NoError(t, r.Create(ctx, u))
	assert.Equal(t, int64(1), u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Credentials.Username)

	_, err = r.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got.Status = entity.StatusJoined
	require.NoError(t, r.Update(ctx, got))
	again, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusJoined, again.Status)
	assert.Equal(t, 1, r.UpdateCount())

	assert.ErrorIs(t, r.Update(ctx, &entity.User{ID: 99}), domain.ErrNotFound)
}

func TestGetActiveByUsernameSkipsInactive(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{Credentials: entity.Credentials{Username: "alice", Password: "pw"}, Active: true}
	require.NoError(t, r.Create(ctx, u))

	got, err := r.GetActiveByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	got.Active = false
	require.NoError(t, r.Update(ctx, got))

	_, err = r.GetActiveByUsername(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClonesAreIndependent(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	u := &entity.User{Credentials: entity.Credentials{Username: "alice"}, Active: true, CompanyIDs: []int64{1}}
	require.NoError(t, r.Create(ctx, u))

	got, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	got.CompanyIDs[0] = 42
	got.Credentials.Username = "mallory"

	fresh, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, fresh.CompanyIDs)
	assert.Equal(t, "alice", fresh.Credentials.Username)
}

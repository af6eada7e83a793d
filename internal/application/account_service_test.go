package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewbase/account-service/internal/application"
	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/internal/infrastructure/memory"
)

type fixture struct {
	svc       *application.AccountService
	users     *memory.UserRepository
	companies *memory.CompanyRepository
	companyID int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepository()
	companies := memory.NewCompanyRepository(users)
	companyID := companies.Add(&entity.Company{Name: "Initech"})
	svc := application.NewAccountService(users, companies, nil, nil, nil)
	return &fixture{svc: svc, users: users, companies: companies, companyID: companyID}
}

func (f *fixture) createUser(t *testing.T, username, password string, isAdmin bool) *entity.User {
	t.Helper()
	u, err := f.svc.CreateUser(context.Background(), f.companyID, application.UserRequest{
		Credentials: &application.CredentialsDto{Username: username, Password: password},
		Profile:     &application.ProfileDto{FirstName: "Test", LastName: "User", Email: username + "@initech.test"},
		IsAdmin:     isAdmin,
	})
	require.NoError(t, err)
	return u
}

func TestVerify(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "pass123", false)
	ctx := context.Background()

	t.Run("missing username", func(t *testing.T) {
		_, err := f.svc.Verify(ctx, entity.Credentials{Password: "pass123"})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := f.svc.Verify(ctx, entity.Credentials{Username: "alice"})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := f.svc.Verify(ctx, entity.Credentials{Username: "nobody", Password: "pass123"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Verify(ctx, entity.Credentials{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("valid credentials", func(t *testing.T) {
		u, err := f.svc.Verify(ctx, entity.Credentials{Username: "alice", Password: "pass123"})
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Credentials.Username)
	})
}

func TestVerifyHasNoSideEffects(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "pass123", false)
	ctx := context.Background()

	u, err := f.svc.Verify(ctx, entity.Credentials{Username: "alice", Password: "pass123"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, u.Status)
	assert.Zero(t, f.users.UpdateCount())
}

func TestCreateUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("missing credentials", func(t *testing.T) {
		_, err := f.svc.CreateUser(ctx, f.companyID, application.UserRequest{
			Profile: &application.ProfileDto{FirstName: "A", LastName: "B", Email: "a@b.test"},
		})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := f.svc.CreateUser(ctx, f.companyID, application.UserRequest{
			Credentials: &application.CredentialsDto{Username: "a", Password: "b"},
		})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("credentials checked before company", func(t *testing.T) {
		_, err := f.svc.CreateUser(ctx, 999, application.UserRequest{})
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := f.svc.CreateUser(ctx, 999, application.UserRequest{
			Credentials: &application.CredentialsDto{Username: "bob", Password: "pw"},
			Profile:     &application.ProfileDto{FirstName: "Bob", LastName: "Slydell", Email: "bob@initech.test"},
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("successful creation", func(t *testing.T) {
		u := f.createUser(t, "alice", "pass123", false)
		assert.NotZero(t, u.ID)
		assert.True(t, u.Active)
		assert.Equal(t, entity.StatusPending, u.Status)
		assert.Equal(t, []int64{f.companyID}, u.CompanyIDs)
	})
}

func TestLoginAdvancesPendingOnce(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "pass123", false)
	ctx := context.Background()
	creds := entity.Credentials{Username: "alice", Password: "pass123"}

	u, err := f.svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusJoined, u.Status)
	assert.Equal(t, 1, f.users.UpdateCount())

	// A second login observes JOINED and writes nothing.
	u, err = f.svc.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusJoined, u.Status)
	assert.Equal(t, 1, f.users.UpdateCount())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "alice", "pass123", false)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, entity.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrNotAuthorized)

	// Failed login leaves status untouched.
	stored, err := f.users.GetActiveByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	adminCreds := entity.Credentials{Username: "admin", Password: "adminpw"}

	t.Run("caller must exist", func(t *testing.T) {
		f := newFixture(t)
		target := f.createUser(t, "alice", "pass123", false)
		_, err := f.svc.DeleteUser(ctx, entity.Credentials{Username: "ghost", Password: "pw"}, f.companyID, target.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("caller must authenticate", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "admin", "adminpw", true)
		target := f.createUser(t, "alice", "pass123", false)
		_, err := f.svc.DeleteUser(ctx, entity.Credentials{Username: "admin", Password: "wrong"}, f.companyID, target.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})

	t.Run("caller must be admin", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "bob", "bobpw", false)
		target := f.createUser(t, "alice", "pass123", false)
		_, err := f.svc.DeleteUser(ctx, entity.Credentials{Username: "bob", Password: "bobpw"}, f.companyID, target.ID)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("target must exist", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "admin", "adminpw", true)
		_, err := f.svc.DeleteUser(ctx, adminCreds, f.companyID, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("target must belong to the company", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "admin", "adminpw", true)
		other := f.companies.Add(&entity.Company{Name: "Globex"})
		target := f.createUser(t, "alice", "pass123", false)
		_, err := f.svc.DeleteUser(ctx, adminCreds, other, target.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("deactivation is terminal", func(t *testing.T) {
		f := newFixture(t)
		f.createUser(t, "admin", "adminpw", true)
		target := f.createUser(t, "alice", "pass123", false)

		deleted, err := f.svc.DeleteUser(ctx, adminCreds, f.companyID, target.ID)
		require.NoError(t, err)
		assert.False(t, deleted.Active)

		// The deactivated user can no longer authenticate.
		_, err = f.svc.Login(ctx, entity.Credentials{Username: "alice", Password: "pass123"})
		assert.ErrorIs(t, err, domain.ErrNotFound)

		// But still resolves by id, inactive, with membership intact.
		byID, err := f.users.GetByID(ctx, target.ID)
		require.NoError(t, err)
		assert.False(t, byID.Active)
		assert.Equal(t, []int64{f.companyID}, byID.CompanyIDs)

		company, err := f.companies.GetByID(ctx, f.companyID)
		require.NoError(t, err)
		assert.Contains(t, company.EmployeeIDs, target.ID)
	})

	t.Run("deactivated admin cannot act", func(t *testing.T) {
		f := newFixture(t)
		admin := f.createUser(t, "admin", "adminpw", true)
		target := f.createUser(t, "alice", "pass123", false)

		_, err := f.svc.DeleteUser(ctx, adminCreds, f.companyID, admin.ID)
		require.NoError(t, err)

		_, err = f.svc.DeleteUser(ctx, adminCreds, f.companyID, target.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestIsAdmin(t *testing.T) {
	f := newFixture(t)
	admin := f.createUser(t, "admin", "adminpw", true)
	regular := f.createUser(t, "alice", "pass123", false)
	ctx := context.Background()

	ok, err := f.svc.IsAdmin(ctx, admin.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.IsAdmin(ctx, regular.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.IsAdmin(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVerifySelf(t *testing.T) {
	f := newFixture(t)
	alice := f.createUser(t, "alice", "pass123", false)
	bob := f.createUser(t, "bob", "bobpw", false)
	ctx := context.Background()
	aliceCreds := entity.Credentials{Username: "alice", Password: "pass123"}

	t.Run("matching id", func(t *testing.T) {
		u, err := f.svc.VerifySelf(ctx, aliceCreds, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.ID, u.ID)
	})

	t.Run("claiming another user's id", func(t *testing.T) {
		_, err := f.svc.VerifySelf(ctx, aliceCreds, bob.ID)
		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := f.svc.VerifySelf(ctx, aliceCreds, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("bad credentials", func(t *testing.T) {
		_, err := f.svc.VerifySelf(ctx, entity.Credentials{Username: "alice", Password: "nope"}, alice.ID)
		assert.ErrorIs(t, err, domain.ErrNotAuthorized)
	})
}

func TestListCompaniesAndEmployees(t *testing.T) {
	f := newFixture(t)
	globex := f.companies.Add(&entity.Company{Name: "Globex"})
	alice := f.createUser(t, "alice", "pass123", false)
	bob := f.createUser(t, "bob", "bobpw", false)
	ctx := context.Background()

	companies, err := f.svc.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Initech", companies[0].Name)

	employees, err := f.svc.CompanyEmployees(ctx, f.companyID)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, alice.ID, employees[0].ID)
	assert.Equal(t, bob.ID, employees[1].ID)

	employees, err = f.svc.CompanyEmployees(ctx, globex)
	require.NoError(t, err)
	assert.Empty(t, employees)

	_, err = f.svc.CompanyEmployees(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Full lifecycle: create, verify pending, first login joins, admin removes,
// authentication closed.
func TestAccountLifecycle(t *testing.T) {
	f := newFixture(t)
	f.createUser(t, "admin", "adminpw", true)
	ctx := context.Background()

	alice, err := f.svc.CreateUser(ctx, f.companyID, application.UserRequest{
		Credentials: &application.CredentialsDto{Username: "alice", Password: "secret"},
		Profile:     &application.ProfileDto{FirstName: "Alice", LastName: "Chen", Email: "alice@initech.test", Phone: "555-0100"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, alice.Status)

	ok, err := f.svc.IsAdmin(ctx, alice.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	logged, err := f.svc.Login(ctx, entity.Credentials{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusJoined, logged.Status)

	removed, err := f.svc.DeleteUser(ctx, entity.Credentials{Username: "admin", Password: "adminpw"}, f.companyID, alice.ID)
	require.NoError(t, err)
	assert.False(t, removed.Active)
	assert.Equal(t, entity.StatusJoined, removed.Status)

	_, err = f.svc.Login(ctx, entity.Credentials{Username: "alice", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

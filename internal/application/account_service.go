package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	repo "github.com/crewbase/account-service/internal/domain/repository"
	"github.com/crewbase/account-service/pkg/helpers"
)

// AccountService carries the credential-verification, authorization, and
// user-lifecycle logic. All operations are synchronous: a handful of store
// reads followed by at most one write, fail-fast on the first violated
// precondition, no mutation before the failing check.
type AccountService struct {
	Users     repo.UserRepository
	Companies repo.CompanyRepository
	Matcher   helpers.CredentialMatcher
	Logger    *logrus.Logger
	Directory *DirectoryService
}

func NewAccountService(users repo.UserRepository, companies repo.CompanyRepository, matcher helpers.CredentialMatcher, logger *logrus.Logger, directory *DirectoryService) *AccountService {
	if matcher == nil {
		matcher = helpers.PlainMatcher{}
	}
	return &AccountService{
		Users:     users,
		Companies: companies,
		Matcher:   matcher,
		Logger:    logger,
		Directory: directory,
	}
}

// findActiveUser resolves a user by username, requiring the active flag.
// Deactivated users are invisible here, which is what makes deactivation
// terminal for authentication.
func (s *AccountService) findActiveUser(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: the username provided does not belong to an active user", domain.ErrNotFound)
	}
	return u, nil
}

// Verify authenticates the supplied credentials against the stored ones and
// returns the matching active user. Pure verification, no side effects.
func (s *AccountService) Verify(ctx context.Context, creds entity.Credentials) (*entity.User, error) {
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("%w: a username and password are required", domain.ErrBadRequest)
	}
	u, err := s.findActiveUser(ctx, creds.Username)
	if err != nil {
		return nil, err
	}
	if u.Credentials.Username != creds.Username || !s.Matcher.Match(u.Credentials.Password, creds.Password) {
		return nil, fmt.Errorf("%w: the provided credentials are invalid", domain.ErrNotAuthorized)
	}
	return u, nil
}

// requireAdmin gates admin-only operations. Reported as a bad request, not a
// distinct forbidden kind.
func (s *AccountService) requireAdmin(u *entity.User) error {
	if !u.IsAdmin {
		return fmt.Errorf("%w: you are not an authorized user", domain.ErrBadRequest)
	}
	return nil
}

// requireMembership checks that the user belongs to the company.
func (s *AccountService) requireMembership(u *entity.User, companyID int64) error {
	if !u.MemberOf(companyID) {
		return fmt.Errorf("%w: the user is not located at this company", domain.ErrNotFound)
	}
	return nil
}

// CreateUser validates the creation payload, attaches the user to the target
// company, and persists it active and pending.
func (s *AccountService) CreateUser(ctx context.Context, companyID int64, req UserRequest) (*entity.User, error) {
	u := RequestToUser(req)

	if u.Credentials.Username == "" || u.Credentials.Password == "" {
		return nil, fmt.Errorf("%w: credentials with a username and password are required", domain.ErrBadRequest)
	}
	if u.Profile.FirstName == "" || u.Profile.LastName == "" || u.Profile.Email == "" {
		return nil, fmt.Errorf("%w: a profile with first name, last name, and email is required", domain.ErrBadRequest)
	}

	company, err := s.Companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: company %d was not found", domain.ErrNotFound, companyID)
	}

	stored, err := s.Matcher.Store(u.Credentials.Password)
	if err != nil {
		return nil, err
	}
	u.Credentials.Password = stored
	u.Active = true
	u.Status = entity.StatusPending
	u.CompanyIDs = []int64{company.ID}

	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":    u.ID,
			"username":   u.Credentials.Username,
			"company_id": company.ID,
		}).Info("user created")
	}
	_ = s.index(ctx, u)
	return u, nil
}

// Login verifies credentials and advances a pending user to joined. The
// first successful login is the only path that moves status; later logins
// observe JOINED and write nothing.
func (s *AccountService) Login(ctx context.Context, creds entity.Credentials) (*entity.User, error) {
	u, err := s.Verify(ctx, creds)
	if err != nil {
		return nil, err
	}
	if u.Status == entity.StatusPending {
		u.Status = entity.StatusJoined
		if err := s.Users.Update(ctx, u); err != nil {
			return nil, err
		}
		if s.Logger != nil {
			s.Logger.WithField("user_id", u.ID).Info("user joined on first login")
		}
		_ = s.index(ctx, u)
	}
	return u, nil
}

// DeleteUser deactivates the target user on behalf of an authenticated
// admin. Membership rows stay in place; only the active flag flips, which
// removes the user from username lookups and future authentication.
func (s *AccountService) DeleteUser(ctx context.Context, callerCreds entity.Credentials, companyID, targetID int64) (*entity.User, error) {
	caller, err := s.Verify(ctx, callerCreds)
	if err != nil {
		return nil, err
	}
	if err := s.requireAdmin(caller); err != nil {
		return nil, err
	}

	target, err := s.Users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("%w: user with id %d was not found", domain.ErrNotFound, targetID)
	}
	if err := s.requireMembership(target, companyID); err != nil {
		return nil, err
	}

	target.Active = false
	if err := s.Users.Update(ctx, target); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"user_id":    target.ID,
			"company_id": companyID,
			"deleted_by": caller.ID,
		}).Info("user deactivated")
	}
	_ = s.index(ctx, target)
	return target, nil
}

// IsAdmin resolves a user by id and reports the admin flag.
func (s *AccountService) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("%w: user with id %d was not found", domain.ErrNotFound, userID)
	}
	return u.IsAdmin, nil
}

// VerifySelf lets a user prove ownership of an id claim with credentials.
func (s *AccountService) VerifySelf(ctx context.Context, creds entity.Credentials, userID int64) (*entity.User, error) {
	acting, err := s.Verify(ctx, creds)
	if err != nil {
		return nil, err
	}
	claimed, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user with id %d was not found", domain.ErrNotFound, userID)
	}
	if claimed.ID != acting.ID {
		return nil, fmt.Errorf("%w: these credentials do not match the user with id %d", domain.ErrBadRequest, userID)
	}
	return claimed, nil
}

// ListCompanies returns all companies for the company selector.
func (s *AccountService) ListCompanies(ctx context.Context) ([]*entity.Company, error) {
	return s.Companies.List(ctx)
}

// CompanyEmployees returns the registry of users at a company.
func (s *AccountService) CompanyEmployees(ctx context.Context, companyID int64) ([]*entity.User, error) {
	if _, err := s.Companies.GetByID(ctx, companyID); err != nil {
		return nil, fmt.Errorf("%w: company %d was not found", domain.ErrNotFound, companyID)
	}
	return s.Companies.ListEmployees(ctx, companyID)
}

func (s *AccountService) index(ctx context.Context, u *entity.User) error {
	if s.Directory == nil {
		return nil
	}
	return s.Directory.IndexUser(ctx, u)
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/internal/domain/repository"
)

// UserRepository is an in-memory store used by tests and local development.
// It mirrors the postgres implementation's contract, including ErrNotFound
// semantics and the active-only username lookup.
type UserRepository struct {
	mu      sync.Mutex
	nextID  int64
	updates int
	users   map[int64]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, users: map[int64]*entity.User{}}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = r.nextID
	r.nextID++
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.users[u.ID] = cloneUser(u)
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

func (r *UserRepository) GetActiveByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Credentials.Username == username && u.Active {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = cloneUser(u)
	r.updates++
	return nil
}

// UpdateCount reports how many Update calls the store has seen. Tests use it
// to assert that repeated logins do not re-persist an already joined user.
func (r *UserRepository) UpdateCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.CompanyIDs = append([]int64(nil), u.CompanyIDs...)
	return &c
}

var _ repository.UserRepository = (*UserRepository)(nil)

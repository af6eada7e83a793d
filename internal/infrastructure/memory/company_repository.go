package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/internal/domain/repository"
)

// CompanyRepository is the in-memory companion of the postgres company
// store. Employee listings are derived from the user repository so both
// sides of the membership stay consistent.
type CompanyRepository struct {
	mu        sync.Mutex
	nextID    int64
	companies map[int64]*entity.Company
	users     *UserRepository
}

func NewCompanyRepository(users *UserRepository) *CompanyRepository {
	return &CompanyRepository{nextID: 1, companies: map[int64]*entity.Company{}, users: users}
}

// Add seeds a company and returns its assigned id.
func (r *CompanyRepository) Add(c *entity.Company) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.companies[c.ID] = c
	return c.ID
}

func (r *CompanyRepository) GetByID(_ context.Context, id int64) (*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *c
	out.EmployeeIDs = r.employeeIDs(id)
	return &out, nil
}

func (r *CompanyRepository) List(_ context.Context) ([]*entity.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CompanyRepository) ListEmployees(ctx context.Context, companyID int64) ([]*entity.User, error) {
	r.mu.Lock()
	ids := r.employeeIDs(companyID)
	r.mu.Unlock()

	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		u, err := r.users.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (r *CompanyRepository) employeeIDs(companyID int64) []int64 {
	if r.users == nil {
		return nil
	}
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	var ids []int64
	for _, u := range r.users.users {
		if u.MemberOf(companyID) {
			ids = append(ids, u.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

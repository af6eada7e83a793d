package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/internal/domain/repository"
)

type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*entity.Company, error) {
	c := &entity.Company{}
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
		       COALESCE(array_agg(uc.user_id) FILTER (WHERE uc.user_id IS NOT NULL), '{}')
		FROM companies c
		LEFT JOIN user_companies uc ON uc.company_id = c.id
		WHERE c.id = $1
		GROUP BY c.id
	`, id)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &c.EmployeeIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entity.Company, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM companies
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Company
	for rows.Next() {
		c := &entity.Company{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CompanyRepository) ListEmployees(ctx context.Context, companyID int64) ([]*entity.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+userColumns+`
		FROM users u
		JOIN user_companies m ON m.user_id = u.id AND m.company_id = $1
		LEFT JOIN user_companies uc ON uc.user_id = u.id
		GROUP BY u.id
		ORDER BY u.id
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

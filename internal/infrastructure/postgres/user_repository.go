package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/crewbase/account-service/internal/domain"
	"github.com/crewbase/account-service/internal/domain/entity"
	"github.com/crewbase/account-service/internal/domain/repository"
)

const userColumns = `
	u.id, u.username, u.password, u.first_name, u.last_name, u.email, u.phone,
	u.active, u.status, u.is_admin, u.created_at, u.updated_at,
	COALESCE(array_agg(uc.company_id) FILTER (WHERE uc.company_id IS NOT NULL), '{}')
`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user and its membership rows in one transaction.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO users (username, password, first_name, last_name, email, phone, active, status, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, u.Credentials.Username, u.Credentials.Password,
		u.Profile.FirstName, u.Profile.LastName, u.Profile.Email, u.Profile.Phone,
		u.Active, string(u.Status), u.IsAdmin)
	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return err
	}

	for _, companyID := range u.CompanyIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO user_companies (user_id, company_id) VALUES ($1, $2)
		`, u.ID, companyID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN user_companies uc ON uc.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetActiveByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users u
		LEFT JOIN user_companies uc ON uc.user_id = u.id
		WHERE u.username = $1 AND u.active
		GROUP BY u.id
	`, username)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET password = $1, first_name = $2, last_name = $3, email = $4, phone = $5,
		    active = $6, status = $7, is_admin = $8, updated_at = $9
		WHERE id = $10
	`, u.Credentials.Password,
		u.Profile.FirstName, u.Profile.LastName, u.Profile.Email, u.Profile.Phone,
		u.Active, string(u.Status), u.IsAdmin, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var status string
	if err := row.Scan(&u.ID, &u.Credentials.Username, &u.Credentials.Password,
		&u.Profile.FirstName, &u.Profile.LastName, &u.Profile.Email, &u.Profile.Phone,
		&u.Active, &status, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt, &u.CompanyIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.Status = entity.Status(status)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)

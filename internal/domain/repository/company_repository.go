package repository

import (
	"context"

	"github.com/crewbase/account-service/internal/domain/entity"
)

// CompanyRepository defines the read-side persistence contract for companies.
type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	List(ctx context.Context) ([]*entity.Company, error)
	// ListEmployees returns all users belonging to the company, including
	// inactive ones. The registry view decides what to display.
	ListEmployees(ctx context.Context, companyID int64) ([]*entity.User, error)
}

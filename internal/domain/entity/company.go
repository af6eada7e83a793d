package entity

import "time"

// Company groups users into an organisation. EmployeeIDs is the mirrored
// side of User.CompanyIDs; both are derived from the same membership rows,
// so neither side owns the other.
type Company struct {
	ID          int64
	Name        string
	Description string
	EmployeeIDs []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

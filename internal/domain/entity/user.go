package entity

import "time"

// Status is a user's onboarding phase. A user is created PENDING and becomes
// JOINED on their first successful login; the transition never reverts.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusJoined  Status = "JOINED"
)

// Credentials is the username/password pair identifying a user. Equality is
// value-based and is the authentication mechanism of this service; whether
// Password holds plaintext or a hash is decided by the configured matcher.
type Credentials struct {
	Username string
	Password string
}

func (c Credentials) Equal(other Credentials) bool {
	return c.Username == other.Username && c.Password == other.Password
}

// Profile holds the personal data collected at account creation. FirstName,
// LastName, and Email are required; Phone is optional.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// User is the aggregate root of the account domain. Company membership is
// kept as a set of company ids rather than embedded Company values; the
// companies side mirrors it as EmployeeIDs.
type User struct {
	ID          int64
	Credentials Credentials
	Profile     Profile
	Active      bool
	Status      Status
	IsAdmin     bool
	CompanyIDs  []int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MemberOf reports whether the user belongs to the given company.
func (u *User) MemberOf(companyID int64) bool {
	for _, id := range u.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}

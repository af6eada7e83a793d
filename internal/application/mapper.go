package application

import "github.com/crewbase/account-service/internal/domain/entity"

// DTOs exchanged with the HTTP layer, plus the pure mapping functions between
// them and the domain entities. Mapping is structural only; validation of
// missing fields belongs to the service operations.

type CredentialsDto struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type ProfileDto struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// UserRequest is the inbound account-creation payload. Credentials and
// Profile are pointers so an omitted object maps to zero-valued fields,
// which CreateUser rejects.
type UserRequest struct {
	Credentials *CredentialsDto `json:"credentials"`
	Profile     *ProfileDto     `json:"profile"`
	IsAdmin     bool            `json:"is_admin"`
}

// FullUserView is the complete projection returned by the lifecycle
// operations, credentials included.
type FullUserView struct {
	ID          int64          `json:"id"`
	Credentials CredentialsDto `json:"credentials"`
	Profile     ProfileDto     `json:"profile"`
	Active      bool           `json:"active"`
	Status      string         `json:"status"`
	IsAdmin     bool           `json:"is_admin"`
	CompanyIDs  []int64        `json:"company_ids"`
}

// BasicUserView is the shareable projection: it carries the username but
// never the password.
type BasicUserView struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Profile  ProfileDto `json:"profile"`
	Active   bool       `json:"active"`
	Status   string     `json:"status"`
	IsAdmin  bool       `json:"is_admin"`
}

type CompanyView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CredentialsToEntity converts the wire credentials to the domain value.
func CredentialsToEntity(dto CredentialsDto) entity.Credentials {
	return entity.Credentials{Username: dto.Username, Password: dto.Password}
}

// RequestToUser converts a creation payload to a user entity. Omitted
// credentials or profile objects yield zero-valued fields.
func RequestToUser(req UserRequest) *entity.User {
	u := &entity.User{IsAdmin: req.IsAdmin}
	if req.Credentials != nil {
		u.Credentials = CredentialsToEntity(*req.Credentials)
	}
	if req.Profile != nil {
		u.Profile = entity.Profile{
			FirstName: req.Profile.FirstName,
			LastName:  req.Profile.LastName,
			Email:     req.Profile.Email,
			Phone:     req.Profile.Phone,
		}
	}
	return u
}

func profileToDto(p entity.Profile) ProfileDto {
	return ProfileDto{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email, Phone: p.Phone}
}

// ToFullUserView projects a user including credentials.
func ToFullUserView(u *entity.User) FullUserView {
	ids := u.CompanyIDs
	if ids == nil {
		ids = []int64{}
	}
	return FullUserView{
		ID:          u.ID,
		Credentials: CredentialsDto{Username: u.Credentials.Username, Password: u.Credentials.Password},
		Profile:     profileToDto(u.Profile),
		Active:      u.Active,
		Status:      string(u.Status),
		IsAdmin:     u.IsAdmin,
		CompanyIDs:  ids,
	}
}

// ToBasicUserView projects a user without the password.
func ToBasicUserView(u *entity.User) BasicUserView {
	return BasicUserView{
		ID:       u.ID,
		Username: u.Credentials.Username,
		Profile:  profileToDto(u.Profile),
		Active:   u.Active,
		Status:   string(u.Status),
		IsAdmin:  u.IsAdmin,
	}
}

func ToCompanyView(c *entity.Company) CompanyView {
	return CompanyView{ID: c.ID, Name: c.Name, Description: c.Description}
}

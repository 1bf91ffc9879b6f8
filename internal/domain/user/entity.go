package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR/back-office - full access
	RoleEmployee Role = "employee" // Regular clinic staff
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	EmployeeID      *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsAdmin checks if user holds the back-office role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanReview checks if user can approve or reject requests.
func (u *User) CanReview() bool {
	return u.IsAdmin()
}

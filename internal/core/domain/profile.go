package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is the role-bearing record associated one-to-one with an auth user.
// Its ID equals the auth user id.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the two supported roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

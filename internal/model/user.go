package model

// User is a team member account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User statuses. Self-registered accounts start as pending and must be
// activated by an admin before they can log in.
const (
	UserStatusPending = "pending"
	UserStatusActive  = "active"
)

// IsAdmin reports whether the user may manage the catalog and accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package domain

import "time"

// Identity is the verified content of a bearer token.
type Identity struct {
	SubjectID string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the identity carries the admin role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// AuthToken is an issued bearer token and its expiry.
type AuthToken struct {
	Token     string
	ExpiresAt time.Time
}

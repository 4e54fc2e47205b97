package domain

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// NormalizeRole accepts both the prefixed spelling the login endpoint issues
// and the bare enum names the admin endpoints return.
func NormalizeRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN", "ROLE_ADMIN":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// Session is the client-held record of the authenticated identity.
type Session struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func (s Session) Validate() error {
	if s.UserID == 0 {
		return fmt.Errorf("session user id is required")
	}
	if strings.TrimSpace(s.Email) == "" {
		return fmt.Errorf("session email is required")
	}
	return nil
}

// Credentials is the durable pair: an opaque bearer token plus the identity
// it was issued for. The two are stored together and cleared together.
type Credentials struct {
	Token   string
	Session Session
}

func (c Credentials) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("token is required")
	}
	return c.Session.Validate()
}

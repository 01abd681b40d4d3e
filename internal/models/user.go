package models

import "time"

const (
	RoleAdmin     = "admin"
	RoleProvider  = "provider"
	RoleReception = "reception"
	RoleClient    = "client"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`

	CreatedAt time.Time `json:"created_at"`
}

// Session is the client-held authentication state. Token is the only
// credential that survives a restart; everything else is re-fetched from
// GET /user.
type Session struct {
	UserID string
	Name   string
	Email  string
	Role   string
	Token  string
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.UserID != ""
}

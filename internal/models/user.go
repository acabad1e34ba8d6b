package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AdminUsername is the account created by the administrator bootstrap.
const AdminUsername = "admin"

type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Password      string    `json:"-"`
	Email         string    `json:"email,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	TotalLikes    int       `json:"totalLikes"`
	TotalComments int       `json:"totalComments"`
	RegisteredAt  time.Time `json:"registeredAt"`
	Role          Role      `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Session identifies the acting user of an operation.
type Session struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func SessionOf(u User) Session {
	return Session{UserID: u.ID, Username: u.Username, Role: u.Role}
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

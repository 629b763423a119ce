package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Lastname      string    `json:"lastname"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Active        bool      `json:"active"`
	RoleID        int       `json:"role_id"`
	UpstreamToken *string   `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (u *User) HasUpstreamToken() bool {
	return u.UpstreamToken != nil && *u.UpstreamToken != ""
}

type Claims struct {
	UserID         int
	UserName       string
	UserLastname   string
	UserEmail      string
	UserActive     bool
	UserRoleID     int
	UpstreamLinked bool // indica ao front se a conta de anúncios já foi vinculada
	jwt.RegisteredClaims
}

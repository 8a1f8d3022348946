package ports

import (
	"context"
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

// User is an operator account. The password hash never leaves the
// backend; the session token does, by design (clients echo it back on
// check-token).
type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	EmployeeID      string     `json:"employeeId"`
	PasswordHash    string     `json:"-"`
	Role            int        `json:"role"`
	Token           *string    `json:"token"`
	TokenExpireTime *time.Time `json:"tokenExpireTime"`
}

// UserSummary is the (loginId, name) projection for picker lists.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserRepository interface {
	FindByEmployeeID(ctx context.Context, employeeID string) (User, error)
	SetToken(ctx context.Context, userID int64, token string, expireAt time.Time) error
	ListSummaries(ctx context.Context) ([]UserSummary, error)
	CreateUser(ctx context.Context, user User) (User, error)
}

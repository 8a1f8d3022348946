package auth

import (
	"errors"
	"time"

	"crimpqc/internal/bootstrap/config"
	"crimpqc/internal/ports"
)

// ErrUnauthenticated covers every authentication rejection. Unknown user
// and wrong credentials are reported identically so callers cannot
// enumerate accounts.
var ErrUnauthenticated = errors.New("authentication rejected")

type Service struct {
	users    ports.UserRepository
	uow      ports.UnitOfWork
	tokenTTL time.Duration
	now      func() time.Time
}

func NewService(users ports.UserRepository, uow ports.UnitOfWork, cfg config.Config) *Service {
	return &Service{
		users:    users,
		uow:      uow,
		tokenTTL: cfg.Auth.TokenTTL,
		now:      time.Now,
	}
}

type CreateUserInput struct {
	Name       string
	EmployeeID string
	Password   string
	Role       int
}

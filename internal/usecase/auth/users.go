package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// ListUserSummaries returns (employeeId, name) for all users, ordered by
// name.
func (s *Service) ListUserSummaries(ctx context.Context) ([]ports.UserSummary, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.users == nil {
		return nil, errors.New("user repository is required")
	}

	return s.users.ListSummaries(ctx)
}

// CreateUser seeds an account out-of-band (admin CLI only, not exposed
// over HTTP). The password is stored as a bcrypt hash.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (ports.User, error) {
	if ctx == nil {
		return ports.User{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.User{}, errs.Wrap(err, "check context")
	}
	if s.users == nil {
		return ports.User{}, errors.New("user repository is required")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ports.User{}, errors.New("name is required")
	}
	employeeID := strings.TrimSpace(input.EmployeeID)
	if employeeID == "" {
		return ports.User{}, errors.New("employee id is required")
	}
	if input.Password == "" {
		return ports.User{}, errors.New("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.User{}, errs.Wrap(err, "hash password")
	}

	return s.users.CreateUser(ctx, ports.User{
		Name:         name,
		EmployeeID:   employeeID,
		PasswordHash: string(hash),
		Role:         input.Role,
	})
}

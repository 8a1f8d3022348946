package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

// Login verifies credentials and rotates the session token. Only the
// most recent token is valid: a second login invalidates the first, on
// purpose ("last login wins").
func (s *Service) Login(ctx context.Context, employeeID string, password string) (ports.User, error) {
	if ctx == nil {
		return ports.User{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.User{}, errs.Wrap(err, "check context")
	}
	if s.users == nil || s.uow == nil {
		return ports.User{}, errors.New("user repository and unit of work are required")
	}

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || password == "" {
		return ports.User{}, ErrUnauthenticated
	}

	var user ports.User
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		found, err := s.users.FindByEmployeeID(txCtx, employeeID)
		if err != nil {
			if errors.Is(err, ports.ErrUserNotFound) {
				return ErrUnauthenticated
			}
			return err
		}
		if bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
			return ErrUnauthenticated
		}

		token := newToken()
		expireAt := s.now().Add(s.tokenTTL)
		if err := s.users.SetToken(txCtx, found.ID, token, expireAt); err != nil {
			return err
		}

		found.Token = &token
		found.TokenExpireTime = &expireAt
		user = found
		return nil
	}); err != nil {
		return ports.User{}, err
	}

	return user, nil
}

// ValidateToken checks that the presented token is the stored one and has
// not expired. Read-only: it never extends the expiry.
func (s *Service) ValidateToken(ctx context.Context, employeeID string, token string) (ports.User, error) {
	if ctx == nil {
		return ports.User{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.User{}, errs.Wrap(err, "check context")
	}
	if s.users == nil {
		return ports.User{}, errors.New("user repository is required")
	}

	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" || token == "" {
		return ports.User{}, ErrUnauthenticated
	}

	user, err := s.users.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, ports.ErrUserNotFound) {
			return ports.User{}, ErrUnauthenticated
		}
		return ports.User{}, err
	}

	if user.Token == nil || *user.Token != token {
		return ports.User{}, ErrUnauthenticated
	}
	if user.TokenExpireTime == nil || !user.TokenExpireTime.After(s.now()) {
		return ports.User{}, ErrUnauthenticated
	}
	return user, nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

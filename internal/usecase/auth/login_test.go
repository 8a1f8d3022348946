package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"crimpqc/internal/bootstrap/config"
	"crimpqc/internal/infrastructure/persistence/sqlite/model"
	"crimpqc/internal/infrastructure/persistence/sqlite/repository"
	"crimpqc/internal/infrastructure/persistence/sqlite/uow"
)

func setupService(t *testing.T) *Service {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "crimpqc.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	if err := db.AutoMigrate(&model.User{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	cfg := config.Config{}
	cfg.Auth.TokenTTL = 7 * 24 * time.Hour
	return NewService(repository.NewUserRepository(db), uow.NewUnitOfWork(db), cfg)
}

func seedUser(t *testing.T, svc *Service) {
	t.Helper()
	if _, err := svc.CreateUser(context.Background(), CreateUserInput{
		Name:       "Alice",
		EmployeeID: "E100",
		Password:   "secret",
		Role:       1,
	}); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
}

func TestLoginIssuesToken(t *testing.T) {
	svc := setupService(t)
	seedUser(t, svc)
	ctx := context.Background()

	start := time.Now()
	user, err := svc.Login(ctx, "E100", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if user.Token == nil || len(*user.Token) != 32 {
		t.Fatalf("token = %v, want 32-char hex", user.Token)
	}
	if user.TokenExpireTime == nil {
		t.Fatal("token expire time not set")
	}
	ttl := user.TokenExpireTime.Sub(start)
	if ttl < 7*24*time.Hour-time.Minute || ttl > 7*24*time.Hour+time.Minute {
		t.Fatalf("token ttl = %v, want about 7 days", ttl)
	}
	if user.PasswordHash == "secret" {
		t.Fatal("password stored in plaintext")
	}

	if _, err := svc.ValidateToken(ctx, "E100", *user.Token); err != nil {
		t.Fatalf("ValidateToken() after login error = %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := setupService(t)
	seedUser(t, svc)
	ctx := context.Background()

	cases := []struct {
		name       string
		employeeID string
		password   string
	}{
		{"wrong password", "E100", "nope"},
		{"unknown user", "E999", "secret"},
		{"blank employee id", "  ", "secret"},
		{"blank password", "E100", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(ctx, tc.employeeID, tc.password); !errors.Is(err, ErrUnauthenticated) {
			t.Errorf("%s: Login() error = %v, want ErrUnauthenticated", tc.name, err)
		}
	}
}

func TestSecondLoginInvalidatesFirstToken(t *testing.T) {
	svc := setupService(t)
	seedUser(t, svc)
	ctx := context.Background()

	first, err := svc.Login(ctx, "E100", "secret")
	if err != nil {
		t.Fatalf("first Login() error = %v", err)
	}
	second, err := svc.Login(ctx, "E100", "secret")
	if err != nil {
		t.Fatalf("second Login() error = %v", err)
	}
	if *first.Token == *second.Token {
		t.Fatal("login did not rotate the token")
	}

	if _, err := svc.ValidateToken(ctx, "E100", *first.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(old token) error = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.ValidateToken(ctx, "E100", *second.Token); err != nil {
		t.Fatalf("ValidateToken(new token) error = %v", err)
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	svc := setupService(t)
	seedUser(t, svc)
	ctx := context.Background()

	user, err := svc.Login(ctx, "E100", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	svc.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }
	if _, err := svc.ValidateToken(ctx, "E100", *user.Token); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(expired) error = %v, want ErrUnauthenticated", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(ctx, "E100", *user.Token); err != nil {
		t.Fatalf("ValidateToken(fresh) error = %v", err)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	svc := setupService(t)
	seedUser(t, svc)
	ctx := context.Background()

	// No login yet: stored token is nil.
	if _, err := svc.ValidateToken(ctx, "E100", "whatever"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(no session) error = %v, want ErrUnauthenticated", err)
	}

	if _, err := svc.Login(ctx, "E100", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if _, err := svc.ValidateToken(ctx, "E100", "not-the-token"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(wrong token) error = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.ValidateToken(ctx, "E999", "whatever"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(unknown user) error = %v, want ErrUnauthenticated", err)
	}
	if _, err := svc.ValidateToken(ctx, "E100", ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("ValidateToken(blank token) error = %v, want ErrUnauthenticated", err)
	}
}

func TestListUserSummaries(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	for _, in := range []CreateUserInput{
		{Name: "Bob", EmployeeID: "E200", Password: "p"},
		{Name: "Alice", EmployeeID: "E100", Password: "p"},
	} {
		if _, err := svc.CreateUser(ctx, in); err != nil {
			t.Fatalf("CreateUser(%s) error = %v", in.Name, err)
		}
	}

	summaries, err := svc.ListUserSummaries(ctx)
	if err != nil {
		t.Fatalf("ListUserSummaries() error = %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("ListUserSummaries() len = %d", len(summaries))
	}
	if summaries[0].ID != "E100" || summaries[0].Name != "Alice" {
		t.Fatalf("ListUserSummaries()[0] = %+v", summaries[0])
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	cases := []CreateUserInput{
		{Name: "", EmployeeID: "E1", Password: "p"},
		{Name: "A", EmployeeID: "", Password: "p"},
		{Name: "A", EmployeeID: "E1", Password: ""},
	}
	for i, in := range cases {
		if _, err := svc.CreateUser(ctx, in); err == nil {
			t.Errorf("case %d: CreateUser() accepted invalid input %+v", i, in)
		}
	}
}

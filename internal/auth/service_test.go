package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"
)

func signClaims(claims *JWTClaims, key []byte) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
}

func newTestService(t *testing.T, config Config) *Service {
	t.Helper()

	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewService(config, newUserRepository(db), zaptest.NewLogger(t))
}

func testConfig() Config {
	return Config{
		SecretKey: []byte("test-secret"),
		Issuer:    "gitscope-test",
	}
}

func TestService_CreateUser(t *testing.T) {
	service := newTestService(t, testConfig())

	user, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleAdmin},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if user.Name != "alice" || user.Role != UserRoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
	if user.PasswordHash == "secret" || user.PasswordHash == "" {
		t.Fatal("password was not hashed")
	}

	_, err = service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleViewer},
		Password: "other",
	})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	service := newTestService(t, testConfig())

	_, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleViewer},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, token, err := service.Authenticate(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Name != "alice" || token == "" {
		t.Fatalf("unexpected result: user=%+v token=%q", user, token)
	}

	if _, _, err := service.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, _, err := service.Authenticate(context.Background(), "nobody", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_ValidateJWT(t *testing.T) {
	service := newTestService(t, testConfig())

	user, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleAdmin},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	token, err := service.GenerateJWT(context.Background(), user)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	claims, err := service.ValidateJWT(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != user.ID.String() || claims.Role != UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "gitscope-test" {
		t.Fatalf("unexpected issuer %q", claims.Issuer)
	}
}

func TestService_ValidateJWT_WrongKey(t *testing.T) {
	service := newTestService(t, testConfig())

	user, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleViewer},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	token, err := service.GenerateJWT(context.Background(), user)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	other := newTestService(t, Config{SecretKey: []byte("other-secret"), Issuer: "gitscope-test"})
	if _, err := other.ValidateJWT(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestService_ValidateJWT_Expired(t *testing.T) {
	config := testConfig()
	service := newTestService(t, config)

	user, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleViewer},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	claims := NewJWTClaims(user.ID.String(), user.Role, config.Issuer, time.Now().Add(-time.Minute))
	token, err := signClaims(claims, config.SecretKey)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := service.ValidateJWT(context.Background(), token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestService_RefreshJWT(t *testing.T) {
	service := newTestService(t, testConfig())

	user, err := service.CreateUser(context.Background(), UserDraft{
		UserBase: UserBase{Name: "alice", Role: UserRoleAdmin},
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	token, err := service.GenerateJWT(context.Background(), user)
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	refreshed, err := service.RefreshJWT(context.Background(), token)
	if err != nil {
		t.Fatalf("RefreshJWT failed: %v", err)
	}

	claims, err := service.ValidateJWT(context.Background(), refreshed)
	if err != nil {
		t.Fatalf("ValidateJWT failed: %v", err)
	}
	if claims.UserID != user.ID.String() || claims.Role != UserRoleAdmin {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestService_Bootstrap(t *testing.T) {
	config := testConfig()
	config.AdminUser = "admin"
	config.AdminPassword = "s3cret"

	service := newTestService(t, config)

	if err := service.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}

	user, _, err := service.Authenticate(context.Background(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate failed: %v", err)
	}
	if user.Role != UserRoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}

	// Second run is a no-op.
	if err := service.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap rerun failed: %v", err)
	}
}

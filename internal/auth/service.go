package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	config Config

	users *userRepository

	logger *zap.Logger
}

func NewService(config Config, users *userRepository, logger *zap.Logger) *Service {
	return &Service{
		config: config,

		users: users,

		logger: logger,
	}
}

// Enabled reports whether token auth is configured. Without a secret key
// the API runs open.
func (s *Service) Enabled() bool {
	return len(s.config.SecretKey) > 0
}

// CreateUser stores a new user with a bcrypt password hash.
func (s *Service) CreateUser(ctx context.Context, draft UserDraft) (*User, error) {
	s.logger.Info("creating user", zap.String("name", draft.Name))

	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	model := newUserModel(draft, string(hash))
	if err := s.users.Create(ctx, model); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, err
	}

	return model.toDomain(), nil
}

// Authenticate verifies name and password and issues a JWT on success.
func (s *Service) Authenticate(ctx context.Context, name, password string) (*User, string, error) {
	user, err := s.users.GetByName(ctx, name)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GenerateJWT generates a signed token for a user.
func (s *Service) GenerateJWT(_ context.Context, user *User) (string, error) {
	claims := NewJWTClaims(user.ID.String(), user.Role, s.config.Issuer, time.Now().Add(s.config.accessTokenExp()))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.config.SecretKey)
}

// ValidateJWT validates a token and returns its claims.
func (s *Service) ValidateJWT(_ context.Context, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.config.SecretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// RefreshJWT validates a token and issues a fresh one with extended
// expiration.
func (s *Service) RefreshJWT(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.ValidateJWT(ctx, tokenString)
	if err != nil {
		return "", err
	}

	newClaims := NewJWTClaims(claims.UserID, claims.Role, s.config.Issuer, time.Now().Add(s.config.accessTokenExp()))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)

	return token.SignedString(s.config.SecretKey)
}

// Bootstrap creates the configured admin user when it does not exist yet.
func (s *Service) Bootstrap(ctx context.Context) error {
	if s.config.AdminUser == "" || s.config.AdminPassword == "" {
		return nil
	}

	if _, err := s.users.GetByName(ctx, s.config.AdminUser); err == nil {
		return nil
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	_, err := s.CreateUser(ctx, UserDraft{
		UserBase: UserBase{
			Name: s.config.AdminUser,
			Role: UserRoleAdmin,
		},
		Password: s.config.AdminPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	s.logger.Info("admin user bootstrapped", zap.String("name", s.config.AdminUser))
	return nil
}

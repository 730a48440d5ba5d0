package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/coppercraft/shop/internal/hash"
	"github.com/coppercraft/shop/internal/logging"
	"github.com/coppercraft/shop/internal/models"
	"github.com/coppercraft/shop/internal/mykafka"
	"github.com/coppercraft/shop/internal/repo"
	"github.com/coppercraft/shop/internal/token"
)

type AuthService struct {
	Users    *repo.UserRepo
	Signer   *token.Signer
	TokenTTL time.Duration
	Producer *mykafka.Producer
}

func (s *AuthService) Register(ctx context.Context, email, fullName, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if _, err := s.Users.ByEmail(ctx, email); err == nil {
		l.Warn("register_error", "status", 400, "reason", "email already registered")
		return nil, fmt.Errorf("%w: email already registered", ErrValidation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: pwHash,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, map[string]interface{}{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	}, fmt.Sprint(user.ID))

	l.Info("register_success", "user_id", user.ID)
	return user, nil
}

// Login verifies credentials and issues a bearer token with the configured
// lifetime. The signer falls back to its own shorter default only when no
// lifetime is configured at all.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Users.ByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_error", "status", 401, "reason", "unknown email")
			return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
		}
		return "", err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_error", "status", 401, "reason", "bad password")
		return "", fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}

	signed, err := s.Signer.Sign(user.Email, s.TokenTTL)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Authenticate resolves a raw bearer token to the user it names. Signature,
// expiry, subject and user-existence failures all collapse into Unauthorized.
func (s *AuthService) Authenticate(ctx context.Context, rawToken string) (*models.User, error) {
	subject, err := s.Signer.Parse(rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
	}

	user, err := s.Users.ByEmail(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("%w: could not validate credentials", ErrUnauthorized)
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, event map[string]interface{}, key string) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, "user_events", key, event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_error", "topic", "user_events", "error", err)
	}
}

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Skotchmaster/mock_ecom/internal/models"
	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/internal/repo"
	"github.com/Skotchmaster/mock_ecom/pkg/hash"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
	"github.com/Skotchmaster/mock_ecom/pkg/tokens"
)

type AuthService struct {
	Users     repo.UserRepo
	Events    mykafka.Publisher
	JWTSecret []byte
	TokenTTL  time.Duration
	Now       func() time.Time
}

type PublicUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      PublicUser
}

func publicUser(u *models.User) PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return time.Hour
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return fail(ErrValidation, "All fields required")
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return err
	}

	user := models.User{Name: name, Email: email, PasswordHash: pwHash}
	if err := s.Users.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrAlreadyExists) {
			return fail(ErrConflict, "User already exists")
		}
		l.Error("signup_error", "status", 500, "error", err)
		return err
	}

	publish(ctx, s.Events, mykafka.TopicUserEvents, user.Email,
		mykafka.NewEvent("user.signed_up", user.ID, publicUser(&user)))
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Users.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fail(ErrNotFound, "User not found")
		}
		l.Error("login_error", "status", 500, "error", err)
		return nil, errors.New("DB error")
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, fail(ErrUnauthorized, "Invalid password")
	}

	token, exp, err := tokens.NewAccessToken(s.JWTSecret, user.ID, user.Email, s.now(), s.ttl())
	if err != nil {
		l.Error("login_error", "status", 500, "reason", "cannot sign token", "error", err)
		return nil, err
	}

	publish(ctx, s.Events, mykafka.TopicUserEvents, user.Email,
		mykafka.NewEvent("user.logged_in", user.ID, nil))

	return &LoginResult{Token: token, ExpiresAt: exp, User: publicUser(user)}, nil
}

// Verify checks a bearer token and returns the identity it proves.
func (s *AuthService) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, fail(ErrForbidden, "No token provided")
	}
	claims, err := tokens.AccessClaimsFromToken(token, s.JWTSecret, jwt.WithTimeFunc(s.now))
	if err != nil {
		return Identity{}, fail(ErrUnauthorized, "Invalid token")
	}
	return Identity{UserID: claims.UserID, Email: claims.Email}, nil
}

func (s *AuthService) Profile(ctx context.Context, id Identity) (*PublicUser, error) {
	user, err := s.Users.UserByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fail(ErrNotFound, "User not found")
		}
		logging.FromContext(ctx).Error("profile_error", "status", 500, "error", err)
		return nil, errors.New("Error fetching profile")
	}
	pu := publicUser(user)
	return &pu, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"asiadrive/internal/auth"
	apperrors "asiadrive/internal/errors"
	"asiadrive/internal/model"
	"asiadrive/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the raw registration form fields.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	PasswordConfirm string
}

// AuthService handles registration, sign-in and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (user *model.User, sessionToken string, err error)
	Login(ctx context.Context, email, password string) (user *model.User, sessionToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	userRepo repository.UserRepository
	sessions *auth.SessionManager
	store    auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions *auth.SessionManager, store auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		store:    store,
	}
}

// Register creates a customer account with a hashed password and opens a
// session for it.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.User, string, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	phone := strings.TrimSpace(input.Phone)
	password := strings.TrimSpace(input.Password)
	confirm := strings.TrimSpace(input.PasswordConfirm)

	if name == "" || email == "" || password == "" || confirm == "" {
		return nil, "", apperrors.NewValidation("Please fill in all required fields.")
	}
	if password != confirm {
		return nil, "", apperrors.NewValidation("Passwords do not match.")
	}

	// Check if the email is already registered (emails are stored lowercase)
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", fmt.Errorf("check email existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hashedPassword),
		Role:         model.RoleCustomer,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and opens a session. The email comparison is
// case-insensitive; which of email or password was wrong is not disclosed.
// The password is trimmed the same way Register trims it, so a padded entry
// matches the credential it was registered with.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.openSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout revokes the session record. Revoking an unknown session succeeds,
// so logging out is idempotent.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Revoke(ctx, sessionID)
}

func (s *authService) openSession(ctx context.Context, userID uint) (string, error) {
	sessionID, token, err := s.sessions.IssueToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	if err := s.store.Save(ctx, sessionID, userID, auth.SessionTTL); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return token, nil
}

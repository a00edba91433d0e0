package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var log = logrus.New()

// Common errors
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrChatAlreadyLinked  = errors.New("telegram chat is already linked to another account")
)

// Service interface
type Service interface {
	Register(ctx context.Context, input CreateUserInput) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*User, error)
	LinkTelegramChat(ctx context.Context, userID uuid.UUID, chatID int64) (*User, error)
	UnlinkTelegramChat(ctx context.Context, userID uuid.UUID) error
	GetByTelegramChat(ctx context.Context, chatID int64) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validateCreateUserInput validates the input for registering a user
func validateCreateUserInput(input CreateUserInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}

// Register creates a new account with a bcrypt password hash
func (s *service) Register(ctx context.Context, input CreateUserInput) (*User, error) {
	if err := validateCreateUserInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email existence: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	u := &User{
		ID:           uuid.New(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Status:       UserStatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	log.WithFields(logrus.Fields{
		"user_id": u.ID,
		"email":   u.Email,
	}).Info("user registered")

	return u, nil
}

// Authenticate verifies credentials and returns the account on success
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive() {
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// GetUser retrieves a user by ID
func (s *service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// LinkTelegramChat attaches a Telegram chat to the account. A chat can
// belong to at most one account at a time.
func (s *service) LinkTelegramChat(ctx context.Context, userID uuid.UUID, chatID int64) (*User, error) {
	owner, err := s.repo.FindByTelegramChatID(ctx, chatID)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking chat link: %w", err)
	}
	if owner != nil && owner.ID != userID {
		return nil, ErrChatAlreadyLinked
	}

	if err := s.repo.SetTelegramChat(ctx, userID, &chatID); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"user_id": userID,
		"chat_id": chatID,
	}).Info("telegram chat linked")

	return s.repo.FindByID(ctx, userID)
}

// UnlinkTelegramChat detaches the account's Telegram chat
func (s *service) UnlinkTelegramChat(ctx context.Context, userID uuid.UUID) error {
	return s.repo.SetTelegramChat(ctx, userID, nil)
}

// GetByTelegramChat resolves the account linked to a chat
func (s *service) GetByTelegramChat(ctx context.Context, chatID int64) (*User, error) {
	return s.repo.FindByTelegramChatID(ctx, chatID)
}

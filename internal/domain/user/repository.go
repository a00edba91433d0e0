package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/persistence/postgres/connection"
)

var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")
)

// Repository defines the interface for user data access
type Repository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByTelegramChatID(ctx context.Context, chatID int64) (*User, error)
	Update(ctx context.Context, user *User) error
	SetTelegramChat(ctx context.Context, id uuid.UUID, chatID *int64) error
}

type repository struct {
	db *connection.Database
}

// NewRepository creates a new user repository
func NewRepository(db *connection.Database) Repository {
	return &repository{db: db}
}

// Create inserts a new user
func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.DB.WithContext(ctx).Create(user).Error
}

// FindByID retrieves a user by ID
func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when no
// account exists so callers can distinguish "free email" from a real error.
func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByTelegramChatID retrieves the user linked to a Telegram chat
func (r *repository) FindByTelegramChatID(ctx context.Context, chatID int64) (*User, error) {
	var user User
	err := r.db.DB.WithContext(ctx).Where("telegram_chat_id = ?", chatID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Update persists changes to an existing user
func (r *repository) Update(ctx context.Context, user *User) error {
	result := r.db.DB.WithContext(ctx).Save(user)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetTelegramChat attaches or detaches (chatID nil) a Telegram chat
func (r *repository) SetTelegramChat(ctx context.Context, id uuid.UUID, chatID *int64) error {
	result := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("telegram_chat_id", chatID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

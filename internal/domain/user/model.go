package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusBlocked  UserStatus = "blocked"
)

// User represents a registered account
type User struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Name           string     `json:"name" gorm:"not null"`
	Email          string     `json:"email" gorm:"uniqueIndex:idx_user_email;not null"`
	PasswordHash   string     `json:"-" gorm:"not null"`
	Status         UserStatus `json:"status" gorm:"not null;default:'active'"`
	TelegramChatID *int64     `json:"telegram_chat_id,omitempty" gorm:"uniqueIndex:idx_user_telegram_chat"`
	CreatedAt      time.Time  `json:"created_at" gorm:"index:idx_user_created"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account may authenticate
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsLinked reports whether the account has a Telegram chat attached
func (u *User) IsLinked() bool {
	return u.TelegramChatID != nil
}

// CreateUserInput carries validated registration data into the service layer
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BeforeCreate is called before creating a new user record
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Status == "" {
		u.Status = UserStatusActive
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	return nil
}

// BeforeUpdate is called before updating a user record
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

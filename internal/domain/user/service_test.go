package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// mockRepository is an in-memory Repository for service tests.
type mockRepository struct {
	byID map[uuid.UUID]*User
}

func newMockRepository() *mockRepository {
	return &mockRepository{byID: make(map[uuid.UUID]*User)}
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	clone := *u
	m.byID[u.ID] = &clone
	return nil
}

func (m *mockRepository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (m *mockRepository) FindByTelegramChatID(ctx context.Context, chatID int64) (*User, error) {
	for _, u := range m.byID {
		if u.TelegramChatID != nil && *u.TelegramChatID == chatID {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) Update(ctx context.Context, u *User) error {
	if _, ok := m.byID[u.ID]; !ok {
		return ErrUserNotFound
	}
	clone := *u
	m.byID[u.ID] = &clone
	return nil
}

func (m *mockRepository) SetTelegramChat(ctx context.Context, id uuid.UUID, chatID *int64) error {
	u, ok := m.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	u.TelegramChatID = chatID
	return nil
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{name: "missing name", input: CreateUserInput{Email: "a@b.c", Password: "secretpass"}},
		{name: "missing email", input: CreateUserInput{Name: "Ada", Password: "secretpass"}},
		{name: "missing password", input: CreateUserInput{Name: "Ada", Email: "a@b.c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(newMockRepository()).Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc := NewService(newMockRepository())

	u, err := svc.Register(context.Background(), CreateUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, UserStatusActive, u.Status)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "correct horse", u.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	input := CreateUserInput{Name: "Ada", Email: "ada@example.com", Password: "correct horse"}
	_, err := svc.Register(ctx, input)
	assert.NoError(t, err)

	_, err = svc.Register(ctx, input)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestAuthenticate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)
	ctx := context.Background()

	registered, err := svc.Register(ctx, CreateUserInput{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "correct horse",
	})
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		u, err := svc.Authenticate(ctx, "ada@example.com", "correct horse")
		assert.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "ada@example.com", "wrong horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		repo.byID[registered.ID].Status = UserStatusBlocked
		defer func() { repo.byID[registered.ID].Status = UserStatusActive }()

		_, err := svc.Authenticate(ctx, "ada@example.com", "correct horse")
		assert.ErrorIs(t, err, ErrAccountInactive)
	})
}

func TestLinkTelegramChat(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	first, err := svc.Register(ctx, CreateUserInput{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	assert.NoError(t, err)
	second, err := svc.Register(ctx, CreateUserInput{Name: "Grace", Email: "grace@example.com", Password: "correct horse"})
	assert.NoError(t, err)

	linked, err := svc.LinkTelegramChat(ctx, first.ID, 42)
	assert.NoError(t, err)
	assert.True(t, linked.IsLinked())
	assert.Equal(t, int64(42), *linked.TelegramChatID)

	// Relinking the same chat to the same account is a no-op.
	_, err = svc.LinkTelegramChat(ctx, first.ID, 42)
	assert.NoError(t, err)

	// A chat belongs to one account at a time.
	_, err = svc.LinkTelegramChat(ctx, second.ID, 42)
	assert.ErrorIs(t, err, ErrChatAlreadyLinked)

	owner, err := svc.GetByTelegramChat(ctx, 42)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, owner.ID)
}

func TestUnlinkTelegramChat(t *testing.T) {
	svc := NewService(newMockRepository())
	ctx := context.Background()

	u, err := svc.Register(ctx, CreateUserInput{Name: "Ada", Email: "ada@example.com", Password: "correct horse"})
	assert.NoError(t, err)

	_, err = svc.LinkTelegramChat(ctx, u.ID, 42)
	assert.NoError(t, err)

	assert.NoError(t, svc.UnlinkTelegramChat(ctx, u.ID))

	_, err = svc.GetByTelegramChat(ctx, 42)
	assert.ErrorIs(t, err, ErrUserNotFound)

	fresh, err := svc.GetUser(ctx, u.ID)
	assert.NoError(t, err)
	assert.False(t, fresh.IsLinked())
}

package chatbot

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Gajendran57/GoalGrid/internal/infrastructure/cache"
)

// ErrCodeNotFound is returned when a link code is unknown or expired
var ErrCodeNotFound = errors.New("link code not found or expired")

// codeCharset omits ambiguous characters (0/O, 1/I) since users type
// these codes into a chat by hand.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 6

// LinkCodeStore keeps one-time account link codes in Redis. A code maps
// to the issuing user id and disappears on claim or TTL expiry.
type LinkCodeStore struct {
	redis *cache.RedisClient
	ttl   time.Duration
}

// NewLinkCodeStore creates a store with the configured code lifetime
func NewLinkCodeStore(redis *cache.RedisClient, ttl time.Duration) *LinkCodeStore {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &LinkCodeStore{
		redis: redis,
		ttl:   ttl,
	}
}

// TTL returns the configured code lifetime
func (s *LinkCodeStore) TTL() time.Duration {
	return s.ttl
}

// Issue generates a fresh code for a user and stores it with a TTL
func (s *LinkCodeStore) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, s.key(code), userID.String(), s.ttl); err != nil {
		return "", fmt.Errorf("storing link code: %w", err)
	}

	return code, nil
}

// Claim resolves a code to its user and consumes it. A code can be
// claimed exactly once.
func (s *LinkCodeStore) Claim(ctx context.Context, code string) (uuid.UUID, error) {
	val, err := s.redis.Get(ctx, s.key(code))
	if err != nil {
		if errors.Is(err, cache.ErrCacheNotFound) {
			return uuid.Nil, ErrCodeNotFound
		}
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, fmt.Errorf("corrupt link code entry: %w", err)
	}

	if err := s.redis.Delete(ctx, s.key(code)); err != nil {
		return uuid.Nil, fmt.Errorf("consuming link code: %w", err)
	}

	return userID, nil
}

func (s *LinkCodeStore) key(code string) string {
	return "chatlink:" + code
}

// generateCode draws codeLength characters from the charset
func generateCode() (string, error) {
	randomBytes := make([]byte, codeLength)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %v", err)
	}

	code := make([]byte, codeLength)
	for i, b := range randomBytes {
		code[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return string(code), nil
}

package chatbot

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		code, err := generateCode()
		assert.NoError(t, err)
		assert.Len(t, code, codeLength)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeCharset, c), "unexpected character %q", c)
		}
		seen[code] = struct{}{}
	}
	// 32^6 possibilities, 50 draws colliding down to a handful would
	// mean the generator is broken.
	assert.Greater(t, len(seen), 45)
}

func TestLinkCodeStoreTTL(t *testing.T) {
	assert.Equal(t, 10*time.Minute, NewLinkCodeStore(nil, 0).TTL())
	assert.Equal(t, 5*time.Minute, NewLinkCodeStore(nil, 5*time.Minute).TTL())
}

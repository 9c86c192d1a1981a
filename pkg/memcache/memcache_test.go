package memcache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPreviewTiers_SetGetClear(t *testing.T) {
	s := NewPreviewTiers()

	s.Set("acc-1", "coaching", time.Minute)
	tier, ok := s.Get("acc-1")
	assert.True(t, ok)
	assert.Equal(t, "coaching", tier)

	s.Clear("acc-1")
	_, ok = s.Get("acc-1")
	assert.False(t, ok)
}

func TestPreviewTiers_ExpiredEntryDropped(t *testing.T) {
	s := NewPreviewTiers()

	s.Set("acc-1", "membership", -time.Second)
	_, ok := s.Get("acc-1")
	assert.False(t, ok)
}

func TestResetTokens_ConsumeIsSingleUse(t *testing.T) {
	s := NewResetTokens()

	s.Set("tok-1", "m@example.com", time.Minute)
	assert.Equal(t, "m@example.com", s.Consume("tok-1"))
	assert.Equal(t, "", s.Consume("tok-1"))
}

func TestResetTokens_ExpiredTokenUnusable(t *testing.T) {
	s := NewResetTokens()

	s.Set("tok-1", "m@example.com", -time.Second)
	_, ok := s.Peek("tok-1")
	assert.False(t, ok)
	assert.Equal(t, "", s.Consume("tok-1"))
}

func TestResetTokens_PeekDoesNotConsume(t *testing.T) {
	s := NewResetTokens()

	s.Set("tok-1", "m@example.com", time.Minute)
	email, ok := s.Peek("tok-1")
	assert.True(t, ok)
	assert.Equal(t, "m@example.com", email)

	assert.Equal(t, "m@example.com", s.Consume("tok-1"))
}

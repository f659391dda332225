package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetMiss(t *testing.T) {
	s := New(time.Minute)
	defer s.Stop()

	v, ok := s.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestStore_SetGet(t *testing.T) {
	s := New(time.Minute)
	defer s.Stop()

	s.Set("authors/OL79034A", "Frank Herbert")

	v, ok := s.Get("authors/OL79034A")
	assert.True(t, ok)
	assert.Equal(t, "Frank Herbert", v)
}

func TestStore_SetOverwrites(t *testing.T) {
	s := New(time.Minute)
	defer s.Stop()

	s.Set("k", "old")
	s.Set("k", "new")

	v, _ := s.Get("k")
	assert.Equal(t, "new", v)
}

func TestStore_EntriesExpire(t *testing.T) {
	s := New(30 * time.Millisecond)
	defer s.Stop()

	s.Set("k", "v")

	_, ok := s.Get("k")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestStore_ReadsDoNotExtendTTL(t *testing.T) {
	s := New(60 * time.Millisecond)
	defer s.Stop()

	s.Set("k", "v")

	// keep reading past half the TTL; expiry stays absolute
	time.Sleep(40 * time.Millisecond)
	_, ok := s.Get("k")
	assert.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get("k")
	assert.False(t, ok)
}

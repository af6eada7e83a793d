package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainMatcher(t *testing.T) {
	m := PlainMatcher{}
	stored, err := m.Store("secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)
	assert.True(t, m.Match(stored, "secret"))
	assert.False(t, m.Match(stored, "Secret"))
	assert.False(t, m.Match(stored, ""))
}

func TestBcryptMatcher(t *testing.T) {
	m := BcryptMatcher{}
	stored, err := m.Store("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", stored)
	assert.True(t, m.Match(stored, "secret"))
	assert.False(t, m.Match(stored, "wrong"))
}

func TestMatcherFor(t *testing.T) {
	assert.IsType(t, BcryptMatcher{}, MatcherFor("bcrypt"))
	assert.IsType(t, PlainMatcher{}, MatcherFor("plain"))
	assert.IsType(t, PlainMatcher{}, MatcherFor(""))
	assert.IsType(t, PlainMatcher{}, MatcherFor("argon2"))
}

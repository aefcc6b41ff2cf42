package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPasswordConfig(t *testing.T) {
	tests := []struct {
		name       string
		bcryptCost string
		pepper     string
		wantCost   int
		wantErr    bool
	}{
		{name: "default cost", bcryptCost: "", wantCost: 12},
		{name: "explicit cost", bcryptCost: "11", wantCost: 11},
		{name: "minimum cost", bcryptCost: "10", wantCost: 10},
		{name: "maximum cost", bcryptCost: "14", wantCost: 14},
		{name: "with pepper", bcryptCost: "12", pepper: "test-pepper", wantCost: 12},
		{name: "cost below minimum", bcryptCost: "9", wantErr: true},
		{name: "cost above maximum", bcryptCost: "15", wantErr: true},
		{name: "negative cost", bcryptCost: "-1", wantErr: true},
		{name: "non-numeric cost", bcryptCost: "abc", wantErr: true},
		{name: "float cost", bcryptCost: "12.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.bcryptCost)
			t.Setenv("PASSWORD_PEPPER", tt.pepper)

			cfg, err := NewPasswordConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, cfg.BcryptCost)
			assert.Equal(t, tt.pepper, cfg.Pepper)
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("test-password-123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, cfg.VerifyPassword("test-password-123", hash))
	assert.False(t, cfg.VerifyPassword("wrong-password", hash))

	// Salted: same password must not hash identically twice
	hash2, err := cfg.HashPassword("test-password-123")
	require.NoError(t, err)
	assert.NotEqual(t, hash, hash2)
}

func TestPasswordConfig_Pepper(t *testing.T) {
	peppered := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-one"}
	plain := &PasswordConfig{BcryptCost: 10}

	hash, err := peppered.HashPassword("test-password")
	require.NoError(t, err)

	assert.True(t, peppered.VerifyPassword("test-password", hash))

	// A hash made with a pepper must not verify without it, or with another
	assert.False(t, plain.VerifyPassword("test-password", hash))

	other := &PasswordConfig{BcryptCost: 10, Pepper: "pepper-two"}
	assert.False(t, other.VerifyPassword("test-password", hash))
}

func TestPasswordConfig_EmptyPassword(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	hash, err := cfg.HashPassword("")
	require.NoError(t, err)

	assert.True(t, cfg.VerifyPassword("", hash))
	assert.False(t, cfg.VerifyPassword("not-empty", hash))
}

func TestPasswordConfig_PasswordExceeding72Bytes(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	// bcrypt rejects inputs over 72 bytes rather than truncating
	hash, err := cfg.HashPassword(strings.Repeat("a", 100))
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestPasswordConfig_MalformedHash(t *testing.T) {
	cfg := &PasswordConfig{BcryptCost: 10}

	for _, malformed := range []string{"", "not-a-hash", "$2a$12$invalid", "invalid$format"} {
		assert.False(t, cfg.VerifyPassword("test", malformed), "hash: %q", malformed)
	}
}

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		email string
		role  domain.Role
	}{
		{name: "admin token", id: 7, email: "admin@example.com", role: domain.RoleAdmin},
		{name: "employee token", id: 42, email: "emp@example.com", role: domain.RoleEmployee},
	}

	tm := NewTokenManager("test-secret", 24)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, exp, err := tm.GenerateToken(tt.id, tt.email, tt.role)
			require.NoError(t, err)
			assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

			claims, err := tm.ParseToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.id, claims.SubjectID)
			assert.Equal(t, tt.email, claims.Email)
			assert.Equal(t, tt.role, claims.Role)
		})
	}
}

func TestParseTokenExpired(t *testing.T) {
	issued := time.Now()
	tm := NewTokenManager("test-secret", 24).WithClock(func() time.Time { return issued })

	token, _, err := tm.GenerateToken(1, "emp@example.com", domain.RoleEmployee)
	require.NoError(t, err)

	// still valid just before expiry
	tm.WithClock(func() time.Time { return issued.Add(23 * time.Hour) })
	_, err = tm.ParseToken(token)
	require.NoError(t, err)

	tm.WithClock(func() time.Time { return issued.Add(25 * time.Hour) })
	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenTampered(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)
	token, _, err := tm.GenerateToken(1, "emp@example.com", domain.RoleEmployee)
	require.NoError(t, err)

	// flip a byte in the signature segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.ParseToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 24).GenerateToken(1, "emp@example.com", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 24).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 24)
	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := tm.ParseToken(input)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

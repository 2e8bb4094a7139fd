package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	svc := NewService("segredo", time.Hour)

	signed, err := svc.Generate(42, RoleBarber)
	require.NoError(t, err)

	claims, err := svc.Parse(signed)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, RoleBarber, claims.Role)
}

func TestParse_WrongSecret(t *testing.T) {
	signed, err := NewService("a", time.Hour).Generate(1, RoleClient)
	require.NoError(t, err)

	_, err = NewService("b", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	svc := NewService("segredo", time.Minute)
	issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	signed, err := svc.Generate(7, RoleClient)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.Parse(signed)
	assert.Error(t, err)
}

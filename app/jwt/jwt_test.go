package jwtutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundtrip(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "techwritehub", ExpMin: 60}

	token, err := s.Sign(7, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "techwritehub", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "techwritehub", ExpMin: 60}
	token, err := s.Sign(7, "alice")
	require.NoError(t, err)

	other := &Signer{Secret: []byte("different"), Issuer: "techwritehub", ExpMin: 60}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "techwritehub", ExpMin: -1}
	token, err := s.Sign(7, "alice")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "techwritehub", ExpMin: 60}
	_, err := s.Parse("not.a.token")
	assert.Error(t, err)
}

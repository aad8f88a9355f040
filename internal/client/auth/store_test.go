package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
}

func TestFileStore_ReadAbsent(t *testing.T) {
	s := newTestStore(t)
	_, ok := s.Read()
	assert.False(t, ok)
}

func TestFileStore_WriteRead(t *testing.T) {
	s := newTestStore(t)
	cred := Credential{Token: "tok-1", ExpiresAt: 1700000000}
	require.NoError(t, s.Write(cred))

	got, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, cred, got)
}

func TestFileStore_WriteOverwrites(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write(Credential{Token: "old", ExpiresAt: 1}))
	require.NoError(t, s.Write(Credential{Token: "new", ExpiresAt: 2}))

	got, ok := s.Read()
	require.True(t, ok)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, int64(2), got.ExpiresAt)
}

func TestFileStore_Clear(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Write(Credential{Token: "tok", ExpiresAt: 1}))
	require.NoError(t, s.Clear())

	_, ok := s.Read()
	assert.False(t, ok)

	// Clearing an absent credential is safe.
	require.NoError(t, s.Clear())
}

func TestFileStore_ReadCorruptExpiry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"tok","token_expiry":"soon"}`), 0o600))

	s := NewFileStore(path)
	_, ok := s.Read()
	assert.False(t, ok)
}

func TestFileStore_ReadMissingField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access_token":"tok"}`), 0o600))

	s := NewFileStore(path)
	_, ok := s.Read()
	assert.False(t, ok)
}

func TestFileStore_ReadGarbageFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	s := NewFileStore(path)
	_, ok := s.Read()
	assert.False(t, ok)
}

func TestFileStore_PreservesUnrelatedKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark"}`), 0o600))

	s := NewFileStore(path)
	require.NoError(t, s.Write(Credential{Token: "tok", ExpiresAt: 5}))
	require.NoError(t, s.Clear())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"dark"}`, string(data))
}

func TestNoopStore(t *testing.T) {
	s := NewNoopStore()
	require.NoError(t, s.Write(Credential{Token: "tok", ExpiresAt: 5}))
	_, ok := s.Read()
	assert.False(t, ok)
	require.NoError(t, s.Clear())
}

func TestCredential_Usable(t *testing.T) {
	now := time.Unix(1_000_000, 0)

	tests := []struct {
		name      string
		expiresAt int64
		want      bool
	}{
		{name: "well before buffer", expiresAt: now.Unix() + 301, want: true},
		{name: "exactly at buffer boundary", expiresAt: now.Unix() + 300, want: false},
		{name: "inside buffer", expiresAt: now.Unix() + 299, want: false},
		{name: "already expired", expiresAt: now.Unix() - 1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Credential{Token: "tok", ExpiresAt: tt.expiresAt}
			assert.Equal(t, tt.want, c.Usable(now))
		})
	}
}

func TestCredential_UsableEmptyToken(t *testing.T) {
	c := Credential{ExpiresAt: time.Now().Unix() + 3600}
	assert.False(t, c.Usable(time.Now()))
}

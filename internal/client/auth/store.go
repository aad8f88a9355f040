// Package auth manages the cached bearer credential for the backend API:
// durable storage of the token and its expiry, and a provider that produces
// a currently-valid token on demand.
package auth

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// Keys used in the flat key-value credential file.
const (
	keyToken  = "access_token"
	keyExpiry = "token_expiry"
)

// expiryBuffer is the safety margin before the real expiry. A credential
// closer than this to expiring is treated as stale and refreshed.
const expiryBuffer = 5 * time.Minute

// Credential is a cached bearer token plus its expiry in unix seconds.
type Credential struct {
	Token     string
	ExpiresAt int64
}

// Usable reports whether the credential can still be attached to a request
// at the given instant. The boundary is exact: at now == expiry-buffer the
// credential is already considered stale.
func (c Credential) Usable(now time.Time) bool {
	return c.Token != "" && c.ExpiresAt-int64(expiryBuffer.Seconds()) > now.Unix()
}

// Store persists a single Credential. Read never fails: a credential with a
// missing or unparseable field is reported as absent. Write replaces both
// fields; a caller never observes a token without its expiry.
type Store interface {
	Read() (Credential, bool)
	Write(cred Credential) error
	Clear() error
}

// FileStore keeps the credential in a flat string key-value JSON file,
// the closest durable analog of browser local storage. Writes go through
// a temp file and rename so readers in the same process never observe a
// half-written pair.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	kv := map[string]string{}
	if err := json.Unmarshal(data, &kv); err != nil {
		return map[string]string{}
	}
	return kv
}

func (s *FileStore) save(kv map[string]string) error {
	data, err := json.Marshal(kv)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Read() (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv := s.load()
	token, ok := kv[keyToken]
	if !ok || token == "" {
		return Credential{}, false
	}
	raw, ok := kv[keyExpiry]
	if !ok {
		return Credential{}, false
	}
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Credential{}, false
	}
	return Credential{Token: token, ExpiresAt: expiry}, true
}

func (s *FileStore) Write(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv := s.load()
	kv[keyToken] = cred.Token
	kv[keyExpiry] = strconv.FormatInt(cred.ExpiresAt, 10)
	return s.save(kv)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kv := s.load()
	delete(kv, keyToken)
	delete(kv, keyExpiry)
	if len(kv) == 0 {
		err := os.Remove(s.path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return s.save(kv)
}

// NoopStore is used where no durable storage exists. Reads report absent,
// writes and clears succeed without effect.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (NoopStore) Read() (Credential, bool) { return Credential{}, false }
func (NoopStore) Write(Credential) error   { return nil }
func (NoopStore) Clear() error             { return nil }

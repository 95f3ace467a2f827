package services

import (
	"encoding/base64"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// CredentialStore supplies the generation API key. It exists so the
// obfuscated file store below can be swapped for a real secret backend
// without touching callers.
type CredentialStore interface {
	Get() (string, error)
	Save(key string) error
	Clear() error
}

// EnvCredentialStore reads the key from an environment variable. Save and
// Clear are not supported.
type EnvCredentialStore struct {
	Var string
}

func (s *EnvCredentialStore) Get() (string, error) {
	if key := os.Getenv(s.Var); key != "" {
		return key, nil
	}
	return "", ErrMissingCredential
}

func (s *EnvCredentialStore) Save(string) error {
	return errors.New("env credential store is read-only")
}

func (s *EnvCredentialStore) Clear() error {
	return errors.New("env credential store is read-only")
}

// FileCredentialStore keeps the key base64-encoded in a local file. The
// encoding is reversible obfuscation for parity with the original
// localStorage scheme, NOT encryption; anyone with file access can read
// the key.
type FileCredentialStore struct {
	Path string
}

func (s *FileCredentialStore) Get() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrMissingCredential
		}
		return "", errors.Wrap(err, "reading credential file")
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(data)))
	if err != nil || len(decoded) == 0 {
		return "", ErrMissingCredential
	}
	return string(decoded), nil
}

func (s *FileCredentialStore) Save(key string) error {
	if key == "" {
		return errors.New("refusing to save empty API key")
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(key))
	return errors.Wrap(os.WriteFile(s.Path, []byte(encoded+"\n"), 0o600), "writing credential file")
}

func (s *FileCredentialStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing credential file")
	}
	return nil
}

// ChainCredentialStore tries each store in order on Get; writes go to the
// first store that accepts them.
type ChainCredentialStore struct {
	Stores []CredentialStore
}

func (s *ChainCredentialStore) Get() (string, error) {
	for _, store := range s.Stores {
		if key, err := store.Get(); err == nil {
			return key, nil
		}
	}
	return "", ErrMissingCredential
}

func (s *ChainCredentialStore) Save(key string) error {
	var lastErr error
	for _, store := range s.Stores {
		if err := store.Save(key); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}
	if lastErr == nil {
		lastErr = errors.New("no credential store configured")
	}
	return lastErr
}

func (s *ChainCredentialStore) Clear() error {
	var lastErr error
	for _, store := range s.Stores {
		if err := store.Clear(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

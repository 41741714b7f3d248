// Package session persists the bearer token in the OS secret store and
// derives session expiry from it.
package session

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// ErrNotFound is returned by a SecretStore when the key has no value.
var ErrNotFound = errors.New("secret not found")

// SecretStore is an opaque key/value secret store.
type SecretStore interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// KeyringStore stores secrets in the OS keychain under one service name.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a store scoped to service.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

func (s *KeyringStore) Set(key, value string) error {
	return keyring.Set(s.service, key, value)
}

func (s *KeyringStore) Get(key string) (string, error) {
	v, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return v, err
}

func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

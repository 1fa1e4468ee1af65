// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements the credential accessor: it looks up named credential
// profiles in the environment and the OS keychain and hands them to the session
// resolver.
//
// This file persists profiles in the OS keychain via internal/keychain.
package auth

import (
	"encoding/json"
	stderrors "errors"

	"odoolink/cli/internal/errors"
	"odoolink/cli/internal/keychain"
	"odoolink/cli/internal/logging"
	"odoolink/cli/internal/session"
)

// ProfileStore is the subset of keychain.Manager used for profiles.
type ProfileStore interface {
	SaveProfile(name string, data []byte) error
	LoadProfile(name string) ([]byte, error)
	DeleteProfile(name string) error
	ListProfiles() ([]string, error)
	ClearAll() error
}

// Store reads and writes credential profiles as JSON in a ProfileStore.
type Store struct {
	profiles ProfileStore
}

// NewStore wraps a ProfileStore.
func NewStore(profiles ProfileStore) *Store {
	return &Store{profiles: profiles}
}

// DefaultStore returns a Store over the global keychain manager.
func DefaultStore() (*Store, error) {
	km, err := keychain.GetManager()
	if err != nil {
		return nil, errors.Wrap(errors.Auth, "secure storage unavailable", err)
	}
	return NewStore(km), nil
}

// Save writes creds under name.
func (s *Store) Save(name string, creds session.Credentials) error {
	debugf("saving profile", "profile", name, "url", logging.Mask(creds.URL))
	b, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.profiles.SaveProfile(name, b)
}

// Load reads the profile stored under name.
func (s *Store) Load(name string) (session.Credentials, error) {
	var creds session.Credentials
	data, err := s.profiles.LoadProfile(name)
	if err != nil {
		debugf("profile lookup failed", "profile", name, "error", err.Error())
		if stderrors.Is(err, keychain.ErrNotFound) {
			return creds, errors.New(errors.Auth, "profile \""+name+"\" not found")
		}
		return creds, errors.Wrap(errors.Auth, "read profile \""+name+"\"", err)
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return creds, errors.Wrap(errors.Auth, "profile \""+name+"\" is corrupt", err)
	}
	return creds, nil
}

// Delete removes the profile stored under name.
func (s *Store) Delete(name string) error {
	return s.profiles.DeleteProfile(name)
}

// List returns the stored profile names.
func (s *Store) List() ([]string, error) {
	return s.profiles.ListProfiles()
}

// Clear removes every stored profile.
func (s *Store) Clear() error {
	debugf("clearing all profiles")
	return s.profiles.ClearAll()
}

// Credentials implements Source.
func (s *Store) Credentials(name string) (session.Credentials, error) {
	return s.Load(name)
}

func debugf(msg string, kv ...any) {
	l := logging.L()
	l.Debug("auth: "+msg, l.Args(kv...))
}

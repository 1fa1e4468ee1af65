// Copyright (c) 2025 Odoolink
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides centralized, thread-safe keychain operations for odoolink.
// Credential profiles (server URL, database, username, password) are stored as opaque
// JSON blobs in the OS keychain/credential store, one item per profile name.
//
// The package supports macOS Keychain, Windows Credential Manager and the Linux
// Secret Service, KWallet, pass and keyctl backends through 99designs/keyring.
package keychain

import (
	"errors"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	globalError   error
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "odoolink"

// profilePrefix namespaces profile items inside the service.
const profilePrefix = "profile:"

// ErrNotFound is returned when a profile is not stored.
var ErrNotFound = errors.New("keychain: profile not found")

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

// NewManager creates a new keychain manager with the OS keyring initialized.
func NewManager() (*Manager, error) {
	ring, err := openRing()
	if err != nil {
		return nil, err
	}
	return NewManagerWithRing(ring), nil
}

// NewManagerWithRing wraps an already opened keyring, e.g. keyring.NewArrayKeyring
// in tests.
func NewManagerWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// GetManager returns the global keychain manager instance.
// If not initialized, it will be created on first call.
// If initialization fails, it will retry on subsequent calls.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	globalManager, globalError = NewManager()
	if globalError != nil {
		return nil, globalError
	}

	return globalManager, nil
}

// openRing opens the OS keyring using native platform backends only; secrets never
// fall back to a plain file.
func openRing() (keyring.Keyring, error) {
	var allowedBackends []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		allowedBackends = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowedBackends = []keyring.BackendType{keyring.WinCredBackend}
	default:
		allowedBackends = []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.KeyCtlBackend,
		}
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends,
		PassPrefix:      ServiceName,
		KeyCtlScope:     "user",
	}
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, errors.New("no secure credential store available; set ODOO_URL, ODOO_USERNAME and ODOO_PASSWORD instead: " + err.Error())
	}
	return ring, nil
}

// SaveProfile stores serialized credentials under name.
// This method is thread-safe.
func (m *Manager) SaveProfile(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:         profilePrefix + name,
		Data:        data,
		Label:       ServiceName + " " + name,
		Description: "odoolink credential profile",
	})
}

// LoadProfile retrieves serialized credentials stored under name.
// This method is thread-safe.
func (m *Manager) LoadProfile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	it, err := m.ring.Get(profilePrefix + name)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(it.Data) == 0 {
		return nil, ErrNotFound
	}
	return it.Data, nil
}

// DeleteProfile removes a stored profile. Missing profiles are not an error.
// This method is thread-safe.
func (m *Manager) DeleteProfile(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(profilePrefix + name); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}

// ListProfiles returns stored profile names in sorted order.
// This method is thread-safe.
func (m *Manager) ListProfiles() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys, err := m.ring.Keys()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, k := range keys {
		if name, ok := strings.CutPrefix(k, profilePrefix); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// ClearAll removes every stored profile.
// This method is thread-safe and should be used with caution.
func (m *Manager) ClearAll() error {
	names, err := m.ListProfiles()
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := m.DeleteProfile(name); err != nil {
			return err
		}
	}
	return nil
}

// Package theme persists the dashboard color scheme.
package theme

import (
	"fmt"

	"github.com/Eronmosele95/electrical-dashboard/internal/storage"
)

// Theme is the dashboard color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// StorageKey is the store key holding the active theme.
const StorageKey = "theme"

// Valid reports whether t is one of the two known themes.
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Manager stores the two-way theme toggle.
type Manager struct {
	store storage.Store
}

func NewManager(s storage.Store) *Manager {
	return &Manager{store: s}
}

// Get returns the stored theme. An absent or unrecognized value falls back
// to Light.
func (m *Manager) Get() (Theme, error) {
	raw, ok, err := m.store.Get(StorageKey)
	if err != nil {
		return Light, err
	}
	if !ok {
		return Light, nil
	}
	t := Theme(raw)
	if !t.Valid() {
		return Light, nil
	}
	return t, nil
}

// Set validates and persists t.
func (m *Manager) Set(t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("invalid theme %q, expected %q or %q", t, Light, Dark)
	}
	return m.store.Set(StorageKey, string(t))
}

// Toggle flips the stored theme and returns the new value.
func (m *Manager) Toggle() (Theme, error) {
	cur, err := m.Get()
	if err != nil {
		return cur, err
	}
	next := Light
	if cur == Light {
		next = Dark
	}
	if err := m.Set(next); err != nil {
		return cur, err
	}
	return next, nil
}

// Package storage provides the small key/value persistence surface the
// dashboard state lives behind: string values by key, whole-value
// replacement on write. The three operations mirror a browser localStorage.
package storage

// Store is the persistence surface for dashboard state.
type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	// Set replaces the whole value under key.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

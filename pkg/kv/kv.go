// Package kv provides the string key-value persistence capability backing
// the diary and checklist stores.
package kv

// Store is the persistence contract: a string-keyed, string-valued store
// with synchronous operations.
type Store interface {
	// Get returns the value stored under key, reporting whether it exists.
	Get(key string) (string, bool)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(key string) error
}

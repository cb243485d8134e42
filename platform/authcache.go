package platform

import (
	"fmt"
	"sync"
)

// Credential is an opaque elevation token issued by the OS.
type Credential any

// CredentialProvider creates, serializes and releases credentials.
type CredentialProvider interface {
	Create() (Credential, error)
	ExternalForm(cred Credential) ([]byte, error)
	Free(cred Credential)
}

// AuthorizationCache holds at most one live credential. The credential is
// created on first use and reused until Clear. A failed creation leaves the
// cache empty so the next call retries.
//
// It is safe for concurrent use from multiple goroutines.
type AuthorizationCache struct {
	mu       sync.Mutex
	provider CredentialProvider
	cred     Credential
	valid    bool
}

// NewAuthorizationCache creates an empty cache backed by provider. A nil
// provider yields a cache whose operations all report ErrNoAuthorization.
func NewAuthorizationCache(provider CredentialProvider) *AuthorizationCache {
	return &AuthorizationCache{provider: provider}
}

// Acquire returns the cached credential, creating it if the cache is empty.
func (c *AuthorizationCache) Acquire() (Credential, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acquireLocked()
}

// Use runs fn with the cached credential while holding the cache lock, so the
// credential cannot be cleared underneath fn. Calls are serialized, which
// also keeps elevation prompts from stacking up.
func (c *AuthorizationCache) Use(fn func(Credential) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cred, err := c.acquireLocked()
	if err != nil {
		return err
	}
	return fn(cred)
}

// ExternalForm serializes the credential for hand-off to another process,
// acquiring it first if needed. It returns nil on any failure.
func (c *AuthorizationCache) ExternalForm() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	cred, err := c.acquireLocked()
	if err != nil {
		return nil
	}
	form, err := c.provider.ExternalForm(cred)
	if err != nil {
		return nil
	}
	return form
}

// Clear releases the cached credential. Clearing an empty cache is a no-op.
func (c *AuthorizationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.valid {
		return
	}
	c.provider.Free(c.cred)
	c.cred = nil
	c.valid = false
}

// Cached reports whether a credential is currently held.
func (c *AuthorizationCache) Cached() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.valid
}

func (c *AuthorizationCache) acquireLocked() (Credential, error) {
	if c.provider == nil {
		return nil, ErrNoAuthorization
	}
	if c.valid {
		return c.cred, nil
	}

	cred, err := c.provider.Create()
	if err != nil {
		return nil, fmt.Errorf("create authorization: %w", err)
	}
	c.cred = cred
	c.valid = true
	return cred, nil
}

var defaultAuthorization = NewAuthorizationCache(newSystemProvider())

// DefaultAuthorization returns the process-wide authorization cache used by
// Start. On platforms without an authorization concept it is always empty.
func DefaultAuthorization() *AuthorizationCache {
	return defaultAuthorization
}

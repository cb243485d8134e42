//go:build !darwin

package platform

// newSystemProvider returns nil: only macOS issues authorization credentials.
func newSystemProvider() CredentialProvider {
	return nil
}

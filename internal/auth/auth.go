// Package auth provides credential verification for the login flow.
package auth

import "crypto/subtle"

// Verifier checks a submitted credential pair. The login handler only depends
// on this interface so the fixed-pair check can be swapped for a real user
// database later.
type Verifier interface {
	Verify(username, password string) bool
}

// FixedCredentials verifies against a single configured username/password
// pair. There is no lockout and no distinction between an unknown user and a
// wrong password.
type FixedCredentials struct {
	username string
	password string
}

// NewFixedCredentials creates a verifier for the given pair.
func NewFixedCredentials(username, password string) FixedCredentials {
	return FixedCredentials{username: username, password: password}
}

// Verify reports whether both fields match, using constant-time comparison.
func (f FixedCredentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(f.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(f.password)) == 1
	return userOK && passOK
}

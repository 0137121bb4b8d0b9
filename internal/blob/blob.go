// Package blob provides pluggable storage backends for uploaded files.
package blob

import "context"

// Backend stores a named blob and returns a dereferenceable reference to it:
// a relative path for the local backend, an absolute URL for the remote one.
type Backend interface {
	Store(ctx context.Context, name string, data []byte, contentType string) (string, error)
	Name() string
}

package service

import "github.com/oklog/ulid/v2"

// newID generates an opaque entity identifier from random bytes.
// Uniqueness is assumed by construction, not enforced by the stores.
func newID() string {
	return ulid.Make().String()
}

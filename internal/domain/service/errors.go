// Package service defines the ports to external providers: identity, storage,
// email, push notifications and event publishing.
package service

import "github.com/pkg/errors"

// Errors shared by provider adapters so callers can tell failure kinds apart.
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidAccountData   = errors.New("invalid account data")
	ErrInvalidIDToken       = errors.New("invalid id token")
	ErrProviderUnavailable  = errors.New("provider unavailable")
)

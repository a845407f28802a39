// Package keyring stores the scheduler API token in the system keychain.
package keyring

import (
	"errors"

	gokeyring "github.com/zalando/go-keyring"
)

// ErrNotFound is returned when no API token is stored.
var ErrNotFound = gokeyring.ErrNotFound

const (
	serviceName = "scheduler-cli"
	userName    = "api-token"
)

// IsNotFound reports whether err indicates a missing keyring entry.
func IsNotFound(err error) bool {
	return errors.Is(err, gokeyring.ErrNotFound)
}

// Get retrieves the stored API token from the system keychain.
func Get() (string, error) {
	return gokeyring.Get(serviceName, userName)
}

// Set stores the API token in the system keychain.
func Set(token string) error {
	return gokeyring.Set(serviceName, userName, token)
}

// Delete removes the API token from the system keychain.
func Delete() error {
	return gokeyring.Delete(serviceName, userName)
}

// Package uuid issues time-ordered identifiers for request IDs and export files.
package uuid

import (
	"time"

	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. It falls back to a random UUIDv4 if the
// clock-based generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// Timestamp returns the creation time encoded in a UUIDv7.
func Timestamp(s string) (time.Time, bool) {
	id, err := googleuuid.Parse(s)
	if err != nil || id.Version() != 7 {
		return time.Time{}, false
	}
	sec, nsec := id.Time().UnixTime()
	return time.Unix(sec, nsec), true
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}

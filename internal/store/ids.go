package store

import "github.com/google/uuid"

// newPickID returns pick-<uuid>.
func newPickID() string {
	return "pick-" + uuid.NewString()
}

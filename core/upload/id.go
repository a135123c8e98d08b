package upload

import "github.com/google/uuid"

// NewIdentifier returns a random (version 4) UUID in canonical form.
func NewIdentifier() string {
	return uuid.NewString()
}

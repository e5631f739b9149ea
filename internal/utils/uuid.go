package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the monotonic source fails. Used for request trace IDs.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// DeterministicUUID derives a name-based UUIDv5 from the given namespace and
// data. The same inputs always yield the same UUID, which makes it suitable
// for stable on-disk identifiers such as session vault file names.
func DeterministicUUID(namespace uuid.UUID, data []byte) string {
	return uuid.NewSHA1(namespace, data).String()
}

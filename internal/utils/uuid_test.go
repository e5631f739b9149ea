package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("generated value is not a valid UUID: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct UUIDs")
	}
}

func TestDeterministicUUID(t *testing.T) {
	ns := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	a := DeterministicUUID(ns, []byte("fingerprint-a"))
	b := DeterministicUUID(ns, []byte("fingerprint-a"))
	c := DeterministicUUID(ns, []byte("fingerprint-b"))

	if a != b {
		t.Fatal("expected stable UUID for identical inputs")
	}
	if a == c {
		t.Fatal("expected different UUID for different data")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Fatalf("derived value is not a valid UUID: %v", err)
	}
}

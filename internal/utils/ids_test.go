package utils

import (
	"regexp"
	"testing"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestObjectID_Format(t *testing.T) {
	id := ObjectID()

	if !objectIDPattern.MatchString(id) {
		t.Fatalf("expected 24 lowercase hex characters, got '%s'", id)
	}
}

func TestObjectID_Unique(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := ObjectID()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if first == "" || second == "" {
		t.Fatal("expected non-empty uuid strings")
	}
	if first == second {
		t.Fatalf("expected distinct uuids, got '%s' twice", first)
	}
	if len(first) != 36 {
		t.Fatalf("expected canonical 36-character uuid, got %d characters", len(first))
	}
}

package command

import (
	"errors"
	"testing"
)

// TestParse tests the command grammar
func TestParse(t *testing.T) {
	t.Run("parse SET command", func(t *testing.T) {
		cmd, err := Parse("SET user:1001 John")
		if err != nil {
			t.Fatalf("Failed to parse SET: %v", err)
		}

		if cmd.Kind != KindSet {
			t.Errorf("Expected KindSet, got %v", cmd.Kind)
		}
		if cmd.Key != "user:1001" {
			t.Errorf("Expected key 'user:1001', got %q", cmd.Key)
		}
		if cmd.Value != "John" {
			t.Errorf("Expected value 'John', got %q", cmd.Value)
		}
	})

	t.Run("parse SET with multi-word value", func(t *testing.T) {
		cmd, err := Parse("SET user:1001 John Doe")
		if err != nil {
			t.Fatalf("Failed to parse SET: %v", err)
		}

		if cmd.Value != "John Doe" {
			t.Errorf("Expected value 'John Doe', got %q", cmd.Value)
		}
	})

	t.Run("parse SET collapses extra whitespace", func(t *testing.T) {
		cmd, err := Parse("  SET   name   John   Doe  ")
		if err != nil {
			t.Fatalf("Failed to parse SET: %v", err)
		}

		if cmd.Key != "name" {
			t.Errorf("Expected key 'name', got %q", cmd.Key)
		}
		if cmd.Value != "John Doe" {
			t.Errorf("Expected value 'John Doe', got %q", cmd.Value)
		}
	})

	t.Run("parse GET command", func(t *testing.T) {
		cmd, err := Parse("GET user:1001")
		if err != nil {
			t.Fatalf("Failed to parse GET: %v", err)
		}

		if cmd.Kind != KindGet {
			t.Errorf("Expected KindGet, got %v", cmd.Kind)
		}
		if cmd.Key != "user:1001" {
			t.Errorf("Expected key 'user:1001', got %q", cmd.Key)
		}
	})

	t.Run("parse DELETE command", func(t *testing.T) {
		cmd, err := Parse("DELETE user:1001")
		if err != nil {
			t.Fatalf("Failed to parse DELETE: %v", err)
		}

		if cmd.Kind != KindDelete {
			t.Errorf("Expected KindDelete, got %v", cmd.Kind)
		}
		if cmd.Key != "user:1001" {
			t.Errorf("Expected key 'user:1001', got %q", cmd.Key)
		}
	})

	t.Run("reject empty line", func(t *testing.T) {
		_, err := Parse("")
		if err == nil {
			t.Fatal("Expected error for empty line")
		}
	})

	t.Run("reject whitespace-only line", func(t *testing.T) {
		_, err := Parse("   \t  ")
		if err == nil {
			t.Fatal("Expected error for whitespace-only line")
		}
	})

	t.Run("reject unknown verb", func(t *testing.T) {
		_, err := Parse("INVALID command")
		if err == nil {
			t.Fatal("Expected error for unknown verb")
		}

		// The error must be a ParseError carrying the offending text
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Expected *ParseError, got %T", err)
		}
		if parseErr.Line != "INVALID command" {
			t.Errorf("Expected offending line in error, got %q", parseErr.Line)
		}
	})

	t.Run("reject SET without value", func(t *testing.T) {
		_, err := Parse("SET key")
		if err == nil {
			t.Fatal("Expected error for SET without value")
		}
	})

	t.Run("reject GET with extra arguments", func(t *testing.T) {
		_, err := Parse("GET key extra")
		if err == nil {
			t.Fatal("Expected error for GET with extra arguments")
		}
	})

	t.Run("reject DELETE without key", func(t *testing.T) {
		_, err := Parse("DELETE")
		if err == nil {
			t.Fatal("Expected error for DELETE without key")
		}
	})

	t.Run("verbs are case-sensitive", func(t *testing.T) {
		_, err := Parse("set key value")
		if err == nil {
			t.Fatal("Expected error for lowercase verb")
		}
	})
}

// TestKindString verifies the verb names used in logs and summaries
func TestKindString(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{KindSet, "SET"},
		{KindGet, "GET"},
		{KindDelete, "DELETE"},
		{Kind(99), "UNKNOWN"},
	}

	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

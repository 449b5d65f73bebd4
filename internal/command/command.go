package command

import (
	"fmt"
	"strings"
)

// Kind identifies which store operation a command performs.
type Kind int

const (
	// KindSet stores a value under a key, overwriting any previous value
	KindSet Kind = iota
	// KindGet reads the value stored under a key
	KindGet
	// KindDelete removes a key and reports the value that was removed
	KindDelete
)

// String returns the verb for the command kind, as it appears in input
func (k Kind) String() string {
	switch k {
	case KindSet:
		return "SET"
	case KindGet:
		return "GET"
	case KindDelete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Command is a single parsed store operation.
// Value is populated for KindSet only.
type Command struct {
	Key   string
	Value string
	Kind  Kind
}

// ParseError reports an input line that does not match the command grammar.
// It carries the offending text so callers can surface it alongside the
// line number without keeping the raw input around.
type ParseError struct {
	Line string // offending text, surrounding whitespace trimmed
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid command: %q", e.Line)
}

// Parse converts one input line into a Command.
//
// The grammar accepts three verbs:
//
//	SET <key> <value...>   store a value (remaining tokens form the value)
//	GET <key>              read a value
//	DELETE <key>           remove a key
//
// Tokens are separated by arbitrary runs of whitespace. A SET value made of
// several tokens is rejoined with single spaces, so "SET name John  Doe"
// stores "John Doe". Anything else, including an empty line, returns a
// *ParseError.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, &ParseError{Line: strings.TrimSpace(line)}
	}

	switch fields[0] {
	case "SET":
		if len(fields) >= 3 {
			return Command{
				Kind:  KindSet,
				Key:   fields[1],
				Value: strings.Join(fields[2:], " "),
			}, nil
		}
	case "GET":
		if len(fields) == 2 {
			return Command{Kind: KindGet, Key: fields[1]}, nil
		}
	case "DELETE":
		if len(fields) == 2 {
			return Command{Kind: KindDelete, Key: fields[1]}, nil
		}
	}

	return Command{}, &ParseError{Line: strings.TrimSpace(line)}
}

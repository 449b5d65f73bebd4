// Package command implements the textual grammar for store operations,
// mapping raw input lines to structured Command values that the pipeline's
// executor can apply without re-inspecting the original text.
//
// # Overview
//
// The package is a pure, stateless string-to-structure mapping. It has no
// knowledge of the store, the pipeline, or line numbers; callers attach
// whatever provenance they need to the parsed result. This keeps parsing
// safe to run from any number of goroutines concurrently.
//
// # Grammar
//
// Three verbs are recognized, one command per line:
//
//	SET <key> <value...>   store a value under a key (overwrites)
//	GET <key>              read the value stored under a key
//	DELETE <key>           remove a key
//
// Tokens are split on arbitrary whitespace. SET is the only verb that takes
// a multi-token tail: the remaining tokens are rejoined with single spaces
// to form the value, so values may contain spaces but not leading, trailing,
// or doubled ones. GET and DELETE require exactly one argument; extra tokens
// make the line invalid.
//
// # Error Handling
//
// Any line that does not match the grammar, including a blank line, produces
// a *ParseError carrying the trimmed offending text. Parse failures are data,
// not exceptions: the pipeline forwards them downstream as failed results
// rather than stopping, so one bad line never interrupts processing.
package command

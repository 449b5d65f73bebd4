package pipeline

import "github.com/dreamware/kvpipe/internal/command"

// RawLine is one non-blank input line together with its position in the
// source. Produced once per line, in strictly increasing LineNumber order,
// and never modified afterwards.
type RawLine struct {
	Content    string
	LineNumber int
}

// CommandMessage carries one parsed line from a parser worker to the
// executor over the fan-in channel. Exactly one of Cmd or ParseErr is
// meaningful: a non-nil ParseErr marks a parse failure and Raw holds the
// offending text.
//
// Ownership transfers with the message: the worker that built it never
// touches it after the send, so the executor reads it without locking.
type CommandMessage struct {
	Cmd        command.Command
	ParseErr   error
	Raw        string
	LineNumber int
	WorkerID   int
}

// Result is the executor's outcome for one consumed line. A nil Err means
// success and Output carries the operative value: the stored value for SET,
// the fetched value for GET, the removed value for DELETE. A non-nil Err
// wraps either storage.ErrKeyNotFound or a *command.ParseError.
type Result struct {
	Output     string
	Err        error
	LineNumber int
}

// ResultHandler receives one Result per consumed line. It is invoked from
// the executor's goroutine, sequentially and in fan-in arrival order, so
// implementations need no locking of their own but must not block for long.
type ResultHandler func(Result)

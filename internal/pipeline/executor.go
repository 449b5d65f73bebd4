package pipeline

import (
	"fmt"

	"github.com/dreamware/kvpipe/internal/command"
	"github.com/dreamware/kvpipe/internal/storage"
)

// executor is the single goroutine that owns the key-value store. It
// consumes command messages from the fan-in channel strictly in arrival
// order and applies them sequentially, so the store itself needs no
// locking: the channel is the only synchronization point.
type executor struct {
	store  storage.Store
	in     <-chan CommandMessage
	handle ResultHandler

	// Counts are written only by the executor goroutine and read by the
	// pool after it has joined the executor.
	executed int
	failed   int
}

// run drains the fan-in channel until it is closed, producing exactly one
// Result per message received.
func (e *executor) run() {
	for msg := range e.in {
		res := e.apply(msg)
		if res.Err != nil {
			e.failed++
		} else {
			e.executed++
		}
		if e.handle != nil {
			e.handle(res)
		}
	}
}

// apply executes one command against the store.
// Parse failures are recorded without touching the store.
func (e *executor) apply(msg CommandMessage) Result {
	res := Result{LineNumber: msg.LineNumber}

	if msg.ParseErr != nil {
		res.Err = msg.ParseErr
		return res
	}

	switch msg.Cmd.Kind {
	case command.KindSet:
		e.store.Set(msg.Cmd.Key, msg.Cmd.Value)
		res.Output = msg.Cmd.Value
	case command.KindGet:
		value, err := e.store.Get(msg.Cmd.Key)
		if err != nil {
			res.Err = fmt.Errorf("GET %s: %w", msg.Cmd.Key, err)
			return res
		}
		res.Output = value
	case command.KindDelete:
		value, err := e.store.Delete(msg.Cmd.Key)
		if err != nil {
			res.Err = fmt.Errorf("DELETE %s: %w", msg.Cmd.Key, err)
			return res
		}
		res.Output = value
	default:
		// Unreachable while the parser and executor agree on command kinds
		res.Err = fmt.Errorf("unknown command kind %d", msg.Cmd.Kind)
	}

	return res
}

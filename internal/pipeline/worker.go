package pipeline

import (
	"github.com/dreamware/kvpipe/internal/command"
	"github.com/dreamware/kvpipe/internal/config"
)

// worker is one parser worker: it competes with its siblings for raw lines
// from the distribution queue, parses each outside the dequeue critical
// section, and forwards the outcome to the executor over the fan-in channel.
//
// Workers share no mutable state with each other; the queue and the fan-in
// channel are their only points of contact.
type worker struct {
	id      int
	queue   *LineQueue
	out     chan<- CommandMessage
	delayer config.Delayer

	// processed counts lines taken from the queue. Written only by the
	// worker's own goroutine; the pool reads it after joining the worker.
	processed int
}

// run loops until the queue reports end-of-stream.
//
// Parse failures do not stop the worker: they travel downstream as
// CommandMessages with ParseErr set, so the executor can report them
// without the pipeline ever halting on bad input.
func (w *worker) run() {
	for {
		line, ok := w.queue.Take()
		if !ok {
			return
		}
		w.processed++

		// Chaos hook: simulated I/O latency between taking a line and
		// parsing it. A no-op unless delay injection is configured.
		w.delayer.Delay()

		msg := CommandMessage{
			LineNumber: line.LineNumber,
			WorkerID:   w.id,
		}
		cmd, err := command.Parse(line.Content)
		if err != nil {
			msg.ParseErr = err
			msg.Raw = line.Content
		} else {
			msg.Cmd = cmd
		}

		w.out <- msg
	}
}

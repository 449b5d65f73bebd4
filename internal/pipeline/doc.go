// Package pipeline implements kvpipe's concurrent command-processing core:
// the work-stealing distribution of raw input lines across a pool of parser
// workers, the fan-in of parsed commands into a single serializing executor,
// and the coordinated shutdown protocol that ties those lifecycles together.
//
// # Overview
//
// The pipeline exists to demonstrate competitive work distribution with
// exactly-once delivery. Every input line is taken by exactly one parser
// worker and every parsed command is applied by exactly one executor; the
// only nondeterminism is which worker takes which line and how their sends
// interleave at the fan-in channel.
//
// # Architecture
//
// Data flows through two channels, with fan-out at the first and fan-in at
// the second:
//
//	┌──────────┐
//	│ Producer │ one goroutine, FIFO into the queue
//	└────┬─────┘
//	     │ LineQueue (bounded)
//	 ┌───┴───────┬───────────┐
//	 ▼           ▼           ▼
//	┌────────┐ ┌────────┐ ┌────────┐
//	│Worker 0│ │Worker 1│ │Worker N│  compete for lines, parse in parallel
//	└───┬────┘ └───┬────┘ └───┬────┘
//	    └──────────┼──────────┘
//	               │ fan-in channel (bounded)
//	               ▼
//	          ┌─────────┐
//	          │Executor │ single goroutine, owns the store
//	          └─────────┘
//
// The channel receive is the one dequeue critical section; parsing happens
// outside it, so workers parse in parallel and a fast worker naturally
// returns for more work sooner. No scheduling policy exists beyond "first
// ready receiver wins".
//
// # Shutdown Protocol
//
// Termination propagates downstream through channel closure alone; there
// is no mid-flight cancellation and no polling:
//
//  1. The producer pushes its last line and calls CloseInput.
//  2. Each worker drains remaining buffered lines, observes end-of-stream,
//     and terminates; Wait joins them all.
//  3. Only after every worker has joined does Wait close the fan-in
//     channel. This ordering guarantees the executor cannot observe
//     end-of-stream while a worker might still be about to send, and that
//     no send can ever hit a closed channel (which would be a fatal
//     protocol violation, not a recoverable error).
//  4. The executor drains the fan-in buffer, terminates, and Wait returns
//     the run summary.
//
// # Failure Model
//
// Per-line failures are data: a malformed line travels downstream as a
// CommandMessage with ParseErr set and surfaces as a failed Result; a GET
// or DELETE on an absent key fails the same way. Neither stops anything.
//
// A worker panic is different: the pool recovers it, records an anomaly,
// and joins the remaining workers normally, but the crashed worker's
// in-flight line is lost: it was consumed from the queue and will never
// produce a result. The summary flags this (Lost count plus an anomaly
// entry) because it breaks the run's exactly-once accounting; nothing is
// ever silently dropped.
//
// # Ordering Guarantees
//
// FIFO holds along each single production path: source order into the
// queue, and each worker's sends into the fan-in channel. Cross-worker
// interleaving at the fan-in channel is unordered by design. Commands on
// the same key from different workers therefore land in nondeterministic
// relative order; "last applied wins" is the only guarantee, and line
// numbers survive the whole trip (RawLine through CommandMessage to
// Result), so callers can reconcile out-of-order completion after the fact.
// Commands on disjoint keys always produce the same final store regardless
// of worker count or chaos configuration.
package pipeline

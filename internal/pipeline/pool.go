package pipeline

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dreamware/kvpipe/internal/config"
	"github.com/dreamware/kvpipe/internal/storage"
)

// Buffer capacities for the two pipeline channels. Bounded so a slow
// executor applies backpressure instead of growing memory without limit.
const (
	lineQueueCapacity = 128
	fanInCapacity     = 128
)

// Pool wires the distribution queue, the parser workers, and the executor
// together and owns the shutdown protocol that ties their lifecycles into
// one run.
//
// A Pool is single-use. The expected call sequence is:
//
//	pool := pipeline.New(cfg, store, handler)
//	pool.Start()
//	pool.Push(...)        // or pool.Feed(reader), from ONE producer goroutine
//	pool.CloseInput()
//	summary := pool.Wait()
//
// or the Run convenience that performs the whole cycle. Wait must not be
// called before CloseInput: workers exit only when the queue is closed and
// drained.
type Pool struct {
	cfg     *config.Config
	queue   *LineQueue
	fanIn   chan CommandMessage
	workers []*worker
	exec    *executor
	delayer config.Delayer

	workerWG sync.WaitGroup
	execDone chan struct{}

	runID    string
	started  time.Time
	fedUntil time.Time

	// lines counts Push calls; owned by the producer goroutine and read
	// by Wait, which the same goroutine calls after CloseInput.
	lines int

	mu        sync.Mutex // protects anomalies
	anomalies []string
}

// Summary reports the outcome of one pipeline run.
type Summary struct {
	RunID string

	Lines    int // lines pushed into the distribution queue
	Executed int // commands applied successfully
	Failed   int // parse failures plus key-not-found failures
	Lost     int // lines consumed but never executed (worker crashes)

	// WorkerCounts holds the number of lines each worker slot took from
	// the distribution queue, indexed by worker ID.
	WorkerCounts []int

	// Anomalies is non-empty when the run broke the exactly-once
	// guarantee, e.g. a worker crashed mid-line.
	Anomalies []string

	FeedPhase  time.Duration // Start until the producer closed the queue
	ParsePhase time.Duration // queue close until the last worker joined
	DrainPhase time.Duration // last worker join until the executor drained
	Elapsed    time.Duration
}

// Incomplete reports whether the run lost lines or recorded anomalies,
// i.e. whether the every-line-processed-exactly-once invariant held.
func (s Summary) Incomplete() bool {
	return s.Lost != 0 || len(s.Anomalies) > 0
}

// New creates a pool for one pipeline run. The store passes into the
// executor's exclusive ownership until Wait returns; the handler, which may
// be nil, receives every result from the executor goroutine.
func New(cfg *config.Config, store storage.Store, handler ResultHandler) *Pool {
	p := &Pool{
		cfg:      cfg,
		queue:    NewLineQueue(lineQueueCapacity),
		fanIn:    make(chan CommandMessage, fanInCapacity),
		execDone: make(chan struct{}),
		delayer:  cfg.Chaos.NewDelayer(),
		runID:    uuid.NewString(),
	}

	p.exec = &executor{store: store, in: p.fanIn, handle: handler}

	p.workers = make([]*worker, cfg.Workers)
	for id := range p.workers {
		p.workers[id] = &worker{id: id, queue: p.queue, out: p.fanIn}
	}

	return p
}

// RunID returns the unique identifier for this run, as reported in the
// summary and in log lines.
func (p *Pool) RunID() string {
	return p.runID
}

// Start spawns the parser workers and the executor. It returns immediately;
// the pipeline then consumes whatever the producer pushes.
func (p *Pool) Start() {
	p.started = time.Now()
	log.Printf("pool %s: starting %d parser workers (chaos %v)", p.runID, p.cfg.Workers, p.cfg.Chaos.Enabled)

	for _, w := range p.workers {
		w.delayer = p.delayer
		p.workerWG.Add(1)
		go p.runWorker(w)
	}

	go func() {
		defer close(p.execDone)
		p.exec.run()
	}()
}

// runWorker runs one worker to completion, converting a panic into a
// recorded anomaly instead of letting it take the process down. The
// crashed worker's in-flight line is lost; the join of the other workers
// is unaffected.
func (p *Pool) runWorker(w *worker) {
	defer p.workerWG.Done()
	defer func() {
		if r := recover(); r != nil {
			p.recordAnomaly(fmt.Sprintf("worker %d crashed: %v", w.id, r))
		}
	}()
	w.run()
}

// Push submits one raw line to the distribution queue. All pushes must come
// from a single producer goroutine, which preserves the source's FIFO order
// into the queue.
func (p *Pool) Push(line RawLine) {
	p.lines++
	p.queue.Push(line)
}

// CloseInput signals that no more lines are coming. Workers finish whatever
// is buffered and terminate. Must be called exactly once, after the last
// Push and before Wait.
func (p *Pool) CloseInput() {
	p.fedUntil = time.Now()
	p.queue.Close()
}

// Wait runs the shutdown protocol and blocks until the pipeline is fully
// drained, then reports the run summary.
//
// The ordering here is load-bearing and must not change:
//
//  1. join every parser worker (the producer already closed the queue);
//  2. only then close the fan-in channel: no worker can still be about
//     to send, so the close can never race a send;
//  3. join the executor once it has drained the fan-in buffer.
//
// Closing the fan-in channel before the workers have joined would risk a
// send on a closed channel, which is a fatal protocol violation.
func (p *Pool) Wait() Summary {
	p.workerWG.Wait()
	workersJoined := time.Now()

	close(p.fanIn)
	<-p.execDone
	drained := time.Now()

	s := Summary{
		RunID:        p.runID,
		Lines:        p.lines,
		Executed:     p.exec.executed,
		Failed:       p.exec.failed,
		WorkerCounts: make([]int, len(p.workers)),
		FeedPhase:    p.fedUntil.Sub(p.started),
		ParsePhase:   workersJoined.Sub(p.fedUntil),
		DrainPhase:   drained.Sub(workersJoined),
		Elapsed:      drained.Sub(p.started),
	}
	for i, w := range p.workers {
		s.WorkerCounts[i] = w.processed
	}

	p.mu.Lock()
	s.Anomalies = append([]string(nil), p.anomalies...)
	p.mu.Unlock()

	// Every pushed line must surface as exactly one result; the shortfall
	// is lines lost to crashed workers.
	s.Lost = s.Lines - (s.Executed + s.Failed)
	if s.Lost != 0 {
		s.Anomalies = append(s.Anomalies,
			fmt.Sprintf("%d of %d lines produced no result", s.Lost, s.Lines))
	}

	p.logSummary(s)
	return s
}

// Run drives a whole pipeline cycle from a reader: start, feed every
// non-blank line, close input, and wait for the drain. The returned error
// reports a read failure only; per-line failures live in the summary.
func (p *Pool) Run(r io.Reader) (Summary, error) {
	p.Start()
	_, err := p.Feed(r)
	p.CloseInput()
	s := p.Wait()
	return s, err
}

func (p *Pool) recordAnomaly(msg string) {
	log.Printf("pool %s: %s", p.runID, msg)
	p.mu.Lock()
	p.anomalies = append(p.anomalies, msg)
	p.mu.Unlock()
}

func (p *Pool) logSummary(s Summary) {
	log.Printf("pool %s: %d lines in, %d executed, %d failed in %v (feed %v, parse %v, drain %v)",
		s.RunID, s.Lines, s.Executed, s.Failed, s.Elapsed, s.FeedPhase, s.ParsePhase, s.DrainPhase)
	for id, count := range s.WorkerCounts {
		log.Printf("pool %s: worker %d took %d lines", s.RunID, id, count)
	}
	for _, a := range s.Anomalies {
		log.Printf("pool %s: ANOMALY: %s", s.RunID, a)
	}
}

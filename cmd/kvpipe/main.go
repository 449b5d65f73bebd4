// Command kvpipe reads line-oriented SET/GET/DELETE commands from a file
// (or stdin with "-") and applies them to an in-memory key-value store
// through a parallel ingestion pipeline: a pool of parser workers competes
// for input lines and funnels parsed commands into a single executor.
//
// Usage:
//
//	kvpipe [input-file]
//
// The input path defaults to "input.txt". Configuration comes from the
// environment (see internal/config); per-line parse and execution failures
// are reported but never fail the process. Only a structural failure such
// as an unreadable input file produces a non-zero exit.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/exp/slices"

	"github.com/dreamware/kvpipe/internal/config"
	"github.com/dreamware/kvpipe/internal/pipeline"
	"github.com/dreamware/kvpipe/internal/storage"
)

func main() {
	path := "input.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(path, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("kvpipe: %v", err)
	}
}

// run executes one full pipeline cycle over the named input.
// It returns an error only for structural failures; per-line failures are
// written to stderr and counted in the summary.
func run(path string, stdout, stderr io.Writer) error {
	cfg := config.FromEnv()
	cfg.Log()

	in, closeIn, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeIn()

	store := storage.NewMemoryStore()
	pool := pipeline.New(cfg, store, func(res pipeline.Result) {
		if res.Err != nil {
			fmt.Fprintf(stderr, "[%d] Error: %v\n", res.LineNumber, res.Err)
		} else {
			fmt.Fprintf(stdout, "[%d] %s\n", res.LineNumber, res.Output)
		}
	})

	summary, err := pool.Run(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	printStore(stdout, store)
	if summary.Incomplete() {
		log.Printf("run %s finished INCOMPLETE: %d lines lost", summary.RunID, summary.Lost)
	}
	return nil
}

// openInput opens the input source, with "-" meaning stdin
func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// printStore writes the final store contents in sorted key order
func printStore(w io.Writer, store storage.Store) {
	stats := store.Stats()
	fmt.Fprintf(w, "final store: %d keys, %d bytes\n", stats.Keys, stats.Bytes)

	keys := store.Keys()
	slices.Sort(keys)
	for _, key := range keys {
		value, err := store.Get(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %s = %s\n", key, value)
	}
}

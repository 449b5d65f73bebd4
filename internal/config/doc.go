// Package config provides kvpipe's process-wide configuration: an immutable
// value constructed once from the environment and shared by read-only
// reference with every pipeline component, plus the chaos-delay strategy
// used to stress-test the pipeline's concurrency.
//
// # Overview
//
// Configuration follows the same discipline the rest of the system applies
// to shared state: build it once, before any goroutine starts, and never
// mutate it afterward. There are no setters and no locks; immutability is
// enforced by convention and ownership, not runtime checks.
//
// # Environment Variables
//
// All variables are optional and carry explicit defaults:
//
//	KVPIPE_WORKERS        number of parser workers (default 4)
//	KVPIPE_CHAOS          "true" or "1" enables delay injection (default off)
//	KVPIPE_CHAOS_MIN_MS   lower delay bound in milliseconds (default 500)
//	KVPIPE_CHAOS_MAX_MS   upper delay bound in milliseconds (default 2000)
//
// Malformed values are logged and replaced by their defaults; startup never
// fails on configuration. An inverted min/max range is swapped, with a
// warning, instead of rejected.
//
// # Chaos Injection
//
// Chaos delays simulate variable I/O latency inside parser workers to widen
// race windows during testing: each worker sleeps for a uniformly random
// duration in [min, max] after taking a line and before parsing it. The
// capability is structured as a strategy object rather than scattered flag
// checks: ChaosConfig.NewDelayer returns either a no-op (chaos disabled,
// zero overhead) or a uniform random sleeper. Pipeline behavior with delays
// enabled must be identical to behavior with them disabled in everything
// except timing; the degenerate min=max=0 range is exercised by tests to
// pin that down.
package config

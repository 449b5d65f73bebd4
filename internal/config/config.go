package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv. Every one is optional; malformed
// or missing values fall back to the defaults below rather than aborting
// startup.
const (
	EnvWorkers  = "KVPIPE_WORKERS"      // number of parser workers
	EnvChaos    = "KVPIPE_CHAOS"        // "true" or "1" enables delay injection
	EnvChaosMin = "KVPIPE_CHAOS_MIN_MS" // lower delay bound in milliseconds
	EnvChaosMax = "KVPIPE_CHAOS_MAX_MS" // upper delay bound in milliseconds
)

// Defaults applied when an environment variable is absent or malformed
const (
	DefaultWorkers    = 4
	DefaultChaosMinMS = 500
	DefaultChaosMaxMS = 2000
)

// Config holds the process-wide pipeline configuration.
//
// A Config is built exactly once, before any worker or executor is spawned,
// and shared by read-only pointer with every component. Nothing mutates it
// after construction; there is no synchronization because none is needed.
type Config struct {
	// Workers is the number of parser workers competing for input lines.
	// Always at least 1.
	Workers int

	// Chaos configures artificial per-line delay injection for stress
	// testing. Disabled by default.
	Chaos ChaosConfig
}

// ChaosConfig gates the deterministic-delay hook used to widen race windows
// while testing the pipeline. When Enabled is false the hook is a guaranteed
// no-op with no measurable overhead.
type ChaosConfig struct {
	Enabled  bool
	MinDelay time.Duration
	MaxDelay time.Duration
}

// FromEnv builds the configuration from environment variables.
//
// Unrecognized or malformed values fall back to their defaults, so the
// absence of any variable never prevents startup. An inverted delay range
// is swapped with a logged warning rather than rejected.
func FromEnv() *Config {
	workers := intFromEnv(EnvWorkers, DefaultWorkers)
	if workers < 1 {
		log.Printf("config: %s must be positive, using default %d", EnvWorkers, DefaultWorkers)
		workers = DefaultWorkers
	}

	minMS := intFromEnv(EnvChaosMin, DefaultChaosMinMS)
	maxMS := intFromEnv(EnvChaosMax, DefaultChaosMaxMS)
	if minMS < 0 {
		minMS = DefaultChaosMinMS
	}
	if maxMS < 0 {
		maxMS = DefaultChaosMaxMS
	}
	if minMS > maxMS {
		log.Printf("config: chaos min delay %dms exceeds max %dms, swapping", minMS, maxMS)
		minMS, maxMS = maxMS, minMS
	}

	return &Config{
		Workers: workers,
		Chaos: ChaosConfig{
			Enabled:  boolFromEnv(EnvChaos),
			MinDelay: time.Duration(minMS) * time.Millisecond,
			MaxDelay: time.Duration(maxMS) * time.Millisecond,
		},
	}
}

// Log prints the active configuration, mirroring what a run will do
func (c *Config) Log() {
	log.Printf("config: %d parser workers", c.Workers)
	if c.Chaos.Enabled {
		log.Printf("config: chaos delays enabled, %v-%v per line", c.Chaos.MinDelay, c.Chaos.MaxDelay)
	} else {
		log.Printf("config: chaos delays disabled")
	}
}

// intFromEnv reads an integer environment variable with a default
func intFromEnv(name string, def int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("config: invalid %s=%q, using default %d", name, raw, def)
		return def
	}
	return v
}

// boolFromEnv reads a boolean environment variable, false unless "true" or "1"
func boolFromEnv(name string) bool {
	raw := os.Getenv(name)
	return raw == "true" || raw == "1"
}

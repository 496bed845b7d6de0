package main

import (
	"fmt"
	"runtime"

	"github.com/alnah/go-md2site/internal/config"
)

// maxAutoWorkers caps the worker count when it is derived from GOMAXPROCS.
const maxAutoWorkers = 8

// resolveWorkers determines the number of build workers.
// Priority: explicit value > GOMAXPROCS-based calculation.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	available := runtime.GOMAXPROCS(0)
	if available < 1 {
		return 1
	}
	if available > maxAutoWorkers {
		return maxAutoWorkers
	}
	return available
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"
)

// Environment is everything a command touches outside its arguments.
// Tests swap in buffers, a fixed clock and a fake working directory.
type Environment struct {
	Now    func() time.Time
	Getwd  func() (string, error)
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv wires the process streams, clock and working directory.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Getwd:  os.Getwd,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// notifyContext cancels on the platform's shutdown signals.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, shutdownSignals...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

// Package spinner renders a terminal progress indicator with elapsed time
// for long-running operations. Pure UX decoration: it writes to the given
// writer on a background goroutine and has no effect on the operation it
// decorates.
package spinner

import (
	"fmt"
	"io"
	"time"
)

var frames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// Spinner animates a message on a single terminal line until stopped.
type Spinner struct {
	message string
	out     io.Writer
	stop    chan struct{}
	stopped chan struct{}
}

// New creates a spinner that writes to out. It does not start animating
// until Start is called.
func New(message string, out io.Writer) *Spinner {
	return &Spinner{
		message: message,
		out:     out,
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
}

// Start begins the animation on a background goroutine.
func (s *Spinner) Start() {
	go s.spin()
}

// Stop halts the animation and clears the spinner line. Safe to call only
// once, after Start.
func (s *Spinner) Stop() {
	close(s.stop)
	<-s.stopped
	fmt.Fprint(s.out, "\r\033[K")
}

func (s *Spinner) spin() {
	defer close(s.stopped)

	start := time.Now()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			elapsed := time.Since(start).Seconds()
			fmt.Fprintf(s.out, "\r%c %s (%.0fs)", frames[i%len(frames)], s.message, elapsed)
		}
	}
}

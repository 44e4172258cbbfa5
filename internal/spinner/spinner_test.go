// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 TestCraft AI

package spinner

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards writes from the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf []byte
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf = append(b.buf, p...)
	return len(p), nil
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.buf)
}

func TestSpinner_WritesFramesAndClears(t *testing.T) {
	out := &syncBuffer{}

	s := New("working", out)
	s.Start()
	time.Sleep(250 * time.Millisecond)
	s.Stop()

	text := out.String()
	assert.Contains(t, text, "working")
	assert.Contains(t, text, "\r\033[K") // line cleared on stop
}

func TestSpinner_StopBeforeFirstTick(t *testing.T) {
	out := &syncBuffer{}

	s := New("quick", out)
	s.Start()
	s.Stop()

	// No frame may have rendered, but the line is always cleared.
	assert.Contains(t, out.String(), "\r\033[K")
}

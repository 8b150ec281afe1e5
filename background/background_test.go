// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/collectables/background"
)

// counts until told to stop, then records that it saw the shutdown
type counter struct {
	started chan struct{}
	ticks   int64
	stopped int32
}

func (c *counter) Run(args interface{}, shutdown <-chan struct{}) {
	close(c.started)
	increment := args.(int64)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&c.ticks, increment)
	}
	atomic.StoreInt32(&c.stopped, 1)
}

func TestStartStop(t *testing.T) {
	processes := background.Processes{
		&counter{started: make(chan struct{})},
		&counter{started: make(chan struct{})},
	}

	p := background.Start(processes, int64(3))
	for _, proc := range processes {
		<-proc.(*counter).started
	}
	p.Stop()

	// Stop waits, so every process has finished
	for i, proc := range processes {
		c := proc.(*counter)
		assert.Equal(t, int32(1), atomic.LoadInt32(&c.stopped), "process %d still running", i)
		assert.Equal(t, int64(0), atomic.LoadInt64(&c.ticks)%3, "process %d wrong argument", i)
	}
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}

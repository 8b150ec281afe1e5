// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"

	"github.com/bitmark-inc/collectables/registry"
	"github.com/bitmark-inc/logger"
)

// internal constants
const (
	defaultQueueSize = 1000
)

// Message - a queued event
type Message struct {
	Command string
	Event   registry.Event
}

// Queue - a single consumer event queue
type Queue struct {
	sync.Mutex
	log     *logger.L
	queue   chan Message
	dropped uint64
}

// New - queue holding up to size events, zero for the default
func New(size int, log *logger.L) *Queue {
	if size <= 0 {
		size = defaultQueueSize
	}
	return &Queue{
		log:   log,
		queue: make(chan Message, size),
	}
}

// Notify - queue an event without blocking
func (q *Queue) Notify(e registry.Event) {
	m := Message{
		Command: e.Name(),
		Event:   e,
	}
	select {
	case q.queue <- m:
	default:
		q.Lock()
		q.dropped += 1
		q.Unlock()
		q.log.Warnf("queue full, dropped: %s", m.Command)
	}
}

// Chan - channel to read from
func (q *Queue) Chan() <-chan Message {
	return q.queue
}

// Dropped - number of events lost to a full queue
func (q *Queue) Dropped() uint64 {
	q.Lock()
	defer q.Unlock()
	return q.dropped
}

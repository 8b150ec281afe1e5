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

// Broadcast - deliver each event to every listener
//
// events sent while nobody listens are discarded
type Broadcast struct {
	sync.RWMutex
	log       *logger.L
	listeners []chan Message
}

// NewBroadcast - broadcaster with no listeners
func NewBroadcast(log *logger.L) *Broadcast {
	return &Broadcast{
		log: log,
	}
}

// Notify - send an event to all listeners without blocking
func (b *Broadcast) Notify(e registry.Event) {
	m := Message{
		Command: e.Name(),
		Event:   e,
	}

	b.RLock()
	defer b.RUnlock()

	for i, listener := range b.listeners {
		select {
		case listener <- m:
		default:
			b.log.Warnf("listener: %d  full, dropped: %s", i, m.Command)
		}
	}
}

// Chan - add a listener with a buffer of size, zero for the default
func (b *Broadcast) Chan(size int) <-chan Message {
	if size <= 0 {
		size = defaultQueueSize
	}
	c := make(chan Message, size)

	b.Lock()
	b.listeners = append(b.listeners, c)
	b.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (b *Broadcast) Release(c <-chan Message) {
	b.Lock()
	defer b.Unlock()

	for i, listener := range b.listeners {
		if (<-chan Message)(listener) == c {
			close(listener)
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"encoding/json"
	"sync"

	"github.com/bitmark-inc/collectables/background"
	"github.com/bitmark-inc/logger"
)

// EventLog - drains a queue into a log channel
//
// run it with background.Start; args are ignored
type EventLog struct {
	sync.Mutex
	log    *logger.L
	queue  <-chan Message
	logged uint64
}

// NewEventLog - log every event read from queue
func NewEventLog(queue <-chan Message, log *logger.L) *EventLog {
	return &EventLog{
		log:   log,
		queue: queue,
	}
}

// StartEventLog - convenience wrapper starting a single event log
func StartEventLog(queue <-chan Message, log *logger.L) (*EventLog, *background.T) {
	e := NewEventLog(queue, log)
	return e, background.Start(background.Processes{e}, nil)
}

// Run - background loop
func (e *EventLog) Run(args interface{}, shutdown <-chan struct{}) {
	e.log.Info("starting…")
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case m, ok := <-e.queue:
			if !ok {
				break loop
			}
			e.write(m)
		}
	}
	e.log.Info("stopped")
}

func (e *EventLog) write(m Message) {
	b, err := json.Marshal(m.Event)
	if nil != err {
		e.log.Errorf("event: %s  marshal error: %s", m.Command, err)
	} else {
		e.log.Infof("event: %s  %s", m.Command, b)
	}

	e.Lock()
	e.logged += 1
	e.Unlock()
}

// Logged - number of events written
func (e *EventLog) Logged() uint64 {
	e.Lock()
	defer e.Unlock()
	return e.logged
}

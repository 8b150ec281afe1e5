// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues carrying registry events to observers
//
// sending never blocks the registry: a full queue drops the event and
// logs a warning
package messagebus

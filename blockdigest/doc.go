// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package blockdigest - the hash of a block as supplied by the host ledger
//
// the registry never computes block hashes itself; it only mixes the
// most recent one into each new asset fingerprint
package blockdigest

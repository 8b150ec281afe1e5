// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fingerprint - unique asset identifiers
//
// a fingerprint is the blake2b-256 hash of the host ledger's current
// position mixed with the registry's mint counter:
//
//   blockHash(32) ‖ height(u64 LE) ‖ operationIndex(u32 LE) ‖ counter(u32 LE)
//
// operationIndex is zero when the host cannot supply it; the counter
// alone keeps several mints in one block distinct
package fingerprint

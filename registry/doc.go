// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - mint, transfer, price and sell collectibles
//
// every operation validates all of its preconditions inside a single
// storage transaction and commits once; a failed operation leaves the
// assets, the owner lists and the mint counter exactly as they were.
//
// invariant: each asset's fingerprint appears exactly once, in the
// owner list of the asset's owner
package registry

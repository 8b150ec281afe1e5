// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - minted collectibles keyed by fingerprint
//
// an asset is never removed; only its owner and price change
package asset

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the list of fingerprints each account holds
//
// lists are bounded by MaximumOwned; removal moves the last entry into
// the vacated slot so list order is not stable across removals
package ownership

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package currency - payment between accounts
//
// the registry only needs to move an amount from a buyer to a seller;
// the ledger that owns balances is supplied by the host through the
// Transferer interface. Balances is a complete in-memory ledger with
// an existential deposit for hosts and tests that have none.
package currency

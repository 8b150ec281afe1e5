// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"github.com/bitmark-inc/collectables/account"
)

//go:generate mockgen -source=transferer.go -destination=mocks/transferer.go -package=mocks

// Transferer - moves funds between accounts
//
// on error nothing has moved; the error is one of
// fault.InsufficientFunds or fault.WouldReapAccount or a host error
type Transferer interface {
	Transfer(from *account.Account, to *account.Account, amount Amount, existence Existence) error
}

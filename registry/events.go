// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/currency"
	"github.com/bitmark-inc/collectables/fingerprint"
)

// Event - a notification of a completed operation
type Event interface {
	Name() string
}

// Notifier - receives events after each successful commit
//
// Notify is called with the registry lock held and must not block
type Notifier interface {
	Notify(Event)
}

// Created - a new asset was minted
type Created struct {
	Owner       *account.Account        `json:"owner"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
}

// Transferred - an asset changed owner
type Transferred struct {
	From        *account.Account        `json:"from"`
	To          *account.Account        `json:"to"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
}

// PriceSet - an asset was listed or delisted (Price nil)
type PriceSet struct {
	Owner       *account.Account        `json:"owner"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	Price       *currency.Amount        `json:"price"`
}

// Sold - an asset was bought at its listed price
type Sold struct {
	Buyer       *account.Account        `json:"buyer"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	Price       currency.Amount         `json:"price"`
}

// Name - event name
func (Created) Name() string { return "created" }

// Name - event name
func (Transferred) Name() string { return "transferred" }

// Name - event name
func (PriceSet) Name() string { return "priceSet" }

// Name - event name
func (Sold) Name() string { return "sold" }

type discard struct{}

func (discard) Notify(Event) {}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"sync"

	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/logger"
)

// Balances - in-memory ledger with an existential deposit
//
// an account whose balance falls below the minimum is reaped, i.e.
// removed together with its remaining dust
type Balances struct {
	sync.Mutex
	log      *logger.L
	minimum  Amount
	accounts map[string]Amount
}

// NewBalances - empty ledger
func NewBalances(minimum Amount, log *logger.L) *Balances {
	return &Balances{
		log:      log,
		minimum:  minimum,
		accounts: make(map[string]Amount),
	}
}

// Minimum - the existential deposit
func (b *Balances) Minimum() Amount {
	return b.minimum
}

// Deposit - create funds in an account
func (b *Balances) Deposit(to *account.Account, amount Amount) error {
	b.Lock()
	defer b.Unlock()

	key := string(to.Bytes())
	balance := b.accounts[key]
	if balance+amount < balance {
		return fault.BalanceOverflow
	}
	balance += amount
	if balance < b.minimum {
		return fault.BelowMinimumBalance
	}
	b.accounts[key] = balance

	b.log.Debugf("deposit: %d to: %s  balance: %d", amount, to, balance)
	return nil
}

// Balance - current funds of an account, zero if reaped or unknown
func (b *Balances) Balance(a *account.Account) Amount {
	b.Lock()
	defer b.Unlock()
	return b.accounts[string(a.Bytes())]
}

// Transfer - move funds between accounts
//
// a zero amount or a payment to self succeeds without change
func (b *Balances) Transfer(from *account.Account, to *account.Account, amount Amount, existence Existence) error {
	b.Lock()
	defer b.Unlock()

	if 0 == amount || from.Equal(to) {
		return nil
	}

	fromKey := string(from.Bytes())
	toKey := string(to.Bytes())

	fromBalance := b.accounts[fromKey]
	if fromBalance < amount {
		b.log.Warnf("transfer: %d from: %s  balance: %d  error: %s", amount, from, fromBalance, fault.InsufficientFunds)
		return fault.InsufficientFunds
	}

	remaining := fromBalance - amount
	if remaining < b.minimum && KeepAlive == existence {
		b.log.Warnf("transfer: %d from: %s  remaining: %d  error: %s", amount, from, remaining, fault.WouldReapAccount)
		return fault.WouldReapAccount
	}

	toBalance := b.accounts[toKey]
	if toBalance+amount < toBalance {
		return fault.BalanceOverflow
	}
	if toBalance+amount < b.minimum {
		return fault.BelowMinimumBalance
	}

	if remaining < b.minimum {
		delete(b.accounts, fromKey)
		b.log.Infof("reaped: %s  dust: %d", from, remaining)
	} else {
		b.accounts[fromKey] = remaining
	}
	b.accounts[toKey] = toBalance + amount

	b.log.Infof("transfer: %d from: %s  to: %s", amount, from, to)
	return nil
}

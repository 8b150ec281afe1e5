// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"testing"

	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/currency"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/fixtures"
	"github.com/bitmark-inc/collectables/registry"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/logger"
)

const minimumBalance = 10

// collects events in order
type recorder struct {
	events []registry.Event
}

func (r *recorder) Notify(e registry.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) take() []registry.Event {
	e := r.events
	r.events = nil
	return e
}

type testRegistry struct {
	db       *storage.Database
	registry *registry.Registry
	balances *currency.Balances
	events   *recorder
}

// common part of *testing.T and *rapid.T
type fataler interface {
	Fatalf(format string, args ...interface{})
}

func newTestRegistry(t fataler, payments currency.Transferer) *testRegistry {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}

	balances := currency.NewBalances(minimumBalance, logger.New(fixtures.LogCategory))
	if nil == payments {
		payments = balances
	}

	events := &recorder{}
	return &testRegistry{
		db:       db,
		registry: registry.New(db, fixtures.Block(1), payments, events, logger.New(fixtures.LogCategory)),
		balances: balances,
		events:   events,
	}
}

func (tr *testRegistry) close() {
	tr.db.Close()
}

// setup with the in-memory ledger as payment collaborator
func setup(t *testing.T) *testRegistry {
	fixtures.SetupTestLogger()
	return newTestRegistry(t, nil)
}

func teardown(tr *testRegistry) {
	tr.close()
	fixtures.TeardownTestLogger()
}

func mustCreate(t *testing.T, tr *testRegistry, owner *account.Account) fingerprint.Fingerprint {
	fp, err := tr.registry.Create(owner)
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	return fp
}

func amount(n uint64) *currency.Amount {
	a := currency.Amount(n)
	return &a
}

// snapshot of everything an operation could change
type snapshot struct {
	count  uint32
	owners map[string][]fingerprint.Fingerprint
	assets map[fingerprint.Fingerprint]string
}

func takeSnapshot(tr *testRegistry, accounts []*account.Account, fps []fingerprint.Fingerprint) snapshot {
	s := snapshot{
		count:  tr.registry.Count().Uint32(),
		owners: make(map[string][]fingerprint.Fingerprint),
		assets: make(map[fingerprint.Fingerprint]string),
	}
	for _, a := range accounts {
		s.owners[a.String()] = tr.registry.Owned(a)
	}
	for _, fp := range fps {
		a, err := tr.registry.Asset(fp)
		if nil != err {
			s.assets[fp] = err.Error()
			continue
		}
		price := "none"
		if nil != a.Price {
			price = a.Price.String()
		}
		s.assets[fp] = a.Owner.String() + "/" + price
	}
	return s
}

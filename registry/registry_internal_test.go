// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/collectables/asset"
	"github.com/bitmark-inc/collectables/counter"
	"github.com/bitmark-inc/collectables/currency"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/fixtures"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/logger"
)

func setupInternal(t *testing.T) (*storage.Database, *Registry) {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	log := logger.New(fixtures.LogCategory)
	return db, New(db, fixtures.Block(1), currency.NewBalances(0, log), nil, log)
}

func TestMintCounterSaturates(t *testing.T) {
	db, r := setupInternal(t)
	defer fixtures.TeardownTestLogger()
	defer db.Close()

	trx, _ := db.Begin()
	trx.Put(db.Pool.Counters, mintCounterKey, counter.Counter(^uint32(0)).Pack())
	_ = trx.Commit()

	owner := fixtures.Account(1)
	_, err := r.Create(owner)
	assert.Equal(t, fault.TooManyAssets, err, "counter wrapped")
	assert.Equal(t, ^uint32(0), r.Count().Uint32(), "counter changed")
	assert.Empty(t, r.Owned(owner), "asset created")

	// one below the limit still mints
	trx, _ = db.Begin()
	trx.Put(db.Pool.Counters, mintCounterKey, counter.Counter(^uint32(0)-1).Pack())
	_ = trx.Commit()

	_, err = r.Create(owner)
	assert.Nil(t, err, "last mint rejected")
	assert.Equal(t, ^uint32(0), r.Count().Uint32(), "counter not advanced")
}

func TestCreateDuplicate(t *testing.T) {
	db, r := setupInternal(t)
	defer fixtures.TeardownTestLogger()
	defer db.Close()

	// occupy the fingerprint the next mint will produce
	fp := fingerprint.Generate(fixtures.Block(1), counter.Counter(0))
	other := fixtures.Account(2)

	trx, _ := db.Begin()
	err := r.assets.Insert(trx, &asset.Asset{Fingerprint: fp, Owner: other})
	assert.Nil(t, err, "insert error")
	err = r.owners.Add(trx, other, fp)
	assert.Nil(t, err, "add error")
	_ = trx.Commit()

	owner := fixtures.Account(1)
	_, err = r.Create(owner)
	assert.Equal(t, fault.DuplicateAsset, err, "duplicate fingerprint minted")
	assert.Empty(t, r.Owned(owner), "owner list changed")
	assert.True(t, r.Count().IsZero(), "counter advanced")

	a, err := r.Asset(fp)
	assert.Nil(t, err, "asset error")
	assert.True(t, other.Equal(a.Owner), "existing asset overwritten")
}

func TestCheckDetectsMismatch(t *testing.T) {
	db, r := setupInternal(t)
	defer fixtures.TeardownTestLogger()
	defer db.Close()

	owner := fixtures.Account(1)
	fp, err := r.Create(owner)
	assert.Nil(t, err, "create error")
	assert.Nil(t, r.Check(), "consistent state rejected")

	// list the asset under a second account as well
	trx, _ := db.Begin()
	_ = r.owners.Add(trx, fixtures.Account(2), fp)
	_ = trx.Commit()
	assert.Equal(t, fault.IndexMismatch, r.Check(), "foreign listing accepted")

	trx, _ = db.Begin()
	_ = r.owners.Remove(trx, fixtures.Account(2), fp)
	_ = r.owners.Remove(trx, owner, fp)
	_ = trx.Commit()
	assert.Equal(t, fault.IndexMismatch, r.Check(), "unlisted asset accepted")
}

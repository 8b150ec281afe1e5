// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset_test

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
)

func setup(t *testing.T) (*storage.Database, *asset.Store) {
	fixtures.SetupTestLogger()
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return db, asset.New(db.Pool.Assets)
}

func teardown(db *storage.Database) {
	db.Close()
	fixtures.TeardownTestLogger()
}

func TestPackUnpack(t *testing.T) {
	fp := fingerprint.Generate(fixtures.Block(1), counter.Counter(0))
	price := currency.Amount(300)

	items := []*asset.Asset{
		{Fingerprint: fp, Owner: fixtures.Account(1)},
		{Fingerprint: fp, Owner: fixtures.Account(2), Price: &price},
	}

	for i, a := range items {
		packed := a.Pack()
		unpacked, err := asset.Unpack(fp, packed)
		if nil != err {
			t.Fatalf("%d: unpack error: %s", i, err)
		}
		assert.Equal(t, a.Fingerprint, unpacked.Fingerprint, "%d: fingerprint", i)
		assert.True(t, a.Owner.Equal(unpacked.Owner), "%d: owner", i)
		assert.Equal(t, a.Price, unpacked.Price, "%d: price", i)
		assert.Equal(t, nil != a.Price, unpacked.IsForSale(), "%d: for sale", i)

		// every truncation must fail
		for j := 0; j < len(packed); j += 1 {
			_, err := asset.Unpack(fp, packed[:j])
			assert.NotNil(t, err, "%d: truncated at %d accepted", i, j)
		}

		_, err = asset.Unpack(fp, append(packed, 0x00))
		assert.Equal(t, fault.NotPackedAsset, err, "%d: trailing data accepted", i)
	}
}

func TestInsertGetUpdate(t *testing.T) {
	db, store := setup(t)
	defer teardown(db)

	owner := fixtures.Account(1)
	fp := fingerprint.Generate(fixtures.Block(1), counter.Counter(0))

	trx, err := db.Begin()
	assert.Nil(t, err, "begin error")

	_, ok := store.Get(trx, fp)
	assert.False(t, ok, "asset found before insert")

	err = store.Insert(trx, &asset.Asset{Fingerprint: fp, Owner: owner})
	assert.Nil(t, err, "insert error")

	err = store.Insert(trx, &asset.Asset{Fingerprint: fp, Owner: fixtures.Account(2)})
	assert.Equal(t, fault.DuplicateAsset, err, "duplicate accepted")

	a, ok := store.Get(trx, fp)
	assert.True(t, ok, "staged asset not found")
	assert.True(t, owner.Equal(a.Owner), "wrong owner")

	_, ok = store.Get(nil, fp)
	assert.False(t, ok, "uncommitted asset visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	trx, err = db.Begin()
	assert.Nil(t, err, "begin error")

	price := currency.Amount(5)
	err = store.Update(trx, fp, func(a *asset.Asset) {
		a.Price = &price
	})
	assert.Nil(t, err, "update error")

	missing := fingerprint.Generate(fixtures.Block(2), counter.Counter(0))
	err = store.Update(trx, missing, func(a *asset.Asset) {
		t.Errorf("mutator called for missing asset")
	})
	assert.Equal(t, fault.NoAsset, err, "update of missing asset")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	a, ok = store.Get(nil, fp)
	assert.True(t, ok, "committed asset not found")
	assert.Equal(t, &price, a.Price, "price not updated")

	count := 0
	err = store.Map(func(a *asset.Asset) error {
		count += 1
		assert.Equal(t, fp, a.Fingerprint, "mapped fingerprint")
		return nil
	})
	assert.Nil(t, err, "map error")
	assert.Equal(t, 1, count, "map count")
}

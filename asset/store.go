// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/logger"
)

// Store - asset records of one pool
type Store struct {
	pool *storage.PoolHandle
}

// New - store over the given pool
func New(pool *storage.PoolHandle) *Store {
	return &Store{
		pool: pool,
	}
}

// Insert - add a new asset
func (s *Store) Insert(trx storage.Transaction, a *Asset) error {
	if trx.Has(s.pool, a.Fingerprint[:]) {
		return fault.DuplicateAsset
	}
	trx.Put(s.pool, a.Fingerprint[:], a.Pack())
	return nil
}

// Get - fetch an asset, trx nil reads committed state
//
// a record that does not decode means the database is corrupt
func (s *Store) Get(trx storage.Transaction, fp fingerprint.Fingerprint) (*Asset, bool) {
	var record []byte
	if nil == trx {
		record = s.pool.Get(fp[:])
	} else {
		record = trx.Get(s.pool, fp[:])
	}
	if nil == record {
		return nil, false
	}

	a, err := Unpack(fp, record)
	if nil != err {
		logger.Criticalf("asset.Get: fingerprint: %s  record: %x  error: %s", fp, record, err)
		logger.Panic("asset.Get: Assets database corrupt")
	}
	return a, true
}

// Update - apply a change to an existing asset
func (s *Store) Update(trx storage.Transaction, fp fingerprint.Fingerprint, mutate func(*Asset)) error {
	a, ok := s.Get(trx, fp)
	if !ok {
		return fault.NoAsset
	}
	mutate(a)
	a.Fingerprint = fp
	trx.Put(s.pool, fp[:], a.Pack())
	return nil
}

// Map - visit every committed asset in fingerprint order
func (s *Store) Map(f func(*Asset) error) error {
	return s.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		fp := fingerprint.Fingerprint{}
		err := fingerprint.FromBytes(&fp, key)
		if nil != err {
			return err
		}
		a, err := Unpack(fp, value)
		if nil != err {
			return err
		}
		return f(a)
	})
}

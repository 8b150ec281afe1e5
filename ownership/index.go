// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/logger"
)

// MaximumOwned - capacity of one account's list
const MaximumOwned = 100

// Index - owner lists of one pool
type Index struct {
	pool *storage.PoolHandle
}

// New - index over the given pool
func New(pool *storage.PoolHandle) *Index {
	return &Index{
		pool: pool,
	}
}

// List - fingerprints held by owner, trx nil reads committed state
func (ix *Index) List(trx storage.Transaction, owner *account.Account) []fingerprint.Fingerprint {
	var record []byte
	if nil == trx {
		record = ix.pool.Get(owner.Bytes())
	} else {
		record = trx.Get(ix.pool, owner.Bytes())
	}

	list, err := unpack(record)
	if nil != err {
		logger.Criticalf("ownership.List: owner: %s  record: %x  error: %s", owner, record, err)
		logger.Panic("ownership.List: OwnerList database corrupt")
	}
	return list
}

// Count - number of fingerprints held by owner
func (ix *Index) Count(trx storage.Transaction, owner *account.Account) int {
	return len(ix.List(trx, owner))
}

// HasCapacity - true if owner can receive one more
func (ix *Index) HasCapacity(trx storage.Transaction, owner *account.Account) bool {
	return ix.Count(trx, owner) < MaximumOwned
}

// Contains - true if fp is in owner's list
func (ix *Index) Contains(trx storage.Transaction, owner *account.Account, fp fingerprint.Fingerprint) bool {
	return position(ix.List(trx, owner), fp) >= 0
}

// Add - append fp to owner's list
func (ix *Index) Add(trx storage.Transaction, owner *account.Account, fp fingerprint.Fingerprint) error {
	list := ix.List(trx, owner)
	if len(list) >= MaximumOwned {
		return fault.TooManyOwned
	}
	trx.Put(ix.pool, owner.Bytes(), pack(append(list, fp)))
	return nil
}

// Remove - take fp out of owner's list
//
// the last entry is moved into the vacated slot
func (ix *Index) Remove(trx storage.Transaction, owner *account.Account, fp fingerprint.Fingerprint) error {
	list := ix.List(trx, owner)
	i := position(list, fp)
	if i < 0 {
		return fault.NoAsset
	}

	last := len(list) - 1
	list[i] = list[last]
	list = list[:last]

	if 0 == len(list) {
		trx.Delete(ix.pool, owner.Bytes())
	} else {
		trx.Put(ix.pool, owner.Bytes(), pack(list))
	}
	return nil
}

// Map - visit every committed owner list in owner key order
func (ix *Index) Map(f func(owner *account.Account, list []fingerprint.Fingerprint) error) error {
	return ix.pool.NewFetchCursor().Map(func(key []byte, value []byte) error {
		owner, err := account.AccountFromBytes(key)
		if nil != err {
			return err
		}
		list, err := unpack(value)
		if nil != err {
			return err
		}
		return f(owner, list)
	})
}

func position(list []fingerprint.Fingerprint, fp fingerprint.Fingerprint) int {
	for i, item := range list {
		if item == fp {
			return i
		}
	}
	return -1
}

// fingerprint ++ fingerprint ++ ...
func pack(list []fingerprint.Fingerprint) []byte {
	buffer := make([]byte, 0, len(list)*fingerprint.Length)
	for _, fp := range list {
		buffer = append(buffer, fp[:]...)
	}
	return buffer
}

func unpack(record []byte) ([]fingerprint.Fingerprint, error) {
	if 0 != len(record)%fingerprint.Length {
		return nil, fault.NotPackedOwnerList
	}
	n := len(record) / fingerprint.Length
	if n > MaximumOwned {
		return nil, fault.NotPackedOwnerList
	}

	list := make([]fingerprint.Fingerprint, n, n+1)
	for i := range list {
		copy(list[i][:], record[i*fingerprint.Length:])
	}
	return list, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - a staged set of changes across all pools
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionData - the single transaction of a database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start staging changes
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a key/value write
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - stage a key removal
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value including staged changes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) []byte {
	return handle.get(key)
}

// Has - check a key including staged changes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) bool {
	return handle.has(key)
}

// InUse - true while changes are being staged
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

// Commit - write all staged changes
func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

// Abort - drop all staged changes
func (t *TransactionData) Abort() {
	t.access.Abort()
}

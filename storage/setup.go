// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/logger"
)

// Pools - the set of exported pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type Pools struct {
	Assets    *PoolHandle `prefix:"A"`
	OwnerList *PoolHandle `prefix:"L"`
	Counters  *PoolHandle `prefix:"C"`
}

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - an open registry database
type Database struct {
	sync.RWMutex
	Pool Pools

	db       *leveldb.DB
	access   Access
	trx      Transaction
	readOnly bool
	version  int
}

// Open - open up a database file
//
// a read-only open requires the database to exist already
func Open(name string, readOnly bool) (*Database, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, err
	}
	return setup(db, readOnly)
}

// OpenMemory - a fresh database held only in memory
func OpenMemory() (*Database, error) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		return nil, err
	}
	return setup(db, ReadWrite)
}

func setup(db *leveldb.DB, readOnly bool) (*Database, error) {
	ok := false
	defer func() {
		if !ok {
			db.Close()
		}
	}()

	version, err := getVersion(db)
	if nil != err {
		return nil, err
	}

	// ensure no database downgrade
	if version > currentVersion {
		logger.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return nil, fault.DatabaseIsNewer
	}

	if 0 == version && !readOnly {
		// database was empty so tag as current version
		err = putVersion(db, currentVersion)
		if nil != err {
			return nil, err
		}
		version = currentVersion
	}

	d := &Database{
		db:       db,
		readOnly: readOnly,
		version:  version,
	}
	d.access = newDA(db, newCache())
	d.trx = newTransaction(d.access)

	// this will be a struct type
	poolType := reflect.TypeOf(d.Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&d.Pool).Elem()

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return nil, fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: d.access,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return d, nil
}

// Close - close the database connection
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil != d.db {
		d.db.Close()
		d.db = nil
	}
}

// Version - layout version recorded in the database
func (d *Database) Version() int {
	return d.version
}

// IsReadOnly - true if no transaction can be started
func (d *Database) IsReadOnly() bool {
	return d.readOnly
}

// Begin - start the database transaction
//
// only one transaction can be open at a time
func (d *Database) Begin() (Transaction, error) {
	if d.readOnly {
		return nil, fault.ReadOnlyDatabase
	}
	err := d.trx.Begin()
	if nil != err {
		return nil, err
	}
	return d.trx, nil
}

// return the version number, zero if not set
func getVersion(db *leveldb.DB) (int, error) {
	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if 4 != len(versionValue) {
		return 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	return int(binary.BigEndian.Uint32(versionValue)), nil
}

func putVersion(db *leveldb.DB, version int) error {
	buffer := make([]byte, 4)
	binary.BigEndian.PutUint32(buffer, uint32(version))

	return db.Put(versionKey, buffer, nil)
}

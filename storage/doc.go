// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk registry state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All changes are made through a Transaction: writes are staged in a
// leveldb batch and mirrored in a cache so that later reads in the same
// transaction see them; nothing reaches the database until Commit.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. fingerprint  = asset identifier as 32 byte BLAKE2b-256
// 4. owner        = account bytes (key variant ++ 32 byte ed25519 public key)
// 5. *others*     = byte values of various length
//
// Assets:
//
//   A ++ fingerprint           - minted asset
//                                data: owner length(varint) ++ owner ++ price flag ++ [price(varint)]
//
// Ownership:
//
//   L ++ owner                 - fingerprints held by owner, in list order
//                                data: fingerprint ++ fingerprint ++ ...
//
// Counters:
//
//   C ++ name                  - registry counters
//                                data: count (big endian uint32, 4 bytes)
//
// Version:
//
//   0x00 ++ "VERSION"          - database layout version
//                                data: version (big endian uint32, 4 bytes)
package storage

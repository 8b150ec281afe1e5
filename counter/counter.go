// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"encoding/binary"

	"github.com/bitmark-inc/collectables/fault"
)

// PackedLength - bytes in a stored counter
const PackedLength = 4

// Counter - the mint counter
//
// a 32 bit value that only ever increases and never wraps
type Counter uint32

// Uint32 - returns current value
func (c Counter) Uint32() uint32 {
	return uint32(c)
}

// IsZero - check if zero
func (c Counter) IsZero() bool {
	return 0 == c
}

// Next - the value after this one
//
// fails with TooManyAssets rather than wrapping to zero
func (c Counter) Next() (Counter, error) {
	if c == ^Counter(0) {
		return c, fault.TooManyAssets
	}
	return c + 1, nil
}

// Pack - big endian bytes for storage
func (c Counter) Pack() []byte {
	buffer := make([]byte, PackedLength)
	binary.BigEndian.PutUint32(buffer, uint32(c))
	return buffer
}

// Unpack - restore a counter from storage
//
// a missing record is a zero counter
func Unpack(buffer []byte) (Counter, error) {
	if nil == buffer {
		return 0, nil
	}
	if PackedLength != len(buffer) {
		return 0, fault.InvalidCount
	}
	return Counter(binary.BigEndian.Uint32(buffer)), nil
}

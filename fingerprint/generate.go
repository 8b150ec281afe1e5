// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/collectables/blockdigest"
	"github.com/bitmark-inc/collectables/counter"
)

// size of the hashed record
const entropyLength = blockdigest.Length + 8 + 4 + 4

// Generate - derive the fingerprint for the next mint
//
// pure function of its inputs, uniqueness is checked by the asset store
func Generate(entropy Entropy, c counter.Counter) Fingerprint {
	record := make([]byte, 0, entropyLength)

	hash := entropy.BlockHash()
	record = append(record, hash[:]...)

	buffer := make([]byte, 8)
	binary.LittleEndian.PutUint64(buffer, entropy.Height())
	record = append(record, buffer...)

	index, ok := entropy.OperationIndex()
	if !ok {
		index = 0
	}
	binary.LittleEndian.PutUint32(buffer[:4], index)
	record = append(record, buffer[:4]...)

	binary.LittleEndian.PutUint32(buffer[:4], c.Uint32())
	record = append(record, buffer[:4]...)

	return blake2b.Sum256(record)
}

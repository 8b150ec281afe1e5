// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"github.com/bitmark-inc/collectables/blockdigest"
)

// Entropy - the host ledger's view of where the current operation sits
type Entropy interface {
	BlockHash() blockdigest.Digest
	Height() uint64
	OperationIndex() (uint32, bool)
}

// Block - a fixed entropy source
//
// hosts that track their position in a plain value can pass a pointer
// to one of these and update it between blocks; tests use it as is
type Block struct {
	Hash     blockdigest.Digest
	Number   uint64
	Index    uint32
	HasIndex bool
}

// BlockHash - hash of the block the operation belongs to
func (b *Block) BlockHash() blockdigest.Digest {
	return b.Hash
}

// Height - block number
func (b *Block) Height() uint64 {
	return b.Number
}

// OperationIndex - position of the operation within the block, if known
func (b *Block) OperationIndex() (uint32, bool) {
	return b.Index, b.HasIndex
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/collectables/chain"
)

func TestValid(t *testing.T) {
	assert.True(t, chain.Valid(chain.Live), "live")
	assert.True(t, chain.Valid(chain.Testing), "testing")
	assert.True(t, chain.Valid(chain.Local), "local")
	assert.False(t, chain.Valid("bitmark"), "old name accepted")
	assert.False(t, chain.Valid(""), "empty name accepted")
}

func TestIsTesting(t *testing.T) {
	assert.False(t, chain.IsTesting(chain.Live), "live chain")
	assert.True(t, chain.IsTesting(chain.Testing), "testing chain")
	assert.True(t, chain.IsTesting(chain.Local), "local chain")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/blockdigest"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/logger"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// SetupTestLogger - log into a scratch directory, critical only
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Account - deterministic test-network account derived from a single byte
func Account(n byte) *account.Account {
	seed := make([]byte, ed25519.SeedSize)
	seed[0] = n
	privateKey := ed25519.NewKeyFromSeed(seed)
	a, err := account.New(privateKey.Public().(ed25519.PublicKey), true)
	if nil != err {
		panic(err)
	}
	return a
}

// Block - fixed entropy at the given height
func Block(height uint64) *fingerprint.Block {
	return &fingerprint.Block{
		Hash:     blockdigest.NewDigest([]byte(fmt.Sprintf("block %d", height))),
		Number:   height,
		Index:    0,
		HasIndex: true,
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/blake2b"
	"pgregory.net/rapid"

	"github.com/bitmark-inc/collectables/blockdigest"
	"github.com/bitmark-inc/collectables/counter"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
)

func TestGenerateLayout(t *testing.T) {
	block := &fingerprint.Block{
		Hash:     blockdigest.NewDigest([]byte("block 7")),
		Number:   0x0102030405060708,
		Index:    0x0a0b0c0d,
		HasIndex: true,
	}

	record := append([]byte{}, block.Hash[:]...)
	record = append(record, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01)
	record = append(record, 0x0d, 0x0c, 0x0b, 0x0a)
	record = append(record, 0x2a, 0x00, 0x00, 0x00)
	expected := fingerprint.Fingerprint(blake2b.Sum256(record))

	actual := fingerprint.Generate(block, counter.Counter(42))
	assert.Equal(t, expected, actual, "wrong fingerprint")

	// pure
	assert.Equal(t, actual, fingerprint.Generate(block, counter.Counter(42)), "not deterministic")
}

func TestGenerateWithoutIndex(t *testing.T) {
	with := &fingerprint.Block{
		Hash:     blockdigest.NewDigest([]byte("block 9")),
		Number:   9,
		Index:    0,
		HasIndex: true,
	}
	without := &fingerprint.Block{
		Hash:     with.Hash,
		Number:   9,
		Index:    99,
		HasIndex: false,
	}

	assert.Equal(t,
		fingerprint.Generate(with, counter.Counter(1)),
		fingerprint.Generate(without, counter.Counter(1)),
		"missing index must hash as zero",
	)
}

func TestGenerateCounterDistinct(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		block := &fingerprint.Block{
			Hash:   blockdigest.NewDigest(rapid.SliceOf(rapid.Byte()).Draw(t, "block")),
			Number: rapid.Uint64().Draw(t, "height"),
		}
		a := rapid.Uint32().Draw(t, "a")
		b := rapid.Uint32().Draw(t, "b")

		fpA := fingerprint.Generate(block, counter.Counter(a))
		fpB := fingerprint.Generate(block, counter.Counter(b))
		if (a == b) != (fpA == fpB) {
			t.Fatalf("counters %d and %d gave fingerprints %s and %s", a, b, fpA, fpB)
		}
	})
}

func TestText(t *testing.T) {
	fp := fingerprint.Generate(&fingerprint.Block{Number: 1}, counter.Counter(0))

	s := fp.String()
	assert.Equal(t, fingerprint.Length*2, len(s), "wrong hex length")

	parsed, err := fingerprint.FromString(s)
	assert.Nil(t, err, "parse error")
	assert.Equal(t, fp, parsed, "hex round trip")

	var scanned fingerprint.Fingerprint
	n, err := fmt.Sscan(s, &scanned)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "scan count")
	assert.Equal(t, fp, scanned, "scan round trip")

	buffer, err := json.Marshal(fp)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+s+`"`, string(buffer), "JSON form")

	_, err = fingerprint.FromString("1234")
	assert.Equal(t, fault.InvalidFingerprint, err, "short hex accepted")

	_, err = fingerprint.FromString(s[:62] + "zz")
	assert.Equal(t, fault.InvalidFingerprint, err, "non-hex accepted")
}

func TestFromBytes(t *testing.T) {
	var fp fingerprint.Fingerprint
	err := fingerprint.FromBytes(&fp, make([]byte, 33))
	assert.Equal(t, fault.InvalidFingerprint, err, "long buffer accepted")

	buffer := make([]byte, fingerprint.Length)
	buffer[31] = 0xff
	err = fingerprint.FromBytes(&fp, buffer)
	assert.Nil(t, err, "valid buffer rejected")
	assert.Equal(t, byte(0xff), fp[31], "wrong last byte")
}

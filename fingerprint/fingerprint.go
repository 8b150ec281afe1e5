// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/collectables/fault"
)

// Length - number of bytes in a fingerprint
const Length = 32

// Fingerprint - the identifier of an asset
type Fingerprint [Length]byte

// String - hex representation for the fmt package (%s)
func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// GoString - for the fmt package (%#v)
func (fp Fingerprint) GoString() string {
	return "<fingerprint:" + hex.EncodeToString(fp[:]) + ">"
}

// Scan - convert hex text to a fingerprint for the fmt scan routines
func (fp *Fingerprint) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
	})
	if nil != err {
		return err
	}
	return fp.UnmarshalText(token)
}

// MarshalText - convert fingerprint to hex text
func (fp Fingerprint) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, fp[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a fingerprint
func (fp *Fingerprint) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.InvalidFingerprint
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.InvalidFingerprint
	}
	copy(fp[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a fingerprint
func FromBytes(fp *Fingerprint, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidFingerprint
	}
	copy(fp[:], buffer)
	return nil
}

// FromString - parse the hex form produced by String
func FromString(s string) (Fingerprint, error) {
	fp := Fingerprint{}
	err := fp.UnmarshalText([]byte(s))
	return fp, err
}

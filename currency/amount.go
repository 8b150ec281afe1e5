// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"strconv"

	"github.com/bitmark-inc/collectables/fault"
)

// Amount - a quantity of the host's native currency in its smallest unit
type Amount uint64

// String - decimal form
func (amount Amount) String() string {
	return strconv.FormatUint(uint64(amount), 10)
}

// MarshalText - decimal form for JSON
func (amount Amount) MarshalText() ([]byte, error) {
	return []byte(amount.String()), nil
}

// UnmarshalText - parse the decimal form
func (amount *Amount) UnmarshalText(s []byte) error {
	n, err := strconv.ParseUint(string(s), 10, 64)
	if nil != err {
		return fault.InvalidAmount
	}
	*amount = Amount(n)
	return nil
}

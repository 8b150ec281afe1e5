// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/logger"
)

// Existence - whether a payment may empty the payer's account
type Existence int

// possible existence requirements
const (
	KeepAlive  Existence = iota // payer must stay at or above the minimum balance
	AllowDeath Existence = iota // payer may be reaped
)

// internal conversion
func toString(e Existence) ([]byte, error) {
	switch e {
	case KeepAlive:
		return []byte("keep-alive"), nil
	case AllowDeath:
		return []byte("allow-death"), nil
	default:
		return []byte{}, fault.InvalidExistence
	}
}

// convert a string to an existence requirement
func fromString(in string) (Existence, error) {
	switch strings.ToLower(in) {
	case "keep-alive", "keepalive":
		return KeepAlive, nil
	case "allow-death", "allowdeath":
		return AllowDeath, nil
	default:
		return KeepAlive, fault.InvalidExistence
	}
}

// String - symbolic form
func (e Existence) String() string {
	s, err := toString(e)
	if nil != err {
		logger.Panicf("invalid existence enumeration: %d", e)
	}
	return string(s)
}

// GoString - enum value and symbol, for debugging
func (e Existence) GoString() string {
	return fmt.Sprintf("<Existence#%d:%q>", e, e.String())
}

// MarshalText - convert to JSON
func (e Existence) MarshalText() ([]byte, error) {
	return toString(e)
}

// UnmarshalText - convert from JSON
func (e *Existence) UnmarshalText(s []byte) error {
	v, err := fromString(string(s))
	if nil != err {
		return err
	}
	*e = v
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/currency"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/util"
)

// Asset - a single collectible
//
// Price nil means not for sale
type Asset struct {
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	Owner       *account.Account        `json:"owner"`
	Price       *currency.Amount        `json:"price"`
}

// limits of the packed owner field
const (
	minOwnerLength = 1
	maxOwnerLength = 64
)

// price flag values
const (
	notForSale = 0x00
	forSale    = 0x01
)

// IsForSale - true if a price is set
func (a *Asset) IsForSale() bool {
	return nil != a.Price
}

// Pack - binary record for storage
//
//   owner length(varint) ++ owner ++ price flag ++ [price(varint)]
func (a *Asset) Pack() []byte {
	owner := a.Owner.Bytes()
	buffer := util.AppendVarint64(make([]byte, 0, len(owner)+2*util.Varint64MaximumBytes), uint64(len(owner)))
	buffer = append(buffer, owner...)
	if nil == a.Price {
		return append(buffer, notForSale)
	}
	buffer = append(buffer, forSale)
	return util.AppendVarint64(buffer, uint64(*a.Price))
}

// Unpack - decode a stored record
func Unpack(fp fingerprint.Fingerprint, record []byte) (*Asset, error) {
	ownerLength, n := util.ClippedVarint64(record, minOwnerLength, maxOwnerLength)
	if 0 == n {
		return nil, fault.NotPackedAsset
	}
	record = record[n:]
	if len(record) < ownerLength+1 {
		return nil, fault.NotPackedAsset
	}

	owner, err := account.AccountFromBytes(record[:ownerLength])
	if nil != err {
		return nil, err
	}
	record = record[ownerLength:]

	a := &Asset{
		Fingerprint: fp,
		Owner:       owner,
	}

	switch record[0] {
	case notForSale:
		if 1 != len(record) {
			return nil, fault.NotPackedAsset
		}
	case forSale:
		price, n := util.FromVarint64(record[1:])
		if 0 == n || 1+n != len(record) {
			return nil, fault.NotPackedAsset
		}
		amount := currency.Amount(price)
		a.Price = &amount
	default:
		return nil, fault.NotPackedAsset
	}
	return a, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/asset"
	"github.com/bitmark-inc/collectables/counter"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
)

// Asset - current state of an asset
func (r *Registry) Asset(fp fingerprint.Fingerprint) (*asset.Asset, error) {
	r.Lock()
	defer r.Unlock()

	a, ok := r.assets.Get(nil, fp)
	if !ok {
		return nil, fault.NoAsset
	}
	return a, nil
}

// Owned - fingerprints held by an account
//
// an invalid account holds nothing
func (r *Registry) Owned(owner *account.Account) []fingerprint.Fingerprint {
	r.Lock()
	defer r.Unlock()

	if nil != owner.Validate() {
		return nil
	}

	return r.owners.List(nil, owner)
}

// Count - number of assets ever minted
func (r *Registry) Count() counter.Counter {
	r.Lock()
	defer r.Unlock()

	return r.mintCounter(nil)
}

// Check - audit the committed state
//
// every asset must be listed once under its owner, every listed
// fingerprint must be an asset owned by that list's account, and the
// mint counter must equal the number of assets
func (r *Registry) Check() error {
	r.Lock()
	defer r.Unlock()

	assetCount := 0
	err := r.assets.Map(func(a *asset.Asset) error {
		assetCount += 1
		if !r.owners.Contains(nil, a.Owner, a.Fingerprint) {
			r.log.Errorf("check: asset: %s  missing from owner: %s", a.Fingerprint, a.Owner)
			return fault.IndexMismatch
		}
		return nil
	})
	if nil != err {
		return err
	}

	listedCount := 0
	err = r.owners.Map(func(owner *account.Account, list []fingerprint.Fingerprint) error {
		seen := make(map[fingerprint.Fingerprint]struct{}, len(list))
		for _, fp := range list {
			if _, ok := seen[fp]; ok {
				r.log.Errorf("check: owner: %s  duplicate: %s", owner, fp)
				return fault.IndexMismatch
			}
			seen[fp] = struct{}{}

			a, ok := r.assets.Get(nil, fp)
			if !ok || !a.Owner.Equal(owner) {
				r.log.Errorf("check: owner: %s  lists foreign asset: %s", owner, fp)
				return fault.IndexMismatch
			}
		}
		listedCount += len(list)
		return nil
	})
	if nil != err {
		return err
	}

	if listedCount != assetCount {
		r.log.Errorf("check: assets: %d  listed: %d", assetCount, listedCount)
		return fault.IndexMismatch
	}

	if minted := r.mintCounter(nil); int(minted.Uint32()) != assetCount {
		r.log.Errorf("check: assets: %d  mint counter: %d", assetCount, minted)
		return fault.IndexMismatch
	}
	return nil
}

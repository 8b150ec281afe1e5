// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/asset"
	"github.com/bitmark-inc/collectables/counter"
	"github.com/bitmark-inc/collectables/currency"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/ownership"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/logger"
)

// key of the mint counter in the counters pool
var mintCounterKey = []byte("mint")

// Registry - the asset registry state
//
// a single lock serialises all operations and queries
type Registry struct {
	sync.Mutex

	log      *logger.L
	db       *storage.Database
	assets   *asset.Store
	owners   *ownership.Index
	entropy  fingerprint.Entropy
	payments currency.Transferer
	notifier Notifier
}

// New - registry over an open database
//
// notifier may be nil
func New(
	db *storage.Database,
	entropy fingerprint.Entropy,
	payments currency.Transferer,
	notifier Notifier,
	log *logger.L,
) *Registry {
	if nil == notifier {
		notifier = discard{}
	}
	return &Registry{
		log:      log,
		db:       db,
		assets:   asset.New(db.Pool.Assets),
		owners:   ownership.New(db.Pool.OwnerList),
		entropy:  entropy,
		payments: payments,
		notifier: notifier,
	}
}

// run f inside a storage transaction, commit only if f succeeds
func (r *Registry) update(f func(trx storage.Transaction) ([]Event, error)) error {
	trx, err := r.db.Begin()
	if nil != err {
		return err
	}

	events, err := f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	logger.PanicIfError("registry: commit", err)

	for _, e := range events {
		r.notifier.Notify(e)
	}
	return nil
}

func (r *Registry) mintCounter(trx storage.Transaction) counter.Counter {
	var record []byte
	if nil == trx {
		record = r.db.Pool.Counters.Get(mintCounterKey)
	} else {
		record = trx.Get(r.db.Pool.Counters, mintCounterKey)
	}
	c, err := counter.Unpack(record)
	if nil != err {
		logger.Criticalf("registry: mint counter: %x  error: %s", record, err)
		logger.Panic("registry: Counters database corrupt")
	}
	return c
}

// Create - mint a new asset for owner
func (r *Registry) Create(owner *account.Account) (fingerprint.Fingerprint, error) {
	r.Lock()
	defer r.Unlock()

	if err := owner.Validate(); nil != err {
		r.log.Warnf("create: invalid owner  error: %s", err)
		return fingerprint.Fingerprint{}, err
	}

	var fp fingerprint.Fingerprint
	err := r.update(func(trx storage.Transaction) ([]Event, error) {
		count := r.mintCounter(trx)
		fp = fingerprint.Generate(r.entropy, count)

		if _, ok := r.assets.Get(trx, fp); ok {
			return nil, fault.DuplicateAsset
		}

		next, err := count.Next()
		if nil != err {
			return nil, err
		}

		if !r.owners.HasCapacity(trx, owner) {
			return nil, fault.TooManyOwned
		}

		err = r.assets.Insert(trx, &asset.Asset{
			Fingerprint: fp,
			Owner:       owner,
			Price:       nil,
		})
		if nil != err {
			return nil, err
		}
		err = r.owners.Add(trx, owner, fp)
		if nil != err {
			return nil, err
		}
		trx.Put(r.db.Pool.Counters, mintCounterKey, next.Pack())

		return []Event{Created{Owner: owner, Fingerprint: fp}}, nil
	})
	if nil != err {
		r.log.Warnf("create: owner: %s  error: %s", owner, err)
		return fingerprint.Fingerprint{}, err
	}

	r.log.Infof("create: owner: %s  fingerprint: %s", owner, fp)
	return fp, nil
}

// Transfer - give an asset to another account
func (r *Registry) Transfer(from *account.Account, to *account.Account, fp fingerprint.Fingerprint) error {
	r.Lock()
	defer r.Unlock()

	if err := validate(from, to); nil != err {
		r.log.Warnf("transfer: %s  invalid account  error: %s", fp, err)
		return err
	}

	err := r.update(func(trx storage.Transaction) ([]Event, error) {
		if from.Equal(to) {
			return nil, fault.TransferToSelf
		}

		a, ok := r.assets.Get(trx, fp)
		if !ok {
			return nil, fault.NoAsset
		}
		if !a.Owner.Equal(from) {
			return nil, fault.NotOwner
		}

		err := r.move(trx, a, to)
		if nil != err {
			return nil, err
		}
		return []Event{Transferred{From: from, To: to, Fingerprint: fp}}, nil
	})
	if nil != err {
		r.log.Warnf("transfer: %s  from: %s  to: %s  error: %s", fp, from, to, err)
		return err
	}

	r.log.Infof("transfer: %s  from: %s  to: %s", fp, from, to)
	return nil
}

// SetPrice - list an asset for sale, or delist it with a nil price
func (r *Registry) SetPrice(caller *account.Account, fp fingerprint.Fingerprint, price *currency.Amount) error {
	r.Lock()
	defer r.Unlock()

	if err := caller.Validate(); nil != err {
		r.log.Warnf("set price: %s  invalid caller  error: %s", fp, err)
		return err
	}

	var p *currency.Amount
	if nil != price {
		v := *price
		p = &v
	}

	err := r.update(func(trx storage.Transaction) ([]Event, error) {
		a, ok := r.assets.Get(trx, fp)
		if !ok {
			return nil, fault.NoAsset
		}
		if !a.Owner.Equal(caller) {
			return nil, fault.NotOwner
		}

		err := r.assets.Update(trx, fp, func(a *asset.Asset) {
			a.Price = p
		})
		if nil != err {
			return nil, err
		}
		return []Event{PriceSet{Owner: caller, Fingerprint: fp, Price: p}}, nil
	})
	if nil != err {
		r.log.Warnf("set price: %s  caller: %s  error: %s", fp, caller, err)
		return err
	}

	if nil == p {
		r.log.Infof("set price: %s  owner: %s  not for sale", fp, caller)
	} else {
		r.log.Infof("set price: %s  owner: %s  price: %d", fp, caller, *p)
	}
	return nil
}

// Buy - purchase a listed asset for its price
//
// maxPrice bounds what the buyer agrees to pay; the listed price is paid
func (r *Registry) Buy(buyer *account.Account, fp fingerprint.Fingerprint, maxPrice currency.Amount) error {
	r.Lock()
	defer r.Unlock()

	if err := buyer.Validate(); nil != err {
		r.log.Warnf("buy: %s  invalid buyer  error: %s", fp, err)
		return err
	}

	var price currency.Amount
	err := r.update(func(trx storage.Transaction) ([]Event, error) {
		a, ok := r.assets.Get(trx, fp)
		if !ok {
			return nil, fault.NoAsset
		}
		if nil == a.Price {
			return nil, fault.NotForSale
		}
		price = *a.Price
		if maxPrice < price {
			return nil, fault.MaxPriceTooLow
		}

		seller := a.Owner
		if seller.Equal(buyer) {
			return nil, fault.TransferToSelf
		}
		if !r.owners.HasCapacity(trx, buyer) {
			return nil, fault.TooManyOwned
		}

		err := r.payments.Transfer(buyer, seller, price, currency.KeepAlive)
		if nil != err {
			return nil, err
		}

		// all preconditions were checked above and payment has been made
		err = r.move(trx, a, buyer)
		if nil != err {
			logger.Criticalf("registry: buy: %s  buyer: %s  paid: %d  move error: %s", fp, buyer, price, err)
			logger.Panic("registry: buy: move failed after payment")
		}

		return []Event{
			Transferred{From: seller, To: buyer, Fingerprint: fp},
			Sold{Buyer: buyer, Fingerprint: fp, Price: price},
		}, nil
	})
	if nil != err {
		r.log.Warnf("buy: %s  buyer: %s  max price: %d  error: %s", fp, buyer, maxPrice, err)
		return err
	}

	r.log.Infof("buy: %s  buyer: %s  price: %d", fp, buyer, price)
	return nil
}

// first account that cannot be stored
func validate(accounts ...*account.Account) error {
	for _, a := range accounts {
		if err := a.Validate(); nil != err {
			return err
		}
	}
	return nil
}

// move an asset to a new owner and clear its price
//
// from and to must differ
func (r *Registry) move(trx storage.Transaction, a *asset.Asset, to *account.Account) error {
	if !r.owners.HasCapacity(trx, to) {
		return fault.TooManyOwned
	}

	err := r.owners.Remove(trx, a.Owner, a.Fingerprint)
	if nil != err {
		logger.Criticalf("registry: move: %s  owner: %s  not in owner list", a.Fingerprint, a.Owner)
		logger.Panic("registry: OwnerList database corrupt")
	}

	err = r.owners.Add(trx, to, a.Fingerprint)
	if nil != err {
		return err
	}

	return r.assets.Update(trx, a.Fingerprint, func(a *asset.Asset) {
		a.Owner = to
		a.Price = nil
	})
}

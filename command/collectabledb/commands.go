// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/bitmark-inc/collectables/account"
	"github.com/bitmark-inc/collectables/asset"
	"github.com/bitmark-inc/collectables/chain"
	"github.com/bitmark-inc/collectables/fault"
	"github.com/bitmark-inc/collectables/fingerprint"
	"github.com/bitmark-inc/collectables/ownership"
	"github.com/bitmark-inc/collectables/registry"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
)

type commandContext struct {
	program    string
	chain      string
	verbose    bool
	fetchCount int
	db         *storage.Database
	registry   *registry.Registry
	log        *logger.L
}

// setup command handler
//
// commands that need neither configuration nor database
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "pools":
		// this will be a struct type
		poolType := reflect.TypeOf(storage.Pools{})

		// print all available tags
		fmt.Printf(" tags:\n")
		for i := 0; i < poolType.NumField(); i += 1 {
			fieldInfo := poolType.Field(i)
			prefixTag := fieldInfo.Tag.Get("prefix")
			fmt.Printf("       %s → %s\n", prefixTag, fieldInfo.Name)
		}

	case "help", "h", "?":
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE [--count=N] command [params]\n"+
			"\n"+
			"  help                  - this message\n"+
			"  version               - display version\n"+
			"  pools                 - list database pool prefixes\n"+
			"\n"+
			"  dump                  - list all assets and owner lists\n"+
			"  asset FINGERPRINT     - show one asset\n"+
			"  owned ACCOUNT         - list fingerprints held by an account\n"+
			"  count                 - number of assets minted\n"+
			"  check                 - verify owner lists against asset records\n"+
			"\n", program)

	default:
		return false
	}

	return true
}

// database commands
func (c *commandContext) process(arguments []string) error {
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "dump":
		return c.dump()

	case "asset", "a":
		if 1 != len(arguments) {
			return fault.MissingParameters
		}
		fp, err := fingerprint.FromString(arguments[0])
		if nil != err {
			return err
		}
		a, err := c.registry.Asset(fp)
		if nil != err {
			return err
		}
		return printJson(a)

	case "owned", "o":
		if 1 != len(arguments) {
			return fault.MissingParameters
		}
		owner, err := account.AccountFromBase58(arguments[0])
		if nil != err {
			return err
		}
		if owner.IsTesting() != chain.IsTesting(c.chain) {
			return fault.WrongNetworkForPublicKey
		}
		return printJson(c.registry.Owned(owner))

	case "count":
		return printJson(c.registry.Count().Uint32())

	case "check":
		err := c.registry.Check()
		if nil != err {
			return err
		}
		fmt.Printf("ok\n")
		return nil

	default:
		return fault.UnknownCommand
	}
}

// dump both pools a page at a time
func (c *commandContext) dump() error {
	cursor := c.db.Pool.Assets.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(c.fetchCount)
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			break
		}
		for _, e := range elements {
			fp := fingerprint.Fingerprint{}
			if err := fingerprint.FromBytes(&fp, e.Key); nil != err {
				return err
			}
			a, err := asset.Unpack(fp, e.Value)
			if nil != err {
				return err
			}
			if c.verbose {
				fmt.Printf("A %x → %x\n", e.Key, e.Value)
			}
			if err := printJson(a); nil != err {
				return err
			}
		}
	}

	return ownership.New(c.db.Pool.OwnerList).Map(func(owner *account.Account, list []fingerprint.Fingerprint) error {
		return printJson(struct {
			Owner *account.Account          `json:"owner"`
			Count int                       `json:"count"`
			Items []fingerprint.Fingerprint `json:"items"`
		}{
			Owner: owner,
			Count: len(list),
			Items: list,
		})
	})
}

func printJson(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if nil != err {
		return err
	}
	_, err = fmt.Fprintf(os.Stdout, "%s\n", b)
	return err
}

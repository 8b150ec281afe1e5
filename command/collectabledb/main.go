// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"

	"github.com/bitmark-inc/collectables/registry"
	"github.com/bitmark-inc/collectables/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultFetchCount = 100

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'n'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	fetchCount := defaultFetchCount
	if len(options["count"]) > 0 {
		fetchCount, err = strconv.Atoi(options["count"][0])
		if nil != err || fetchCount <= 0 {
			exitwithstatus.Message("%s: invalid count: %q", program, options["count"][0])
		}
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging.loggerConfiguration()); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	log.Infof("database: %q", theConfiguration.Database.Name)
	db, err := storage.Open(theConfiguration.Database.Name, storage.ReadOnly)
	if nil != err {
		log.Criticalf("storage open error: %s", err)
		exitwithstatus.Message("%s: storage open error: %s", program, err)
	}
	defer db.Close()

	// queries only: no entropy or payment collaborator is needed
	reg := registry.New(db, nil, nil, nil, logger.New("registry"))

	c := &commandContext{
		program:    program,
		chain:      theConfiguration.Chain,
		verbose:    len(options["verbose"]) > 0,
		fetchCount: fetchCount,
		db:         db,
		registry:   reg,
		log:        log,
	}

	err = c.process(arguments)
	if nil != err {
		log.Errorf("command: %q  error: %s", arguments[0], err)
		exitwithstatus.Message("%s: %s error: %s", program, arguments[0], err)
	}
}

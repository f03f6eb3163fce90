// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/host"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "memory", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
		{Long: "slot", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if 0 == len(arguments) || processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseVariables(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: define error: %s", program, err)
	}

	slot := service.Slot(0)
	if 1 == len(options["slot"]) {
		slot, err = parseSlot(options["slot"][0])
		if nil != err {
			exitwithstatus.Message("%s: slot: %q  error: %s", program, options["slot"][0], err)
		}
	} else if len(options["slot"]) > 1 {
		exitwithstatus.Message("%s: only one slot option is allowed", program)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// select the storage
	var store storage.Lister
	if len(options["memory"]) > 0 {
		log.Info("using memory storage")
		store = storage.NewMemory()
	} else {
		log.Infof("database: %q", theConfiguration.Database.Name)
		err = storage.Initialise(theConfiguration.Database.Name, storage.ReadWrite)
		if nil != err {
			fault.Criticalf("storage initialise error: %s", err)
			exitwithstatus.Message("storage initialise error: %s", err)
		}
		defer storage.Finalise()
		store = storage.ForService(uint32(theConfiguration.serviceId))
	}

	svc, err := service.New(theConfiguration.Service, store, logger.New("service"))
	if nil != err {
		fault.Criticalf("service: %q  error: %s", theConfiguration.Service, err)
		exitwithstatus.Message("service: %q  error: %s", theConfiguration.Service, err)
	}

	hostConfig := host.Config{
		ServiceId:      theConfiguration.serviceId,
		FullAccumulate: theConfiguration.FullAccumulate,
		StrictStorage:  theConfiguration.StrictStorage,
	}
	h, err := host.New(svc, hostConfig, logger.New("host"))
	fault.PanicIfError("host.New", err)

	_, verifier := svc.(*service.Verifier)
	if !processServiceCommand(log, os.Stdout, h, store, verifier, slot, arguments) {
		exitwithstatus.Exit(1)
	}
}

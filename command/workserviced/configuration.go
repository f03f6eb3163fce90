// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/configuration"
	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "workservice.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "workserviced.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// default level for channels not named in the configuration
const defaultLogLevel = "critical"

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type Configuration struct {
	DataDirectory  string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile        string               `gluamapper:"pidfile" json:"pidfile"`
	Service        string               `gluamapper:"service" json:"service"`
	ServiceId      string               `gluamapper:"service_id" json:"service_id"`
	FullAccumulate bool                 `gluamapper:"full_accumulate" json:"full_accumulate"`
	StrictStorage  bool                 `gluamapper:"strict_storage" json:"strict_storage"`
	Database       DatabaseType         `gluamapper:"database" json:"database"`
	Logging        logger.Configuration `gluamapper:"logging" json:"logging"`

	serviceId service.ServiceId
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Service:       service.Verify,
		ServiceId:     "0",

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    map[string]string{logger.DefaultTag: defaultLogLevel},
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	if err := options.check(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if !util.IsDirectory(options.DataDirectory) {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// validate the service selection
func (c *Configuration) check() error {
	c.Service = strings.ToLower(strings.TrimSpace(c.Service))
	switch c.Service {
	case service.Verify:
	case service.Increment:
		if c.FullAccumulate {
			return fault.ErrUnsupportedAccumulation
		}
	default:
		return fault.ErrUnknownService
	}

	id, err := service.ParseServiceId(c.ServiceId)
	if nil != err {
		return err
	}
	c.serviceId = id
	return nil
}

// split -D name=value items into a variable map
func parseVariables(items []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, item := range items {
		s := strings.SplitN(item, "=", 2)
		if 2 != len(s) {
			return nil, fault.ErrInvalidVariable
		}
		name := strings.TrimSpace(s[0])
		if "" == name {
			return nil, fault.ErrInvalidVariable
		}
		variables[name] = strings.TrimSpace(s[1])
	}
	return variables, nil
}

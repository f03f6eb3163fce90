// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
)

// directory holding the log and all test databases
var testingDirName string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		fmt.Printf("create temporary directory error: %s\n", err)
		os.Exit(1)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// create a scratch directory for one test
func setupTestDirectory(t *testing.T) string {
	dir, err := ioutil.TempDir(testingDirName, "db")
	if nil != err {
		t.Fatalf("create temporary directory error: %s", err)
	}
	return dir
}

// post test cleanup
func teardownTestDirectory(dir string) {
	_ = os.RemoveAll(dir)
}

func databaseName(dir string) string {
	return filepath.Join(dir, "test.leveldb")
}

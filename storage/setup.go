// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/fault"
)

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentDBVersion = 0x100
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	log      *logger.L
	db       *leveldb.DB
	readOnly bool
	cache    Cache
}

// Initialise - open up the database connection
//
// this must be called before any service handle is used
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("storage")
	log.Infof("open database: %q  read only: %v", database, readOnly)

	db, version, err := getDB(database, readOnly)
	if nil != err {
		log.Criticalf("open database: %q  error: %s", database, err)
		return err
	}

	switch {
	case 0 == version && !readOnly:
		// empty database so tag as current version
		err = putVersion(db, currentDBVersion)
		if nil != err {
			db.Close()
			return err
		}
	case currentDBVersion != version:
		log.Criticalf("database version: %d  current version: %d", version, currentDBVersion)
		db.Close()
		return fault.ErrDatabaseVersion
	}

	poolData.log = log
	poolData.db = db
	poolData.readOnly = readOnly
	poolData.cache = newCache()

	return nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.db {
		poolData.db.Close()
		poolData.db = nil
		poolData.cache.Clear()
		poolData.log.Info("finished")
		poolData.log.Flush()
	}
}

// IsOpen - true between Initialise and Finalise
func IsOpen() bool {
	poolData.RLock()
	defer poolData.RUnlock()
	return nil != poolData.db
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

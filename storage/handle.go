// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/workservice/fault"
)

// prefix byte for all service state records
const servicePrefix = 'S'

// ServiceHandle - the LevelDB state of a single service
type ServiceHandle struct {
	prefix []byte
}

// ForService - handle for the state of one service
func ForService(serviceId uint32) *ServiceHandle {
	prefix := make([]byte, 5)
	prefix[0] = servicePrefix
	binary.BigEndian.PutUint32(prefix[1:], serviceId)
	return &ServiceHandle{
		prefix: prefix,
	}
}

// prepend the prefix onto the key
func (h *ServiceHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, len(h.prefix), len(h.prefix)+len(key))
	copy(prefixedKey, h.prefix)
	return append(prefixedKey, key...)
}

// Get - read a value for a given key
//
// the returned slice is a copy and may be modified.  A closed
// database or a read error reads as absent
func (h *ServiceHandle) Get(key []byte) ([]byte, bool) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, false
	}

	k := h.prefixKey(key)
	if value, found := poolData.cache.Get(string(k)); found {
		result := make([]byte, len(value))
		copy(result, value)
		return result, true
	}

	value, err := poolData.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil, false
	} else if nil != err {
		poolData.log.Errorf("get key: %x  error: %s", k, err)
		return nil, false
	}
	return value, true
}

// Set - store a key/value bytes pair to the database
func (h *ServiceHandle) Set(key []byte, value []byte) error {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return fault.ErrStorageNotOpen
	}
	if poolData.readOnly {
		return fault.ErrStorageReadOnly
	}

	k := h.prefixKey(key)
	err := poolData.db.Put(k, value, nil)
	if nil != err {
		poolData.log.Errorf("put key: %x  error: %s", k, err)
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	poolData.cache.Set(string(k), stored)
	return nil
}

// Elements - all keys of the service in key order
//
// the returned elements are copies and may be kept
func (h *ServiceHandle) Elements() ([]Element, error) {
	poolData.RLock()
	defer poolData.RUnlock()

	if nil == poolData.db {
		return nil, fault.ErrStorageNotOpen
	}

	iter := poolData.db.NewIterator(ldb_util.BytesPrefix(h.prefix), nil)
	defer iter.Release()

	elements := make([]Element, 0, 4)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-len(h.prefix))
		copy(dataKey, key[len(h.prefix):])

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		elements = append(elements, Element{
			Key:   dataKey,
			Value: dataValue,
		})
	}
	return elements, iter.Error()
}

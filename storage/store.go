// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/bitmark-inc/workservice/storage Store

// Store - key/value access for one service
type Store interface {
	// Get - value for a key, false if the key is absent
	//
	// the returned slice belongs to the caller
	Get(key []byte) ([]byte, bool)

	// Set - store a value, replacing any previous one
	Set(key []byte, value []byte) error
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Lister - a Store that can enumerate its contents
type Lister interface {
	Store
	Elements() ([]Element, error)
}

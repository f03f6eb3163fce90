// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/storage"
)

func TestSetThenGet(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Nil(t, err, "initialise error")
	defer storage.Finalise()

	h := storage.ForService(0x99fbfec5)

	_, found := h.Get([]byte("count"))
	assert.False(t, found, "count exists in new database")

	err = h.Set([]byte("count"), []byte{7})
	assert.Nil(t, err, "set error")

	value, found := h.Get([]byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, []byte{7}, value, "wrong count")
}

func TestPersistence(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Nil(t, err, "initialise error")

	h := storage.ForService(1)
	assert.Nil(t, h.Set([]byte("status"), []byte("accumulated")), "set status")
	assert.Nil(t, h.Set([]byte("count"), []byte{3}), "set count")
	storage.Finalise()
	assert.False(t, storage.IsOpen(), "still open after finalise")

	err = storage.Initialise(databaseName(dir), storage.ReadOnly)
	assert.Nil(t, err, "reopen error")
	defer storage.Finalise()

	value, found := h.Get([]byte("status"))
	assert.True(t, found, "status not persisted")
	assert.Equal(t, []byte("accumulated"), value, "wrong status")

	elements, err := h.Elements()
	assert.Nil(t, err, "elements error")
	assert.Equal(t, []storage.Element{
		{Key: []byte("count"), Value: []byte{3}},
		{Key: []byte("status"), Value: []byte("accumulated")},
	}, elements, "wrong elements")

	err = h.Set([]byte("count"), []byte{4})
	assert.Equal(t, fault.ErrStorageReadOnly, err, "write to read only database")
}

func TestServiceIsolation(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Nil(t, err, "initialise error")
	defer storage.Finalise()

	one := storage.ForService(1)
	two := storage.ForService(2)

	assert.Nil(t, one.Set([]byte("count"), []byte{1}), "set one")
	assert.Nil(t, two.Set([]byte("count"), []byte{2}), "set two")

	value, _ := one.Get([]byte("count"))
	assert.Equal(t, []byte{1}, value, "service one overwritten")
	value, _ = two.Get([]byte("count"))
	assert.Equal(t, []byte{2}, value, "service two overwritten")

	elements, err := storage.ForService(3).Elements()
	assert.Nil(t, err, "elements error")
	assert.Equal(t, 0, len(elements), "service three has data")
}

func TestNotOpen(t *testing.T) {
	h := storage.ForService(1)

	err := h.Set([]byte("count"), []byte{1})
	assert.Equal(t, fault.ErrStorageNotOpen, err, "set on closed database")

	_, found := h.Get([]byte("count"))
	assert.False(t, found, "get on closed database")

	_, err = h.Elements()
	assert.Equal(t, fault.ErrStorageNotOpen, err, "elements on closed database")
}

func TestInitialiseTwice(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Nil(t, err, "initialise error")
	defer storage.Finalise()

	err = storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestReadOnlyMissing(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")
	assert.False(t, storage.IsOpen(), "open after failed initialise")
}

func TestGetReturnsCopy(t *testing.T) {
	dir := setupTestDirectory(t)
	defer teardownTestDirectory(dir)

	err := storage.Initialise(databaseName(dir), storage.ReadWrite)
	assert.Nil(t, err, "initialise error")
	defer storage.Finalise()

	h := storage.ForService(1)
	err = h.Set([]byte("status"), []byte("accumulated"))
	assert.Nil(t, err, "set error")

	// first read is served by the write cache
	value, found := h.Get([]byte("status"))
	assert.True(t, found, "status not found")
	value[0] = 'X'

	actual, _ := h.Get([]byte("status"))
	assert.Equal(t, []byte("accumulated"), actual, "cached value changed through returned value")
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sort"

	cache "github.com/patrickmn/go-cache"
)

// Memory - a Store that lives only as long as the process
type Memory struct {
	items *cache.Cache
}

// NewMemory - create an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		items: cache.New(cache.NoExpiration, 0),
	}
}

// Get - a copy of the value for a key, false if the key is absent
func (m *Memory) Get(key []byte) ([]byte, bool) {
	obj, found := m.items.Get(string(key))
	if !found {
		return nil, false
	}
	stored := obj.([]byte)
	value := make([]byte, len(stored))
	copy(value, stored)
	return value, true
}

// Set - store a copy of the value
func (m *Memory) Set(key []byte, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items.Set(string(key), stored, cache.NoExpiration)
	return nil
}

// Elements - all keys in key order
func (m *Memory) Elements() ([]Element, error) {
	items := m.items.Items()
	elements := make([]Element, 0, len(items))
	for k, item := range items {
		stored := item.Object.([]byte)
		value := make([]byte, len(stored))
		copy(value, stored)
		elements = append(elements, Element{
			Key:   []byte(k),
			Value: value,
		})
	}
	sort.Slice(elements, func(i, j int) bool {
		return string(elements[i].Key) < string(elements[j].Key)
	})
	return elements, nil
}

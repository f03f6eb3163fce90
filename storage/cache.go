// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - recently written values, consulted before the database
type Cache interface {
	Get(string) ([]byte, bool)
	Set(string, []byte)
	Clear()
}

const (
	defaultCleanup    = 1 * time.Minute
	defaultExpiration = 2 * time.Minute
)

type dbCache struct {
	cache *cache.Cache
}

func newCache() Cache {
	return &dbCache{
		cache: cache.New(defaultExpiration, defaultCleanup),
	}
}

func (c *dbCache) Get(key string) ([]byte, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, false
	}
	return obj.([]byte), true
}

func (c *dbCache) Set(key string, value []byte) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

func (c *dbCache) Clear() {
	c.cache.Flush()
}

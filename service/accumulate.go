// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/counter"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/storage"
)

// state shared by both variants
type accumulator struct {
	store    storage.Store
	log      *logger.L
	status   string
	failures counter.Counter
}

// SaturatingAdd - a + b clamped to 255
func SaturatingAdd(a byte, b byte) byte {
	sum := a + b
	if sum < a {
		return 0xff
	}
	return sum
}

// read a one byte counter, absent or empty reads as zero
func (a *accumulator) getByte(key string) byte {
	value, found := a.store.Get([]byte(key))
	if !found || 0 == len(value) {
		return 0
	}
	return value[0]
}

// write failures are counted and logged, never returned
func (a *accumulator) set(key string, value []byte) {
	err := a.store.Set([]byte(key), value)
	if nil != err {
		a.failures.Increment()
		a.log.Warnf("set key: %q  error: %s", key, err)
	}
}

// add the low byte of itemCount to "count" then record the status
func (a *accumulator) accumulate(itemCount uint64, status string) {
	current := a.getByte(CountKey)
	count := SaturatingAdd(current, byte(itemCount))
	a.set(CountKey, []byte{count})
	a.set(StatusKey, []byte(status))
	a.log.Debugf("count: %d -> %d  status: %q", current, count, status)
}

// Accumulate - the minimal accumulation shared by both variants
func (a *accumulator) Accumulate(slot Slot, id ServiceId, itemCount uint64) *digest.Digest {
	a.log.Infof("accumulate slot: %d  service: %s  items: %d", slot, id, itemCount)
	a.accumulate(itemCount, a.status)
	return nil
}

// WriteFailures - storage write failures since the previous call
func (a *accumulator) WriteFailures() uint64 {
	return a.failures.Reset()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/storage"
)

// CoreIndex - the core a work item is refined on
type CoreIndex uint16

// ServiceId - identifies a service to the host
type ServiceId uint32

// Slot - time slot of an accumulation
type Slot uint32

// names of the available variants
const (
	Verify    = "verify"
	Increment = "increment"
)

// storage keys
const (
	CountKey      = "count"
	StatusKey     = "status"
	ValidCountKey = "valid_count"
	LastHashKey   = "last_hash"
)

// Service - the two entry points called by the host
type Service interface {
	// Refine - transform one work payload into a work output
	Refine(core CoreIndex, item uint32, id ServiceId, workPayload []byte, packageHash digest.Digest) []byte

	// Accumulate - fold a batch of itemCount refined items into storage
	Accumulate(slot Slot, id ServiceId, itemCount uint64) *digest.Digest
}

// OutputAccumulator - a service that can accumulate the refine
// outputs themselves instead of only their count
type OutputAccumulator interface {
	AccumulateOutputs(slot Slot, id ServiceId, outputs [][]byte) *digest.Digest
}

// FailureCounter - a service that records storage write failures
type FailureCounter interface {
	// WriteFailures - failures since the previous call
	WriteFailures() uint64
}

// New - create a service variant by name
func New(name string, store storage.Store, log *logger.L) (Service, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	switch strings.ToLower(name) {
	case Verify:
		return NewVerifier(store, log), nil
	case Increment:
		return NewIncrementer(store, log), nil
	default:
		return nil, fault.ErrUnknownService
	}
}

// String - hex form used by the network tools, e.g. 99fbfec5
func (id ServiceId) String() string {
	return fmt.Sprintf("%08x", uint32(id))
}

// MarshalText - JSON form is the same hex text
func (id ServiceId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// ParseServiceId - convert hex text, with or without 0x, to a service id
func ParseServiceId(s string) (ServiceId, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if 0 == len(s) || len(s) > 8 {
		return 0, fault.ErrInvalidServiceId
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if nil != err {
		return 0, fault.ErrInvalidServiceId
	}
	return ServiceId(n), nil
}

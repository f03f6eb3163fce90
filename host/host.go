// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - an in-process host that drives a service
//
// Work items of a batch are refined one at a time in order, their
// outputs collected, then the batch is accumulated once.  Batches are
// processed one after another, so accumulation never overlaps.
package host

import (
	"bytes"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/counter"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/fault"
	"github.com/bitmark-inc/workservice/result"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/util"
)

// Config - how the host invokes the service
type Config struct {
	ServiceId      service.ServiceId
	Core           service.CoreIndex
	FullAccumulate bool // hand refine outputs to services that accept them
	StrictStorage  bool // fail a batch on any storage write failure
}

// Host - drives one service
type Host struct {
	sync.Mutex
	log     *logger.L
	svc     service.Service
	config  Config
	items   counter.Counter
	batches counter.Counter
}

// New - create a host for a service
func New(svc service.Service, config Config, log *logger.L) (*Host, error) {
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Host{
		log:    log,
		svc:    svc,
		config: config,
	}, nil
}

// Refine - refine a single payload outside of any batch
func (h *Host) Refine(workPayload []byte) []byte {
	packageHash := digest.NewDigest(workPayload)
	output := h.svc.Refine(h.config.Core, 0, h.config.ServiceId, workPayload, packageHash)
	h.items.Increment()
	h.log.Debugf("refine payload: %x  output: %x", workPayload, output)
	return output
}

// Accumulate - accumulate a count of items without refining anything
func (h *Host) Accumulate(slot service.Slot, itemCount uint64) (*Report, error) {
	h.Lock()
	defer h.Unlock()

	report := &Report{
		Slot:      slot,
		ServiceId: h.config.ServiceId,
		Items:     itemCount,
	}
	report.Accumulated = h.svc.Accumulate(slot, h.config.ServiceId, itemCount)
	return h.finish(report)
}

// ProcessBatch - refine every payload then accumulate the batch
func (h *Host) ProcessBatch(slot service.Slot, payloads [][]byte) (*Report, error) {
	h.Lock()
	defer h.Unlock()

	packageHash := digest.NewDigest(bytes.Join(payloads, nil))

	report := &Report{
		Slot:        slot,
		ServiceId:   h.config.ServiceId,
		PackageHash: &packageHash,
		Items:       uint64(len(payloads)),
		Outputs:     make([]Output, 0, len(payloads)),
	}

	_, verifier := h.svc.(*service.Verifier)
	if verifier {
		report.Tally = make(map[string]int)
	}

	outputs := make([][]byte, 0, len(payloads))
	for i, p := range payloads {
		item := uint32(i)
		output := h.svc.Refine(h.config.Core, item, h.config.ServiceId, p, packageHash)
		outputs = append(outputs, output)
		h.items.Increment()

		o := Output{
			Item:   item,
			Output: util.HexBytes(output),
		}
		if verifier {
			code, computed, err := result.Unpack(output)
			if nil != err {
				h.log.Errorf("item: %d  output: %x  error: %s", i, output, err)
			} else {
				o.Code = code.String()
				if !code.IsError() {
					o.Digest = &computed
				}
				report.Tally[o.Code] += 1
			}
		}
		h.log.Debugf("item: %d  payload: %x  output: %x", i, p, output)
		report.Outputs = append(report.Outputs, o)
	}

	accumulator, full := h.svc.(service.OutputAccumulator)
	if h.config.FullAccumulate && full {
		report.FullAccumulate = true
		report.Accumulated = accumulator.AccumulateOutputs(slot, h.config.ServiceId, outputs)
	} else {
		report.Accumulated = h.svc.Accumulate(slot, h.config.ServiceId, report.Items)
	}

	return h.finish(report)
}

// Totals - items refined and batches accumulated since creation
func (h *Host) Totals() (uint64, uint64) {
	return h.items.Uint64(), h.batches.Uint64()
}

// collect write failures and apply the storage policy
func (h *Host) finish(report *Report) (*Report, error) {
	h.batches.Increment()

	if fc, ok := h.svc.(service.FailureCounter); ok {
		report.WriteFailures = fc.WriteFailures()
	}

	h.log.Infof("slot: %d  items: %d  write failures: %d", report.Slot, report.Items, report.WriteFailures)

	if report.WriteFailures > 0 {
		h.log.Warnf("slot: %d  storage write failures: %d", report.Slot, report.WriteFailures)
		if h.config.StrictStorage {
			return report, fault.ErrStorageWriteFailed
		}
	}
	return report, nil
}

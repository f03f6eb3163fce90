// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"bytes"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/payload"
	"github.com/bitmark-inc/workservice/result"
	"github.com/bitmark-inc/workservice/storage"
)

// status tags written by the verifier
const (
	VerifierStatus = "accumulated"
	StatusVerified = "verified"
	StatusFailed   = "failed"
	StatusError    = "error"
)

// Verifier - checks that a preimage hashes to the expected digest
type Verifier struct {
	accumulator
}

// NewVerifier - create a verification service on a store
func NewVerifier(store storage.Store, log *logger.L) *Verifier {
	return &Verifier{
		accumulator: accumulator{
			store:  store,
			log:    log,
			status: VerifierStatus,
		},
	}
}

// Refine - verify blake2s256(preimage) == expected digest
//
// input:  [32 bytes expected digest] ++ [N bytes preimage], N >= 1
// output: [1 byte result code] ++ [32 bytes computed digest]
//
// a short payload gives the error code and a zero digest
func (v *Verifier) Refine(core CoreIndex, item uint32, id ServiceId, workPayload []byte, packageHash digest.Digest) []byte {
	expected, preimage, err := payload.Split(workPayload)
	if nil != err {
		return result.Pack(result.ErrorPayloadTooShort, nil)
	}

	computed := digest.NewDigest(preimage)

	code := result.Invalid
	if bytes.Equal(computed[:], expected) {
		code = result.Valid
	}
	return result.Pack(code, &computed)
}

// AccumulateOutputs - accumulate with access to the refine outputs
//
// in addition to the count this maintains "valid_count" and
// "last_hash", and sets "status" from the last decodable output
func (v *Verifier) AccumulateOutputs(slot Slot, id ServiceId, outputs [][]byte) *digest.Digest {
	v.log.Infof("accumulate outputs slot: %d  service: %s  items: %d", slot, id, len(outputs))

	status := v.status
	validCount := v.getByte(ValidCountKey)
	validSeen := false
	var lastHash *digest.Digest

	for i, output := range outputs {
		code, computed, err := result.Unpack(output)
		if nil != err {
			v.log.Warnf("output[%d]: %x  error: %s", i, output, err)
			continue
		}

		switch code {
		case result.Valid:
			validCount = SaturatingAdd(validCount, 1)
			validSeen = true
			status = StatusVerified
		case result.Invalid:
			status = StatusFailed
		case result.ErrorPayloadTooShort:
			status = StatusError
		}

		if !code.IsError() {
			d := computed
			lastHash = &d
		}
	}

	v.accumulate(uint64(len(outputs)), status)

	if validSeen {
		v.set(ValidCountKey, []byte{validCount})
	}
	if nil != lastHash {
		v.set(LastHashKey, lastHash[:])
	}
	return nil
}

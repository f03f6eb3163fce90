// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package payload - layout of the work item payload accepted by the
// verification service
//
//   bytes 0..31  expected Blake2s-256 digest
//   bytes 32..   preimage (at least one byte)
//
// the byte-increment service treats the whole payload as data and
// needs no decoding
package payload

import (
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/fault"
)

// MinimumLength - digest plus a one byte preimage
const MinimumLength = digest.Length + 1

// Split - separate a payload into expected digest and preimage
//
// both results share the storage of the buffer, nothing is copied
func Split(buffer []byte) ([]byte, []byte, error) {
	if len(buffer) < MinimumLength {
		return nil, nil, fault.ErrPayloadTooShort
	}
	return buffer[:digest.Length], buffer[digest.Length:], nil
}

// Pack - build a payload from an expected digest and a preimage
func Pack(expected digest.Digest, preimage []byte) ([]byte, error) {
	if 0 == len(preimage) {
		return nil, fault.ErrMissingPreimage
	}
	buffer := make([]byte, 0, digest.Length+len(preimage))
	buffer = append(buffer, expected[:]...)
	return append(buffer, preimage...), nil
}

// ForPreimage - build a payload that will verify as valid
func ForPreimage(preimage []byte) ([]byte, error) {
	return Pack(digest.NewDigest(preimage), preimage)
}

// Tamper - copy of a payload with the first digest byte incremented
// so that verification will fail
func Tamper(buffer []byte) []byte {
	tampered := make([]byte, len(buffer))
	copy(tampered, buffer)
	if len(tampered) > 0 {
		tampered[0] += 1
	}
	return tampered
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package result - fixed layout encoding of a verification outcome
//
//   byte 0       result code
//   bytes 1..32  computed digest (all zero for an error code)
//
// the length never depends on the outcome
package result

import (
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/fault"
)

// Code - outcome of a verification
type Code byte

// the possible codes, values are part of the wire format
const (
	Invalid              Code = 0x00
	Valid                Code = 0x01
	ErrorPayloadTooShort Code = 0xe1
)

// Length - size of an encoded result
const Length = 1 + digest.Length

// String - name of the code for logs and JSON output
func (code Code) String() string {
	switch code {
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	case ErrorPayloadTooShort:
		return "error_payload_too_short"
	default:
		return "unknown"
	}
}

// IsError - true for codes that carry no computed digest
func (code Code) IsError() bool {
	return ErrorPayloadTooShort == code
}

// MarshalText - JSON form of the code
func (code Code) MarshalText() ([]byte, error) {
	return []byte(code.String()), nil
}

// Pack - encode a code and an optional digest
//
// a nil digest produces the all-zero field
func Pack(code Code, d *digest.Digest) []byte {
	buffer := make([]byte, Length)
	buffer[0] = byte(code)
	if nil != d {
		copy(buffer[1:], d[:])
	}
	return buffer
}

// Unpack - decode a buffer produced by Pack
func Unpack(buffer []byte) (Code, digest.Digest, error) {
	var d digest.Digest

	if Length != len(buffer) {
		return 0, d, fault.ErrInvalidResultLength
	}

	code := Code(buffer[0])
	switch code {
	case Invalid, Valid, ErrorPayloadTooShort:
	default:
		return 0, d, fault.ErrInvalidResultCode
	}

	copy(d[:], buffer[1:])
	return code, d, nil
}

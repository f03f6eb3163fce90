// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2s"

	"github.com/bitmark-inc/workservice/fault"
)

// Length - number of bytes in the digest
const Length = blake2s.Size

// Digest - type for a digest
// to convert to bytes just use d[:]
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return blake2s.Sum256(record)
}

// IsZero - true for the all-zero sentinel value
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<Blake2s-256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(Length) {
		return fault.ErrInvalidDigestLength
	}
	buffer := make([]byte, Length)
	if _, err := hex.Decode(buffer, s); nil != err {
		return fault.ErrInvalidHex
	}
	copy(digest[:], buffer)
	return nil
}

// FromBytes - convert and validate a binary byte slice to a digest
func FromBytes(digest *Digest, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidDigestLength
	}
	copy(digest[:], buffer)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/workservice/fault"
)

// HexBytes - byte data shown as 0x prefixed hex in JSON and %s
type HexBytes []byte

// ToHex - 0x prefixed lower case hex
func ToHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

// FromHex - decode hex with an optional 0x prefix
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHex
	}
	return buffer, nil
}

// String - for %s
func (b HexBytes) String() string {
	return ToHex(b)
}

// MarshalText - convert to 0x prefixed hex text
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte(ToHex(b)), nil
}

// UnmarshalText - convert hex text, with or without 0x
func (b *HexBytes) UnmarshalText(s []byte) error {
	buffer, err := FromHex(string(s))
	if nil != err {
		return err
	}
	*b = buffer
	return nil
}

// Printable - the data as text if every byte is printable ASCII
func Printable(data []byte) (string, bool) {
	for _, c := range data {
		if c < 0x20 || c > 0x7e {
			return "", false
		}
	}
	return string(data), true
}

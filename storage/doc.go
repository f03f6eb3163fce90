// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the key/value map that services accumulate into
//
// A service only sees the Store interface: Get and Set on short byte
// keys.  Two implementations are provided: an on-disk LevelDB
// database shared by all services, and an in-memory map for testing
// and dry runs.
//
// Notes:
// 1. ++         = concatenation of byte data
// 2. service id = big endian uint32 (4 bytes)
// 3. key        = service chosen byte string, e.g. "count", "status"
//
// LevelDB layout:
//
//   0x00 ++ "VERSION"          - database version
//                                data: big endian uint32
//
//   S ++ service id ++ key     - service state
//                                data: service defined bytes
package storage

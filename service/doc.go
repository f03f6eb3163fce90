// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package service - the host-invoked work item services
//
// A service has two entry points.  Refine is called once per work
// item, is pure and returns the work output.  Accumulate is called
// once per batch with the number of refined items and folds the batch
// into the service's storage.  The host never lets the two stages
// call each other; they meet only through the host and the storage.
//
// Two variants exist:
//
//   verify     payload = expected Blake2s-256 digest ++ preimage
//              output  = result code ++ computed digest (33 bytes)
//              status  = "accumulated"
//
//   increment  output  = every payload byte plus one, modulo 256
//              status  = "processed"
//
// Storage keys:
//
//   "count"        one byte, saturating count of accumulated items
//   "status"       ASCII tag of the last accumulation
//   "valid_count"  one byte, saturating count of valid outputs (verify, full accumulation only)
//   "last_hash"    last computed digest (verify, full accumulation only)
package service

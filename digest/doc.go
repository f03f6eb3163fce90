// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the 32 byte Blake2s-256 digest used throughout
// the service
//
// a digest is held in the byte order produced by the hash function
// and printed as lower case hex in the same order, so the text form
// matches the output of other Blake2s-256 tools
package digest

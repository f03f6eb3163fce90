// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/workservice/fault"
)

// common errors - keep in alphabetic order
var (
	ErrRequiredData     = fault.InvalidError("one of data or hex is required")
	ErrRequiredHex      = fault.InvalidError("hex is required")
	ErrRequiredOutput   = fault.InvalidError("output is required")
	ErrRequiredPreimage = fault.InvalidError("preimage is required")
)

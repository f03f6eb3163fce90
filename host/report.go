// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/util"
)

// Report - outcome of one batch, shaped for JSON output
type Report struct {
	Slot           service.Slot      `json:"slot"`
	ServiceId      service.ServiceId `json:"service_id"`
	PackageHash    *digest.Digest    `json:"package_hash,omitempty"`
	Items          uint64            `json:"items"`
	Outputs        []Output          `json:"outputs,omitempty"`
	Tally          map[string]int    `json:"tally,omitempty"`
	FullAccumulate bool              `json:"full_accumulate"`
	Accumulated    *digest.Digest    `json:"accumulated"`
	WriteFailures  uint64            `json:"write_failures"`
}

// Output - one refined item
type Output struct {
	Item   uint32         `json:"item"`
	Output util.HexBytes  `json:"output"`
	Code   string         `json:"code,omitempty"`
	Digest *digest.Digest `json:"digest,omitempty"`
}

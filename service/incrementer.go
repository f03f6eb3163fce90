// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package service

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/storage"
)

// IncrementerStatus - status tag written by the incrementer
const IncrementerStatus = "processed"

// Incrementer - adds one to every payload byte
type Incrementer struct {
	accumulator
}

// NewIncrementer - create a byte-increment service on a store
func NewIncrementer(store storage.Store, log *logger.L) *Incrementer {
	return &Incrementer{
		accumulator: accumulator{
			store:  store,
			log:    log,
			status: IncrementerStatus,
		},
	}
}

// Refine - output has the payload length, each byte incremented
// modulo 256
func (*Incrementer) Refine(core CoreIndex, item uint32, id ServiceId, workPayload []byte, packageHash digest.Digest) []byte {
	output := make([]byte, len(workPayload))
	for i, b := range workPayload {
		output[i] = b + 1
	}
	return output
}

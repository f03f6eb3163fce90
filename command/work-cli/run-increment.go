// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/service"
	"github.com/bitmark-inc/workservice/util"
)

func runIncrement(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	hexData := c.String("hex")
	if "" == hexData {
		return ErrRequiredHex
	}

	workPayload, err := util.FromHex(hexData)
	if nil != err {
		return err
	}

	// refine needs neither storage nor logging
	svc := service.Incrementer{}
	output := svc.Refine(0, 0, 0, workPayload, digest.NewDigest(workPayload))

	if m.verbose {
		fmt.Fprintf(m.e, "payload length: %d\n", len(workPayload))
	}

	out := struct {
		Payload util.HexBytes `json:"payload"`
		Output  util.HexBytes `json:"output"`
	}{
		Payload: workPayload,
		Output:  output,
	}
	return printJson(m.w, out)
}

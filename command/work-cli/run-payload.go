// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/payload"
	"github.com/bitmark-inc/workservice/util"
)

func runPayload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	preimage := c.String("preimage")
	if "" == preimage {
		return ErrRequiredPreimage
	}

	workPayload, err := payload.ForPreimage([]byte(preimage))
	if nil != err {
		return err
	}

	tampered := c.Bool("tamper")
	if tampered {
		workPayload = payload.Tamper(workPayload)
	}

	expected, _, err := payload.Split(workPayload)
	if nil != err {
		return err
	}
	d := digest.Digest{}
	err = digest.FromBytes(&d, expected)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "preimage: %q  tampered: %v\n", preimage, tampered)
		fmt.Fprintf(m.e, "payload length: %d\n", len(workPayload))
	}

	out := struct {
		Preimage string        `json:"preimage"`
		Expected digest.Digest `json:"expected"`
		Tampered bool          `json:"tampered"`
		Payload  util.HexBytes `json:"payload"`
	}{
		Preimage: preimage,
		Expected: d,
		Tampered: tampered,
		Payload:  workPayload,
	}
	return printJson(m.w, out)
}

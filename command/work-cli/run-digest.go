// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/util"
)

func runDigest(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("data")
	hexData := c.String("hex")

	var data []byte
	switch {
	case "" != text && "" == hexData:
		data = []byte(text)
	case "" == text && "" != hexData:
		b, err := util.FromHex(hexData)
		if nil != err {
			return err
		}
		data = b
	default:
		return ErrRequiredData
	}

	d := digest.NewDigest(data)

	if m.verbose {
		fmt.Fprintf(m.e, "data length: %d\n", len(data))
	}

	out := struct {
		Data   util.HexBytes `json:"data"`
		Digest digest.Digest `json:"digest"`
	}{
		Data:   data,
		Digest: d,
	}
	return printJson(m.w, out)
}

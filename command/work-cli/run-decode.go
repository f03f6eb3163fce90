// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/workservice/digest"
	"github.com/bitmark-inc/workservice/result"
	"github.com/bitmark-inc/workservice/util"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	output := c.String("output")
	if "" == output {
		return ErrRequiredOutput
	}

	buffer, err := util.FromHex(output)
	if nil != err {
		return err
	}

	code, computed, err := result.Unpack(buffer)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "code byte: 0x%02x\n", byte(code))
	}

	out := struct {
		Code   result.Code    `json:"code"`
		Valid  bool           `json:"valid"`
		Error  bool           `json:"error"`
		Digest *digest.Digest `json:"digest,omitempty"`
	}{
		Code:  code,
		Valid: result.Valid == code,
		Error: code.IsError(),
	}
	if !code.IsError() {
		out.Digest = &computed
	}
	return printJson(m.w, out)
}

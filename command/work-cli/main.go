// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "work-cli"
	app.Usage = "offline helpers for the work-item service"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "payload",
			Usage:     "build a verification payload: digest followed by preimage",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "preimage, p",
					Value: "",
					Usage: "*preimage text `STRING`",
				},
				cli.BoolFlag{
					Name:  "tamper, t",
					Usage: " corrupt the first digest byte so verification fails",
				},
			},
			Action: runPayload,
		},
		{
			Name:      "digest",
			Usage:     "compute the Blake2s-256 digest of some data",
			ArgsUsage: "\n   (+ = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "data, d",
					Value: "",
					Usage: "+text `STRING`",
				},
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "+hex encoded `BYTES`",
				},
			},
			Action: runDigest,
		},
		{
			Name:      "decode",
			Usage:     "decode a verification refine output",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: "*hex encoded refine output `BYTES`",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "increment",
			Usage:     "apply the byte increment transform locally",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "hex, x",
					Value: "",
					Usage: "*hex encoded payload `BYTES`",
				},
			},
			Action: runIncrement,
		},
		{
			Name:  "version",
			Usage: "display work-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}

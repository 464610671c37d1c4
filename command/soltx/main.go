// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/transaction"
)

type metadata struct {
	file    string
	config  *Configuration
	log     *logger.L
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "soltx"
	app.Usage = "decode, sign and price versioned transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE` with logging and identities",
		},
	}

	transactionFlag := cli.StringFlag{
		Name:  "transaction, t",
		Value: "",
		Usage: "*Base64 encoded transaction `TX`",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key pair",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " also write the secret key to keygen `FILE`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "decode",
			Usage:     "show the contents of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runDecode,
		},
		{
			Name:      "sign",
			Usage:     "add signatures to a transaction",
			ArgsUsage: "\n   (* = required, + = at least one)",
			Flags: []cli.Flag{
				transactionFlag,
				cli.StringSliceFlag{
					Name:  "identity, i",
					Usage: "+sign with configured identity `NAME`",
				},
				cli.StringSliceFlag{
					Name:  "key, k",
					Usage: "+sign with keygen `FILE`",
				},
				cli.StringSliceFlag{
					Name:  "signature, s",
					Usage: "+add an external signature `ACCOUNT:SIGNATURE`",
				},
			},
			Action: runSign,
		},
		{
			Name:      "verify",
			Usage:     "check all signatures of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runVerify,
		},
		{
			Name:      "fee",
			Usage:     "estimate the fee of a transaction in SOL",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{transactionFlag},
			Action:    runFee,
		},
		{
			Name:      "version",
			Usage:     "display soltx version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			file:    c.GlobalString("config-file"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		if "" == m.file {
			return nil
		}

		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", m.file)
		}

		config, err := getConfiguration(m.file)
		if nil != err {
			return err
		}
		m.config = config

		// start logging
		if err := logger.Initialise(config.Logging); nil != err {
			return err
		}
		m.log = logger.New("main")
		m.log.Infof("version: %s", version)
		m.log.Debugf("configuration: %+v", config)

		for _, initialise := range []func() error{
			fault.Initialise,
			transaction.Initialise,
			computebudget.Initialise,
		} {
			if err := initialise(); nil != err {
				return err
			}
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.log {
			return nil
		}
		m.log.Info("finished")
		computebudget.Finalise()
		transaction.Finalise()
		fault.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/transaction"
	"github.com/bitmark-inc/soltx/util"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	titleColour = "\033[1;36m"
	keyColour   = "\033[1;33m"
	valColour   = "\033[1;34m"
	errColour   = "\033[1;31m"
	endColour   = "\033[0m"
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "go", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'G'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || (0 == len(arguments) && 1 != len(options["file"])) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--colour] [--ascii] [--go=NAME] (--file=FILE | base64-transaction | -)", program)
	}

	verbose := len(options["verbose"]) > 0

	encoded := ""
	if len(options["file"]) > 0 {
		encoded, err = readFile(options["file"][0])
	} else if "-" == arguments[0] {
		encoded, err = readAll(os.Stdin)
	} else {
		encoded = arguments[0]
	}
	if nil != err {
		exitwithstatus.Message("%s: read transaction error: %s", program, err)
	}

	levels := map[string]string{
		logger.DefaultTag: "critical",
	}
	if verbose {
		levels[logger.DefaultTag] = "debug"
	}
	logging := logger.Configuration{
		Directory: ".",
		File:      "txdump.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels:    levels,
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	if err = transaction.Initialise(); nil != err {
		exitwithstatus.Message("%s: transaction setup failed with error: %s", program, err)
	}
	defer transaction.Finalise()

	if err = computebudget.Initialise(); nil != err {
		exitwithstatus.Message("%s: compute budget setup failed with error: %s", program, err)
	}
	defer computebudget.Finalise()

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if nil != err {
		exitwithstatus.Message("%s: base64 decode error: %s", program, err)
	}

	if len(options["go"]) > 0 {
		fmt.Printf("%s\n", util.FormatBytes(options["go"][0], raw))
		return
	}

	c := colours{}
	if len(options["colour"]) > 0 {
		c = colours{
			title: titleColour,
			key:   keyColour,
			value: valColour,
			err:   errColour,
			end:   endColour,
		}
	}

	if err := dump(os.Stdout, raw, len(options["ascii"]) > 0, c); nil != err {
		exitwithstatus.Message("%s: decode error: %s", program, err)
	}
}

func readFile(fileName string) (string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return "", err
	}
	defer f.Close()
	return readAll(f)
}

func readAll(r io.Reader) (string, error) {
	b, err := ioutil.ReadAll(r)
	if nil != err {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

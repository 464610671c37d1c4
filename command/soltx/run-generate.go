// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/keypair"
	"github.com/bitmark-inc/soltx/util"
)

type generateResult struct {
	Account    string `json:"account"`
	SecretKey  string `json:"secret_key,omitempty"`
	KeygenFile string `json:"keygen_file,omitempty"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	output := c.String("output")

	if "" != output && util.FileExists(output) {
		return fmt.Errorf("keygen file: %q already exists", output)
	}

	keyPair, err := keypair.New()
	if nil != err {
		return err
	}

	result := generateResult{
		Account: keyPair.PublicKey.String(),
	}

	// the secret is only shown when it is not saved
	if "" == output {
		result.SecretKey = keyPair.Base58()
	} else {
		if m.verbose {
			fmt.Fprintf(m.e, "writing keygen file: %s\n", output)
		}
		if err := keyPair.WriteKeygenFile(output); nil != err {
			return err
		}
		check, err := keypair.FromKeygenFile(output)
		if nil != err || check.PublicKey != keyPair.PublicKey {
			fault.Criticalf("keygen file: %q does not read back: %v", output, err)
			return fault.ErrPublicKeyMismatch
		}
		result.KeygenFile = output
	}

	return printJson(m.w, result)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"
)

type verifyResult struct {
	ID     string `json:"id,omitempty"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := checkTransaction(c, os.Stdin)
	if nil != err {
		return err
	}

	result := verifyResult{
		Valid: true,
	}

	verifyErr := tx.Verify()
	if nil != verifyErr {
		result.Valid = false
		result.Reason = verifyErr.Error()
	} else {
		result.ID, _ = tx.ID()
	}

	if err := printJson(m.w, result); nil != err {
		return err
	}

	// non-zero exit status for scripts
	return verifyErr
}

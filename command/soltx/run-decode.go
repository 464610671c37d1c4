// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soltx/message"
	"github.com/bitmark-inc/soltx/transaction"
)

type decodeResult struct {
	ID         string           `json:"id,omitempty"`
	Signed     bool             `json:"signed"`
	Signatures []string         `json:"signatures"`
	Signers    []string         `json:"signers"`
	Fee        string           `json:"fee"`
	Message    *message.Message `json:"message"`
}

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := checkTransaction(c, os.Stdin)
	if nil != err {
		return err
	}

	signers := make([]string, 0, tx.Message.Header.NumRequireSignatures)
	for _, signer := range tx.Message.RequiredSigners() {
		signers = append(signers, signer.String())
	}

	result := decodeResult{
		Signed:     tx.IsSigned(),
		Signatures: tx.Signatures,
		Signers:    signers,
		Fee:        transaction.FormatFee(tx.EstimateFee()),
		Message:    tx.Message,
	}
	if id, err := tx.ID(); nil == err {
		result.ID = id
	}

	return printJson(m.w, result)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/transaction"
)

type feeResult struct {
	Fee           string                `json:"fee"`
	Signatures    int                   `json:"signatures"`
	PriorityFee   string                `json:"priority_fee_lamports"`
	ComputeBudget *computebudget.Budget `json:"compute_budget"`
}

func runFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := checkTransaction(c, os.Stdin)
	if nil != err {
		return err
	}

	budget := computebudget.Interpret(tx.Message.InstructionData(account.ComputeBudgetProgramID))

	result := feeResult{
		Fee:           transaction.FormatFee(tx.EstimateFee()),
		Signatures:    len(tx.Signatures),
		PriorityFee:   budget.Fee().String(),
		ComputeBudget: budget,
	}

	return printJson(m.w, result)
}

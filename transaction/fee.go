// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/computebudget"
)

// fee constants
const (
	LamportsPerSignature = 5000

	// one SOL is 10^9 lamports, the smallest unit
	FeeDecimalPlaces = 9
)

// EstimateFee - network fee in SOL
//
// 5000 lamports per signature (at least one) plus the compute budget
// priority fee, rounded up to whole lamports
func (tx *VersionedTransaction) EstimateFee() decimal.Decimal {
	signatures := len(tx.Signatures)
	if signatures < 1 {
		signatures = 1
	}
	signatureFee := LamportsToSOL(decimal.NewFromInt(int64(LamportsPerSignature * signatures)))

	payloads := tx.Message.InstructionData(account.ComputeBudgetProgramID)
	priorityFee := LamportsToSOL(computebudget.Fee(payloads))

	fee := signatureFee.Add(priorityFee).RoundCeil(FeeDecimalPlaces)
	debugf("fee: %s  signatures: %d  budget instructions: %d", FormatFee(fee), signatures, len(payloads))
	return fee
}

// LamportsToSOL - convert the smallest unit to SOL
func LamportsToSOL(lamports decimal.Decimal) decimal.Decimal {
	return lamports.Shift(-FeeDecimalPlaces)
}

// FormatFee - SOL amount with exactly nine fractional digits
func FormatFee(fee decimal.Decimal) string {
	return fee.StringFixed(FeeDecimalPlaces)
}

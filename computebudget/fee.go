// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package computebudget

import (
	"github.com/shopspring/decimal"
)

// budget defaults
const (
	DefaultComputeUnitLimit = 200_000
	MaximumComputeUnitLimit = 1_400_000

	// unit price is quoted in millionths of a lamport
	microLamportsExponent = 6
)

// Budget - combined effect of all directives in a message
type Budget struct {
	UnitLimit     uint64       `json:"unitLimit"`
	UnitPrice     uint64       `json:"unitPrice"`
	AdditionalFee uint64       `json:"additionalFee"`
	Directives    []*Directive `json:"directives"`
}

// Interpret - apply the directives in order, the last of each kind wins
//
// payloads that do not parse are logged and skipped
func Interpret(payloads [][]byte) *Budget {
	budget := &Budget{
		UnitLimit:  DefaultComputeUnitLimit,
		Directives: make([]*Directive, 0, len(payloads)),
	}

	for i, data := range payloads {
		d, err := Parse(data)
		if nil != err {
			warnf("payload[%d]: %x skipped: %s", i, data, err)
			continue
		}
		debugf("payload[%d]: %s", i, d.Tag)
		budget.Directives = append(budget.Directives, d)

		switch d.Tag {
		case RequestUnitsDeprecated:
			budget.UnitLimit = uint64(d.Units)
			budget.AdditionalFee = uint64(d.AdditionalFee)
		case SetComputeUnitLimit:
			budget.UnitLimit = uint64(d.Units)
		case SetComputeUnitPrice:
			budget.UnitPrice = d.MicroLamports
		}
	}

	if budget.UnitLimit > MaximumComputeUnitLimit {
		budget.UnitLimit = MaximumComputeUnitLimit
	}
	return budget
}

// Fee - priority fee in lamports
//
// exact: unit limit × unit price is in micro-lamports and is not
// rounded here
func (budget *Budget) Fee() decimal.Decimal {
	priority := decimal.NewFromInt(int64(budget.UnitLimit)).
		Mul(decimal.NewFromUint64(budget.UnitPrice)).
		Shift(-microLamportsExponent)
	return priority.Add(decimal.NewFromInt(int64(budget.AdditionalFee)))
}

// Fee - priority fee in lamports for a set of compute budget payloads
func Fee(payloads [][]byte) decimal.Decimal {
	return Interpret(payloads).Fee()
}

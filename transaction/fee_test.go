// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"encoding/binary"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/soltx/message"
	"github.com/bitmark-inc/soltx/transaction"
)

func unitLimit(units uint32) []byte {
	b := []byte{0x02, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(b[1:], units)
	return b
}

func unitPrice(microLamports uint64) []byte {
	b := make([]byte, 9)
	b[0] = 0x03
	binary.LittleEndian.PutUint64(b[1:], microLamports)
	return b
}

func TestEstimateFeeBase(t *testing.T) {
	keys := makeSigners(1)
	m := makeMessage(message.Legacy, keys)

	unsigned := transaction.New(m)
	assert.Equal(t, "0.000005000", transaction.FormatFee(unsigned.EstimateFee()), "unsigned")

	signed := signAll(t, m, []transaction.Signer{keys[0]})
	fee := signed.EstimateFee()
	assert.True(t, decimal.RequireFromString("0.000005").Equal(fee), "fee: %s", fee)
	assert.Equal(t, "0.000005000", transaction.FormatFee(fee), "signed")
}

func TestEstimateFeeMonotonic(t *testing.T) {
	keys := makeSigners(4)
	m := makeMessage(message.V0, keys, unitLimit(1000), unitPrice(3))
	tx := transaction.New(m)

	previous := decimal.Zero
	for _, k := range keys {
		fee := tx.EstimateFee()
		assert.True(t, fee.GreaterThanOrEqual(previous), "fee: %s  previous: %s", fee, previous)
		previous = fee

		// the first sign sizes the slot list to four
		assert.Nil(t, tx.Sign(k), "sign")
	}
	assert.Equal(t, "0.000020001", transaction.FormatFee(tx.EstimateFee()), "four signatures")
}

func TestEstimateFeeComputeBudget(t *testing.T) {
	keys := makeSigners(1)

	tests := []struct {
		name     string
		budget   [][]byte
		expected string
	}{
		{"no budget", nil, "0.000005000"},
		{"limit without price", [][]byte{unitLimit(300000)}, "0.000005000"},
		{"exact lamports", [][]byte{unitLimit(300000), unitPrice(10000)}, "0.000008000"},
		{"rounds up", [][]byte{unitPrice(1)}, "0.000005001"},
		{"tiny price rounds up", [][]byte{unitLimit(1), unitPrice(1)}, "0.000005001"},
		{"malformed ignored", [][]byte{{0x03}, unitLimit(500000), unitPrice(2000000)}, "0.001005000"},
	}

	for _, item := range tests {
		m := makeMessage(message.Legacy, keys, item.budget...)
		tx := signAll(t, m, []transaction.Signer{keys[0]})
		assert.Equal(t, item.expected, transaction.FormatFee(tx.EstimateFee()), item.name)
	}
}

func TestLamportsToSOL(t *testing.T) {
	sol := transaction.LamportsToSOL(decimal.NewFromInt(1500000000))
	assert.True(t, decimal.RequireFromString("1.5").Equal(sol), "sol: %s", sol)
}

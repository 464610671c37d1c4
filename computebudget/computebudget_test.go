// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package computebudget_test

import (
	"encoding/binary"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/fault"
)

func unitLimit(units uint32) []byte {
	b := []byte{byte(computebudget.SetComputeUnitLimit), 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(b[1:], units)
	return b
}

func unitPrice(microLamports uint64) []byte {
	b := make([]byte, 9)
	b[0] = byte(computebudget.SetComputeUnitPrice)
	binary.LittleEndian.PutUint64(b[1:], microLamports)
	return b
}

func requestUnits(units uint32, additionalFee uint32) []byte {
	b := make([]byte, 9)
	b[0] = byte(computebudget.RequestUnitsDeprecated)
	binary.LittleEndian.PutUint32(b[1:], units)
	binary.LittleEndian.PutUint32(b[5:], additionalFee)
	return b
}

func TestParse(t *testing.T) {
	d, err := computebudget.Parse(unitLimit(300000))
	require.Nil(t, err, "limit")
	assert.Equal(t, computebudget.SetComputeUnitLimit, d.Tag, "limit tag")
	assert.Equal(t, uint32(300000), d.Units, "units")

	d, err = computebudget.Parse(unitPrice(123456789))
	require.Nil(t, err, "price")
	assert.Equal(t, computebudget.SetComputeUnitPrice, d.Tag, "price tag")
	assert.Equal(t, uint64(123456789), d.MicroLamports, "micro lamports")

	d, err = computebudget.Parse(requestUnits(1000, 77))
	require.Nil(t, err, "request units")
	assert.Equal(t, uint32(1000), d.Units, "deprecated units")
	assert.Equal(t, uint32(77), d.AdditionalFee, "additional fee")

	d, err = computebudget.Parse([]byte{0x01, 0x00, 0x00, 0x01, 0x00})
	require.Nil(t, err, "heap frame")
	assert.Equal(t, computebudget.RequestHeapFrame, d.Tag, "heap tag")
	assert.Equal(t, uint32(65536), d.Bytes, "heap bytes")

	d, err = computebudget.Parse([]byte{0x04, 0x00, 0x00, 0x02, 0x00})
	require.Nil(t, err, "data size limit")
	assert.Equal(t, uint32(131072), d.Bytes, "loaded bytes")
	assert.Equal(t, "SetLoadedAccountsDataSizeLimit", d.Tag.String(), "name")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		data []byte
		err  error
	}{
		{[]byte{}, fault.ErrTruncatedDirective},
		{unitLimit(1)[:4], fault.ErrTruncatedDirective},
		{unitPrice(1)[:8], fault.ErrTruncatedDirective},
		{requestUnits(1, 1)[:5], fault.ErrTruncatedDirective},
		{[]byte{0x01, 0x00}, fault.ErrTruncatedDirective},
		{[]byte{0x09, 0x00, 0x00, 0x00, 0x00}, fault.ErrUnknownDirective},
	}

	for i, item := range tests {
		d, err := computebudget.Parse(item.data)
		assert.Nil(t, d, "%d: directive", i)
		assert.Equal(t, item.err, err, "%d: error", i)
	}
}

func TestFee(t *testing.T) {
	tests := []struct {
		name     string
		payloads [][]byte
		expected string
	}{
		{"none", nil, "0"},
		{"limit only", [][]byte{unitLimit(300000)}, "0"},
		{"limit and price", [][]byte{unitLimit(300000), unitPrice(10000)}, "3000"},
		{"default limit", [][]byte{unitPrice(1)}, "0.2"},
		{"fractional", [][]byte{unitLimit(1), unitPrice(1)}, "0.000001"},
		{"last wins", [][]byte{unitPrice(5), unitLimit(10), unitPrice(1000000), unitLimit(2)}, "2"},
		{"deprecated", [][]byte{requestUnits(100000, 5000)}, "5000"},
		{"capped", [][]byte{unitLimit(2000000), unitPrice(1000000)}, "1400000"},
		{"malformed skipped", [][]byte{{0x03, 0x01}, unitLimit(100), unitPrice(1000000), {}}, "100"},
	}

	for _, item := range tests {
		expected := decimal.RequireFromString(item.expected)
		fee := computebudget.Fee(item.payloads)
		assert.True(t, expected.Equal(fee), "%s: fee: %s  expected: %s", item.name, fee, expected)
	}
}

func TestInterpret(t *testing.T) {
	budget := computebudget.Interpret([][]byte{unitLimit(50000), {0xff}, unitPrice(20)})
	assert.Equal(t, uint64(50000), budget.UnitLimit, "limit")
	assert.Equal(t, uint64(20), budget.UnitPrice, "price")
	assert.Equal(t, uint64(0), budget.AdditionalFee, "additional")
	assert.Equal(t, 2, len(budget.Directives), "directives")
}

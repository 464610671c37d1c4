// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/message"
	"github.com/bitmark-inc/soltx/transaction"
	"github.com/bitmark-inc/soltx/util"
)

type colours struct {
	title string
	key   string
	value string
	err   string
	end   string
}

// dump - print each section of a packed transaction
//
// the signature block is shown before the message is decoded so a
// damaged message still shows its signatures
func dump(w io.Writer, raw []byte, ascii bool, c colours) error {

	count, err := util.DecodeLength(raw)
	if nil != err {
		return err
	}
	headerSize := len(raw) - len(count.Bytes)

	fmt.Fprintf(w, "%sSignatures:%s %d  (%d length bytes)\n", c.title, c.end, count.Length, headerSize)

	rest := count.Bytes
	for i := uint64(0); i < count.Length; i += 1 {
		if len(rest) < account.SignatureSize {
			return fmt.Errorf("signature: %d: only %d bytes remain", i, len(rest))
		}
		signature, _ := account.SignatureFromBytes(rest[:account.SignatureSize])
		rest = rest[account.SignatureSize:]
		fmt.Fprintf(w, "%4d: %s%s%s\n", i, c.value, signature, c.end)
		if ascii {
			hexDump(w, "      ", "", signature[:])
		}
	}

	fmt.Fprintf(w, "%sMessage:%s %d bytes\n", c.title, c.end, len(rest))
	if ascii {
		hexDump(w, "      ", "", rest)
	}

	m, err := message.Deserialize(rest)
	if nil != err {
		return err
	}
	dumpMessage(w, m, c)

	// a decoded message always packs again
	repacked, err := m.Serialize()
	fault.PanicIfError("txdump: repack message", err)
	if !bytes.Equal(repacked, rest) {
		fmt.Fprintf(w, "%sCanonical:%s %sno%s\n", c.title, c.end, c.err, c.end)
	}

	tx, err := transaction.FromBytes(raw)
	if nil != err {
		fmt.Fprintf(w, "%sEnvelope:%s %s%s%s\n", c.title, c.end, c.err, err, c.end)
		return nil
	}
	fmt.Fprintf(w, "%sFee:%s %s SOL\n", c.title, c.end, transaction.FormatFee(tx.EstimateFee()))

	if err := tx.Verify(); nil != err {
		fmt.Fprintf(w, "%sVerify:%s %s%s%s\n", c.title, c.end, c.err, err, c.end)
	} else {
		fmt.Fprintf(w, "%sVerify:%s ok\n", c.title, c.end)
	}
	return nil
}

func dumpMessage(w io.Writer, m *message.Message, c colours) {
	fmt.Fprintf(w, "%sVersion:%s %s\n", c.key, c.end, m.Version)
	fmt.Fprintf(w, "%sHeader:%s signed: %d  readonly signed: %d  readonly unsigned: %d\n",
		c.key, c.end,
		m.Header.NumRequireSignatures,
		m.Header.NumReadonlySignedAccounts,
		m.Header.NumReadonlyUnsignedAccounts,
	)

	fmt.Fprintf(w, "%sAccounts:%s %d\n", c.key, c.end, len(m.Accounts))
	for i, a := range m.Accounts {
		flag := " "
		if m.IsSigner(i) {
			flag = "s"
		}
		fmt.Fprintf(w, "%4d: %s %s%s%s\n", i, flag, c.value, a, c.end)
	}
	fmt.Fprintf(w, "%sBlockhash:%s %s\n", c.key, c.end, m.RecentBlockhash)

	fmt.Fprintf(w, "%sInstructions:%s %d\n", c.key, c.end, len(m.Instructions))
	for i, instruction := range m.Instructions {
		program, _ := m.ProgramID(instruction)
		fmt.Fprintf(w, "%4d: program: %s%s%s  accounts: %v\n", i, c.value, program, c.end, instruction.Accounts)
		fmt.Fprintf(w, "      data: %x\n", instruction.Data)

		if program != account.ComputeBudgetProgramID {
			continue
		}
		d, err := computebudget.Parse(instruction.Data)
		if nil != err {
			fmt.Fprintf(w, "      %s%s%s\n", c.err, err, c.end)
			continue
		}
		fmt.Fprintf(w, "      %s\n", describeDirective(d))
	}

	if message.V0 != m.Version {
		return
	}
	fmt.Fprintf(w, "%sLookup Tables:%s %d\n", c.key, c.end, len(m.AddressLookupTables))
	for i, table := range m.AddressLookupTables {
		fmt.Fprintf(w, "%4d: %s%s%s  writable: %v  readonly: %v\n", i, c.value, table.AccountKey, c.end, table.WritableIndexes, table.ReadonlyIndexes)
	}
}

func describeDirective(d *computebudget.Directive) string {
	switch d.Tag {
	case computebudget.RequestUnitsDeprecated:
		return fmt.Sprintf("%s: units: %d  additional fee: %d", d.Tag, d.Units, d.AdditionalFee)
	case computebudget.SetComputeUnitLimit:
		return fmt.Sprintf("%s: units: %d", d.Tag, d.Units)
	case computebudget.SetComputeUnitPrice:
		return fmt.Sprintf("%s: micro lamports: %d", d.Tag, d.MicroLamports)
	default:
		return fmt.Sprintf("%s: bytes: %d", d.Tag, d.Bytes)
	}
}

// dump hex data
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 16
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j >= len(data) {
				break ascii_loop
			}
			b := data[i+j]
			if b < 32 || b >= 127 {
				b = '.'
			}
			fmt.Fprintf(w, "%c", b)
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
)

// Version - message format
type Version int

// supported versions
const (
	Legacy Version = iota
	V0
)

// high bit of the first byte marks a versioned message
const versionPrefix = 0x80

// Header - signer and read-only counts
type Header struct {
	NumRequireSignatures        uint8 `json:"numRequireSignatures"`
	NumReadonlySignedAccounts   uint8 `json:"numReadonlySignedAccounts"`
	NumReadonlyUnsignedAccounts uint8 `json:"numReadonlyUnsignedAccounts"`
}

// Instruction - a compiled instruction
//
// ProgramIDIndex and Accounts index the message's account list
type Instruction struct {
	ProgramIDIndex int    `json:"programIdIndex"`
	Accounts       []int  `json:"accounts"`
	Data           []byte `json:"data"`
}

// AddressLookupTable - accounts loaded from an on-chain table (v0 only)
type AddressLookupTable struct {
	AccountKey      account.PublicKey `json:"accountKey"`
	WritableIndexes []byte            `json:"writableIndexes"`
	ReadonlyIndexes []byte            `json:"readonlyIndexes"`
}

// Message - the transaction body covered by the signatures
type Message struct {
	Version             Version              `json:"version"`
	Header              Header               `json:"header"`
	Accounts            []account.PublicKey  `json:"accounts"`
	RecentBlockhash     account.PublicKey    `json:"recentBlockhash"`
	Instructions        []Instruction        `json:"instructions"`
	AddressLookupTables []AddressLookupTable `json:"addressTableLookups,omitempty"`
}

// String - version text
func (v Version) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case V0:
		return "0"
	default:
		return "unknown"
	}
}

// MarshalText - version in JSON
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// RequiredSigners - the accounts whose signatures must be present, in slot order
func (m *Message) RequiredSigners() []account.PublicKey {
	n := int(m.Header.NumRequireSignatures)
	if n > len(m.Accounts) {
		n = len(m.Accounts)
	}
	return m.Accounts[:n]
}

// IsSigner - whether the account at index must sign
func (m *Message) IsSigner(index int) bool {
	return index >= 0 && index < int(m.Header.NumRequireSignatures) && index < len(m.Accounts)
}

// ProgramID - resolve the program account of an instruction
func (m *Message) ProgramID(instruction Instruction) (account.PublicKey, error) {
	if instruction.ProgramIDIndex < 0 || instruction.ProgramIDIndex >= len(m.Accounts) {
		return account.PublicKey{}, fault.ErrInvalidProgramIndex
	}
	return m.Accounts[instruction.ProgramIDIndex], nil
}

// InstructionData - data payloads of all instructions addressed to program
func (m *Message) InstructionData(program account.PublicKey) [][]byte {
	data := make([][]byte, 0, len(m.Instructions))
	for _, instruction := range m.Instructions {
		id, err := m.ProgramID(instruction)
		if nil != err || id != program {
			continue
		}
		data = append(data, instruction.Data)
	}
	return data
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// Serialize - pack the message into its canonical bytes
//
// these are the bytes that every signature covers
func (m *Message) Serialize() ([]byte, error) {

	if Legacy == m.Version && 0 != len(m.AddressLookupTables) {
		return nil, fault.ErrLegacyLookupTables
	}

	buffer := make([]byte, 0, 3+(len(m.Accounts)+1)*32+64*len(m.Instructions))

	switch m.Version {
	case Legacy:
	case V0:
		buffer = append(buffer, versionPrefix|byte(m.Version-V0))
	default:
		return nil, fault.ErrUnsupportedMessageVersion
	}

	buffer = append(buffer,
		m.Header.NumRequireSignatures,
		m.Header.NumReadonlySignedAccounts,
		m.Header.NumReadonlyUnsignedAccounts,
	)

	buffer = append(buffer, util.EncodeLength(uint64(len(m.Accounts)))...)
	for _, a := range m.Accounts {
		buffer = append(buffer, a[:]...)
	}

	buffer = append(buffer, m.RecentBlockhash[:]...)

	buffer = append(buffer, util.EncodeLength(uint64(len(m.Instructions)))...)
	for _, instruction := range m.Instructions {
		if !isByteIndex(instruction.ProgramIDIndex) {
			return nil, fault.ErrIndexOutOfRange
		}
		buffer = append(buffer, byte(instruction.ProgramIDIndex))

		buffer = append(buffer, util.EncodeLength(uint64(len(instruction.Accounts)))...)
		for _, index := range instruction.Accounts {
			if !isByteIndex(index) {
				return nil, fault.ErrIndexOutOfRange
			}
			buffer = append(buffer, byte(index))
		}

		buffer = appendBytes(buffer, instruction.Data)
	}

	if V0 == m.Version {
		buffer = append(buffer, util.EncodeLength(uint64(len(m.AddressLookupTables)))...)
		for _, table := range m.AddressLookupTables {
			buffer = append(buffer, table.AccountKey[:]...)
			buffer = appendBytes(buffer, table.WritableIndexes)
			buffer = appendBytes(buffer, table.ReadonlyIndexes)
		}
	}

	return buffer, nil
}

// append a field prefixed by its compact length
func appendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, util.EncodeLength(uint64(len(data)))...)
	return append(buffer, data...)
}

func isByteIndex(index int) bool {
	return index >= 0 && index <= 0xff
}

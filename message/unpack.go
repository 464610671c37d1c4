// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package message

import (
	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// Deserialize - unpack a message
//
// the whole buffer must be consumed
func Deserialize(buffer []byte) (*Message, error) {

	u := &unpacker{buffer: buffer}
	m := &Message{
		Version: Legacy,
	}

	if 0 == len(buffer) {
		return nil, fault.ErrTruncatedMessage
	}
	if 0 != buffer[0]&versionPrefix {
		if 0 != buffer[0]&^versionPrefix {
			return nil, fault.ErrUnsupportedMessageVersion
		}
		m.Version = V0
		u.buffer = buffer[1:]
	}

	header, err := u.next(3)
	if nil != err {
		return nil, err
	}
	m.Header = Header{
		NumRequireSignatures:        header[0],
		NumReadonlySignedAccounts:   header[1],
		NumReadonlyUnsignedAccounts: header[2],
	}

	n, err := u.count(account.PublicKeySize)
	if nil != err {
		return nil, err
	}
	m.Accounts = make([]account.PublicKey, n)
	for i := range m.Accounts {
		b, _ := u.next(account.PublicKeySize)
		copy(m.Accounts[i][:], b)
	}

	h := m.Header
	if int(h.NumRequireSignatures) > len(m.Accounts) ||
		h.NumReadonlySignedAccounts > h.NumRequireSignatures ||
		int(h.NumReadonlyUnsignedAccounts) > len(m.Accounts)-int(h.NumRequireSignatures) {
		return nil, fault.ErrInvalidHeader
	}

	b, err := u.next(account.PublicKeySize)
	if nil != err {
		return nil, err
	}
	copy(m.RecentBlockhash[:], b)

	// each instruction is at least 3 bytes
	n, err = u.count(3)
	if nil != err {
		return nil, err
	}
	m.Instructions = make([]Instruction, n)
	for i := range m.Instructions {
		instruction := &m.Instructions[i]

		b, err := u.next(1)
		if nil != err {
			return nil, err
		}
		instruction.ProgramIDIndex = int(b[0])
		if instruction.ProgramIDIndex >= len(m.Accounts) {
			return nil, fault.ErrInvalidProgramIndex
		}

		indexes, err := u.bytes()
		if nil != err {
			return nil, err
		}
		instruction.Accounts = make([]int, len(indexes))
		for j, index := range indexes {
			instruction.Accounts[j] = int(index)
		}

		instruction.Data, err = u.bytes()
		if nil != err {
			return nil, err
		}
	}

	if V0 == m.Version {
		// key plus two empty index lists
		n, err := u.count(account.PublicKeySize + 2)
		if nil != err {
			return nil, err
		}
		if 0 != n {
			m.AddressLookupTables = make([]AddressLookupTable, n)
		}
		for i := range m.AddressLookupTables {
			table := &m.AddressLookupTables[i]
			b, err := u.next(account.PublicKeySize)
			if nil != err {
				return nil, err
			}
			copy(table.AccountKey[:], b)
			if table.WritableIndexes, err = u.bytes(); nil != err {
				return nil, err
			}
			if table.ReadonlyIndexes, err = u.bytes(); nil != err {
				return nil, err
			}
		}
	}

	if 0 != len(u.buffer) {
		return nil, fault.ErrTrailingMessageData
	}
	return m, nil
}

// consumes a buffer from the front
type unpacker struct {
	buffer []byte
}

// take exactly n bytes
func (u *unpacker) next(n int) ([]byte, error) {
	if n > len(u.buffer) {
		return nil, fault.ErrTruncatedMessage
	}
	b := u.buffer[:n]
	u.buffer = u.buffer[n:]
	return b, nil
}

// read a compact length count of items each at least itemSize bytes
//
// rejects counts that cannot fit in the remaining buffer before
// anything is allocated
func (u *unpacker) count(itemSize int) (int, error) {
	d, err := util.DecodeLength(u.buffer)
	if nil != err {
		return 0, err
	}
	if d.Length > uint64(len(d.Bytes)/itemSize) {
		return 0, fault.ErrTruncatedMessage
	}
	u.buffer = d.Bytes
	return int(d.Length), nil
}

// a compact length prefixed byte field, copied out of the buffer
func (u *unpacker) bytes() ([]byte, error) {
	n, err := u.count(1)
	if nil != err {
		return nil, err
	}
	b, _ := u.next(n)
	return append([]byte{}, b...), nil
}

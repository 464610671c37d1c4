// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/message"
)

// Signer - produces a 64 byte signature over data
//
// keypair.KeyPair satisfies this
type Signer interface {
	Sign(data []byte) []byte
}

// VersionedTransaction - a message plus one signature slot per required signer
//
// Sign and AddSignature modify Signatures, callers must serialise
// those calls when several signers share one transaction
type VersionedTransaction struct {
	Message    *message.Message `json:"message"`
	Signatures []string         `json:"signatures"`
}

// New - an unsigned transaction for a message
func New(m *message.Message) *VersionedTransaction {
	return &VersionedTransaction{
		Message:    m,
		Signatures: []string{},
	}
}

// ID - the first signature identifies the transaction
func (tx *VersionedTransaction) ID() (string, error) {
	if 0 == len(tx.Signatures) || "" == tx.Signatures[0] {
		return "", fault.ErrMissingSignature
	}
	return tx.Signatures[0], nil
}

// IsSigned - every slot holds a signature
func (tx *VersionedTransaction) IsSigned() bool {
	if 0 == len(tx.Signatures) || len(tx.Signatures) != int(tx.Message.Header.NumRequireSignatures) {
		return false
	}
	for _, s := range tx.Signatures {
		if "" == s {
			return false
		}
	}
	return true
}

// a slot list is either empty or holds one entry per required signer
//
// any other length is rejected rather than resized so no stored
// signature is ever discarded
func (tx *VersionedTransaction) checkSlots() error {
	n := len(tx.Signatures)
	if 0 != n && int(tx.Message.Header.NumRequireSignatures) != n {
		return fault.ErrSignatureCountMismatch
	}
	return nil
}

// size an empty slot list to the required signer count
func (tx *VersionedTransaction) ensureSlots() {
	if 0 == len(tx.Signatures) {
		tx.Signatures = make([]string, tx.Message.Header.NumRequireSignatures)
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// Sign - sign the message and store the signature in the slot of the
// required signer whose key verifies it
//
// the order of calls for different signers does not matter.  Returns
// fault.ErrNotARequiredSigner, leaving the signatures unchanged, if no
// required signer matches.
func (tx *VersionedTransaction) Sign(signer Signer) error {
	data, err := tx.Message.Serialize()
	if nil != err {
		return err
	}

	if err := tx.checkSlots(); nil != err {
		return err
	}

	signature := signer.Sign(data)

	for i, publicKey := range tx.Message.RequiredSigners() {
		if !publicKey.Verify(signature, data) {
			continue
		}
		tx.ensureSlots()
		tx.Signatures[i] = util.ToBase58(signature)
		debugf("signed slot: %d  account: %s", i, publicKey)
		return nil
	}

	warnf("signature: %x matches no required signer", signature)
	return fault.ErrNotARequiredSigner
}

// AddSignature - store a signature produced elsewhere for publicKey
func (tx *VersionedTransaction) AddSignature(publicKey account.PublicKey, signature []byte) error {
	data, err := tx.Message.Serialize()
	if nil != err {
		return err
	}

	if err := tx.checkSlots(); nil != err {
		return err
	}

	for i, signer := range tx.Message.RequiredSigners() {
		if signer != publicKey {
			continue
		}
		if !publicKey.Verify(signature, data) {
			return fault.ErrInvalidSignature
		}
		tx.ensureSlots()
		tx.Signatures[i] = util.ToBase58(signature)
		debugf("added slot: %d  account: %s", i, publicKey)
		return nil
	}
	return fault.ErrNotARequiredSigner
}

// Verify - check every signature against its required signer
func (tx *VersionedTransaction) Verify() error {
	signers := tx.Message.RequiredSigners()
	if 0 == len(tx.Signatures) || len(signers) != len(tx.Signatures) {
		return fault.ErrSignatureCountMismatch
	}

	data, err := tx.Message.Serialize()
	if nil != err {
		return err
	}

	for i, s := range tx.Signatures {
		if "" == s {
			return fault.ErrMissingSignature
		}
		signature, err := account.SignatureFromBase58(s)
		if nil != err {
			return err
		}
		if !signers[i].Verify(signature[:], data) {
			return fault.ErrInvalidSignature
		}
	}
	return nil
}

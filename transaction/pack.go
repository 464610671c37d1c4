// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/base64"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// Serialize - pack the transaction for broadcast
//
// Pack compact length(signature count) followed by each raw signature
// and then the message bytes
func (tx *VersionedTransaction) Serialize() ([]byte, error) {
	n := len(tx.Signatures)
	if 0 == n || int(tx.Message.Header.NumRequireSignatures) != n {
		return nil, fault.ErrSignatureCountMismatch
	}

	messageData, err := tx.Message.Serialize()
	if nil != err {
		return nil, err
	}

	buffer := make([]byte, 0, util.MaximumLengthBytes+n*account.SignatureSize+len(messageData))
	buffer = append(buffer, util.EncodeLength(uint64(n))...)
	for _, s := range tx.Signatures {
		if "" == s {
			return nil, fault.ErrMissingSignature
		}
		signature, err := account.SignatureFromBase58(s)
		if nil != err {
			return nil, err
		}
		buffer = append(buffer, signature[:]...)
	}
	return append(buffer, messageData...), nil
}

// SerializeBase64 - packed transaction as standard Base64
func (tx *VersionedTransaction) SerializeBase64() (string, error) {
	packed, err := tx.Serialize()
	if nil != err {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(packed), nil
}

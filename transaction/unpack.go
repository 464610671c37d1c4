// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/base64"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/message"
	"github.com/bitmark-inc/soltx/util"
)

// From - unpack a Base64 encoded transaction
func From(encoded string) (*VersionedTransaction, error) {
	packed, err := base64.StdEncoding.DecodeString(encoded)
	if nil != err {
		return nil, fault.ErrInvalidBase64
	}
	return FromBytes(packed)
}

// FromBytes - unpack a transaction
//
// signatures are not verified.  A zero signature count is accepted
// for any message, otherwise the count must equal the message's
// required signature count.
func FromBytes(packed []byte) (*VersionedTransaction, error) {
	d, err := util.DecodeLength(packed)
	if nil != err {
		return nil, err
	}

	buffer := d.Bytes
	if d.Length > uint64(len(buffer)/account.SignatureSize) {
		return nil, fault.ErrTruncatedSignatureData
	}

	count := int(d.Length)
	signatures := make([]string, count)
	for i := 0; i < count; i += 1 {
		signatures[i] = util.ToBase58(buffer[:account.SignatureSize])
		buffer = buffer[account.SignatureSize:]
	}

	m, err := message.Deserialize(buffer)
	if nil != err {
		return nil, err
	}

	if count > 0 && int(m.Header.NumRequireSignatures) != count {
		return nil, fault.ErrSignatureCountMismatch
	}

	debugf("unpacked: %d signatures  version: %s", count, m.Version)

	return &VersionedTransaction{
		Message:    m,
		Signatures: signatures,
	}, nil
}

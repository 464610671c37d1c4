// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// SignatureSize - bytes in a signature
const SignatureSize = ed25519.SignatureSize

// Signature - the type for a signature
type Signature [SignatureSize]byte

// SignatureFromBase58 - decode Base58 text that must hold exactly one signature
func SignatureFromBase58(s string) (Signature, error) {
	return SignatureFromBytes(util.FromBase58(s))
}

// SignatureFromBytes - copy a raw signature
func SignatureFromBytes(b []byte) (Signature, error) {
	var signature Signature
	if SignatureSize != len(b) {
		return signature, fault.ErrInvalidSignatureLength
	}
	copy(signature[:], b)
	return signature, nil
}

// Bytes - signature as a byte slice
func (signature Signature) Bytes() []byte {
	return signature[:]
}

// String - convert a binary signature to Base58 for use by the fmt package (for %s)
func (signature Signature) String() string {
	return util.ToBase58(signature[:])
}

// GoString - for use by the fmt package (for %#v)
func (signature Signature) GoString() string {
	return "<signature:" + signature.String() + ">"
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(signature.String()), nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := SignatureFromBase58(string(s))
	if nil != err {
		return err
	}
	*signature = sig
	return nil
}

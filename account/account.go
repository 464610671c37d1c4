// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// PublicKeySize - bytes in an account public key
const PublicKeySize = ed25519.PublicKeySize

// PublicKey - an account identifier
type PublicKey [PublicKeySize]byte

// well known program accounts
var (
	SystemProgramID        = MustPublicKeyFromBase58("11111111111111111111111111111111")
	ComputeBudgetProgramID = MustPublicKeyFromBase58("ComputeBudget111111111111111111111111111111")
)

// PublicKeyFromBase58 - convert Base58 text to a public key
func PublicKeyFromBase58(s string) (PublicKey, error) {
	b := util.FromBase58(s)
	if nil == b {
		return PublicKey{}, fault.ErrInvalidPublicKey
	}
	return PublicKeyFromBytes(b)
}

// MustPublicKeyFromBase58 - for constants, panics on invalid text
func MustPublicKeyFromBase58(s string) PublicKey {
	publicKey, err := PublicKeyFromBase58(s)
	if nil != err {
		panic("invalid public key: " + s)
	}
	return publicKey
}

// PublicKeyFromBytes - copy a byte slice into a public key
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	var publicKey PublicKey
	if PublicKeySize != len(b) {
		return publicKey, fault.ErrInvalidPublicKeyLength
	}
	copy(publicKey[:], b)
	return publicKey, nil
}

// Bytes - public key as a byte slice
func (publicKey PublicKey) Bytes() []byte {
	return publicKey[:]
}

// Equal - compare with a raw public key
func (publicKey PublicKey) Equal(b []byte) bool {
	return bytes.Equal(publicKey[:], b)
}

// IsZero - true for the all zero key
func (publicKey PublicKey) IsZero() bool {
	return publicKey == PublicKey{}
}

// Verify - check an ed25519 signature over message
func (publicKey PublicKey) Verify(signature []byte, message []byte) bool {
	if ed25519.SignatureSize != len(signature) {
		return false
	}
	return ed25519.Verify(publicKey[:], message, signature)
}

// String - Base58 text for use by the fmt package (for %s)
func (publicKey PublicKey) String() string {
	return util.ToBase58(publicKey[:])
}

// GoString - for use by the fmt package (for %#v)
func (publicKey PublicKey) GoString() string {
	return "<account:" + publicKey.String() + ">"
}

// MarshalText - convert a public key to its Base58 JSON form
func (publicKey PublicKey) MarshalText() ([]byte, error) {
	return []byte(publicKey.String()), nil
}

// UnmarshalText - convert Base58 JSON form to a public key
func (publicKey *PublicKey) UnmarshalText(s []byte) error {
	pk, err := PublicKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*publicKey = pk
	return nil
}

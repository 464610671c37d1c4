// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"io/ioutil"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/util"
)

// KeyPair - structure to hold public and private keys
type KeyPair struct {
	PublicKey  account.PublicKey
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of keys
type RawKeyPair struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// New - create a key pair from secure random data
func New() (*KeyPair, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return fromPrivateKey(privateKey), nil
}

// FromSeed - derive a key pair from a 32 byte seed
func FromSeed(seed []byte) (*KeyPair, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidSeedLength
	}
	return fromPrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// FromSecretKey - 64 bytes: seed followed by public key
//
// the public half must match the key derived from the seed
func FromSecretKey(secretKey []byte) (*KeyPair, error) {
	if ed25519.PrivateKeySize != len(secretKey) {
		return nil, fault.ErrInvalidPrivateKeyLength
	}
	keyPair, err := FromSeed(secretKey[:ed25519.SeedSize])
	if nil != err {
		return nil, err
	}
	if !bytes.Equal(keyPair.PublicKey[:], secretKey[ed25519.SeedSize:]) {
		return nil, fault.ErrPublicKeyMismatch
	}
	return keyPair, nil
}

// FromBase58 - decode a Base58 secret key
func FromBase58(secretKey string) (*KeyPair, error) {
	b := util.FromBase58(secretKey)
	if nil == b {
		return nil, fault.ErrInvalidPrivateKeyLength
	}
	return FromSecretKey(b)
}

// FromKeygenFile - read a key file holding a JSON array of the 64 secret key bytes
func FromKeygenFile(fileName string) (*KeyPair, error) {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	var values []int
	if err := json.Unmarshal(data, &values); nil != err {
		return nil, err
	}

	secretKey := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return nil, fault.ErrInvalidPrivateKeyLength
		}
		secretKey[i] = byte(v)
	}
	return FromSecretKey(secretKey)
}

// WriteKeygenFile - save the secret key as a JSON byte array
func (keyPair *KeyPair) WriteKeygenFile(fileName string) error {
	values := make([]int, len(keyPair.PrivateKey))
	for i, b := range keyPair.PrivateKey {
		values[i] = int(b)
	}
	data, err := json.Marshal(values)
	if nil != err {
		return err
	}
	return ioutil.WriteFile(fileName, data, 0600)
}

// Sign - sign data with the private key
func (keyPair *KeyPair) Sign(data []byte) []byte {
	return ed25519.Sign(keyPair.PrivateKey, data)
}

// Verify - check a signature with the public key
func (keyPair *KeyPair) Verify(signature []byte, data []byte) bool {
	return keyPair.PublicKey.Verify(signature, data)
}

// Base58 - secret key as Base58 text
func (keyPair *KeyPair) Base58() string {
	return util.ToBase58(keyPair.PrivateKey)
}

// Raw - text form of both keys
func (keyPair *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		PublicKey:  keyPair.PublicKey.String(),
		PrivateKey: keyPair.Base58(),
	}
}

func fromPrivateKey(privateKey ed25519.PrivateKey) *KeyPair {
	keyPair := &KeyPair{
		PrivateKey: privateKey,
	}
	copy(keyPair.PublicKey[:], privateKey[ed25519.SeedSize:])
	return keyPair
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/keypair"
)

func TestNew(t *testing.T) {
	keyPair, err := keypair.New()
	require.Nil(t, err, "new")

	data := []byte("some data")
	signature := keyPair.Sign(data)
	assert.Equal(t, 64, len(signature), "signature length")
	assert.True(t, keyPair.Verify(signature, data), "verify")

	other, err := keypair.New()
	require.Nil(t, err, "second key")
	assert.NotEqual(t, keyPair.PublicKey, other.PublicKey, "distinct keys")
	assert.False(t, other.Verify(signature, data), "verify with other key")
}

func TestFromSeed(t *testing.T) {
	seed := bytes.Repeat([]byte{0x01}, 32)

	k1, err := keypair.FromSeed(seed)
	require.Nil(t, err, "first")
	k2, err := keypair.FromSeed(seed)
	require.Nil(t, err, "second")
	assert.Equal(t, k1.PublicKey, k2.PublicKey, "deterministic")

	_, err = keypair.FromSeed(seed[:31])
	assert.Equal(t, fault.ErrInvalidSeedLength, err, "short seed")
}

func TestFromBase58(t *testing.T) {
	keyPair, err := keypair.FromSeed(bytes.Repeat([]byte{0x02}, 32))
	require.Nil(t, err, "seed")

	decoded, err := keypair.FromBase58(keyPair.Base58())
	require.Nil(t, err, "decode")
	assert.Equal(t, keyPair.PublicKey, decoded.PublicKey, "public key")
	assert.Equal(t, keyPair.PrivateKey, decoded.PrivateKey, "private key")

	raw := keyPair.Raw()
	assert.Equal(t, keyPair.PublicKey.String(), raw.PublicKey, "raw public")
	assert.Equal(t, keyPair.Base58(), raw.PrivateKey, "raw private")

	_, err = keypair.FromBase58(keyPair.PublicKey.String())
	assert.Equal(t, fault.ErrInvalidPrivateKeyLength, err, "public key text")
}

func TestFromSecretKeyMismatch(t *testing.T) {
	k1, err := keypair.FromSeed(bytes.Repeat([]byte{0x03}, 32))
	require.Nil(t, err, "k1")
	k2, err := keypair.FromSeed(bytes.Repeat([]byte{0x04}, 32))
	require.Nil(t, err, "k2")

	secret := append(append([]byte{}, k1.PrivateKey[:32]...), k2.PublicKey[:]...)
	_, err = keypair.FromSecretKey(secret)
	assert.Equal(t, fault.ErrPublicKeyMismatch, err, "mismatch")
}

func TestKeygenFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "keypair")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	keyPair, err := keypair.New()
	require.Nil(t, err, "new")

	fileName := filepath.Join(dir, "id.json")
	err = keyPair.WriteKeygenFile(fileName)
	require.Nil(t, err, "write")

	loaded, err := keypair.FromKeygenFile(fileName)
	require.Nil(t, err, "read")
	assert.Equal(t, keyPair.PublicKey, loaded.PublicKey, "public key")

	bad := filepath.Join(dir, "bad.json")
	err = ioutil.WriteFile(bad, []byte("[1,2,300]"), 0600)
	require.Nil(t, err, "write bad")
	_, err = keypair.FromKeygenFile(bad)
	assert.Equal(t, fault.ErrInvalidPrivateKeyLength, err, "out of range")
}

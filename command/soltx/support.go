// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/keypair"
	"github.com/bitmark-inc/soltx/transaction"
)

// externally produced signature for one account
type externalSignature struct {
	account   account.PublicKey
	signature []byte
}

// fetch the transaction from the flag, "-" reads one line from stdin
func checkTransaction(c *cli.Context, stdin io.Reader) (*transaction.VersionedTransaction, error) {
	encoded := strings.TrimSpace(c.String("transaction"))
	if "-" == encoded {
		line, err := bufio.NewReader(stdin).ReadString('\n')
		if nil != err && io.EOF != err {
			return nil, err
		}
		encoded = strings.TrimSpace(line)
	}
	if "" == encoded {
		return nil, fmt.Errorf("transaction is required")
	}
	return transaction.From(encoded)
}

// parse ACCOUNT:SIGNATURE, both base58
func parseSignature(s string) (*externalSignature, error) {
	parts := strings.SplitN(s, ":", 2)
	if 2 != len(parts) {
		return nil, fmt.Errorf("signature: %q is not ACCOUNT:SIGNATURE", s)
	}
	publicKey, err := account.PublicKeyFromBase58(parts[0])
	if nil != err {
		return nil, err
	}
	signature, err := account.SignatureFromBase58(parts[1])
	if nil != err {
		return nil, err
	}
	return &externalSignature{
		account:   publicKey,
		signature: signature.Bytes(),
	}, nil
}

// collect signing keys from configured identities and keygen files
func signingKeys(m *metadata, identities []string, files []string) ([]*keypair.KeyPair, error) {
	keys := make([]*keypair.KeyPair, 0, len(identities)+len(files))

	for _, name := range identities {
		k, err := m.config.keyPair(name)
		if nil != err {
			return nil, fmt.Errorf("identity: %q: %s", name, err)
		}
		keys = append(keys, k)
	}

	for _, fileName := range files {
		k, err := keypair.FromKeygenFile(fileName)
		if nil != err {
			return nil, fmt.Errorf("key file: %q: %s", fileName, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// signature slots keyed by account, empty slots omitted
func slotMap(tx *transaction.VersionedTransaction) map[string]string {
	result := make(map[string]string)
	signers := tx.Message.RequiredSigners()
	for i, s := range tx.Signatures {
		if "" == s || i >= len(signers) {
			continue
		}
		result[signers[i].String()] = s
	}
	return result
}

// required signers still lacking a signature
func missingSigners(tx *transaction.VersionedTransaction) []string {
	missing := make([]string, 0)
	for i, signer := range tx.Message.RequiredSigners() {
		if i < len(tx.Signatures) && "" != tx.Signatures[i] {
			continue
		}
		missing = append(missing, signer.String())
	}
	return missing
}

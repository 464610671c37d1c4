// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"
)

type signResult struct {
	ID          string            `json:"id,omitempty"`
	Signatures  map[string]string `json:"signatures"`
	Missing     []string          `json:"missing,omitempty"`
	Transaction string            `json:"transaction,omitempty"`
}

func runSign(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	tx, err := checkTransaction(c, os.Stdin)
	if nil != err {
		return err
	}

	identities := c.StringSlice("identity")
	files := c.StringSlice("key")
	external := c.StringSlice("signature")
	if 0 == len(identities)+len(files)+len(external) {
		return fmt.Errorf("at least one identity, key or signature is required")
	}

	keys, err := signingKeys(m, identities, files)
	if nil != err {
		return err
	}

	for _, s := range external {
		e, err := parseSignature(s)
		if nil != err {
			return err
		}
		if err := tx.AddSignature(e.account, e.signature); nil != err {
			return fmt.Errorf("signature for: %s: %s", e.account, err)
		}
	}

	for _, k := range keys {
		if m.verbose {
			fmt.Fprintf(m.e, "signing with: %s\n", k.PublicKey)
		}
		if err := tx.Sign(k); nil != err {
			return fmt.Errorf("key: %s: %s", k.PublicKey, err)
		}
	}

	result := signResult{
		Signatures: slotMap(tx),
		Missing:    missingSigners(tx),
	}

	// only a fully signed transaction can be packed
	if 0 == len(result.Missing) {
		result.Transaction, err = tx.SerializeBase64()
		if nil != err {
			return err
		}
		result.ID, err = tx.ID()
		if nil != err {
			return err
		}
	}

	return printJson(m.w, result)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode a byte slice as Base58 text
func ToBase58(b []byte) string {
	return base58.Encode(b)
}

// FromBase58 - decode Base58 text
//
// returns nil if the text contains characters outside the alphabet
func FromBase58(s string) []byte {
	if "" == s {
		return nil
	}
	b, err := base58.Decode(s)
	if nil != err {
		return nil
	}
	return b
}

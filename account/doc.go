// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - public keys and signatures
//
// An account is identified by a 32 byte ed25519 public key whose text
// form is Base58.  Signatures are 64 byte ed25519 signatures, also
// exchanged as Base58 text.
package account

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transaction - the signed transaction envelope
//
// Wire format:
//
//	[compact length: N][signature 1: 64 bytes]…[signature N: 64 bytes][message]
//
// N must equal the message header's required signature count and
// signature i belongs to the i-th account of the message.  Signatures
// are held as Base58 text.
package transaction

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package message - the signed body of a transaction
//
// A message is a header giving the signer counts, the static account
// list, a recent blockhash and the compiled instructions.  Version 0
// messages are prefixed by 0x80 and end with a list of address lookup
// tables; legacy messages have no prefix and no tables.
//
// All counts are compact lengths (see util.EncodeLength).
package message

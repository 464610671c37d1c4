// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package computebudget - interpret compute budget instructions
//
// Instructions addressed to account.ComputeBudgetProgramID carry a one
// byte directive tag followed by little-endian arguments.  The unit
// limit and unit price directives together decide the priority fee
// added on top of the per-signature fee.
package computebudget

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read Lua configuration files
//
// A configuration file is a Lua chunk that returns a table, which is
// mapped onto a Go structure using "gluamapper" field tags.
package configuration

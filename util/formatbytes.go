// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"strings"
)

const bytesPerLiteralLine = 8

// FormatBytes - render data as a Go byte slice literal assigned to
// name, for pasting a captured transaction into a test
func FormatBytes(name string, data []byte) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteString(" := []byte{")
	for i, c := range data {
		if 0 == i%bytesPerLiteralLine {
			b.WriteString("\n\t")
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "0x%02x,", c)
	}
	b.WriteString("\n}")
	return b.String()
}

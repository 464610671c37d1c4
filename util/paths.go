// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"
)

// AbsolutePath - resolve fileName relative to directory unless it is
// already absolute
func AbsolutePath(directory string, fileName string) string {
	if filepath.IsAbs(fileName) {
		return filepath.Clean(fileName)
	}
	return filepath.Join(directory, fileName)
}

// FileExists - true if the name can be stat'ed
func FileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

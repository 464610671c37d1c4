// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/soltx/configuration"
	"github.com/bitmark-inc/soltx/fault"
)

type identity struct {
	Name      string `gluamapper:"name"`
	SecretKey string `gluamapper:"secret_key"`
}

type testConfiguration struct {
	Directory  string            `gluamapper:"directory"`
	Count      int               `gluamapper:"count"`
	Levels     map[string]string `gluamapper:"levels"`
	Identities []identity        `gluamapper:"identities"`
}

const testLua = `
local base = config_dir .. "/log"
return {
    directory = base,
    count = 2 * 5,
    levels = {
        DEFAULT = level,
    },
    identities = {
        { name = "payer", secret_key = "abc" },
        { name = "other", secret_key = "def" },
    },
}
`

func writeFile(t *testing.T, dir string, name string, content string) string {
	fileName := filepath.Join(dir, name)
	err := ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write: %s", name)
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeFile(t, dir, "test.conf", testLua)

	config := &testConfiguration{}
	err = configuration.ParseConfigurationFile(fileName, config, map[string]string{"level": "debug"})
	require.Nil(t, err, "parse")

	assert.Equal(t, dir+"/log", config.Directory, "directory")
	assert.Equal(t, 10, config.Count, "count")
	assert.Equal(t, map[string]string{"DEFAULT": "debug"}, config.Levels, "levels")
	assert.Equal(t, []identity{{"payer", "abc"}, {"other", "def"}}, config.Identities, "identities")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	config := &testConfiguration{}

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "missing.conf"), config, nil)
	assert.NotNil(t, err, "missing file")

	fileName := writeFile(t, dir, "syntax.conf", "return {")
	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.NotNil(t, err, "syntax error")

	fileName = writeFile(t, dir, "string.conf", `return "text"`)
	err = configuration.ParseConfigurationFile(fileName, config, nil)
	assert.Equal(t, fault.ErrInvalidConfiguration, err, "not a table")
}

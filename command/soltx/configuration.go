// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soltx/configuration"
	"github.com/bitmark-inc/soltx/fault"
	"github.com/bitmark-inc/soltx/keypair"
	"github.com/bitmark-inc/soltx/util"
)

// basic defaults (relative to the directory holding the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "soltx.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Identity - a named signing key
//
// exactly one of keygen_file or secret_key must be set
type Identity struct {
	Name       string `gluamapper:"name" json:"name"`
	KeygenFile string `gluamapper:"keygen_file" json:"keygen_file"`
	SecretKey  string `gluamapper:"secret_key" json:"-"`
}

// text shown in place of a secret key
const maskedSecret = "********"

// String - identity with any secret key masked, used by %v and %+v
func (identity Identity) String() string {
	return fmt.Sprintf("{Name:%s KeygenFile:%s SecretKey:%s}", identity.Name, identity.KeygenFile, identity.mask())
}

// GoString - identity with any secret key masked, used by %#v
func (identity Identity) GoString() string {
	return fmt.Sprintf("main.Identity{Name:%q, KeygenFile:%q, SecretKey:%q}", identity.Name, identity.KeygenFile, identity.mask())
}

func (identity Identity) mask() string {
	if "" == identity.SecretKey {
		return ""
	}
	return maskedSecret
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Logging    logger.Configuration `gluamapper:"logging" json:"logging"`
	Identities []Identity           `gluamapper:"identities" json:"identities"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}
	dataDirectory := filepath.Dir(configurationFileName)

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	variables := map[string]string{
		"version": version,
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	options.Logging.Directory = util.AbsolutePath(dataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	names := make(map[string]struct{})
	for i := range options.Identities {
		identity := &options.Identities[i]
		if "" == identity.Name {
			return nil, fmt.Errorf("identity[%d]: %s", i, fault.ErrInvalidConfiguration)
		}
		if _, ok := names[identity.Name]; ok {
			return nil, fmt.Errorf("identity: %q is duplicated", identity.Name)
		}
		names[identity.Name] = struct{}{}

		if ("" == identity.KeygenFile) == ("" == identity.SecretKey) {
			return nil, fmt.Errorf("identity: %q needs exactly one of keygen_file or secret_key", identity.Name)
		}
		if "" != identity.KeygenFile {
			identity.KeygenFile = util.AbsolutePath(dataDirectory, identity.KeygenFile)
		}
	}

	return options, nil
}

// find an identity by name and load its key pair
func (config *Configuration) keyPair(name string) (*keypair.KeyPair, error) {
	if nil == config {
		return nil, fault.ErrNotFoundIdentity
	}
	for _, identity := range config.Identities {
		if name != identity.Name {
			continue
		}
		if "" != identity.KeygenFile {
			return keypair.FromKeygenFile(identity.KeygenFile)
		}
		return keypair.FromBase58(identity.SecretKey)
	}
	return nil, fault.ErrNotFoundIdentity
}

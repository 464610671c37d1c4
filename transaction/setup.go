// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soltx/fault"
)

// logging channel, nil until Initialise
var log *logger.L

// Initialise - open the logging channel
func Initialise() error {
	if nil != log {
		return fault.ErrAlreadyInitialised
	}
	log = logger.New("transaction")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	log.Info("starting…")
	return nil
}

// Finalise - close the logging channel
func Finalise() {
	if nil != log {
		log.Info("finished")
		log.Flush()
		log = nil
	}
}

func debugf(format string, arguments ...interface{}) {
	if nil != log {
		log.Debugf(format, arguments...)
	}
}

func warnf(format string, arguments ...interface{}) {
	if nil != log {
		log.Warnf(format, arguments...)
	}
}

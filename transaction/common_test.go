// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/soltx/account"
	"github.com/bitmark-inc/soltx/computebudget"
	"github.com/bitmark-inc/soltx/keypair"
	"github.com/bitmark-inc/soltx/message"
	"github.com/bitmark-inc/soltx/transaction"
)

const (
	dir         = "testing"
	logCategory = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", logCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	_ = transaction.Initialise()
	_ = computebudget.Initialise()
}

func teardownTestLogger() {
	computebudget.Finalise()
	transaction.Finalise()
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// deterministic signers, index i uses seed byte i+1
func makeSigners(n int) []*keypair.KeyPair {
	signers := make([]*keypair.KeyPair, n)
	for i := range signers {
		k, err := keypair.FromSeed(bytes.Repeat([]byte{byte(i + 1)}, 32))
		if nil != err {
			panic(err)
		}
		signers[i] = k
	}
	return signers
}

// a message requiring every signer, calling the system program and
// carrying any extra compute budget payloads
func makeMessage(version message.Version, signers []*keypair.KeyPair, budget ...[]byte) *message.Message {
	m := &message.Message{
		Version: version,
		Header: message.Header{
			NumRequireSignatures:        uint8(len(signers)),
			NumReadonlySignedAccounts:   0,
			NumReadonlyUnsignedAccounts: 2,
		},
	}
	for _, s := range signers {
		m.Accounts = append(m.Accounts, s.PublicKey)
	}
	m.Accounts = append(m.Accounts, account.SystemProgramID, account.ComputeBudgetProgramID)
	copy(m.RecentBlockhash[:], bytes.Repeat([]byte{0xbb}, 32))

	systemIndex := len(signers)
	budgetIndex := len(signers) + 1

	for _, data := range budget {
		m.Instructions = append(m.Instructions, message.Instruction{
			ProgramIDIndex: budgetIndex,
			Accounts:       []int{},
			Data:           data,
		})
	}

	accounts := []int{}
	if len(signers) > 0 {
		accounts = append(accounts, 0)
	}
	m.Instructions = append(m.Instructions, message.Instruction{
		ProgramIDIndex: systemIndex,
		Accounts:       accounts,
		Data:           []byte{0x02, 0x00, 0x00, 0x00, 0x40, 0x42, 0x0f, 0x00, 0x00, 0x00, 0x00, 0x00},
	})
	return m
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package computebudget

import (
	"encoding/binary"

	"github.com/bitmark-inc/soltx/fault"
)

// Tag - first byte of the instruction data
type Tag uint8

// directive tags
const (
	RequestUnitsDeprecated         Tag = 0
	RequestHeapFrame               Tag = 1
	SetComputeUnitLimit            Tag = 2
	SetComputeUnitPrice            Tag = 3
	SetLoadedAccountsDataSizeLimit Tag = 4
)

// Directive - one decoded compute budget instruction
//
// only the fields relevant to Tag are set
type Directive struct {
	Tag           Tag    `json:"tag"`
	Units         uint32 `json:"units,omitempty"`
	AdditionalFee uint32 `json:"additionalFee,omitempty"`
	Bytes         uint32 `json:"bytes,omitempty"`
	MicroLamports uint64 `json:"microLamports,omitempty"`
}

// String - directive name
func (tag Tag) String() string {
	switch tag {
	case RequestUnitsDeprecated:
		return "RequestUnitsDeprecated"
	case RequestHeapFrame:
		return "RequestHeapFrame"
	case SetComputeUnitLimit:
		return "SetComputeUnitLimit"
	case SetComputeUnitPrice:
		return "SetComputeUnitPrice"
	case SetLoadedAccountsDataSizeLimit:
		return "SetLoadedAccountsDataSizeLimit"
	default:
		return "Unknown"
	}
}

// MarshalText - tag name in JSON
func (tag Tag) MarshalText() ([]byte, error) {
	return []byte(tag.String()), nil
}

// Parse - decode instruction data
//
// extra bytes after the arguments are ignored
func Parse(data []byte) (*Directive, error) {
	if 0 == len(data) {
		return nil, fault.ErrTruncatedDirective
	}

	d := &Directive{
		Tag: Tag(data[0]),
	}
	arguments := data[1:]

	switch d.Tag {
	case RequestUnitsDeprecated:
		if len(arguments) < 8 {
			return nil, fault.ErrTruncatedDirective
		}
		d.Units = binary.LittleEndian.Uint32(arguments[0:4])
		d.AdditionalFee = binary.LittleEndian.Uint32(arguments[4:8])

	case RequestHeapFrame, SetLoadedAccountsDataSizeLimit:
		if len(arguments) < 4 {
			return nil, fault.ErrTruncatedDirective
		}
		d.Bytes = binary.LittleEndian.Uint32(arguments)

	case SetComputeUnitLimit:
		if len(arguments) < 4 {
			return nil, fault.ErrTruncatedDirective
		}
		d.Units = binary.LittleEndian.Uint32(arguments)

	case SetComputeUnitPrice:
		if len(arguments) < 8 {
			return nil, fault.ErrTruncatedDirective
		}
		d.MicroLamports = binary.LittleEndian.Uint64(arguments)

	default:
		return nil, fault.ErrUnknownDirective
	}
	return d, nil
}

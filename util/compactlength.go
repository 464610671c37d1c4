// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/soltx/fault"
)

// MaximumLengthBytes - maximum possible number of bytes in a compact length
const MaximumLengthBytes = 10

// DecodedLength - result of decoding a compact length
//
// Bytes is the remainder of the input buffer after the length prefix,
// it shares storage with the input
type DecodedLength struct {
	Length uint64
	Bytes  []byte
}

// EncodeLength - convert an unsigned integer to a compact length
//
// Structure of the result
// byte 1:  ext | B06 | B05 | B04 | B03 | B02 | B01 | B00
// byte 2:  ext | B13 | B12 | B11 | B10 | B09 | B08 | B07
// ...
// byte 10:   0 |   0 |   0 |   0 |   0 |   0 |   0 | B63
//
// ext is set on every byte except the last
func EncodeLength(value uint64) []byte {
	result := make([]byte, 0, MaximumLengthBytes)
	for {
		b := byte(value & 0x7f)
		value >>= 7
		if 0 == value {
			return append(result, b)
		}
		result = append(result, b|0x80)
	}
}

// DecodeLength - read a compact length from the start of a buffer
//
// returns fault.ErrMalformedLength if the buffer ends before the
// terminating byte, if the value does not fit in 64 bits or if the
// encoding is not the shortest one (a zero terminating byte after a
// continuation byte)
func DecodeLength(buffer []byte) (DecodedLength, error) {
	length := uint64(0)
	shift := uint(0)

	for count := 0; count < len(buffer) && count < MaximumLengthBytes; count += 1 {
		currentByte := buffer[count]

		// only the lowest bit of the final group fits
		if MaximumLengthBytes-1 == count && currentByte > 0x01 {
			return DecodedLength{}, fault.ErrMalformedLength
		}

		length |= uint64(currentByte&0x7f) << shift
		if 0 == currentByte&0x80 {
			if count > 0 && 0 == currentByte {
				return DecodedLength{}, fault.ErrMalformedLength
			}
			return DecodedLength{
				Length: length,
				Bytes:  buffer[count+1:],
			}, nil
		}
		shift += 7
	}
	return DecodedLength{}, fault.ErrMalformedLength
}

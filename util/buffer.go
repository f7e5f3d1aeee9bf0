// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"
)

// Buffer - append-only accumulator for canonical record bytes
//
// all append operations return the extended buffer in the manner of
// the builtin append; the caller keeps the returned value
type Buffer []byte

// AppendByte - append a single byte
func (buffer Buffer) AppendByte(b byte) Buffer {
	return append(buffer, b)
}

// AppendBytes - append a raw byte sequence verbatim
func (buffer Buffer) AppendBytes(data []byte) Buffer {
	return append(buffer, data...)
}

// AppendZero - append a run of zero bytes
func (buffer Buffer) AppendZero(count int) Buffer {
	return append(buffer, make([]byte, count)...)
}

// AppendUint32LE - append a fixed four byte little endian value
func (buffer Buffer) AppendUint32LE(value uint32) Buffer {
	valueBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(valueBytes, value)
	return append(buffer, valueBytes...)
}

// AppendUint64LE - append a fixed eight byte little endian value
func (buffer Buffer) AppendUint64LE(value uint64) Buffer {
	valueBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(valueBytes, value)
	return append(buffer, valueBytes...)
}

// Len - current number of accumulated bytes
func (buffer Buffer) Len() int {
	return len(buffer)
}

// Bytes - snapshot the accumulated bytes
//
// returns a copy so later appends cannot alias an already
// published record
func (buffer Buffer) Bytes() []byte {
	data := make([]byte, len(buffer))
	copy(data, buffer)
	return data
}

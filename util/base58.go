// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// FromBase58 - convert a base58 string to bytes
//
// returns an empty slice if the string contains characters outside
// the base58 alphabet
func FromBase58(s string) []byte {
	result, err := base58.Decode(s)
	if nil != err {
		return []byte{}
	}
	return result
}

// ToBase58 - convert bytes to a base58 string
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

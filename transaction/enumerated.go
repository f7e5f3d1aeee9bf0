// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/DuneRoot/bpl-go/fault"
)

// TxType - type code for transactions
type TxType uint8

// enumerate the possible transaction type codes
// the code is the first byte of the canonical encoding
const (
	TransferTag             TxType = iota // move value to a recipient
	SecondSignatureTag      TxType = iota // register a second signing key
	DelegateRegistrationTag TxType = iota // register a forging delegate
	VoteTag                 TxType = iota // vote delegates in or out

	// registrations of multisignature groups are recognized by the
	// codec but no builder is provided
	MultiSignatureTag TxType = iota

	// this item must be last
	InvalidTag TxType = iota
)

// internal conversion
func toString(txType TxType) ([]byte, error) {
	switch txType {
	case TransferTag:
		return []byte("transfer"), nil
	case SecondSignatureTag:
		return []byte("second signature"), nil
	case DelegateRegistrationTag:
		return []byte("delegate registration"), nil
	case VoteTag:
		return []byte("vote"), nil
	case MultiSignatureTag:
		return []byte("multi signature"), nil
	default:
		return []byte{}, fault.ErrUnrecognizedTransactionType
	}
}

// IsValid - type code in the recognized range
func (txType TxType) IsValid() bool {
	return txType < InvalidTag
}

// String - convert a type code to its name
func (txType TxType) String() string {
	s, err := toString(txType)
	if nil != err {
		logger.Panicf("invalid transaction type enumeration: %d", txType)
	}
	return string(s)
}

// GoString - convert both enum value and name, for debugging
func (txType TxType) GoString() string {
	return fmt.Sprintf("<TxType#%d:%q>", uint8(txType), txType.String())
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"github.com/DuneRoot/bpl-go/fault"
)

// the default fee schedule in the smallest currency unit
const (
	TransferFee             uint64 = 10000000
	SecondSignatureFee      uint64 = 500000000
	DelegateRegistrationFee uint64 = 2500000000
	VoteFee                 uint64 = 100000000
	MultiSignatureFee       uint64 = 500000000
)

// Fee - the schedule fee for a transaction type
func (txType TxType) Fee() (uint64, error) {
	switch txType {
	case TransferTag:
		return TransferFee, nil
	case SecondSignatureTag:
		return SecondSignatureFee, nil
	case DelegateRegistrationTag:
		return DelegateRegistrationFee, nil
	case VoteTag:
		return VoteFee, nil
	case MultiSignatureTag:
		return MultiSignatureFee, nil
	default:
		return 0, fault.ErrUnrecognizedTransactionType
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/address"
	"github.com/DuneRoot/bpl-go/fault"
	"github.com/DuneRoot/bpl-go/slot"
)

// one shot builders for the reference transaction kinds
//
// each stamps the current slot time and the schedule fee, signs with
// the secret and optionally second signs, so the result is final and
// verifiable on return

// delegate usernames longer than this are rejected by the network
const maxUsernameLength = 20

// NewTransfer - build a signed transfer
//
// amount moves to the recipient address; vendorFieldHex is optional
// free text already hex encoded; secondSecret is empty for a singly
// signed transfer
func NewTransfer(recipientId string, amount uint64, vendorFieldHex string, secret string, secondSecret string) (*Transaction, error) {
	if "" == secret {
		return nil, fault.ErrRequiredSecret
	}
	if "" == recipientId {
		return nil, fault.ErrRequiredRecipient
	}

	// reject a damaged address before anything is signed
	_, err := address.DecodeChecked(recipientId)
	if nil != err {
		return nil, err
	}

	fee := TransferFee
	tx := &Transaction{
		Type:            TransferTag,
		Timestamp:       slot.Now(),
		SenderPublicKey: account.PrivateKeyFromSecret(secret).PublicKey().String(),
		RecipientId:     recipientId,
		VendorField:     vendorFieldHex,
		Amount:          amount,
		Fee:             &fee,
	}
	return finalize(tx, secret, secondSecret)
}

// NewSecondSignatureRegistration - build a signed registration of a
// second signing key
//
// the asset carries the public key derived from secondSecret; the
// registration itself is signed only by the primary secret because
// the registered key is not active during its own registration
func NewSecondSignatureRegistration(secondSecret string, secret string) (*Transaction, error) {
	if "" == secret || "" == secondSecret {
		return nil, fault.ErrRequiredSecret
	}

	fee := SecondSignatureFee
	tx := &Transaction{
		Type:            SecondSignatureTag,
		Timestamp:       slot.Now(),
		SenderPublicKey: account.PrivateKeyFromSecret(secret).PublicKey().String(),
		Fee:             &fee,
		Asset: &SecondSignatureAsset{
			PublicKey: account.PrivateKeyFromSecret(secondSecret).PublicKey().String(),
		},
	}
	return finalize(tx, secret, "")
}

// NewDelegateRegistration - build a signed delegate registration
func NewDelegateRegistration(username string, secret string, secondSecret string) (*Transaction, error) {
	if "" == secret {
		return nil, fault.ErrRequiredSecret
	}
	if "" == username {
		return nil, fault.ErrRequiredUsername
	}
	if len(username) > maxUsernameLength {
		return nil, fault.ErrUsernameTooLong
	}

	fee := DelegateRegistrationFee
	tx := &Transaction{
		Type:            DelegateRegistrationTag,
		Timestamp:       slot.Now(),
		SenderPublicKey: account.PrivateKeyFromSecret(secret).PublicKey().String(),
		Fee:             &fee,
		Asset: &DelegateAsset{
			Username: username,
		},
	}
	return finalize(tx, secret, secondSecret)
}

// NewVote - build a signed vote
//
// each entry is a delegate public key in hex prefixed with '+' to
// add the vote or '-' to remove it; the recipient is the voter's
// own address on the current chain
func NewVote(votes []string, secret string, secondSecret string) (*Transaction, error) {
	if "" == secret {
		return nil, fault.ErrRequiredSecret
	}
	if 0 == len(votes) {
		return nil, fault.ErrRequiredVote
	}
	for _, vote := range votes {
		if len(vote) < 2 || ('+' != vote[0] && '-' != vote[0]) {
			return nil, fault.ErrInvalidVote
		}
		if _, err := hex.DecodeString(vote[1:]); nil != err {
			return nil, fault.ErrInvalidVote
		}
	}

	private := account.PrivateKeyFromSecret(secret)
	publicKey := private.PublicKey()

	fee := VoteFee
	tx := &Transaction{
		Type:            VoteTag,
		Timestamp:       slot.Now(),
		SenderPublicKey: publicKey.String(),
		RecipientId:     address.FromPublicKey(publicKey),
		Fee:             &fee,
		Asset: &VoteAsset{
			Votes: votes,
		},
	}
	return finalize(tx, secret, secondSecret)
}

// sign the freshly built transaction, optionally twice
func finalize(tx *Transaction, secret string, secondSecret string) (*Transaction, error) {
	err := tx.Sign(secret)
	if nil != err {
		return nil, err
	}
	if "" != secondSecret {
		err = tx.SecondSign(secondSecret)
		if nil != err {
			return nil, err
		}
	}
	return tx, nil
}

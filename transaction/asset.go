// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"strings"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/util"
)

// Asset - kind specific payload of a transaction
//
// Pack appends the payload to the canonical encoding between the fee
// and the signatures; implementations must be total for their
// declared type and must only append, never rewrite earlier bytes
type Asset interface {
	AssetType() TxType
	Pack(buffer util.Buffer) (util.Buffer, error)
}

// SecondSignatureAsset - the second signing key being registered
type SecondSignatureAsset struct {
	PublicKey string `json:"publicKey"` // hex, compressed
}

// AssetType - the type code this payload belongs to
func (asset *SecondSignatureAsset) AssetType() TxType {
	return SecondSignatureTag
}

// Pack - append the raw bytes of the registered key
func (asset *SecondSignatureAsset) Pack(buffer util.Buffer) (util.Buffer, error) {
	publicKey, err := account.PublicKeyFromHexString(asset.PublicKey)
	if nil != err {
		return nil, err
	}
	return buffer.AppendBytes(publicKey), nil
}

// DelegateAsset - the username being claimed by a delegate
type DelegateAsset struct {
	Username string `json:"username"`
}

// AssetType - the type code this payload belongs to
func (asset *DelegateAsset) AssetType() TxType {
	return DelegateRegistrationTag
}

// Pack - append the username as UTF-8 bytes
func (asset *DelegateAsset) Pack(buffer util.Buffer) (util.Buffer, error) {
	return buffer.AppendBytes([]byte(asset.Username)), nil
}

// VoteAsset - delegate keys being voted in or out
//
// each entry is a delegate public key in hex prefixed with '+' to
// add the vote or '-' to remove it
type VoteAsset struct {
	Votes []string `json:"votes"`
}

// AssetType - the type code this payload belongs to
func (asset *VoteAsset) AssetType() TxType {
	return VoteTag
}

// Pack - append the concatenated vote entries as UTF-8 bytes
func (asset *VoteAsset) Pack(buffer util.Buffer) (util.Buffer, error) {
	return buffer.AppendBytes([]byte(strings.Join(asset.Votes, ""))), nil
}

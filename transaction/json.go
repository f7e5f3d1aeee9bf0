// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/json"

	"github.com/DuneRoot/bpl-go/fault"
)

// wire shape of the transaction projection
//
// the projection is for transport and display only: re-hashing
// always goes through the canonical byte encoding
type transactionJSON struct {
	Type               uint8           `json:"type"`
	Amount             uint64          `json:"amount"`
	Fee                *uint64         `json:"fee"`
	Asset              json.RawMessage `json:"asset"`
	Id                 string          `json:"id"`
	RecipientId        string          `json:"recipientId"`
	VendorField        string          `json:"vendorField"`
	Timestamp          uint32          `json:"timestamp"`
	SenderPublicKey    string          `json:"senderPublicKey"`
	RequesterPublicKey string          `json:"requesterPublicKey,omitempty"`
	Signature          string          `json:"signature"`
	SecondSignature    string          `json:"secondSignature"`
}

// wire nesting of the second signature payload
type signatureEnvelopeJSON struct {
	Signature registeredKeyJSON `json:"signature"`
}

type registeredKeyJSON struct {
	PublicKey string `json:"publicKey"`
}

// wire nesting of the delegate payload
type delegateEnvelopeJSON struct {
	Delegate delegateNameJSON `json:"delegate"`
}

type delegateNameJSON struct {
	Username string `json:"username"`
}

// MarshalJSON - the transport projection of a transaction
//
// includes the derived id, so a transaction that cannot be encoded
// cannot be projected either
func (tx Transaction) MarshalJSON() ([]byte, error) {
	id, err := tx.Id()
	if nil != err {
		return nil, err
	}

	asset := json.RawMessage("{}")
	if nil != tx.Asset {
		asset, err = json.Marshal(tx.Asset)
		if nil != err {
			return nil, err
		}
	}

	return json.Marshal(transactionJSON{
		Type:               uint8(tx.Type),
		Amount:             tx.Amount,
		Fee:                tx.Fee,
		Asset:              asset,
		Id:                 id,
		RecipientId:        tx.RecipientId,
		VendorField:        tx.VendorField,
		Timestamp:          tx.Timestamp,
		SenderPublicKey:    tx.SenderPublicKey,
		RequesterPublicKey: tx.RequesterPublicKey,
		Signature:          tx.Signature,
		SecondSignature:    tx.SecondSignature,
	})
}

// UnmarshalJSON - rebuild a transaction from its projection
//
// the stored id is ignored since the id is always recomputed from
// the canonical bytes; the asset is decoded according to the type
// tag
func (tx *Transaction) UnmarshalJSON(data []byte) error {
	record := transactionJSON{}
	err := json.Unmarshal(data, &record)
	if nil != err {
		return err
	}

	txType := TxType(record.Type)
	if !txType.IsValid() {
		return fault.ErrUnrecognizedTransactionType
	}

	asset, err := unmarshalAsset(txType, record.Asset)
	if nil != err {
		return err
	}

	tx.Type = txType
	tx.Timestamp = record.Timestamp
	tx.SenderPublicKey = record.SenderPublicKey
	tx.RequesterPublicKey = record.RequesterPublicKey
	tx.RecipientId = record.RecipientId
	tx.VendorField = record.VendorField
	tx.Amount = record.Amount
	tx.Fee = record.Fee
	tx.Asset = asset
	tx.Signature = record.Signature
	tx.SecondSignature = record.SecondSignature
	return nil
}

// decode the kind specific payload by type tag
func unmarshalAsset(txType TxType, data json.RawMessage) (Asset, error) {
	if 0 == len(data) || "null" == string(data) || "{}" == string(data) {
		return nil, nil
	}

	switch txType {
	case SecondSignatureTag:
		asset := &SecondSignatureAsset{}
		if err := json.Unmarshal(data, asset); nil != err {
			return nil, fault.ErrCannotDecodeTransaction
		}
		return asset, nil

	case DelegateRegistrationTag:
		asset := &DelegateAsset{}
		if err := json.Unmarshal(data, asset); nil != err {
			return nil, fault.ErrCannotDecodeTransaction
		}
		return asset, nil

	case VoteTag:
		asset := &VoteAsset{}
		if err := json.Unmarshal(data, asset); nil != err {
			return nil, fault.ErrCannotDecodeTransaction
		}
		return asset, nil

	default:
		// transfers and multisignature registrations carry no
		// decodable payload
		return nil, fault.ErrCannotDecodeTransaction
	}
}

// MarshalJSON - nest the registered key the way the wire format does
func (asset SecondSignatureAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal(signatureEnvelopeJSON{
		Signature: registeredKeyJSON{
			PublicKey: asset.PublicKey,
		},
	})
}

// UnmarshalJSON - unwrap the registered key
func (asset *SecondSignatureAsset) UnmarshalJSON(data []byte) error {
	envelope := signatureEnvelopeJSON{}
	err := json.Unmarshal(data, &envelope)
	if nil != err {
		return err
	}
	asset.PublicKey = envelope.Signature.PublicKey
	return nil
}

// MarshalJSON - nest the username the way the wire format does
func (asset DelegateAsset) MarshalJSON() ([]byte, error) {
	return json.Marshal(delegateEnvelopeJSON{
		Delegate: delegateNameJSON{
			Username: asset.Username,
		},
	})
}

// UnmarshalJSON - unwrap the username
func (asset *DelegateAsset) UnmarshalJSON(data []byte) error {
	envelope := delegateEnvelopeJSON{}
	err := json.Unmarshal(data, &envelope)
	if nil != err {
		return err
	}
	asset.Username = envelope.Delegate.Username
	return nil
}

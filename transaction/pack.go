// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"bytes"
	"encoding/hex"

	"github.com/DuneRoot/bpl-go/account"
	"github.com/DuneRoot/bpl-go/address"
	"github.com/DuneRoot/bpl-go/fault"
	"github.com/DuneRoot/bpl-go/util"
)

// Pack - the canonical byte encoding
//
// the two switches select the optional trailing signature sections:
// a requested first signature must already be present, while a
// requested second signature is simply omitted when the transaction
// terminated singly signed
//
// any failure aborts the encoding and returns no bytes
func (tx *Transaction) Pack(includeSignature bool, includeSecondSignature bool) (Packed, error) {
	if !tx.Type.IsValid() {
		return nil, fault.ErrUnrecognizedTransactionType
	}
	if nil == tx.Fee {
		return nil, fault.ErrMissingFee
	}

	buffer := util.Buffer{}
	buffer = buffer.AppendByte(byte(tx.Type))
	buffer = buffer.AppendUint32LE(tx.Timestamp)

	buffer, err := appendPublicKey(buffer, tx.SenderPublicKey)
	if nil != err {
		return nil, err
	}

	if "" != tx.RequesterPublicKey {
		buffer, err = appendPublicKey(buffer, tx.RequesterPublicKey)
		if nil != err {
			return nil, err
		}
	}

	buffer, err = appendRecipient(buffer, tx.RecipientId)
	if nil != err {
		return nil, err
	}

	buffer, err = appendVendorField(buffer, tx.VendorField)
	if nil != err {
		return nil, err
	}

	buffer = buffer.AppendUint64LE(tx.Amount)
	buffer = buffer.AppendUint64LE(*tx.Fee)

	buffer, err = appendAsset(buffer, tx.Type, tx.Asset)
	if nil != err {
		return nil, err
	}

	if includeSignature {
		if "" == tx.Signature {
			return nil, fault.ErrMissingSignature
		}
		buffer, err = appendSignature(buffer, tx.Signature)
		if nil != err {
			return nil, err
		}
	}

	if includeSecondSignature && "" != tx.SecondSignature {
		buffer, err = appendSignature(buffer, tx.SecondSignature)
		if nil != err {
			return nil, err
		}
	}

	return Packed(buffer.Bytes()), nil
}

// append the raw bytes of a hex encoded public key
func appendPublicKey(buffer util.Buffer, publicKeyHex string) (util.Buffer, error) {
	publicKey, err := account.PublicKeyFromHexString(publicKeyHex)
	if nil != err {
		return nil, err
	}
	return buffer.AppendBytes(publicKey), nil
}

// append the raw recipient address or its fixed zero placeholder
func appendRecipient(buffer util.Buffer, recipientId string) (util.Buffer, error) {
	if "" == recipientId {
		return buffer.AppendZero(recipientLength), nil
	}
	raw, err := address.DecodeChecked(recipientId)
	if nil != err {
		return nil, err
	}
	return buffer.AppendBytes(raw), nil
}

// append the vendor field zero padded to its fixed width
func appendVendorField(buffer util.Buffer, vendorFieldHex string) (util.Buffer, error) {
	if "" == vendorFieldHex {
		return buffer.AppendZero(vendorFieldLength), nil
	}
	vendorField, err := hex.DecodeString(vendorFieldHex)
	if nil != err {
		return nil, fault.ErrMalformedHexString
	}
	if len(vendorField) > vendorFieldLength {
		return nil, fault.ErrVendorFieldTooLong
	}
	buffer = buffer.AppendBytes(vendorField)
	return buffer.AppendZero(vendorFieldLength - len(vendorField)), nil
}

// append the kind specific payload
//
// a payload of the wrong kind is rejected, and the extension point
// may only append: damage to bytes already written is detected by
// comparing the prefix before and after
func appendAsset(buffer util.Buffer, txType TxType, asset Asset) (util.Buffer, error) {
	if nil == asset {
		return buffer, nil
	}
	if asset.AssetType() != txType {
		return nil, fault.ErrAssetTypeMismatch
	}

	prefix := buffer.Bytes()
	extended, err := asset.Pack(buffer)
	if nil != err {
		return nil, err
	}
	if extended.Len() < len(prefix) || !bytes.Equal(extended[:len(prefix)], prefix) {
		return nil, fault.ErrAssetNotAppendOnly
	}
	return extended, nil
}

// append DER signature bytes
func appendSignature(buffer util.Buffer, signatureHex string) (util.Buffer, error) {
	signature, err := hex.DecodeString(signatureHex)
	if nil != err {
		return nil, fault.ErrMalformedHexString
	}
	return buffer.AppendBytes(signature), nil
}

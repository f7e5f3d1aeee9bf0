// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError
type VerificationError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressLength               = LengthError("address length is invalid")
	ErrAlreadyInitialised          = ProcessError("already initialised")
	ErrAssetNotAppendOnly          = ProcessError("asset encoder modified earlier bytes")
	ErrAssetTypeMismatch           = InvalidError("asset type does not match transaction type")
	ErrCannotDecodeAddress         = RecordError("cannot decode address")
	ErrCannotDecodePublicKey       = VerificationError("cannot decode public key")
	ErrCannotDecodeSignature       = VerificationError("cannot decode signature")
	ErrCannotDecodeTransaction     = RecordError("cannot decode transaction")
	ErrChecksumMismatch            = InvalidError("checksum mismatch")
	ErrInvalidChain                = InvalidError("invalid chain")
	ErrInvalidLoggerChannel        = ProcessError("invalid logger channel")
	ErrInvalidVote                 = InvalidError("invalid vote")
	ErrMalformedHexString          = InvalidError("malformed hex string")
	ErrMalformedPublicKey          = InvalidError("malformed public key")
	ErrMissingFee                  = InvalidError("missing fee")
	ErrMissingSignature            = InvalidError("missing signature")
	ErrNotFoundConfigFile          = NotFoundError("config file is not found")
	ErrRequiredRecipient           = InvalidError("recipient is required")
	ErrRequiredSecret              = InvalidError("secret is required")
	ErrRequiredUsername            = InvalidError("username is required")
	ErrRequiredVote                = InvalidError("vote is required")
	ErrUnrecognizedTransactionType = InvalidError("unrecognized transaction type")
	ErrUsernameTooLong             = LengthError("username is too long")
	ErrVendorFieldTooLong          = LengthError("vendor field is too long")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecordError) Error() string       { return string(e) }
func (e VerificationError) Error() string { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool       { _, ok := e.(RecordError); return ok }
func IsErrVerification(e error) bool { _, ok := e.(VerificationError); return ok }

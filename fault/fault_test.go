// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 DuneRoot
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/DuneRoot/bpl-go/fault"
)

var (
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrInvalidTwo      = fault.InvalidError("invalid two")
	ErrLengthOne       = fault.LengthError("length one")
	ErrLengthTwo       = fault.LengthError("length two")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrNotFoundTwo     = fault.NotFoundError("not found two")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrProcessTwo      = fault.ProcessError("process two")
	ErrRecordOne       = fault.RecordError("record one")
	ErrRecordTwo       = fault.RecordError("record two")
	ErrVerificationOne = fault.VerificationError("verification one")
	ErrVerificationTwo = fault.VerificationError("verification two")
)

// test that the error classes stay distinguishable
func TestErrorClasses(t *testing.T) {
	errorList := []struct {
		err          error
		invalid      bool
		length       bool
		notFound     bool
		process      bool
		record       bool
		verification bool
	}{
		{ErrInvalidOne, true, false, false, false, false, false},
		{ErrInvalidTwo, true, false, false, false, false, false},
		{ErrLengthOne, false, true, false, false, false, false},
		{ErrLengthTwo, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, true, false, false, false},
		{ErrNotFoundTwo, false, false, true, false, false, false},
		{ErrProcessOne, false, false, false, true, false, false},
		{ErrProcessTwo, false, false, false, true, false, false},
		{ErrRecordOne, false, false, false, false, true, false},
		{ErrRecordTwo, false, false, false, false, true, false},
		{ErrVerificationOne, false, false, false, false, false, true},
		{ErrVerificationTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
		if fault.IsErrVerification(err) != e.verification {
			t.Errorf("%d: expected 'verification' == %v for err = %v", i, e.verification, err)
		}
	}
}

// the catalog entries must keep their classes: verification failures
// are handled differently from plain invalid input
func TestCatalogClasses(t *testing.T) {
	if !fault.IsErrVerification(fault.ErrCannotDecodePublicKey) {
		t.Errorf("ErrCannotDecodePublicKey lost its verification class")
	}
	if !fault.IsErrVerification(fault.ErrCannotDecodeSignature) {
		t.Errorf("ErrCannotDecodeSignature lost its verification class")
	}
	if !fault.IsErrInvalid(fault.ErrMissingFee) {
		t.Errorf("ErrMissingFee lost its invalid class")
	}
	if !fault.IsErrLength(fault.ErrVendorFieldTooLong) {
		t.Errorf("ErrVendorFieldTooLong lost its length class")
	}
}

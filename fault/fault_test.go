// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/workservice/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
	ErrStorageOne  = fault.StorageError("storage one")
	ErrStorageTwo  = fault.StorageError("storage two")
)

// test that the error classes are distinct
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		storage  bool
	}{
		{ErrExistsOne, true, false, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false},
		{ErrLengthTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrStorageOne, false, false, false, false, false, true},
		{ErrStorageTwo, false, false, false, false, false, true},
		{fault.ErrPayloadTooShort, false, false, true, false, false, false},
		{fault.ErrStorageWriteFailed, false, false, false, false, false, true},
		{fault.ErrUnknownService, false, false, false, true, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
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
		if fault.IsErrStorage(err) != e.storage {
			t.Errorf("%d: expected 'storage' == %v for err = %v", i, e.storage, err)
		}
	}
}

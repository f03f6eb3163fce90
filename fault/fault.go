// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type StorageError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrDatabaseVersion         = InvalidError("database version is not supported")
	ErrInvalidConfiguration    = InvalidError("configuration must return a table")
	ErrInvalidDigestLength     = LengthError("digest length is invalid")
	ErrInvalidHex              = InvalidError("invalid hex string")
	ErrInvalidItemCount        = InvalidError("invalid item count")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidResultCode       = InvalidError("invalid result code")
	ErrInvalidResultLength     = LengthError("result length is invalid")
	ErrInvalidServiceId        = InvalidError("invalid service id")
	ErrInvalidSlot             = InvalidError("invalid slot")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrInvalidVariable         = InvalidError("invalid variable: expected name=value")
	ErrMissingPreimage         = InvalidError("preimage is required")
	ErrPayloadTooShort         = LengthError("payload too short")
	ErrStorageNotOpen          = StorageError("storage is not open")
	ErrStorageReadOnly         = StorageError("storage is read only")
	ErrStorageWriteFailed      = StorageError("storage write failed")
	ErrUnknownService          = NotFoundError("unknown service variant")
	ErrUnsupportedAccumulation = ProcessError("service does not accept refine outputs")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e StorageError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrStorage(e error) bool  { _, ok := e.(StorageError); return ok }

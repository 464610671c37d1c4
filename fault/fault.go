// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
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

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrIndexOutOfRange           = InvalidError("index out of range")
	ErrInvalidBase64             = InvalidError("invalid base64 encoding")
	ErrInvalidConfiguration      = InvalidError("invalid configuration")
	ErrInvalidHeader             = InvalidError("invalid message header")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidProgramIndex       = InvalidError("invalid program id index")
	ErrInvalidPrivateKeyLength   = LengthError("invalid private key length")
	ErrInvalidPublicKey          = InvalidError("invalid public key")
	ErrInvalidPublicKeyLength    = LengthError("invalid public key length")
	ErrInvalidSeedLength         = LengthError("invalid seed length")
	ErrInvalidSignature          = InvalidError("invalid signature")
	ErrInvalidSignatureLength    = LengthError("invalid signature length")
	ErrLegacyLookupTables        = InvalidError("address lookup tables require a versioned message")
	ErrMalformedLength           = LengthError("malformed compact length")
	ErrMissingSignature          = InvalidError("missing signature")
	ErrNotARequiredSigner        = NotFoundError("key pair is not a required signer")
	ErrNotFoundIdentity          = NotFoundError("identity not found")
	ErrPublicKeyMismatch         = InvalidError("public key does not match private key")
	ErrSignatureCountMismatch    = InvalidError("signature count does not match required signatures")
	ErrTrailingMessageData       = LengthError("trailing data after message")
	ErrTruncatedDirective        = LengthError("truncated compute budget directive")
	ErrTruncatedMessage          = LengthError("truncated message data")
	ErrTruncatedSignatureData    = LengthError("truncated signature data")
	ErrUnknownDirective          = NotFoundError("unknown compute budget directive")
	ErrUnsupportedMessageVersion = InvalidError("unsupported message version")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }

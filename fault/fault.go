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
type LimitError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	BalanceOverflow          = LimitError("balance overflow")
	BelowMinimumBalance      = ProcessError("balance below minimum")
	CannotDecodeAccount      = InvalidError("cannot decode account")
	ChecksumMismatch         = ProcessError("checksum mismatch")
	ConfigurationNotFound    = NotFoundError("configuration file not found")
	ConfigurationNotTable    = InvalidError("configuration did not return a table")
	DatabaseIsNewer          = InvalidError("database version is newer than this program")
	DuplicateAsset           = ExistsError("duplicate asset")
	IndexMismatch            = RecordError("ownership index does not match asset records")
	InsufficientFunds        = ProcessError("insufficient funds")
	InvalidAccount           = InvalidError("invalid account")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidCount             = InvalidError("invalid count")
	InvalidCursor            = InvalidError("invalid cursor")
	InvalidExistence         = InvalidError("invalid existence requirement")
	InvalidFingerprint       = InvalidError("invalid fingerprint")
	InvalidKeyLength         = InvalidError("invalid key length")
	InvalidKeyType           = InvalidError("invalid key type")
	InvalidStructPointer     = InvalidError("invalid struct pointer")
	MaxPriceTooLow           = InvalidError("maximum price too low")
	MissingParameters        = InvalidError("missing parameters")
	NoAsset                  = NotFoundError("asset not found")
	NotForSale               = InvalidError("asset is not for sale")
	NotOwner                 = InvalidError("not owner")
	NotPackedAsset           = RecordError("not a packed asset record")
	NotPackedOwnerList       = RecordError("not a packed owner list")
	NotPublicKey             = InvalidError("not a public key")
	ReadOnlyDatabase         = ProcessError("database is read only")
	TooManyAssets            = LimitError("too many assets")
	TooManyOwned             = LimitError("too many assets owned")
	TransactionAlreadyInUse  = ProcessError("transaction already in use")
	TransactionNotInUse      = ProcessError("transaction not in use")
	TransferToSelf           = InvalidError("transfer to self")
	UnknownCommand           = NotFoundError("unknown command")
	WouldReapAccount         = ProcessError("transfer would reap account")
	WrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LimitError) Error() string    { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool    { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

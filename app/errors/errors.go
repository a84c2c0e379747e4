/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/hashgraph/hedera-protobufs-go/services"
	"github.com/pkg/errors"
)

// Kind classifies every error surfaced by the SDK. Parse, checksum, key, and
// structural errors are returned synchronously and never retried; transient
// errors are retried internally by the execution loop; timed-out and precheck
// errors are terminal.
type Kind int

const (
	KindParse Kind = iota + 1
	KindChecksumMismatch
	KindKey
	KindPrecheck
	KindTransient
	KindTimedOut
	KindStructural
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindChecksumMismatch:
		return "checksum mismatch"
	case KindKey:
		return "key"
	case KindPrecheck:
		return "precheck"
	case KindTransient:
		return "transient"
	case KindTimedOut:
		return "timed out"
	case KindStructural:
		return "structural invariant violation"
	default:
		return "unknown"
	}
}

type Error struct {
	kind  Kind
	cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	return e.kind
}

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, cause: errors.Errorf(format, args...)}
}

func wrapError(kind Kind, cause error, message string) error {
	if cause == nil {
		return nil
	}
	return &Error{kind: kind, cause: errors.Wrap(cause, message)}
}

// ErrParse reports malformed string or binary input
func ErrParse(format string, args ...interface{}) error {
	return newError(KindParse, format, args...)
}

func WrapParse(cause error, message string) error {
	return wrapError(KindParse, cause, message)
}

// ErrKey reports unsupported algorithms or corrupt key material
func ErrKey(format string, args ...interface{}) error {
	return newError(KindKey, format, args...)
}

func WrapKey(cause error, message string) error {
	return wrapError(KindKey, cause, message)
}

// ErrTransient reports a retryable network-level failure
func ErrTransient(format string, args ...interface{}) error {
	return newError(KindTransient, format, args...)
}

func WrapTransient(cause error, message string) error {
	return wrapError(KindTransient, cause, message)
}

// ErrStructural reports a violated reassembly invariant. Never retried.
func ErrStructural(format string, args ...interface{}) error {
	return newError(KindStructural, format, args...)
}

// ChecksumMismatchError reports an entity-id or mnemonic checksum that was
// present but wrong. Distinct from a structural parse failure.
type ChecksumMismatchError struct {
	Subject  string
	Expected string
	Actual   string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("%s checksum mismatch, expected %s, got %s", e.Subject, e.Expected, e.Actual)
}

func ErrChecksumMismatch(subject, expected, actual string) error {
	return &ChecksumMismatchError{Subject: subject, Expected: expected, Actual: actual}
}

// PrecheckError reports a node's synchronous rejection of a transaction or
// query. The status is surfaced verbatim.
type PrecheckError struct {
	Status        services.ResponseCodeEnum
	TransactionId string
}

func (e *PrecheckError) Error() string {
	if e.TransactionId == "" {
		return fmt.Sprintf("exceptional precheck status %s", e.Status)
	}
	return fmt.Sprintf("transaction %s failed precheck with status %s", e.TransactionId, e.Status)
}

func ErrPrecheck(status services.ResponseCodeEnum, transactionId string) error {
	return &PrecheckError{Status: status, TransactionId: transactionId}
}

// TimedOutError wraps the most recent attempt's error once the retry budget
// is exhausted. Distinct from a server-reported failure.
type TimedOutError struct {
	Cause error
}

func (e *TimedOutError) Error() string {
	return fmt.Sprintf("failed to complete request within the maximum time allowed, most recent attempt failed with: %s", e.Cause)
}

func (e *TimedOutError) Unwrap() error {
	return e.Cause
}

func ErrTimedOut(cause error) error {
	return &TimedOutError{Cause: cause}
}

func isKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.kind == kind
	}
	return false
}

func IsParse(err error) bool {
	return isKind(err, KindParse)
}

func IsKey(err error) bool {
	return isKind(err, KindKey)
}

func IsTransient(err error) bool {
	return isKind(err, KindTransient)
}

func IsStructural(err error) bool {
	return isKind(err, KindStructural)
}

func IsChecksumMismatch(err error) bool {
	var e *ChecksumMismatchError
	return stderrors.As(err, &e)
}

func IsPrecheck(err error) bool {
	var e *PrecheckError
	return stderrors.As(err, &e)
}

func IsTimedOut(err error) bool {
	var e *TimedOutError
	return stderrors.As(err, &e)
}

// PrecheckStatus extracts the precheck status from err, if any.
func PrecheckStatus(err error) (services.ResponseCodeEnum, bool) {
	var e *PrecheckError
	if stderrors.As(err, &e) {
		return e.Status, true
	}
	return services.ResponseCodeEnum_OK, false
}

// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package clierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// Kind classifies a user-visible failure. Each kind maps to its own exit code.
type Kind int

const (
	KindUnknown Kind = iota
	KindRequiredArgumentMissing
	KindInvalidArgumentValue
	KindMutuallyExclusiveArgument
	KindArgumentUsage
	KindResourceNotFound
	KindClientRequest
	KindNoTTY
	KindUnauthorized
	KindAzureInternal
	KindCLIInternal
	KindFileOperation
)

var kindNames = map[Kind]string{
	KindUnknown:                   "UnknownError",
	KindRequiredArgumentMissing:   "RequiredArgumentMissingError",
	KindInvalidArgumentValue:      "InvalidArgumentValueError",
	KindMutuallyExclusiveArgument: "MutuallyExclusiveArgumentError",
	KindArgumentUsage:             "ArgumentUsageError",
	KindResourceNotFound:          "ResourceNotFoundError",
	KindClientRequest:             "ClientRequestError",
	KindNoTTY:                     "NoTTYError",
	KindUnauthorized:              "UnauthorizedError",
	KindAzureInternal:             "AzureInternalError",
	KindCLIInternal:               "CLIInternalError",
	KindFileOperation:             "FileOperationError",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a classified failure carrying the message shown to the user.
type Error struct {
	// Kind classifies the failure
	Kind Kind
	// Msg is the user-facing message
	Msg string
	// Underlying is the original error if applicable
	Underlying error
}

func (e *Error) Error() string {
	if e.Underlying != nil && e.Msg == "" {
		return e.Underlying.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

// Is matches another *Error by kind, so errors.Is(err, &Error{Kind: k}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Underlying == nil && t.Kind == e.Kind
}

func newf(kind Kind, format string, args ...any) *Error {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &Error{Kind: kind, Msg: msg}
}

func RequiredArgumentMissing(format string, args ...any) *Error {
	return newf(KindRequiredArgumentMissing, format, args...)
}

func InvalidArgumentValue(format string, args ...any) *Error {
	return newf(KindInvalidArgumentValue, format, args...)
}

func MutuallyExclusiveArgument(format string, args ...any) *Error {
	return newf(KindMutuallyExclusiveArgument, format, args...)
}

func ArgumentUsage(format string, args ...any) *Error {
	return newf(KindArgumentUsage, format, args...)
}

func ResourceNotFound(format string, args ...any) *Error {
	return newf(KindResourceNotFound, format, args...)
}

func ClientRequest(format string, args ...any) *Error {
	return newf(KindClientRequest, format, args...)
}

func NoTTY(format string, args ...any) *Error {
	return newf(KindNoTTY, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return newf(KindUnauthorized, format, args...)
}

func AzureInternal(format string, args ...any) *Error {
	return newf(KindAzureInternal, format, args...)
}

func CLIInternal(format string, args ...any) *Error {
	return newf(KindCLIInternal, format, args...)
}

func FileOperation(format string, args ...any) *Error {
	return newf(KindFileOperation, format, args...)
}

func Unknown(format string, args ...any) *Error {
	return newf(KindUnknown, format, args...)
}

// Wrap classifies err under kind, keeping it reachable through errors.As.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Underlying: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// ErrDecoratorEarlyExit aborts a command after an interactive refusal. It is not a failure.
var ErrDecoratorEarlyExit = errors.New("decorator early exit")

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrDecoratorEarlyExit):
		return 0
	}
	switch KindOf(err) {
	case KindRequiredArgumentMissing, KindInvalidArgumentValue, KindMutuallyExclusiveArgument, KindArgumentUsage:
		return 2
	case KindResourceNotFound:
		return 3
	default:
		return 1
	}
}

// MapAzureError turns an ARM response error into a classified error, keeping
// the status code and service message. Non-ARM errors are returned unchanged.
func MapAzureError(err error) error {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	msg := fmt.Sprintf("(%s) %s", respErr.ErrorCode, err.Error())
	switch {
	case respErr.StatusCode == http.StatusNotFound:
		return Wrap(KindResourceNotFound, err, msg)
	case respErr.StatusCode == http.StatusUnauthorized || respErr.StatusCode == http.StatusForbidden:
		return Wrap(KindUnauthorized, err, msg)
	case respErr.StatusCode >= 400 && respErr.StatusCode < 500:
		return Wrap(KindClientRequest, err, msg)
	case respErr.StatusCode >= 500:
		return Wrap(KindAzureInternal, err, msg)
	default:
		return Wrap(KindUnknown, err, msg)
	}
}

// IsNotFound reports whether err is an ARM 404.
func IsNotFound(err error) bool {
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}

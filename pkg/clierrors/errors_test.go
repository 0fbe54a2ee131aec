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
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	azruntime "github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

func newResponseError(status int, code string) error {
	resp := &http.Response{
		StatusCode: status,
		Header:     http.Header{"X-Ms-Error-Code": []string{code}},
		Body:       io.NopCloser(strings.NewReader("")),
		Request: &http.Request{
			Method: http.MethodGet,
			URL:    &url.URL{Scheme: "https", Host: "management.azure.com", Path: "/subscriptions/sub/resourceGroups/rg"},
		},
	}
	return azruntime.NewResponseError(resp)
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected Kind
		exitCode int
	}{
		{
			name:     "required argument",
			err:      RequiredArgumentMissing("missing %s", "--name"),
			expected: KindRequiredArgumentMissing,
			exitCode: 2,
		},
		{
			name:     "wrapped mutually exclusive",
			err:      fmt.Errorf("validation failed: %w", MutuallyExclusiveArgument("a and b")),
			expected: KindMutuallyExclusiveArgument,
			exitCode: 2,
		},
		{
			name:     "not found",
			err:      ResourceNotFound("gone"),
			expected: KindResourceNotFound,
			exitCode: 3,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			expected: KindUnknown,
			exitCode: 1,
		},
		{
			name:     "early exit",
			err:      fmt.Errorf("update aborted: %w", ErrDecoratorEarlyExit),
			expected: KindUnknown,
			exitCode: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KindOf(tc.err))
			assert.Equal(t, tc.exitCode, ExitCode(tc.err))
		})
	}
}

func TestErrorMessageKeepsPercentInArgs(t *testing.T) {
	err := InvalidArgumentValue("%s", "100% invalid")
	assert.Equal(t, "100% invalid", err.Error())
	assert.True(t, errors.Is(err, &Error{Kind: KindInvalidArgumentValue}))
	assert.False(t, errors.Is(err, &Error{Kind: KindArgumentUsage}))
}

func TestMapAzureError(t *testing.T) {
	testCases := []struct {
		name     string
		status   int
		expected Kind
	}{
		{name: "not found", status: http.StatusNotFound, expected: KindResourceNotFound},
		{name: "forbidden", status: http.StatusForbidden, expected: KindUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, expected: KindClientRequest},
		{name: "server error", status: http.StatusInternalServerError, expected: KindAzureInternal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapAzureError(newResponseError(tc.status, "SomeCode"))
			require.Error(t, mapped)
			assert.Equal(t, tc.expected, KindOf(mapped))
			assert.Contains(t, mapped.Error(), "SomeCode")
		})
	}

	plain := errors.New("plain")
	assert.Same(t, plain, MapAzureError(plain))
	assert.True(t, IsNotFound(newResponseError(http.StatusNotFound, "NotFound")))
	assert.False(t, IsNotFound(plain))
}

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

package helpers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetry(t *testing.T) {
	errTransient := errors.New("not found in Active Directory tenant")
	errFatal := errors.New("bad request")

	testCases := []struct {
		name          string
		attempts      int
		failures      []error
		expectedCalls int
		expectErr     error
		exhausted     bool
	}{
		{
			name:          "first call succeeds",
			attempts:      3,
			expectedCalls: 1,
		},
		{
			name:          "succeeds after transient failures",
			attempts:      3,
			failures:      []error{errTransient, errTransient},
			expectedCalls: 3,
		},
		{
			name:          "non retryable error stops immediately",
			attempts:      5,
			failures:      []error{errFatal},
			expectedCalls: 1,
			expectErr:     errFatal,
		},
		{
			name:          "gives up after attempts",
			attempts:      2,
			failures:      []error{errTransient, errTransient, errTransient},
			expectedCalls: 2,
			expectErr:     errTransient,
			exhausted:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			err := Retry(context.Background(), tc.attempts, time.Millisecond, func(context.Context) error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}, func(err error) bool {
				return strings.Contains(err.Error(), "Active Directory")
			})

			assert.Equal(t, tc.expectedCalls, calls)
			if tc.expectErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.expectErr)
			var exhausted *RetriesExhaustedError
			assert.Equal(t, tc.exhausted, errors.As(err, &exhausted))
		})
	}
}

func TestRetryHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Retry(ctx, 10, time.Hour, func(context.Context) error {
		calls++
		cancel()
		return errors.New("transient")
	}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	var exhausted *RetriesExhaustedError
	assert.False(t, errors.As(err, &exhausted))
}

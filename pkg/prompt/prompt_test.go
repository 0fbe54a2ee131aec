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

package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name      string
		assumeYes bool
		noTTY     string
		expected  Prompter
	}{
		{
			name:      "yes wins over everything",
			assumeYes: true,
			noTTY:     "1",
			expected:  AssumeYes{},
		},
		{
			name:     "no tty refuses",
			noTTY:    "1",
			expected: Refuse{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(NoTTYEnv, tc.noTTY)
			assert.Equal(t, tc.expected, New(tc.assumeYes))
		})
	}
}

func TestNonInteractivePrompters(t *testing.T) {
	ok, err := Refuse{}.Confirm("proceed?", true)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = AssumeYes{}.Confirm("proceed?", false)
	require.NoError(t, err)
	assert.True(t, ok)

	for _, p := range []Prompter{Refuse{}, AssumeYes{}} {
		_, err := p.Input("name: ")
		assert.True(t, errors.Is(err, ErrNoTTY))
		_, err = p.Password("password: ", true)
		assert.True(t, errors.Is(err, ErrNoTTY))
	}
}

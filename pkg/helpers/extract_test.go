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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

func TestExtractList(t *testing.T) {
	assert.Nil(t, ExtractList("", true, nil))
	assert.Equal(t, []string{}, ExtractList("  ", true, []string{}))
	assert.Equal(t, []string{"a", "b", ""}, ExtractList(" a , b ,", true, nil))
	assert.Equal(t, []string{" a ", " b"}, ExtractList(" a , b", false, nil))
}

func TestExtractKeyValues(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		opts        ExtractOptions
		def         map[string]string
		expected    map[string]string
		errContains string
	}{
		{
			name:     "empty yields default",
			raw:      " ",
			opts:     ExtractOptions{Strip: true},
			def:      map[string]string{},
			expected: map[string]string{},
		},
		{
			name:     "strips keys and values",
			raw:      " a = 1 , b=2",
			opts:     ExtractOptions{Strip: true},
			expected: map[string]string{"a": "1", "b": "2"},
		},
		{
			name:        "empty value rejected",
			raw:         "a=1,b=",
			errContains: "Empty value not allowed. The value '' of key 'b' in 'b=' is empty. Raw input 'a=1,b='.",
		},
		{
			name:     "empty value allowed",
			raw:      "a,b=",
			opts:     ExtractOptions{AllowEmptyValue: true},
			expected: map[string]string{"a": "", "b": ""},
		},
		{
			name:        "too many separators",
			raw:         "a=1=2",
			errContains: "The format of 'a=1=2' in 'a=1=2' is incorrect, correct format should be 'Key1=Value1,Key2=Value2'.",
		},
		{
			name:     "repeated keys append",
			raw:      "h=1,h=2",
			opts:     ExtractOptions{AppendToSameKey: true},
			expected: map[string]string{"h": "1,2"},
		},
		{
			name:     "repeated keys overwrite",
			raw:      "h=1,h=2",
			expected: map[string]string{"h": "2"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ExtractKeyValues(tc.raw, tc.opts, tc.def)
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Equal(t, clierrors.KindInvalidArgumentValue, clierrors.KindOf(err))
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomHeaders(t *testing.T) {
	h, err := CustomHeaders("k1=v1, k1=v2,k2=v3")
	require.NoError(t, err)
	assert.Equal(t, "v1,v2", h.Get("K1"))
	assert.Equal(t, "v3", h.Get("K2"))

	h, err = CustomHeaders("")
	require.NoError(t, err)
	assert.Empty(t, h)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, int32(0), Deref[int32](nil))
	assert.False(t, Deref[bool](nil))

	s, n := "Succeeded", int32(2)
	assert.Equal(t, "Succeeded", Deref(&s))
	assert.Equal(t, int32(2), Deref(&n))
}

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

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	unset := None[int32]()
	assert.False(t, unset.IsSet())
	assert.Nil(t, unset.Ptr())
	assert.Equal(t, int32(7), unset.OrElse(7))

	zero := Some[int32](0)
	assert.True(t, zero.IsSet())
	require.NotNil(t, zero.Ptr())
	assert.Equal(t, int32(0), *zero.Ptr())
	assert.Equal(t, int32(0), zero.OrElse(7))

	v := int32(3)
	assert.Equal(t, Some[int32](3), FromPtr(&v))
	assert.Equal(t, None[int32](), FromPtr[int32](nil))
}

func TestParseAddons(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected []Addon
		errMsg   string
	}{
		{name: "empty", value: ""},
		{
			name:     "known addons in order",
			value:    "monitoring,virtual-node,azure-keyvault-secrets-provider",
			expected: []Addon{AddonMonitoring, AddonVirtualNode, AddonKeyVaultSecretsProvider},
		},
		{
			name:   "duplicates reported before unknown names",
			value:  "monitoring,bogus,monitoring",
			errMsg: "Duplicate addon 'monitoring' found in option --enable-addons.",
		},
		{
			name:   "several unknown",
			value:  "foo,bar",
			errMsg: "'foo,bar' are not recognized by the --enable-addons argument.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAddons(tc.value, "--enable-addons")
			if tc.errMsg != "" {
				assert.EqualError(t, err, tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestAddonLookup(t *testing.T) {
	a, ok := AddonFromAPIName("OMSAgent")
	require.True(t, ok)
	assert.Equal(t, AddonMonitoring, a)
	assert.Equal(t, "aciConnectorLinux", AddonVirtualNode.APIName())
	_, ok = AddonFromKey("omsagent")
	assert.False(t, ok)
}

func TestNewExtendedLocation(t *testing.T) {
	assert.Nil(t, NewExtendedLocation(APIVersion("2021-03-01"), "zone"))
	assert.Nil(t, NewExtendedLocation(DefaultAPIVersion, ""))
	loc := NewExtendedLocation(DefaultAPIVersion, "losangeles")
	require.NotNil(t, loc)
	assert.Equal(t, "losangeles", *loc.Name)
	assert.EqualValues(t, ExtendedLocationTypeEdgeZone, *loc.Type)
}

func TestRawParametersSupplied(t *testing.T) {
	var raw RawParameters
	assert.False(t, raw.WasSupplied("tags"))
	raw.MarkSupplied("tags", "yes")
	assert.True(t, raw.WasSupplied("tags"))
}

func TestAutoScalerProfileRoundTrip(t *testing.T) {
	in := map[string]string{
		"scan-interval":                    "30s",
		"expander":                         "least-waste",
		"skip-nodes-with-local-storage":    "false",
		"scale-down-utilization-threshold": "",
	}
	profile, err := NewAutoScalerProfile(DefaultAPIVersion, in)
	require.NoError(t, err)
	require.NotNil(t, profile.ScanInterval)
	assert.Equal(t, "30s", *profile.ScanInterval)
	require.NotNil(t, profile.Expander)
	assert.EqualValues(t, "least-waste", *profile.Expander)

	out, err := AutoScalerProfileToMap(profile)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	none, err := NewAutoScalerProfile(DefaultAPIVersion, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

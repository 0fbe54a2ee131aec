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

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
)

func TestCloudConfiguration(t *testing.T) {
	testCases := []struct {
		name        string
		cloud       string
		expected    cloud.Configuration
		expectError bool
	}{
		{name: "default", cloud: "", expected: cloud.AzurePublic},
		{name: "public", cloud: "AzureCloud", expected: cloud.AzurePublic},
		{name: "case insensitive", cloud: "azurechinacloud", expected: cloud.AzureChina},
		{name: "government", cloud: "AzureUSGovernment", expected: cloud.AzureGovernment},
		{name: "unknown", cloud: "AzureGermanCloud", expectError: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := CloudConfiguration(tc.cloud)
			if tc.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected.ActiveDirectoryAuthorityHost, cfg.ActiveDirectoryAuthorityHost)
		})
	}
}

func TestNewClientOptions(t *testing.T) {
	opts, err := NewClientOptions("AzureCloud", nil)
	require.NoError(t, err)
	assert.Equal(t, "aksctl", opts.Telemetry.ApplicationID)
	assert.Empty(t, opts.PerCallPolicies)

	opts, err = NewClientOptions("AzureCloud", map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Len(t, opts.PerCallPolicies, 1)
}

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

package addons

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		addons   string
		want     []models.Addon
		wantKind clierrors.Kind
	}{
		{
			name:   "two addons",
			addons: "monitoring,azure-policy",
			want:   []models.Addon{models.AddonMonitoring, models.AddonAzurePolicy},
		},
		{
			name:     "unknown addon",
			addons:   "monitoring,bogus",
			wantKind: clierrors.KindInvalidArgumentValue,
		},
		{
			name:     "duplicate addon",
			addons:   "monitoring,monitoring",
			wantKind: clierrors.KindInvalidArgumentValue,
		},
		{
			name:     "empty",
			wantKind: clierrors.KindRequiredArgumentMissing,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultAddonsOptions()
			opts.Addons = tc.addons
			got, err := opts.Validate()
			if tc.wantKind != clierrors.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, clierrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestListAvailable(t *testing.T) {
	cmd, err := NewCommand("main")
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"list-available"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "monitoring")
	assert.Contains(t, out.String(), "DESCRIPTION")
	assert.Contains(t, out.String(), "enableSecretRotation,rotationPollInterval")

	out.Reset()
	cmd.SetArgs([]string{"list-available", "-o", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"name": "monitoring"`)
}

func TestEnableFlags(t *testing.T) {
	cmd, err := NewCommand("main")
	require.NoError(t, err)
	enable, _, err := cmd.Find([]string{"enable"})
	require.NoError(t, err)
	for _, flag := range []string{"workspace-resource-id", "enable-msi-auth-for-monitoring", "appgw-id", "vnet-subnet-id", "enable-sgxquotehelper"} {
		assert.NotNil(t, enable.Flags().Lookup(flag), flag)
	}
	disable, _, err := cmd.Find([]string{"disable"})
	require.NoError(t, err)
	assert.Nil(t, disable.Flags().Lookup("workspace-resource-id"))
}

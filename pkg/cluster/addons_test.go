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

package cluster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func clusterWithAddons() *armcontainerservice.ManagedCluster {
	mc := testCluster()
	mc.Properties.AddonProfiles = map[string]*armcontainerservice.ManagedClusterAddonProfile{
		"omsAgent": {
			Enabled: to.Ptr(true),
			Config:  map[string]*string{models.MonitoringWorkspaceResourceID: to.Ptr("/subscriptions/sub/resourceGroups/r1/providers/Microsoft.OperationalInsights/workspaces/ws")},
		},
		"azurepolicy": {Enabled: to.Ptr(false)},
	}
	return mc
}

func TestListAvailableAddons(t *testing.T) {
	available := ListAvailableAddons()
	require.Len(t, available, len(models.AllAddons()))
	for _, a := range available {
		assert.NotEmpty(t, a.Description, a.Name)
		if a.Name == "azure-keyvault-secrets-provider" {
			assert.Equal(t, []string{models.SecretRotationEnabled, models.RotationPollInterval}, a.ConfigKeys)
		}
	}
}

func TestListAddons(t *testing.T) {
	o, m, _ := newTestOperations(t, true)
	expectGet(m, clusterWithAddons())

	statuses, err := o.ListAddons(context.Background(), "r1", "c1")
	require.NoError(t, err)
	require.Len(t, statuses, len(models.AllAddons()))
	for _, s := range statuses {
		switch s.Name {
		case "monitoring":
			assert.True(t, s.Enabled)
			assert.Equal(t, "omsagent", s.APIKey)
			assert.Contains(t, s.Config, models.MonitoringWorkspaceResourceID)
		default:
			assert.False(t, s.Enabled, s.Name)
			assert.Nil(t, s.Config, s.Name)
		}
	}
}

func TestShowAddon(t *testing.T) {
	testCases := []struct {
		name        string
		addon       string
		expectedErr string
	}{
		{name: "enabled", addon: "monitoring"},
		{name: "disabled", addon: "azure-policy", expectedErr: `Addon "azure-policy" is not enabled in this cluster.`},
		{name: "unknown", addon: "nope", expectedErr: `The addon "nope" is not a recognized addon option.`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m, _ := newTestOperations(t, true)
			if tc.addon != "nope" {
				expectGet(m, clusterWithAddons())
			}
			got, err := o.ShowAddon(context.Background(), "r1", "c1", tc.addon)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.addon, got.Name)
		})
	}
}

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
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

const upgradePrompt = "Kubernetes may be unavailable during cluster upgrades.\n Are you sure you want to perform this operation?"

func TestUpgradeErrors(t *testing.T) {
	vmas := testPool("np1")
	vmas.Type = to.Ptr(armcontainerservice.AgentPoolTypeAvailabilitySet)

	testCases := []struct {
		name        string
		mc          *armcontainerservice.ManagedCluster
		req         UpgradeRequest
		expectedErr string
	}{
		{
			name:        "partial version",
			mc:          testCluster(),
			req:         UpgradeRequest{KubernetesVersion: "1.30"},
			expectedErr: `--kubernetes-version should be the full version number, such as "1.11.8" or "1.12.6"`,
		},
		{
			name:        "version with node image only",
			mc:          testCluster(),
			req:         UpgradeRequest{KubernetesVersion: "1.30.0", NodeImageOnly: true},
			expectedErr: `Conflicting flags. Upgrading the Kubernetes version will also upgrade node image version. If you only want to upgrade the node version please use the "--node-image-only" option only.`,
		},
		{
			name:        "node image only on availability sets",
			mc:          testCluster(vmas),
			req:         UpgradeRequest{NodeImageOnly: true},
			expectedErr: "This cluster is not using VirtualMachineScaleSets. Node image upgrade only operation can only be applied on VirtualMachineScaleSets cluster.",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m, _ := newTestOperations(t, true)
			if tc.req.KubernetesVersion != "1.30" {
				expectGet(m, tc.mc)
			}
			tc.req.ResourceGroup, tc.req.Name = "r1", "c1"

			_, err := o.Upgrade(context.Background(), tc.req)
			require.EqualError(t, err, tc.expectedErr)
		})
	}
}

func TestUpgradeRefused(t *testing.T) {
	o, m, _ := newTestOperations(t, false)
	expectGet(m, testCluster())
	m.prompter.EXPECT().Confirm(upgradePrompt, false).Return(false, nil)

	_, err := o.Upgrade(context.Background(), UpgradeRequest{ResourceGroup: "r1", Name: "c1", KubernetesVersion: "1.30.0"})
	require.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
}

func TestUpgradeNodeImageOnly(t *testing.T) {
	o, m, _ := newTestOperations(t, true)
	mc := testCluster(testPool("np1"), testPool("np2"))
	expectGet(m, mc)
	m.agentPools.EXPECT().BeginUpgradeNodeImageVersion(gomock.Any(), "r1", "c1", "np1", nil).Return(nil, nil)
	m.agentPools.EXPECT().BeginUpgradeNodeImageVersion(gomock.Any(), "r1", "c1", "np2", nil).Return(nil, nil)
	expectGet(m, mc)

	got, err := o.Upgrade(context.Background(), UpgradeRequest{ResourceGroup: "r1", Name: "c1", NodeImageOnly: true})
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestUpgradeVersion(t *testing.T) {
	legacy := testCluster()
	legacy.Properties.MaxAgentPools = to.Ptr[int32](1)

	testCases := []struct {
		name             string
		mc               *armcontainerservice.ManagedCluster
		req              UpgradeRequest
		prompts          []string
		expectedVersion  string
		expectPoolChange bool
	}{
		{
			name: "control plane and pools",
			mc:   testCluster(),
			req:  UpgradeRequest{KubernetesVersion: "1.30.0"},
			prompts: []string{
				upgradePrompt,
				"Since control-plane-only argument is not specified, this will upgrade the control plane AND all nodepools to version 1.30.0. Continue?",
			},
			expectedVersion:  "1.30.0",
			expectPoolChange: true,
		},
		{
			name: "control plane only",
			mc:   testCluster(),
			req:  UpgradeRequest{KubernetesVersion: "1.30.0", ControlPlaneOnly: true},
			prompts: []string{
				upgradePrompt,
				"Since control-plane-only argument is specified, this will upgrade only the control plane to 1.30.0. Node pool will not change. Continue?",
			},
			expectedVersion: "1.30.0",
		},
		{
			name: "legacy cluster ignores control plane only",
			mc:   legacy,
			req:  UpgradeRequest{KubernetesVersion: "1.30.0", ControlPlaneOnly: true},
			prompts: []string{
				upgradePrompt,
				"Legacy clusters do not support control plane only upgrade. All node pools will be upgraded to 1.30.0 as well. Continue?",
			},
			expectedVersion:  "1.30.0",
			expectPoolChange: true,
		},
		{
			name: "same version reconciles",
			mc:   testCluster(),
			req:  UpgradeRequest{},
			prompts: []string{
				upgradePrompt,
				"Since control-plane-only argument is not specified, this will upgrade the control plane AND all nodepools to version 1.29.0. Continue?",
			},
			expectedVersion:  "1.29.0",
			expectPoolChange: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m, _ := newTestOperations(t, false)
			for _, pool := range tc.mc.Properties.AgentPoolProfiles {
				pool.CreationData = &armcontainerservice.CreationData{SourceResourceID: to.Ptr("snapshot-id")}
			}
			expectGet(m, tc.mc)
			var calls []any
			for _, p := range tc.prompts {
				calls = append(calls, m.prompter.EXPECT().Confirm(p, false).Return(true, nil))
			}
			gomock.InOrder(calls...)
			expectPut(t, m, func(t *testing.T, mc armcontainerservice.ManagedCluster) {
				assert.Equal(t, tc.expectedVersion, *mc.Properties.KubernetesVersion)
				assert.Nil(t, mc.Properties.ServicePrincipalProfile)
				for _, pool := range mc.Properties.AgentPoolProfiles {
					if tc.expectPoolChange {
						assert.Equal(t, tc.expectedVersion, *pool.OrchestratorVersion)
						assert.Nil(t, pool.CreationData)
					} else {
						assert.Equal(t, "1.29.0", *pool.OrchestratorVersion)
						assert.NotNil(t, pool.CreationData)
					}
				}
			})
			tc.req.ResourceGroup, tc.req.Name = "r1", "c1"

			_, err := o.Upgrade(context.Background(), tc.req)
			require.NoError(t, err)
		})
	}
}

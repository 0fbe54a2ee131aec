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

package nodepool

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/testutil"
)

const (
	poolURL    = "https://management.azure.com/subscriptions/sub/resourceGroups/r1/providers/Microsoft.ContainerService/managedClusters/c1/agentPools/np1"
	snapshotID = "/subscriptions/sub/resourceGroups/r2/providers/Microsoft.ContainerService/snapshots/snap1"
)

type testMocks struct {
	agentPools *client.MockAgentPoolsClient
	snapshots  *client.MockSnapshotsClient
	prompter   *prompt.MockPrompter
}

func newTestOperations(t *testing.T, yes bool) (*Operations, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		agentPools: client.NewMockAgentPoolsClient(ctrl),
		snapshots:  client.NewMockSnapshotsClient(ctrl),
		prompter:   prompt.NewMockPrompter(ctrl),
	}
	o := New(&client.Clients{
		SubscriptionID: "sub",
		AgentPools:     m.agentPools,
		Snapshots:      m.snapshots,
	}, m.prompter, yes)
	o.PollInterval = time.Millisecond
	return o, m
}

func testPool() *armcontainerservice.AgentPool {
	return &armcontainerservice.AgentPool{
		Name: to.Ptr("np1"),
		Properties: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{
			Count:               to.Ptr[int32](3),
			OrchestratorVersion: to.Ptr("1.29.0"),
			ProvisioningState:   to.Ptr("Succeeded"),
		},
	}
}

func expectGet(m *testMocks, pool *armcontainerservice.AgentPool) {
	m.agentPools.EXPECT().Get(gomock.Any(), "r1", "c1", "np1", nil).
		Return(armcontainerservice.AgentPoolsClientGetResponse{AgentPool: *pool}, nil)
}

func expectPut(t *testing.T, m *testMocks, check func(ctx context.Context, pool armcontainerservice.AgentPool)) {
	m.agentPools.EXPECT().BeginCreateOrUpdate(gomock.Any(), "r1", "c1", "np1", gomock.Any(), nil).DoAndReturn(
		func(ctx context.Context, _, _, _ string, pool armcontainerservice.AgentPool, _ *armcontainerservice.AgentPoolsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse], error) {
			check(ctx, pool)
			return testutil.FinishedPoller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse](t, poolURL, pool), nil
		})
}

func TestShowNotFound(t *testing.T) {
	o, m := newTestOperations(t, true)
	m.agentPools.EXPECT().Get(gomock.Any(), "r1", "c1", "np1", nil).
		Return(armcontainerservice.AgentPoolsClientGetResponse{}, &azcore.ResponseError{StatusCode: http.StatusNotFound})

	_, err := o.Show(context.Background(), "r1", "c1", "np1")
	require.EqualError(t, err, "Node pool np1 doesnt exist, use 'aksctl nodepool list' to get current node pool list")
	assert.Equal(t, clierrors.KindResourceNotFound, clierrors.KindOf(err))
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name        string
		pool        string
		expectedErr string
	}{
		{name: "missing pool", pool: "np9", expectedErr: "Node pool np9 doesnt exist, use 'aksctl nodepool list' to get current node pool list"},
		{name: "existing pool", pool: "NP1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m := newTestOperations(t, true)
			m.agentPools.EXPECT().NewListPager("r1", "c1", nil).Return(testutil.SinglePage(armcontainerservice.AgentPoolsClientListResponse{
				AgentPoolListResult: armcontainerservice.AgentPoolListResult{Value: []*armcontainerservice.AgentPool{testPool()}},
			}))
			if tc.expectedErr == "" {
				m.agentPools.EXPECT().BeginDelete(gomock.Any(), "r1", "c1", tc.pool, nil).Return(nil, nil)
			}
			err := o.Delete(context.Background(), "r1", "c1", tc.pool, true)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestScale(t *testing.T) {
	autoscaled := testPool()
	autoscaled.Properties.EnableAutoScaling = to.Ptr(true)

	testCases := []struct {
		name        string
		pool        *armcontainerservice.AgentPool
		count       int32
		expectedErr string
	}{
		{name: "autoscaler", pool: autoscaled, count: 5, expectedErr: "Cannot scale cluster autoscaler enabled node pool."},
		{name: "same count", pool: testPool(), count: 3, expectedErr: "The new node count is the same as the current node count."},
		{name: "scale out", pool: testPool(), count: 5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m := newTestOperations(t, true)
			expectGet(m, tc.pool)
			if tc.expectedErr == "" {
				expectPut(t, m, func(_ context.Context, pool armcontainerservice.AgentPool) {
					assert.Equal(t, tc.count, *pool.Properties.Count)
				})
			}
			got, err := o.Scale(context.Background(), "r1", "c1", "np1", tc.count, false)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.count, *got.Properties.Count)
		})
	}
}

func TestUpgradeConflicts(t *testing.T) {
	testCases := []struct {
		name        string
		req         UpgradeRequest
		expectedErr string
	}{
		{
			name:        "version with node image only",
			req:         UpgradeRequest{KubernetesVersion: "1.30.0", NodeImageOnly: true},
			expectedErr: `Conflicting flags. Upgrading the Kubernetes version will also upgrade node image version. If you only want to upgrade the node version please use the "--node-image-only" option only.`,
		},
		{
			name:        "max surge with node image only",
			req:         UpgradeRequest{MaxSurge: "33%", NodeImageOnly: true},
			expectedErr: `Conflicting flags. Unable to specify max-surge with node-image-only.If you want to use max-surge with a node image upgrade, please first update max-surge using "aksctl nodepool update --max-surge".`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, _ := newTestOperations(t, true)
			_, err := o.Upgrade(context.Background(), tc.req)
			require.EqualError(t, err, tc.expectedErr)
			assert.Equal(t, clierrors.KindMutuallyExclusiveArgument, clierrors.KindOf(err))
		})
	}
}

func TestUpgradeNodeImageOnlyNoWait(t *testing.T) {
	o, m := newTestOperations(t, true)
	m.agentPools.EXPECT().BeginUpgradeNodeImageVersion(gomock.Any(), "r1", "c1", "np1", nil).Return(nil, nil)

	got, err := o.Upgrade(context.Background(), UpgradeRequest{ResourceGroup: "r1", ClusterName: "c1", Name: "np1", NodeImageOnly: true, NoWait: true})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpgradeSameVersionRefused(t *testing.T) {
	o, m := newTestOperations(t, false)
	expectGet(m, testPool())
	m.prompter.EXPECT().Confirm("The cluster is already on version 1.29.0 and is not in a failed state. "+
		"No operations will occur when upgrading to the same version if the cluster is not in a failed state.", false).Return(false, nil)

	_, err := o.Upgrade(context.Background(), UpgradeRequest{ResourceGroup: "r1", ClusterName: "c1", Name: "np1", KubernetesVersion: "1.29.0"})
	require.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
}

func TestUpgradeFromSnapshot(t *testing.T) {
	o, m := newTestOperations(t, true)
	m.snapshots.EXPECT().Get(gomock.Any(), "r2", "snap1", nil).Return(armcontainerservice.SnapshotsClientGetResponse{
		Snapshot: armcontainerservice.Snapshot{Properties: &armcontainerservice.SnapshotProperties{KubernetesVersion: to.Ptr("1.30.1")}},
	}, nil)
	expectGet(m, testPool())
	expectPut(t, m, func(ctx context.Context, pool armcontainerservice.AgentPool) {
		assert.Equal(t, "1.30.1", *pool.Properties.OrchestratorVersion)
		assert.Equal(t, snapshotID, *pool.Properties.CreationData.SourceResourceID)
		assert.Equal(t, "33%", *pool.Properties.UpgradeSettings.MaxSurge)
	})

	got, err := o.Upgrade(context.Background(), UpgradeRequest{
		ResourceGroup: "r1",
		ClusterName:   "c1",
		Name:          "np1",
		SnapshotID:    snapshotID,
		MaxSurge:      "33%",
		CustomHeaders: "EnableAzureDiskFileCSIDriver=true",
	})
	require.NoError(t, err)
	assert.Equal(t, "1.30.1", *got.Properties.OrchestratorVersion)
}

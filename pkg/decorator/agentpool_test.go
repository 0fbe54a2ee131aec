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

package decorator

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const agentPoolURL = "https://management.azure.com/subscriptions/sub/resourceGroups/r1/providers/Microsoft.ContainerService/managedClusters/c1/agentPools/np2"

func poolPager(names ...string) *runtime.Pager[armcontainerservice.AgentPoolsClientListResponse] {
	var pools []*armcontainerservice.AgentPool
	for _, n := range names {
		pools = append(pools, &armcontainerservice.AgentPool{Name: to.Ptr(n)})
	}
	return runtime.NewPager(runtime.PagingHandler[armcontainerservice.AgentPoolsClientListResponse]{
		More: func(armcontainerservice.AgentPoolsClientListResponse) bool { return false },
		Fetcher: func(context.Context, *armcontainerservice.AgentPoolsClientListResponse) (armcontainerservice.AgentPoolsClientListResponse, error) {
			return armcontainerservice.AgentPoolsClientListResponse{
				AgentPoolListResult: armcontainerservice.AgentPoolListResult{Value: pools},
			}, nil
		},
	})
}

func TestConstructAgentPool(t *testing.T) {
	testCases := []struct {
		name        string
		raw         *models.RawParameters
		existing    []string
		expectedErr string
		check       func(t *testing.T, props *armcontainerservice.ManagedClusterAgentPoolProfileProperties)
	}{
		{
			name:        "name already taken",
			raw:         &models.RawParameters{NodepoolName: "np2"},
			existing:    []string{"nodepool1", "NP2"},
			expectedErr: "Node pool np2 already exists, please try a different name, use 'aksctl nodepool list' to get current list of node pool",
		},
		{
			name:        "windows name too long",
			raw:         &models.RawParameters{NodepoolName: "winpool1", OSType: "windows"},
			expectedErr: "Windows agent pool name can not be longer than 6 characters.",
		},
		{
			name:        "unknown os type",
			raw:         &models.RawParameters{NodepoolName: "np2", OSType: "plan9"},
			expectedErr: "--os-type must be Linux or Windows",
		},
		{
			name:        "unknown mode",
			raw:         &models.RawParameters{NodepoolName: "np2", NodepoolMode: "spot"},
			expectedErr: "--mode must be System or User",
		},
		{
			name: "user linux pool with surge",
			raw:  &models.RawParameters{NodepoolName: "np2", NodeCount: 2, MaxSurge: "33%"},
			check: func(t *testing.T, props *armcontainerservice.ManagedClusterAgentPoolProfileProperties) {
				assert.Equal(t, armcontainerservice.AgentPoolModeUser, *props.Mode)
				assert.Equal(t, armcontainerservice.OSTypeLinux, *props.OSType)
				assert.Equal(t, int32(2), *props.Count)
				assert.Equal(t, models.DefaultNodeVMSize, *props.VMSize)
				assert.Equal(t, armcontainerservice.AgentPoolTypeVirtualMachineScaleSets, *props.Type)
				assert.Equal(t, "33%", *props.UpgradeSettings.MaxSurge)
			},
		},
		{
			name: "system windows pool",
			raw:  &models.RawParameters{NodepoolName: "win1", OSType: "Windows", NodepoolMode: "system", NodeCount: 1},
			check: func(t *testing.T, props *armcontainerservice.ManagedClusterAgentPoolProfileProperties) {
				assert.Equal(t, armcontainerservice.AgentPoolModeSystem, *props.Mode)
				assert.Equal(t, armcontainerservice.OSTypeWindows, *props.OSType)
				assert.Nil(t, props.UpgradeSettings)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, m := newTestContext(t, models.ModeCreate, tc.raw)
			m.agentPools.EXPECT().NewListPager("r1", "c1", nil).Return(poolPager(tc.existing...)).AnyTimes()

			ap, err := NewAgentPoolAddDecorator(c).ConstructAgentPool(context.Background())
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, ap.Properties)
		})
	}
}

func TestAddAgentPool(t *testing.T) {
	c, m := newTestContext(t, models.ModeCreate, &models.RawParameters{NodepoolName: "np2", NodeCount: 1})
	d := NewAgentPoolAddDecorator(c)
	d.PollInterval = time.Millisecond
	m.agentPools.EXPECT().NewListPager("r1", "c1", nil).Return(poolPager("nodepool1"))
	m.agentPools.EXPECT().BeginCreateOrUpdate(gomock.Any(), "r1", "c1", "np2", gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, _, _, _ string, ap armcontainerservice.AgentPool, _ *armcontainerservice.AgentPoolsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse], error) {
			ap.Name = to.Ptr("np2")
			return finishedPoller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse](t, agentPoolURL, &ap), nil
		})

	ctx := context.Background()
	ap, err := d.ConstructAgentPool(ctx)
	require.NoError(t, err)
	created, err := d.AddAgentPool(ctx, ap)
	require.NoError(t, err)
	assert.Equal(t, "np2", *created.Name)
	assert.Equal(t, armcontainerservice.AgentPoolModeUser, *created.Properties.Mode)
}

func TestUpdateAgentPoolProfileDefault(t *testing.T) {
	current := func(autoscaling bool) *armcontainerservice.AgentPool {
		return &armcontainerservice.AgentPool{
			Name: to.Ptr("np2"),
			Properties: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{
				Count:             to.Ptr[int32](3),
				EnableAutoScaling: to.Ptr(autoscaling),
				Mode:              to.Ptr(armcontainerservice.AgentPoolModeUser),
				Tags:              map[string]*string{"team": to.Ptr("aks")},
				NodeLabels:        map[string]*string{"tier": to.Ptr("web")},
				NodeTaints:        []*string{to.Ptr("key=value:NoSchedule")},
			},
		}
	}

	testCases := []struct {
		name        string
		raw         *models.RawParameters
		current     *armcontainerservice.AgentPool
		getErr      error
		expectedErr string
		earlyExit   bool
		expected    *armcontainerservice.ManagedClusterAgentPoolProfileProperties
	}{
		{
			name:        "no flags",
			raw:         &models.RawParameters{},
			expectedErr: `Please specify one or more of "--enable-cluster-autoscaler" or "--disable-cluster-autoscaler" or "--update-cluster-autoscaler" or "--tags" or "--mode" or "--max-surge" or "--node-taints" or "--labels".`,
		},
		{
			name: "exclusive autoscaler flags",
			raw: &models.RawParameters{
				EnableClusterAutoscaler:  true,
				DisableClusterAutoscaler: true,
				Supplied:                 map[string]bool{"enable-cluster-autoscaler": true, "disable-cluster-autoscaler": true},
			},
			expectedErr: `Can only specify one of "--enable-cluster-autoscaler", "--disable-cluster-autoscaler" and "--update-cluster-autoscaler"`,
		},
		{
			name: "enable without bounds",
			raw: &models.RawParameters{
				EnableClusterAutoscaler: true,
				Supplied:                map[string]bool{"enable-cluster-autoscaler": true},
			},
			expectedErr: "Please specify both min-count and max-count when --enable-cluster-autoscaler or --update-cluster-autoscaler set.",
		},
		{
			name: "min above max",
			raw: &models.RawParameters{
				UpdateClusterAutoscaler: true,
				MinCount:                models.Some[int32](5),
				MaxCount:                models.Some[int32](2),
				Supplied:                map[string]bool{"update-cluster-autoscaler": true},
			},
			expectedErr: "Value of min-count should be less than or equal to value of max-count.",
		},
		{
			name:        "pool not found",
			raw:         &models.RawParameters{NodepoolMode: "System", Supplied: map[string]bool{"mode": true}},
			getErr:      &azcore.ResponseError{StatusCode: http.StatusNotFound},
			expectedErr: `The nodepool "np2" was not found.`,
		},
		{
			name: "enable when already enabled",
			raw: &models.RawParameters{
				EnableClusterAutoscaler: true,
				MinCount:                models.Some[int32](1),
				MaxCount:                models.Some[int32](3),
				Supplied:                map[string]bool{"enable-cluster-autoscaler": true},
			},
			current:   current(true),
			earlyExit: true,
		},
		{
			name:      "disable when already disabled",
			raw:       &models.RawParameters{DisableClusterAutoscaler: true, Supplied: map[string]bool{"disable-cluster-autoscaler": true}},
			current:   current(false),
			earlyExit: true,
		},
		{
			name: "update when disabled",
			raw: &models.RawParameters{
				UpdateClusterAutoscaler: true,
				MinCount:                models.Some[int32](1),
				MaxCount:                models.Some[int32](3),
				Supplied:                map[string]bool{"update-cluster-autoscaler": true},
			},
			current:     current(false),
			expectedErr: "Autoscaler is not enabled for this node pool.\nRun \"aksctl nodepool update --enable-cluster-autoscaler\" to enable cluster with min-count and max-count.",
		},
		{
			name: "enable autoscaler",
			raw: &models.RawParameters{
				EnableClusterAutoscaler: true,
				MinCount:                models.Some[int32](1),
				MaxCount:                models.Some[int32](4),
				Supplied:                map[string]bool{"enable-cluster-autoscaler": true},
			},
			current: current(false),
			expected: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{
				Count:             to.Ptr[int32](3),
				EnableAutoScaling: to.Ptr(true),
				MinCount:          to.Ptr[int32](1),
				MaxCount:          to.Ptr[int32](4),
				Mode:              to.Ptr(armcontainerservice.AgentPoolModeUser),
				Tags:              map[string]*string{"team": to.Ptr("aks")},
				NodeLabels:        map[string]*string{"tier": to.Ptr("web")},
				NodeTaints:        []*string{to.Ptr("key=value:NoSchedule")},
			},
		},
		{
			name: "clear labels and taints, change mode and surge",
			raw: &models.RawParameters{
				NodepoolTags: map[string]string{"env": "prod"},
				NodepoolMode: "system",
				MaxSurge:     "50%",
				Supplied:     map[string]bool{"tags": true, "labels": true, "node-taints": true, "mode": true, "max-surge": true},
			},
			current: current(false),
			expected: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{
				Count:             to.Ptr[int32](3),
				EnableAutoScaling: to.Ptr(false),
				Mode:              to.Ptr(armcontainerservice.AgentPoolModeSystem),
				Tags:              map[string]*string{"env": to.Ptr("prod")},
				NodeLabels:        map[string]*string{},
				NodeTaints:        []*string{},
				UpgradeSettings:   &armcontainerservice.AgentPoolUpgradeSettings{MaxSurge: to.Ptr("50%")},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.raw.NodepoolName = "np2"
			c, m := newTestContext(t, models.ModeUpdate, tc.raw)
			if tc.current != nil || tc.getErr != nil {
				resp := armcontainerservice.AgentPoolsClientGetResponse{}
				if tc.current != nil {
					resp.AgentPool = *tc.current
				}
				m.agentPools.EXPECT().Get(gomock.Any(), "r1", "c1", "np2", nil).Return(resp, tc.getErr)
			}

			ap, err := NewAgentPoolUpdateDecorator(c).UpdateAgentPoolProfileDefault(context.Background())
			switch {
			case tc.earlyExit:
				require.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
			case tc.expectedErr != "":
				require.EqualError(t, err, tc.expectedErr)
			default:
				require.NoError(t, err)
				if diff := cmp.Diff(tc.expected, ap.Properties); diff != "" {
					t.Errorf("unexpected pool (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestUpdateAgentPoolNoWait(t *testing.T) {
	c, m := newTestContext(t, models.ModeUpdate, &models.RawParameters{NodepoolName: "np2", NoWait: true})
	d := NewAgentPoolUpdateDecorator(c)
	m.agentPools.EXPECT().BeginCreateOrUpdate(gomock.Any(), "r1", "c1", "np2", gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, _, _, _ string, ap armcontainerservice.AgentPool, _ *armcontainerservice.AgentPoolsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse], error) {
			return finishedPoller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse](t, agentPoolURL, &ap), nil
		})

	ap, err := d.UpdateAgentPool(context.Background(), &armcontainerservice.AgentPool{
		Properties: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{Count: to.Ptr[int32](1)},
	})
	require.NoError(t, err)
	assert.Nil(t, ap)
}

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

package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/testutil"
)

const nodepoolID = "/subscriptions/sub/resourceGroups/r1/providers/Microsoft.ContainerService/managedClusters/c1/agentPools/np1"

type testMocks struct {
	snapshots      *client.MockSnapshotsClient
	resourceGroups *client.MockResourceGroupsClient
	prompter       *prompt.MockPrompter
}

func newTestOperations(t *testing.T, yes bool) (*Operations, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		snapshots:      client.NewMockSnapshotsClient(ctrl),
		resourceGroups: client.NewMockResourceGroupsClient(ctrl),
		prompter:       prompt.NewMockPrompter(ctrl),
	}
	return New(&client.Clients{
		SubscriptionID: "sub",
		Snapshots:      m.snapshots,
		ResourceGroups: m.resourceGroups,
	}, m.prompter, yes), m
}

func TestCreate(t *testing.T) {
	testCases := []struct {
		name             string
		req              CreateRequest
		expectedLocation string
		expectedErr      string
	}{
		{
			name:        "invalid nodepool id",
			req:         CreateRequest{NodepoolID: "np1"},
			expectedErr: "--nodepool-id is not a valid Azure resource ID.",
		},
		{
			name:             "location from resource group",
			req:              CreateRequest{NodepoolID: nodepoolID, Tags: map[string]string{"env": "dev"}},
			expectedLocation: "westus2",
		},
		{
			name:             "explicit location",
			req:              CreateRequest{NodepoolID: nodepoolID, Location: "eastus", CustomHeaders: "k=v"},
			expectedLocation: "eastus",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m := newTestOperations(t, true)
			tc.req.ResourceGroup, tc.req.Name = "r1", "snap1"
			if tc.expectedErr == "" {
				if tc.req.Location == "" {
					m.resourceGroups.EXPECT().Get(gomock.Any(), "r1", nil).Return(armresources.ResourceGroupsClientGetResponse{
						ResourceGroup: armresources.ResourceGroup{Location: to.Ptr("westus2")},
					}, nil)
				}
				m.snapshots.EXPECT().CreateOrUpdate(gomock.Any(), "r1", "snap1", gomock.Any(), nil).DoAndReturn(
					func(_ context.Context, _, _ string, s armcontainerservice.Snapshot, _ *armcontainerservice.SnapshotsClientCreateOrUpdateOptions) (armcontainerservice.SnapshotsClientCreateOrUpdateResponse, error) {
						assert.Equal(t, tc.expectedLocation, *s.Location)
						assert.Equal(t, "snap1", *s.Name)
						assert.Equal(t, nodepoolID, *s.Properties.CreationData.SourceResourceID)
						for k, v := range tc.req.Tags {
							assert.Equal(t, v, *s.Tags[k])
						}
						return armcontainerservice.SnapshotsClientCreateOrUpdateResponse{Snapshot: s}, nil
					})
			}

			got, err := o.Create(context.Background(), tc.req)
			if tc.expectedErr != "" {
				require.EqualError(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "snap1", *got.Name)
		})
	}
}

func TestList(t *testing.T) {
	o, m := newTestOperations(t, true)
	m.snapshots.EXPECT().NewListPager(nil).Return(testutil.SinglePage(armcontainerservice.SnapshotsClientListResponse{
		SnapshotListResult: armcontainerservice.SnapshotListResult{Value: []*armcontainerservice.Snapshot{{Name: to.Ptr("a")}, {Name: to.Ptr("b")}}},
	}))

	got, err := o.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name        string
		answer      bool
		expectedErr error
	}{
		{name: "confirmed", answer: true},
		{name: "refused", answer: false, expectedErr: clierrors.ErrDecoratorEarlyExit},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m := newTestOperations(t, false)
			m.prompter.EXPECT().Confirm(`This will delete the snapshot "snap1" in resource group "r1", Are you sure?`, false).Return(tc.answer, nil)
			if tc.answer {
				m.snapshots.EXPECT().Delete(gomock.Any(), "r1", "snap1", nil).Return(armcontainerservice.SnapshotsClientDeleteResponse{}, nil)
			}
			err := o.Delete(context.Background(), "r1", "snap1")
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateTags(t *testing.T) {
	o, m := newTestOperations(t, true)
	m.snapshots.EXPECT().UpdateTags(gomock.Any(), "r1", "snap1", armcontainerservice.TagsObject{Tags: map[string]*string{"env": to.Ptr("prod")}}, nil).
		Return(armcontainerservice.SnapshotsClientUpdateTagsResponse{Snapshot: armcontainerservice.Snapshot{Name: to.Ptr("snap1")}}, nil)

	got, err := o.UpdateTags(context.Background(), "r1", "snap1", map[string]string{"env": "prod"})
	require.NoError(t, err)
	assert.Equal(t, "snap1", *got.Name)
}

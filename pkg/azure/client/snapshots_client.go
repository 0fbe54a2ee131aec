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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
)

// SnapshotsClient mirrors the Azure Go SDK SnapshotsClient. Snapshot writes are synchronous.
//
//go:generate $MOCKGEN -typed -source=snapshots_client.go -destination=mock_snapshots_client.go -package client SnapshotsClient
type SnapshotsClient interface {
	Get(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.SnapshotsClientGetOptions) (
		armcontainerservice.SnapshotsClientGetResponse, error)
	CreateOrUpdate(ctx context.Context, resourceGroupName string, resourceName string,
		parameters armcontainerservice.Snapshot,
		options *armcontainerservice.SnapshotsClientCreateOrUpdateOptions) (
		armcontainerservice.SnapshotsClientCreateOrUpdateResponse, error)
	Delete(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.SnapshotsClientDeleteOptions) (
		armcontainerservice.SnapshotsClientDeleteResponse, error)
	UpdateTags(ctx context.Context, resourceGroupName string, resourceName string,
		parameters armcontainerservice.TagsObject,
		options *armcontainerservice.SnapshotsClientUpdateTagsOptions) (
		armcontainerservice.SnapshotsClientUpdateTagsResponse, error)
	NewListPager(options *armcontainerservice.SnapshotsClientListOptions) *runtime.Pager[armcontainerservice.SnapshotsClientListResponse]
	NewListByResourceGroupPager(resourceGroupName string,
		options *armcontainerservice.SnapshotsClientListByResourceGroupOptions) *runtime.Pager[armcontainerservice.SnapshotsClientListByResourceGroupResponse]
}

var _ SnapshotsClient = (*armcontainerservice.SnapshotsClient)(nil)

func NewSnapshotsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (SnapshotsClient, error) {
	return armcontainerservice.NewSnapshotsClient(subscriptionID, credential, options)
}

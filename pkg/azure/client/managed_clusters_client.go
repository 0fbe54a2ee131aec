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

// ManagedClustersClient is an interface that defines the methods that
// we want to use from the ManagedClustersClient type in the Azure Go SDK
// (https://github.com/Azure/azure-sdk-for-go/tree/main/sdk/resourcemanager/containerservice/armcontainerservice).
// The aim is to only contain methods that are defined in the Azure Go SDK
// ManagedClustersClient client.
//
//go:generate $MOCKGEN -typed -source=managed_clusters_client.go -destination=mock_managed_clusters_client.go -package client ManagedClustersClient
type ManagedClustersClient interface {
	Get(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.ManagedClustersClientGetOptions) (
		armcontainerservice.ManagedClustersClientGetResponse, error)
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, resourceName string,
		parameters armcontainerservice.ManagedCluster,
		options *armcontainerservice.ManagedClustersClientBeginCreateOrUpdateOptions) (
		*runtime.Poller[armcontainerservice.ManagedClustersClientCreateOrUpdateResponse], error)
	BeginDelete(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.ManagedClustersClientBeginDeleteOptions) (
		*runtime.Poller[armcontainerservice.ManagedClustersClientDeleteResponse], error)
	NewListPager(options *armcontainerservice.ManagedClustersClientListOptions) *runtime.Pager[armcontainerservice.ManagedClustersClientListResponse]
	NewListByResourceGroupPager(resourceGroupName string,
		options *armcontainerservice.ManagedClustersClientListByResourceGroupOptions) *runtime.Pager[armcontainerservice.ManagedClustersClientListByResourceGroupResponse]
	ListClusterAdminCredentials(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.ManagedClustersClientListClusterAdminCredentialsOptions) (
		armcontainerservice.ManagedClustersClientListClusterAdminCredentialsResponse, error)
	ListClusterUserCredentials(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.ManagedClustersClientListClusterUserCredentialsOptions) (
		armcontainerservice.ManagedClustersClientListClusterUserCredentialsResponse, error)
	GetUpgradeProfile(ctx context.Context, resourceGroupName string, resourceName string,
		options *armcontainerservice.ManagedClustersClientGetUpgradeProfileOptions) (
		armcontainerservice.ManagedClustersClientGetUpgradeProfileResponse, error)
	BeginRunCommand(ctx context.Context, resourceGroupName string, resourceName string,
		requestPayload armcontainerservice.RunCommandRequest,
		options *armcontainerservice.ManagedClustersClientBeginRunCommandOptions) (
		*runtime.Poller[armcontainerservice.ManagedClustersClientRunCommandResponse], error)
	GetCommandResult(ctx context.Context, resourceGroupName string, resourceName string, commandID string,
		options *armcontainerservice.ManagedClustersClientGetCommandResultOptions) (
		armcontainerservice.ManagedClustersClientGetCommandResultResponse, error)
}

// interface guard to ensure that all methods defined in the ManagedClustersClient
// interface are implemented by the real Azure Go SDK ManagedClustersClient
// client. This interface guard should always compile
var _ ManagedClustersClient = (*armcontainerservice.ManagedClustersClient)(nil)

// NewManagedClustersClient instantiates a ManagedClustersClient from the Azure Go SDK.
func NewManagedClustersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ManagedClustersClient, error) {
	return armcontainerservice.NewManagedClustersClient(subscriptionID, credential, options)
}

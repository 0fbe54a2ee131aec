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

// AgentPoolsClient mirrors the Azure Go SDK AgentPoolsClient methods used by the node pool commands.
//
//go:generate $MOCKGEN -typed -source=agent_pools_client.go -destination=mock_agent_pools_client.go -package client AgentPoolsClient
type AgentPoolsClient interface {
	Get(ctx context.Context, resourceGroupName string, resourceName string, agentPoolName string,
		options *armcontainerservice.AgentPoolsClientGetOptions) (
		armcontainerservice.AgentPoolsClientGetResponse, error)
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, resourceName string, agentPoolName string,
		parameters armcontainerservice.AgentPool,
		options *armcontainerservice.AgentPoolsClientBeginCreateOrUpdateOptions) (
		*runtime.Poller[armcontainerservice.AgentPoolsClientCreateOrUpdateResponse], error)
	BeginDelete(ctx context.Context, resourceGroupName string, resourceName string, agentPoolName string,
		options *armcontainerservice.AgentPoolsClientBeginDeleteOptions) (
		*runtime.Poller[armcontainerservice.AgentPoolsClientDeleteResponse], error)
	NewListPager(resourceGroupName string, resourceName string,
		options *armcontainerservice.AgentPoolsClientListOptions) *runtime.Pager[armcontainerservice.AgentPoolsClientListResponse]
	GetUpgradeProfile(ctx context.Context, resourceGroupName string, resourceName string, agentPoolName string,
		options *armcontainerservice.AgentPoolsClientGetUpgradeProfileOptions) (
		armcontainerservice.AgentPoolsClientGetUpgradeProfileResponse, error)
	BeginUpgradeNodeImageVersion(ctx context.Context, resourceGroupName string, resourceName string, agentPoolName string,
		options *armcontainerservice.AgentPoolsClientBeginUpgradeNodeImageVersionOptions) (
		*runtime.Poller[armcontainerservice.AgentPoolsClientUpgradeNodeImageVersionResponse], error)
}

// interface guard to ensure that all methods defined in the AgentPoolsClient
// interface are implemented by the real Azure Go SDK AgentPoolsClient client.
var _ AgentPoolsClient = (*armcontainerservice.AgentPoolsClient)(nil)

func NewAgentPoolsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (AgentPoolsClient, error) {
	return armcontainerservice.NewAgentPoolsClient(subscriptionID, credential, options)
}

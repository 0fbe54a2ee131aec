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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

// AzureMonitorWorkspacesClient serves the managed Prometheus workspace of the metrics addon.
//
//go:generate $MOCKGEN -typed -source=monitor_clients.go -destination=mock_monitor_clients.go -package client AzureMonitorWorkspacesClient,DataCollectionRuleAssociationsClient,DataCollectionRulesClient,DataCollectionEndpointsClient
type AzureMonitorWorkspacesClient interface {
	Get(ctx context.Context, resourceGroupName string, azureMonitorWorkspaceName string,
		options *armmonitor.AzureMonitorWorkspacesClientGetOptions) (
		armmonitor.AzureMonitorWorkspacesClientGetResponse, error)
	Create(ctx context.Context, resourceGroupName string, azureMonitorWorkspaceName string,
		azureMonitorWorkspaceProperties armmonitor.AzureMonitorWorkspaceResource,
		options *armmonitor.AzureMonitorWorkspacesClientCreateOptions) (
		armmonitor.AzureMonitorWorkspacesClientCreateResponse, error)
}

var _ AzureMonitorWorkspacesClient = (*armmonitor.AzureMonitorWorkspacesClient)(nil)

// DataCollectionRuleAssociationsClient is only used for lookups and teardown.
// Associations are written with explicit bodies through the RawClient.
type DataCollectionRuleAssociationsClient interface {
	NewListByResourcePager(resourceURI string,
		options *armmonitor.DataCollectionRuleAssociationsClientListByResourceOptions) *runtime.Pager[armmonitor.DataCollectionRuleAssociationsClientListByResourceResponse]
	Delete(ctx context.Context, resourceURI string, associationName string,
		options *armmonitor.DataCollectionRuleAssociationsClientDeleteOptions) (
		armmonitor.DataCollectionRuleAssociationsClientDeleteResponse, error)
}

var _ DataCollectionRuleAssociationsClient = (*armmonitor.DataCollectionRuleAssociationsClient)(nil)

type DataCollectionRulesClient interface {
	Get(ctx context.Context, resourceGroupName string, dataCollectionRuleName string,
		options *armmonitor.DataCollectionRulesClientGetOptions) (
		armmonitor.DataCollectionRulesClientGetResponse, error)
	Delete(ctx context.Context, resourceGroupName string, dataCollectionRuleName string,
		options *armmonitor.DataCollectionRulesClientDeleteOptions) (
		armmonitor.DataCollectionRulesClientDeleteResponse, error)
}

var _ DataCollectionRulesClient = (*armmonitor.DataCollectionRulesClient)(nil)

type DataCollectionEndpointsClient interface {
	Delete(ctx context.Context, resourceGroupName string, dataCollectionEndpointName string,
		options *armmonitor.DataCollectionEndpointsClientDeleteOptions) (
		armmonitor.DataCollectionEndpointsClientDeleteResponse, error)
}

var _ DataCollectionEndpointsClient = (*armmonitor.DataCollectionEndpointsClient)(nil)

func NewAzureMonitorWorkspacesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (AzureMonitorWorkspacesClient, error) {
	return armmonitor.NewAzureMonitorWorkspacesClient(subscriptionID, credential, options)
}

func NewDataCollectionRuleAssociationsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (DataCollectionRuleAssociationsClient, error) {
	return armmonitor.NewDataCollectionRuleAssociationsClient(subscriptionID, credential, options)
}

func NewDataCollectionRulesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (DataCollectionRulesClient, error) {
	return armmonitor.NewDataCollectionRulesClient(subscriptionID, credential, options)
}

func NewDataCollectionEndpointsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (DataCollectionEndpointsClient, error) {
	return armmonitor.NewDataCollectionEndpointsClient(subscriptionID, credential, options)
}

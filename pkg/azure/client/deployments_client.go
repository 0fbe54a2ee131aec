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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

//go:generate $MOCKGEN -typed -source=deployments_client.go -destination=mock_deployments_client.go -package client DeploymentsClient
type DeploymentsClient interface {
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, deploymentName string,
		parameters armresources.Deployment,
		options *armresources.DeploymentsClientBeginCreateOrUpdateOptions) (
		*runtime.Poller[armresources.DeploymentsClientCreateOrUpdateResponse], error)
}

var _ DeploymentsClient = (*armresources.DeploymentsClient)(nil)

func NewDeploymentsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (DeploymentsClient, error) {
	return armresources.NewDeploymentsClient(subscriptionID, credential, options)
}

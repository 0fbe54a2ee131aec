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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
)

//go:generate $MOCKGEN -typed -source=resource_graph_client.go -destination=mock_resource_graph_client.go -package client ResourceGraphClient
type ResourceGraphClient interface {
	Resources(ctx context.Context, query armresourcegraph.QueryRequest,
		options *armresourcegraph.ClientResourcesOptions) (armresourcegraph.ClientResourcesResponse, error)
}

var _ ResourceGraphClient = (*armresourcegraph.Client)(nil)

func NewResourceGraphClient(credential azcore.TokenCredential, options *arm.ClientOptions) (ResourceGraphClient, error) {
	return armresourcegraph.NewClient(credential, options)
}

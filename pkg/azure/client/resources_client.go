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

// ResourcesClient is the generic resource client. It is used for resource types
// that have no typed SDK in go.mod, such as Log Analytics workspaces.
//
//go:generate $MOCKGEN -typed -source=resources_client.go -destination=mock_resources_client.go -package client ResourcesClient
type ResourcesClient interface {
	GetByID(ctx context.Context, resourceID string, apiVersion string,
		options *armresources.ClientGetByIDOptions) (armresources.ClientGetByIDResponse, error)
	BeginCreateOrUpdateByID(ctx context.Context, resourceID string, apiVersion string,
		parameters armresources.GenericResource,
		options *armresources.ClientBeginCreateOrUpdateByIDOptions) (
		*runtime.Poller[armresources.ClientCreateOrUpdateByIDResponse], error)
	BeginDeleteByID(ctx context.Context, resourceID string, apiVersion string,
		options *armresources.ClientBeginDeleteByIDOptions) (
		*runtime.Poller[armresources.ClientDeleteByIDResponse], error)
}

var _ ResourcesClient = (*armresources.Client)(nil)

func NewResourcesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ResourcesClient, error) {
	return armresources.NewClient(subscriptionID, credential, options)
}

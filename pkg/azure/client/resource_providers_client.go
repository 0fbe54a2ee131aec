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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceProvidersClient is an interface that defines the methods that
// we want to use from the ProvidersClient type in the Azure Go SDK.
// If you need to use a method provided by the Azure Go SDK ProvidersClient
// client but it is not defined in this interface then it has to be added here and all
// the types implementing this interface have to implement the new method.
//
//go:generate $MOCKGEN -typed -source=resource_providers_client.go -destination=mock_resource_providers_client.go -package client ResourceProvidersClient
type ResourceProvidersClient interface {
	Get(ctx context.Context, resourceProviderNamespace string,
		options *armresources.ProvidersClientGetOptions) (armresources.ProvidersClientGetResponse, error)
	Register(ctx context.Context, resourceProviderNamespace string,
		options *armresources.ProvidersClientRegisterOptions) (armresources.ProvidersClientRegisterResponse, error)
}

// interface guard to ensure that all methods defined in the ResourceProvidersClient
// interface are implemented by the real Azure Go SDK ProvidersClient
// client. This interface guard should always compile
var _ ResourceProvidersClient = (*armresources.ProvidersClient)(nil)

// NewResourceProvidersClient instantiates a ResourceProvidersClient instance from the Azure Go SDK ProvidersClient
// client.
func NewResourceProvidersClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ResourceProvidersClient, error) {
	return armresources.NewProvidersClient(subscriptionID, credential, options)
}

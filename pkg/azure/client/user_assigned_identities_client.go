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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/msi/armmsi"
)

// UserAssignedIdentitiesClient is used to resolve the client and principal ids
// of identities passed with --assign-identity and --assign-kubelet-identity.
//
//go:generate $MOCKGEN -typed -source=user_assigned_identities_client.go -destination=mock_user_assigned_identities_client.go -package client UserAssignedIdentitiesClient
type UserAssignedIdentitiesClient interface {
	Get(ctx context.Context,
		resourceGroupName string, resourceName string,
		options *armmsi.UserAssignedIdentitiesClientGetOptions) (armmsi.UserAssignedIdentitiesClientGetResponse, error)
}

// interface guard to ensure that all methods defined in the UserAssignedIdentitiesClient
// interface are implemented by the real Azure Go SDK UserAssignedIdentitiesClient
// client. This interface guard should always compile
var _ UserAssignedIdentitiesClient = (*armmsi.UserAssignedIdentitiesClient)(nil)

func NewUserAssignedIdentitiesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (UserAssignedIdentitiesClient, error) {
	return armmsi.NewUserAssignedIdentitiesClient(subscriptionID, credential, options)
}

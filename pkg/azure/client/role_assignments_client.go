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
	armauthorization "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
)

//go:generate $MOCKGEN -typed -source=role_assignments_client.go -destination=mock_role_assignments_client.go -package client RoleAssignmentsClient,RoleDefinitionsClient
type RoleAssignmentsClient interface {
	Create(ctx context.Context, scope string, roleAssignmentName string,
		parameters armauthorization.RoleAssignmentCreateParameters,
		options *armauthorization.RoleAssignmentsClientCreateOptions) (
		armauthorization.RoleAssignmentsClientCreateResponse, error)
	DeleteByID(ctx context.Context, roleAssignmentID string,
		options *armauthorization.RoleAssignmentsClientDeleteByIDOptions) (
		armauthorization.RoleAssignmentsClientDeleteByIDResponse, error)
	NewListForScopePager(scope string,
		options *armauthorization.RoleAssignmentsClientListForScopeOptions) *runtime.Pager[armauthorization.RoleAssignmentsClientListForScopeResponse]
}

var _ RoleAssignmentsClient = (*armauthorization.RoleAssignmentsClient)(nil)

type RoleDefinitionsClient interface {
	NewListPager(scope string,
		options *armauthorization.RoleDefinitionsClientListOptions) *runtime.Pager[armauthorization.RoleDefinitionsClientListResponse]
}

var _ RoleDefinitionsClient = (*armauthorization.RoleDefinitionsClient)(nil)

func NewRoleAssignmentsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (RoleAssignmentsClient, error) {
	return armauthorization.NewRoleAssignmentsClient(subscriptionID, credential, options)
}

func NewRoleDefinitionsClient(credential azcore.TokenCredential, options *arm.ClientOptions) (RoleDefinitionsClient, error) {
	return armauthorization.NewRoleDefinitionsClient(credential, options)
}

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
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	azcorearm "github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
)

// ClientBuilderType is a type that represents the type of the ClientBuilder
// interface. It is used to ensure that that interface is incompatible
// with other client builder interfaces that might have the same set of
// methods
type ClientBuilderType string

const (
	// ARMClientBuilderTypeValue is the value of the ClientBuilderType type that
	// represents the builder backed by the caller's own credential.
	ARMClientBuilderTypeValue ClientBuilderType = "ARM"
)

// Clients bundles every client a command may need for one subscription.
// Tests assemble it directly from mocks.
type Clients struct {
	SubscriptionID string

	ManagedClusters                ManagedClustersClient
	AgentPools                     AgentPoolsClient
	Snapshots                      SnapshotsClient
	ResourceGroups                 ResourceGroupsClient
	Providers                      ResourceProvidersClient
	Deployments                    DeploymentsClient
	Resources                      ResourcesClient
	RoleAssignments                RoleAssignmentsClient
	RoleDefinitions                RoleDefinitionsClient
	UserAssignedIdentities         UserAssignedIdentitiesClient
	MonitorWorkspaces              AzureMonitorWorkspacesClient
	DataCollectionRules            DataCollectionRulesClient
	DataCollectionEndpoints        DataCollectionEndpointsClient
	DataCollectionRuleAssociations DataCollectionRuleAssociationsClient
	PrometheusRuleGroups           PrometheusRuleGroupsClient
	ResourceGraph                  ResourceGraphClient
	Raw                            RawClient
}

type ClientBuilder interface {
	// BuilderType returns the type of the client builder. Its only
	// purpose is to ensure that this interface is incompatible
	// with other client builder interfaces that might have the same
	// set of methods. In that way we ensure that they cannot be used
	// interchangeably.
	BuilderType() ClientBuilderType
	// ForSubscription instantiates every client scoped to subscriptionID.
	ForSubscription(subscriptionID string) (*Clients, error)
}

type clientBuilder struct {
	credential azcore.TokenCredential
	options    *azcorearm.ClientOptions
}

var _ ClientBuilder = (*clientBuilder)(nil)

// NewClientBuilder instantiates a ClientBuilder. Clients instantiated with it use
// the provided credential and ARM client options.
func NewClientBuilder(credential azcore.TokenCredential, options *azcorearm.ClientOptions) ClientBuilder {
	return &clientBuilder{
		credential: credential,
		options:    options,
	}
}

func (b *clientBuilder) BuilderType() ClientBuilderType {
	return ARMClientBuilderTypeValue
}

func (b *clientBuilder) ForSubscription(subscriptionID string) (*Clients, error) {
	c := &Clients{SubscriptionID: subscriptionID}
	var err error

	if c.ManagedClusters, err = NewManagedClustersClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create managed clusters client: %w", err)
	}
	if c.AgentPools, err = NewAgentPoolsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create agent pools client: %w", err)
	}
	if c.Snapshots, err = NewSnapshotsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create snapshots client: %w", err)
	}
	if c.ResourceGroups, err = NewResourceGroupsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.Providers, err = NewResourceProvidersClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create resource providers client: %w", err)
	}
	if c.Deployments, err = NewDeploymentsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create deployments client: %w", err)
	}
	if c.Resources, err = NewResourcesClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create resources client: %w", err)
	}
	if c.RoleAssignments, err = NewRoleAssignmentsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create role assignments client: %w", err)
	}
	if c.RoleDefinitions, err = NewRoleDefinitionsClient(b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create role definitions client: %w", err)
	}
	if c.UserAssignedIdentities, err = NewUserAssignedIdentitiesClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create user assigned identities client: %w", err)
	}
	if c.MonitorWorkspaces, err = NewAzureMonitorWorkspacesClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create azure monitor workspaces client: %w", err)
	}
	if c.DataCollectionRules, err = NewDataCollectionRulesClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create data collection rules client: %w", err)
	}
	if c.DataCollectionEndpoints, err = NewDataCollectionEndpointsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create data collection endpoints client: %w", err)
	}
	if c.DataCollectionRuleAssociations, err = NewDataCollectionRuleAssociationsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create data collection rule associations client: %w", err)
	}
	if c.PrometheusRuleGroups, err = NewPrometheusRuleGroupsClient(subscriptionID, b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create prometheus rule groups client: %w", err)
	}
	if c.ResourceGraph, err = NewResourceGraphClient(b.credential, b.options); err != nil {
		return nil, fmt.Errorf("failed to create resource graph client: %w", err)
	}
	if c.Raw, err = NewRawClient(b.credential, b.options); err != nil {
		return nil, err
	}
	return c, nil
}

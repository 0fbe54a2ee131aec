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

package decorator

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/testutil"
)

const testSubscription = "1234567890ab-cdef"

type testMocks struct {
	clusters   *client.MockManagedClustersClient
	agentPools *client.MockAgentPoolsClient
	identities *client.MockUserAssignedIdentitiesClient
	roles      *MockRoleAssigner
	monitoring *MockMonitoringProvisioner
	prompter   *prompt.MockPrompter
}

type fakeWorkspaces struct {
	id string
}

func (f fakeWorkspaces) EnsureDefaultWorkspace(context.Context, string, string) (string, error) {
	return f.id, nil
}

func newTestContext(t *testing.T, mode models.DecoratorMode, raw *models.RawParameters) (*mcontext.Context, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		clusters:   client.NewMockManagedClustersClient(ctrl),
		agentPools: client.NewMockAgentPoolsClient(ctrl),
		identities: client.NewMockUserAssignedIdentitiesClient(ctrl),
		roles:      NewMockRoleAssigner(ctrl),
		monitoring: NewMockMonitoringProvisioner(ctrl),
		prompter:   prompt.NewMockPrompter(ctrl),
	}
	if raw.Name == "" {
		raw.Name = "c1"
	}
	if raw.ResourceGroupName == "" {
		raw.ResourceGroupName = "r1"
	}
	if raw.Location == "" && mode == models.ModeCreate {
		raw.Location = "eastus"
	}
	c := mcontext.New(raw, mode, &client.Clients{
		SubscriptionID:         testSubscription,
		ManagedClusters:        m.clusters,
		AgentPools:             m.agentPools,
		UserAssignedIdentities: m.identities,
	})
	c.Prompter = m.prompter
	c.ResolveSSHKey = func(_ context.Context, value string, _ bool) (string, error) {
		if value == "bad" {
			return "", clierrors.InvalidArgumentValue("invalid")
		}
		return "ssh-rsa AAAA", nil
	}
	return c, m
}

func newTestCreateDecorator(t *testing.T, raw *models.RawParameters) (*CreateDecorator, *testMocks) {
	c, m := newTestContext(t, models.ModeCreate, raw)
	d := NewCreateDecorator(c, m.roles, m.monitoring)
	d.RetryDelay = time.Millisecond
	d.PollInterval = time.Millisecond
	return d, m
}

func newTestUpdateDecorator(t *testing.T, raw *models.RawParameters) (*UpdateDecorator, *testMocks) {
	c, m := newTestContext(t, models.ModeUpdate, raw)
	d := NewUpdateDecorator(c, m.roles, m.monitoring)
	d.PollInterval = time.Millisecond
	return d, m
}

// donePoller is a poller whose PUT already finished with body.
func donePoller[T any](t *testing.T, body *armcontainerservice.ManagedCluster) *runtime.Poller[T] {
	t.Helper()
	if body.Properties == nil {
		body.Properties = &armcontainerservice.ManagedClusterProperties{}
	}
	return finishedPoller[T](t, "https://management.azure.com/subscriptions/sub/resourceGroups/r1/providers/Microsoft.ContainerService/managedClusters/c1", body)
}

func finishedPoller[T any](t *testing.T, url string, body any) *runtime.Poller[T] {
	t.Helper()
	return testutil.FinishedPoller[T](t, url, body)
}

// existingCluster is a fetched service principal cluster with one pool.
func existingCluster() *armcontainerservice.ManagedCluster {
	return &armcontainerservice.ManagedCluster{
		Location: to.Ptr("eastus"),
		Tags:     map[string]*string{"team": to.Ptr("aks")},
		Properties: &armcontainerservice.ManagedClusterProperties{
			DNSPrefix:  to.Ptr("c1-r1-123456"),
			EnableRBAC: to.Ptr(true),
			AgentPoolProfiles: []*armcontainerservice.ManagedClusterAgentPoolProfile{{
				Name:   to.Ptr("nodepool1"),
				Count:  to.Ptr[int32](3),
				VMSize: to.Ptr("Standard_DS2_v2"),
				Mode:   to.Ptr(armcontainerservice.AgentPoolModeSystem),
			}},
			ServicePrincipalProfile: &armcontainerservice.ManagedClusterServicePrincipalProfile{
				ClientID: to.Ptr("sp-client-id"),
			},
			NetworkProfile: &armcontainerservice.NetworkProfile{
				NetworkPlugin:   to.Ptr(armcontainerservice.NetworkPluginKubenet),
				LoadBalancerSKU: to.Ptr(armcontainerservice.LoadBalancerSKUStandard),
				OutboundType:    to.Ptr(armcontainerservice.OutboundTypeLoadBalancer),
				LoadBalancerProfile: &armcontainerservice.ManagedClusterLoadBalancerProfile{
					ManagedOutboundIPs: &armcontainerservice.ManagedClusterLoadBalancerProfileManagedOutboundIPs{Count: to.Ptr[int32](1)},
				},
			},
			AddonProfiles: map[string]*armcontainerservice.ManagedClusterAddonProfile{
				"azureKeyvaultSecretsProvider": {
					Enabled: to.Ptr(true),
					Config: map[string]*string{
						models.SecretRotationEnabled: to.Ptr("false"),
						models.RotationPollInterval:  to.Ptr("2m"),
					},
				},
			},
		},
	}
}

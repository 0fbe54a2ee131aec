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

package mcontext

import (
	"context"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func TestNodeScaling(t *testing.T) {
	testCases := []struct {
		name    string
		raw     models.RawParameters
		errMsg  string
		scaling NodeScaling
	}{
		{
			name:    "defaults",
			raw:     models.RawParameters{NodeCount: 3},
			scaling: NodeScaling{NodeCount: 3},
		},
		{
			name:   "min above max",
			raw:    models.RawParameters{NodeCount: 3, EnableClusterAutoscaler: true, MinCount: models.Some[int32](5), MaxCount: models.Some[int32](3)},
			errMsg: "Value of min-count should be less than or equal to value of max-count",
		},
		{
			name:   "count out of range",
			raw:    models.RawParameters{NodeCount: 10, EnableClusterAutoscaler: true, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			errMsg: "node-count is not in the range of min-count and max-count",
		},
		{
			name:   "missing max",
			raw:    models.RawParameters{NodeCount: 3, EnableClusterAutoscaler: true, MinCount: models.Some[int32](1)},
			errMsg: "Please specify both min-count and max-count when --enable-cluster-autoscaler enabled",
		},
		{
			name:   "counts without autoscaler",
			raw:    models.RawParameters{NodeCount: 3, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			errMsg: "min-count and max-count are required for --enable-cluster-autoscaler, please use the flag",
		},
		{
			name:    "autoscaler",
			raw:     models.RawParameters{NodeCount: 2, EnableClusterAutoscaler: true, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			scaling: NodeScaling{NodeCount: 2, Autoscaler: true, MinCount: to.Ptr[int32](1), MaxCount: to.Ptr[int32](3)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.raw
			c, _ := newTestContext(t, models.ModeCreate, &raw)
			s, err := c.NodeScaling()
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tc.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.scaling, s)
		})
	}
}

func TestAutoscalerUpdate(t *testing.T) {
	pool := func(enabled bool) *armcontainerservice.ManagedClusterAgentPoolProfile {
		return &armcontainerservice.ManagedClusterAgentPoolProfile{Name: to.Ptr("nodepool1"), EnableAutoScaling: to.Ptr(enabled)}
	}
	testCases := []struct {
		name      string
		raw       models.RawParameters
		pools     []*armcontainerservice.ManagedClusterAgentPoolProfile
		earlyExit bool
		errKind   clierrors.Kind
	}{
		{
			name:    "two actions",
			raw:     models.RawParameters{EnableClusterAutoscaler: true, DisableClusterAutoscaler: true},
			pools:   []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(false)},
			errKind: clierrors.KindMutuallyExclusiveArgument,
		},
		{
			name:    "several pools",
			raw:     models.RawParameters{DisableClusterAutoscaler: true},
			pools:   []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(true), pool(true)},
			errKind: clierrors.KindArgumentUsage,
		},
		{
			name:      "already enabled",
			raw:       models.RawParameters{EnableClusterAutoscaler: true, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			pools:     []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(true)},
			earlyExit: true,
		},
		{
			name:      "already disabled",
			raw:       models.RawParameters{DisableClusterAutoscaler: true},
			pools:     []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(false)},
			earlyExit: true,
		},
		{
			name:    "update while disabled",
			raw:     models.RawParameters{UpdateClusterAutoscaler: true, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			pools:   []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(false)},
			errKind: clierrors.KindInvalidArgumentValue,
		},
		{
			name:  "enable",
			raw:   models.RawParameters{EnableClusterAutoscaler: true, MinCount: models.Some[int32](1), MaxCount: models.Some[int32](3)},
			pools: []*armcontainerservice.ManagedClusterAgentPoolProfile{pool(false)},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.raw
			c, _ := newTestContext(t, models.ModeUpdate, &raw)
			mc := models.NewManagedCluster(models.DefaultAPIVersion, "eastus")
			mc.Properties.AgentPoolProfiles = tc.pools
			require.NoError(t, c.AttachMC(mc))

			_, err := c.AutoscalerUpdate(context.Background())
			switch {
			case tc.earlyExit:
				assert.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
			case tc.errKind != clierrors.KindUnknown:
				require.Error(t, err)
				assert.True(t, clierrors.IsKind(err, tc.errKind), err.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestVMSetType(t *testing.T) {
	testCases := []struct {
		name     string
		raw      models.RawParameters
		expected string
	}{
		{name: "default", expected: models.VMSetTypeVirtualMachineScaleSets},
		{name: "old version", raw: models.RawParameters{KubernetesVersion: "1.12.8"}, expected: models.VMSetTypeAvailabilitySet},
		{name: "case folded", raw: models.RawParameters{VMSetType: "availabilityset"}, expected: models.VMSetTypeAvailabilitySet},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.raw
			c, _ := newTestContext(t, models.ModeCreate, &raw)
			v, err := c.VMSetType(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestOutboundType(t *testing.T) {
	subnet := "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Network/virtualNetworks/v/subnets/default"
	testCases := []struct {
		name     string
		raw      models.RawParameters
		expected string
		errMsg   string
	}{
		{name: "default", expected: models.OutboundTypeLoadBalancer},
		{name: "unknown falls back", raw: models.RawParameters{OutboundType: "bogus"}, expected: models.OutboundTypeLoadBalancer},
		{
			name:   "udr with basic lb",
			raw:    models.RawParameters{OutboundType: models.OutboundTypeUserDefinedRouting, LoadBalancerSKU: "basic", VnetSubnetID: subnet},
			errMsg: "userDefinedRouting doesn't support basic load balancer sku",
		},
		{
			name:   "udr without subnet",
			raw:    models.RawParameters{OutboundType: models.OutboundTypeUserDefinedRouting},
			errMsg: "--vnet-subnet-id must be specified for userDefinedRouting and it must be pre-configured with a route table with egress rules",
		},
		{
			name:   "udr with outbound ips",
			raw:    models.RawParameters{OutboundType: models.OutboundTypeUserDefinedRouting, VnetSubnetID: subnet, LoadBalancerOutboundIPs: "/ip1"},
			errMsg: "userDefinedRouting doesn't support customizing a standard load balancer with IP addresses",
		},
		{
			name:     "udr",
			raw:      models.RawParameters{OutboundType: models.OutboundTypeUserDefinedRouting, VnetSubnetID: subnet},
			expected: models.OutboundTypeUserDefinedRouting,
		},
		{name: "managed nat", raw: models.RawParameters{OutboundType: models.OutboundTypeManagedNATGateway}, expected: models.OutboundTypeManagedNATGateway},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.raw
			c, _ := newTestContext(t, models.ModeCreate, &raw)
			v, err := c.OutboundType()
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Equal(t, tc.errMsg, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestNetworkSettings(t *testing.T) {
	c, _ := newTestContext(t, models.ModeCreate, &models.RawParameters{NetworkPlugin: "azure", PodCIDR: "10.244.0.0/16"})
	_, err := c.NetworkSettings()
	assert.True(t, clierrors.IsKind(err, clierrors.KindInvalidArgumentValue))

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{ServiceCIDR: "10.0.0.0/16"})
	_, err = c.NetworkSettings()
	assert.EqualError(t, err, "Please explicitly specify the network plugin type")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{LoadBalancerSKU: "Basic", EnablePrivateCluster: true})
	_, err = c.LoadBalancerSKU()
	assert.EqualError(t, err, "Please use standard load balancer for private cluster")
}

func TestWindowsGMSA(t *testing.T) {
	testCases := []struct {
		name      string
		raw       models.RawParameters
		confirm   *bool
		earlyExit bool
		errMsg    string
	}{
		{
			name:   "values without enable",
			raw:    models.RawParameters{GMSADNSServer: "10.0.0.10"},
			errMsg: "You only can set --gmsa-dns-server and --gmsa-root-domain-name when setting --enable-windows-gmsa.",
		},
		{
			name:   "only one value",
			raw:    models.RawParameters{EnableWindowsGMSA: true, GMSARootDomainName: "contoso.com"},
			errMsg: "You must set or not set --gmsa-dns-server and --gmsa-root-domain-name at the same time.",
		},
		{name: "declined", raw: models.RawParameters{EnableWindowsGMSA: true}, confirm: to.Ptr(false), earlyExit: true},
		{name: "confirmed", raw: models.RawParameters{EnableWindowsGMSA: true}, confirm: to.Ptr(true)},
		{name: "yes skips prompt", raw: models.RawParameters{EnableWindowsGMSA: true, Yes: true}},
		{name: "both values", raw: models.RawParameters{EnableWindowsGMSA: true, GMSADNSServer: "10.0.0.10", GMSARootDomainName: "contoso.com"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.raw
			c, m := newTestContext(t, models.ModeCreate, &raw)
			if tc.confirm != nil {
				m.prompter.EXPECT().Confirm(gomock.Any(), false).Return(*tc.confirm, nil)
			}
			_, err := c.WindowsGMSA()
			switch {
			case tc.earlyExit:
				assert.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
			case tc.errMsg != "":
				assert.EqualError(t, err, tc.errMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestWindowsCredentials(t *testing.T) {
	c, m := newTestContext(t, models.ModeCreate, &models.RawParameters{WindowsAdminUsername: "winadmin"})
	m.prompter.EXPECT().Password("windows-admin-password: ", true).Return("p@ss", nil)
	user, pass, err := c.WindowsCredentials()
	require.NoError(t, err)
	assert.Equal(t, "winadmin", user)
	assert.Equal(t, "p@ss", pass)

	c, m = newTestContext(t, models.ModeCreate, &models.RawParameters{WindowsAdminPassword: "p@ss"})
	m.prompter.EXPECT().Input(gomock.Any()).Return("", clierrors.ErrDecoratorEarlyExit)
	_, _, err = c.WindowsCredentials()
	assert.True(t, clierrors.IsKind(err, clierrors.KindNoTTY))

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnableWindowsGMSA: true})
	assert.EqualError(t, c.ValidateWindowsCredentialsForGMSA(), "Please set windows admin username and password before setting gmsa related configs.")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnableAHUB: true, DisableAHUB: true})
	_, err = c.EnableAHUB()
	assert.True(t, clierrors.IsKind(err, clierrors.KindMutuallyExclusiveArgument))
}

func TestAADGetters(t *testing.T) {
	c, _ := newTestContext(t, models.ModeCreate, &models.RawParameters{EnableAAD: true, AADClientAppID: "client"})
	_, err := c.EnableAAD()
	assert.True(t, clierrors.IsKind(err, clierrors.KindMutuallyExclusiveArgument))

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnableAzureRBAC: true})
	_, err = c.EnableAzureRBAC()
	assert.EqualError(t, err, "--enable-azure-rbac can only be used together with --enable-aad")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{AADServerAppID: "server"})
	c.TenantID = "tenant"
	tenant, err := c.AADTenantID()
	require.NoError(t, err)
	assert.Equal(t, "tenant", tenant)

	u, _ := newTestContext(t, models.ModeUpdate, &models.RawParameters{AADAdminGroupObjectIDs: models.Some("a,b")})
	mc := models.NewManagedCluster(models.DefaultAPIVersion, "eastus")
	require.NoError(t, u.AttachMC(mc))
	_, err = u.AADAdminGroupObjectIDs()
	assert.EqualError(t, err, `Cannot specify "--aad-admin-group-object-ids" if managed AAD is not enabled`)

	mc.Properties.AADProfile = &armcontainerservice.ManagedClusterAADProfile{Managed: to.Ptr(true)}
	ids, err := u.AADAdminGroupObjectIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	u.Raw.EnableAAD = true
	_, err = u.EnableAAD()
	assert.EqualError(t, err, `Cannot specify "--enable-aad" if managed AAD is already enabled`)
}

func TestAPIServerGetters(t *testing.T) {
	c, _ := newTestContext(t, models.ModeCreate, &models.RawParameters{EnablePrivateCluster: true, APIServerAuthorizedIPRanges: models.Some("20.1.1.1/32")})
	_, err := c.APIServerAuthorizedIPRanges()
	assert.EqualError(t, err, "--api-server-authorized-ip-ranges is not supported for private cluster")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{DisablePublicFQDN: true})
	_, err = c.EnablePrivateCluster()
	assert.EqualError(t, err, "--disable-public-fqdn should only be used with --enable-private-cluster")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnablePrivateCluster: true, FQDNSubdomain: "sub", PrivateDNSZone: "system"})
	_, err = c.FQDNSubdomain()
	assert.EqualError(t, err, "--fqdn-subdomain should only be used for private cluster with custom private dns zone")

	u, _ := newTestContext(t, models.ModeUpdate, &models.RawParameters{})
	require.NoError(t, u.AttachMC(models.NewManagedCluster(models.DefaultAPIVersion, "eastus")))
	ranges, err := u.APIServerAuthorizedIPRanges()
	require.NoError(t, err)
	assert.False(t, ranges.IsSet())

	u.Raw.APIServerAuthorizedIPRanges = models.Some("")
	ranges, err = u.APIServerAuthorizedIPRanges()
	require.NoError(t, err)
	v, ok := ranges.Get()
	require.True(t, ok)
	assert.Empty(t, v)

	u.Raw.EnablePublicFQDN = true
	_, err = u.EnablePublicFQDN()
	assert.EqualError(t, err, "--enable-public-fqdn can only be used for private cluster")
}

func TestAddonGetters(t *testing.T) {
	ctx := context.Background()

	c, _ := newTestContext(t, models.ModeCreate, &models.RawParameters{WorkspaceResourceID: "/ws"})
	_, err := c.EnableAddons()
	assert.EqualError(t, err, `"--workspace-resource-id" requires "--enable-addons monitoring".`)

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnableAddons: "virtual-node"})
	_, err = c.EnableAddons()
	assert.True(t, clierrors.IsKind(err, clierrors.KindRequiredArgumentMissing))

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{EnableAddons: "monitoring,monitoring"})
	_, err = c.EnableAddons()
	assert.EqualError(t, err, "Duplicate addon 'monitoring' found in option --enable-addons.")

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{WorkspaceResourceID: " subscriptions/s/resourceGroups/r/providers/Microsoft.OperationalInsights/workspaces/w/ "})
	id, err := c.WorkspaceResourceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/s/resourceGroups/r/providers/Microsoft.OperationalInsights/workspaces/w", id)

	c, _ = newTestContext(t, models.ModeCreate, &models.RawParameters{Location: "eastus"})
	c.Workspaces = fakeWorkspaces{id: "/subscriptions/s/default"}
	id, err = c.WorkspaceResourceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/subscriptions/s/default", id)

	u, _ := newTestContext(t, models.ModeUpdate, &models.RawParameters{EnableSecretRotation: true})
	require.NoError(t, u.AttachMC(models.NewManagedCluster(models.DefaultAPIVersion, "eastus")))
	_, err = u.EnableSecretRotation()
	assert.EqualError(t, err, "--enable-secret-rotation can only be specified when azure-keyvault-secrets-provider is enabled")
}

type fakeWorkspaces struct {
	id string
}

func (f fakeWorkspaces) EnsureDefaultWorkspace(context.Context, string, string) (string, error) {
	return f.id, nil
}

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
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func expectGet(m *testMocks, mc *armcontainerservice.ManagedCluster) {
	m.clusters.EXPECT().Get(gomock.Any(), "r1", "c1", nil).Return(armcontainerservice.ManagedClustersClientGetResponse{ManagedCluster: *mc}, nil)
}

func TestUpdateWithoutFlags(t *testing.T) {
	// no Get is expected on the cluster client
	d, _ := newTestUpdateDecorator(t, &models.RawParameters{})

	_, err := d.UpdateMCProfileDefault(context.Background())
	require.Error(t, err)
	assert.Equal(t, clierrors.KindRequiredArgumentMissing, clierrors.KindOf(err))
	assert.Contains(t, err.Error(), `Please specify one or more of "--enable-cluster-autoscaler" or "--disable-cluster-autoscaler"`)
	assert.Contains(t, err.Error(), `"--disable-azure-monitor-metrics".`)
}

func TestUpdateAttachAndDetachACR(t *testing.T) {
	// no Get is expected on the cluster client
	d, _ := newTestUpdateDecorator(t, &models.RawParameters{
		AttachACR: "acr1",
		DetachACR: "acr2",
		Supplied:  map[string]bool{"attach-acr": true, "detach-acr": true},
	})

	_, err := d.UpdateMCProfileDefault(context.Background())
	require.EqualError(t, err, `Cannot specify "--attach-acr" and "--detach-acr" at the same time.`)
	assert.Equal(t, clierrors.KindMutuallyExclusiveArgument, clierrors.KindOf(err))
}

func TestUpdateClusterNotFound(t *testing.T) {
	d, m := newTestUpdateDecorator(t, &models.RawParameters{Supplied: map[string]bool{"tags": true}})
	m.clusters.EXPECT().Get(gomock.Any(), "r1", "c1", nil).Return(armcontainerservice.ManagedClustersClientGetResponse{}, &azcore.ResponseError{StatusCode: http.StatusNotFound})

	_, err := d.UpdateMCProfileDefault(context.Background())
	require.EqualError(t, err, "The cluster 'c1' under resource group 'r1' was not found.")
	assert.Equal(t, clierrors.KindResourceNotFound, clierrors.KindOf(err))
}

func TestUpdateLoadBalancerProfile(t *testing.T) {
	const ip = "/subscriptions/sub/resourceGroups/net/providers/Microsoft.Network/publicIPAddresses/egress"

	testCases := []struct {
		name     string
		raw      *models.RawParameters
		expected *armcontainerservice.ManagedClusterLoadBalancerProfile
	}{
		{
			name: "idle timeout keeps the outbound ips",
			raw: &models.RawParameters{
				LoadBalancerIdleTimeout: models.Some[int32](10),
				Supplied:                map[string]bool{"load-balancer-idle-timeout": true},
			},
			expected: &armcontainerservice.ManagedClusterLoadBalancerProfile{
				ManagedOutboundIPs:   &armcontainerservice.ManagedClusterLoadBalancerProfileManagedOutboundIPs{Count: to.Ptr[int32](1)},
				IdleTimeoutInMinutes: to.Ptr[int32](10),
			},
		},
		{
			name: "outbound ips replace the managed ips",
			raw: &models.RawParameters{
				LoadBalancerOutboundIPs: ip,
				Supplied:                map[string]bool{"load-balancer-outbound-ips": true},
			},
			expected: &armcontainerservice.ManagedClusterLoadBalancerProfile{
				OutboundIPs: &armcontainerservice.ManagedClusterLoadBalancerProfileOutboundIPs{
					PublicIPs: []*armcontainerservice.ResourceReference{{ID: to.Ptr(ip)}},
				},
			},
		},
		{
			name: "managed ip count and ports",
			raw: &models.RawParameters{
				LoadBalancerManagedOutboundIPCount: models.Some[int32](4),
				LoadBalancerOutboundPorts:          models.Some[int32](0),
				Supplied: map[string]bool{
					"load-balancer-managed-outbound-ip-count": true,
					"load-balancer-outbound-ports":            true,
				},
			},
			expected: &armcontainerservice.ManagedClusterLoadBalancerProfile{
				ManagedOutboundIPs:     &armcontainerservice.ManagedClusterLoadBalancerProfileManagedOutboundIPs{Count: to.Ptr[int32](4)},
				AllocatedOutboundPorts: to.Ptr[int32](0),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, m := newTestUpdateDecorator(t, tc.raw)
			expectGet(m, existingCluster())

			mc, err := d.UpdateMCProfileDefault(context.Background())
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, mc.Properties.NetworkProfile.LoadBalancerProfile); diff != "" {
				t.Errorf("unexpected load balancer profile (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateAPIServerAuthorizedIPRanges(t *testing.T) {
	testCases := []struct {
		name     string
		raw      *models.RawParameters
		expected *armcontainerservice.ManagedClusterAPIServerAccessProfile
	}{
		{
			name: "empty value clears the ranges",
			raw: &models.RawParameters{
				APIServerAuthorizedIPRanges: models.Some(""),
				Supplied:                    map[string]bool{"api-server-authorized-ip-ranges": true},
			},
			expected: &armcontainerservice.ManagedClusterAPIServerAccessProfile{AuthorizedIPRanges: []*string{}},
		},
		{
			name: "ranges are set",
			raw: &models.RawParameters{
				APIServerAuthorizedIPRanges: models.Some("20.0.0.0/16, 30.0.0.1"),
				Supplied:                    map[string]bool{"api-server-authorized-ip-ranges": true},
			},
			expected: &armcontainerservice.ManagedClusterAPIServerAccessProfile{
				AuthorizedIPRanges: []*string{to.Ptr("20.0.0.0/16"), to.Ptr("30.0.0.1")},
			},
		},
		{
			name: "unset flag leaves the profile out",
			raw:  &models.RawParameters{Supplied: map[string]bool{"tags": true}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, m := newTestUpdateDecorator(t, tc.raw)
			expectGet(m, existingCluster())

			mc, err := d.UpdateMCProfileDefault(context.Background())
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, mc.Properties.APIServerAccessProfile); diff != "" {
				t.Errorf("unexpected api server access profile (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateIdentity(t *testing.T) {
	const msg = "Your cluster is using service principal, and you are going to update " +
		"the cluster to use systemassigned managed identity.\nAfter updating, your " +
		"cluster's control plane and addon pods will switch to use managed " +
		"identity, but kubelet will KEEP USING SERVICE PRINCIPAL " +
		"until you upgrade your agentpool.\n" +
		"Are you sure you want to perform this operation?"

	t.Run("refused transition exits early", func(t *testing.T) {
		d, m := newTestUpdateDecorator(t, &models.RawParameters{
			EnableManagedIdentity: true,
			Supplied:              map[string]bool{"enable-managed-identity": true},
		})
		expectGet(m, existingCluster())
		m.prompter.EXPECT().Confirm(msg, false).Return(false, nil)

		_, err := d.UpdateMCProfileDefault(context.Background())
		require.ErrorIs(t, err, clierrors.ErrDecoratorEarlyExit)
	})

	t.Run("--yes switches to system assigned", func(t *testing.T) {
		d, m := newTestUpdateDecorator(t, &models.RawParameters{
			EnableManagedIdentity: true,
			Yes:                   true,
			Supplied:              map[string]bool{"enable-managed-identity": true},
		})
		expectGet(m, existingCluster())

		mc, err := d.UpdateMCProfileDefault(context.Background())
		require.NoError(t, err)
		expected := &armcontainerservice.ManagedClusterIdentity{
			Type: to.Ptr(armcontainerservice.ResourceIdentityTypeSystemAssigned),
		}
		if diff := cmp.Diff(expected, mc.Identity); diff != "" {
			t.Errorf("unexpected identity (-want +got):\n%s", diff)
		}
	})
}

func TestUpdateTagsAndLabels(t *testing.T) {
	d, m := newTestUpdateDecorator(t, &models.RawParameters{
		Tags:     map[string]string{},
		Supplied: map[string]bool{"tags": true, "nodepool-labels": true},
	})
	expectGet(m, existingCluster())

	mc, err := d.UpdateMCProfileDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]*string{}, mc.Tags)
	assert.Equal(t, map[string]*string{}, mc.Properties.AgentPoolProfiles[0].NodeLabels)
}

func TestUpdateKeyVaultSecretsProvider(t *testing.T) {
	testCases := []struct {
		name     string
		raw      *models.RawParameters
		existing func(*armcontainerservice.ManagedCluster)
		expected map[string]*string
		err      string
	}{
		{
			name: "rotation and interval",
			raw: &models.RawParameters{
				EnableSecretRotation: true,
				RotationPollInterval: "5m",
				Supplied:             map[string]bool{"enable-secret-rotation": true, "rotation-poll-interval": true},
			},
			expected: map[string]*string{
				models.SecretRotationEnabled: to.Ptr("true"),
				models.RotationPollInterval:  to.Ptr("5m"),
			},
		},
		{
			name: "addon must be enabled",
			raw: &models.RawParameters{
				DisableSecretRotation: true,
				Supplied:              map[string]bool{"disable-secret-rotation": true},
			},
			existing: func(mc *armcontainerservice.ManagedCluster) {
				mc.Properties.AddonProfiles = nil
			},
			err: "--disable-secret-rotation can only be specified when azure-keyvault-secrets-provider is enabled",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			existing := existingCluster()
			if tc.existing != nil {
				tc.existing(existing)
			}
			d, m := newTestUpdateDecorator(t, tc.raw)
			expectGet(m, existing)

			mc, err := d.UpdateMCProfileDefault(context.Background())
			if tc.err != "" {
				require.EqualError(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, mc.Properties.AddonProfiles["azureKeyvaultSecretsProvider"].Config); diff != "" {
				t.Errorf("unexpected addon config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateMC(t *testing.T) {
	ctx := context.Background()
	d, m := newTestUpdateDecorator(t, &models.RawParameters{
		UptimeSLA: true,
		Supplied:  map[string]bool{"uptime-sla": true},
	})
	expectGet(m, existingCluster())
	m.clusters.EXPECT().BeginCreateOrUpdate(gomock.Any(), "r1", "c1", gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, _, _ string, mc armcontainerservice.ManagedCluster, _ *armcontainerservice.ManagedClustersClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcontainerservice.ManagedClustersClientCreateOrUpdateResponse], error) {
			assert.Equal(t, armcontainerservice.ManagedClusterSKUTierPaid, *mc.SKU.Tier)
			return donePoller[armcontainerservice.ManagedClustersClientCreateOrUpdateResponse](t, &mc), nil
		})

	mc, err := d.UpdateMCProfileDefault(ctx)
	require.NoError(t, err)
	cluster, err := d.UpdateMC(ctx, mc)
	require.NoError(t, err)
	assert.Equal(t, "c1-r1-123456", *cluster.Properties.DNSPrefix)

	_, err = d.UpdateMC(ctx, existingCluster())
	assert.Equal(t, clierrors.KindCLIInternal, clierrors.KindOf(err))
}

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
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/monitoring"
)

const attachACRWarning = "Your cluster is successfully created, but we failed to attach " +
	"acr to it, you can manually grant permission to the identity " +
	"named <ClUSTER_NAME>-agentpool in MC_ resource group to give " +
	"it permission to pull from ACR."

// decorator holds what the create and update pipelines share: the context,
// the side effect clients and the cluster write.
type decorator struct {
	Context    *mcontext.Context
	Roles      RoleAssigner
	Monitoring MonitoringProvisioner

	PollInterval time.Duration
}

// postEffects lists what must run once the write completes. An empty list
// lets the write honour --no-wait.
func (d *decorator) postEffects(ctx context.Context, managedIdentity bool) ([]PostEffect, error) {
	c := d.Context
	var effects []PostEffect

	if c.Intermediates.Flag(mcontext.KeyMonitoringAddonEnabled) {
		effects = append(effects, PostEffect{Name: "monitoring", Run: d.postMonitoring})
	}
	if c.Intermediates.Flag(mcontext.KeyIngressAppGWAddonEnabled) {
		effects = append(effects, PostEffect{Name: "ingress appgw role assignment", Run: func(ctx context.Context, cluster *armcontainerservice.ManagedCluster) error {
			d.Roles.AddIngressAppGWRoleAssignment(ctx, cluster)
			return nil
		}})
	}
	if c.Intermediates.Flag(mcontext.KeyVirtualNodeAddonEnabled) {
		effects = append(effects, PostEffect{Name: "virtual node role assignment", Run: func(ctx context.Context, cluster *armcontainerservice.ManagedCluster) error {
			d.Roles.AddVirtualNodeRoleAssignment(ctx, cluster, c.VnetSubnetID())
			return nil
		}})
	}

	acr, err := c.AttachACR(ctx)
	if err != nil {
		return nil, err
	}
	if managedIdentity && acr != "" {
		effects = append(effects, PostEffect{Name: "attach acr", Run: func(ctx context.Context, cluster *armcontainerservice.ManagedCluster) error {
			return d.postAttachACR(ctx, cluster, acr)
		}})
	}

	metrics, err := c.AzureMonitorMetrics()
	if err != nil {
		return nil, err
	}
	if metrics.Enable || metrics.Disable {
		effects = append(effects, PostEffect{Name: "azure monitor metrics", Run: func(ctx context.Context, _ *armcontainerservice.ManagedCluster) error {
			return d.postAzureMonitorMetrics(ctx, metrics)
		}})
	}
	return effects, nil
}

// put writes mc. When effects are pending it waits for the result even with
// --no-wait; immediate runs between sending the request and waiting.
func (d *decorator) put(ctx context.Context, mc *armcontainerservice.ManagedCluster, managedIdentity bool, immediate func(context.Context) error) (*armcontainerservice.ManagedCluster, error) {
	c := d.Context
	logger := logr.FromContextOrDiscard(ctx)

	effects, err := d.postEffects(ctx, managedIdentity)
	if err != nil {
		return nil, err
	}
	reqCtx, err := withCustomHeaders(ctx, c)
	if err != nil {
		return nil, err
	}

	poller, err := c.Clients.ManagedClusters.BeginCreateOrUpdate(reqCtx, c.ResourceGroupName(), c.Name(), *mc, nil)
	if err != nil {
		return nil, err
	}
	// the subnet grant after the request also needs the write to be waited on
	if len(effects) == 0 && !c.Intermediates.Flag(mcontext.KeyNeedPostCreationVnetPermissionGranting) {
		resp, err := client.PollUntilDone(ctx, poller, c.NoWait(), d.PollInterval)
		if err != nil {
			return nil, err
		}
		if c.NoWait() {
			return nil, nil
		}
		return &resp.ManagedCluster, nil
	}

	if immediate != nil {
		if err := immediate(ctx); err != nil {
			return nil, err
		}
	}
	resp, err := client.PollUntilDone(ctx, poller, false, d.PollInterval)
	if err != nil {
		return nil, err
	}
	cluster := &resp.ManagedCluster
	for _, e := range effects {
		logger.V(1).Info("Running post write step.", "step", e.Name)
		if err := e.Run(ctx, cluster); err != nil {
			return cluster, err
		}
	}
	return cluster, nil
}

// postMonitoring publishes metrics from the cluster identity, or with msi
// auth associates the data collection rule created earlier.
func (d *decorator) postMonitoring(ctx context.Context, cluster *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if !c.EnableMSIAuthForMonitoring() {
		// metrics are only ingested in the public cloud
		if strings.EqualFold(c.CloudName, client.CloudAzure) {
			id := monitoring.ClusterResourceID(c.SubscriptionID(ctx), c.ResourceGroupName(), c.Name())
			d.Roles.AddMonitoringRoleAssignment(ctx, cluster, id)
		}
		return nil
	}
	req, err := d.monitoringRequest(ctx, addonProfileOf(cluster, models.AddonMonitoring))
	if err != nil {
		return err
	}
	req.CreateDCRA = true
	_, err = d.Monitoring.EnsureContainerInsights(ctx, req)
	return err
}

func (d *decorator) postAttachACR(ctx context.Context, cluster *armcontainerservice.ManagedCluster, acr string) error {
	var kubelet *armcontainerservice.UserAssignedIdentity
	if cluster.Properties != nil && cluster.Properties.IdentityProfile != nil {
		kubelet = cluster.Properties.IdentityProfile[models.KubeletIdentityKey]
	}
	if kubelet == nil || kubelet.ObjectID == nil {
		logr.FromContextOrDiscard(ctx).Info(attachACRWarning)
		return nil
	}
	return d.Roles.EnsureACR(ctx, *kubelet.ObjectID, acr, false, false)
}

func (d *decorator) postAzureMonitorMetrics(ctx context.Context, m mcontext.AzureMonitorMetrics) error {
	c := d.Context
	location, err := c.Location(ctx)
	if err != nil {
		return err
	}
	req := monitoring.MetricsRequest{
		ClusterSubscriptionID:           c.SubscriptionID(ctx),
		ClusterResourceGroup:            c.ResourceGroupName(),
		ClusterName:                     c.Name(),
		ClusterRegion:                   location,
		AzureMonitorWorkspaceResourceID: m.WorkspaceResourceID,
		EnableWindowsRecordingRules:     m.EnableWindowsRecordRules,
	}
	if m.Disable {
		return d.Monitoring.DisableAzureMonitorMetrics(ctx, req)
	}
	return d.Monitoring.EnableAzureMonitorMetrics(ctx, req)
}

// addonProfileOf looks up the profile of a in the cluster, ignoring key case.
func addonProfileOf(mc *armcontainerservice.ManagedCluster, a models.Addon) *armcontainerservice.ManagedClusterAddonProfile {
	if mc == nil || mc.Properties == nil {
		return nil
	}
	for k, v := range mc.Properties.AddonProfiles {
		if strings.EqualFold(k, a.APIName()) {
			return v
		}
	}
	return nil
}

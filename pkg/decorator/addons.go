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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// AddonsDecorator turns addons of an existing cluster on or off.
type AddonsDecorator struct {
	decorator
}

func NewAddonsDecorator(c *mcontext.Context, roles RoleAssigner, mon MonitoringProvisioner) *AddonsDecorator {
	return &AddonsDecorator{decorator: decorator{Context: c, Roles: roles, Monitoring: mon}}
}

func (d *AddonsDecorator) fetch(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	mc, err := d.fetchMC(ctx)
	if err != nil {
		return nil, err
	}
	if mc.Properties == nil {
		mc.Properties = &armcontainerservice.ManagedClusterProperties{}
	}
	if mc.Properties.AddonProfiles == nil {
		mc.Properties.AddonProfiles = map[string]*armcontainerservice.ManagedClusterAddonProfile{}
	}
	return mc, nil
}

// Enable turns on addons. Ingress-appgw and virtual-node make the write
// wait so their role assignments can follow.
func (d *AddonsDecorator) Enable(ctx context.Context, addons []models.Addon) (*armcontainerservice.ManagedCluster, error) {
	c := d.Context
	raw := c.Raw
	mc, err := d.fetch(ctx)
	if err != nil {
		return nil, err
	}
	msiAuth := isMSIServicePrincipal(mc)
	profiles := mc.Properties.AddonProfiles

	for _, a := range addons {
		key := canonicalAddonKey(profiles, a)
		profile := profiles[key]
		if profile == nil {
			profile = models.NewAddonProfile(c.APIVersion, false, nil)
		}
		if profile.Enabled != nil && *profile.Enabled && alreadyEnabledChecked(a) {
			return nil, alreadyEnabledError(a, c.Name(), c.ResourceGroupName())
		}
		switch a {
		case models.AddonMonitoring:
			workspace := raw.WorkspaceResourceID
			if workspace == "" {
				location, err := c.Location(ctx)
				if err != nil {
					return nil, err
				}
				workspace, err = c.Workspaces.EnsureDefaultWorkspace(ctx, c.SubscriptionID(ctx), location)
				if err != nil {
					return nil, err
				}
			}
			useAAD := "false"
			if msiAuth && raw.EnableMSIAuthForMonitoring {
				useAAD = "true"
			}
			profile.Config = ptrMap(map[string]string{
				models.MonitoringWorkspaceResourceID: helpers.SanitizeWorkspaceResourceID(workspace),
				models.MonitoringUseAADAuth:          useAAD,
			})
		case models.AddonVirtualNode:
			if raw.ACISubnetName == "" {
				return nil, clierrors.RequiredArgumentMissing("The aci-connector addon requires setting a subnet name.")
			}
			profile.Config = ptrMap(map[string]string{models.VirtualNodeSubnetName: raw.ACISubnetName})
		case models.AddonIngressAppGW:
			profile = models.NewAddonProfile(c.APIVersion, true, c.AppGW().Config())
		case models.AddonConfCom:
			quoteHelper := "false"
			if raw.EnableSGXQuoteHelper {
				quoteHelper = "true"
			}
			profile = models.NewAddonProfile(c.APIVersion, true, map[string]string{models.ConfComQuoteHelperEnabled: quoteHelper})
		case models.AddonOpenServiceMesh:
			profile = models.NewAddonProfile(c.APIVersion, true, map[string]string{})
		case models.AddonKeyVaultSecretsProvider:
			config := map[string]string{models.SecretRotationEnabled: "false", models.RotationPollInterval: "2m"}
			if raw.EnableSecretRotation {
				config[models.SecretRotationEnabled] = "true"
			}
			if raw.RotationPollInterval != "" {
				config[models.RotationPollInterval] = raw.RotationPollInterval
			}
			profile = models.NewAddonProfile(c.APIVersion, true, config)
		}
		profile.Enabled = boolPtr(true)
		profiles[key] = profile
	}

	// monitoring is provisioned before the write, so it is not a post write effect
	if addonEnabled(mc, models.AddonMonitoring) {
		if err := d.prepareMonitoring(ctx, mc, msiAuth); err != nil {
			return nil, err
		}
	}
	if addonEnabled(mc, models.AddonIngressAppGW) {
		c.Intermediates.Set(ctx, mcontext.KeyIngressAppGWAddonEnabled, true, true)
	}
	if addonEnabled(mc, models.AddonVirtualNode) {
		// every pool shares the vnet, so the first pool's subnet is enough
		if raw.VnetSubnetID == "" && len(mc.Properties.AgentPoolProfiles) > 0 {
			raw.VnetSubnetID = deref(mc.Properties.AgentPoolProfiles[0].VnetSubnetID)
		}
		if raw.VnetSubnetID != "" {
			c.Intermediates.Set(ctx, mcontext.KeyVirtualNodeAddonEnabled, true, true)
		}
	}

	mc.Properties.ServicePrincipalProfile = nil
	cluster, err := d.put(ctx, mc, mcontext.IsMSICluster(mc), nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return cluster, nil
}

// prepareMonitoring checks the monitoring flags against the auth route and
// provisions the workspace side before the write.
func (d *AddonsDecorator) prepareMonitoring(ctx context.Context, mc *armcontainerservice.ManagedCluster, msiAuth bool) error {
	c := d.Context
	raw := c.Raw
	profile := addonProfileOf(mc, models.AddonMonitoring)
	if c.EnableMSIAuthForMonitoring() {
		if !msiAuth {
			return clierrors.ArgumentUsage("--enable-msi-auth-for-monitoring can not be used on clusters with service principal auth.")
		}
		req, err := d.monitoringRequest(ctx, profile)
		if err != nil {
			return err
		}
		req.CreateDCR, req.CreateDCRA = true, true
		_, err = d.Monitoring.EnsureContainerInsights(ctx, req)
		return err
	}

	switch {
	case raw.EnableSyslog:
		return clierrors.ArgumentUsage("--enable-syslog can not be used without MSI auth.")
	case raw.EnableHighLogScaleMode:
		return clierrors.ArgumentUsage("--enable-high-log-scale-mode can not be used without MSI auth.")
	case raw.DataCollectionSettings != "":
		return clierrors.ArgumentUsage("--data-collection-settings can not be used without MSI auth.")
	case raw.AMPLSResourceID != "":
		return clierrors.ArgumentUsage("--ampls-resource-id supported only in MSI auth mode.")
	}
	req, err := d.monitoringRequest(ctx, profile)
	if err != nil {
		return err
	}
	_, err = d.Monitoring.EnsureContainerInsights(ctx, req)
	return err
}

// Disable turns off addons. Turning off msi monitoring alone first removes
// the data collection rule association so the rule can be deleted later.
func (d *AddonsDecorator) Disable(ctx context.Context, addons []models.Addon) (*armcontainerservice.ManagedCluster, error) {
	c := d.Context
	mc, err := d.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if len(addons) == 1 && addons[0] == models.AddonMonitoring && addonEnabled(mc, models.AddonMonitoring) && c.EnableMSIAuthForMonitoring() {
		req, err := d.monitoringRequest(ctx, addonProfileOf(mc, models.AddonMonitoring))
		if err != nil {
			return nil, err
		}
		req.AADRoute = true
		req.RemoveMonitoring = true
		req.CreateDCRA = true
		req.EnableSyslog, req.EnableHighLogScaleMode = false, false
		req.DataCollectionSettings, req.AMPLSResourceID = "", ""
		if _, err := d.Monitoring.EnsureContainerInsights(ctx, req); err != nil {
			return nil, err
		}
	}

	profiles := mc.Properties.AddonProfiles
	for _, a := range addons {
		key := canonicalAddonKey(profiles, a)
		profile, ok := profiles[key]
		if !ok {
			if a != models.AddonKubeDashboard {
				return nil, clierrors.InvalidArgumentValue("The addon %s is not installed.", a.APIName())
			}
			profile = models.NewAddonProfile(c.APIVersion, false, nil)
			profiles[key] = profile
		}
		profile.Config = nil
		profile.Enabled = boolPtr(false)
	}

	mc.Properties.ServicePrincipalProfile = nil
	cluster, err := d.put(ctx, mc, mcontext.IsMSICluster(mc), nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return cluster, nil
}

// canonicalAddonKey moves a profile stored under a differently cased key to
// the canonical name and returns that name.
func canonicalAddonKey(profiles map[string]*armcontainerservice.ManagedClusterAddonProfile, a models.Addon) string {
	name := a.APIName()
	for k, v := range profiles {
		if k != name && strings.EqualFold(k, name) {
			delete(profiles, k)
			profiles[name] = v
		}
	}
	return name
}

func addonEnabled(mc *armcontainerservice.ManagedCluster, a models.Addon) bool {
	p := addonProfileOf(mc, a)
	return p != nil && p.Enabled != nil && *p.Enabled
}

// isMSIServicePrincipal reports clusters whose service principal is the
// "msi" placeholder the service sets for managed identity clusters.
func isMSIServicePrincipal(mc *armcontainerservice.ManagedCluster) bool {
	if mc.Properties == nil || mc.Properties.ServicePrincipalProfile == nil {
		return mcontext.IsMSICluster(mc)
	}
	return strings.EqualFold(deref(mc.Properties.ServicePrincipalProfile.ClientID), models.ServicePrincipalMSIID)
}

func alreadyEnabledChecked(a models.Addon) bool {
	switch a {
	case models.AddonMonitoring, models.AddonVirtualNode, models.AddonIngressAppGW, models.AddonConfCom,
		models.AddonOpenServiceMesh, models.AddonKeyVaultSecretsProvider:
		return true
	}
	return false
}

func alreadyEnabledError(a models.Addon, name, resourceGroup string) error {
	return clierrors.ArgumentUsage("The %s addon is already enabled for this managed cluster.\n"+
		"To change %s configuration, run \"aksctl addons disable -a %s -n %s -g %s\" before enabling it again.",
		a.Key(), a.Key(), a.Key(), name, resourceGroup)
}

func boolPtr(b bool) *bool { return &b }

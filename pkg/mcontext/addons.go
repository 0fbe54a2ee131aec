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
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func (c *Context) addonProfile(a models.Addon) *armcontainerservice.ManagedClusterAddonProfile {
	p := c.properties()
	if p == nil || p.AddonProfiles == nil {
		return nil
	}
	for name, profile := range p.AddonProfiles {
		if strings.EqualFold(name, a.APIName()) {
			return profile
		}
	}
	return nil
}

func (c *Context) addonConfig(a models.Addon, key string) (string, bool) {
	profile := c.addonProfile(a)
	if profile == nil || profile.Config == nil {
		return "", false
	}
	v, ok := profile.Config[key]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// AddonEnabled reports whether the cluster record has a enabled.
func (c *Context) AddonEnabled(a models.Addon) bool {
	profile := c.addonProfile(a)
	return profile != nil && deref(profile.Enabled)
}

// EnableAddons parses --enable-addons and checks the options each addon needs.
func (c *Context) EnableAddons() ([]models.Addon, error) {
	addons, err := models.ParseAddons(c.Raw.EnableAddons, "--enable-addons")
	if err != nil {
		return nil, clierrors.Wrap(clierrors.KindInvalidArgumentValue, err, err.Error())
	}
	if c.Raw.WorkspaceResourceID != "" && !models.ContainsAddon(addons, models.AddonMonitoring) {
		return nil, clierrors.RequiredArgumentMissing(`"--workspace-resource-id" requires "--enable-addons monitoring".`)
	}
	if models.ContainsAddon(addons, models.AddonVirtualNode) && (c.readACISubnetName() == "" || c.VnetSubnetID() == "") {
		return nil, clierrors.RequiredArgumentMissing(`"--enable-addons virtual-node" requires "--aci-subnet-name" and "--vnet-subnet-id".`)
	}
	return addons, nil
}

// WorkspaceResourceID returns the log analytics workspace of the monitoring
// addon, provisioning the regional default workspace when none was given.
func (c *Context) WorkspaceResourceID(ctx context.Context) (string, error) {
	if v, ok := c.addonConfig(models.AddonMonitoring, models.MonitoringWorkspaceResourceID); ok {
		return helpers.SanitizeWorkspaceResourceID(v), nil
	}
	id := c.Raw.WorkspaceResourceID
	if id == "" {
		if c.Workspaces == nil {
			return "", clierrors.CLIInternal("no workspace provisioner configured")
		}
		location, err := c.Location(ctx)
		if err != nil {
			return "", err
		}
		id, err = c.Workspaces.EnsureDefaultWorkspace(ctx, c.SubscriptionID(ctx), location)
		if err != nil {
			return "", err
		}
	}
	id = strings.Trim(strings.TrimSpace(id), "/")
	return "/" + id, nil
}

func (c *Context) EnableMSIAuthForMonitoring() bool {
	if v, ok := c.addonConfig(models.AddonMonitoring, models.MonitoringUseAADAuth); ok {
		return strings.EqualFold(v, "true")
	}
	return c.Raw.EnableMSIAuthForMonitoring
}

func (c *Context) EnableSyslog() bool { return c.Raw.EnableSyslog }

func (c *Context) EnableHighLogScaleMode() bool { return c.Raw.EnableHighLogScaleMode }

func (c *Context) AMPLSResourceID() (string, error) {
	if err := helpers.ValidateResourceIDFlag("ampls-resource-id", c.Raw.AMPLSResourceID); err != nil {
		return "", err
	}
	return c.Raw.AMPLSResourceID, nil
}

// DataCollectionSettings is the path of the --data-collection-settings file.
// It is only meaningful with managed identity authentication.
func (c *Context) DataCollectionSettings() (string, error) {
	path := c.Raw.DataCollectionSettings
	if path != "" && !c.EnableMSIAuthForMonitoring() {
		return "", clierrors.ArgumentUsage("--data-collection-settings can only be used with --enable-msi-auth-for-monitoring")
	}
	return path, nil
}

func (c *Context) readACISubnetName() string {
	if v, ok := c.addonConfig(models.AddonVirtualNode, models.VirtualNodeSubnetName); ok {
		return v
	}
	return c.Raw.ACISubnetName
}

func (c *Context) ACISubnetName() string { return c.readACISubnetName() }

// AppGW is the configuration of the application gateway ingress addon.
type AppGW struct {
	Name           string
	SubnetCIDR     string
	ID             string
	SubnetID       string
	WatchNamespace string
}

// Config renders the non-empty fields as addon config.
func (a AppGW) Config() map[string]string {
	out := map[string]string{}
	for k, v := range map[string]string{
		models.AppGWName:           a.Name,
		models.AppGWSubnetCIDR:     a.SubnetCIDR,
		models.AppGWID:             a.ID,
		models.AppGWSubnetID:       a.SubnetID,
		models.AppGWWatchNamespace: a.WatchNamespace,
	} {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func (c *Context) AppGW() AppGW {
	pick := func(key, raw string) string {
		if v, ok := c.addonConfig(models.AddonIngressAppGW, key); ok {
			return v
		}
		return raw
	}
	return AppGW{
		Name:           pick(models.AppGWName, c.Raw.AppGWName),
		SubnetCIDR:     pick(models.AppGWSubnetCIDR, c.Raw.AppGWSubnetCIDR),
		ID:             pick(models.AppGWID, c.Raw.AppGWID),
		SubnetID:       pick(models.AppGWSubnetID, c.Raw.AppGWSubnetID),
		WatchNamespace: pick(models.AppGWWatchNamespace, c.Raw.AppGWWatchNamespace),
	}
}

func (c *Context) EnableSGXQuoteHelper() bool {
	if v, ok := c.addonConfig(models.AddonConfCom, models.ConfComQuoteHelperEnabled); ok {
		return v == "true"
	}
	return c.Raw.EnableSGXQuoteHelper
}

func (c *Context) requireKeyVaultAddon(flag string) error {
	if c.isUpdate() && !c.AddonEnabled(models.AddonKeyVaultSecretsProvider) {
		return clierrors.InvalidArgumentValue("%s can only be specified when azure-keyvault-secrets-provider is enabled", flag)
	}
	return nil
}

func (c *Context) EnableSecretRotation() (bool, error) {
	if v, ok := c.addonConfig(models.AddonKeyVaultSecretsProvider, models.SecretRotationEnabled); ok && c.isCreate() {
		return v == "true", nil
	}
	if c.Raw.EnableSecretRotation {
		if err := c.requireKeyVaultAddon("--enable-secret-rotation"); err != nil {
			return false, err
		}
	}
	return c.Raw.EnableSecretRotation, nil
}

func (c *Context) DisableSecretRotation() (bool, error) {
	if c.Raw.DisableSecretRotation {
		if err := c.requireKeyVaultAddon("--disable-secret-rotation"); err != nil {
			return false, err
		}
	}
	return c.Raw.DisableSecretRotation, nil
}

func (c *Context) RotationPollInterval() (string, error) {
	if v, ok := c.addonConfig(models.AddonKeyVaultSecretsProvider, models.RotationPollInterval); ok && c.isCreate() {
		return v, nil
	}
	if c.Raw.RotationPollInterval != "" {
		if err := c.requireKeyVaultAddon("--rotation-poll-interval"); err != nil {
			return "", err
		}
	}
	return c.Raw.RotationPollInterval, nil
}

// AzureMonitorMetrics is the managed prometheus request.
type AzureMonitorMetrics struct {
	Enable                   bool
	Disable                  bool
	WorkspaceResourceID      string
	EnableWindowsRecordRules bool
}

func (c *Context) AzureMonitorMetrics() (AzureMonitorMetrics, error) {
	m := AzureMonitorMetrics{
		Enable:                   c.Raw.EnableAzureMonitorMetrics,
		Disable:                  c.Raw.DisableAzureMonitorMetrics,
		WorkspaceResourceID:      c.Raw.AzureMonitorWorkspaceResourceID,
		EnableWindowsRecordRules: c.Raw.EnableWindowsRecordingRules,
	}
	if m.Enable && m.Disable {
		return m, clierrors.MutuallyExclusiveArgument("Cannot specify --enable-azure-monitor-metrics and --disable-azure-monitor-metrics at the same time.")
	}
	if !m.Enable && (m.WorkspaceResourceID != "" || m.EnableWindowsRecordRules) {
		return m, clierrors.RequiredArgumentMissing("--azure-monitor-workspace-resource-id and --enable-windows-recording-rules can only be used with --enable-azure-monitor-metrics.")
	}
	if err := helpers.ValidateResourceIDFlag("azure-monitor-workspace-resource-id", m.WorkspaceResourceID); err != nil {
		return m, err
	}
	return m, nil
}

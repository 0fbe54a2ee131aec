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
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const (
	identitySPN            = "spn"
	identitySystemAssigned = "systemassigned"
	identityUserAssigned   = "userassigned"
)

// UpdateDecorator applies the requested changes to a fetched cluster and writes it back.
type UpdateDecorator struct {
	decorator
}

func NewUpdateDecorator(c *mcontext.Context, roles RoleAssigner, mon MonitoringProvisioner) *UpdateDecorator {
	return &UpdateDecorator{decorator: decorator{Context: c, Roles: roles, Monitoring: mon}}
}

func (d *UpdateDecorator) Steps() []Step {
	return []Step{
		{Name: "agent pool profiles", Apply: d.updateAgentPoolProfiles},
		{Name: "auto scaler profile", Apply: d.updateAutoScalerProfile},
		{Name: "tags", Apply: d.updateTags},
		{Name: "attach or detach acr", Apply: d.processAttachDetachACR},
		{Name: "sku", Apply: d.updateSKU},
		{Name: "load balancer profile", Apply: d.updateLoadBalancerProfile},
		{Name: "nat gateway profile", Apply: d.updateNATGatewayProfile},
		{Name: "local accounts", Apply: d.updateLocalAccounts},
		{Name: "api server access profile", Apply: d.updateAPIServerAccessProfile},
		{Name: "windows profile", Apply: d.updateWindowsProfile},
		{Name: "aad profile", Apply: d.updateAADProfile},
		{Name: "auto upgrade profile", Apply: d.updateAutoUpgradeProfile},
		{Name: "identity", Apply: d.updateIdentity},
		{Name: "addon profiles", Apply: d.updateAddonProfiles},
	}
}

// CheckRawParameters ends the update before anything is read from the
// cloud when no flag that changes the cluster was passed.
func (d *UpdateDecorator) CheckRawParameters() error {
	if err := helpers.ValidateACR(d.Context.Raw.AttachACR, d.Context.Raw.DetachACR); err != nil {
		return err
	}
	for _, f := range models.UpdateFlags {
		if d.Context.Raw.WasSupplied(f) {
			return nil
		}
	}
	options := make([]string, 0, len(models.UpdateFlags))
	for _, f := range models.UpdateFlags {
		options = append(options, fmt.Sprintf("%q", "--"+f))
	}
	return clierrors.RequiredArgumentMissing("Please specify one or more of %s.", strings.Join(options, " or "))
}

// FetchMC reads the current cluster and attaches it to the context.
func (d *UpdateDecorator) FetchMC(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	return d.fetchMC(ctx)
}

func (d *decorator) fetchMC(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	c := d.Context
	resp, err := c.Clients.ManagedClusters.Get(ctx, c.ResourceGroupName(), c.Name(), nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.ResourceNotFound("The cluster '%s' under resource group '%s' was not found.", c.Name(), c.ResourceGroupName())
		}
		return nil, clierrors.MapAzureError(err)
	}
	mc := &resp.ManagedCluster
	if err := c.AttachMC(mc); err != nil {
		return nil, err
	}
	return mc, nil
}

// UpdateMCProfileDefault checks the flags, fetches the cluster and runs every update step.
func (d *UpdateDecorator) UpdateMCProfileDefault(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	if err := d.CheckRawParameters(); err != nil {
		return nil, err
	}
	mc, err := d.FetchMC(ctx)
	if err != nil {
		return nil, err
	}
	if mc.Properties == nil {
		mc.Properties = &armcontainerservice.ManagedClusterProperties{}
	}
	if err := fold(ctx, mc, d.Steps()); err != nil {
		return nil, err
	}
	return mc, nil
}

// UpdateMC writes the cluster back, running the same post write effects as create.
func (d *UpdateDecorator) UpdateMC(ctx context.Context, mc *armcontainerservice.ManagedCluster) (*armcontainerservice.ManagedCluster, error) {
	if mc == nil || d.Context.MC() != mc {
		return nil, clierrors.CLIInternal("Inconsistent state detected. The incoming `mc` is not the same as the `mc` in the context.")
	}
	cluster, err := d.put(ctx, mc, mcontext.IsMSICluster(mc), nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return cluster, nil
}

func (d *UpdateDecorator) updateAgentPoolProfiles(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if len(mc.Properties.AgentPoolProfiles) == 0 {
		return clierrors.Unknown("Encounter an unexpected error while getting agent pool profiles from the cluster in the process of updating agentpool profile.")
	}
	u, err := c.AutoscalerUpdate(ctx)
	if err != nil {
		return err
	}
	pool := mc.Properties.AgentPoolProfiles[0]
	switch {
	case u.Enable:
		pool.EnableAutoScaling = to.Ptr(true)
		pool.MinCount = u.MinCount
		pool.MaxCount = u.MaxCount
	case u.Update:
		pool.MinCount = u.MinCount
		pool.MaxCount = u.MaxCount
	case u.Disable:
		pool.EnableAutoScaling = to.Ptr(false)
		pool.MinCount = nil
		pool.MaxCount = nil
	}

	// labels go to every pool; an empty value clears them
	if c.Raw.WasSupplied("nodepool-labels") {
		labels := c.NodepoolLabels()
		for _, p := range mc.Properties.AgentPoolProfiles {
			p.NodeLabels = ptrMap(labels)
			if p.NodeLabels == nil {
				p.NodeLabels = map[string]*string{}
			}
		}
	}
	return nil
}

func (d *UpdateDecorator) updateAutoScalerProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if !c.Raw.WasSupplied("cluster-autoscaler-profile") {
		return nil
	}
	profile, err := c.ClusterAutoscalerProfile()
	if err != nil {
		return err
	}
	p, err := models.NewAutoScalerProfile(c.APIVersion, profile)
	if err != nil {
		return err
	}
	mc.Properties.AutoScalerProfile = p
	return nil
}

func (d *UpdateDecorator) updateTags(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if !c.Raw.WasSupplied("tags") {
		return nil
	}
	mc.Tags = ptrMap(c.Tags())
	if mc.Tags == nil {
		mc.Tags = map[string]*string{}
	}
	return nil
}

func (d *UpdateDecorator) processAttachDetachACR(ctx context.Context, _ *armcontainerservice.ManagedCluster) error {
	c := d.Context
	attach, err := c.AttachACR(ctx)
	if err != nil {
		return err
	}
	detach := c.DetachACR()
	if attach == "" && detach == "" {
		return nil
	}
	assignee, isSP, err := c.AssigneeFromIdentityOrSP()
	if err != nil {
		return err
	}
	if attach != "" {
		if err := d.Roles.EnsureACR(ctx, assignee, attach, isSP, false); err != nil {
			return err
		}
	}
	if detach != "" {
		if err := d.Roles.EnsureACR(ctx, assignee, detach, isSP, true); err != nil {
			return err
		}
	}
	return nil
}

func (d *UpdateDecorator) updateSKU(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	uptime, err := c.UptimeSLA()
	if err != nil {
		return err
	}
	noUptime, err := c.NoUptimeSLA()
	if err != nil {
		return err
	}
	if uptime {
		mc.SKU = models.NewSKU(c.APIVersion, models.SKUTierPaid)
	}
	if noUptime {
		mc.SKU = models.NewSKU(c.APIVersion, models.SKUTierFree)
	}
	return nil
}

// updateLoadBalancerProfile changes only the given fields. The three
// outbound ip sources replace each other.
func (d *UpdateDecorator) updateLoadBalancerProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if mc.Properties.NetworkProfile == nil {
		return clierrors.Unknown("Encounter an unexpected error while getting network profile from the cluster in the process of updating its load balancer profile.")
	}
	count, err := c.LoadBalancerManagedOutboundIPCount()
	if err != nil {
		return err
	}
	ips, err := c.LoadBalancerOutboundIPs()
	if err != nil {
		return err
	}
	prefixes, err := c.LoadBalancerOutboundIPPrefixes()
	if err != nil {
		return err
	}
	ports, err := c.LoadBalancerOutboundPorts()
	if err != nil {
		return err
	}
	idle, err := c.LoadBalancerIdleTimeout()
	if err != nil {
		return err
	}
	if !count.IsSet() && len(ips) == 0 && len(prefixes) == 0 && !ports.IsSet() && !idle.IsSet() {
		return nil
	}

	np := mc.Properties.NetworkProfile
	if np.LoadBalancerProfile == nil {
		np.LoadBalancerProfile = models.NewLoadBalancerProfile(c.APIVersion)
	}
	lb := np.LoadBalancerProfile
	if count.IsSet() || len(ips) > 0 || len(prefixes) > 0 {
		lb.ManagedOutboundIPs = nil
		lb.OutboundIPs = nil
		lb.OutboundIPPrefixes = nil
	}
	if count.IsSet() {
		lb.ManagedOutboundIPs = &armcontainerservice.ManagedClusterLoadBalancerProfileManagedOutboundIPs{Count: count.Ptr()}
	}
	if len(ips) > 0 {
		lb.OutboundIPs = &armcontainerservice.ManagedClusterLoadBalancerProfileOutboundIPs{PublicIPs: references(ips)}
	}
	if len(prefixes) > 0 {
		lb.OutboundIPPrefixes = &armcontainerservice.ManagedClusterLoadBalancerProfileOutboundIPPrefixes{PublicIPPrefixes: references(prefixes)}
	}
	if ports.IsSet() {
		lb.AllocatedOutboundPorts = ports.Ptr()
	}
	if idle.IsSet() {
		lb.IdleTimeoutInMinutes = idle.Ptr()
	}
	return nil
}

func (d *UpdateDecorator) updateNATGatewayProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	count, err := c.NATGatewayManagedOutboundIPCount()
	if err != nil {
		return err
	}
	idle, err := c.NATGatewayIdleTimeout()
	if err != nil {
		return err
	}
	if !count.IsSet() && !idle.IsSet() {
		return nil
	}
	np := mc.Properties.NetworkProfile
	if np == nil {
		return clierrors.Unknown("Unexpectedly get an empty network profile in the process of updating nat gateway profile.")
	}
	if np.NatGatewayProfile == nil {
		np.NatGatewayProfile = models.NewNATGatewayProfile(c.APIVersion)
	}
	if count.IsSet() {
		np.NatGatewayProfile.ManagedOutboundIPProfile = &armcontainerservice.ManagedClusterManagedOutboundIPProfile{Count: count.Ptr()}
	}
	if idle.IsSet() {
		np.NatGatewayProfile.IdleTimeoutInMinutes = idle.Ptr()
	}
	return nil
}

func (d *UpdateDecorator) updateLocalAccounts(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	disable, err := c.DisableLocalAccounts()
	if err != nil {
		return err
	}
	enable, err := c.EnableLocalAccounts()
	if err != nil {
		return err
	}
	if disable {
		mc.Properties.DisableLocalAccounts = to.Ptr(true)
	}
	if enable {
		mc.Properties.DisableLocalAccounts = to.Ptr(false)
	}
	return nil
}

// updateAPIServerAccessProfile keeps the profile absent when it was absent
// and nothing in it changed.
func (d *UpdateDecorator) updateAPIServerAccessProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	ranges, err := c.APIServerAuthorizedIPRanges()
	if err != nil {
		return err
	}
	disablePublicFQDN, err := c.DisablePublicFQDN()
	if err != nil {
		return err
	}
	enablePublicFQDN, err := c.EnablePublicFQDN()
	if err != nil {
		return err
	}
	if !ranges.IsSet() && !disablePublicFQDN && !enablePublicFQDN {
		return nil
	}

	ap := mc.Properties.APIServerAccessProfile
	if ap == nil {
		ap = models.NewAPIServerAccessProfile(c.APIVersion)
	}
	if r, ok := ranges.Get(); ok {
		// an empty list turns the allow list off
		ap.AuthorizedIPRanges = ptrSlice(r)
		if ap.AuthorizedIPRanges == nil {
			ap.AuthorizedIPRanges = []*string{}
		}
	}
	if disablePublicFQDN {
		ap.EnablePrivateClusterPublicFQDN = to.Ptr(false)
	}
	if enablePublicFQDN {
		ap.EnablePrivateClusterPublicFQDN = to.Ptr(true)
	}
	mc.Properties.APIServerAccessProfile = ap
	return nil
}

func (d *UpdateDecorator) updateWindowsProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	enableAHUB, err := c.EnableAHUB()
	if err != nil {
		return err
	}
	disableAHUB, err := c.DisableAHUB()
	if err != nil {
		return err
	}
	password := c.Raw.WindowsAdminPassword
	gmsaRequested := c.Raw.EnableWindowsGMSA
	if !enableAHUB && !disableAHUB && password == "" && !gmsaRequested {
		return nil
	}
	wp := mc.Properties.WindowsProfile
	if wp == nil {
		return clierrors.Unknown("Encounter an unexpected error while getting windows profile from the cluster in the process of update.")
	}
	if enableAHUB {
		wp.LicenseType = to.Ptr(armcontainerservice.LicenseType(models.LicenseTypeWindowsServer))
	}
	if disableAHUB {
		wp.LicenseType = to.Ptr(armcontainerservice.LicenseType(models.LicenseTypeNone))
	}
	if password != "" {
		wp.AdminPassword = to.Ptr(password)
	}
	if gmsaRequested {
		gmsa, err := c.WindowsGMSA()
		if err != nil {
			return err
		}
		wp.GmsaProfile = &armcontainerservice.WindowsGmsaProfile{
			Enabled:        to.Ptr(true),
			DNSServer:      nonZero(gmsa.DNSServer),
			RootDomainName: nonZero(gmsa.RootDomainName),
		}
	}
	return nil
}

func (d *UpdateDecorator) updateAADProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	enable, err := c.EnableAAD()
	if err != nil {
		return err
	}
	if enable {
		aad := models.NewAADProfile(c.APIVersion)
		aad.Managed = to.Ptr(true)
		mc.Properties.AADProfile = aad
	}
	tenant, err := c.AADTenantID()
	if err != nil {
		return err
	}
	groups, err := c.AADAdminGroupObjectIDs()
	if err != nil {
		return err
	}
	enableRBAC, err := c.EnableAzureRBAC()
	if err != nil {
		return err
	}
	disableRBAC, err := c.DisableAzureRBAC()
	if err != nil {
		return err
	}
	if tenant == "" && groups == nil && !enableRBAC && !disableRBAC {
		return nil
	}
	aad := mc.Properties.AADProfile
	if aad == nil {
		return clierrors.Unknown("Encounter an unexpected error while getting aad profile from the cluster in the process of update.")
	}
	if tenant != "" {
		aad.TenantID = to.Ptr(tenant)
	}
	if groups != nil {
		aad.AdminGroupObjectIDs = ptrSlice(groups)
	}
	if enableRBAC {
		aad.EnableAzureRBAC = to.Ptr(true)
	}
	if disableRBAC {
		aad.EnableAzureRBAC = to.Ptr(false)
	}
	return nil
}

func (d *UpdateDecorator) updateAutoUpgradeProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	channel := d.Context.AutoUpgradeChannel()
	if channel == "" {
		return nil
	}
	if mc.Properties.AutoUpgradeProfile == nil {
		mc.Properties.AutoUpgradeProfile = &armcontainerservice.ManagedClusterAutoUpgradeProfile{}
	}
	mc.Properties.AutoUpgradeProfile.UpgradeChannel = to.Ptr(armcontainerservice.UpgradeChannel(channel))
	return nil
}

// updateIdentity asks before moving the cluster to another identity type.
func (d *UpdateDecorator) updateIdentity(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	current := identitySPN
	if mc.Identity != nil && mc.Identity.Type != nil {
		current = strings.ToLower(string(*mc.Identity.Type))
	}
	goal := current
	assignIdentity, err := c.AssignIdentity()
	if err != nil {
		return err
	}
	mi, err := c.EnableManagedIdentity()
	if err != nil {
		return err
	}
	if mi {
		goal = identitySystemAssigned
		if assignIdentity != "" {
			goal = identityUserAssigned
		}
	}
	if current == goal {
		return nil
	}

	var msg string
	if current == identitySPN {
		msg = fmt.Sprintf("Your cluster is using service principal, and you are going to update "+
			"the cluster to use %s managed identity.\nAfter updating, your "+
			"cluster's control plane and addon pods will switch to use managed "+
			"identity, but kubelet will KEEP USING SERVICE PRINCIPAL "+
			"until you upgrade your agentpool.\n"+
			"Are you sure you want to perform this operation?", goal)
	} else {
		msg = fmt.Sprintf("Your cluster is already using %s managed identity, and you are going to "+
			"update the cluster to use %s managed identity.\n"+
			"Are you sure you want to perform this operation?", current, goal)
	}
	ok, err := c.Confirm(msg)
	if err != nil {
		return err
	}
	if !ok {
		return clierrors.ErrDecoratorEarlyExit
	}

	if goal == identitySystemAssigned {
		mc.Identity = &armcontainerservice.ManagedClusterIdentity{
			Type: to.Ptr(armcontainerservice.ResourceIdentityType(models.IdentityTypeSystemAssigned)),
		}
		return nil
	}
	mc.Identity = &armcontainerservice.ManagedClusterIdentity{
		Type: to.Ptr(armcontainerservice.ResourceIdentityType(models.IdentityTypeUserAssigned)),
		UserAssignedIdentities: map[string]*armcontainerservice.ManagedServiceIdentityUserAssignedIdentitiesValue{
			assignIdentity: {},
		},
	}
	return nil
}

// updateAddonProfiles records which role assigning addons are on and edits
// the secrets provider config in place.
func (d *UpdateDecorator) updateAddonProfiles(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	enabled := func(a models.Addon) bool {
		p := addonProfileOf(mc, a)
		return p != nil && deref(p.Enabled)
	}
	if mc.Properties.AddonProfiles != nil {
		c.Intermediates.Set(ctx, mcontext.KeyMonitoringAddonEnabled, enabled(models.AddonMonitoring), true)
		c.Intermediates.Set(ctx, mcontext.KeyIngressAppGWAddonEnabled, enabled(models.AddonIngressAppGW), true)
		c.Intermediates.Set(ctx, mcontext.KeyVirtualNodeAddonEnabled, enabled(models.AddonVirtualNode), true)
	}

	enableRotation, err := c.EnableSecretRotation()
	if err != nil {
		return err
	}
	disableRotation, err := c.DisableSecretRotation()
	if err != nil {
		return err
	}
	interval, err := c.RotationPollInterval()
	if err != nil {
		return err
	}
	kv := addonProfileOf(mc, models.AddonKeyVaultSecretsProvider)
	if kv == nil || (!enableRotation && !disableRotation && interval == "") {
		return nil
	}
	if kv.Config == nil {
		kv.Config = map[string]*string{}
	}
	if enableRotation {
		kv.Config[models.SecretRotationEnabled] = to.Ptr("true")
	}
	if disableRotation {
		kv.Config[models.SecretRotationEnabled] = to.Ptr("false")
	}
	if interval != "" {
		kv.Config[models.RotationPollInterval] = to.Ptr(interval)
	}
	return nil
}

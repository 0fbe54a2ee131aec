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
	"errors"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/monitoring"
)

const vnetPermissionPrompt = "It is highly recommended to use USER assigned identity " +
	"(option --assign-identity) when you want to bring your own " +
	"subnet, which will have no latency for the role assignment to " +
	"take effect. When using SYSTEM assigned identity, " +
	"aksctl will grant Network Contributor role to the " +
	"system assigned identity after the cluster is created, and " +
	"the role assignment will take some time to take effect, see " +
	"https://docs.microsoft.com/azure/aks/use-managed-identity, " +
	"proceed to create cluster with system assigned identity?"

const subnetRoleAssignmentWarning = "Could not create a role assignment for subnet. Are you an Owner on this subscription?"

// CreateDecorator builds the body of a new cluster step by step and creates it.
type CreateDecorator struct {
	decorator

	RetryAttempts int
	RetryDelay    time.Duration
}

func NewCreateDecorator(c *mcontext.Context, roles RoleAssigner, mon MonitoringProvisioner) *CreateDecorator {
	return &CreateDecorator{
		decorator:     decorator{Context: c, Roles: roles, Monitoring: mon},
		RetryAttempts: spPropagationAttempts,
		RetryDelay:    spPropagationDelay,
	}
}

// Steps lists the create pipeline after the cluster record exists.
func (d *CreateDecorator) Steps() []Step {
	return []Step{
		{Name: "agent pool profile", Apply: d.setUpAgentPoolProfile},
		{Name: "cluster properties", Apply: d.setUpProperties},
		{Name: "linux profile", Apply: d.setUpLinuxProfile},
		{Name: "windows profile", Apply: d.setUpWindowsProfile},
		{Name: "service principal profile", Apply: d.setUpServicePrincipalProfile},
		{Name: "vnet subnet role assignment", Apply: d.processVnetSubnetRoleAssignment},
		{Name: "attach acr", Apply: d.processAttachACR},
		{Name: "network profile", Apply: d.setUpNetworkProfile},
		{Name: "addon profiles", Apply: d.setUpAddonProfiles},
		{Name: "aad profile", Apply: d.setUpAADProfile},
		{Name: "api server access profile", Apply: d.setUpAPIServerAccessProfile},
		{Name: "identity", Apply: d.setUpIdentity},
		{Name: "identity profile", Apply: d.setUpIdentityProfile},
		{Name: "auto upgrade profile", Apply: d.setUpAutoUpgradeProfile},
		{Name: "auto scaler profile", Apply: d.setUpAutoScalerProfile},
		{Name: "sku", Apply: d.setUpSKU},
		{Name: "extended location", Apply: d.setUpExtendedLocation},
		{Name: "node resource group", Apply: d.setUpNodeResourceGroup},
	}
}

// ConstructDefaultMC runs every create step and returns the finished body.
func (d *CreateDecorator) ConstructDefaultMC(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	mc, err := d.initMC(ctx)
	if err != nil {
		return nil, err
	}
	if err := fold(ctx, mc, d.Steps()); err != nil {
		return nil, err
	}
	return mc, nil
}

func (d *CreateDecorator) initMC(ctx context.Context) (*armcontainerservice.ManagedCluster, error) {
	if err := helpers.ValidateClusterName(d.Context.Name()); err != nil {
		return nil, err
	}
	location, err := d.Context.Location(ctx)
	if err != nil {
		return nil, err
	}
	mc := models.NewManagedCluster(d.Context.APIVersion, location)
	if err := d.Context.AttachMC(mc); err != nil {
		return nil, err
	}
	return mc, nil
}

func (d *CreateDecorator) setUpAgentPoolProfile(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	pool, err := d.buildAgentPoolProfile(ctx, models.NodepoolModeSystem, models.OSTypeLinux)
	if err != nil {
		return err
	}
	mc.Properties.AgentPoolProfiles = []*armcontainerservice.ManagedClusterAgentPoolProfile{pool}
	return nil
}

func (d *CreateDecorator) setUpProperties(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	version, err := c.KubernetesVersion(ctx)
	if err != nil {
		return err
	}
	dnsPrefix, err := c.DNSNamePrefix(ctx)
	if err != nil {
		return err
	}
	disableLocalAccounts, err := c.DisableLocalAccounts()
	if err != nil {
		return err
	}
	disableRBAC, err := c.DisableRBAC()
	if err != nil {
		return err
	}

	if tags := c.Tags(); len(tags) > 0 {
		mc.Tags = ptrMap(tags)
	}
	p := mc.Properties
	p.KubernetesVersion = nonZero(version)
	p.DNSPrefix = nonZero(dnsPrefix)
	p.DiskEncryptionSetID = nonZero(c.DiskEncryptionSetID())
	p.DisableLocalAccounts = nonZero(disableLocalAccounts)
	p.EnableRBAC = to.Ptr(!disableRBAC)
	return nil
}

// setUpLinuxProfile leaves the profile out with --no-ssh-key; it only carries SSH access.
func (d *CreateDecorator) setUpLinuxProfile(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if c.Raw.NoSSHKey {
		return nil
	}
	key, err := c.SSHKey(ctx)
	if err != nil {
		return err
	}
	if key == "" {
		return nil
	}
	mc.Properties.LinuxProfile = models.NewLinuxProfile(c.APIVersion, c.AdminUsername(), key)
	return nil
}

func (d *CreateDecorator) setUpWindowsProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	if err := c.ValidateWindowsCredentialsForGMSA(); err != nil {
		return err
	}
	username, password, err := c.WindowsCredentials()
	if err != nil {
		return err
	}
	if username == "" && password == "" {
		return nil
	}
	ahub, err := c.EnableAHUB()
	if err != nil {
		return err
	}
	gmsa, err := c.WindowsGMSA()
	if err != nil {
		return err
	}

	profile := models.NewWindowsProfile(c.APIVersion, username, password)
	if ahub {
		profile.LicenseType = to.Ptr(armcontainerservice.LicenseType(models.LicenseTypeWindowsServer))
	}
	if gmsa.Enabled {
		profile.GmsaProfile = &armcontainerservice.WindowsGmsaProfile{
			Enabled:        to.Ptr(true),
			DNSServer:      nonZero(gmsa.DNSServer),
			RootDomainName: nonZero(gmsa.RootDomainName),
		}
	}
	mc.Properties.WindowsProfile = profile
	return nil
}

// setUpServicePrincipalProfile skips the profile for managed identity
// clusters unless a service principal was given explicitly.
func (d *CreateDecorator) setUpServicePrincipalProfile(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	sp, secret, err := c.ServicePrincipalAndSecret(ctx)
	if err != nil {
		return err
	}
	mi, err := c.EnableManagedIdentity()
	if err != nil {
		return err
	}
	if mi && sp == "" && secret == "" {
		return nil
	}
	mc.Properties.ServicePrincipalProfile = models.NewServicePrincipalProfile(c.APIVersion, sp, secret)
	return nil
}

func (d *CreateDecorator) processVnetSubnetRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	logger := logr.FromContextOrDiscard(ctx)

	needPost := false
	defer func() {
		c.Intermediates.Set(ctx, mcontext.KeyNeedPostCreationVnetPermissionGranting, needPost, true)
	}()

	subnet := c.VnetSubnetID()
	if subnet == "" || c.Raw.SkipSubnetRoleAssignment {
		return nil
	}
	exists, err := d.Roles.SubnetAssignmentExists(ctx, subnet)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	assignIdentity, err := c.AssignIdentity()
	if err != nil {
		return err
	}
	spProfile := mc.Properties.ServicePrincipalProfile
	if spProfile == nil && assignIdentity == "" {
		ok, err := c.Confirm(vnetPermissionPrompt)
		if err != nil {
			return err
		}
		if !ok {
			return clierrors.ErrDecoratorEarlyExit
		}
		needPost = true
		return nil
	}

	var assignee string
	if assignIdentity != "" {
		identity, err := c.ResolveUserAssignedIdentity(ctx, assignIdentity)
		if err != nil {
			return err
		}
		assignee = identity.ClientID
	} else {
		assignee = deref(spProfile.ClientID)
	}
	if !d.Roles.Add(ctx, models.RoleNetworkContributor, assignee, true, subnet) {
		logger.Info(subnetRoleAssignmentWarning)
	}
	return nil
}

// processAttachACR grants the service principal pull access. Managed
// identity clusters get theirs after creation, once the kubelet identity exists.
func (d *CreateDecorator) processAttachACR(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	acr, err := c.AttachACR(ctx)
	if err != nil || acr == "" {
		return err
	}
	mi, err := c.EnableManagedIdentity()
	if err != nil || mi {
		return err
	}
	sp := mc.Properties.ServicePrincipalProfile
	if sp == nil || sp.ClientID == nil {
		return clierrors.RequiredArgumentMissing("No service principal provided to create the acrpull role assignment for acr.")
	}
	return d.Roles.EnsureACR(ctx, *sp.ClientID, acr, true, false)
}

func (d *CreateDecorator) setUpNetworkProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	lb, err := d.buildLoadBalancerProfile()
	if err != nil {
		return err
	}
	outbound, err := c.OutboundType()
	if err != nil {
		return err
	}
	sku, err := c.LoadBalancerSKU()
	if err != nil {
		return err
	}
	settings, err := c.NetworkSettings()
	if err != nil {
		return err
	}

	var np *armcontainerservice.NetworkProfile
	switch {
	case settings.Any():
		np = models.NewNetworkProfile(c.APIVersion)
		if settings.Plugin != "" {
			np.NetworkPlugin = to.Ptr(armcontainerservice.NetworkPlugin(settings.Plugin))
		}
		if settings.Policy != "" {
			np.NetworkPolicy = to.Ptr(armcontainerservice.NetworkPolicy(settings.Policy))
		}
		np.PodCidr = nonZero(settings.PodCIDR)
		np.ServiceCidr = nonZero(settings.ServiceCIDR)
		np.DNSServiceIP = nonZero(settings.DNSServiceIP)
		np.DockerBridgeCidr = nonZero(settings.DockerBridgeAddress)
		np.LoadBalancerSKU = to.Ptr(armcontainerservice.LoadBalancerSKU(sku))
		np.LoadBalancerProfile = lb
		np.OutboundType = to.Ptr(armcontainerservice.OutboundType(outbound))
	case sku == models.LoadBalancerSKUBasic:
		// basic load balancers reject a load balancer profile
		np = models.NewNetworkProfile(c.APIVersion)
		np.LoadBalancerSKU = to.Ptr(armcontainerservice.LoadBalancerSKU(sku))
	case sku == models.LoadBalancerSKUStandard || lb != nil:
		np = models.NewNetworkProfile(c.APIVersion)
		np.NetworkPlugin = to.Ptr(armcontainerservice.NetworkPlugin(models.NetworkPluginKubenet))
		np.LoadBalancerSKU = to.Ptr(armcontainerservice.LoadBalancerSKU(sku))
		np.LoadBalancerProfile = lb
		np.OutboundType = to.Ptr(armcontainerservice.OutboundType(outbound))
	}

	nat, err := d.buildNATGatewayProfile()
	if err != nil {
		return err
	}
	if nat != nil && np != nil && sku != models.LoadBalancerSKUBasic {
		np.NatGatewayProfile = nat
	}
	mc.Properties.NetworkProfile = np
	return nil
}

// buildLoadBalancerProfile is nil when no load balancer setting was given.
func (d *CreateDecorator) buildLoadBalancerProfile() (*armcontainerservice.ManagedClusterLoadBalancerProfile, error) {
	c := d.Context
	count, err := c.LoadBalancerManagedOutboundIPCount()
	if err != nil {
		return nil, err
	}
	ips, err := c.LoadBalancerOutboundIPs()
	if err != nil {
		return nil, err
	}
	prefixes, err := c.LoadBalancerOutboundIPPrefixes()
	if err != nil {
		return nil, err
	}
	ports, err := c.LoadBalancerOutboundPorts()
	if err != nil {
		return nil, err
	}
	idle, err := c.LoadBalancerIdleTimeout()
	if err != nil {
		return nil, err
	}
	if !count.IsSet() && len(ips) == 0 && len(prefixes) == 0 && !ports.IsSet() && !idle.IsSet() {
		return nil, nil
	}

	lb := models.NewLoadBalancerProfile(c.APIVersion)
	if count.IsSet() {
		lb.ManagedOutboundIPs = &armcontainerservice.ManagedClusterLoadBalancerProfileManagedOutboundIPs{Count: count.Ptr()}
	}
	if len(ips) > 0 {
		lb.OutboundIPs = &armcontainerservice.ManagedClusterLoadBalancerProfileOutboundIPs{PublicIPs: references(ips)}
	}
	if len(prefixes) > 0 {
		lb.OutboundIPPrefixes = &armcontainerservice.ManagedClusterLoadBalancerProfileOutboundIPPrefixes{PublicIPPrefixes: references(prefixes)}
	}
	lb.AllocatedOutboundPorts = ports.Ptr()
	lb.IdleTimeoutInMinutes = idle.Ptr()
	return lb, nil
}

func (d *CreateDecorator) buildNATGatewayProfile() (*armcontainerservice.ManagedClusterNATGatewayProfile, error) {
	c := d.Context
	count, err := c.NATGatewayManagedOutboundIPCount()
	if err != nil {
		return nil, err
	}
	idle, err := c.NATGatewayIdleTimeout()
	if err != nil {
		return nil, err
	}
	if !count.IsSet() && !idle.IsSet() {
		return nil, nil
	}
	nat := models.NewNATGatewayProfile(c.APIVersion)
	if count.IsSet() {
		nat.ManagedOutboundIPProfile = &armcontainerservice.ManagedClusterManagedOutboundIPProfile{Count: count.Ptr()}
	}
	nat.IdleTimeoutInMinutes = idle.Ptr()
	return nat, nil
}

func (d *CreateDecorator) setUpAddonProfiles(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	addons, err := d.Context.EnableAddons()
	if err != nil {
		return err
	}
	profiles := map[string]*armcontainerservice.ManagedClusterAddonProfile{}
	for _, a := range addons {
		profile, err := d.buildAddonProfile(ctx, a)
		if err != nil {
			return err
		}
		profiles[a.APIName()] = profile
	}
	mc.Properties.AddonProfiles = profiles
	return nil
}

func (d *CreateDecorator) buildAddonProfile(ctx context.Context, a models.Addon) (*armcontainerservice.ManagedClusterAddonProfile, error) {
	c := d.Context
	v := c.APIVersion
	switch a {
	case models.AddonMonitoring:
		return d.buildMonitoringAddonProfile(ctx)
	case models.AddonVirtualNode:
		profile := models.NewAddonProfile(v, true, map[string]string{models.VirtualNodeSubnetName: c.ACISubnetName()})
		c.Intermediates.Set(ctx, mcontext.KeyVirtualNodeAddonEnabled, true, true)
		return profile, nil
	case models.AddonIngressAppGW:
		profile := models.NewAddonProfile(v, true, c.AppGW().Config())
		c.Intermediates.Set(ctx, mcontext.KeyIngressAppGWAddonEnabled, true, true)
		return profile, nil
	case models.AddonConfCom:
		enabled := "false"
		if c.EnableSGXQuoteHelper() {
			enabled = "true"
		}
		return models.NewAddonProfile(v, true, map[string]string{models.ConfComQuoteHelperEnabled: enabled}), nil
	case models.AddonOpenServiceMesh:
		return models.NewAddonProfile(v, true, map[string]string{}), nil
	case models.AddonKeyVaultSecretsProvider:
		return d.buildKeyVaultSecretsProviderAddonProfile()
	default:
		return models.NewAddonProfile(v, true, nil), nil
	}
}

// buildMonitoringAddonProfile also creates the workspace side of container
// insights; the rule association waits until the cluster exists.
func (d *CreateDecorator) buildMonitoringAddonProfile(ctx context.Context) (*armcontainerservice.ManagedClusterAddonProfile, error) {
	c := d.Context
	workspace, err := c.WorkspaceResourceID(ctx)
	if err != nil {
		return nil, err
	}
	msi := c.EnableMSIAuthForMonitoring()
	useAAD := "False"
	if msi {
		useAAD = "True"
	}
	profile := models.NewAddonProfile(c.APIVersion, true, map[string]string{
		models.MonitoringWorkspaceResourceID: workspace,
		models.MonitoringUseAADAuth:          useAAD,
	})

	req, err := d.monitoringRequest(ctx, profile)
	if err != nil {
		return nil, err
	}
	req.CreateDCR = true
	if _, err := d.Monitoring.EnsureContainerInsights(ctx, req); err != nil {
		return nil, err
	}
	c.Intermediates.Set(ctx, mcontext.KeyMonitoringAddonEnabled, true, true)
	return profile, nil
}

func (d *CreateDecorator) buildKeyVaultSecretsProviderAddonProfile() (*armcontainerservice.ManagedClusterAddonProfile, error) {
	c := d.Context
	rotation, err := c.EnableSecretRotation()
	if err != nil {
		return nil, err
	}
	interval, err := c.RotationPollInterval()
	if err != nil {
		return nil, err
	}
	config := map[string]string{
		models.SecretRotationEnabled: "false",
		models.RotationPollInterval:  "2m",
	}
	if rotation {
		config[models.SecretRotationEnabled] = "true"
	}
	if interval != "" {
		config[models.RotationPollInterval] = interval
	}
	return models.NewAddonProfile(c.APIVersion, true, config), nil
}

func (d *CreateDecorator) setUpAADProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	enable, err := c.EnableAAD()
	if err != nil {
		return err
	}
	tenant, err := c.AADTenantID()
	if err != nil {
		return err
	}
	if enable {
		azureRBAC, err := c.EnableAzureRBAC()
		if err != nil {
			return err
		}
		groups, err := c.AADAdminGroupObjectIDs()
		if err != nil {
			return err
		}
		aad := models.NewAADProfile(c.APIVersion)
		aad.Managed = to.Ptr(true)
		aad.EnableAzureRBAC = nonZero(azureRBAC)
		aad.AdminGroupObjectIDs = ptrSlice(groups)
		aad.TenantID = nonZero(tenant)
		mc.Properties.AADProfile = aad
		return nil
	}

	legacy := c.LegacyAAD()
	if !legacy.Any() && tenant == "" {
		return nil
	}
	aad := models.NewAADProfile(c.APIVersion)
	aad.ClientAppID = nonZero(legacy.ClientAppID)
	aad.ServerAppID = nonZero(legacy.ServerAppID)
	aad.ServerAppSecret = nonZero(legacy.ServerAppSecret)
	aad.TenantID = nonZero(tenant)
	mc.Properties.AADProfile = aad
	return nil
}

func (d *CreateDecorator) setUpAPIServerAccessProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	ranges, err := c.APIServerAuthorizedIPRanges()
	if err != nil {
		return err
	}
	private, err := c.EnablePrivateCluster()
	if err != nil {
		return err
	}
	disablePublicFQDN, err := c.DisablePublicFQDN()
	if err != nil {
		return err
	}
	zone, err := c.PrivateDNSZone()
	if err != nil {
		return err
	}

	ipRanges := ranges.OrElse(nil)
	if len(ipRanges) > 0 || private {
		ap := models.NewAPIServerAccessProfile(c.APIVersion)
		if len(ipRanges) > 0 {
			ap.AuthorizedIPRanges = ptrSlice(ipRanges)
		}
		if private {
			ap.EnablePrivateCluster = to.Ptr(true)
		}
		if disablePublicFQDN {
			ap.EnablePrivateClusterPublicFQDN = to.Ptr(false)
		}
		ap.PrivateDNSZone = nonZero(zone)
		mc.Properties.APIServerAccessProfile = ap
	}

	subdomain, err := c.FQDNSubdomain()
	if err != nil {
		return err
	}
	mc.Properties.FqdnSubdomain = nonZero(subdomain)
	return nil
}

func (d *CreateDecorator) setUpIdentity(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	mi, err := c.EnableManagedIdentity()
	if err != nil || !mi {
		return err
	}
	assignIdentity, err := c.AssignIdentity()
	if err != nil {
		return err
	}
	if assignIdentity == "" {
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

// setUpIdentityProfile attaches the kubelet identity and makes sure the
// cluster identity may operate it.
func (d *CreateDecorator) setUpIdentityProfile(ctx context.Context, mc *armcontainerservice.ManagedCluster) error {
	c := d.Context
	kubeletID, err := c.AssignKubeletIdentity()
	if err != nil || kubeletID == "" {
		return err
	}
	kubelet, err := c.ResolveUserAssignedIdentity(ctx, kubeletID)
	if err != nil {
		return err
	}
	mc.Properties.IdentityProfile = map[string]*armcontainerservice.UserAssignedIdentity{
		models.KubeletIdentityKey: {
			ResourceID: to.Ptr(kubeletID),
			ClientID:   nonZero(kubelet.ClientID),
			ObjectID:   nonZero(kubelet.PrincipalID),
		},
	}

	assignIdentity, err := c.AssignIdentity()
	if err != nil {
		return err
	}
	cluster, err := c.ResolveUserAssignedIdentity(ctx, assignIdentity)
	if err != nil {
		return err
	}
	return d.Roles.EnsureKubeletIdentityPermission(ctx, cluster.PrincipalID, kubeletID)
}

func (d *CreateDecorator) setUpAutoUpgradeProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	if channel := d.Context.AutoUpgradeChannel(); channel != "" {
		mc.Properties.AutoUpgradeProfile = models.NewAutoUpgradeProfile(d.Context.APIVersion, channel)
	}
	return nil
}

func (d *CreateDecorator) setUpAutoScalerProfile(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	profile, err := d.Context.ClusterAutoscalerProfile()
	if err != nil || len(profile) == 0 {
		return err
	}
	p, err := models.NewAutoScalerProfile(d.Context.APIVersion, profile)
	if err != nil {
		return err
	}
	mc.Properties.AutoScalerProfile = p
	return nil
}

func (d *CreateDecorator) setUpSKU(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	uptime, err := d.Context.UptimeSLA()
	if err != nil {
		return err
	}
	if uptime {
		mc.SKU = models.NewSKU(d.Context.APIVersion, models.SKUTierPaid)
	}
	return nil
}

func (d *CreateDecorator) setUpExtendedLocation(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	mc.ExtendedLocation = models.NewExtendedLocation(d.Context.APIVersion, d.Context.EdgeZone())
	return nil
}

func (d *CreateDecorator) setUpNodeResourceGroup(_ context.Context, mc *armcontainerservice.ManagedCluster) error {
	mc.Properties.NodeResourceGroup = nonZero(d.Context.NodeResourceGroup())
	return nil
}

// CreateMC sends the cluster. The whole write, including the effects that
// follow it, is retried while a new service principal has not yet
// replicated to the tenant.
func (d *CreateDecorator) CreateMC(ctx context.Context, mc *armcontainerservice.ManagedCluster) (*armcontainerservice.ManagedCluster, error) {
	if mc == nil || d.Context.MC() != mc {
		return nil, clierrors.CLIInternal("Unexpected mc object with type '%T'.", mc)
	}
	mi, err := d.Context.EnableManagedIdentity()
	if err != nil {
		return nil, err
	}

	var cluster *armcontainerservice.ManagedCluster
	err = helpers.Retry(ctx, d.RetryAttempts, d.RetryDelay, func(ctx context.Context) error {
		var putErr error
		cluster, putErr = d.put(ctx, mc, mi, d.immediateProcessing)
		return putErr
	}, isSPNotFound)

	var exhausted *helpers.RetriesExhaustedError
	if errors.As(err, &exhausted) {
		return nil, clierrors.Unknown("Maximum number of retries exceeded. %s", exhausted.Last.Error())
	}
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return cluster, nil
}

// immediateProcessing grants the system assigned identity access to the
// subnet as soon as the identity exists, before the cluster finishes.
func (d *CreateDecorator) immediateProcessing(ctx context.Context) error {
	c := d.Context
	if !c.Intermediates.Flag(mcontext.KeyNeedPostCreationVnetPermissionGranting) {
		return nil
	}
	resp, err := c.Clients.ManagedClusters.Get(ctx, c.ResourceGroupName(), c.Name(), nil)
	if err != nil {
		return err
	}
	var principal string
	if resp.Identity != nil {
		principal = deref(resp.Identity.PrincipalID)
	}
	if !d.Roles.Add(ctx, models.RoleNetworkContributor, principal, false, c.VnetSubnetID()) {
		logr.FromContextOrDiscard(ctx).Info(subnetRoleAssignmentWarning)
	}
	return nil
}

// monitoringRequest fills the cluster coordinates of a container insights pass.
func (d *decorator) monitoringRequest(ctx context.Context, profile *armcontainerservice.ManagedClusterAddonProfile) (monitoring.Request, error) {
	c := d.Context
	location, err := c.Location(ctx)
	if err != nil {
		return monitoring.Request{}, err
	}
	settings, err := c.DataCollectionSettings()
	if err != nil {
		return monitoring.Request{}, err
	}
	ampls, err := c.AMPLSResourceID()
	if err != nil {
		return monitoring.Request{}, err
	}
	return monitoring.Request{
		Addon:                  profile,
		ClusterSubscriptionID:  c.SubscriptionID(ctx),
		ClusterResourceGroup:   c.ResourceGroupName(),
		ClusterName:            c.Name(),
		ClusterRegion:          location,
		AADRoute:               c.EnableMSIAuthForMonitoring(),
		EnableSyslog:           c.EnableSyslog(),
		EnableHighLogScaleMode: c.EnableHighLogScaleMode(),
		DataCollectionSettings: settings,
		AMPLSResourceID:        ampls,
	}, nil
}

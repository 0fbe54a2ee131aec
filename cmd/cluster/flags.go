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

package cluster

import (
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/base"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// RawClusterOptions carries the flags of cluster create and update.
type RawClusterOptions struct {
	Azure *base.RawAzureOptions
	Raw   models.RawParameters

	Tags           []string
	NodepoolTags   []string
	NodepoolLabels []string
}

func DefaultClusterOptions() *RawClusterOptions {
	return &RawClusterOptions{Azure: base.DefaultAzureOptions()}
}

// BindCreateOptions binds every cluster create flag.
func BindCreateOptions(opts *RawClusterOptions, cmd *cobra.Command) error {
	if err := bindCommon(opts, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	f := cmd.Flags()

	f.StringVarP(&r.Location, "location", "l", "", "Location. Defaults to the location of the resource group")
	f.StringVar(&r.DNSNamePrefix, "dns-name-prefix", "", "Prefix for hostnames that are created")
	f.StringVar(&r.FQDNSubdomain, "fqdn-subdomain", "", "Prefix for FQDN of a private cluster with a custom private DNS zone")
	f.StringVar(&r.NodeResourceGroup, "node-resource-group", "", "Name of the resource group holding the cluster resources")
	f.StringVar(&r.DiskEncryptionSetID, "node-osdisk-diskencryptionset-id", "", "Resource ID of the disk encryption set for node OS disks")
	f.StringVar(&r.SnapshotID, "snapshot-id", "", "Source snapshot ID used to create the first node pool")
	f.StringVar(&r.EdgeZone, "edge-zone", "", "Name of the edge zone")
	f.BoolVar(&r.EnableRBAC, "enable-rbac", false, "Enable Kubernetes role-based access control")
	f.BoolVar(&r.DisableRBAC, "disable-rbac", false, "Disable Kubernetes role-based access control")

	// first agent pool
	f.StringVar(&r.NodepoolName, "nodepool-name", "", "Node pool name, up to 12 alphanumeric characters")
	f.StringSliceVar(&opts.NodepoolTags, "nodepool-tags", nil, "Space separated tags: key[=value] for the first node pool")
	f.Int32VarP(&r.NodeCount, "node-count", "c", 0, "Number of nodes in the first node pool")
	f.StringVarP(&r.NodeVMSize, "node-vm-size", "s", "", "Size of virtual machines to create as Kubernetes nodes")
	f.StringVar(&r.OSSKU, "os-sku", "", "OS SKU of the first node pool: Ubuntu or CBLMariner")
	f.StringVar(&r.VnetSubnetID, "vnet-subnet-id", "", "Subnet in a VNet to deploy the cluster")
	f.StringVar(&r.PodSubnetID, "pod-subnet-id", "", "Subnet for pod IPs")
	f.StringVar(&r.PPG, "ppg", "", "ID of a proximity placement group")
	f.StringSliceVarP(&r.Zones, "zones", "z", nil, "Availability zones where agent nodes will be placed")
	f.BoolVar(&r.EnableNodePublicIP, "enable-node-public-ip", false, "Enable VMSS node public IP")
	f.StringVar(&r.NodePublicIPPrefixID, "node-public-ip-prefix-id", "", "Public IP prefix ID used to assign public IPs to VMSS nodes")
	f.BoolVar(&r.EnableEncryptionAtHost, "enable-encryption-at-host", false, "Enable EncryptionAtHost")
	f.BoolVar(&r.EnableUltraSSD, "enable-ultra-ssd", false, "Enable UltraSSD")
	f.BoolVar(&r.EnableFIPSImage, "enable-fips-image", false, "Use a FIPS-enabled OS")
	f.Int32Var(&r.MaxPods, "max-pods", 0, "Maximum number of pods deployable to a node")
	f.StringVar(&r.VMSetType, "vm-set-type", "", "Agent pool VM set type: VirtualMachineScaleSets or AvailabilitySet")
	f.Int32Var(&r.NodeOSDiskSize, "node-osdisk-size", 0, "Size in GiB of the OS disk for each node")
	f.StringVar(&r.NodeOSDiskType, "node-osdisk-type", "", "OS disk type: Ephemeral or Managed")
	f.StringVar(&r.KubeletConfig, "kubelet-config", "", "Path to a JSON file with the kubelet configuration")
	f.StringVar(&r.LinuxOSConfig, "linux-os-config", "", "Path to a JSON file with the Linux OS configuration")
	f.StringVar(&r.NodeTaints, "node-taints", "", "Comma separated node taints")
	f.BoolVar(&r.SkipSubnetRoleAssignment, "skip-subnet-role-assignment", false, "Skip the role assignment for the subnet")

	// linux profile
	f.StringVarP(&r.AdminUsername, "admin-username", "u", "", "User account to create on node VMs for SSH access")
	f.StringVar(&r.SSHKeyValue, "ssh-key-value", "", "Public key path or key contents to install on node VMs (default ~/.ssh/id_rsa.pub)")
	f.BoolVar(&r.NoSSHKey, "no-ssh-key", false, "Do not use or create a local SSH key")
	f.BoolVar(&r.GenerateSSHKeys, "generate-ssh-keys", false, "Generate SSH key files if missing")

	f.StringVar(&r.WindowsAdminUsername, "windows-admin-username", "", "User account to create on Windows node VMs")

	// identity
	f.StringVar(&r.ServicePrincipal, "service-principal", "", "Service principal used for authentication to Azure APIs")
	f.StringVar(&r.ClientSecret, "client-secret", "", "Secret associated with the service principal")
	f.StringVar(&r.AssignKubeletIdentity, "assign-kubelet-identity", "", "User assigned identity resource ID for the kubelet")

	// network
	f.StringVar(&r.LoadBalancerSKU, "load-balancer-sku", "", "Azure Load Balancer SKU: basic or standard")
	f.StringVar(&r.OutboundType, "outbound-type", "", "How outbound traffic is configured for the cluster")
	f.StringVar(&r.NetworkPlugin, "network-plugin", "", "Kubernetes network plugin: azure or kubenet")
	f.StringVar(&r.PodCIDR, "pod-cidr", "", "CIDR notation IP range from which to assign pod IPs when kubenet is used")
	f.StringVar(&r.ServiceCIDR, "service-cidr", "", "CIDR notation IP range from which to assign service cluster IPs")
	f.StringVar(&r.DNSServiceIP, "dns-service-ip", "", "IP address assigned to the Kubernetes DNS service")
	f.StringVar(&r.DockerBridgeAddress, "docker-bridge-address", "", "CIDR notation IP address assigned to the Docker bridge")
	f.StringVar(&r.NetworkPolicy, "network-policy", "", "Network policy: azure or calico")

	// addons
	f.StringVarP(&r.EnableAddons, "enable-addons", "a", "", "Comma separated list of addons to enable")
	base.BindAddonFlags(r, cmd)

	// aad
	f.StringVar(&r.AADClientAppID, "aad-client-app-id", "", "ID of an AAD client application")
	f.StringVar(&r.AADServerAppID, "aad-server-app-id", "", "ID of an AAD server application")
	f.StringVar(&r.AADServerAppSecret, "aad-server-app-secret", "", "Secret of an AAD server application")

	f.BoolVar(&r.EnablePrivateCluster, "enable-private-cluster", false, "Enable private cluster")
	f.StringVar(&r.PrivateDNSZone, "private-dns-zone", "", "Private DNS zone mode for a private cluster")
	return nil
}

// BindUpdateOptions binds the cluster update flags.
func BindUpdateOptions(opts *RawClusterOptions, cmd *cobra.Command) error {
	if err := bindCommon(opts, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	f := cmd.Flags()
	f.BoolVar(&r.UpdateClusterAutoscaler, "update-cluster-autoscaler", false, "Update min-count or max-count of the cluster autoscaler")
	f.BoolVar(&r.DisableClusterAutoscaler, "disable-cluster-autoscaler", false, "Disable the cluster autoscaler")
	f.StringVar(&r.DetachACR, "detach-acr", "", "Revoke the acrpull role on an ACR from the cluster")
	f.BoolVar(&r.NoUptimeSLA, "no-uptime-sla", false, "Change the cluster to the free tier")
	f.BoolVar(&r.DisableAHUB, "disable-ahub", false, "Disable Azure Hybrid User Benefits for Windows nodes")
	f.BoolVar(&r.DisableAzureRBAC, "disable-azure-rbac", false, "Disable Azure RBAC for Kubernetes authorization")
	f.BoolVar(&r.EnableLocalAccounts, "enable-local-accounts", false, "Enable local accounts")
	f.BoolVar(&r.EnablePublicFQDN, "enable-public-fqdn", false, "Enable the public FQDN of a private cluster")
	f.BoolVar(&r.DisableSecretRotation, "disable-secret-rotation", false, "Disable secret rotation of the keyvault secrets provider")
	f.BoolVar(&r.DisableAzureMonitorMetrics, "disable-azure-monitor-metrics", false, "Disable Azure Monitor metrics")
	return nil
}

// bindCommon binds the flags create and update share.
func bindCommon(opts *RawClusterOptions, cmd *cobra.Command) error {
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	if err := base.ResourceFlags(cmd, &r.ResourceGroupName, &r.Name, "managed cluster"); err != nil {
		return err
	}
	f := cmd.Flags()
	f.StringVarP(&r.KubernetesVersion, "kubernetes-version", "k", "", "Version of Kubernetes to use")
	f.StringSliceVar(&opts.Tags, "tags", nil, "Space separated tags: key[=value]. Use \"\" to clear existing tags")
	f.StringSliceVar(&opts.NodepoolLabels, "nodepool-labels", nil, "Space separated labels: key=value for every node pool")

	f.BoolVar(&r.EnableClusterAutoscaler, "enable-cluster-autoscaler", false, "Enable the cluster autoscaler")
	base.OptionalInt32Var(cmd, &r.MinCount, "min-count", "Minimum node count used for the autoscaler")
	base.OptionalInt32Var(cmd, &r.MaxCount, "max-count", "Maximum node count used for the autoscaler")
	f.StringSliceVar(&r.ClusterAutoscalerProfile, "cluster-autoscaler-profile", nil, "Space separated list of key=value pairs for the autoscaler profile")

	base.OptionalInt32Var(cmd, &r.LoadBalancerManagedOutboundIPCount, "load-balancer-managed-outbound-ip-count", "Load balancer managed outbound IP count")
	f.StringVar(&r.LoadBalancerOutboundIPs, "load-balancer-outbound-ips", "", "Load balancer outbound IP resource IDs")
	f.StringVar(&r.LoadBalancerOutboundIPPrefixes, "load-balancer-outbound-ip-prefixes", "", "Load balancer outbound IP prefix resource IDs")
	base.OptionalInt32Var(cmd, &r.LoadBalancerOutboundPorts, "load-balancer-outbound-ports", "Load balancer outbound allocated ports")
	base.OptionalInt32Var(cmd, &r.LoadBalancerIdleTimeout, "load-balancer-idle-timeout", "Load balancer idle timeout in minutes")
	base.OptionalInt32Var(cmd, &r.NATGatewayManagedOutboundIPCount, "nat-gateway-managed-outbound-ip-count", "NAT gateway managed outbound IP count")
	base.OptionalInt32Var(cmd, &r.NATGatewayIdleTimeout, "nat-gateway-idle-timeout", "NAT gateway idle timeout in minutes")

	f.StringVar(&r.AutoUpgradeChannel, "auto-upgrade-channel", "", "Auto upgrade channel: rapid, stable, patch, node-image or none")
	f.StringVar(&r.AttachACR, "attach-acr", "", "Grant the acrpull role on an ACR to the cluster")
	f.BoolVar(&r.UptimeSLA, "uptime-sla", false, "Enable a paid managed cluster service with a financially backed SLA")
	base.OptionalStringVar(cmd, &r.APIServerAuthorizedIPRanges, "api-server-authorized-ip-ranges", "Comma separated list of authorized apiserver IP ranges")

	f.BoolVar(&r.EnableAAD, "enable-aad", false, "Enable managed AAD")
	f.StringVar(&r.AADTenantID, "aad-tenant-id", "", "ID of an AAD tenant")
	base.OptionalStringVar(cmd, &r.AADAdminGroupObjectIDs, "aad-admin-group-object-ids", "Comma separated AAD group object IDs that will be cluster admins")
	f.BoolVar(&r.EnableAzureRBAC, "enable-azure-rbac", false, "Enable Azure RBAC to control authorization checks on the cluster")

	f.StringVar(&r.WindowsAdminPassword, "windows-admin-password", "", "Password for the Windows node admin account")
	f.BoolVar(&r.EnableAHUB, "enable-ahub", false, "Enable Azure Hybrid User Benefits for Windows nodes")
	f.BoolVar(&r.EnableWindowsGMSA, "enable-windows-gmsa", false, "Enable Windows gMSA")
	f.StringVar(&r.GMSADNSServer, "gmsa-dns-server", "", "DNS server for Windows gMSA")
	f.StringVar(&r.GMSARootDomainName, "gmsa-root-domain-name", "", "Root domain name for Windows gMSA")

	f.BoolVar(&r.EnableManagedIdentity, "enable-managed-identity", false, "Use a managed identity to manage cluster resource groups")
	f.StringVar(&r.AssignIdentity, "assign-identity", "", "User assigned identity resource ID for the control plane")

	f.BoolVar(&r.DisableLocalAccounts, "disable-local-accounts", false, "Disable local accounts")
	f.BoolVar(&r.DisablePublicFQDN, "disable-public-fqdn", false, "Disable the public FQDN of a private cluster")

	f.BoolVar(&r.EnableSecretRotation, "enable-secret-rotation", false, "Enable secret rotation of the keyvault secrets provider")
	f.StringVar(&r.RotationPollInterval, "rotation-poll-interval", "", "Secret rotation poll interval")
	f.BoolVar(&r.EnableAzureMonitorMetrics, "enable-azure-monitor-metrics", false, "Enable Azure Monitor metrics")
	f.StringVar(&r.AzureMonitorWorkspaceResourceID, "azure-monitor-workspace-resource-id", "", "Resource ID of the Azure Monitor workspace")
	f.BoolVar(&r.EnableWindowsRecordingRules, "enable-windows-recording-rules", false, "Enable Windows recording rules with Azure Monitor metrics")

	f.BoolVar(&r.NoWait, "no-wait", false, "Do not wait for the long-running operation to finish")
	f.StringVar(&r.AKSCustomHeaders, "aks-custom-headers", "", "Comma separated key=value pairs sent as custom headers")
	return nil
}

// Complete copies the list flags into the raw parameters and records which flags were set.
func (o *RawClusterOptions) Complete(cmd *cobra.Command) (*models.RawParameters, error) {
	r := &o.Raw
	if cmd.Flags().Changed("tags") {
		r.Tags = helpers.ParseTags(o.Tags)
	}
	if cmd.Flags().Changed("nodepool-tags") {
		r.NodepoolTags = helpers.ParseTags(o.NodepoolTags)
	}
	if cmd.Flags().Changed("nodepool-labels") {
		labels, err := helpers.ParseLabels(o.NodepoolLabels)
		if err != nil {
			return nil, err
		}
		r.NodepoolLabels = labels
	}
	base.MarkSupplied(r, cmd)
	return r, nil
}

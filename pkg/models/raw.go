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

package models

// RawParameters carries every flag of the cluster create and update commands.
// Numeric flags where zero is a meaningful value are Optional; Supplied records
// the flag names the user actually passed on the command line.
type RawParameters struct {
	// root identity
	Name              string
	ResourceGroupName string
	Location          string
	Tags              map[string]string

	KubernetesVersion   string
	DNSNamePrefix       string
	FQDNSubdomain       string
	NodeResourceGroup   string
	DiskEncryptionSetID string
	SnapshotID          string
	EdgeZone            string

	EnableRBAC           bool
	DisableRBAC          bool
	DisableLocalAccounts bool
	EnableLocalAccounts  bool

	// first agent pool
	NodepoolName              string
	NodepoolTags              map[string]string
	NodepoolLabels            map[string]string
	NodeCount                 int32
	NodeVMSize                string
	OSSKU                     string
	VnetSubnetID              string
	PodSubnetID               string
	PPG                       string
	Zones                     []string
	EnableNodePublicIP        bool
	NodePublicIPPrefixID      string
	EnableEncryptionAtHost    bool
	EnableUltraSSD            bool
	EnableFIPSImage           bool
	MaxPods                   int32
	VMSetType                 string
	NodeOSDiskSize            int32
	NodeOSDiskType            string
	EnableClusterAutoscaler   bool
	DisableClusterAutoscaler  bool
	UpdateClusterAutoscaler   bool
	MinCount                  Optional[int32]
	MaxCount                  Optional[int32]
	KubeletConfig             string
	LinuxOSConfig             string
	NodeTaints                string
	ClusterAutoscalerProfile  []string
	SkipSubnetRoleAssignment  bool

	// standalone node pools
	OSType       string
	NodepoolMode string
	MaxSurge     string

	// linux profile
	AdminUsername   string
	SSHKeyValue     string
	NoSSHKey        bool
	GenerateSSHKeys bool

	// windows profile
	WindowsAdminUsername string
	WindowsAdminPassword string
	EnableAHUB           bool
	DisableAHUB          bool
	EnableWindowsGMSA    bool
	GMSADNSServer        string
	GMSARootDomainName   string

	// identity
	ServicePrincipal      string
	ClientSecret          string
	EnableManagedIdentity bool
	AssignIdentity        string
	AssignKubeletIdentity string

	AttachACR string
	DetachACR string

	// network
	LoadBalancerSKU                    string
	LoadBalancerManagedOutboundIPCount Optional[int32]
	LoadBalancerOutboundIPs            string
	LoadBalancerOutboundIPPrefixes     string
	LoadBalancerOutboundPorts          Optional[int32]
	LoadBalancerIdleTimeout            Optional[int32]
	OutboundType                       string
	NATGatewayManagedOutboundIPCount   Optional[int32]
	NATGatewayIdleTimeout              Optional[int32]
	NetworkPlugin                      string
	PodCIDR                            string
	ServiceCIDR                        string
	DNSServiceIP                       string
	DockerBridgeAddress                string
	NetworkPolicy                      string

	// addons
	EnableAddons               string
	WorkspaceResourceID        string
	EnableMSIAuthForMonitoring bool
	EnableSyslog               bool
	DataCollectionSettings     string
	EnableHighLogScaleMode     bool
	AMPLSResourceID            string
	ACISubnetName              string
	AppGWName                  string
	AppGWSubnetCIDR            string
	AppGWID                    string
	AppGWSubnetID              string
	AppGWWatchNamespace        string
	EnableSGXQuoteHelper       bool
	EnableSecretRotation       bool
	DisableSecretRotation      bool
	RotationPollInterval       string

	// managed prometheus
	EnableAzureMonitorMetrics       bool
	DisableAzureMonitorMetrics      bool
	AzureMonitorWorkspaceResourceID string
	EnableWindowsRecordingRules     bool

	// aad
	EnableAAD              bool
	AADClientAppID         string
	AADServerAppID         string
	AADServerAppSecret     string
	AADTenantID            string
	AADAdminGroupObjectIDs Optional[string]
	EnableAzureRBAC        bool
	DisableAzureRBAC       bool

	// api server access
	APIServerAuthorizedIPRanges Optional[string]
	EnablePrivateCluster        bool
	DisablePublicFQDN           bool
	EnablePublicFQDN            bool
	PrivateDNSZone              string

	AutoUpgradeChannel string
	UptimeSLA          bool
	NoUptimeSLA        bool

	Yes              bool
	NoWait           bool
	AKSCustomHeaders string

	Supplied map[string]bool
}

// WasSupplied reports whether the named flag was passed explicitly.
func (r *RawParameters) WasSupplied(flag string) bool {
	return r.Supplied != nil && r.Supplied[flag]
}

// MarkSupplied records a flag as explicitly passed.
func (r *RawParameters) MarkSupplied(flags ...string) {
	if r.Supplied == nil {
		r.Supplied = map[string]bool{}
	}
	for _, f := range flags {
		r.Supplied[f] = true
	}
}

// UpdateFlags lists the flags that make a cluster update do something.
var UpdateFlags = []string{
	"enable-cluster-autoscaler",
	"disable-cluster-autoscaler",
	"update-cluster-autoscaler",
	"cluster-autoscaler-profile",
	"min-count",
	"max-count",
	"load-balancer-managed-outbound-ip-count",
	"load-balancer-outbound-ips",
	"load-balancer-outbound-ip-prefixes",
	"load-balancer-outbound-ports",
	"load-balancer-idle-timeout",
	"nat-gateway-managed-outbound-ip-count",
	"nat-gateway-idle-timeout",
	"auto-upgrade-channel",
	"attach-acr",
	"detach-acr",
	"uptime-sla",
	"no-uptime-sla",
	"api-server-authorized-ip-ranges",
	"enable-aad",
	"aad-tenant-id",
	"aad-admin-group-object-ids",
	"enable-ahub",
	"disable-ahub",
	"windows-admin-password",
	"enable-managed-identity",
	"assign-identity",
	"enable-azure-rbac",
	"disable-azure-rbac",
	"enable-public-fqdn",
	"disable-public-fqdn",
	"tags",
	"nodepool-labels",
	"enable-windows-gmsa",
	"gmsa-dns-server",
	"gmsa-root-domain-name",
	"enable-local-accounts",
	"disable-local-accounts",
	"enable-secret-rotation",
	"disable-secret-rotation",
	"rotation-poll-interval",
	"enable-azure-monitor-metrics",
	"disable-azure-monitor-metrics",
}

// NodepoolUpdateFlags lists the flags that make a node pool update do something.
var NodepoolUpdateFlags = []string{
	"enable-cluster-autoscaler",
	"disable-cluster-autoscaler",
	"update-cluster-autoscaler",
	"tags",
	"mode",
	"max-surge",
	"node-taints",
	"labels",
}

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

// DecoratorMode selects which precedence rules the context getters apply.
type DecoratorMode int

const (
	ModeCreate DecoratorMode = iota
	ModeUpdate
)

func (m DecoratorMode) String() string {
	if m == ModeUpdate {
		return "UPDATE"
	}
	return "CREATE"
}

const (
	OutboundTypeLoadBalancer           = "loadBalancer"
	OutboundTypeUserDefinedRouting     = "userDefinedRouting"
	OutboundTypeManagedNATGateway      = "managedNATGateway"
	OutboundTypeUserAssignedNATGateway = "userAssignedNATGateway"
)

const (
	PrivateDNSZoneSystem = "system"
	PrivateDNSZoneNone   = "none"
)

const (
	LoadBalancerSKUBasic    = "basic"
	LoadBalancerSKUStandard = "standard"
)

const (
	VMSetTypeAvailabilitySet         = "AvailabilitySet"
	VMSetTypeVirtualMachineScaleSets = "VirtualMachineScaleSets"
)

const (
	NodepoolModeSystem = "System"
	NodepoolModeUser   = "User"
)

const (
	OSTypeLinux   = "Linux"
	OSTypeWindows = "Windows"
)

const (
	OSDiskTypeManaged   = "Managed"
	OSDiskTypeEphemeral = "Ephemeral"
)

const (
	NetworkPluginKubenet = "kubenet"
	NetworkPluginAzure   = "azure"
)

const (
	IdentityTypeSystemAssigned = "SystemAssigned"
	IdentityTypeUserAssigned   = "UserAssigned"
)

const (
	LicenseTypeWindowsServer = "Windows_Server"
	LicenseTypeNone          = "None"
)

const (
	SKUNameBasic = "Basic"
	SKUTierPaid  = "Paid"
	SKUTierFree  = "Free"
)

const (
	ExtendedLocationTypeEdgeZone = "EdgeZone"
)

// KubeletIdentityKey is the identity_profile entry holding the kubelet identity.
const KubeletIdentityKey = "kubeletidentity"

const (
	DefaultNodepoolName   = "nodepool1"
	DefaultNodeCount      = 3
	DefaultNodeVMSize     = "Standard_DS2_v2"
	DefaultAdminUsername  = "azureuser"
	DefaultSSHKeyFile     = "~/.ssh/id_rsa.pub"
	ServicePrincipalMSIID = "msi"
)

// Built-in role names used by the role assignment side effects.
const (
	RoleNetworkContributor         = "Network Contributor"
	RoleContributor                = "Contributor"
	RoleAcrPull                    = "acrpull"
	RoleMonitoringMetricsPublisher = "Monitoring Metrics Publisher"
	RoleManagedIdentityOperator    = "Managed Identity Operator"
)

// Role definition ids used for existence checks at a scope.
const (
	NetworkContributorRoleID      = "4d97b98b-1d4f-4787-a291-c67834d212e7"
	ManagedIdentityOperatorRoleID = "f1a07417-d97a-45cb-824c-7a7467783830"
)

// CanIPullImage is the image used by cluster check-acr.
const CanIPullImage = "mcr.microsoft.com/aks/canipull:v0.1.0"

// AADServerAppID is the AKS managed AAD server application, identical in every cloud.
const AADServerAppID = "6dae42f8-4368-4678-94ff-3960e28e3630"

// AutoscalerProfileKeys are the accepted keys for --cluster-autoscaler-profile.
var AutoscalerProfileKeys = []string{
	"balance-similar-node-groups",
	"expander",
	"max-empty-bulk-delete",
	"max-graceful-termination-sec",
	"max-node-provision-time",
	"max-total-unready-percentage",
	"new-pod-scale-up-delay",
	"ok-total-unready-count",
	"scan-interval",
	"scale-down-delay-after-add",
	"scale-down-delay-after-delete",
	"scale-down-delay-after-failure",
	"scale-down-unneeded-time",
	"scale-down-unready-time",
	"scale-down-utilization-threshold",
	"skip-nodes-with-local-storage",
	"skip-nodes-with-system-pods",
}

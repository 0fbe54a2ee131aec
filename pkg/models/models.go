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

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
)

// APIVersion tags the container service API version the models are built for.
type APIVersion string

const (
	APIVersion20210801 APIVersion = "2021-08-01"
	APIVersion20220301 APIVersion = "2022-03-01"
	// DefaultAPIVersion matches the armcontainerservice module in go.mod.
	DefaultAPIVersion APIVersion = "2022-03-01"
)

// SupportsExtendedLocation reports whether clusters of this version carry an extended location.
func (v APIVersion) SupportsExtendedLocation() bool {
	return v >= APIVersion20210801
}

// SupportsPublicFQDN reports whether the API server access profile carries enablePrivateClusterPublicFQDN.
func (v APIVersion) SupportsPublicFQDN() bool {
	return v >= APIVersion20210801
}

// NewManagedCluster returns an empty cluster for location.
func NewManagedCluster(v APIVersion, location string) *armcontainerservice.ManagedCluster {
	mc := &armcontainerservice.ManagedCluster{
		Location:   to.Ptr(location),
		Properties: &armcontainerservice.ManagedClusterProperties{},
	}
	return mc
}

// NewExtendedLocation returns nil for versions without extended location support.
func NewExtendedLocation(v APIVersion, name string) *armcontainerservice.ExtendedLocation {
	if !v.SupportsExtendedLocation() || name == "" {
		return nil
	}
	return &armcontainerservice.ExtendedLocation{
		Name: to.Ptr(name),
		Type: to.Ptr(armcontainerservice.ExtendedLocationTypes(ExtendedLocationTypeEdgeZone)),
	}
}

func NewAgentPoolProfile(_ APIVersion, name string) *armcontainerservice.ManagedClusterAgentPoolProfile {
	return &armcontainerservice.ManagedClusterAgentPoolProfile{Name: to.Ptr(name)}
}

func NewAgentPool(_ APIVersion) *armcontainerservice.AgentPool {
	return &armcontainerservice.AgentPool{Properties: &armcontainerservice.ManagedClusterAgentPoolProfileProperties{}}
}

func NewNetworkProfile(_ APIVersion) *armcontainerservice.NetworkProfile {
	return &armcontainerservice.NetworkProfile{}
}

func NewLoadBalancerProfile(_ APIVersion) *armcontainerservice.ManagedClusterLoadBalancerProfile {
	return &armcontainerservice.ManagedClusterLoadBalancerProfile{}
}

func NewNATGatewayProfile(_ APIVersion) *armcontainerservice.ManagedClusterNATGatewayProfile {
	return &armcontainerservice.ManagedClusterNATGatewayProfile{}
}

func NewAddonProfile(_ APIVersion, enabled bool, config map[string]string) *armcontainerservice.ManagedClusterAddonProfile {
	p := &armcontainerservice.ManagedClusterAddonProfile{Enabled: to.Ptr(enabled)}
	if config != nil {
		p.Config = make(map[string]*string, len(config))
		for k, v := range config {
			p.Config[k] = to.Ptr(v)
		}
	}
	return p
}

func NewAPIServerAccessProfile(_ APIVersion) *armcontainerservice.ManagedClusterAPIServerAccessProfile {
	return &armcontainerservice.ManagedClusterAPIServerAccessProfile{}
}

func NewAADProfile(_ APIVersion) *armcontainerservice.ManagedClusterAADProfile {
	return &armcontainerservice.ManagedClusterAADProfile{}
}

func NewWindowsProfile(_ APIVersion, username, password string) *armcontainerservice.ManagedClusterWindowsProfile {
	return &armcontainerservice.ManagedClusterWindowsProfile{
		AdminUsername: to.Ptr(username),
		AdminPassword: to.Ptr(password),
	}
}

func NewLinuxProfile(_ APIVersion, username, sshKey string) *armcontainerservice.LinuxProfile {
	return &armcontainerservice.LinuxProfile{
		AdminUsername: to.Ptr(username),
		SSH: &armcontainerservice.SSHConfiguration{
			PublicKeys: []*armcontainerservice.SSHPublicKey{{KeyData: to.Ptr(sshKey)}},
		},
	}
}

func NewServicePrincipalProfile(_ APIVersion, clientID, secret string) *armcontainerservice.ManagedClusterServicePrincipalProfile {
	p := &armcontainerservice.ManagedClusterServicePrincipalProfile{ClientID: to.Ptr(clientID)}
	if secret != "" {
		p.Secret = to.Ptr(secret)
	}
	return p
}

func NewSKU(_ APIVersion, tier string) *armcontainerservice.ManagedClusterSKU {
	return &armcontainerservice.ManagedClusterSKU{
		Name: to.Ptr(armcontainerservice.ManagedClusterSKUName(SKUNameBasic)),
		Tier: to.Ptr(armcontainerservice.ManagedClusterSKUTier(tier)),
	}
}

func NewAutoUpgradeProfile(_ APIVersion, channel string) *armcontainerservice.ManagedClusterAutoUpgradeProfile {
	return &armcontainerservice.ManagedClusterAutoUpgradeProfile{
		UpgradeChannel: to.Ptr(armcontainerservice.UpgradeChannel(channel)),
	}
}

func NewSnapshot(_ APIVersion, location, nodepoolID string) *armcontainerservice.Snapshot {
	return &armcontainerservice.Snapshot{
		Location: to.Ptr(location),
		Properties: &armcontainerservice.SnapshotProperties{
			CreationData: &armcontainerservice.CreationData{SourceResourceID: to.Ptr(nodepoolID)},
		},
	}
}

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
	"fmt"
	"sort"
	"strings"
)

// Addon is one member of the closed set of cluster addons this tool can manage.
type Addon int

const (
	AddonHTTPApplicationRouting Addon = iota
	AddonMonitoring
	AddonVirtualNode
	AddonKubeDashboard
	AddonAzurePolicy
	AddonIngressAppGW
	AddonConfCom
	AddonOpenServiceMesh
	AddonKeyVaultSecretsProvider
)

// Config keys carried in addon_profiles[...].config.
const (
	MonitoringWorkspaceResourceID = "logAnalyticsWorkspaceResourceID"
	MonitoringUseAADAuth          = "useAADAuth"

	VirtualNodeSubnetName = "SubnetName"

	AppGWName           = "applicationGatewayName"
	AppGWID             = "applicationGatewayId"
	AppGWSubnetID       = "subnetId"
	AppGWSubnetCIDR     = "subnetCIDR"
	AppGWWatchNamespace = "watchNamespace"

	ConfComQuoteHelperEnabled = "ACCSGXQuoteHelperEnabled"

	SecretRotationEnabled = "enableSecretRotation"
	RotationPollInterval  = "rotationPollInterval"
)

// VirtualNodeOSType is appended to the virtual node API profile name.
const VirtualNodeOSType = "Linux"

type addonInfo struct {
	key        string
	apiName    string
	configKeys []string
}

var addonTable = map[Addon]addonInfo{
	AddonHTTPApplicationRouting:  {key: "http_application_routing", apiName: "httpApplicationRouting"},
	AddonMonitoring:              {key: "monitoring", apiName: "omsagent", configKeys: []string{MonitoringWorkspaceResourceID, MonitoringUseAADAuth}},
	AddonVirtualNode:             {key: "virtual-node", apiName: "aciConnector" + VirtualNodeOSType, configKeys: []string{VirtualNodeSubnetName}},
	AddonKubeDashboard:           {key: "kube-dashboard", apiName: "kubeDashboard"},
	AddonAzurePolicy:             {key: "azure-policy", apiName: "azurepolicy"},
	AddonIngressAppGW:            {key: "ingress-appgw", apiName: "ingressApplicationGateway", configKeys: []string{AppGWName, AppGWID, AppGWSubnetID, AppGWSubnetCIDR, AppGWWatchNamespace}},
	AddonConfCom:                 {key: "confcom", apiName: "ACCSGXDevicePlugin", configKeys: []string{ConfComQuoteHelperEnabled}},
	AddonOpenServiceMesh:         {key: "open-service-mesh", apiName: "openServiceMesh"},
	AddonKeyVaultSecretsProvider: {key: "azure-keyvault-secrets-provider", apiName: "azureKeyvaultSecretsProvider", configKeys: []string{SecretRotationEnabled, RotationPollInterval}},
}

// AllAddons lists the addons in declaration order.
func AllAddons() []Addon {
	return []Addon{
		AddonHTTPApplicationRouting,
		AddonMonitoring,
		AddonVirtualNode,
		AddonKubeDashboard,
		AddonAzurePolicy,
		AddonIngressAppGW,
		AddonConfCom,
		AddonOpenServiceMesh,
		AddonKeyVaultSecretsProvider,
	}
}

// Key is the name accepted by --enable-addons.
func (a Addon) Key() string {
	return addonTable[a].key
}

// APIName is the key of the addon in the cluster's addon_profiles.
func (a Addon) APIName() string {
	return addonTable[a].apiName
}

func (a Addon) ConfigKeys() []string {
	return addonTable[a].configKeys
}

func (a Addon) String() string {
	return a.Key()
}

// AddonFromKey resolves a user-facing addon key.
func AddonFromKey(key string) (Addon, bool) {
	for _, a := range AllAddons() {
		if a.Key() == key {
			return a, true
		}
	}
	return 0, false
}

// AddonFromAPIName resolves an addon_profiles key, case-insensitively.
func AddonFromAPIName(name string) (Addon, bool) {
	for _, a := range AllAddons() {
		if strings.EqualFold(a.APIName(), name) {
			return a, true
		}
	}
	return 0, false
}

// AddonParseError describes duplicate or unknown names in an addon list.
type AddonParseError struct {
	Duplicates []string
	Invalid    []string
	Flag       string
}

func (e *AddonParseError) Error() string {
	if len(e.Duplicates) > 0 {
		plural := ""
		if len(e.Duplicates) > 1 {
			plural = "s"
		}
		return fmt.Sprintf("Duplicate addon%s '%s' found in option %s.", plural, strings.Join(e.Duplicates, ","), e.Flag)
	}
	verb := "is"
	if len(e.Invalid) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("'%s' %s not recognized by the %s argument.", strings.Join(e.Invalid, ","), verb, e.Flag)
}

// ParseAddons splits a comma separated addon list, rejecting duplicates first and then unknown keys.
func ParseAddons(value, flag string) ([]Addon, error) {
	if value == "" {
		return nil, nil
	}
	names := strings.Split(value, ",")

	seen := map[string]int{}
	for _, n := range names {
		seen[n]++
	}
	var dups []string
	for n, c := range seen {
		if c > 1 {
			dups = append(dups, n)
		}
	}
	if len(dups) > 0 {
		sort.Strings(dups)
		return nil, &AddonParseError{Duplicates: dups, Flag: flag}
	}

	var invalid []string
	addons := make([]Addon, 0, len(names))
	for _, n := range names {
		a, ok := AddonFromKey(n)
		if !ok {
			invalid = append(invalid, n)
			continue
		}
		addons = append(addons, a)
	}
	if len(invalid) > 0 {
		return nil, &AddonParseError{Invalid: invalid, Flag: flag}
	}
	return addons, nil
}

// ContainsAddon reports whether a is present in addons.
func ContainsAddon(addons []Addon, a Addon) bool {
	for _, x := range addons {
		if x == a {
			return true
		}
	}
	return false
}

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

package roleassignment

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// addonPrincipal picks the service principal of the cluster, or else the
// identity the service created for the addon.
func addonPrincipal(mc *armcontainerservice.ManagedCluster, addonAPIName string) (string, bool, bool) {
	if mc == nil || mc.Properties == nil {
		return "", false, false
	}
	props := mc.Properties
	if sp := props.ServicePrincipalProfile; sp != nil && sp.ClientID != nil && !strings.EqualFold(*sp.ClientID, models.ServicePrincipalMSIID) {
		return *sp.ClientID, true, true
	}
	if addon, ok := props.AddonProfiles[addonAPIName]; ok && addon != nil && addon.Identity != nil && addon.Identity.ObjectID != nil {
		return *addon.Identity.ObjectID, false, true
	}
	return "", false, false
}

// AddMonitoringRoleAssignment grants Monitoring Metrics Publisher at the cluster scope.
func (a *Assigner) AddMonitoringRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster, clusterResourceID string) {
	logger := logr.FromContextOrDiscard(ctx)

	id, isSP, ok := addonPrincipal(mc, models.AddonMonitoring.APIName())
	if !ok {
		logger.Info("Could not find service principal or user assigned MSI for role assignment")
		return
	}
	if !a.Add(ctx, models.RoleMonitoringMetricsPublisher, id, isSP, clusterResourceID) {
		logger.Info("Could not create a role assignment for Monitoring addon. Are you an Owner on this subscription?")
	}
}

// AddIngressAppGWRoleAssignment grants the ingress controller access to the
// gateway resource group, its subnet, and the cluster vnet when a subnet CIDR was requested.
func (a *Assigner) AddIngressAppGWRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster) {
	logger := logr.FromContextOrDiscard(ctx)
	addonName := models.AddonIngressAppGW.APIName()

	id, isSP, ok := addonPrincipal(mc, addonName)
	if !ok {
		return
	}
	config := map[string]string{}
	if addon := mc.Properties.AddonProfiles[addonName]; addon != nil {
		for k, v := range addon.Config {
			if v != nil {
				config[k] = *v
			}
		}
	}

	if appgwID, ok := config[models.AppGWID]; ok {
		parsed, err := arm.ParseResourceID(appgwID)
		if err != nil {
			logger.Info("Invalid application gateway id", "id", appgwID, "error", err.Error())
		} else {
			scope := fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", parsed.SubscriptionID, parsed.ResourceGroupName)
			if !a.Add(ctx, models.RoleContributor, id, isSP, scope) {
				logger.Info(fmt.Sprintf("Could not create a role assignment for application gateway: %s specified in %s addon. Are you an Owner on this subscription?", appgwID, addonName))
			}
		}
	}

	if subnetID, ok := config[models.AppGWSubnetID]; ok {
		if !a.Add(ctx, models.RoleNetworkContributor, id, isSP, subnetID) {
			logger.Info(fmt.Sprintf("Could not create a role assignment for subnet: %s specified in %s addon. Are you an Owner on this subscription?", subnetID, addonName))
		}
	}

	if _, ok := config[models.AppGWSubnetCIDR]; ok {
		pools := mc.Properties.AgentPoolProfiles
		if len(pools) == 0 || pools[0] == nil || pools[0].VnetSubnetID == nil {
			return
		}
		vnetID, err := vnetOfSubnet(*pools[0].VnetSubnetID)
		if err != nil {
			logger.Info("Invalid subnet id", "id", *pools[0].VnetSubnetID, "error", err.Error())
			return
		}
		if !a.Add(ctx, models.RoleContributor, id, isSP, vnetID) {
			logger.Info(fmt.Sprintf("Could not create a role assignment for virtual network: %s specified in %s addon. Are you an Owner on this subscription?", vnetID, addonName))
		}
	}
}

// AddVirtualNodeRoleAssignment grants Contributor on the vnet enclosing vnetSubnetID.
func (a *Assigner) AddVirtualNodeRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster, vnetSubnetID string) {
	logger := logr.FromContextOrDiscard(ctx)

	vnetID, err := vnetOfSubnet(vnetSubnetID)
	if err != nil {
		logger.Info("Invalid subnet id", "id", vnetSubnetID, "error", err.Error())
		return
	}
	id, isSP, ok := addonPrincipal(mc, models.AddonVirtualNode.APIName())
	if !ok {
		logger.Info("Could not find service principal or user assigned MSI for role assignment")
		return
	}
	if !a.Add(ctx, models.RoleContributor, id, isSP, vnetID) {
		logger.Info("Could not create a role assignment for virtual node addon. Are you an Owner on this subscription?")
	}
}

func vnetOfSubnet(subnetID string) (string, error) {
	parsed, err := arm.ParseResourceID(subnetID)
	if err != nil {
		return "", err
	}
	if parsed.Parent == nil || !strings.EqualFold(parsed.ResourceType.Type, "virtualNetworks/subnets") {
		return "", fmt.Errorf("%s is not a subnet id", subnetID)
	}
	return parsed.Parent.String(), nil
}

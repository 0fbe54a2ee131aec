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
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

const (
	provisioningStateSucceeded = "Succeeded"
	provisioningStateFailed    = "Failed"

	// clusters capped below this pool count predate independent control plane upgrades.
	legacyMaxAgentPools = 8
)

// UpgradeRequest describes a cluster upgrade.
type UpgradeRequest struct {
	ResourceGroup     string
	Name              string
	KubernetesVersion string
	ControlPlaneOnly  bool
	NodeImageOnly     bool
	NoWait            bool
}

// Upgrade moves the control plane, and unless told otherwise every pool, to a
// new Kubernetes version. With NodeImageOnly it only rolls the node images.
func (o *Operations) Upgrade(ctx context.Context, req UpgradeRequest) (*armcontainerservice.ManagedCluster, error) {
	version, err := helpers.NormalizeKubernetesVersion(req.KubernetesVersion)
	if err != nil {
		return nil, err
	}
	mc, err := o.Show(ctx, req.ResourceGroup, req.Name)
	if err != nil {
		return nil, err
	}

	if ok, err := o.confirm("Kubernetes may be unavailable during cluster upgrades.\n Are you sure you want to perform this operation?"); err != nil {
		return nil, err
	} else if !ok {
		return nil, clierrors.ErrDecoratorEarlyExit
	}

	if req.NodeImageOnly {
		if version != "" {
			return nil, clierrors.MutuallyExclusiveArgument("Conflicting flags. Upgrading the Kubernetes version will also upgrade node image version. " +
				`If you only want to upgrade the node version please use the "--node-image-only" option only.`)
		}
		return o.upgradeNodeImages(ctx, req, mc)
	}

	current := deref(mc.Properties.KubernetesVersion)
	if version == "" || version == current {
		switch deref(mc.Properties.ProvisioningState) {
		case provisioningStateSucceeded:
			warn(ctx, "The cluster is already on version %s and is not in a failed state. "+
				"No operations will occur when upgrading to the same version if the cluster is not in a failed state.", current)
		case provisioningStateFailed:
			warn(ctx, "Cluster currently in failed state. Proceeding with upgrade to existing version %s "+
				"to attempt resolution of failed cluster state.", current)
		}
		version = current
	}

	upgradeAll := false
	if isLegacyCluster(mc) {
		upgradeAll = true
		if req.ControlPlaneOnly {
			msg := fmt.Sprintf("Legacy clusters do not support control plane only upgrade. All node pools will be upgraded to %s as well. Continue?", version)
			if ok, err := o.confirm(msg); err != nil {
				return nil, err
			} else if !ok {
				return nil, clierrors.ErrDecoratorEarlyExit
			}
		}
	} else {
		var msg string
		if req.ControlPlaneOnly {
			msg = fmt.Sprintf("Since control-plane-only argument is specified, this will upgrade only the control plane to %s. Node pool will not change. Continue?", version)
		} else {
			upgradeAll = true
			msg = fmt.Sprintf("Since control-plane-only argument is not specified, this will upgrade the control plane AND all nodepools to version %s. Continue?", version)
		}
		if ok, err := o.confirm(msg); err != nil {
			return nil, err
		} else if !ok {
			return nil, clierrors.ErrDecoratorEarlyExit
		}
	}

	if upgradeAll {
		for _, pool := range mc.Properties.AgentPoolProfiles {
			pool.OrchestratorVersion = &version
			pool.CreationData = nil
		}
	}
	mc.Properties.KubernetesVersion = &version
	mc.Properties.ServicePrincipalProfile = nil
	return o.put(ctx, req.ResourceGroup, req.Name, mc, req.NoWait)
}

func (o *Operations) upgradeNodeImages(ctx context.Context, req UpgradeRequest, mc *armcontainerservice.ManagedCluster) (*armcontainerservice.ManagedCluster, error) {
	ok, err := o.confirm("This node image upgrade operation will run across every node pool in the cluster " +
		"and might take a while, do you wish to continue?")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, clierrors.ErrDecoratorEarlyExit
	}
	for _, pool := range mc.Properties.AgentPoolProfiles {
		if isAvailabilitySet(pool) {
			return nil, clierrors.InvalidArgumentValue("This cluster is not using VirtualMachineScaleSets. " +
				"Node image upgrade only operation can only be applied on VirtualMachineScaleSets cluster.")
		}
	}
	// pools roll their images independently and are not awaited.
	for _, pool := range mc.Properties.AgentPoolProfiles {
		if _, err := o.Clients.AgentPools.BeginUpgradeNodeImageVersion(ctx, req.ResourceGroup, req.Name, deref(pool.Name), nil); err != nil {
			return nil, clierrors.MapAzureError(err)
		}
	}
	return o.Show(ctx, req.ResourceGroup, req.Name)
}

func isLegacyCluster(mc *armcontainerservice.ManagedCluster) bool {
	if mc.Properties.MaxAgentPools != nil && *mc.Properties.MaxAgentPools < legacyMaxAgentPools {
		return true
	}
	for _, pool := range mc.Properties.AgentPoolProfiles {
		if isAvailabilitySet(pool) {
			return true
		}
	}
	return false
}

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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const windowsPoolNameMaxLength = 6

// buildAgentPoolProfile assembles one pool from the pool flags, falling back
// to the snapshot for version, size and os settings.
func (d *decorator) buildAgentPoolProfile(ctx context.Context, defaultMode, defaultOSType string) (*armcontainerservice.ManagedClusterAgentPoolProfile, error) {
	c := d.Context
	name, err := c.NodepoolName()
	if err != nil {
		return nil, err
	}
	scaling, err := c.NodeScaling()
	if err != nil {
		return nil, err
	}
	version, err := c.KubernetesVersion(ctx)
	if err != nil {
		return nil, err
	}
	vmSize, err := c.NodeVMSize(ctx)
	if err != nil {
		return nil, err
	}
	osSKU, err := c.OSSKU(ctx)
	if err != nil {
		return nil, err
	}
	fips, err := c.EnableFIPSImage(ctx)
	if err != nil {
		return nil, err
	}
	vmSetType, err := c.VMSetType(ctx)
	if err != nil {
		return nil, err
	}
	taints, err := c.NodeTaints()
	if err != nil {
		return nil, err
	}
	kubeletConfig, err := c.KubeletConfig()
	if err != nil {
		return nil, err
	}
	osConfig, err := c.LinuxOSConfig()
	if err != nil {
		return nil, err
	}
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	pool := models.NewAgentPoolProfile(c.APIVersion, name)
	pool.Tags = ptrMap(c.NodepoolTags())
	pool.NodeLabels = ptrMap(c.NodepoolLabels())
	pool.Count = to.Ptr(scaling.NodeCount)
	pool.VMSize = to.Ptr(vmSize)
	pool.OSType = to.Ptr(armcontainerservice.OSType(defaultOSType))
	pool.Mode = to.Ptr(armcontainerservice.AgentPoolMode(defaultMode))
	pool.Type = to.Ptr(armcontainerservice.AgentPoolType(vmSetType))
	pool.OrchestratorVersion = nonZero(version)
	if osSKU != "" {
		pool.OSSKU = to.Ptr(armcontainerservice.OSSKU(osSKU))
	}
	pool.VnetSubnetID = nonZero(c.VnetSubnetID())
	pool.PodSubnetID = nonZero(c.PodSubnetID())
	pool.ProximityPlacementGroupID = nonZero(c.PPG())
	if zones := c.Zones(); len(zones) > 0 {
		pool.AvailabilityZones = ptrSlice(zones)
	}
	pool.EnableNodePublicIP = nonZero(c.EnableNodePublicIP())
	pool.NodePublicIPPrefixID = nonZero(c.NodePublicIPPrefixID())
	pool.EnableEncryptionAtHost = nonZero(c.EnableEncryptionAtHost())
	pool.EnableUltraSSD = nonZero(c.EnableUltraSSD())
	pool.EnableFIPS = nonZero(fips)
	pool.MaxPods = c.MaxPods()
	pool.OSDiskSizeGB = c.NodeOSDiskSize()
	if t := c.NodeOSDiskType(); t != "" {
		pool.OSDiskType = to.Ptr(armcontainerservice.OSDiskType(t))
	}
	if len(taints) > 0 {
		pool.NodeTaints = ptrSlice(taints)
	}
	pool.KubeletConfig = kubeletConfig
	pool.LinuxOSConfig = osConfig
	if scaling.Autoscaler {
		pool.EnableAutoScaling = to.Ptr(true)
		pool.MinCount = scaling.MinCount
		pool.MaxCount = scaling.MaxCount
	}
	if snapshot != nil {
		pool.CreationData = &armcontainerservice.CreationData{SourceResourceID: to.Ptr(c.Raw.SnapshotID)}
	}
	return pool, nil
}

// writeAgentPool sends ap for the pool named in the context.
func (d *decorator) writeAgentPool(ctx context.Context, name string, ap *armcontainerservice.AgentPool) (*armcontainerservice.AgentPool, error) {
	c := d.Context
	reqCtx, err := withCustomHeaders(ctx, c)
	if err != nil {
		return nil, err
	}
	poller, err := c.Clients.AgentPools.BeginCreateOrUpdate(reqCtx, c.ResourceGroupName(), c.Name(), name, *ap, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	resp, err := client.PollUntilDone(ctx, poller, c.NoWait(), d.PollInterval)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	if c.NoWait() {
		return nil, nil
	}
	return &resp.AgentPool, nil
}

// AgentPoolAddDecorator builds a new node pool of an existing cluster.
type AgentPoolAddDecorator struct {
	decorator
}

func NewAgentPoolAddDecorator(c *mcontext.Context) *AgentPoolAddDecorator {
	return &AgentPoolAddDecorator{decorator: decorator{Context: c}}
}

// ConstructAgentPool validates the pool flags and returns the pool body.
func (d *AgentPoolAddDecorator) ConstructAgentPool(ctx context.Context) (*armcontainerservice.AgentPool, error) {
	c := d.Context
	name, err := c.NodepoolName()
	if err != nil {
		return nil, err
	}
	exists, err := agentPoolExists(ctx, c, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, clierrors.InvalidArgumentValue("Node pool %s already exists, please try a different name, use 'aksctl nodepool list' to get current list of node pool", name)
	}

	osType := models.OSTypeLinux
	if strings.EqualFold(c.Raw.OSType, models.OSTypeWindows) {
		osType = models.OSTypeWindows
		if len(name) > windowsPoolNameMaxLength {
			return nil, clierrors.InvalidArgumentValue("Windows agent pool name can not be longer than %d characters.", windowsPoolNameMaxLength)
		}
	} else if c.Raw.OSType != "" && !strings.EqualFold(c.Raw.OSType, models.OSTypeLinux) {
		return nil, clierrors.InvalidArgumentValue("--os-type must be %s or %s", models.OSTypeLinux, models.OSTypeWindows)
	}
	mode, err := nodepoolMode(c.Raw.NodepoolMode, models.NodepoolModeUser)
	if err != nil {
		return nil, err
	}

	profile, err := d.buildAgentPoolProfile(ctx, mode, osType)
	if err != nil {
		return nil, err
	}
	if c.Raw.MaxSurge != "" {
		profile.UpgradeSettings = &armcontainerservice.AgentPoolUpgradeSettings{MaxSurge: to.Ptr(c.Raw.MaxSurge)}
	}
	return toAgentPool(c.APIVersion, profile)
}

// AddAgentPool sends the pool built by ConstructAgentPool.
func (d *AgentPoolAddDecorator) AddAgentPool(ctx context.Context, ap *armcontainerservice.AgentPool) (*armcontainerservice.AgentPool, error) {
	name, err := d.Context.NodepoolName()
	if err != nil {
		return nil, err
	}
	return d.writeAgentPool(ctx, name, ap)
}

// AgentPoolUpdateDecorator changes the autoscaler, labels, tags, taints,
// mode or surge of one node pool.
type AgentPoolUpdateDecorator struct {
	decorator
}

func NewAgentPoolUpdateDecorator(c *mcontext.Context) *AgentPoolUpdateDecorator {
	return &AgentPoolUpdateDecorator{decorator: decorator{Context: c}}
}

// UpdateAgentPoolProfileDefault fetches the pool and applies the flags.
func (d *AgentPoolUpdateDecorator) UpdateAgentPoolProfileDefault(ctx context.Context) (*armcontainerservice.AgentPool, error) {
	c := d.Context
	raw := c.Raw

	supplied := false
	for _, f := range models.NodepoolUpdateFlags {
		supplied = supplied || raw.WasSupplied(f)
	}
	if !supplied {
		options := make([]string, 0, len(models.NodepoolUpdateFlags))
		for _, f := range models.NodepoolUpdateFlags {
			options = append(options, fmt.Sprintf("%q", "--"+f))
		}
		return nil, clierrors.RequiredArgumentMissing("Please specify one or more of %s.", strings.Join(options, " or "))
	}

	set := 0
	for _, b := range []bool{raw.EnableClusterAutoscaler, raw.DisableClusterAutoscaler, raw.UpdateClusterAutoscaler} {
		if b {
			set++
		}
	}
	if set > 1 {
		return nil, clierrors.MutuallyExclusiveArgument(`Can only specify one of "--enable-cluster-autoscaler", "--disable-cluster-autoscaler" and "--update-cluster-autoscaler"`)
	}
	minCount, maxCount := raw.MinCount.Ptr(), raw.MaxCount.Ptr()
	if raw.EnableClusterAutoscaler || raw.UpdateClusterAutoscaler {
		if minCount == nil || maxCount == nil {
			return nil, clierrors.RequiredArgumentMissing("Please specify both min-count and max-count when --enable-cluster-autoscaler or --update-cluster-autoscaler set.")
		}
		if *minCount > *maxCount {
			return nil, clierrors.InvalidArgumentValue("Value of min-count should be less than or equal to value of max-count.")
		}
	}

	name, err := c.NodepoolName()
	if err != nil {
		return nil, err
	}
	resp, err := c.Clients.AgentPools.Get(ctx, c.ResourceGroupName(), c.Name(), name, nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.ResourceNotFound("The nodepool %q was not found.", name)
		}
		return nil, clierrors.MapAzureError(err)
	}
	ap := &resp.AgentPool
	if ap.Properties == nil {
		ap.Properties = &armcontainerservice.ManagedClusterAgentPoolProfileProperties{}
	}
	props := ap.Properties

	logger := logr.FromContextOrDiscard(ctx)
	enabled := deref(props.EnableAutoScaling)
	switch {
	case raw.EnableClusterAutoscaler && enabled:
		logger.Info("Autoscaler is already enabled for this node pool.\nPlease run \"aksctl nodepool update --update-cluster-autoscaler\" if you want to update min-count or max-count.")
		return nil, clierrors.ErrDecoratorEarlyExit
	case raw.UpdateClusterAutoscaler && !enabled:
		return nil, clierrors.InvalidArgumentValue("Autoscaler is not enabled for this node pool.\nRun \"aksctl nodepool update --enable-cluster-autoscaler\" to enable cluster with min-count and max-count.")
	case raw.DisableClusterAutoscaler && !enabled:
		logger.Info("Autoscaler is already disabled for this node pool.")
		return nil, clierrors.ErrDecoratorEarlyExit
	case raw.EnableClusterAutoscaler:
		props.EnableAutoScaling = to.Ptr(true)
		props.MinCount, props.MaxCount = minCount, maxCount
	case raw.UpdateClusterAutoscaler:
		props.MinCount, props.MaxCount = minCount, maxCount
	case raw.DisableClusterAutoscaler:
		props.EnableAutoScaling = to.Ptr(false)
		props.MinCount, props.MaxCount = nil, nil
	}

	if raw.WasSupplied("tags") {
		ap.Properties.Tags = emptyIfNil(ptrMap(c.NodepoolTags()))
	}
	if raw.WasSupplied("labels") {
		ap.Properties.NodeLabels = emptyIfNil(ptrMap(c.NodepoolLabels()))
	}
	if raw.WasSupplied("node-taints") {
		taints, err := helpers.ParseTaints(raw.NodeTaints)
		if err != nil {
			return nil, err
		}
		props.NodeTaints = ptrSlice(taints)
		if props.NodeTaints == nil {
			props.NodeTaints = []*string{}
		}
	}
	if raw.WasSupplied("mode") {
		mode, err := nodepoolMode(raw.NodepoolMode, "")
		if err != nil {
			return nil, err
		}
		props.Mode = to.Ptr(armcontainerservice.AgentPoolMode(mode))
	}
	if raw.WasSupplied("max-surge") {
		if props.UpgradeSettings == nil {
			props.UpgradeSettings = &armcontainerservice.AgentPoolUpgradeSettings{}
		}
		props.UpgradeSettings.MaxSurge = to.Ptr(raw.MaxSurge)
	}
	return ap, nil
}

// UpdateAgentPool writes the pool back.
func (d *AgentPoolUpdateDecorator) UpdateAgentPool(ctx context.Context, ap *armcontainerservice.AgentPool) (*armcontainerservice.AgentPool, error) {
	name, err := d.Context.NodepoolName()
	if err != nil {
		return nil, err
	}
	return d.writeAgentPool(ctx, name, ap)
}

func nodepoolMode(mode, def string) (string, error) {
	switch {
	case mode == "" && def != "":
		return def, nil
	case strings.EqualFold(mode, models.NodepoolModeSystem):
		return models.NodepoolModeSystem, nil
	case strings.EqualFold(mode, models.NodepoolModeUser):
		return models.NodepoolModeUser, nil
	}
	return "", clierrors.InvalidArgumentValue("--mode must be %s or %s", models.NodepoolModeSystem, models.NodepoolModeUser)
}

func agentPoolExists(ctx context.Context, c *mcontext.Context, name string) (bool, error) {
	pager := c.Clients.AgentPools.NewListPager(c.ResourceGroupName(), c.Name(), nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return false, clierrors.MapAzureError(err)
		}
		for _, ap := range page.Value {
			if ap != nil && strings.EqualFold(deref(ap.Name), name) {
				return true, nil
			}
		}
	}
	return false, nil
}

// toAgentPool moves a cluster pool profile into the standalone pool shape.
// Both carry the same properties apart from the name.
func toAgentPool(v models.APIVersion, profile *armcontainerservice.ManagedClusterAgentPoolProfile) (*armcontainerservice.AgentPool, error) {
	raw, err := json.Marshal(profile)
	if err != nil {
		return nil, clierrors.CLIInternal("failed to encode agent pool profile: %v", err)
	}
	ap := models.NewAgentPool(v)
	if err := json.Unmarshal(raw, ap.Properties); err != nil {
		return nil, clierrors.CLIInternal("failed to decode agent pool profile: %v", err)
	}
	return ap, nil
}

func emptyIfNil(m map[string]*string) map[string]*string {
	if m == nil {
		return map[string]*string{}
	}
	return m
}

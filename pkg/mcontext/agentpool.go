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

package mcontext

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Masterminds/semver/v3"
	"github.com/go-logr/logr"
	"sigs.k8s.io/yaml"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// availabilitySetCutoff is the first version that defaults to scale sets.
var availabilitySetCutoff = semver.MustParse("1.12.9")

func (c *Context) agentPoolProfile() *armcontainerservice.ManagedClusterAgentPoolProfile {
	p := c.properties()
	if p == nil || len(p.AgentPoolProfiles) == 0 {
		return nil
	}
	return p.AgentPoolProfiles[0]
}

// createPool is the first pool of the record, consulted only in create mode.
func (c *Context) createPool() *armcontainerservice.ManagedClusterAgentPoolProfile {
	if !c.isCreate() {
		return nil
	}
	return c.agentPoolProfile()
}

// Snapshot fetches the node pool snapshot named by --snapshot-id once.
func (c *Context) Snapshot(ctx context.Context) (*armcontainerservice.Snapshot, error) {
	if s, ok := Lookup[*armcontainerservice.Snapshot](c.Intermediates, KeySnapshot); ok {
		return s, nil
	}
	if c.Raw.SnapshotID == "" {
		return nil, nil
	}
	id, err := arm.ParseResourceID(c.Raw.SnapshotID)
	if err != nil {
		return nil, clierrors.InvalidArgumentValue("--snapshot-id is not a valid Azure resource ID.")
	}
	resp, err := c.Clients.Snapshots.Get(ctx, id.ResourceGroupName, id.Name, nil)
	if err != nil {
		if client.IsNotFoundErr(err) {
			return nil, clierrors.ResourceNotFound("Snapshot '%s' not found.", c.Raw.SnapshotID)
		}
		return nil, clierrors.MapAzureError(err)
	}
	snapshot := &resp.Snapshot
	c.Intermediates.Set(ctx, KeySnapshot, snapshot, true)
	return snapshot, nil
}

func snapshotProperties(s *armcontainerservice.Snapshot) *armcontainerservice.SnapshotProperties {
	if s == nil || s.Properties == nil {
		return &armcontainerservice.SnapshotProperties{}
	}
	return s.Properties
}

func (c *Context) NodepoolName() (string, error) {
	name := c.Raw.NodepoolName
	if pool := c.createPool(); pool != nil && pool.Name != nil {
		name = *pool.Name
	}
	if name == "" {
		name = models.DefaultNodepoolName
	}
	if err := helpers.ValidateNodepoolName(name); err != nil {
		return "", err
	}
	return name, nil
}

func (c *Context) NodepoolTags() map[string]string {
	if pool := c.createPool(); pool != nil && pool.Tags != nil {
		return derefMap(pool.Tags)
	}
	return c.Raw.NodepoolTags
}

func (c *Context) NodepoolLabels() map[string]string {
	if pool := c.createPool(); pool != nil && pool.NodeLabels != nil {
		return derefMap(pool.NodeLabels)
	}
	return c.Raw.NodepoolLabels
}

// KubernetesVersion falls back to the snapshot version.
func (c *Context) KubernetesVersion(ctx context.Context) (string, error) {
	version := c.Raw.KubernetesVersion
	if p := c.properties(); c.isCreate() && p != nil && p.KubernetesVersion != nil {
		version = *p.KubernetesVersion
	}
	if version == "" {
		snapshot, err := c.Snapshot(ctx)
		if err != nil {
			return "", err
		}
		version = deref(snapshotProperties(snapshot).KubernetesVersion)
	}
	return helpers.NormalizeKubernetesVersion(version)
}

func (c *Context) NodeVMSize(ctx context.Context) (string, error) {
	if pool := c.createPool(); pool != nil && pool.VMSize != nil {
		return *pool.VMSize, nil
	}
	if c.Raw.NodeVMSize != "" {
		return c.Raw.NodeVMSize, nil
	}
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	if size := deref(snapshotProperties(snapshot).VMSize); size != "" {
		return size, nil
	}
	return models.DefaultNodeVMSize, nil
}

func (c *Context) OSSKU(ctx context.Context) (string, error) {
	if pool := c.createPool(); pool != nil && pool.OSSKU != nil {
		return string(*pool.OSSKU), nil
	}
	if c.Raw.OSSKU != "" {
		return c.Raw.OSSKU, nil
	}
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return "", err
	}
	return string(deref(snapshotProperties(snapshot).OSSKU)), nil
}

func (c *Context) EnableFIPSImage(ctx context.Context) (bool, error) {
	if pool := c.createPool(); pool != nil && pool.EnableFIPS != nil {
		return *pool.EnableFIPS, nil
	}
	if c.Raw.EnableFIPSImage {
		return true, nil
	}
	snapshot, err := c.Snapshot(ctx)
	if err != nil {
		return false, err
	}
	return deref(snapshotProperties(snapshot).EnableFIPS), nil
}

func (c *Context) VnetSubnetID() string {
	if pool := c.createPool(); pool != nil && pool.VnetSubnetID != nil {
		return *pool.VnetSubnetID
	}
	return c.Raw.VnetSubnetID
}

func (c *Context) PodSubnetID() string {
	if pool := c.createPool(); pool != nil && pool.PodSubnetID != nil {
		return *pool.PodSubnetID
	}
	return c.Raw.PodSubnetID
}

func (c *Context) PPG() string {
	if pool := c.createPool(); pool != nil && pool.ProximityPlacementGroupID != nil {
		return *pool.ProximityPlacementGroupID
	}
	return c.Raw.PPG
}

func (c *Context) Zones() []string {
	if pool := c.createPool(); pool != nil && pool.AvailabilityZones != nil {
		return derefSlice(pool.AvailabilityZones)
	}
	return c.Raw.Zones
}

func (c *Context) EnableNodePublicIP() bool {
	if pool := c.createPool(); pool != nil && pool.EnableNodePublicIP != nil {
		return *pool.EnableNodePublicIP
	}
	return c.Raw.EnableNodePublicIP
}

func (c *Context) NodePublicIPPrefixID() string {
	if pool := c.createPool(); pool != nil && pool.NodePublicIPPrefixID != nil {
		return *pool.NodePublicIPPrefixID
	}
	return c.Raw.NodePublicIPPrefixID
}

func (c *Context) EnableEncryptionAtHost() bool {
	if pool := c.createPool(); pool != nil && pool.EnableEncryptionAtHost != nil {
		return *pool.EnableEncryptionAtHost
	}
	return c.Raw.EnableEncryptionAtHost
}

func (c *Context) EnableUltraSSD() bool {
	if pool := c.createPool(); pool != nil && pool.EnableUltraSSD != nil {
		return *pool.EnableUltraSSD
	}
	return c.Raw.EnableUltraSSD
}

// MaxPods treats zero as unset.
func (c *Context) MaxPods() *int32 {
	v := c.Raw.MaxPods
	if pool := c.createPool(); pool != nil && pool.MaxPods != nil {
		v = *pool.MaxPods
	}
	if v == 0 {
		return nil
	}
	return &v
}

// NodeOSDiskSize treats zero as unset.
func (c *Context) NodeOSDiskSize() *int32 {
	v := c.Raw.NodeOSDiskSize
	if pool := c.createPool(); pool != nil && pool.OSDiskSizeGB != nil {
		v = *pool.OSDiskSizeGB
	}
	if v == 0 {
		return nil
	}
	return &v
}

func (c *Context) NodeOSDiskType() string {
	if pool := c.createPool(); pool != nil && pool.OSDiskType != nil {
		return string(*pool.OSDiskType)
	}
	return c.Raw.NodeOSDiskType
}

func (c *Context) NodeTaints() ([]string, error) {
	if pool := c.createPool(); pool != nil && pool.NodeTaints != nil {
		return derefSlice(pool.NodeTaints), nil
	}
	return helpers.ParseTaints(c.Raw.NodeTaints)
}

// VMSetType defaults by Kubernetes version and normalizes case.
func (c *Context) VMSetType(ctx context.Context) (string, error) {
	if pool := c.createPool(); pool != nil && pool.Type != nil {
		return string(*pool.Type), nil
	}
	vmSetType := c.Raw.VMSetType
	if vmSetType == "" {
		version, err := c.KubernetesVersion(ctx)
		if err != nil {
			return "", err
		}
		vmSetType = models.VMSetTypeVirtualMachineScaleSets
		if version != "" {
			if v, err := semver.NewVersion(version); err == nil && v.LessThan(availabilitySetCutoff) {
				vmSetType = models.VMSetTypeAvailabilitySet
			}
		}
	}
	switch strings.ToLower(vmSetType) {
	case strings.ToLower(models.VMSetTypeVirtualMachineScaleSets):
		return models.VMSetTypeVirtualMachineScaleSets, nil
	case strings.ToLower(models.VMSetTypeAvailabilitySet):
		return models.VMSetTypeAvailabilitySet, nil
	}
	return "", helpers.ValidateVMSetType(vmSetType)
}

// NodeScaling is the node count and autoscaler settings of the first pool.
type NodeScaling struct {
	NodeCount  int32
	Autoscaler bool
	MinCount   *int32
	MaxCount   *int32
}

// NodeScaling reads the node count and autoscaler flags together because
// they are validated against each other.
func (c *Context) NodeScaling() (NodeScaling, error) {
	s := NodeScaling{
		NodeCount:  c.Raw.NodeCount,
		Autoscaler: c.Raw.EnableClusterAutoscaler,
		MinCount:   c.Raw.MinCount.Ptr(),
		MaxCount:   c.Raw.MaxCount.Ptr(),
	}
	if pool := c.createPool(); pool != nil {
		if pool.Count != nil {
			s.NodeCount = *pool.Count
		}
		if pool.EnableAutoScaling != nil {
			s.Autoscaler = *pool.EnableAutoScaling
			s.MinCount = pool.MinCount
			s.MaxCount = pool.MaxCount
		}
	}
	if s.NodeCount == 0 && c.isCreate() && !c.Raw.WasSupplied("node-count") {
		s.NodeCount = models.DefaultNodeCount
	}
	if err := validateCreateScaling(s); err != nil {
		return NodeScaling{}, err
	}
	return s, nil
}

func validateCreateScaling(s NodeScaling) error {
	if s.Autoscaler {
		if s.MinCount == nil || s.MaxCount == nil {
			return clierrors.RequiredArgumentMissing("Please specify both min-count and max-count when --enable-cluster-autoscaler enabled")
		}
		if *s.MinCount > *s.MaxCount {
			return clierrors.InvalidArgumentValue("Value of min-count should be less than or equal to value of max-count")
		}
		if s.NodeCount < *s.MinCount || s.NodeCount > *s.MaxCount {
			return clierrors.InvalidArgumentValue("node-count is not in the range of min-count and max-count")
		}
		return nil
	}
	if s.MinCount != nil || s.MaxCount != nil {
		return clierrors.RequiredArgumentMissing("min-count and max-count are required for --enable-cluster-autoscaler, please use the flag")
	}
	return nil
}

// AutoscalerUpdate is the requested change to the autoscaler of the only pool.
type AutoscalerUpdate struct {
	Enable   bool
	Disable  bool
	Update   bool
	MinCount *int32
	MaxCount *int32
}

// AutoscalerUpdate validates the update flags against the existing pools.
// Requests that would not change anything end the update early.
func (c *Context) AutoscalerUpdate(ctx context.Context) (AutoscalerUpdate, error) {
	u := AutoscalerUpdate{
		Enable:   c.Raw.EnableClusterAutoscaler,
		Disable:  c.Raw.DisableClusterAutoscaler,
		Update:   c.Raw.UpdateClusterAutoscaler,
		MinCount: c.Raw.MinCount.Ptr(),
		MaxCount: c.Raw.MaxCount.Ptr(),
	}
	set := 0
	for _, b := range []bool{u.Enable, u.Disable, u.Update} {
		if b {
			set++
		}
	}
	if set > 1 {
		return u, clierrors.MutuallyExclusiveArgument(`Can only specify one of "--enable-cluster-autoscaler", "--disable-cluster-autoscaler" and "--update-cluster-autoscaler"`)
	}
	if set == 0 {
		return u, nil
	}
	if u.Enable || u.Update {
		if u.MinCount == nil || u.MaxCount == nil {
			return u, clierrors.RequiredArgumentMissing("Please specify both min-count and max-count when --enable-cluster-autoscaler or --update-cluster-autoscaler set.")
		}
		if *u.MinCount > *u.MaxCount {
			return u, clierrors.InvalidArgumentValue("Value of min-count should be less than or equal to value of max-count.")
		}
	}

	p := c.properties()
	if p == nil || len(p.AgentPoolProfiles) == 0 {
		return u, clierrors.Unknown("Encounter an unexpected error while getting agent pool profiles from the cluster in the process of updating agentpool profile.")
	}
	if len(p.AgentPoolProfiles) > 1 {
		return u, clierrors.ArgumentUsage(`There are more than one node pool in the cluster. Please use "aksctl nodepool" command to update per node pool auto scaler settings`)
	}

	logger := logr.FromContextOrDiscard(ctx)
	enabled := deref(p.AgentPoolProfiles[0].EnableAutoScaling)
	switch {
	case u.Enable && enabled:
		logger.V(0).Info("Cluster autoscaler is already enabled for this node pool.\nPlease run \"aksctl cluster update --update-cluster-autoscaler\" if you want to update min-count or max-count.")
		return u, clierrors.ErrDecoratorEarlyExit
	case u.Update && !enabled:
		return u, clierrors.InvalidArgumentValue("Cluster autoscaler is not enabled for this node pool.\nRun \"aksctl nodepool update --enable-cluster-autoscaler\" to enable cluster with min-count and max-count.")
	case u.Disable && !enabled:
		logger.V(0).Info("Cluster autoscaler is already disabled for this node pool.")
		return u, clierrors.ErrDecoratorEarlyExit
	}
	return u, nil
}

// KubeletConfig loads --kubelet-config, JSON or YAML.
func (c *Context) KubeletConfig() (*armcontainerservice.KubeletConfig, error) {
	if pool := c.createPool(); pool != nil && pool.KubeletConfig != nil {
		return pool.KubeletConfig, nil
	}
	if c.Raw.KubeletConfig == "" {
		return nil, nil
	}
	var cfg armcontainerservice.KubeletConfig
	if err := c.loadConfigFile(c.Raw.KubeletConfig, "kubelet config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LinuxOSConfig loads --linux-os-config, JSON or YAML.
func (c *Context) LinuxOSConfig() (*armcontainerservice.LinuxOSConfig, error) {
	if pool := c.createPool(); pool != nil && pool.LinuxOSConfig != nil {
		return pool.LinuxOSConfig, nil
	}
	if c.Raw.LinuxOSConfig == "" {
		return nil, nil
	}
	var cfg armcontainerservice.LinuxOSConfig
	if err := c.loadConfigFile(c.Raw.LinuxOSConfig, "linux os config", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Context) loadConfigFile(path, what string, into any) error {
	content, err := c.ReadFile(path)
	if err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, what+" file "+path+" not found.")
	}
	if err := yaml.Unmarshal(content, into); err != nil {
		return clierrors.InvalidArgumentValue("%s file at %s is not valid: %v", what, path, err)
	}
	return nil
}

func derefSlice(in []*string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}

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

package nodepool

import (
	"context"
	"fmt"
	"net/http"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

const snapshotHeader = "AKSSnapshotId"

// Operations manages the agent pools of a cluster outside of the create and
// update decorators.
type Operations struct {
	Clients  *client.Clients
	Prompter prompt.Prompter
	Out      io.Writer

	// Yes answers every confirmation with yes.
	Yes          bool
	PollInterval time.Duration
}

func New(clients *client.Clients, prompter prompt.Prompter, yes bool) *Operations {
	return &Operations{
		Clients:      clients,
		Prompter:     prompter,
		Out:          os.Stdout,
		Yes:          yes,
		PollInterval: client.StandardPollInterval,
	}
}

func (o *Operations) confirm(msg string) (bool, error) {
	if o.Yes {
		return true, nil
	}
	p := o.Prompter
	if p == nil {
		p = prompt.Refuse{}
	}
	return p.Confirm(msg, false)
}

// Show returns one pool.
func (o *Operations) Show(ctx context.Context, resourceGroup, clusterName, name string) (*armcontainerservice.AgentPool, error) {
	resp, err := o.Clients.AgentPools.Get(ctx, resourceGroup, clusterName, name, nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.ResourceNotFound("Node pool %s doesnt exist, use 'aksctl nodepool list' to get current node pool list", name)
		}
		return nil, clierrors.MapAzureError(err)
	}
	pool := resp.AgentPool
	if pool.Properties == nil {
		pool.Properties = &armcontainerservice.ManagedClusterAgentPoolProfileProperties{}
	}
	return &pool, nil
}

// List returns every pool of the cluster.
func (o *Operations) List(ctx context.Context, resourceGroup, clusterName string) ([]*armcontainerservice.AgentPool, error) {
	var pools []*armcontainerservice.AgentPool
	pager := o.Clients.AgentPools.NewListPager(resourceGroup, clusterName, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, clierrors.MapAzureError(err)
		}
		pools = append(pools, page.Value...)
	}
	return pools, nil
}

// GetUpgradeProfile returns the versions a pool can move to.
func (o *Operations) GetUpgradeProfile(ctx context.Context, resourceGroup, clusterName, name string) (*armcontainerservice.AgentPoolUpgradeProfile, error) {
	resp, err := o.Clients.AgentPools.GetUpgradeProfile(ctx, resourceGroup, clusterName, name, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.AgentPoolUpgradeProfile, nil
}

// Delete removes a pool after checking it exists.
func (o *Operations) Delete(ctx context.Context, resourceGroup, clusterName, name string, noWait bool) error {
	pools, err := o.List(ctx, resourceGroup, clusterName)
	if err != nil {
		return err
	}
	found := false
	for _, pool := range pools {
		if pool.Name != nil && strings.EqualFold(*pool.Name, name) {
			found = true
			break
		}
	}
	if !found {
		return clierrors.InvalidArgumentValue("Node pool %s doesnt exist, use 'aksctl nodepool list' to get current node pool list", name)
	}
	poller, err := o.Clients.AgentPools.BeginDelete(ctx, resourceGroup, clusterName, name, nil)
	if err != nil {
		return clierrors.MapAzureError(err)
	}
	if _, err := client.PollUntilDone(ctx, poller, noWait, o.PollInterval); err != nil {
		return clierrors.MapAzureError(err)
	}
	return nil
}

// Scale sets the node count of a pool.
func (o *Operations) Scale(ctx context.Context, resourceGroup, clusterName, name string, count int32, noWait bool) (*armcontainerservice.AgentPool, error) {
	pool, err := o.Show(ctx, resourceGroup, clusterName, name)
	if err != nil {
		return nil, err
	}
	props := pool.Properties
	if props.EnableAutoScaling != nil && *props.EnableAutoScaling {
		return nil, clierrors.InvalidArgumentValue("Cannot scale cluster autoscaler enabled node pool.")
	}
	if props.Count != nil && *props.Count == count {
		return nil, clierrors.InvalidArgumentValue("The new node count is the same as the current node count.")
	}
	props.Count = &count
	return o.put(ctx, resourceGroup, clusterName, name, pool, noWait, nil)
}

// UpgradeRequest describes a pool upgrade.
type UpgradeRequest struct {
	ResourceGroup     string
	ClusterName       string
	Name              string
	KubernetesVersion string
	NodeImageOnly     bool
	MaxSurge          string
	// SnapshotID seeds the pool from a node pool snapshot.
	SnapshotID    string
	CustomHeaders string
	NoWait        bool
}

// Upgrade moves a pool to a new Kubernetes version, or only rolls its node
// image with NodeImageOnly.
func (o *Operations) Upgrade(ctx context.Context, req UpgradeRequest) (*armcontainerservice.AgentPool, error) {
	version, err := helpers.NormalizeKubernetesVersion(req.KubernetesVersion)
	if err != nil {
		return nil, err
	}
	if version != "" && req.NodeImageOnly {
		return nil, clierrors.MutuallyExclusiveArgument("Conflicting flags. Upgrading the Kubernetes version will also upgrade node image version. " +
			`If you only want to upgrade the node version please use the "--node-image-only" option only.`)
	}
	if req.MaxSurge != "" && req.NodeImageOnly {
		return nil, clierrors.MutuallyExclusiveArgument("Conflicting flags. Unable to specify max-surge with node-image-only." +
			`If you want to use max-surge with a node image upgrade, please first update max-surge using "aksctl nodepool update --max-surge".`)
	}
	if req.NodeImageOnly {
		return o.upgradeNodeImage(ctx, req)
	}

	var creationData *armcontainerservice.CreationData
	if req.SnapshotID != "" {
		snapshot, err := o.snapshot(ctx, req.SnapshotID)
		if err != nil {
			return nil, err
		}
		if version == "" && snapshot.Properties != nil && snapshot.Properties.KubernetesVersion != nil {
			version = *snapshot.Properties.KubernetesVersion
		}
		creationData = &armcontainerservice.CreationData{SourceResourceID: &req.SnapshotID}
	}

	pool, err := o.Show(ctx, req.ResourceGroup, req.ClusterName, req.Name)
	if err != nil {
		return nil, err
	}
	props := pool.Properties
	current := deref(props.OrchestratorVersion)
	if version == "" || version == current {
		msg := "The new kubernetes version is the same as the current kubernetes version."
		switch deref(props.ProvisioningState) {
		case "Succeeded":
			msg = fmt.Sprintf("The cluster is already on version %s and is not in a failed state. "+
				"No operations will occur when upgrading to the same version if the cluster is not in a failed state.", current)
		case "Failed":
			msg = fmt.Sprintf("Cluster currently in failed state. Proceeding with upgrade to existing version %s "+
				"to attempt resolution of failed cluster state.", current)
		}
		ok, err := o.confirm(msg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, clierrors.ErrDecoratorEarlyExit
		}
		version = current
	}

	props.OrchestratorVersion = &version
	props.CreationData = creationData
	if props.UpgradeSettings == nil {
		props.UpgradeSettings = &armcontainerservice.AgentPoolUpgradeSettings{}
	}
	if req.MaxSurge != "" {
		maxSurge := req.MaxSurge
		props.UpgradeSettings.MaxSurge = &maxSurge
	}
	headers, err := helpers.CustomHeaders(req.CustomHeaders)
	if err != nil {
		return nil, err
	}
	return o.put(ctx, req.ResourceGroup, req.ClusterName, req.Name, pool, req.NoWait, headers)
}

func (o *Operations) upgradeNodeImage(ctx context.Context, req UpgradeRequest) (*armcontainerservice.AgentPool, error) {
	if req.SnapshotID != "" {
		ctx = policy.WithHTTPHeader(ctx, http.Header{snapshotHeader: []string{req.SnapshotID}})
	}
	poller, err := o.Clients.AgentPools.BeginUpgradeNodeImageVersion(ctx, req.ResourceGroup, req.ClusterName, req.Name, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	if _, err := client.PollUntilDone(ctx, poller, req.NoWait, o.PollInterval); err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	if req.NoWait {
		return nil, nil
	}
	return o.Show(ctx, req.ResourceGroup, req.ClusterName, req.Name)
}

func (o *Operations) snapshot(ctx context.Context, id string) (*armcontainerservice.Snapshot, error) {
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, clierrors.InvalidArgumentValue("--snapshot-id is not a valid Azure resource ID.")
	}
	resp, err := o.Clients.Snapshots.Get(ctx, rid.ResourceGroupName, rid.Name, nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.InvalidArgumentValue("Snapshot %s not found.", id)
		}
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.Snapshot, nil
}

func (o *Operations) put(ctx context.Context, resourceGroup, clusterName, name string, pool *armcontainerservice.AgentPool, noWait bool, headers http.Header) (*armcontainerservice.AgentPool, error) {
	if len(headers) > 0 {
		ctx = policy.WithHTTPHeader(ctx, headers)
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("updating agent pool", "cluster", clusterName, "pool", name)
	poller, err := o.Clients.AgentPools.BeginCreateOrUpdate(ctx, resourceGroup, clusterName, name, *pool, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	resp, err := client.PollUntilDone(ctx, poller, noWait, o.PollInterval)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	if noWait {
		return nil, nil
	}
	return &resp.AgentPool, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

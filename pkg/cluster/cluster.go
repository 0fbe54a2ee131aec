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
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

// Operations runs the cluster commands that read or write a cluster
// without going through the create and update decorators.
type Operations struct {
	Clients    *client.Clients
	Credential azcore.TokenCredential
	Prompter   prompt.Prompter
	CloudName  string
	Out        io.Writer
	// KubeClient defaults to NewKubeClient.
	KubeClient KubeClientFactory

	// Yes answers every confirmation with yes.
	Yes          bool
	PollInterval time.Duration
}

func New(clients *client.Clients, credential azcore.TokenCredential, prompter prompt.Prompter, cloudName string, yes bool) *Operations {
	return &Operations{
		Clients:      clients,
		Credential:   credential,
		Prompter:     prompter,
		CloudName:    cloudName,
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

// Show returns the cluster.
func (o *Operations) Show(ctx context.Context, resourceGroup, name string) (*armcontainerservice.ManagedCluster, error) {
	resp, err := o.Clients.ManagedClusters.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.ResourceNotFound("The cluster '%s' under resource group '%s' was not found.", name, resourceGroup)
		}
		return nil, clierrors.MapAzureError(err)
	}
	mc := resp.ManagedCluster
	if mc.Properties == nil {
		mc.Properties = &armcontainerservice.ManagedClusterProperties{}
	}
	return &mc, nil
}

// List returns the clusters of a resource group, or of the subscription
// when resourceGroup is empty.
func (o *Operations) List(ctx context.Context, resourceGroup string) ([]*armcontainerservice.ManagedCluster, error) {
	var clusters []*armcontainerservice.ManagedCluster
	if resourceGroup != "" {
		pager := o.Clients.ManagedClusters.NewListByResourceGroupPager(resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, clierrors.MapAzureError(err)
			}
			clusters = append(clusters, page.Value...)
		}
		return clusters, nil
	}
	pager := o.Clients.ManagedClusters.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, clierrors.MapAzureError(err)
		}
		clusters = append(clusters, page.Value...)
	}
	return clusters, nil
}

// Delete removes the cluster after confirmation.
func (o *Operations) Delete(ctx context.Context, resourceGroup, name string, noWait bool) error {
	ok, err := o.confirm("Are you sure you want to perform this operation?")
	if err != nil {
		return err
	}
	if !ok {
		return clierrors.ErrDecoratorEarlyExit
	}
	poller, err := o.Clients.ManagedClusters.BeginDelete(ctx, resourceGroup, name, nil)
	if err != nil {
		return clierrors.MapAzureError(err)
	}
	if _, err := client.PollUntilDone(ctx, poller, noWait, o.PollInterval); err != nil {
		return clierrors.MapAzureError(err)
	}
	return nil
}

// ScaleRequest sets the node count of one pool of the cluster.
type ScaleRequest struct {
	ResourceGroup string
	Name          string
	NodepoolName  string
	NodeCount     int32
	NoWait        bool
}

// Scale changes the node count of a pool through a cluster write.
func (o *Operations) Scale(ctx context.Context, req ScaleRequest) (*armcontainerservice.ManagedCluster, error) {
	mc, err := o.Show(ctx, req.ResourceGroup, req.Name)
	if err != nil {
		return nil, err
	}
	pools := mc.Properties.AgentPoolProfiles
	if len(pools) > 1 && req.NodepoolName == "" {
		return nil, clierrors.RequiredArgumentMissing("There are more than one node pool in the cluster. " +
			"Please specify nodepool name or use aksctl nodepool command to scale node pool")
	}
	for _, pool := range pools {
		if req.NodepoolName != "" && deref(pool.Name) != req.NodepoolName {
			continue
		}
		if deref(pool.EnableAutoScaling) {
			return nil, clierrors.InvalidArgumentValue("Cannot scale cluster autoscaler enabled node pool.")
		}
		count := req.NodeCount
		pool.Count = &count
		mc.Properties.ServicePrincipalProfile = nil
		return o.put(ctx, req.ResourceGroup, req.Name, mc, req.NoWait)
	}
	return nil, clierrors.ResourceNotFound("The nodepool %q was not found.", req.NodepoolName)
}

func (o *Operations) put(ctx context.Context, resourceGroup, name string, mc *armcontainerservice.ManagedCluster, noWait bool) (*armcontainerservice.ManagedCluster, error) {
	poller, err := o.Clients.ManagedClusters.BeginCreateOrUpdate(ctx, resourceGroup, name, *mc, nil)
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
	return &resp.ManagedCluster, nil
}

func warn(ctx context.Context, format string, args ...any) {
	logr.FromContextOrDiscard(ctx).Info("WARNING: " + fmt.Sprintf(format, args...))
}

func isAvailabilitySet(pool *armcontainerservice.ManagedClusterAgentPoolProfile) bool {
	return pool.Type != nil && strings.EqualFold(string(*pool.Type), string(armcontainerservice.AgentPoolTypeAvailabilitySet))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

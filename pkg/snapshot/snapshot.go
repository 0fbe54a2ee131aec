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

package snapshot

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

// Operations manages node pool snapshots.
type Operations struct {
	Clients  *client.Clients
	Prompter prompt.Prompter
	Yes      bool
}

func New(clients *client.Clients, prompter prompt.Prompter, yes bool) *Operations {
	return &Operations{Clients: clients, Prompter: prompter, Yes: yes}
}

// CreateRequest snapshots a node pool.
type CreateRequest struct {
	ResourceGroup string
	Name          string
	NodepoolID    string
	// Location defaults to the resource group location.
	Location      string
	Tags          map[string]string
	CustomHeaders string
}

// Create snapshots the node pool named by req.NodepoolID.
func (o *Operations) Create(ctx context.Context, req CreateRequest) (*armcontainerservice.Snapshot, error) {
	if err := helpers.ValidateResourceIDFlag("nodepool-id", req.NodepoolID); err != nil {
		return nil, err
	}
	location := req.Location
	if location == "" {
		rg, err := o.Clients.ResourceGroups.Get(ctx, req.ResourceGroup, nil)
		if err != nil {
			return nil, clierrors.MapAzureError(err)
		}
		if rg.Location != nil {
			location = *rg.Location
		}
	}

	snapshot := models.NewSnapshot(models.DefaultAPIVersion, location, req.NodepoolID)
	snapshot.Name = &req.Name
	snapshot.Tags = toPtrMap(req.Tags)

	headers, err := helpers.CustomHeaders(req.CustomHeaders)
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		ctx = policy.WithHTTPHeader(ctx, headers)
	}
	resp, err := o.Clients.Snapshots.CreateOrUpdate(ctx, req.ResourceGroup, req.Name, *snapshot, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.Snapshot, nil
}

// Show returns a snapshot.
func (o *Operations) Show(ctx context.Context, resourceGroup, name string) (*armcontainerservice.Snapshot, error) {
	resp, err := o.Clients.Snapshots.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		if clierrors.IsNotFound(err) {
			return nil, clierrors.ResourceNotFound("Snapshot %q not found in resource group %q.", name, resourceGroup)
		}
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.Snapshot, nil
}

// List returns the snapshots of a resource group, or of the subscription
// when resourceGroup is empty.
func (o *Operations) List(ctx context.Context, resourceGroup string) ([]*armcontainerservice.Snapshot, error) {
	var snapshots []*armcontainerservice.Snapshot
	if resourceGroup != "" {
		pager := o.Clients.Snapshots.NewListByResourceGroupPager(resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, clierrors.MapAzureError(err)
			}
			snapshots = append(snapshots, page.Value...)
		}
		return snapshots, nil
	}
	pager := o.Clients.Snapshots.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, clierrors.MapAzureError(err)
		}
		snapshots = append(snapshots, page.Value...)
	}
	return snapshots, nil
}

// UpdateTags replaces the tags of a snapshot.
func (o *Operations) UpdateTags(ctx context.Context, resourceGroup, name string, tags map[string]string) (*armcontainerservice.Snapshot, error) {
	resp, err := o.Clients.Snapshots.UpdateTags(ctx, resourceGroup, name, armcontainerservice.TagsObject{Tags: toPtrMap(tags)}, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.Snapshot, nil
}

// Delete removes a snapshot after confirmation.
func (o *Operations) Delete(ctx context.Context, resourceGroup, name string) error {
	if !o.Yes {
		p := o.Prompter
		if p == nil {
			p = prompt.Refuse{}
		}
		ok, err := p.Confirm(fmt.Sprintf("This will delete the snapshot %q in resource group %q, Are you sure?", name, resourceGroup), false)
		if err != nil {
			return err
		}
		if !ok {
			return clierrors.ErrDecoratorEarlyExit
		}
	}
	if _, err := o.Clients.Snapshots.Delete(ctx, resourceGroup, name, nil); err != nil {
		return clierrors.MapAzureError(err)
	}
	return nil
}

func toPtrMap(in map[string]string) map[string]*string {
	if in == nil {
		return nil
	}
	out := make(map[string]*string, len(in))
	for k, v := range in {
		out[k] = &v
	}
	return out
}

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

package monitoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

// DefaultWorkspaceID is the id of the shared workspace used when no
// --workspace-resource-id is given.
func DefaultWorkspaceID(subscriptionID, code string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.OperationalInsights/workspaces/%s",
		subscriptionID, defaultResourceGroup(code), fmt.Sprintf("DefaultWorkspace-%s-%s", subscriptionID, code))
}

func defaultResourceGroup(code string) string {
	return "DefaultResourceGroup-" + code
}

// EnsureDefaultWorkspace returns the default log analytics workspace for a
// cluster whose resource group lives in location, creating its resource group
// and the workspace when missing. For clouds without monitoring support it logs
// an error and returns an empty id.
func (p *Provisioner) EnsureDefaultWorkspace(ctx context.Context, subscriptionID, location string) (string, error) {
	logger := logr.FromContextOrDiscard(ctx)

	region, code, ok := WorkspaceRegion(p.CloudName, location)
	if !ok {
		logger.Error(nil, "AKS Monitoring addon not supported in cloud", "cloud", p.CloudName)
		return "", nil
	}
	resourceGroup := defaultResourceGroup(code)
	workspaceID := DefaultWorkspaceID(subscriptionID, code)

	clients, err := p.clientsFor(subscriptionID)
	if err != nil {
		return "", err
	}

	exists, err := clients.ResourceGroups.CheckExistence(ctx, resourceGroup, nil)
	if err != nil {
		return "", fmt.Errorf("failed to check resource group %s: %w", resourceGroup, err)
	}
	if exists.Success {
		resp, err := clients.Resources.GetByID(ctx, workspaceID, workspaceAPIVersion, nil)
		if err == nil {
			return idOr(resp.ID, workspaceID), nil
		}
		if !client.IsNotFoundErr(err) {
			return "", fmt.Errorf("failed to get workspace %s: %w", workspaceID, err)
		}
	} else {
		logger.V(1).Info("creating default workspace resource group", "resourceGroup", resourceGroup, "location", region)
		if _, err := clients.ResourceGroups.CreateOrUpdate(ctx, resourceGroup, armresources.ResourceGroup{
			Location: to.Ptr(region),
		}, nil); err != nil {
			return "", fmt.Errorf("failed to create resource group %s: %w", resourceGroup, err)
		}
	}

	logger.Info("Creating default log analytics workspace", "workspace", workspaceID)
	poller, err := clients.Resources.BeginCreateOrUpdateByID(ctx, workspaceID, workspaceAPIVersion, armresources.GenericResource{
		Location: to.Ptr(region),
		Properties: map[string]any{
			"sku": map[string]any{"name": "standalone"},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create workspace %s: %w", workspaceID, err)
	}
	resp, err := client.PollUntilDone(ctx, poller, false, p.PollInterval)
	if err != nil {
		return "", fmt.Errorf("failed waiting for workspace %s: %w", workspaceID, err)
	}
	return idOr(resp.ID, workspaceID), nil
}

func idOr(id *string, fallback string) string {
	if id == nil || *id == "" {
		return fallback
	}
	return *id
}

// WorkspaceRef is the parsed form of a log analytics workspace id.
type WorkspaceRef struct {
	ID             string
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

// ParseWorkspaceID sanitizes id and picks out its subscription, resource group
// and name segments.
func ParseWorkspaceID(id string) (WorkspaceRef, error) {
	id = helpers.SanitizeWorkspaceResourceID(id)
	parts := strings.Split(id, "/")
	if len(parts) < 9 || parts[2] == "" || parts[4] == "" || parts[8] == "" {
		return WorkspaceRef{}, clierrors.InvalidArgumentValue("Could not locate resource group in workspace-resource-id URL.")
	}
	return WorkspaceRef{
		ID:             id,
		SubscriptionID: parts[2],
		ResourceGroup:  parts[4],
		Name:           parts[8],
	}, nil
}

// workspaceLocation reads the workspace region, which may differ from the
// region of its resource group.
func (p *Provisioner) workspaceLocation(ctx context.Context, ws WorkspaceRef) (string, error) {
	clients, err := p.clientsFor(ws.SubscriptionID)
	if err != nil {
		return "", err
	}
	resp, err := clients.Resources.GetByID(ctx, ws.ID, workspaceAPIVersion, nil)
	if err != nil {
		return "", fmt.Errorf("failed to get workspace %s: %w", ws.ID, err)
	}
	if resp.Location == nil {
		return "", fmt.Errorf("workspace %s has no location", ws.ID)
	}
	return strings.ToLower(strings.ReplaceAll(*resp.Location, " ", "")), nil
}

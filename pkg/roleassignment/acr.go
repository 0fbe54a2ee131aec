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
	"errors"
	"fmt"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/discovery"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const registryAPIVersion = "2019-05-01"

// RegistryFinder resolves a container registry name to its resource id.
type RegistryFinder interface {
	RegistryIDByName(ctx context.Context, subscriptionID, name string) (string, error)
}

var _ RegistryFinder = (*discovery.Discovery)(nil)

// ResolveRegistry returns the resource id of the registry named or identified by acrNameOrID.
func (a *Assigner) ResolveRegistry(ctx context.Context, acrNameOrID string) (string, error) {
	if helpers.IsValidResourceID(acrNameOrID) {
		if _, err := a.Resources.GetByID(ctx, acrNameOrID, registryAPIVersion, nil); err != nil {
			if client.IsNotFoundErr(err) {
				return "", clierrors.ResourceNotFound("ACR %s not found. Have you provided the right ACR name?", acrNameOrID)
			}
			return "", clierrors.MapAzureError(err)
		}
		return acrNameOrID, nil
	}

	id, err := a.Registries.RegistryIDByName(ctx, a.SubscriptionID, acrNameOrID)
	if errors.Is(err, discovery.ErrNotFound) {
		return "", clierrors.ResourceNotFound("ACR %s not found. Have you provided the right ACR name?", acrNameOrID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up ACR %s: %w", acrNameOrID, err)
	}
	return id, nil
}

// EnsureACR grants (or with detach, revokes) AcrPull on the registry for assignee.
func (a *Assigner) EnsureACR(ctx context.Context, assignee, acrNameOrID string, isServicePrincipal, detach bool) error {
	registryID, err := a.ResolveRegistry(ctx, acrNameOrID)
	if err != nil {
		return err
	}

	if detach {
		if err := a.Delete(ctx, models.RoleAcrPull, assignee, isServicePrincipal, registryID); err != nil {
			return clierrors.Wrap(clierrors.KindClientRequest, err, "Could not delete role assignments for ACR. Are you an Owner on this subscription?")
		}
		return nil
	}

	if !a.Add(ctx, models.RoleAcrPull, assignee, isServicePrincipal, registryID) {
		return clierrors.ClientRequest("Could not create a role assignment for ACR. Are you an Owner on this subscription?")
	}
	return nil
}

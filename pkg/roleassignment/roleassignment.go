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

// Package roleassignment grants and revokes the built-in roles the cluster
// commands depend on: subnet and vnet permissions, ACR pull, monitoring and
// the kubelet identity operator role.
package roleassignment

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	armauthorization "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/authorization/armauthorization/v2"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/graph"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/discovery"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const (
	defaultAttempts = 10
	defaultDelay    = 2 * time.Second
)

var guidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}$`)

// Assigner creates and removes role assignments in one subscription.
type Assigner struct {
	Assignments    client.RoleAssignmentsClient
	Definitions    client.RoleDefinitionsClient
	Graph          graph.Client
	Resources      client.ResourcesClient
	Registries     RegistryFinder
	SubscriptionID string

	// Attempts and Delay bound the propagation retries. Attempt n waits Delay*(n+1).
	Attempts int
	Delay    time.Duration
}

func New(clients *client.Clients, graphClient graph.Client) *Assigner {
	return &Assigner{
		Assignments:    clients.RoleAssignments,
		Definitions:    clients.RoleDefinitions,
		Graph:          graphClient,
		Resources:      clients.Resources,
		Registries:     discovery.New(clients.ResourceGraph),
		SubscriptionID: clients.SubscriptionID,
		Attempts:       defaultAttempts,
		Delay:          defaultDelay,
	}
}

func (a *Assigner) attempts() int {
	if a.Attempts < 1 {
		return defaultAttempts
	}
	return a.Attempts
}

func (a *Assigner) sleep(ctx context.Context, attempt int) error {
	d := a.Delay + a.Delay*time.Duration(attempt)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Add assigns role to assignee at scope, retrying while the directory
// propagates the principal. When isServicePrincipal is set, assignee is an
// application id and is resolved to its object id first. It reports whether
// the assignment exists afterwards; failures are logged, not returned.
func (a *Assigner) Add(ctx context.Context, role, assignee string, isServicePrincipal bool, scope string) bool {
	logger := logr.FromContextOrDiscard(ctx)

	for attempt := 0; attempt < a.attempts(); attempt++ {
		logger.V(1).Info("Waiting for AAD role to propagate", "attempt", attempt+1, "role", role, "scope", scope)
		err := a.create(ctx, role, assignee, isServicePrincipal, scope)
		if err == nil || client.IsRoleAssignmentExistsErr(err) {
			return true
		}
		logger.V(1).Info("role assignment failed", "error", err.Error())
		if sleepErr := a.sleep(ctx, attempt); sleepErr != nil {
			return false
		}
	}
	return false
}

func (a *Assigner) create(ctx context.Context, role, assignee string, isServicePrincipal bool, scope string) error {
	roleID, err := a.resolveRoleID(ctx, role, scope)
	if err != nil {
		return err
	}
	principalID, err := a.resolvePrincipal(ctx, assignee, isServicePrincipal)
	if err != nil {
		return err
	}
	_, err = a.Assignments.Create(ctx, scope, uuid.NewString(), armauthorization.RoleAssignmentCreateParameters{
		Properties: &armauthorization.RoleAssignmentProperties{
			RoleDefinitionID: to.Ptr(roleID),
			PrincipalID:      to.Ptr(principalID),
			PrincipalType:    to.Ptr(armauthorization.PrincipalTypeServicePrincipal),
		},
	}, nil)
	return err
}

func (a *Assigner) resolvePrincipal(ctx context.Context, assignee string, isServicePrincipal bool) (string, error) {
	if !isServicePrincipal {
		return assignee, nil
	}
	objectID, err := a.Graph.ServicePrincipalObjectID(ctx, assignee)
	if err != nil {
		return "", fmt.Errorf("failed to resolve service principal %s: %w", assignee, err)
	}
	return objectID, nil
}

// resolveRoleID turns a role name or GUID into a role definition id.
func (a *Assigner) resolveRoleID(ctx context.Context, role, scope string) (string, error) {
	if guidPattern.MatchString(role) {
		return fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Authorization/roleDefinitions/%s", a.SubscriptionID, role), nil
	}

	var ids []string
	pager := a.Definitions.NewListPager(scope, &armauthorization.RoleDefinitionsClientListOptions{
		Filter: to.Ptr(fmt.Sprintf("roleName eq '%s'", role)),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to list role definitions: %w", err)
		}
		for _, def := range page.Value {
			if def != nil && def.ID != nil {
				ids = append(ids, *def.ID)
			}
		}
	}
	switch len(ids) {
	case 0:
		return "", clierrors.ResourceNotFound("Role '%s' doesn't exist.", role)
	case 1:
		return ids[0], nil
	default:
		return "", clierrors.InvalidArgumentValue("More than one role matches the given name '%s'. Please pick a value from '%s'", role, strings.Join(ids, ","))
	}
}

// listAtScope returns the assignments defined exactly at scope.
func (a *Assigner) listAtScope(ctx context.Context, scope string) ([]*armauthorization.RoleAssignment, error) {
	var result []*armauthorization.RoleAssignment
	pager := a.Assignments.NewListForScopePager(scope, &armauthorization.RoleAssignmentsClientListForScopeOptions{
		Filter: to.Ptr("atScope()"),
	})
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list role assignments at %s: %w", scope, err)
		}
		for _, ra := range page.Value {
			if ra != nil && ra.Properties != nil {
				result = append(result, ra)
			}
		}
	}
	return result, nil
}

func matches(ra *armauthorization.RoleAssignment, scope, roleID, principalID string) bool {
	p := ra.Properties
	if p.Scope == nil || !strings.EqualFold(*p.Scope, scope) {
		return false
	}
	if roleID != "" && (p.RoleDefinitionID == nil || !strings.HasSuffix(strings.ToLower(*p.RoleDefinitionID), strings.ToLower(roleID))) {
		return false
	}
	if principalID != "" && (p.PrincipalID == nil || !strings.EqualFold(*p.PrincipalID, principalID)) {
		return false
	}
	return true
}

// Delete removes every assignment of role to assignee at scope. Finding none is not an error.
func (a *Assigner) Delete(ctx context.Context, role, assignee string, isServicePrincipal bool, scope string) error {
	logger := logr.FromContextOrDiscard(ctx)

	var last error
	for attempt := 0; attempt < a.attempts(); attempt++ {
		last = a.delete(ctx, role, assignee, isServicePrincipal, scope)
		if last == nil {
			return nil
		}
		logger.V(1).Info("role assignment deletion failed", "error", last.Error())
		if err := a.sleep(ctx, attempt); err != nil {
			return err
		}
	}
	return last
}

func (a *Assigner) delete(ctx context.Context, role, assignee string, isServicePrincipal bool, scope string) error {
	roleID, err := a.resolveRoleID(ctx, role, scope)
	if err != nil {
		return err
	}
	principalID, err := a.resolvePrincipal(ctx, assignee, isServicePrincipal)
	if err != nil {
		return err
	}
	assignments, err := a.listAtScope(ctx, scope)
	if err != nil {
		return err
	}
	deleted := 0
	for _, ra := range assignments {
		if !matches(ra, scope, roleID, principalID) || ra.ID == nil {
			continue
		}
		if _, err := a.Assignments.DeleteByID(ctx, *ra.ID, nil); err != nil && !client.IsNotFoundErr(err) {
			return fmt.Errorf("failed to delete role assignment %s: %w", *ra.ID, err)
		}
		deleted++
	}
	if deleted == 0 {
		logr.FromContextOrDiscard(ctx).Info("No matched assignments were found to delete", "role", role, "scope", scope)
	}
	return nil
}

// SubnetAssignmentExists reports whether a Network Contributor assignment is already defined at scope.
func (a *Assigner) SubnetAssignmentExists(ctx context.Context, scope string) (bool, error) {
	assignments, err := a.listAtScope(ctx, scope)
	if err != nil {
		return false, err
	}
	for _, ra := range assignments {
		if matches(ra, scope, models.NetworkContributorRoleID, "") {
			return true, nil
		}
	}
	return false, nil
}

// EnsureKubeletIdentityPermission grants the cluster identity Managed Identity
// Operator on the kubelet identity unless an equivalent assignment exists.
func (a *Assigner) EnsureKubeletIdentityPermission(ctx context.Context, clusterIdentityObjectID, kubeletIdentityResourceID string) error {
	logger := logr.FromContextOrDiscard(ctx)
	scope := kubeletIdentityResourceID

	assignments, err := a.listAtScope(ctx, scope)
	if err != nil {
		return err
	}
	for _, ra := range assignments {
		if matches(ra, scope, models.ManagedIdentityOperatorRoleID, clusterIdentityObjectID) {
			logger.V(1).Info("Managed Identity Operator role is already assigned to the cluster identity", "scope", scope)
			return nil
		}
	}

	if !a.Add(ctx, models.RoleManagedIdentityOperator, clusterIdentityObjectID, false, scope) {
		return clierrors.Unauthorized("Could not grant Managed Identity Operator permission to cluster identity at scope %s", scope)
	}
	return nil
}

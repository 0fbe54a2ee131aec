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
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/graph"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func (c *Context) readServicePrincipal() (string, string, bool, error) {
	sp, secret := c.Raw.ServicePrincipal, c.Raw.ClientSecret
	spFromMC, secretFromMC := false, false
	if p := c.properties(); c.isCreate() && p != nil && p.ServicePrincipalProfile != nil {
		if p.ServicePrincipalProfile.ClientID != nil {
			sp, spFromMC = *p.ServicePrincipalProfile.ClientID, true
		}
		if p.ServicePrincipalProfile.Secret != nil {
			secret, secretFromMC = *p.ServicePrincipalProfile.Secret, true
		}
	}
	if spFromMC != secretFromMC {
		return "", "", false, clierrors.CLIInternal("Inconsistent state detected, one of sp and secret is read from the `mc` object.")
	}
	return sp, secret, spFromMC, nil
}

// ServicePrincipalAndSecret returns the cluster service principal. When the
// cluster does not use managed identity and none was given, one is created.
func (c *Context) ServicePrincipalAndSecret(ctx context.Context) (string, string, error) {
	sp, secret, fromMC, err := c.readServicePrincipal()
	if err != nil {
		return "", "", err
	}
	if fromMC {
		return sp, secret, nil
	}
	mi, err := c.readEnableManagedIdentity(sp, secret)
	if err != nil {
		return "", "", err
	}
	if mi && sp == "" && secret == "" {
		return sp, secret, nil
	}
	if sp != "" && secret == "" {
		return "", "", clierrors.RequiredArgumentMissing("--client-secret is required if --service-principal is specified")
	}
	if sp != "" {
		return sp, secret, nil
	}
	created, err := c.ensureServicePrincipal(ctx)
	if err != nil {
		return "", "", err
	}
	return created.AppID, created.Secret, nil
}

func (c *Context) ensureServicePrincipal(ctx context.Context) (*graph.ServicePrincipal, error) {
	if created, ok := Lookup[*graph.ServicePrincipal](c.Intermediates, KeyServicePrincipal); ok {
		return created, nil
	}
	if c.Graph == nil {
		return nil, clierrors.CLIInternal("no directory client configured to create a service principal")
	}
	location, err := c.Location(ctx)
	if err != nil {
		return nil, err
	}
	host, err := c.DNSNamePrefix(ctx)
	if err != nil {
		return nil, err
	}
	if host == "" {
		host = c.readFQDNSubdomain()
	}
	salt := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	homepage := fmt.Sprintf("https://%s.%s.%s.cloudapp.azure.com", salt, host, location)

	logr.FromContextOrDiscard(ctx).V(0).Info("Creating a service principal for the cluster", "name", homepage)
	created, err := c.Graph.CreateServicePrincipal(ctx, homepage, homepage)
	if err != nil {
		return nil, clierrors.Wrap(clierrors.KindAzureInternal, err, "Could not create a service principal with the right permissions. Are you an Owner on this project?")
	}
	c.Intermediates.Set(ctx, KeyAADSessionKey, created.KeyID, true)
	c.Intermediates.Set(ctx, KeyServicePrincipal, created, true)
	return created, nil
}

func (c *Context) readEnableManagedIdentity(sp, secret string) (bool, error) {
	if c.isCreate() && c.mc != nil && c.mc.Identity != nil {
		return IsMSICluster(c.mc), nil
	}
	enabled := c.Raw.EnableManagedIdentity
	if c.isCreate() && sp != "" && secret != "" {
		enabled = false
	}
	return enabled, nil
}

// EnableManagedIdentity reports whether the cluster runs with a managed identity.
func (c *Context) EnableManagedIdentity() (bool, error) {
	sp, secret, _, err := c.readServicePrincipal()
	if err != nil {
		return false, err
	}
	enabled, err := c.readEnableManagedIdentity(sp, secret)
	if err != nil {
		return false, err
	}
	if !enabled && c.Raw.AssignIdentity != "" {
		return false, clierrors.RequiredArgumentMissing("--assign-identity can only be specified when --enable-managed-identity is specified")
	}
	return enabled, nil
}

func (c *Context) readAssignIdentity() string {
	if c.isCreate() && c.mc != nil && c.mc.Identity != nil {
		for id := range c.mc.Identity.UserAssignedIdentities {
			return id
		}
	}
	return c.Raw.AssignIdentity
}

// AssignIdentity is the resource id of the user assigned control plane identity.
func (c *Context) AssignIdentity() (string, error) {
	id := c.readAssignIdentity()
	if id != "" {
		mi, err := c.EnableManagedIdentity()
		if err != nil {
			return "", err
		}
		if !mi {
			return "", clierrors.RequiredArgumentMissing("--assign-identity can only be specified when --enable-managed-identity is specified")
		}
	}
	if c.isCreate() && id == "" && c.readAssignKubeletIdentity() != "" {
		return "", clierrors.RequiredArgumentMissing("--assign-kubelet-identity can only be specified when --assign-identity is specified")
	}
	return id, nil
}

func (c *Context) readAssignKubeletIdentity() string {
	if p := c.properties(); c.isCreate() && p != nil && p.IdentityProfile != nil {
		if kubelet := p.IdentityProfile[models.KubeletIdentityKey]; kubelet != nil && kubelet.ResourceID != nil {
			return *kubelet.ResourceID
		}
	}
	return c.Raw.AssignKubeletIdentity
}

// AssignKubeletIdentity is the resource id of the user assigned kubelet identity.
func (c *Context) AssignKubeletIdentity() (string, error) {
	id := c.readAssignKubeletIdentity()
	if id != "" && c.readAssignIdentity() == "" {
		return "", clierrors.RequiredArgumentMissing("--assign-kubelet-identity can only be specified when --assign-identity is specified")
	}
	return id, nil
}

// UserAssignedIdentity holds the ids of a user assigned identity.
type UserAssignedIdentity struct {
	ResourceID  string
	ClientID    string
	PrincipalID string
}

// ResolveUserAssignedIdentity looks up the client and principal ids of id.
func (c *Context) ResolveUserAssignedIdentity(ctx context.Context, id string) (UserAssignedIdentity, error) {
	if id == "" {
		return UserAssignedIdentity{}, clierrors.RequiredArgumentMissing("No assigned identity provided.")
	}
	parsed, err := arm.ParseResourceID(id)
	if err != nil {
		return UserAssignedIdentity{}, clierrors.InvalidArgumentValue("Cannot parse identity name from provided resource id %s.", id)
	}
	resp, err := c.Clients.UserAssignedIdentities.Get(ctx, parsed.ResourceGroupName, parsed.Name, nil)
	if err != nil {
		if client.IsNotFoundErr(err) {
			return UserAssignedIdentity{}, clierrors.ResourceNotFound("Identity %s not found.", id)
		}
		return UserAssignedIdentity{}, clierrors.MapAzureError(err)
	}
	out := UserAssignedIdentity{ResourceID: id}
	if resp.Properties != nil {
		out.ClientID = deref(resp.Properties.ClientID)
		out.PrincipalID = deref(resp.Properties.PrincipalID)
	}
	return out, nil
}

// AttachACR validates --attach-acr in create mode, where granting pull
// access happens after the cluster exists.
func (c *Context) AttachACR(ctx context.Context) (string, error) {
	acr := c.Raw.AttachACR
	if acr == "" || !c.isCreate() {
		return acr, nil
	}
	mi, err := c.EnableManagedIdentity()
	if err != nil {
		return "", err
	}
	if mi {
		if c.Raw.NoWait {
			return "", clierrors.MutuallyExclusiveArgument("When --attach-acr and --enable-managed-identity are both specified, --no-wait is not allowed, please wait until the whole operation succeeds.")
		}
		return acr, nil
	}
	sp, _, err := c.ServicePrincipalAndSecret(ctx)
	if err != nil {
		return "", err
	}
	if sp == "" {
		return "", clierrors.RequiredArgumentMissing("No service principal provided to create the acrpull role assignment for acr.")
	}
	return acr, nil
}

func (c *Context) DetachACR() string { return c.Raw.DetachACR }

// AssigneeFromIdentityOrSP is the principal that pulls images: the kubelet
// identity of managed identity clusters, otherwise the service principal.
func (c *Context) AssigneeFromIdentityOrSP() (string, bool, error) {
	if IsMSICluster(c.mc) {
		p := c.properties()
		if p == nil || p.IdentityProfile == nil || p.IdentityProfile[models.KubeletIdentityKey] == nil {
			return "", false, clierrors.Unknown("Unexpected error getting kubelet's identity for the cluster. Please do not set --attach-acr or --detach-acr. You can manually grant or revoke permission to the identity named <ClUSTER_NAME>-agentpool in MC_ resource group to access ACR.")
		}
		return deref(p.IdentityProfile[models.KubeletIdentityKey].ObjectID), false, nil
	}
	if p := c.properties(); p != nil && p.ServicePrincipalProfile != nil && p.ServicePrincipalProfile.ClientID != nil {
		return *p.ServicePrincipalProfile.ClientID, true, nil
	}
	return "", false, clierrors.Unknown("Cannot get the AKS cluster's service principal.")
}

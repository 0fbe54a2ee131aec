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
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

func (c *Context) aadProfile() *armcontainerservice.ManagedClusterAADProfile {
	if p := c.properties(); p != nil {
		return p.AADProfile
	}
	return nil
}

func (c *Context) managedAADEnabled() bool {
	aad := c.aadProfile()
	return aad != nil && deref(aad.Managed)
}

func (c *Context) readEnableAAD() bool {
	if aad := c.aadProfile(); c.isCreate() && aad != nil && aad.Managed != nil {
		return *aad.Managed
	}
	return c.Raw.EnableAAD
}

// EnableAAD requests managed AAD integration.
func (c *Context) EnableAAD() (bool, error) {
	enable := c.readEnableAAD()
	if c.isCreate() {
		if enable && (c.Raw.AADClientAppID != "" || c.Raw.AADServerAppID != "" || c.Raw.AADServerAppSecret != "") {
			return false, clierrors.MutuallyExclusiveArgument("--enable-aad cannot be used together with --aad-client-app-id, --aad-server-app-id or --aad-server-app-secret")
		}
		if !enable && c.Raw.EnableAzureRBAC {
			return false, clierrors.RequiredArgumentMissing("--enable-azure-rbac can only be used together with --enable-aad")
		}
		return enable, nil
	}
	if enable && c.managedAADEnabled() {
		return false, clierrors.InvalidArgumentValue(`Cannot specify "--enable-aad" if managed AAD is already enabled`)
	}
	return enable, nil
}

// LegacyAAD holds the application based AAD integration settings.
type LegacyAAD struct {
	ClientAppID     string
	ServerAppID     string
	ServerAppSecret string
}

func (l LegacyAAD) Any() bool {
	return l.ClientAppID != "" || l.ServerAppID != "" || l.ServerAppSecret != ""
}

func (c *Context) LegacyAAD() LegacyAAD {
	l := LegacyAAD{
		ClientAppID:     c.Raw.AADClientAppID,
		ServerAppID:     c.Raw.AADServerAppID,
		ServerAppSecret: c.Raw.AADServerAppSecret,
	}
	if aad := c.aadProfile(); c.isCreate() && aad != nil {
		l = LegacyAAD{
			ClientAppID:     deref(aad.ClientAppID),
			ServerAppID:     deref(aad.ServerAppID),
			ServerAppSecret: deref(aad.ServerAppSecret),
		}
	}
	return l
}

// AADTenantID falls back to the signed in tenant for legacy AAD.
func (c *Context) AADTenantID() (string, error) {
	tenant := c.Raw.AADTenantID
	if aad := c.aadProfile(); c.isCreate() && aad != nil && aad.TenantID != nil {
		return *aad.TenantID, nil
	}
	if c.isCreate() {
		if tenant == "" && c.LegacyAAD().Any() {
			tenant = c.TenantID
		}
		return tenant, nil
	}
	if tenant != "" && !c.managedAADEnabled() {
		return "", clierrors.InvalidArgumentValue(`Cannot specify "--aad-tenant-id" if managed AAD is not enabled`)
	}
	return tenant, nil
}

// AADAdminGroupObjectIDs is nil when the flag was not passed.
func (c *Context) AADAdminGroupObjectIDs() ([]string, error) {
	if aad := c.aadProfile(); c.isCreate() && aad != nil && aad.AdminGroupObjectIDs != nil {
		return derefSlice(aad.AdminGroupObjectIDs), nil
	}
	raw, supplied := c.Raw.AADAdminGroupObjectIDs.Get()
	if !supplied {
		return nil, nil
	}
	if c.isUpdate() && !c.managedAADEnabled() {
		return nil, clierrors.InvalidArgumentValue(`Cannot specify "--aad-admin-group-object-ids" if managed AAD is not enabled`)
	}
	return helpers.ExtractList(raw, true, []string{}), nil
}

func (c *Context) readDisableRBAC() bool {
	if p := c.properties(); p != nil && p.EnableRBAC != nil {
		return !*p.EnableRBAC
	}
	return c.Raw.DisableRBAC
}

func (c *Context) DisableRBAC() (bool, error) {
	disable := c.readDisableRBAC()
	if disable && c.Raw.EnableAzureRBAC {
		return false, clierrors.MutuallyExclusiveArgument("--enable-azure-rbac cannot be used together with --disable-rbac")
	}
	if disable && c.Raw.EnableRBAC {
		return false, clierrors.MutuallyExclusiveArgument("specify either '--disable-rbac' or '--enable-rbac', not both.")
	}
	return disable, nil
}

func (c *Context) EnableRBAC() (bool, error) {
	if p := c.properties(); p != nil && p.EnableRBAC != nil {
		return *p.EnableRBAC, nil
	}
	if c.Raw.EnableRBAC && c.Raw.DisableRBAC {
		return false, clierrors.MutuallyExclusiveArgument("specify either '--disable-rbac' or '--enable-rbac', not both.")
	}
	return c.Raw.EnableRBAC, nil
}

func (c *Context) EnableAzureRBAC() (bool, error) {
	enable := c.Raw.EnableAzureRBAC
	if aad := c.aadProfile(); c.isCreate() && aad != nil && aad.EnableAzureRBAC != nil {
		return *aad.EnableAzureRBAC, nil
	}
	if c.isCreate() {
		if enable {
			if _, err := c.DisableRBAC(); err != nil {
				return false, err
			}
			if !c.readEnableAAD() {
				return false, clierrors.RequiredArgumentMissing("--enable-azure-rbac can only be used together with --enable-aad")
			}
		}
		return enable, nil
	}
	if enable {
		if !c.managedAADEnabled() {
			return false, clierrors.InvalidArgumentValue(`Cannot specify "--enable-azure-rbac" if managed AAD is not enabled`)
		}
		if c.Raw.DisableAzureRBAC {
			return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--enable-azure-rbac" and "--disable-azure-rbac" at the same time`)
		}
	}
	return enable, nil
}

func (c *Context) DisableAzureRBAC() (bool, error) {
	disable := c.Raw.DisableAzureRBAC
	if disable {
		if !c.managedAADEnabled() {
			return false, clierrors.InvalidArgumentValue(`Cannot specify "--disable-azure-rbac" if managed AAD is not enabled`)
		}
		if c.Raw.EnableAzureRBAC {
			return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--enable-azure-rbac" and "--disable-azure-rbac" at the same time`)
		}
	}
	return disable, nil
}

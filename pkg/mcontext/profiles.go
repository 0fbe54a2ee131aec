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

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

// AdminUsername is the linux admin of the cluster nodes.
func (c *Context) AdminUsername() string {
	if p := c.properties(); p != nil && p.LinuxProfile != nil && p.LinuxProfile.AdminUsername != nil {
		return *p.LinuxProfile.AdminUsername
	}
	if c.Raw.AdminUsername == "" {
		return models.DefaultAdminUsername
	}
	return c.Raw.AdminUsername
}

func (c *Context) readSSHKey() (string, bool) {
	if p := c.properties(); p != nil && p.LinuxProfile != nil && p.LinuxProfile.SSH != nil {
		keys := p.LinuxProfile.SSH.PublicKeys
		if len(keys) > 0 && keys[0] != nil && keys[0].KeyData != nil {
			return *keys[0].KeyData, true
		}
	}
	return c.Raw.SSHKeyValue, false
}

// SSHKey resolves the node public key. An empty result with no error means
// --no-ssh-key is in effect.
func (c *Context) SSHKey(ctx context.Context) (string, error) {
	key, fromMC := c.readSSHKey()
	if fromMC {
		if c.Raw.NoSSHKey {
			return "", clierrors.CLIInternal("Inconsistent state detected, ssh_key_value is read from the `mc` object while no_ssh_key is enabled.")
		}
		return key, nil
	}
	if c.Raw.NoSSHKey {
		return "", nil
	}
	if v, ok := Lookup[string](c.Intermediates, KeySSHKey); ok {
		return v, nil
	}
	resolve := c.ResolveSSHKey
	if resolve == nil {
		return "", clierrors.CLIInternal("no ssh key resolver configured")
	}
	resolved, err := resolve(ctx, key, c.Raw.GenerateSSHKeys)
	if err != nil {
		if clierrors.KindOf(err) == clierrors.KindInvalidArgumentValue && key != "" {
			return "", clierrors.InvalidArgumentValue("Provided ssh key (%s) is invalid or non-existent", helpers.Truncate(key, 20)+"...")
		}
		return "", err
	}
	c.Intermediates.Set(ctx, KeySSHKey, resolved, true)
	return resolved, nil
}

func (c *Context) windowsProfile() *armcontainerservice.ManagedClusterWindowsProfile {
	if p := c.properties(); p != nil {
		return p.WindowsProfile
	}
	return nil
}

// WindowsCredentials returns the admin username and password. In create mode a
// missing half is prompted for when the other half was given.
func (c *Context) WindowsCredentials() (string, string, error) {
	username, password := c.Raw.WindowsAdminUsername, c.Raw.WindowsAdminPassword
	usernameFromMC, passwordFromMC := false, false
	if wp := c.windowsProfile(); c.isCreate() && wp != nil {
		if wp.AdminUsername != nil {
			username, usernameFromMC = *wp.AdminUsername, true
		}
		if wp.AdminPassword != nil {
			password, passwordFromMC = *wp.AdminPassword, true
		}
	}
	if usernameFromMC != passwordFromMC {
		return "", "", clierrors.CLIInternal("Inconsistent state detected, one of windows admin name and password is read from the `mc` object.")
	}
	if usernameFromMC || (username == "" && password == "") {
		return username, password, nil
	}

	p := c.Prompter
	if p == nil {
		p = prompt.Refuse{}
	}
	if username == "" {
		v, err := p.Input("windows_admin_username: ")
		if err != nil {
			return "", "", clierrors.NoTTY("Please specify username for Windows in non-interactive mode.")
		}
		username = v
	}
	if password == "" {
		v, err := p.Password("windows-admin-password: ", true)
		if err != nil {
			return "", "", clierrors.NoTTY("Please specify both username and password in non-interactive mode.")
		}
		password = v
	}
	if c.isCreate() {
		if err := c.validateGMSACredentials(username, password); err != nil {
			return "", "", err
		}
	}
	return username, password, nil
}

func (c *Context) validateGMSACredentials(username, password string) error {
	gmsa := c.Raw.EnableWindowsGMSA || c.Raw.GMSADNSServer != "" || c.Raw.GMSARootDomainName != ""
	if gmsa && username == "" && password == "" {
		return clierrors.RequiredArgumentMissing("Please set windows admin username and password before setting gmsa related configs.")
	}
	return nil
}

// ValidateWindowsCredentialsForGMSA rejects gMSA settings on a cluster
// without windows credentials.
func (c *Context) ValidateWindowsCredentialsForGMSA() error {
	if !c.isCreate() {
		return nil
	}
	username, password := c.Raw.WindowsAdminUsername, c.Raw.WindowsAdminPassword
	if wp := c.windowsProfile(); wp != nil {
		username, password = deref(wp.AdminUsername), deref(wp.AdminPassword)
	}
	return c.validateGMSACredentials(username, password)
}

// EnableAHUB reports the Azure Hybrid User Benefit request.
func (c *Context) EnableAHUB() (bool, error) {
	enable := c.Raw.EnableAHUB
	if wp := c.windowsProfile(); c.isCreate() && wp != nil && wp.LicenseType != nil {
		enable = string(*wp.LicenseType) == models.LicenseTypeWindowsServer
	}
	if enable && c.Raw.DisableAHUB {
		return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--enable-ahub" and "--disable-ahub" at the same time`)
	}
	return enable, nil
}

func (c *Context) DisableAHUB() (bool, error) {
	if c.Raw.EnableAHUB && c.Raw.DisableAHUB {
		return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--enable-ahub" and "--disable-ahub" at the same time`)
	}
	return c.Raw.DisableAHUB, nil
}

// GMSA is the windows gMSA request.
type GMSA struct {
	Enabled        bool
	DNSServer      string
	RootDomainName string
}

// WindowsGMSA validates the gMSA flags. Enabling gMSA without DNS settings
// needs confirmation that the vnet already resolves the domain.
func (c *Context) WindowsGMSA() (GMSA, error) {
	g := GMSA{
		Enabled:        c.Raw.EnableWindowsGMSA,
		DNSServer:      c.Raw.GMSADNSServer,
		RootDomainName: c.Raw.GMSARootDomainName,
	}
	if wp := c.windowsProfile(); c.isCreate() && wp != nil && wp.GmsaProfile != nil {
		g.Enabled = deref(wp.GmsaProfile.Enabled)
		g.DNSServer = deref(wp.GmsaProfile.DNSServer)
		g.RootDomainName = deref(wp.GmsaProfile.RootDomainName)
		return g, nil
	}

	if !g.Enabled {
		if g.DNSServer != "" || g.RootDomainName != "" {
			return g, clierrors.RequiredArgumentMissing("You only can set --gmsa-dns-server and --gmsa-root-domain-name when setting --enable-windows-gmsa.")
		}
		return g, nil
	}
	switch {
	case g.DNSServer == "" && g.RootDomainName == "":
		ok, err := c.Confirm("Please assure that you have set the DNS server in the vnet used by the cluster when not specifying --gmsa-dns-server and --gmsa-root-domain-name")
		if err != nil {
			return g, err
		}
		if !ok {
			return g, clierrors.ErrDecoratorEarlyExit
		}
	case g.DNSServer == "" || g.RootDomainName == "":
		return g, clierrors.RequiredArgumentMissing("You must set or not set --gmsa-dns-server and --gmsa-root-domain-name at the same time.")
	}
	return g, nil
}

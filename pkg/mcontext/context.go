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

// Package mcontext owns the request scoped state of one cluster create or
// update: the raw flags, the cluster record being assembled, and the
// intermediates exchanged between decorator steps. Every parameter is served
// by a getter that reads the in-flight record and the raw flags, completes a
// missing value where it can, and validates the result.
package mcontext

import (
	"context"
	"os"
	"regexp"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/graph"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/monitoring"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/sshkey"
)

// WorkspaceEnsurer provides the default log analytics workspace of a region.
type WorkspaceEnsurer interface {
	EnsureDefaultWorkspace(ctx context.Context, subscriptionID, location string) (string, error)
}

var _ WorkspaceEnsurer = (*monitoring.Provisioner)(nil)

// SSHKeyResolver turns --ssh-key-value into key material.
type SSHKeyResolver func(ctx context.Context, value string, generate bool) (string, error)

// Context is created once per command invocation and is not safe for concurrent use.
type Context struct {
	Raw        *models.RawParameters
	Mode       models.DecoratorMode
	APIVersion models.APIVersion
	CloudName  string
	// TenantID is the tenant of the signed in principal. It completes the
	// tenant of legacy AAD profiles.
	TenantID string

	Clients       *client.Clients
	Graph         graph.Client
	Prompter      prompt.Prompter
	Workspaces    WorkspaceEnsurer
	ResolveSSHKey SSHKeyResolver
	ReadFile      func(string) ([]byte, error)

	Intermediates *Intermediates

	mc       *armcontainerservice.ManagedCluster
	existing *armcontainerservice.ManagedCluster
}

// New returns a context with the default collaborators for the parts that do
// not talk to Azure. Callers fill in Graph, Prompter and Workspaces.
func New(raw *models.RawParameters, mode models.DecoratorMode, clients *client.Clients) *Context {
	return &Context{
		Raw:           raw,
		Mode:          mode,
		APIVersion:    models.DefaultAPIVersion,
		CloudName:     client.CloudAzure,
		Clients:       clients,
		Prompter:      prompt.Refuse{},
		ResolveSSHKey: sshkey.Resolve,
		ReadFile:      os.ReadFile,
		Intermediates: NewIntermediates(),
	}
}

func (c *Context) isCreate() bool { return c.Mode == models.ModeCreate }

func (c *Context) isUpdate() bool { return c.Mode == models.ModeUpdate }

// MC is the cluster record being built or updated.
func (c *Context) MC() *armcontainerservice.ManagedCluster { return c.mc }

// ExistingMC is the cluster as fetched in update mode.
func (c *Context) ExistingMC() *armcontainerservice.ManagedCluster { return c.existing }

// AttachMC binds the cluster record to the context. It may only happen once.
func (c *Context) AttachMC(mc *armcontainerservice.ManagedCluster) error {
	if c.isUpdate() {
		if err := c.attachExistingMC(mc); err != nil {
			return err
		}
	}
	if c.mc != nil {
		return clierrors.CLIInternal("Attempting to attach the `mc` object again, the two objects are %s.", sameOrDifferent(c.mc, mc))
	}
	c.mc = mc
	return nil
}

func (c *Context) attachExistingMC(mc *armcontainerservice.ManagedCluster) error {
	if c.existing != nil {
		return clierrors.CLIInternal("Attempting to attach the existing `mc` object again, the two objects are %s.", sameOrDifferent(c.existing, mc))
	}
	c.existing = mc
	return nil
}

func sameOrDifferent(a, b *armcontainerservice.ManagedCluster) string {
	if a == b {
		return "the same"
	}
	return "different"
}

func (c *Context) properties() *armcontainerservice.ManagedClusterProperties {
	if c.mc == nil {
		return nil
	}
	return c.mc.Properties
}

// Confirm asks msg with a default of no. --yes answers yes without asking.
func (c *Context) Confirm(msg string) (bool, error) {
	if c.Raw.Yes {
		return true, nil
	}
	p := c.Prompter
	if p == nil {
		p = prompt.Refuse{}
	}
	return p.Confirm(msg, false)
}

// IsMSICluster reports whether mc runs with a system or user assigned identity.
func IsMSICluster(mc *armcontainerservice.ManagedCluster) bool {
	if mc == nil || mc.Identity == nil || mc.Identity.Type == nil {
		return false
	}
	switch *mc.Identity.Type {
	case armcontainerservice.ResourceIdentityTypeSystemAssigned, armcontainerservice.ResourceIdentityTypeUserAssigned:
		return true
	}
	return false
}

// IsPrivateCluster reports whether the API server of mc is private.
func IsPrivateCluster(mc *armcontainerservice.ManagedCluster) bool {
	if mc == nil || mc.Properties == nil || mc.Properties.APIServerAccessProfile == nil {
		return false
	}
	p := mc.Properties.APIServerAccessProfile.EnablePrivateCluster
	return p != nil && *p
}

func (c *Context) SubscriptionID(ctx context.Context) string {
	if v, ok := Lookup[string](c.Intermediates, KeySubscriptionID); ok && v != "" {
		return v
	}
	sub := ""
	if c.Clients != nil {
		sub = c.Clients.SubscriptionID
	}
	c.Intermediates.Set(ctx, KeySubscriptionID, sub, true)
	return sub
}

func (c *Context) ResourceGroupName() string { return c.Raw.ResourceGroupName }

func (c *Context) Name() string { return c.Raw.Name }

func (c *Context) Yes() bool { return c.Raw.Yes }

func (c *Context) NoWait() bool { return c.Raw.NoWait }

// readLocation reports the location and whether it came from the record.
func (c *Context) readLocation() (string, bool) {
	if c.mc != nil && c.mc.Location != nil {
		return *c.mc.Location, true
	}
	if c.Raw.Location != "" {
		return c.Raw.Location, false
	}
	if v, ok := Lookup[string](c.Intermediates, KeyLocation); ok {
		return v, false
	}
	return "", false
}

// Location falls back to the location of the resource group.
func (c *Context) Location(ctx context.Context) (string, error) {
	location, fromMC := c.readLocation()
	if fromMC || location != "" {
		return location, nil
	}
	rg, err := c.Clients.ResourceGroups.Get(ctx, c.Raw.ResourceGroupName, nil)
	if err != nil {
		if client.IsNotFoundErr(err) {
			return "", clierrors.ResourceNotFound("Resource group '%s' could not be found.", c.Raw.ResourceGroupName)
		}
		return "", clierrors.MapAzureError(err)
	}
	if rg.Location != nil {
		location = *rg.Location
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("using resource group location", "location", location)
	c.Intermediates.Set(ctx, KeyLocation, location, true)
	return location, nil
}

func (c *Context) Tags() map[string]string {
	tags := c.Raw.Tags
	if c.isCreate() && c.mc != nil && c.mc.Tags != nil {
		tags = derefMap(c.mc.Tags)
	}
	return tags
}

var dnsPrefixPart = regexp.MustCompile(`[^A-Za-z0-9-]`)

func (c *Context) readDNSNamePrefix() (string, bool) {
	if p := c.properties(); p != nil && p.DNSPrefix != nil {
		return *p.DNSPrefix, true
	}
	return c.Raw.DNSNamePrefix, false
}

// DNSNamePrefix is synthesized from the cluster, resource group and
// subscription names unless a prefix or an fqdn subdomain is given.
func (c *Context) DNSNamePrefix(ctx context.Context) (string, error) {
	prefix, fromMC := c.readDNSNamePrefix()
	fqdnSubdomain := c.readFQDNSubdomain()

	if !fromMC && prefix == "" && fqdnSubdomain == "" {
		namePart := helpers.Truncate(dnsPrefixPart.ReplaceAllString(c.Name(), ""), 10)
		if namePart == "" || !isASCIILetter(namePart[0]) {
			namePart = helpers.Truncate("a"+namePart, 10)
		}
		rgPart := helpers.Truncate(dnsPrefixPart.ReplaceAllString(c.ResourceGroupName(), ""), 16)
		prefix = namePart + "-" + rgPart + "-" + helpers.Truncate(c.SubscriptionID(ctx), 6)
	}

	if prefix != "" && fqdnSubdomain != "" {
		return "", clierrors.MutuallyExclusiveArgument("--dns-name-prefix and --fqdn-subdomain cannot be used at same time")
	}
	return prefix, nil
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func (c *Context) DiskEncryptionSetID() string {
	if p := c.properties(); p != nil && p.DiskEncryptionSetID != nil {
		return *p.DiskEncryptionSetID
	}
	return c.Raw.DiskEncryptionSetID
}

func (c *Context) EdgeZone() string {
	if c.mc != nil && c.mc.ExtendedLocation != nil && c.mc.ExtendedLocation.Name != nil {
		return *c.mc.ExtendedLocation.Name
	}
	return c.Raw.EdgeZone
}

func (c *Context) NodeResourceGroup() string {
	if p := c.properties(); p != nil && p.NodeResourceGroup != nil {
		return *p.NodeResourceGroup
	}
	return c.Raw.NodeResourceGroup
}

func (c *Context) AutoUpgradeChannel() string {
	if c.isCreate() {
		if p := c.properties(); p != nil && p.AutoUpgradeProfile != nil && p.AutoUpgradeProfile.UpgradeChannel != nil {
			return string(*p.AutoUpgradeProfile.UpgradeChannel)
		}
	}
	return c.Raw.AutoUpgradeChannel
}

// AKSCustomHeaders parses --aks-custom-headers. Repeated keys are joined.
func (c *Context) AKSCustomHeaders() (map[string]string, error) {
	return helpers.ExtractKeyValues(c.Raw.AKSCustomHeaders, helpers.ExtractOptions{
		Strip:           true,
		AppendToSameKey: true,
	}, map[string]string{})
}

func derefMap(m map[string]*string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v != nil {
			out[k] = *v
		} else {
			out[k] = ""
		}
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

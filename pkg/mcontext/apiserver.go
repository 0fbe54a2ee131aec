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
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func (c *Context) apiServerAccessProfile() *armcontainerservice.ManagedClusterAPIServerAccessProfile {
	if p := c.properties(); p != nil {
		return p.APIServerAccessProfile
	}
	return nil
}

func (c *Context) readAPIServerAuthorizedIPRanges() []string {
	if ap := c.apiServerAccessProfile(); c.isCreate() && ap != nil && ap.AuthorizedIPRanges != nil {
		return derefSlice(ap.AuthorizedIPRanges)
	}
	raw, _ := c.Raw.APIServerAuthorizedIPRanges.Get()
	return helpers.ExtractList(raw, true, nil)
}

// APIServerAuthorizedIPRanges is unset in update mode unless the flag was
// passed. A supplied empty value clears the ranges.
func (c *Context) APIServerAuthorizedIPRanges() (models.Optional[[]string], error) {
	raw, supplied := c.Raw.APIServerAuthorizedIPRanges.Get()
	if c.isUpdate() && !supplied {
		return models.None[[]string](), nil
	}
	if err := helpers.ValidateIPRanges(raw); err != nil {
		return models.None[[]string](), err
	}
	ranges := c.readAPIServerAuthorizedIPRanges()
	if ranges == nil {
		ranges = []string{}
	}
	if len(ranges) > 0 {
		private := c.readEnablePrivateCluster()
		if c.isUpdate() {
			private = IsPrivateCluster(c.mc)
		}
		if private {
			return models.None[[]string](), clierrors.MutuallyExclusiveArgument("--api-server-authorized-ip-ranges is not supported for private cluster")
		}
	}
	return models.Some(ranges), nil
}

func (c *Context) readEnablePrivateCluster() bool {
	if ap := c.apiServerAccessProfile(); c.isCreate() && ap != nil && ap.EnablePrivateCluster != nil {
		return *ap.EnablePrivateCluster
	}
	return c.Raw.EnablePrivateCluster
}

// EnablePrivateCluster validates the options that only make sense for a
// private cluster.
func (c *Context) EnablePrivateCluster() (bool, error) {
	private := c.readEnablePrivateCluster()
	if c.isCreate() {
		if !private {
			if c.Raw.DisablePublicFQDN {
				return false, clierrors.InvalidArgumentValue("--disable-public-fqdn should only be used with --enable-private-cluster")
			}
			if c.Raw.PrivateDNSZone != "" {
				return false, clierrors.InvalidArgumentValue("Invalid private dns zone for public cluster. It should always be empty for public cluster")
			}
		}
		return private, nil
	}
	if !IsPrivateCluster(c.mc) {
		if c.Raw.DisablePublicFQDN {
			return false, clierrors.InvalidArgumentValue("--disable-public-fqdn can only be used for private cluster")
		}
		if c.Raw.EnablePublicFQDN {
			return false, clierrors.InvalidArgumentValue("--enable-public-fqdn can only be used for private cluster")
		}
	}
	return private, nil
}

func (c *Context) PrivateDNSZone() (string, error) {
	zone := c.Raw.PrivateDNSZone
	if ap := c.apiServerAccessProfile(); c.isCreate() && ap != nil && ap.PrivateDNSZone != nil {
		zone = *ap.PrivateDNSZone
	}
	if zone == "" {
		return "", nil
	}
	lower := strings.ToLower(zone)
	if lower != models.PrivateDNSZoneSystem && lower != models.PrivateDNSZoneNone && !helpers.IsValidResourceID(zone) {
		return "", clierrors.InvalidArgumentValue("%s is not a valid Azure resource ID.", zone)
	}
	return zone, nil
}

func (c *Context) readFQDNSubdomain() string {
	if p := c.properties(); p != nil && p.FqdnSubdomain != nil {
		return *p.FqdnSubdomain
	}
	return c.Raw.FQDNSubdomain
}

// FQDNSubdomain is only valid for private clusters with a custom private DNS zone.
func (c *Context) FQDNSubdomain() (string, error) {
	sub := c.readFQDNSubdomain()
	if sub == "" {
		return "", nil
	}
	if prefix, _ := c.readDNSNamePrefix(); prefix != "" {
		return "", clierrors.MutuallyExclusiveArgument("--dns-name-prefix and --fqdn-subdomain cannot be used at same time")
	}
	zone, err := c.PrivateDNSZone()
	if err != nil {
		return "", err
	}
	lower := strings.ToLower(zone)
	if zone == "" || lower == models.PrivateDNSZoneSystem || lower == models.PrivateDNSZoneNone {
		return "", clierrors.InvalidArgumentValue("--fqdn-subdomain should only be used for private cluster with custom private dns zone")
	}
	return sub, nil
}

// DisablePublicFQDN reports whether the public FQDN of a private cluster goes away.
func (c *Context) DisablePublicFQDN() (bool, error) {
	disable := c.Raw.DisablePublicFQDN
	if ap := c.apiServerAccessProfile(); c.isCreate() && ap != nil && ap.EnablePrivateClusterPublicFQDN != nil {
		disable = !*ap.EnablePrivateClusterPublicFQDN
	}
	if c.isUpdate() {
		if disable && c.Raw.EnablePublicFQDN {
			return false, clierrors.MutuallyExclusiveArgument("Cannot specify '--enable-public-fqdn' and '--disable-public-fqdn' at the same time")
		}
		if ap := c.apiServerAccessProfile(); disable && ap != nil && strings.EqualFold(deref(ap.PrivateDNSZone), models.PrivateDNSZoneNone) {
			return false, clierrors.InvalidArgumentValue("--disable-public-fqdn cannot be applied for none mode private dns zone cluster")
		}
		if _, err := c.EnablePrivateCluster(); err != nil {
			return false, err
		}
	}
	return disable, nil
}

func (c *Context) EnablePublicFQDN() (bool, error) {
	if c.Raw.EnablePublicFQDN && c.Raw.DisablePublicFQDN {
		return false, clierrors.MutuallyExclusiveArgument("Cannot specify '--enable-public-fqdn' and '--disable-public-fqdn' at the same time")
	}
	if c.Raw.EnablePublicFQDN && c.isUpdate() {
		if _, err := c.EnablePrivateCluster(); err != nil {
			return false, err
		}
	}
	return c.Raw.EnablePublicFQDN, nil
}

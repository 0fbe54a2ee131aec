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

func (c *Context) networkProfile() *armcontainerservice.NetworkProfile {
	if p := c.properties(); p != nil {
		return p.NetworkProfile
	}
	return nil
}

func (c *Context) loadBalancerProfile() *armcontainerservice.ManagedClusterLoadBalancerProfile {
	if np := c.networkProfile(); np != nil {
		return np.LoadBalancerProfile
	}
	return nil
}

func (c *Context) natGatewayProfile() *armcontainerservice.ManagedClusterNATGatewayProfile {
	if np := c.networkProfile(); np != nil {
		return np.NatGatewayProfile
	}
	return nil
}

func (c *Context) readLoadBalancerSKU() string {
	if np := c.networkProfile(); np != nil && np.LoadBalancerSKU != nil {
		return strings.ToLower(string(*np.LoadBalancerSKU))
	}
	if c.Raw.LoadBalancerSKU == "" {
		return models.LoadBalancerSKUStandard
	}
	return strings.ToLower(c.Raw.LoadBalancerSKU)
}

// LoadBalancerSKU is lower case, standard unless basic was requested.
func (c *Context) LoadBalancerSKU() (string, error) {
	sku := c.readLoadBalancerSKU()
	if err := helpers.ValidateLoadBalancerSKU(sku); err != nil {
		return "", err
	}
	if sku == models.LoadBalancerSKUBasic {
		if ranges := c.readAPIServerAuthorizedIPRanges(); len(ranges) > 0 {
			return "", clierrors.InvalidArgumentValue("--api-server-authorized-ip-ranges can only be used with standard load balancer")
		}
		if c.readEnablePrivateCluster() {
			return "", clierrors.InvalidArgumentValue("Please use standard load balancer for private cluster")
		}
	}
	return sku, nil
}

func (c *Context) LoadBalancerManagedOutboundIPCount() (models.Optional[int32], error) {
	v := c.Raw.LoadBalancerManagedOutboundIPCount
	if lb := c.loadBalancerProfile(); c.isCreate() && lb != nil && lb.ManagedOutboundIPs != nil && lb.ManagedOutboundIPs.Count != nil {
		v = models.Some(*lb.ManagedOutboundIPs.Count)
	}
	if n, ok := v.Get(); ok && (n < 1 || n > 100) {
		return v, clierrors.InvalidArgumentValue("--load-balancer-managed-outbound-ip-count must be in the range [1,100]")
	}
	return v, nil
}

func (c *Context) LoadBalancerOutboundIPs() ([]string, error) {
	if lb := c.loadBalancerProfile(); c.isCreate() && lb != nil && lb.OutboundIPs != nil {
		return referenceIDs(lb.OutboundIPs.PublicIPs), nil
	}
	if err := helpers.ValidateIDList("load-balancer-outbound-ips", c.Raw.LoadBalancerOutboundIPs); err != nil {
		return nil, err
	}
	return helpers.ExtractList(c.Raw.LoadBalancerOutboundIPs, true, nil), nil
}

func (c *Context) LoadBalancerOutboundIPPrefixes() ([]string, error) {
	if lb := c.loadBalancerProfile(); c.isCreate() && lb != nil && lb.OutboundIPPrefixes != nil {
		return referenceIDs(lb.OutboundIPPrefixes.PublicIPPrefixes), nil
	}
	if err := helpers.ValidateIDList("load-balancer-outbound-ip-prefixes", c.Raw.LoadBalancerOutboundIPPrefixes); err != nil {
		return nil, err
	}
	return helpers.ExtractList(c.Raw.LoadBalancerOutboundIPPrefixes, true, nil), nil
}

func (c *Context) LoadBalancerOutboundPorts() (models.Optional[int32], error) {
	v := c.Raw.LoadBalancerOutboundPorts
	if lb := c.loadBalancerProfile(); c.isCreate() && lb != nil && lb.AllocatedOutboundPorts != nil {
		v = models.Some(*lb.AllocatedOutboundPorts)
	}
	if n, ok := v.Get(); ok {
		if err := helpers.ValidateLoadBalancerOutboundPorts(n); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (c *Context) LoadBalancerIdleTimeout() (models.Optional[int32], error) {
	v := c.Raw.LoadBalancerIdleTimeout
	if lb := c.loadBalancerProfile(); c.isCreate() && lb != nil && lb.IdleTimeoutInMinutes != nil {
		v = models.Some(*lb.IdleTimeoutInMinutes)
	}
	if n, ok := v.Get(); ok {
		if err := helpers.ValidateLoadBalancerIdleTimeout(n); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (c *Context) NATGatewayManagedOutboundIPCount() (models.Optional[int32], error) {
	v := c.Raw.NATGatewayManagedOutboundIPCount
	if nat := c.natGatewayProfile(); c.isCreate() && nat != nil && nat.ManagedOutboundIPProfile != nil && nat.ManagedOutboundIPProfile.Count != nil {
		v = models.Some(*nat.ManagedOutboundIPProfile.Count)
	}
	if n, ok := v.Get(); ok {
		if err := helpers.ValidateNATGatewayOutboundIPCount(n); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (c *Context) NATGatewayIdleTimeout() (models.Optional[int32], error) {
	v := c.Raw.NATGatewayIdleTimeout
	if nat := c.natGatewayProfile(); c.isCreate() && nat != nil && nat.IdleTimeoutInMinutes != nil {
		v = models.Some(*nat.IdleTimeoutInMinutes)
	}
	if n, ok := v.Get(); ok {
		if err := helpers.ValidateNATGatewayIdleTimeout(n); err != nil {
			return v, err
		}
	}
	return v, nil
}

// OutboundType defaults to loadBalancer. User defined routing and NAT
// gateways need a standard load balancer, and routing through a custom
// subnet needs that subnet.
func (c *Context) OutboundType() (string, error) {
	outbound := c.Raw.OutboundType
	fromMC := false
	if np := c.networkProfile(); np != nil && np.OutboundType != nil {
		outbound, fromMC = string(*np.OutboundType), true
	}
	if fromMC {
		return outbound, nil
	}
	switch outbound {
	case models.OutboundTypeUserDefinedRouting, models.OutboundTypeManagedNATGateway, models.OutboundTypeUserAssignedNATGateway:
	default:
		return models.OutboundTypeLoadBalancer, nil
	}

	if c.readLoadBalancerSKU() == models.LoadBalancerSKUBasic {
		return "", clierrors.InvalidArgumentValue("%s doesn't support basic load balancer sku", outbound)
	}
	if outbound == models.OutboundTypeManagedNATGateway {
		return outbound, nil
	}
	if c.VnetSubnetID() == "" {
		return "", clierrors.RequiredArgumentMissing("--vnet-subnet-id must be specified for %s and it must be pre-configured with a route table with egress rules", outbound)
	}
	if outbound == models.OutboundTypeUserDefinedRouting && c.hasLoadBalancerIPConfig() {
		return "", clierrors.MutuallyExclusiveArgument("userDefinedRouting doesn't support customizing a standard load balancer with IP addresses")
	}
	return outbound, nil
}

func (c *Context) hasLoadBalancerIPConfig() bool {
	if lb := c.loadBalancerProfile(); lb != nil {
		if lb.ManagedOutboundIPs != nil || lb.OutboundIPs != nil || lb.OutboundIPPrefixes != nil {
			return true
		}
	}
	return c.Raw.LoadBalancerManagedOutboundIPCount.IsSet() ||
		c.Raw.LoadBalancerOutboundIPs != "" ||
		c.Raw.LoadBalancerOutboundIPPrefixes != ""
}

// NetworkSettings are the plugin and address space choices of the cluster network.
type NetworkSettings struct {
	Plugin              string
	PodCIDR             string
	ServiceCIDR         string
	DNSServiceIP        string
	DockerBridgeAddress string
	Policy              string
}

// Any reports whether any of the settings was given.
func (s NetworkSettings) Any() bool {
	return s.Plugin != "" || s.PodCIDR != "" || s.ServiceCIDR != "" || s.DNSServiceIP != "" || s.DockerBridgeAddress != "" || s.Policy != ""
}

func (c *Context) NetworkSettings() (NetworkSettings, error) {
	s := NetworkSettings{
		Plugin:              c.Raw.NetworkPlugin,
		PodCIDR:             c.Raw.PodCIDR,
		ServiceCIDR:         c.Raw.ServiceCIDR,
		DNSServiceIP:        c.Raw.DNSServiceIP,
		DockerBridgeAddress: c.Raw.DockerBridgeAddress,
		Policy:              c.Raw.NetworkPolicy,
	}
	if np := c.networkProfile(); c.isCreate() && np != nil {
		s = NetworkSettings{
			Plugin:              string(deref(np.NetworkPlugin)),
			PodCIDR:             deref(np.PodCidr),
			ServiceCIDR:         deref(np.ServiceCidr),
			DNSServiceIP:        deref(np.DNSServiceIP),
			DockerBridgeAddress: deref(np.DockerBridgeCidr),
			Policy:              string(deref(np.NetworkPolicy)),
		}
		return s, nil
	}
	if s.Plugin == models.NetworkPluginAzure && s.PodCIDR != "" {
		return s, clierrors.InvalidArgumentValue("Please use kubenet as the network plugin type when pod_cidr is specified")
	}
	if s.Plugin == "" && (s.PodCIDR != "" || s.ServiceCIDR != "" || s.DNSServiceIP != "" || s.DockerBridgeAddress != "" || s.Policy != "") {
		return s, clierrors.RequiredArgumentMissing("Please explicitly specify the network plugin type")
	}
	return s, nil
}

func referenceIDs(refs []*armcontainerservice.ResourceReference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		if r != nil && r.ID != nil {
			out = append(out, *r.ID)
		}
	}
	return out
}

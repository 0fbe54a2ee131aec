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

package helpers

import (
	"net/netip"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

var (
	k8sVersionRegex  = regexp.MustCompile(`^[v|V]?(\d+\.\d+\.\d+.*)$`)
	rfc1123Regex     = regexp.MustCompile(`^([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])(\.([a-zA-Z0-9]|[a-zA-Z0-9][a-zA-Z0-9\-]{0,61}[a-zA-Z0-9]))*$`)
	alnumRegex       = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	taintRegex       = regexp.MustCompile(`^[a-zA-Z\d][\w\-\.\/]{0,252}=[a-zA-Z\d][\w\-\.]{0,62}:(NoSchedule|PreferNoSchedule|NoExecute)$`)
	labelPrefixRegex = regexp.MustCompile(`^[a-z0-9]([-a-z0-9]*[a-z0-9])?(\.[a-z0-9]([-a-z0-9]*[a-z0-9])?)*$`)
	labelNameRegex   = regexp.MustCompile(`^([A-Za-z0-9][-A-Za-z0-9_.]*)?[A-Za-z0-9]$`)
	labelValueRegex  = regexp.MustCompile(`^(([A-Za-z0-9][-A-Za-z0-9_.]*)?[A-Za-z0-9])?$`)
)

// IsValidResourceID reports whether id parses as an ARM resource id.
func IsValidResourceID(id string) bool {
	if !strings.HasPrefix(strings.ToLower(id), "/subscriptions/") {
		return false
	}
	_, err := arm.ParseResourceID(id)
	return err == nil
}

// ValidateResourceIDFlag checks an optional resource id flag. Empty values pass.
func ValidateResourceIDFlag(flag, id string) error {
	if id == "" || IsValidResourceID(id) {
		return nil
	}
	return clierrors.InvalidArgumentValue("--%s is not a valid Azure resource ID.", flag)
}

// NormalizeKubernetesVersion strips an optional v prefix and rejects partial versions.
func NormalizeKubernetesVersion(version string) (string, error) {
	if version == "" {
		return "", nil
	}
	m := k8sVersionRegex.FindStringSubmatch(version)
	if m == nil {
		return "", clierrors.InvalidArgumentValue(`--kubernetes-version should be the full version number, such as "1.11.8" or "1.12.6"`)
	}
	return m[1], nil
}

func ValidateNodepoolName(name string) error {
	if name == "" {
		return nil
	}
	if len(name) > 12 {
		return clierrors.InvalidArgumentValue("--nodepool-name can contain at most 12 characters")
	}
	if !alnumRegex.MatchString(name) {
		return clierrors.InvalidArgumentValue("--nodepool-name should contain only alphanumeric characters")
	}
	return nil
}

func ValidateClusterName(name string) error {
	if !rfc1123Regex.MatchString(name) {
		return clierrors.InvalidArgumentValue("--name cannot exceed 63 characters and can only contain letters, numbers, or dashes (-).")
	}
	return nil
}

func ValidateVMSetType(v string) error {
	switch strings.ToLower(v) {
	case "", "availabilityset", "virtualmachinescalesets":
		return nil
	}
	return clierrors.InvalidArgumentValue("--vm-set-type can only be VirtualMachineScaleSets or AvailabilitySet")
}

func ValidateLoadBalancerSKU(v string) error {
	switch strings.ToLower(v) {
	case "", "basic", "standard":
		return nil
	}
	return clierrors.InvalidArgumentValue("--load-balancer-sku can only be standard or basic")
}

// ValidateIDList rejects comma separated id lists with blank entries.
func ValidateIDList(flag, v string) error {
	if v == "" {
		return nil
	}
	for _, id := range strings.Split(v, ",") {
		if strings.TrimSpace(id) == "" {
			return clierrors.InvalidArgumentValue("--%s cannot contain whitespace", flag)
		}
	}
	return nil
}

func ValidateLoadBalancerOutboundPorts(ports int32) error {
	if ports%8 != 0 {
		return clierrors.InvalidArgumentValue("--load-balancer-allocated-ports must be a multiple of 8")
	}
	if ports < 0 || ports > 64000 {
		return clierrors.InvalidArgumentValue("--load-balancer-allocated-ports must be in the range [0,64000]")
	}
	return nil
}

func ValidateLoadBalancerIdleTimeout(minutes int32) error {
	if minutes < 4 || minutes > 100 {
		return clierrors.InvalidArgumentValue("--load-balancer-idle-timeout must be in the range [4,100]")
	}
	return nil
}

func ValidateNATGatewayOutboundIPCount(count int32) error {
	if count < 1 || count > 16 {
		return clierrors.InvalidArgumentValue("--nat-gateway-managed-outbound-ip-count must be in the range [1,16]")
	}
	return nil
}

func ValidateNATGatewayIdleTimeout(minutes int32) error {
	if minutes < 4 || minutes > 120 {
		return clierrors.InvalidArgumentValue("--nat-gateway-idle-timeout must be in the range [4,120]")
	}
	return nil
}

// ValidateNodeCountRange checks --min-count or --max-count.
func ValidateNodeCountRange(flag string, count int32) error {
	if count < 1 || count > 100 {
		return clierrors.InvalidArgumentValue("--%s must be in the range [1,100]", flag)
	}
	return nil
}

// ParseTaints validates and splits --node-taints. Empty entries are skipped.
func ParseTaints(v string) ([]string, error) {
	var taints []string
	for _, taint := range strings.Split(v, ",") {
		if taint == "" {
			continue
		}
		if !taintRegex.MatchString(taint) {
			return nil, clierrors.InvalidArgumentValue("Invalid node taint: %s", taint)
		}
		taints = append(taints, taint)
	}
	return taints, nil
}

func ValidateACR(attach, detach string) error {
	if attach != "" && detach != "" {
		return clierrors.MutuallyExclusiveArgument(`Cannot specify "--attach-acr" and "--detach-acr" at the same time.`)
	}
	return nil
}

const qualifiedNameHint = "A qualified name must consist of alphanumeric characters, '-', '_' or '.', and must start and end with an alphanumeric character (e.g. 'MyName',  or 'my.name',  or '123-abc') with an optional DNS subdomain prefix and '/' (e.g. 'example.com/MyName')"

// ParseLabel validates a single name=value node label.
func ParseLabel(label string) (string, string, error) {
	kv := strings.Split(label, "=")
	if len(kv) != 2 {
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. Label definition must be of format name=value.", label)
	}
	nameParts := strings.Split(kv[0], "/")
	var name string
	switch len(nameParts) {
	case 1:
		name = nameParts[0]
	case 2:
		prefix := nameParts[0]
		if prefix == "" || len(prefix) > 253 {
			return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. Label prefix can't be empty or more than 253 chars.", label)
		}
		if !labelPrefixRegex.MatchString(prefix) {
			return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. Prefix part a DNS-1123 label must consist of lower case alphanumeric characters or '-', and must start and end with an alphanumeric character", label)
		}
		name = nameParts[1]
	default:
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. %s", label, qualifiedNameHint)
	}
	if name == "" || len(name) > 63 {
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. Label name can't be empty or more than 63 chars.", label)
	}
	if !labelNameRegex.MatchString(name) {
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. %s", label, qualifiedNameHint)
	}
	if len(kv[1]) > 63 {
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. Label must not be more than 63 chars.", label)
	}
	if !labelValueRegex.MatchString(kv[1]) {
		return "", "", clierrors.InvalidArgumentValue("Invalid label: %s. A valid label must be an empty string or consist of alphanumeric characters, '-', '_' or '.', and must start and end with an alphanumeric character", label)
	}
	return kv[0], kv[1], nil
}

// ParseLabels merges space separated name=value labels.
func ParseLabels(labels []string) (map[string]string, error) {
	out := map[string]string{}
	for _, l := range labels {
		if l == "" {
			continue
		}
		k, v, err := ParseLabel(l)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// ParseTags turns space separated key[=value] items into a tag map.
func ParseTags(items []string) map[string]string {
	if items == nil {
		return nil
	}
	out := map[string]string{}
	for _, item := range items {
		k, v, _ := strings.Cut(item, "=")
		out[k] = v
	}
	return out
}

const (
	restrictToAgentNodes = "0.0.0.0/32"
	allowAllTraffic      = ""
)

var reservedIPv4 = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
}

func isGlobal(p netip.Prefix) bool {
	a := p.Masked().Addr()
	if !a.IsGlobalUnicast() || a.IsPrivate() {
		return false
	}
	for _, r := range reservedIPv4 {
		if r.Overlaps(p) {
			return false
		}
	}
	return true
}

func parseIPOrCIDR(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		if p.Masked() != p {
			return netip.Prefix{}, clierrors.InvalidArgumentValue("host bits set")
		}
		return p, nil
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	return netip.PrefixFrom(a, a.BitLen()), nil
}

// ValidateIPRanges checks --api-server-authorized-ip-ranges.
func ValidateIPRanges(v string) error {
	if v == "" {
		return nil
	}
	ranges := ExtractList(v, true, nil)
	for _, r := range ranges {
		if r == restrictToAgentNodes && len(ranges) > 1 {
			return clierrors.InvalidArgumentValue("Setting --api-server-authorized-ip-ranges to 0.0.0.0/32 is not allowed with other IP ranges.Refer to https://aka.ms/aks/whitelist for more details")
		}
	}
	for _, r := range ranges {
		if r == allowAllTraffic && len(ranges) > 1 {
			return clierrors.InvalidArgumentValue("--api-server-authorized-ip-ranges cannot be disabled and simultaneously enabled")
		}
	}
	for _, r := range ranges {
		if r == restrictToAgentNodes || r == allowAllTraffic {
			continue
		}
		p, err := parseIPOrCIDR(r)
		if err != nil {
			return clierrors.InvalidArgumentValue("--api-server-authorized-ip-ranges should be a list of IPv4 addresses or CIDRs")
		}
		if !isGlobal(p) {
			return clierrors.InvalidArgumentValue("--api-server-authorized-ip-ranges must be global non-reserved addresses or CIDRs")
		}
		if p.Addr().Is6() {
			return clierrors.InvalidArgumentValue("--api-server-authorized-ip-ranges cannot be IPv6 addresses")
		}
	}
	return nil
}

// ExpandUser replaces a leading ~ with the home directory.
func ExpandUser(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

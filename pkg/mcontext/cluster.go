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
	"sort"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func (c *Context) DisableLocalAccounts() (bool, error) {
	disable := c.Raw.DisableLocalAccounts
	if p := c.properties(); c.isCreate() && p != nil && p.DisableLocalAccounts != nil {
		disable = *p.DisableLocalAccounts
	}
	if c.isUpdate() && disable && c.Raw.EnableLocalAccounts {
		return false, clierrors.MutuallyExclusiveArgument("Cannot specify --disable-local-accounts and --enable-local-accounts at the same time.")
	}
	return disable, nil
}

func (c *Context) EnableLocalAccounts() (bool, error) {
	if c.Raw.EnableLocalAccounts && c.Raw.DisableLocalAccounts {
		return false, clierrors.MutuallyExclusiveArgument("Cannot specify --disable-local-accounts and --enable-local-accounts at the same time.")
	}
	return c.Raw.EnableLocalAccounts, nil
}

func (c *Context) UptimeSLA() (bool, error) {
	uptime := c.Raw.UptimeSLA
	if c.isCreate() && c.mc != nil && c.mc.SKU != nil && c.mc.SKU.Tier != nil {
		uptime = string(*c.mc.SKU.Tier) == models.SKUTierPaid
	}
	if uptime && c.Raw.NoUptimeSLA {
		return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--uptime-sla" and "--no-uptime-sla" at the same time.`)
	}
	return uptime, nil
}

func (c *Context) NoUptimeSLA() (bool, error) {
	if c.Raw.UptimeSLA && c.Raw.NoUptimeSLA {
		return false, clierrors.MutuallyExclusiveArgument(`Cannot specify "--uptime-sla" and "--no-uptime-sla" at the same time.`)
	}
	return c.Raw.NoUptimeSLA, nil
}

// ClusterAutoscalerProfile parses --cluster-autoscaler-profile. Items are
// merged left to right. In update mode a non-empty result is layered over the
// profile already on the cluster and an empty one clears it.
func (c *Context) ClusterAutoscalerProfile() (map[string]string, error) {
	var existing *armcontainerservice.ManagedClusterPropertiesAutoScalerProfile
	if p := c.properties(); p != nil {
		existing = p.AutoScalerProfile
	}
	if c.isCreate() && existing != nil {
		return models.AutoScalerProfileToMap(existing)
	}
	if c.Raw.ClusterAutoscalerProfile == nil {
		return nil, nil
	}

	profile := map[string]string{}
	for _, item := range c.Raw.ClusterAutoscalerProfile {
		kv, err := helpers.ExtractKeyValues(item, helpers.ExtractOptions{AllowEmptyValue: true}, map[string]string{})
		if err != nil {
			return nil, err
		}
		for k, v := range kv {
			profile[k] = v
		}
	}
	if err := validateAutoscalerProfileKeys(profile); err != nil {
		return nil, err
	}

	if c.isUpdate() && existing != nil && len(profile) > 0 {
		merged, err := models.AutoScalerProfileToMap(existing)
		if err != nil {
			return nil, err
		}
		for k, v := range profile {
			merged[k] = v
		}
		return merged, nil
	}
	return profile, nil
}

func validateAutoscalerProfileKeys(profile map[string]string) error {
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "" {
			return clierrors.InvalidArgumentValue("Empty key specified for cluster-autoscaler-profile")
		}
		valid := false
		for _, allowed := range models.AutoscalerProfileKeys {
			if k == allowed {
				valid = true
				break
			}
		}
		if !valid {
			return clierrors.InvalidArgumentValue("'%s' is an invalid key for cluster-autoscaler-profile. Valid keys are %s.", k, strings.Join(models.AutoscalerProfileKeys, ", "))
		}
	}
	return nil
}

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

package cluster

import (
	"context"
	"strings"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

var addonDescriptions = map[models.Addon]string{
	models.AddonHTTPApplicationRouting:  "configure ingress with automatic public DNS name creation",
	models.AddonMonitoring:              "turn on Log Analytics monitoring. Uses the Log Analytics Default Workspace if it exists, else creates one",
	models.AddonVirtualNode:             "enable AKS Virtual Node. Requires --aci-subnet-name to provide the name of an existing subnet for the Virtual Node to use",
	models.AddonKubeDashboard:           "enable the Kubernetes dashboard (deprecated)",
	models.AddonAzurePolicy:             "enable Azure policy. The Azure Policy add-on for AKS enables at-scale enforcements and safeguards on your clusters in a centralized, consistent manner",
	models.AddonIngressAppGW:            "enable Application Gateway Ingress Controller addon",
	models.AddonConfCom:                 "enable confcom addon, this will enable SGX device plugin by default",
	models.AddonOpenServiceMesh:         "enable Open Service Mesh addon",
	models.AddonKeyVaultSecretsProvider: "enable Azure Keyvault Secrets Provider addon",
}

// AddonStatus is the state of one addon on a cluster.
type AddonStatus struct {
	Name    string            `json:"name"`
	APIKey  string            `json:"api_key"`
	Enabled bool              `json:"enabled"`
	Config  map[string]string `json:"config,omitempty"`
}

// AvailableAddon describes an addon that can be enabled.
type AvailableAddon struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ConfigKeys  []string `json:"configKeys,omitempty"`
}

// ListAvailableAddons returns every addon the tool manages.
func ListAvailableAddons() []AvailableAddon {
	var out []AvailableAddon
	for _, a := range models.AllAddons() {
		out = append(out, AvailableAddon{Name: a.Key(), Description: addonDescriptions[a], ConfigKeys: a.ConfigKeys()})
	}
	return out
}

// ListAddons reports every managed addon of the cluster, enabled or not.
func (o *Operations) ListAddons(ctx context.Context, resourceGroup, name string) ([]AddonStatus, error) {
	mc, err := o.Show(ctx, resourceGroup, name)
	if err != nil {
		return nil, err
	}
	var out []AddonStatus
	for _, a := range models.AllAddons() {
		status := AddonStatus{Name: a.Key(), APIKey: a.APIName()}
		for key, profile := range mc.Properties.AddonProfiles {
			if profile == nil || !strings.EqualFold(key, a.APIName()) {
				continue
			}
			status.Enabled = deref(profile.Enabled)
			if status.Enabled {
				status.Config = derefMap(profile.Config)
			}
		}
		out = append(out, status)
	}
	return out, nil
}

// ShowAddon returns one enabled addon of the cluster.
func (o *Operations) ShowAddon(ctx context.Context, resourceGroup, name, addon string) (*AddonStatus, error) {
	a, ok := models.AddonFromKey(addon)
	if !ok {
		return nil, clierrors.InvalidArgumentValue("The addon %q is not a recognized addon option.", addon)
	}
	statuses, err := o.ListAddons(ctx, resourceGroup, name)
	if err != nil {
		return nil, err
	}
	for i := range statuses {
		if statuses[i].Name == a.Key() && statuses[i].Enabled {
			return &statuses[i], nil
		}
	}
	return nil, clierrors.InvalidArgumentValue("Addon %q is not enabled in this cluster.", addon)
}

func derefMap(in map[string]*string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = deref(v)
	}
	return out
}

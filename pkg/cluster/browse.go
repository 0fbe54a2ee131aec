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
	"fmt"
	"strings"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
)

var portalHosts = map[string]string{
	strings.ToLower(client.CloudAzure):             "https://portal.azure.com",
	strings.ToLower(client.CloudAzureChina):        "https://portal.azure.cn",
	strings.ToLower(client.CloudAzureUSGovernment): "https://portal.azure.us",
}

// BrowseURL returns the portal view of the cluster's Kubernetes resources.
func (o *Operations) BrowseURL(resourceGroup, name string) string {
	portal, ok := portalHosts[strings.ToLower(o.CloudName)]
	if !ok {
		portal = portalHosts[strings.ToLower(client.CloudAzure)]
	}
	return fmt.Sprintf("%s/#resource/subscriptions/%s/resourceGroups/%s/providers/Microsoft.ContainerService/managedClusters/%s/workloads",
		portal, o.Clients.SubscriptionID, resourceGroup, name)
}

// Browse prints the portal view of the cluster.
func (o *Operations) Browse(resourceGroup, name string) error {
	_, err := fmt.Fprintf(o.Out, "Kubernetes resources view on %s\n", o.BrowseURL(resourceGroup, name))
	return err
}

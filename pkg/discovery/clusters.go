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

package discovery

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
)

// ClusterSummary is one managed cluster found through Resource Graph.
type ClusterSummary struct {
	Name              string            `json:"name" yaml:"name"`
	ResourceGroup     string            `json:"resourceGroup" yaml:"resourceGroup"`
	SubscriptionID    string            `json:"subscriptionId" yaml:"subscriptionId"`
	Subscription      string            `json:"subscription" yaml:"subscription"`
	Location          string            `json:"location" yaml:"location"`
	ResourceID        string            `json:"id" yaml:"id"`
	KubernetesVersion string            `json:"kubernetesVersion" yaml:"kubernetesVersion"`
	State             string            `json:"provisioningState" yaml:"provisioningState"`
	Tags              map[string]string `json:"tags" yaml:"tags"`
}

// ClusterFilter narrows a cluster query. Empty fields do not filter.
type ClusterFilter struct {
	Name          string
	ResourceGroup string
	Location      string
	TagKey        string
	TagValue      string
	// Subscriptions limits the query; empty searches every subscription the caller can read.
	Subscriptions []string
}

// Discovery runs Resource Graph queries for clusters and registries.
type Discovery struct {
	graph client.ResourceGraphClient
}

func New(graph client.ResourceGraphClient) *Discovery {
	return &Discovery{graph: graph}
}

// Clusters lists managed clusters matching filter.
func (d *Discovery) Clusters(ctx context.Context, filter *ClusterFilter) ([]ClusterSummary, error) {
	query := buildClusterQuery(filter)
	request := armresourcegraph.QueryRequest{Query: to.Ptr(query)}
	if filter != nil && len(filter.Subscriptions) > 0 {
		request.Subscriptions = to.SliceOfPtrs(filter.Subscriptions...)
	}
	result, err := d.graph.Resources(ctx, request, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to execute Resource Graph query: %w", err)
	}
	return parseClusterResults(result)
}

func buildClusterQuery(filter *ClusterFilter) string {
	var query strings.Builder

	query.WriteString("resources\n")
	query.WriteString("| where type =~ 'Microsoft.ContainerService/managedClusters'\n")

	if filter != nil {
		if filter.Name != "" {
			query.WriteString(fmt.Sprintf("| where name =~ %s\n", kqlString(filter.Name)))
		}
		if filter.ResourceGroup != "" {
			query.WriteString(fmt.Sprintf("| where resourceGroup =~ %s\n", kqlString(filter.ResourceGroup)))
		}
		if filter.Location != "" {
			query.WriteString(fmt.Sprintf("| where location =~ %s\n", kqlString(strings.ToLower(filter.Location))))
		}
		if filter.TagKey != "" && filter.TagValue != "" {
			query.WriteString(fmt.Sprintf("| where tags[%s] =~ %s\n", kqlString(filter.TagKey), kqlString(filter.TagValue)))
		}
	}

	query.WriteString("| join kind=leftouter (\n")
	query.WriteString("    resourcecontainers\n")
	query.WriteString("    | where type == 'microsoft.resources/subscriptions'\n")
	query.WriteString("    | project subscriptionId, subscriptionDisplayName = name\n")
	query.WriteString(") on subscriptionId\n")
	query.WriteString("| project name, resourceGroup, subscriptionId, subscriptionDisplayName, location, tags, properties, id\n")
	query.WriteString("| order by subscriptionId asc, resourceGroup asc, name asc")

	return query.String()
}

func parseClusterResults(result armresourcegraph.ClientResourcesResponse) ([]ClusterSummary, error) {
	rows, err := parseResultRows(result.Data)
	if err != nil {
		return nil, err
	}

	var clusters []ClusterSummary
	for _, row := range rows {
		clusters = append(clusters, ClusterSummary{
			Name:              parseStringField(row, "name"),
			ResourceGroup:     parseStringField(row, "resourceGroup"),
			SubscriptionID:    parseStringField(row, "subscriptionId"),
			Subscription:      parseStringField(row, "subscriptionDisplayName"),
			Location:          parseStringField(row, "location"),
			ResourceID:        parseStringField(row, "id"),
			KubernetesVersion: parsePropertiesField(row, "kubernetesVersion"),
			State:             parsePropertiesField(row, "provisioningState"),
			Tags:              parseTagsMap(row),
		})
	}
	return clusters, nil
}

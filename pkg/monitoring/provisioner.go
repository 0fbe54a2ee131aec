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

// Package monitoring wires the container insights addon and the Azure Monitor
// metrics addon to their collateral: log analytics workspaces, data collection
// rules, endpoints and associations, private link scopes and recording rules.
package monitoring

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

// API versions sent verbatim for objects built as raw JSON.
const (
	workspaceAPIVersion       = "2015-11-01-preview"
	locationsAPIVersion       = "2019-11-01"
	insightsProviderVersion   = "2020-10-01"
	dataCollectionAPIVersion  = "2022-06-01"
	amplsAPIVersion           = "2021-07-01-preview"
	recommendationsAPIVersion = "2023-01-01-preview"
)

const (
	retryAttempts     = 3
	defaultRetryDelay = 3 * time.Second
)

// Provisioner creates monitoring collateral on behalf of one cluster command.
type Provisioner struct {
	// Clients are scoped to the cluster subscription.
	Clients *client.Clients
	// Builder serves workspaces living in another subscription. May be nil.
	Builder   client.ClientBuilder
	CloudName string

	RetryDelay   time.Duration
	PollInterval time.Duration

	now      func() time.Time
	readFile func(string) ([]byte, error)

	mu     sync.Mutex
	others map[string]*client.Clients
}

func New(clients *client.Clients, builder client.ClientBuilder, cloudName string) *Provisioner {
	return &Provisioner{
		Clients:      clients,
		Builder:      builder,
		CloudName:    cloudName,
		RetryDelay:   defaultRetryDelay,
		PollInterval: client.StandardPollInterval,
	}
}

func (p *Provisioner) clientsFor(subscriptionID string) (*client.Clients, error) {
	if p.Builder == nil || subscriptionID == "" || strings.EqualFold(subscriptionID, p.Clients.SubscriptionID) {
		return p.Clients, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.others[strings.ToLower(subscriptionID)]; ok {
		return c, nil
	}
	c, err := p.Builder.ForSubscription(subscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create clients for subscription %s: %w", subscriptionID, err)
	}
	if p.others == nil {
		p.others = map[string]*client.Clients{}
	}
	p.others[strings.ToLower(subscriptionID)] = c
	return c, nil
}

func (p *Provisioner) timeNow() time.Time {
	if p.now != nil {
		return p.now()
	}
	return time.Now()
}

func (p *Provisioner) read(path string) ([]byte, error) {
	if p.readFile != nil {
		return p.readFile(path)
	}
	return os.ReadFile(path)
}

// retry runs fn with the bounded attempts used for every monitor object.
func (p *Provisioner) retry(ctx context.Context, fn func(context.Context) error) error {
	return helpers.Retry(ctx, retryAttempts, p.RetryDelay, fn, nil)
}

// send issues a raw request and retries it.
func (p *Provisioner) send(ctx context.Context, method, url string, body any) ([]byte, error) {
	var out []byte
	err := p.retry(ctx, func(ctx context.Context) error {
		b, err := p.Clients.Raw.Send(ctx, method, url, body, nil)
		if err != nil {
			return err
		}
		out = b
		return nil
	})
	return out, err
}

func withAPIVersion(id, version string) string {
	return fmt.Sprintf("%s?api-version=%s", id, version)
}

// ClusterResourceID is the ARM id of a managed cluster.
func ClusterResourceID(subscriptionID, resourceGroup, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.ContainerService/managedClusters/%s",
		subscriptionID, resourceGroup, name)
}

func dataCollectionRuleID(subscriptionID, resourceGroup, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Insights/dataCollectionRules/%s",
		subscriptionID, resourceGroup, name)
}

func dataCollectionEndpointID(subscriptionID, resourceGroup, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Insights/dataCollectionEndpoints/%s",
		subscriptionID, resourceGroup, name)
}

func associationID(resourceID, name string) string {
	return fmt.Sprintf("%s/providers/Microsoft.Insights/dataCollectionRuleAssociations/%s", resourceID, name)
}

// DataCollectionRuleName is the container insights rule name for a cluster.
func DataCollectionRuleName(workspaceRegion, clusterName string) string {
	return helpers.SanitizeName(fmt.Sprintf("MSCI-%s-%s", workspaceRegion, clusterName), helpers.NameKindDCR)
}

// IngestionEndpointName is the high log scale ingestion endpoint name.
func IngestionEndpointName(workspaceRegion, clusterName string) string {
	return helpers.SanitizeName(fmt.Sprintf("MSCI-ingest-%s-%s", workspaceRegion, clusterName), helpers.NameKindDCE)
}

// ConfigEndpointName is the private link configuration endpoint name.
func ConfigEndpointName(clusterRegion, clusterName string) string {
	return helpers.SanitizeName(fmt.Sprintf("MSCI-config-%s-%s", clusterRegion, clusterName), helpers.NameKindDCE)
}

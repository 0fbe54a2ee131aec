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
	"errors"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resourcegraph/armresourcegraph"
)

// ErrNotFound is returned when a lookup matches nothing.
var ErrNotFound = errors.New("resource not found")

// RegistryIDByName resolves a container registry name to its resource id within subscriptionID.
func (d *Discovery) RegistryIDByName(ctx context.Context, subscriptionID, name string) (string, error) {
	query := fmt.Sprintf("resources\n"+
		"| where type =~ 'Microsoft.ContainerRegistry/registries'\n"+
		"| where name =~ %s\n"+
		"| project id, name, resourceGroup", kqlString(name))

	result, err := d.graph.Resources(ctx, armresourcegraph.QueryRequest{
		Query:         to.Ptr(query),
		Subscriptions: []*string{to.Ptr(subscriptionID)},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to execute Resource Graph query: %w", err)
	}
	rows, err := parseResultRows(result.Data)
	if err != nil {
		return "", err
	}
	switch len(rows) {
	case 0:
		return "", fmt.Errorf("registry %q: %w", name, ErrNotFound)
	case 1:
		return parseStringField(rows[0], "id"), nil
	default:
		return "", fmt.Errorf("more than one registry named %q found in subscription %s", name, subscriptionID)
	}
}

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

package monitoring

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
)

const deploymentTemplateSchema = "https://schema.management.azure.com/schemas/2015-01-01/deploymentTemplate.json#"

// solutionTemplate publishes the ContainerInsights solution into the workspace
// through a nested deployment scoped to the workspace subscription and group.
func solutionTemplate() map[string]any {
	solutionName := "[Concat('ContainerInsights', '(', split(parameters('workspaceResourceId'),'/')[8], ')')]"
	stringParam := func(description string) map[string]any {
		return map[string]any{"type": "string", "metadata": map[string]any{"description": description}}
	}
	return map[string]any{
		"$schema":        deploymentTemplateSchema,
		"contentVersion": "1.0.0.0",
		"parameters": map[string]any{
			"workspaceResourceId":    stringParam("Azure Monitor Log Analytics Resource ID"),
			"workspaceRegion":        stringParam("Azure Monitor Log Analytics workspace region"),
			"solutionDeploymentName": stringParam("Name of the solution deployment"),
		},
		"resources": []any{map[string]any{
			"type":           "Microsoft.Resources/deployments",
			"name":           "[parameters('solutionDeploymentName')]",
			"apiVersion":     "2017-05-10",
			"subscriptionId": "[split(parameters('workspaceResourceId'),'/')[2]]",
			"resourceGroup":  "[split(parameters('workspaceResourceId'),'/')[4]]",
			"properties": map[string]any{
				"mode": "Incremental",
				"template": map[string]any{
					"$schema":        deploymentTemplateSchema,
					"contentVersion": "1.0.0.0",
					"parameters":     map[string]any{},
					"variables":      map[string]any{},
					"resources": []any{map[string]any{
						"apiVersion": workspaceAPIVersion,
						"type":       "Microsoft.OperationsManagement/solutions",
						"location":   "[parameters('workspaceRegion')]",
						"name":       solutionName,
						"properties": map[string]any{
							"workspaceResourceId": "[parameters('workspaceResourceId')]",
						},
						"plan": map[string]any{
							"name":          solutionName,
							"product":       "[Concat('OMSGallery/', 'ContainerInsights')]",
							"promotionCode": "",
							"publisher":     "Microsoft",
						},
					}},
				},
				"parameters": map[string]any{},
			},
		}},
	}
}

// deploySolution is the monitoring route for clusters that do not use managed
// identity authentication for the agent.
func (p *Provisioner) deploySolution(ctx context.Context, ws WorkspaceRef, workspaceRegion string) error {
	logger := logr.FromContextOrDiscard(ctx)

	millis := p.timeNow().UnixMilli()
	deploymentName := fmt.Sprintf("aks-monitoring-%d", millis)
	params := map[string]any{
		"workspaceResourceId":    map[string]any{"value": ws.ID},
		"workspaceRegion":        map[string]any{"value": workspaceRegion},
		"solutionDeploymentName": map[string]any{"value": fmt.Sprintf("ContainerInsights-%d", millis)},
	}

	clients, err := p.clientsFor(ws.SubscriptionID)
	if err != nil {
		return err
	}
	logger.V(1).Info("deploying container insights solution", "deployment", deploymentName, "resourceGroup", ws.ResourceGroup)
	poller, err := clients.Deployments.BeginCreateOrUpdate(ctx, ws.ResourceGroup, deploymentName, armresources.Deployment{
		Properties: &armresources.DeploymentProperties{
			Mode:       to.Ptr(armresources.DeploymentModeIncremental),
			Template:   solutionTemplate(),
			Parameters: params,
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to start deployment %s: %w", deploymentName, err)
	}
	if _, err := client.PollUntilDone(ctx, poller, false, p.PollInterval); err != nil {
		return fmt.Errorf("deployment %s failed: %w", deploymentName, err)
	}
	return nil
}

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
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/alertsmanagement/armalertsmanagement"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/go-logr/logr"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

const (
	metricsDCRA          = "ContainerInsightsMetricsExtension"
	streamPrometheus     = "Microsoft-PrometheusMetrics"
	monitoringAccountRef = "MonitoringAccount1"
	ruleGroupInterval    = "PT1M"
)

// ruleGroup is one of the recording rule groups installed for a cluster.
// template is the position of its rules in the recommendations list.
type ruleGroup struct {
	prefix   string
	template int
	windows  bool
}

var ruleGroups = []ruleGroup{
	{prefix: "NodeRecordingRulesRuleGroup-", template: 0},
	{prefix: "KubernetesRecordingRulesRuleGroup-", template: 1},
	{prefix: "NodeRecordingRulesRuleGroup-Win-", template: 2, windows: true},
	{prefix: "NodeAndKubernetesRecordingRulesRuleGroup-Win-", template: 3, windows: true},
}

func (g ruleGroup) name(clusterName string) string {
	return helpers.SanitizeName(g.prefix+clusterName, helpers.NameKindRuleGroup)
}

// MetricsRequest describes the Azure Monitor metrics collateral of a cluster.
type MetricsRequest struct {
	ClusterSubscriptionID string
	ClusterResourceGroup  string
	ClusterName           string
	ClusterRegion         string

	AzureMonitorWorkspaceResourceID string
	EnableWindowsRecordingRules     bool
}

func (r MetricsRequest) clusterID() string {
	return ClusterResourceID(r.ClusterSubscriptionID, r.ClusterResourceGroup, r.ClusterName)
}

// MetricsObjectName names the endpoint and rule that forward Prometheus metrics.
func MetricsObjectName(region, clusterName string, kind helpers.NameKind) string {
	return helpers.SanitizeName(fmt.Sprintf("MSProm-%s-%s", region, clusterName), kind)
}

// EnableAzureMonitorMetrics ensures the Azure Monitor workspace, the metrics
// endpoint, rule and association, and the recording rule groups.
func (p *Provisioner) EnableAzureMonitorMetrics(ctx context.Context, req MetricsRequest) error {
	logger := logr.FromContextOrDiscard(ctx)

	workspaceID, region, err := p.ensureMonitorWorkspace(ctx, req)
	if err != nil {
		return err
	}
	logger.V(1).Info("using azure monitor workspace", "workspace", workspaceID, "region", region)

	dceID := dataCollectionEndpointID(req.ClusterSubscriptionID, req.ClusterResourceGroup,
		MetricsObjectName(region, req.ClusterName, helpers.NameKindDCE))
	if err := p.createEndpoint(ctx, dceID, region, false); err != nil {
		return err
	}

	dcrID := dataCollectionRuleID(req.ClusterSubscriptionID, req.ClusterResourceGroup,
		MetricsObjectName(region, req.ClusterName, helpers.NameKindDCR))
	if _, err := p.send(ctx, http.MethodPut, withAPIVersion(dcrID, dataCollectionAPIVersion), metricsRuleBody(region, dceID, workspaceID)); err != nil {
		return fmt.Errorf("failed to create data collection rule %s: %w", dcrID, err)
	}

	association := map[string]any{
		"location": req.ClusterRegion,
		"properties": map[string]any{
			"dataCollectionRuleId": dcrID,
			"description":          "Prometheus data collection association between DCR, DCE and target AKS resource",
		},
	}
	if _, err := p.send(ctx, http.MethodPut, withAPIVersion(associationID(req.clusterID(), metricsDCRA), dataCollectionAPIVersion), association); err != nil {
		return fmt.Errorf("failed to associate data collection rule with cluster: %w", err)
	}

	return p.createRecordingRules(ctx, req, workspaceID, region)
}

func metricsRuleBody(region, endpointID, workspaceID string) map[string]any {
	return map[string]any{
		"location": region,
		"kind":     "Linux",
		"properties": map[string]any{
			"dataCollectionEndpointId": endpointID,
			"dataSources": map[string]any{
				"prometheusForwarder": []any{map[string]any{
					"name":               "PrometheusDataSource",
					"streams":            []string{streamPrometheus},
					"labelIncludeFilter": map[string]any{},
				}},
			},
			"dataFlows": []any{map[string]any{
				"destinations": []string{monitoringAccountRef},
				"streams":      []string{streamPrometheus},
			}},
			"destinations": map[string]any{
				"monitoringAccounts": []any{map[string]any{
					"accountResourceId": workspaceID,
					"name":              monitoringAccountRef,
				}},
			},
		},
	}
}

// ensureMonitorWorkspace returns the id and region of the Azure Monitor
// workspace, creating the default one when none was given.
func (p *Provisioner) ensureMonitorWorkspace(ctx context.Context, req MetricsRequest) (string, string, error) {
	if req.AzureMonitorWorkspaceResourceID != "" {
		rid, err := arm.ParseResourceID(req.AzureMonitorWorkspaceResourceID)
		if err != nil {
			return "", "", clierrors.InvalidArgumentValue("%s is not a valid Azure Monitor workspace resource ID", req.AzureMonitorWorkspaceResourceID)
		}
		clients, err := p.clientsFor(rid.SubscriptionID)
		if err != nil {
			return "", "", err
		}
		resp, err := clients.MonitorWorkspaces.Get(ctx, rid.ResourceGroupName, rid.Name, nil)
		if err != nil {
			if client.IsNotFoundErr(err) {
				return "", "", clierrors.ResourceNotFound("Azure Monitor workspace %s not found", req.AzureMonitorWorkspaceResourceID)
			}
			return "", "", fmt.Errorf("failed to get azure monitor workspace: %w", err)
		}
		return idOr(resp.ID, req.AzureMonitorWorkspaceResourceID), helpers.Deref(resp.Location), nil
	}

	region, code, ok := WorkspaceRegion(p.CloudName, req.ClusterRegion)
	if !ok {
		return "", "", clierrors.InvalidArgumentValue("Azure Monitor metrics are not supported in cloud %s", p.CloudName)
	}
	resourceGroup := defaultResourceGroup(code)
	name := "DefaultAzureMonitorWorkspace-" + code

	exists, err := p.Clients.ResourceGroups.CheckExistence(ctx, resourceGroup, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to check resource group %s: %w", resourceGroup, err)
	}
	if !exists.Success {
		if _, err := p.Clients.ResourceGroups.CreateOrUpdate(ctx, resourceGroup, armresources.ResourceGroup{Location: to.Ptr(region)}, nil); err != nil {
			return "", "", fmt.Errorf("failed to create resource group %s: %w", resourceGroup, err)
		}
	}

	resp, err := p.Clients.MonitorWorkspaces.Get(ctx, resourceGroup, name, nil)
	if err == nil {
		return helpers.Deref(resp.ID), helpers.Deref(resp.Location), nil
	}
	if !client.IsNotFoundErr(err) {
		return "", "", fmt.Errorf("failed to get azure monitor workspace %s: %w", name, err)
	}
	created, err := p.Clients.MonitorWorkspaces.Create(ctx, resourceGroup, name, armmonitor.AzureMonitorWorkspaceResource{
		Location: to.Ptr(region),
	}, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create azure monitor workspace %s: %w", name, err)
	}
	return helpers.Deref(created.ID), region, nil
}

type ruleRecommendations struct {
	Value []struct {
		Properties struct {
			RulesArmTemplate struct {
				Resources []struct {
					Properties struct {
						Rules []*armalertsmanagement.PrometheusRule `json:"rules"`
					} `json:"properties"`
				} `json:"resources"`
			} `json:"rulesArmTemplate"`
		} `json:"properties"`
	} `json:"value"`
}

func (p *Provisioner) recordingRuleTemplates(ctx context.Context, workspaceID string) (*ruleRecommendations, error) {
	url := withAPIVersion(workspaceID+"/providers/microsoft.alertsManagement/alertRuleRecommendations", recommendationsAPIVersion)
	body, err := p.send(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recording rule recommendations: %w", err)
	}
	recs := &ruleRecommendations{}
	if err := json.Unmarshal(body, recs); err != nil {
		return nil, fmt.Errorf("failed to decode recording rule recommendations: %w", err)
	}
	return recs, nil
}

func (r *ruleRecommendations) rules(index int) ([]*armalertsmanagement.PrometheusRule, error) {
	if index >= len(r.Value) || len(r.Value[index].Properties.RulesArmTemplate.Resources) == 0 {
		return nil, fmt.Errorf("recording rule recommendation %d is missing", index)
	}
	return r.Value[index].Properties.RulesArmTemplate.Resources[0].Properties.Rules, nil
}

func (p *Provisioner) createRecordingRules(ctx context.Context, req MetricsRequest, workspaceID, region string) error {
	templates, err := p.recordingRuleTemplates(ctx, workspaceID)
	if err != nil {
		return err
	}
	for _, g := range ruleGroups {
		if g.windows && !req.EnableWindowsRecordingRules {
			continue
		}
		rules, err := templates.rules(g.template)
		if err != nil {
			return err
		}
		name := g.name(req.ClusterName)
		group := armalertsmanagement.PrometheusRuleGroupResource{
			Location: to.Ptr(region),
			Properties: &armalertsmanagement.PrometheusRuleGroupProperties{
				Scopes:      []*string{to.Ptr(workspaceID)},
				Enabled:     to.Ptr(true),
				ClusterName: to.Ptr(req.ClusterName),
				Interval:    to.Ptr(ruleGroupInterval),
				Rules:       rules,
			},
		}
		err = p.retry(ctx, func(ctx context.Context) error {
			_, err := p.Clients.PrometheusRuleGroups.CreateOrUpdate(ctx, req.ClusterResourceGroup, name, group, nil)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to create recording rule group %s: %w", name, err)
		}
	}
	return nil
}

// DisableAzureMonitorMetrics removes the recording rule groups and every
// association of the cluster whose rule forwards Prometheus metrics, along
// with that rule and its endpoint. Objects already gone are skipped.
func (p *Provisioner) DisableAzureMonitorMetrics(ctx context.Context, req MetricsRequest) error {
	var errs []error
	clusterID := req.clusterID()

	pager := p.Clients.DataCollectionRuleAssociations.NewListByResourcePager(clusterID, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			if !client.IsNotFoundErr(err) {
				errs = append(errs, fmt.Errorf("failed to list data collection rule associations: %w", err))
			}
			break
		}
		for _, a := range page.Value {
			errs = append(errs, p.removeMetricsAssociation(ctx, clusterID, a))
		}
	}

	for _, g := range ruleGroups {
		name := g.name(req.ClusterName)
		if _, err := p.Clients.PrometheusRuleGroups.Delete(ctx, req.ClusterResourceGroup, name, nil); err != nil && !client.IsNotFoundErr(err) {
			errs = append(errs, fmt.Errorf("failed to delete recording rule group %s: %w", name, err))
		}
	}
	return utilerrors.NewAggregate(errs)
}

func (p *Provisioner) removeMetricsAssociation(ctx context.Context, clusterID string, a *armmonitor.DataCollectionRuleAssociationProxyOnlyResource) error {
	if a == nil || a.Name == nil || a.Properties == nil || a.Properties.DataCollectionRuleID == nil {
		return nil
	}
	ruleID, err := arm.ParseResourceID(*a.Properties.DataCollectionRuleID)
	if err != nil {
		return fmt.Errorf("association %s references an invalid rule: %w", *a.Name, err)
	}
	clients, err := p.clientsFor(ruleID.SubscriptionID)
	if err != nil {
		return err
	}
	rule, err := clients.DataCollectionRules.Get(ctx, ruleID.ResourceGroupName, ruleID.Name, nil)
	if err != nil {
		if client.IsNotFoundErr(err) {
			return nil
		}
		return fmt.Errorf("failed to get data collection rule %s: %w", ruleID.Name, err)
	}
	if !forwardsPrometheus(&rule.DataCollectionRuleResource) {
		return nil
	}

	var errs []error
	if _, err := p.Clients.DataCollectionRuleAssociations.Delete(ctx, clusterID, *a.Name, nil); err != nil && !client.IsNotFoundErr(err) {
		errs = append(errs, fmt.Errorf("failed to delete data collection rule association %s: %w", *a.Name, err))
	}
	if _, err := clients.DataCollectionRules.Delete(ctx, ruleID.ResourceGroupName, ruleID.Name, nil); err != nil && !client.IsNotFoundErr(err) {
		errs = append(errs, fmt.Errorf("failed to delete data collection rule %s: %w", ruleID.Name, err))
	}
	if endpoint := rule.Properties.DataCollectionEndpointID; endpoint != nil && *endpoint != "" {
		errs = append(errs, p.deleteEndpoint(ctx, *endpoint))
	}
	return utilerrors.NewAggregate(errs)
}

func (p *Provisioner) deleteEndpoint(ctx context.Context, id string) error {
	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return fmt.Errorf("invalid data collection endpoint id %s: %w", id, err)
	}
	clients, err := p.clientsFor(rid.SubscriptionID)
	if err != nil {
		return err
	}
	if _, err := clients.DataCollectionEndpoints.Delete(ctx, rid.ResourceGroupName, rid.Name, nil); err != nil && !client.IsNotFoundErr(err) {
		return fmt.Errorf("failed to delete data collection endpoint %s: %w", rid.Name, err)
	}
	return nil
}

func forwardsPrometheus(rule *armmonitor.DataCollectionRuleResource) bool {
	return rule != nil && rule.Properties != nil && rule.Properties.DataSources != nil &&
		len(rule.Properties.DataSources.PrometheusForwarder) > 0
}

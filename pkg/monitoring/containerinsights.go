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
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

// State is a step of the container insights provisioning sequence.
type State string

const (
	StateAbsent           State = "absent"
	StateWorkspaceEnsured State = "workspace-ensured"
	StateDCRCreated       State = "dcr-created"
	StateDCECreated       State = "dce-created"
	StateDCRABound        State = "dcra-bound"
	StateAMPLSLinked      State = "ampls-linked"
	StateReady            State = "ready"
)

const (
	containerInsightsDCRA = "ContainerInsightsExtension"
	configEndpointDCRA    = "configurationAccessEndpoint"
)

// Request describes one pass over the container insights collateral of a cluster.
type Request struct {
	// Addon is the omsagent profile. Its workspace config key is normalized in place.
	Addon *armcontainerservice.ManagedClusterAddonProfile

	ClusterSubscriptionID string
	ClusterResourceGroup  string
	ClusterName           string
	ClusterRegion         string

	// AADRoute selects the data collection rule route over the legacy solution deployment.
	AADRoute         bool
	RemoveMonitoring bool
	CreateDCR        bool
	CreateDCRA       bool

	EnableSyslog           bool
	EnableHighLogScaleMode bool
	DataCollectionSettings string
	AMPLSResourceID        string
}

func (r Request) useAMPLS() bool {
	return r.AMPLSResourceID != ""
}

func (r Request) clusterID() string {
	return ClusterResourceID(r.ClusterSubscriptionID, r.ClusterResourceGroup, r.ClusterName)
}

// run carries what earlier transitions learned to later ones.
type run struct {
	req             Request
	workspace       WorkspaceRef
	workspaceRegion string
	dcrID           string
	ingestionDCEID  string
	configDCEID     string
}

type transition struct {
	to     State
	guard  func(r *run) bool
	action func(p *Provisioner, ctx context.Context, r *run) error
}

var provisionTransitions = []transition{
	{to: StateWorkspaceEnsured, guard: always, action: (*Provisioner).resolveWorkspace},
	{to: StateDCRCreated, guard: wantsRule, action: (*Provisioner).createRule},
	{to: StateDCECreated, guard: wantsConfigEndpoint, action: (*Provisioner).createConfigEndpoint},
	{to: StateDCRABound, guard: wantsAssociation, action: (*Provisioner).bindAssociations},
	{to: StateAMPLSLinked, guard: wantsAMPLSLink, action: (*Provisioner).linkPrivateLinkScope},
	{to: StateReady, guard: always},
}

var teardownTransitions = []transition{
	{to: StateDCRABound, guard: always, action: (*Provisioner).resolveWorkspace},
	{to: StateDCECreated, guard: wantsAssociation, action: (*Provisioner).unbindAssociations},
	{to: StateAbsent, guard: always},
}

func always(*run) bool { return true }

// The legacy solution deployment takes the place of the rule.
func wantsRule(r *run) bool {
	return !r.req.AADRoute || r.req.CreateDCR
}

func wantsConfigEndpoint(r *run) bool {
	return r.req.AADRoute && r.req.CreateDCR && r.req.useAMPLS()
}

func wantsAssociation(r *run) bool {
	return r.req.AADRoute && r.req.CreateDCRA
}

func wantsAMPLSLink(r *run) bool {
	return r.req.AADRoute && r.req.CreateDCR && r.req.useAMPLS()
}

// EnsureContainerInsights drives the container insights collateral of a
// cluster to ready, or back to absent when RemoveMonitoring is set, and returns
// the state reached. A disabled addon and a cloud without monitoring support
// leave everything untouched.
func (p *Provisioner) EnsureContainerInsights(ctx context.Context, req Request) (State, error) {
	logger := logr.FromContextOrDiscard(ctx)
	if req.Addon == nil || req.Addon.Enabled == nil || !*req.Addon.Enabled {
		return StateAbsent, nil
	}
	if _, _, ok := WorkspaceRegion(p.CloudName, req.ClusterRegion); !ok {
		logger.Error(nil, "AKS Monitoring addon not supported in cloud", "cloud", p.CloudName)
		return StateAbsent, nil
	}

	r := &run{req: req}
	transitions, state := provisionTransitions, StateAbsent
	if req.RemoveMonitoring {
		transitions, state = teardownTransitions, StateReady
	}
	for _, t := range transitions {
		if t.action != nil && t.guard(r) {
			logger.V(1).Info("monitoring transition", "from", state, "to", t.to)
			if err := t.action(p, ctx, r); err != nil {
				return state, err
			}
		}
		state = t.to
	}
	return state, nil
}

// NormalizeWorkspaceKey restores the canonical casing of the workspace config
// key, which has been seen lowercased on existing clusters.
func NormalizeWorkspaceKey(addon *armcontainerservice.ManagedClusterAddonProfile) {
	for key, value := range addon.Config {
		if key != models.MonitoringWorkspaceResourceID && strings.EqualFold(key, models.MonitoringWorkspaceResourceID) {
			delete(addon.Config, key)
			addon.Config[models.MonitoringWorkspaceResourceID] = value
		}
	}
}

func (p *Provisioner) resolveWorkspace(ctx context.Context, r *run) error {
	if r.req.Addon.Config == nil {
		r.req.Addon.Config = map[string]*string{}
	}
	NormalizeWorkspaceKey(r.req.Addon)

	id := ""
	if v := r.req.Addon.Config[models.MonitoringWorkspaceResourceID]; v != nil {
		id = *v
	}
	if id == "" && r.req.RemoveMonitoring {
		return nil
	}
	if id == "" {
		var err error
		if id, err = p.EnsureDefaultWorkspace(ctx, r.req.ClusterSubscriptionID, r.req.ClusterRegion); err != nil {
			return err
		}
		if id == "" {
			return fmt.Errorf("no default workspace available in cloud %s", p.CloudName)
		}
		r.req.Addon.Config[models.MonitoringWorkspaceResourceID] = to.Ptr(id)
	}
	ws, err := ParseWorkspaceID(id)
	if err != nil {
		return err
	}
	r.workspace = ws
	if r.req.RemoveMonitoring {
		return nil
	}
	r.workspaceRegion, err = p.workspaceLocation(ctx, ws)
	return err
}

func (p *Provisioner) createRule(ctx context.Context, r *run) error {
	if !r.req.AADRoute {
		return p.deploySolution(ctx, r.workspace, r.workspaceRegion)
	}
	settings, err := p.loadDataCollectionSettings(r.req.DataCollectionSettings)
	if err != nil {
		return err
	}
	if err := p.checkRegionSupport(ctx, r.workspace.SubscriptionID, r.workspaceRegion, r.req.ClusterRegion); err != nil {
		return err
	}

	if r.req.EnableHighLogScaleMode {
		name := IngestionEndpointName(r.workspaceRegion, r.req.ClusterName)
		r.ingestionDCEID = dataCollectionEndpointID(r.req.ClusterSubscriptionID, r.req.ClusterResourceGroup, name)
		if err := p.createEndpoint(ctx, r.ingestionDCEID, r.workspaceRegion, r.req.useAMPLS()); err != nil {
			return err
		}
	}

	name := DataCollectionRuleName(r.workspaceRegion, r.req.ClusterName)
	r.dcrID = dataCollectionRuleID(r.req.ClusterSubscriptionID, r.req.ClusterResourceGroup, name)
	spec := dcrSpec{
		location:            r.workspaceRegion,
		workspaceID:         r.workspace.ID,
		settings:            settings,
		enableSyslog:        r.req.EnableSyslog,
		enableHighLogScale:  r.req.EnableHighLogScaleMode,
		ingestionEndpointID: r.ingestionDCEID,
	}
	if _, err := p.send(ctx, http.MethodPut, withAPIVersion(r.dcrID, dataCollectionAPIVersion), spec.body()); err != nil {
		return fmt.Errorf("failed to create data collection rule %s: %w", r.dcrID, err)
	}
	return nil
}

func (p *Provisioner) createEndpoint(ctx context.Context, id, region string, private bool) error {
	access := "Enabled"
	if private {
		access = "Disabled"
	}
	body := map[string]any{
		"location": region,
		"kind":     "Linux",
		"properties": map[string]any{
			"networkAcls": map[string]any{"publicNetworkAccess": access},
		},
	}
	if _, err := p.send(ctx, http.MethodPut, withAPIVersion(id, dataCollectionAPIVersion), body); err != nil {
		return fmt.Errorf("failed to create data collection endpoint %s: %w", id, err)
	}
	return nil
}

func (p *Provisioner) createConfigEndpoint(ctx context.Context, r *run) error {
	name := ConfigEndpointName(r.req.ClusterRegion, r.req.ClusterName)
	r.configDCEID = dataCollectionEndpointID(r.req.ClusterSubscriptionID, r.req.ClusterResourceGroup, name)
	return p.createEndpoint(ctx, r.configDCEID, r.req.ClusterRegion, true)
}

func (p *Provisioner) bindAssociations(ctx context.Context, r *run) error {
	if r.dcrID == "" {
		r.dcrID = dataCollectionRuleID(r.req.ClusterSubscriptionID, r.req.ClusterResourceGroup,
			DataCollectionRuleName(r.workspaceRegion, r.req.ClusterName))
	}
	url := withAPIVersion(associationID(r.req.clusterID(), containerInsightsDCRA), dataCollectionAPIVersion)
	body := map[string]any{
		"location": r.req.ClusterRegion,
		"properties": map[string]any{
			"dataCollectionRuleId": r.dcrID,
			"description":          "routes monitoring data to a Log Analytics workspace",
		},
	}
	if _, err := p.send(ctx, http.MethodPut, url, body); err != nil {
		return fmt.Errorf("failed to associate data collection rule with cluster: %w", err)
	}

	if !r.req.useAMPLS() {
		return nil
	}
	if r.configDCEID == "" {
		r.configDCEID = dataCollectionEndpointID(r.req.ClusterSubscriptionID, r.req.ClusterResourceGroup,
			ConfigEndpointName(r.req.ClusterRegion, r.req.ClusterName))
	}
	url = withAPIVersion(associationID(r.req.clusterID(), configEndpointDCRA), dataCollectionAPIVersion)
	body = map[string]any{
		"location": r.req.ClusterRegion,
		"properties": map[string]any{
			"dataCollectionEndpointId": r.configDCEID,
		},
	}
	if _, err := p.send(ctx, http.MethodPut, url, body); err != nil {
		return fmt.Errorf("failed to associate data collection endpoint with cluster: %w", err)
	}
	return nil
}

// Association deletes complete synchronously.
var associationDeleteOptions = &client.RawRequestOptions{ExpectedStatusCodes: []int{http.StatusOK, http.StatusNoContent}}

func (p *Provisioner) unbindAssociations(ctx context.Context, r *run) error {
	names := []string{containerInsightsDCRA}
	if r.req.useAMPLS() {
		names = append(names, configEndpointDCRA)
	}
	for _, name := range names {
		url := withAPIVersion(associationID(r.req.clusterID(), name), dataCollectionAPIVersion)
		err := p.retry(ctx, func(ctx context.Context) error {
			_, err := p.Clients.Raw.Send(ctx, http.MethodDelete, url, nil, associationDeleteOptions)
			if client.IsNotFoundErr(err) {
				return nil
			}
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to remove data collection rule association %s: %w", name, err)
		}
	}
	return nil
}

func (p *Provisioner) linkPrivateLinkScope(ctx context.Context, r *run) error {
	links := []struct{ name, id string }{
		{name: ConfigEndpointName(r.req.ClusterRegion, r.req.ClusterName) + "-connection", id: r.configDCEID},
		{name: r.workspace.Name + "-connection", id: r.workspace.ID},
	}
	if r.ingestionDCEID != "" {
		links = append(links, struct{ name, id string }{
			name: IngestionEndpointName(r.workspaceRegion, r.req.ClusterName) + "-connection",
			id:   r.ingestionDCEID,
		})
	}
	scope := strings.TrimRight(r.req.AMPLSResourceID, "/")
	for _, l := range links {
		url := withAPIVersion(fmt.Sprintf("%s/scopedresources/%s", scope, l.name), amplsAPIVersion)
		body := map[string]any{"properties": map[string]any{"linkedResourceId": l.id}}
		if _, err := p.send(ctx, http.MethodPut, url, body); err != nil {
			return fmt.Errorf("failed to link %s to private link scope %s: %w", l.id, scope, err)
		}
	}
	return nil
}

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
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const (
	subID       = "00000000-0000-0000-0000-000000000001"
	workspaceID = "/subscriptions/" + subID + "/resourceGroups/logs/providers/Microsoft.OperationalInsights/workspaces/ws1"
	clusterID   = "/subscriptions/" + subID + "/resourceGroups/rg/providers/Microsoft.ContainerService/managedClusters/c1"
)

var notFound = &azcore.ResponseError{StatusCode: http.StatusNotFound, ErrorCode: "ResourceNotFound"}

type rawCall struct {
	method string
	url    string
	body   any
}

// fakeRaw records every request and answers from responses keyed by
// "METHOD url"; unknown requests get an empty object.
type fakeRaw struct {
	calls     []rawCall
	responses map[string]string
	errs      map[string][]error
}

var _ client.RawClient = (*fakeRaw)(nil)

func (f *fakeRaw) Endpoint() string { return "https://management.azure.com" }

func (f *fakeRaw) Send(_ context.Context, method, url string, body any, _ *client.RawRequestOptions) ([]byte, error) {
	f.calls = append(f.calls, rawCall{method: method, url: url, body: body})
	key := method + " " + url
	if errs := f.errs[key]; len(errs) > 0 {
		f.errs[key] = errs[1:]
		if errs[0] != nil {
			return nil, errs[0]
		}
	}
	if r, ok := f.responses[key]; ok {
		return []byte(r), nil
	}
	return []byte(`{}`), nil
}

func (f *fakeRaw) requests() []string {
	var out []string
	for _, c := range f.calls {
		out = append(out, c.method+" "+c.url)
	}
	return out
}

func (f *fakeRaw) bodyOf(t *testing.T, method, url string) map[string]any {
	t.Helper()
	for _, c := range f.calls {
		if c.method == method && c.url == url {
			raw, err := json.Marshal(c.body)
			require.NoError(t, err)
			out := map[string]any{}
			require.NoError(t, json.Unmarshal(raw, &out))
			return out
		}
	}
	t.Fatalf("no %s %s request", method, url)
	return nil
}

type testMocks struct {
	raw           *fakeRaw
	groups        *client.MockResourceGroupsClient
	resources     *client.MockResourcesClient
	deployments   *client.MockDeploymentsClient
	workspaces    *client.MockAzureMonitorWorkspacesClient
	rules         *client.MockDataCollectionRulesClient
	endpoints     *client.MockDataCollectionEndpointsClient
	associations  *client.MockDataCollectionRuleAssociationsClient
	ruleGroupsAPI *client.MockPrometheusRuleGroupsClient
}

func newTestProvisioner(t *testing.T, cloudName string) (*Provisioner, *testMocks) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		raw:           &fakeRaw{responses: map[string]string{}, errs: map[string][]error{}},
		groups:        client.NewMockResourceGroupsClient(ctrl),
		resources:     client.NewMockResourcesClient(ctrl),
		deployments:   client.NewMockDeploymentsClient(ctrl),
		workspaces:    client.NewMockAzureMonitorWorkspacesClient(ctrl),
		rules:         client.NewMockDataCollectionRulesClient(ctrl),
		endpoints:     client.NewMockDataCollectionEndpointsClient(ctrl),
		associations:  client.NewMockDataCollectionRuleAssociationsClient(ctrl),
		ruleGroupsAPI: client.NewMockPrometheusRuleGroupsClient(ctrl),
	}
	p := New(&client.Clients{
		SubscriptionID:                 subID,
		ResourceGroups:                 m.groups,
		Resources:                      m.resources,
		Deployments:                    m.deployments,
		MonitorWorkspaces:              m.workspaces,
		DataCollectionRules:            m.rules,
		DataCollectionEndpoints:        m.endpoints,
		DataCollectionRuleAssociations: m.associations,
		PrometheusRuleGroups:           m.ruleGroupsAPI,
		Raw:                            m.raw,
	}, nil, cloudName)
	p.RetryDelay = time.Millisecond
	p.PollInterval = time.Millisecond
	return p, m
}

// donePoller returns a poller whose operation already finished with body.
func donePoller[T any](t *testing.T, body string) *runtime.Poller[T] {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, "https://management.azure.com/resource", nil)
	require.NoError(t, err)
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
	poller, err := runtime.NewPoller[T](resp, runtime.NewPipeline("test", "v0.0.0", runtime.PipelineOptions{}, nil), nil)
	require.NoError(t, err)
	return poller
}

func TestWorkspaceRegion(t *testing.T) {
	testCases := []struct {
		name       string
		cloud      string
		location   string
		wantRegion string
		wantCode   string
		wantOK     bool
	}{
		{name: "public", cloud: client.CloudAzure, location: "westus", wantRegion: "westus", wantCode: "WUS", wantOK: true},
		{name: "public remapped", cloud: client.CloudAzure, location: "westcentralus", wantRegion: "eastus", wantCode: "EUS", wantOK: true},
		{name: "public secondary region", cloud: client.CloudAzure, location: "japanwest", wantRegion: "japaneast", wantCode: "EJP", wantOK: true},
		{name: "public unknown region", cloud: client.CloudAzure, location: "marsnorth", wantRegion: "eastus", wantCode: "EUS", wantOK: true},
		{name: "cloud name case", cloud: "AZURECLOUD", location: "WestUS2", wantRegion: "westus2", wantCode: "WUS2", wantOK: true},
		{name: "china", cloud: client.CloudAzureChina, location: "chinanorth", wantRegion: "chinaeast2", wantCode: "EAST2", wantOK: true},
		{name: "government texas", cloud: client.CloudAzureUSGovernment, location: "usgovtexas", wantRegion: "usgovvirginia", wantCode: "USGV", wantOK: true},
		{name: "government arizona", cloud: client.CloudAzureUSGovernment, location: "usgovarizona", wantRegion: "usgovarizona", wantCode: "PHX", wantOK: true},
		{name: "usnat", cloud: "USNat", location: "usnatwest", wantRegion: "usnatwest", wantCode: "EXW", wantOK: true},
		{name: "ussec default", cloud: "USSec", location: "elsewhere", wantRegion: "usseceast", wantCode: "RLTR", wantOK: true},
		{name: "unknown cloud", cloud: "AzureGermanCloud", location: "germanycentral"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			region, code, ok := WorkspaceRegion(tc.cloud, tc.location)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantRegion, region)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestEnsureDefaultWorkspace(t *testing.T) {
	defaultID := DefaultWorkspaceID(subID, "WUS")
	require.Equal(t, "/subscriptions/"+subID+"/resourceGroups/DefaultResourceGroup-WUS/providers/Microsoft.OperationalInsights/workspaces/DefaultWorkspace-"+subID+"-WUS", defaultID)

	t.Run("existing workspace is reused", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		m.groups.EXPECT().CheckExistence(gomock.Any(), "DefaultResourceGroup-WUS", nil).
			Return(armresources.ResourceGroupsClientCheckExistenceResponse{Success: true}, nil)
		m.resources.EXPECT().GetByID(gomock.Any(), defaultID, "2015-11-01-preview", nil).
			Return(armresources.ClientGetByIDResponse{GenericResource: armresources.GenericResource{ID: to.Ptr(defaultID)}}, nil)

		id, err := p.EnsureDefaultWorkspace(context.Background(), subID, "westus")
		require.NoError(t, err)
		assert.Equal(t, defaultID, id)
	})

	t.Run("missing group and workspace are created", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		m.groups.EXPECT().CheckExistence(gomock.Any(), "DefaultResourceGroup-WUS", nil).
			Return(armresources.ResourceGroupsClientCheckExistenceResponse{Success: false}, nil)
		m.groups.EXPECT().CreateOrUpdate(gomock.Any(), "DefaultResourceGroup-WUS", gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _ string, rg armresources.ResourceGroup, _ *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error) {
				assert.Equal(t, "westus", *rg.Location)
				return armresources.ResourceGroupsClientCreateOrUpdateResponse{}, nil
			})
		m.resources.EXPECT().BeginCreateOrUpdateByID(gomock.Any(), defaultID, "2015-11-01-preview", gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _, _ string, res armresources.GenericResource, _ *armresources.ClientBeginCreateOrUpdateByIDOptions) (*runtime.Poller[armresources.ClientCreateOrUpdateByIDResponse], error) {
				assert.Equal(t, "westus", *res.Location)
				assert.Equal(t, map[string]any{"sku": map[string]any{"name": "standalone"}}, res.Properties)
				return donePoller[armresources.ClientCreateOrUpdateByIDResponse](t, `{"id":"`+defaultID+`","properties":{"provisioningState":"Succeeded"}}`), nil
			})

		id, err := p.EnsureDefaultWorkspace(context.Background(), subID, "westus")
		require.NoError(t, err)
		assert.Equal(t, defaultID, id)
	})

	t.Run("workspace lookup failure other than not found", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		m.groups.EXPECT().CheckExistence(gomock.Any(), gomock.Any(), nil).
			Return(armresources.ResourceGroupsClientCheckExistenceResponse{Success: true}, nil)
		m.resources.EXPECT().GetByID(gomock.Any(), defaultID, gomock.Any(), nil).
			Return(armresources.ClientGetByIDResponse{}, &azcore.ResponseError{StatusCode: http.StatusForbidden})

		_, err := p.EnsureDefaultWorkspace(context.Background(), subID, "westus")
		require.Error(t, err)
	})

	t.Run("unsupported cloud does nothing", func(t *testing.T) {
		p, _ := newTestProvisioner(t, "AzureGermanCloud")
		id, err := p.EnsureDefaultWorkspace(context.Background(), subID, "westus")
		require.NoError(t, err)
		assert.Empty(t, id)
	})
}

func TestParseWorkspaceID(t *testing.T) {
	ws, err := ParseWorkspaceID("  subscriptions/s1/resourceGroups/rg1/providers/Microsoft.OperationalInsights/workspaces/ws/ ")
	require.NoError(t, err)
	assert.Equal(t, WorkspaceRef{
		ID:             "/subscriptions/s1/resourceGroups/rg1/providers/Microsoft.OperationalInsights/workspaces/ws",
		SubscriptionID: "s1",
		ResourceGroup:  "rg1",
		Name:           "ws",
	}, ws)

	_, err = ParseWorkspaceID("/subscriptions/s1/resourceGroups/rg1")
	require.Error(t, err)
	assert.Equal(t, "Could not locate resource group in workspace-resource-id URL.", err.Error())
}

func TestParseDataCollectionSettings(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectError string
	}{
		{name: "full", input: `{"interval":"5m","namespaceFilteringMode":"Include","namespaces":["kube-system"],"enableContainerLogV2":true,"streams":["Microsoft-ContainerLogV2"]}`},
		{name: "empty object", input: `{}`},
		{name: "interval format", input: `{"interval":"5"}`, expectError: "interval format must be in <number>m"},
		{name: "interval too small", input: `{"interval":"0m"}`, expectError: "interval value MUST be in the range from 1m to 30m"},
		{name: "interval too large", input: `{"interval":"31m"}`, expectError: "interval value MUST be in the range from 1m to 30m"},
		{name: "interval upper bound", input: `{"interval":"30m"}`},
		{name: "filtering mode", input: `{"namespaceFilteringMode":"some"}`, expectError: "namespaceFilteringMode value MUST be either Off or Exclude or Include"},
		{name: "namespaces not array", input: `{"namespaces":"kube-system"}`, expectError: "namespaces must be an array type"},
		{name: "log v2 not bool", input: `{"enableContainerLogV2":"yes"}`, expectError: "enableContainerLogV2 value MUST be either true or false"},
		{name: "streams not array", input: `{"streams":"Microsoft-Perf"}`, expectError: "streams must be an array type"},
		{name: "not json", input: `interval=5m`, expectError: "not a valid JSON object"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDataCollectionSettings([]byte(tc.input))
			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
				assert.Equal(t, clierrors.KindInvalidArgumentValue, clierrors.KindOf(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDataCollectionRuleBody(t *testing.T) {
	settings, err := ParseDataCollectionSettings([]byte(`{"interval":"1m","streams":["Microsoft-Perf","Microsoft-ContainerLogV2"]}`))
	require.NoError(t, err)

	spec := dcrSpec{
		location:            "westus",
		workspaceID:         workspaceID,
		settings:            settings,
		enableSyslog:        true,
		enableHighLogScale:  true,
		ingestionEndpointID: "/dce/ingest",
	}
	raw, err := json.Marshal(spec.body())
	require.NoError(t, err)

	var body struct {
		Kind       string `json:"kind"`
		Properties struct {
			DataSources struct {
				Extensions []struct {
					Streams           []string       `json:"streams"`
					ExtensionSettings map[string]any `json:"extensionSettings"`
				} `json:"extensions"`
				Syslog []struct {
					Streams       []string `json:"streams"`
					FacilityNames []string `json:"facilityNames"`
					LogLevels     []string `json:"logLevels"`
				} `json:"syslog"`
			} `json:"dataSources"`
			DataFlows []struct {
				Streams []string `json:"streams"`
			} `json:"dataFlows"`
			DataCollectionEndpointID string `json:"dataCollectionEndpointId"`
		} `json:"properties"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "Linux", body.Kind)
	assert.Equal(t, []string{"Microsoft-Perf", "Microsoft-ContainerLogV2-HighScale"}, body.Properties.DataSources.Extensions[0].Streams)
	assert.Contains(t, body.Properties.DataSources.Extensions[0].ExtensionSettings, "dataCollectionSettings")
	require.Len(t, body.Properties.DataSources.Syslog, 1)
	assert.Len(t, body.Properties.DataSources.Syslog[0].FacilityNames, 20)
	assert.Len(t, body.Properties.DataSources.Syslog[0].LogLevels, 8)
	require.Len(t, body.Properties.DataFlows, 2)
	assert.Equal(t, []string{"Microsoft-Syslog"}, body.Properties.DataFlows[1].Streams)
	assert.Equal(t, "/dce/ingest", body.Properties.DataCollectionEndpointID)

	plain, err := json.Marshal(dcrSpec{location: "westus", workspaceID: workspaceID}.body())
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"streams":["Microsoft-ContainerInsights-Group-Default"]`)
	assert.NotContains(t, string(plain), "syslog")
	assert.NotContains(t, string(plain), "dataCollectionEndpointId")
}

func TestDataCollectionRuleName(t *testing.T) {
	name := DataCollectionRuleName("australiacentral2", strings.Repeat("cluster-", 10))
	assert.LessOrEqual(t, len(name), 64)
	assert.Regexp(t, `[A-Za-z0-9]$`, name)
	assert.Equal(t, "MSCI-westus-c1", DataCollectionRuleName("westus", "c1"))
	assert.Equal(t, "MSCI-config-eastus-myc", ConfigEndpointName("eastus", "my_c"))
}

func monitoringAddon(config map[string]string) *armcontainerservice.ManagedClusterAddonProfile {
	return models.NewAddonProfile(models.DefaultAPIVersion, true, config)
}

func expectWorkspaceLocation(m *testMocks, location string) {
	m.resources.EXPECT().GetByID(gomock.Any(), workspaceID, "2015-11-01-preview", nil).
		Return(armresources.ClientGetByIDResponse{GenericResource: armresources.GenericResource{Location: to.Ptr(location)}}, nil)
}

func regionCheckResponses(f *fakeRaw) {
	f.responses["GET /subscriptions/"+subID+"/locations?api-version=2019-11-01"] =
		`{"value":[{"name":"westus","displayName":"West US"},{"name":"eastus","displayName":"East US"}]}`
	f.responses["GET /subscriptions/"+subID+"/providers/Microsoft.Insights?api-version=2020-10-01"] =
		`{"resourceTypes":[{"resourceType":"dataCollectionRules","locations":["West US"]},{"resourceType":"dataCollectionRuleAssociations","locations":["West US","East US"]}]}`
}

func TestEnsureContainerInsights(t *testing.T) {
	dcrURL := "/subscriptions/" + subID + "/resourceGroups/rg/providers/Microsoft.Insights/dataCollectionRules/MSCI-westus-c1?api-version=2022-06-01"
	dcraURL := clusterID + "/providers/Microsoft.Insights/dataCollectionRuleAssociations/ContainerInsightsExtension?api-version=2022-06-01"
	base := Request{
		ClusterSubscriptionID: subID,
		ClusterResourceGroup:  "rg",
		ClusterName:           "c1",
		ClusterRegion:         "eastus",
		AADRoute:              true,
	}

	t.Run("rule before the cluster exists", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		expectWorkspaceLocation(m, "West US")
		regionCheckResponses(m.raw)
		m.raw.errs["PUT "+dcrURL] = []error{&azcore.ResponseError{StatusCode: http.StatusInternalServerError}}

		req := base
		req.Addon = monitoringAddon(map[string]string{"loganalyticsworkspaceresourceid": workspaceID})
		req.CreateDCR = true

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateReady, state)
		assert.Equal(t, []string{
			"GET /subscriptions/" + subID + "/locations?api-version=2019-11-01",
			"GET /subscriptions/" + subID + "/providers/Microsoft.Insights?api-version=2020-10-01",
			"PUT " + dcrURL,
			"PUT " + dcrURL,
		}, m.raw.requests())
		assert.Equal(t, workspaceID, *req.Addon.Config[models.MonitoringWorkspaceResourceID])
		assert.NotContains(t, req.Addon.Config, "loganalyticsworkspaceresourceid")
	})

	t.Run("association after the cluster exists", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		expectWorkspaceLocation(m, "westus")

		req := base
		req.Addon = monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID})
		req.CreateDCRA = true

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateReady, state)
		assert.Equal(t, []string{"PUT " + dcraURL}, m.raw.requests())
		body := m.raw.bodyOf(t, http.MethodPut, dcraURL)
		assert.Equal(t, "eastus", body["location"])
		assert.Equal(t, strings.TrimSuffix(dcrURL, "?api-version=2022-06-01"), body["properties"].(map[string]any)["dataCollectionRuleId"])
	})

	t.Run("private link scope with high log scale", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		expectWorkspaceLocation(m, "westus")
		regionCheckResponses(m.raw)
		ampls := "/subscriptions/" + subID + "/resourceGroups/net/providers/microsoft.insights/privatelinkscopes/scope"

		req := base
		req.Addon = monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID})
		req.CreateDCR = true
		req.CreateDCRA = true
		req.EnableHighLogScaleMode = true
		req.AMPLSResourceID = ampls

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateReady, state)

		dceBase := "/subscriptions/" + subID + "/resourceGroups/rg/providers/Microsoft.Insights/dataCollectionEndpoints/"
		assert.Equal(t, []string{
			"GET /subscriptions/" + subID + "/locations?api-version=2019-11-01",
			"GET /subscriptions/" + subID + "/providers/Microsoft.Insights?api-version=2020-10-01",
			"PUT " + dceBase + "MSCI-ingest-westus-c1?api-version=2022-06-01",
			"PUT " + dcrURL,
			"PUT " + dceBase + "MSCI-config-eastus-c1?api-version=2022-06-01",
			"PUT " + dcraURL,
			"PUT " + clusterID + "/providers/Microsoft.Insights/dataCollectionRuleAssociations/configurationAccessEndpoint?api-version=2022-06-01",
			"PUT " + ampls + "/scopedresources/MSCI-config-eastus-c1-connection?api-version=2021-07-01-preview",
			"PUT " + ampls + "/scopedresources/ws1-connection?api-version=2021-07-01-preview",
			"PUT " + ampls + "/scopedresources/MSCI-ingest-westus-c1-connection?api-version=2021-07-01-preview",
		}, m.raw.requests())

		dce := m.raw.bodyOf(t, http.MethodPut, dceBase+"MSCI-config-eastus-c1?api-version=2022-06-01")
		assert.Equal(t, "Disabled", dce["properties"].(map[string]any)["networkAcls"].(map[string]any)["publicNetworkAccess"])
	})

	t.Run("unsupported workspace region", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		expectWorkspaceLocation(m, "eastus")
		regionCheckResponses(m.raw)

		req := base
		req.Addon = monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID})
		req.CreateDCR = true

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, StateWorkspaceEnsured, state)
		assert.Equal(t, "Data Collection Rules are not supported for LA workspace region eastus", err.Error())
	})

	t.Run("remove monitoring deletes the association", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		m.raw.errs["DELETE "+dcraURL] = []error{notFound}

		req := base
		req.Addon = monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID})
		req.CreateDCRA = true
		req.RemoveMonitoring = true

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateAbsent, state)
		assert.Equal(t, []string{"DELETE " + dcraURL}, m.raw.requests())
	})

	t.Run("legacy solution deployment", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		p.now = func() time.Time { return time.UnixMilli(1700000000000) }
		expectWorkspaceLocation(m, "westus")
		m.deployments.EXPECT().BeginCreateOrUpdate(gomock.Any(), "logs", "aks-monitoring-1700000000000", gomock.Any(), nil).
			DoAndReturn(func(_ context.Context, _, _ string, d armresources.Deployment, _ *armresources.DeploymentsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armresources.DeploymentsClientCreateOrUpdateResponse], error) {
				assert.Equal(t, armresources.DeploymentModeIncremental, *d.Properties.Mode)
				params := d.Properties.Parameters.(map[string]any)
				assert.Equal(t, map[string]any{"value": "ContainerInsights-1700000000000"}, params["solutionDeploymentName"])
				assert.Equal(t, map[string]any{"value": "westus"}, params["workspaceRegion"])
				return donePoller[armresources.DeploymentsClientCreateOrUpdateResponse](t, `{"properties":{"provisioningState":"Succeeded"}}`), nil
			})

		req := base
		req.AADRoute = false
		req.Addon = monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID})

		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateReady, state)
		assert.Empty(t, m.raw.calls)
	})

	t.Run("disabled addon", func(t *testing.T) {
		p, m := newTestProvisioner(t, client.CloudAzure)
		req := base
		req.Addon = models.NewAddonProfile(models.DefaultAPIVersion, false, nil)
		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateAbsent, state)
		assert.Empty(t, m.raw.calls)
	})

	t.Run("unsupported cloud", func(t *testing.T) {
		p, m := newTestProvisioner(t, "AzureGermanCloud")
		req := base
		req.Addon = monitoringAddon(nil)
		req.CreateDCR = true
		state, err := p.EnsureContainerInsights(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, StateAbsent, state)
		assert.Empty(t, m.raw.calls)
	})
}

func TestNewDefaults(t *testing.T) {
	p := New(&client.Clients{SubscriptionID: subID}, nil, client.CloudAzure)
	assert.Equal(t, 3*time.Second, p.RetryDelay)
	assert.Equal(t, client.StandardPollInterval, p.PollInterval)
}

func TestRemoveMonitoringDeletesSynchronously(t *testing.T) {
	ctrl := gomock.NewController(t)
	raw := client.NewMockRawClient(ctrl)
	p, _ := newTestProvisioner(t, client.CloudAzure)
	p.Clients.Raw = raw

	dcraURL := clusterID + "/providers/Microsoft.Insights/dataCollectionRuleAssociations/ContainerInsightsExtension?api-version=2022-06-01"
	accepted := &azcore.ResponseError{StatusCode: http.StatusAccepted}
	raw.EXPECT().Send(gomock.Any(), http.MethodDelete, dcraURL, nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, _ any, opts *client.RawRequestOptions) ([]byte, error) {
			require.NotNil(t, opts)
			assert.Equal(t, []int{http.StatusOK, http.StatusNoContent}, opts.ExpectedStatusCodes)
			return nil, accepted
		}).Times(retryAttempts)

	state, err := p.EnsureContainerInsights(context.Background(), Request{
		ClusterSubscriptionID: subID,
		ClusterResourceGroup:  "rg",
		ClusterName:           "c1",
		ClusterRegion:         "eastus",
		AADRoute:              true,
		CreateDCRA:            true,
		RemoveMonitoring:      true,
		Addon:                 monitoringAddon(map[string]string{models.MonitoringWorkspaceResourceID: workspaceID}),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, accepted)
	assert.Equal(t, StateDCRABound, state)
}

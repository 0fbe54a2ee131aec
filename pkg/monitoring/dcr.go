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
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

const (
	streamGroupDefault     = "Microsoft-ContainerInsights-Group-Default"
	streamContainerLogV2   = "Microsoft-ContainerLogV2"
	streamContainerLogV2HS = "Microsoft-ContainerLogV2-HighScale"
	streamSyslog           = "Microsoft-Syslog"

	workspaceDestination = "ciworkspace"
)

var syslogFacilities = []string{
	"auth", "authpriv", "cron", "daemon", "mark", "kern",
	"local0", "local1", "local2", "local3", "local4", "local5", "local6", "local7",
	"lpr", "mail", "news", "syslog", "user", "uucp",
}

var syslogLevels = []string{"Debug", "Info", "Notice", "Warning", "Error", "Critical", "Alert", "Emergency"}

var intervalPattern = regexp.MustCompile(`^[0-9]+m$`)

// DataCollectionSettings is the validated content of --data-collection-settings.
type DataCollectionSettings struct {
	Interval               string   `json:"interval,omitempty"`
	NamespaceFilteringMode string   `json:"namespaceFilteringMode,omitempty"`
	Namespaces             []any    `json:"namespaces,omitempty"`
	EnableContainerLogV2   *bool    `json:"enableContainerLogV2,omitempty"`
	Streams                []string `json:"-"`
}

// ParseDataCollectionSettings validates a data collection settings document.
func ParseDataCollectionSettings(data []byte) (*DataCollectionSettings, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, clierrors.InvalidArgumentValue("data collection settings is not a valid JSON object: %v", err)
	}
	settings := &DataCollectionSettings{}

	if v, ok := raw["interval"]; ok {
		interval, _ := v.(string)
		if !intervalPattern.MatchString(interval) {
			return nil, clierrors.InvalidArgumentValue("interval format must be in <number>m")
		}
		minutes, err := strconv.Atoi(strings.TrimSuffix(interval, "m"))
		if err != nil || minutes < 1 || minutes > 30 {
			return nil, clierrors.InvalidArgumentValue("interval value MUST be in the range from 1m to 30m")
		}
		settings.Interval = interval
	}
	if v, ok := raw["namespaceFilteringMode"]; ok {
		mode, _ := v.(string)
		switch strings.ToLower(mode) {
		case "off", "exclude", "include":
			settings.NamespaceFilteringMode = mode
		default:
			return nil, clierrors.InvalidArgumentValue("namespaceFilteringMode value MUST be either Off or Exclude or Include")
		}
	}
	if v, ok := raw["namespaces"]; ok {
		namespaces, isArray := v.([]any)
		if !isArray {
			return nil, clierrors.InvalidArgumentValue("namespaces must be an array type")
		}
		settings.Namespaces = namespaces
	}
	if v, ok := raw["enableContainerLogV2"]; ok {
		enabled, isBool := v.(bool)
		if !isBool {
			return nil, clierrors.InvalidArgumentValue("enableContainerLogV2 value MUST be either true or false")
		}
		settings.EnableContainerLogV2 = &enabled
	}
	if v, ok := raw["streams"]; ok {
		streams, isArray := v.([]any)
		if !isArray {
			return nil, clierrors.InvalidArgumentValue("streams must be an array type")
		}
		for _, s := range streams {
			str, isString := s.(string)
			if !isString {
				return nil, clierrors.InvalidArgumentValue("streams must be an array type")
			}
			settings.Streams = append(settings.Streams, str)
		}
	}
	return settings, nil
}

func (p *Provisioner) loadDataCollectionSettings(path string) (*DataCollectionSettings, error) {
	if path == "" {
		return nil, nil
	}
	data, err := p.read(path)
	if err != nil {
		return nil, clierrors.InvalidArgumentValue("data collection settings file %s could not be read: %v", path, err)
	}
	return ParseDataCollectionSettings(data)
}

type dcrSpec struct {
	location            string
	workspaceID         string
	settings            *DataCollectionSettings
	enableSyslog        bool
	enableHighLogScale  bool
	ingestionEndpointID string
}

func (s dcrSpec) streams() []string {
	streams := []string{streamGroupDefault}
	if s.settings != nil && len(s.settings.Streams) > 0 {
		streams = slices.Clone(s.settings.Streams)
	}
	if s.enableHighLogScale {
		if i := slices.Index(streams, streamContainerLogV2); i >= 0 {
			streams[i] = streamContainerLogV2HS
		} else if !slices.Contains(streams, streamContainerLogV2HS) {
			streams = append(streams, streamContainerLogV2HS)
		}
	}
	return streams
}

// body renders the container insights rule.
func (s dcrSpec) body() map[string]any {
	streams := s.streams()

	extension := map[string]any{
		"name":          "ContainerInsightsExtension",
		"streams":       streams,
		"extensionName": "ContainerInsights",
	}
	if s.settings != nil {
		extension["extensionSettings"] = map[string]any{"dataCollectionSettings": s.settings}
	}
	dataSources := map[string]any{
		"extensions": []any{extension},
	}
	dataFlows := []any{
		map[string]any{"streams": streams, "destinations": []string{workspaceDestination}},
	}
	if s.enableSyslog {
		dataSources["syslog"] = []any{map[string]any{
			"streams":       []string{streamSyslog},
			"facilityNames": syslogFacilities,
			"logLevels":     syslogLevels,
			"name":          "sysLogsDataSource",
		}}
		dataFlows = append(dataFlows, map[string]any{"streams": []string{streamSyslog}, "destinations": []string{workspaceDestination}})
	}

	props := map[string]any{
		"dataSources": dataSources,
		"dataFlows":   dataFlows,
		"destinations": map[string]any{
			"logAnalytics": []any{map[string]any{"workspaceResourceId": s.workspaceID, "name": workspaceDestination}},
		},
	}
	if s.enableHighLogScale && s.ingestionEndpointID != "" {
		props["dataCollectionEndpointId"] = s.ingestionEndpointID
	}
	return map[string]any{
		"location":   s.location,
		"kind":       "Linux",
		"properties": props,
	}
}

// checkRegionSupport confirms the workspace region supports data collection
// rules and the cluster region supports their associations.
func (p *Provisioner) checkRegionSupport(ctx context.Context, subscriptionID, workspaceRegion, clusterRegion string) error {
	body, err := p.send(ctx, http.MethodGet,
		withAPIVersion(fmt.Sprintf("/subscriptions/%s/locations", subscriptionID), locationsAPIVersion), nil)
	if err != nil {
		return fmt.Errorf("failed to list locations: %w", err)
	}
	var locations struct {
		Value []struct {
			Name        string `json:"name"`
			DisplayName string `json:"displayName"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &locations); err != nil {
		return fmt.Errorf("failed to decode locations: %w", err)
	}
	nameByDisplayName := make(map[string]string, len(locations.Value))
	for _, l := range locations.Value {
		nameByDisplayName[l.DisplayName] = l.Name
	}

	body, err = p.send(ctx, http.MethodGet,
		withAPIVersion(fmt.Sprintf("/subscriptions/%s/providers/Microsoft.Insights", subscriptionID), insightsProviderVersion), nil)
	if err != nil {
		return fmt.Errorf("failed to get the Microsoft.Insights provider: %w", err)
	}
	var provider struct {
		ResourceTypes []struct {
			ResourceType string   `json:"resourceType"`
			Locations    []string `json:"locations"`
		} `json:"resourceTypes"`
	}
	if err := json.Unmarshal(body, &provider); err != nil {
		return fmt.Errorf("failed to decode the Microsoft.Insights provider: %w", err)
	}

	supports := func(displayNames []string, region string) bool {
		for _, d := range displayNames {
			name, ok := nameByDisplayName[d]
			if !ok {
				name = strings.ToLower(strings.ReplaceAll(d, " ", ""))
			}
			if strings.EqualFold(name, region) {
				return true
			}
		}
		return false
	}
	for _, rt := range provider.ResourceTypes {
		switch strings.ToLower(rt.ResourceType) {
		case "datacollectionrules":
			if !supports(rt.Locations, workspaceRegion) {
				return clierrors.ClientRequest("Data Collection Rules are not supported for LA workspace region %s", workspaceRegion)
			}
		case "datacollectionruleassociations":
			if !supports(rt.Locations, clusterRegion) {
				return clierrors.ClientRequest("Data Collection Rule Associations are not supported for cluster region %s", clusterRegion)
			}
		}
	}
	return nil
}

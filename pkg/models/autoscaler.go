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

package models

import (
	"encoding/json"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"
)

// The autoscaler profile travels as an object with kebab-case keys, the same
// keys accepted by --cluster-autoscaler-profile, so conversion goes through
// the SDK's own JSON form.

// NewAutoScalerProfile renders a key/value profile.
func NewAutoScalerProfile(_ APIVersion, profile map[string]string) (*armcontainerservice.ManagedClusterPropertiesAutoScalerProfile, error) {
	if profile == nil {
		return nil, nil
	}
	b, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal autoscaler profile: %w", err)
	}
	out := &armcontainerservice.ManagedClusterPropertiesAutoScalerProfile{}
	if err := json.Unmarshal(b, out); err != nil {
		return nil, fmt.Errorf("failed to build autoscaler profile: %w", err)
	}
	return out, nil
}

// AutoScalerProfileToMap is the inverse of NewAutoScalerProfile. Unset fields are omitted.
func AutoScalerProfileToMap(p *armcontainerservice.ManagedClusterPropertiesAutoScalerProfile) (map[string]string, error) {
	out := map[string]string{}
	if p == nil {
		return out, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal autoscaler profile: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to read autoscaler profile: %w", err)
	}
	return out, nil
}

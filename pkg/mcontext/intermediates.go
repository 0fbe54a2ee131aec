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

package mcontext

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// Key names a value handed from one decorator step to a later one.
type Key string

const (
	KeySubscriptionID                         Key = "subscription_id"
	KeyLocation                               Key = "location"
	KeyAADSessionKey                          Key = "aad_session_key"
	KeySnapshot                               Key = "snapshot"
	KeySSHKey                                 Key = "ssh_key_value"
	KeyServicePrincipal                       Key = "service_principal"
	KeyMonitoringAddonEnabled                 Key = "monitoring_addon_enabled"
	KeyIngressAppGWAddonEnabled               Key = "ingress_appgw_addon_enabled"
	KeyVirtualNodeAddonEnabled                Key = "virtual_node_addon_enabled"
	KeyNeedPostCreationVnetPermissionGranting Key = "need_post_creation_vnet_permission_granting"
)

// Intermediates is the side channel between decorator steps.
type Intermediates struct {
	values map[Key]any
}

func NewIntermediates() *Intermediates {
	return &Intermediates{values: map[Key]any{}}
}

// Get returns the stored value of key.
func (i *Intermediates) Get(key Key) (any, bool) {
	v, ok := i.values[key]
	return v, ok
}

// Set stores value under key. An existing value is only replaced when
// overwrite is set; otherwise the original is kept and a warning is logged.
func (i *Intermediates) Set(ctx context.Context, key Key, value any, overwrite bool) {
	if old, ok := i.values[key]; ok && !overwrite {
		logr.FromContextOrDiscard(ctx).Info(fmt.Sprintf(
			"The intermediate '%s' already exists, but overwrite is not enabled. Original value: '%v', candidate value: '%v'.",
			key, old, value))
		return
	}
	i.values[key] = value
}

func (i *Intermediates) Remove(key Key) {
	delete(i.values, key)
}

// Lookup returns the value of key when it is present and of type T.
func Lookup[T any](i *Intermediates, key Key) (T, bool) {
	v, ok := i.values[key]
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}

// Flag reads a boolean intermediate, defaulting to false.
func (i *Intermediates) Flag(key Key) bool {
	v, _ := Lookup[bool](i, key)
	return v
}

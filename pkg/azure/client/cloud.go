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

package client

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// Names accepted by --cloud.
const (
	CloudAzure             = "AzureCloud"
	CloudAzureChina        = "AzureChinaCloud"
	CloudAzureUSGovernment = "AzureUSGovernment"
)

// SupportedClouds lists the --cloud values in help order.
var SupportedClouds = []string{CloudAzure, CloudAzureChina, CloudAzureUSGovernment}

// CloudConfiguration maps a --cloud value to its azcore configuration. Matching is case insensitive.
func CloudConfiguration(name string) (cloud.Configuration, error) {
	switch strings.ToLower(name) {
	case "", strings.ToLower(CloudAzure):
		return cloud.AzurePublic, nil
	case strings.ToLower(CloudAzureChina):
		return cloud.AzureChina, nil
	case strings.ToLower(CloudAzureUSGovernment):
		return cloud.AzureGovernment, nil
	}
	return cloud.Configuration{}, fmt.Errorf("unsupported cloud %q, expected one of %s", name, strings.Join(SupportedClouds, ", "))
}

// NewClientOptions returns the ARM options shared by every client of one command invocation.
func NewClientOptions(cloudName string, customHeaders map[string]string) (*arm.ClientOptions, error) {
	cfg, err := CloudConfiguration(cloudName)
	if err != nil {
		return nil, err
	}
	opts := &arm.ClientOptions{
		ClientOptions: policy.ClientOptions{
			Cloud: cfg,
			Telemetry: policy.TelemetryOptions{
				ApplicationID: "aksctl",
			},
		},
	}
	if p := NewCustomHeadersPolicy(customHeaders); p != nil {
		opts.PerCallPolicies = append(opts.PerCallPolicies, p)
	}
	return opts, nil
}

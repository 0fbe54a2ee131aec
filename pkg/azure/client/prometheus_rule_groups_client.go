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
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/alertsmanagement/armalertsmanagement"
)

//go:generate $MOCKGEN -typed -source=prometheus_rule_groups_client.go -destination=mock_prometheus_rule_groups_client.go -package client PrometheusRuleGroupsClient
type PrometheusRuleGroupsClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, ruleGroupName string,
		parameters armalertsmanagement.PrometheusRuleGroupResource,
		options *armalertsmanagement.PrometheusRuleGroupsClientCreateOrUpdateOptions) (
		armalertsmanagement.PrometheusRuleGroupsClientCreateOrUpdateResponse, error)
	Delete(ctx context.Context, resourceGroupName string, ruleGroupName string,
		options *armalertsmanagement.PrometheusRuleGroupsClientDeleteOptions) (
		armalertsmanagement.PrometheusRuleGroupsClientDeleteResponse, error)
}

// interface guard to ensure that all methods defined in the PrometheusRuleGroupsClient
// interface are implemented by the real armalertsmanagement client.
var _ PrometheusRuleGroupsClient = (*armalertsmanagement.PrometheusRuleGroupsClient)(nil)

func NewPrometheusRuleGroupsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (PrometheusRuleGroupsClient, error) {
	return armalertsmanagement.NewPrometheusRuleGroupsClient(subscriptionID, credential, options)
}

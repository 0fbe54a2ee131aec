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

package helpers

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		kind     NameKind
		expected string
	}{
		{
			name:     "short dcr name untouched",
			input:    "MSCI-westus-c1",
			kind:     NameKindDCR,
			expected: "MSCI-westus-c1",
		},
		{
			name:     "trailing separators stripped",
			input:    "MSCI-westus-my_cluster--",
			kind:     NameKindDCR,
			expected: "MSCI-westus-my_cluster",
		},
		{
			name:     "dce drops underscores",
			input:    "MSCI-config-eastus-my_cluster",
			kind:     NameKindDCE,
			expected: "MSCI-config-eastus-mycluster",
		},
		{
			name:     "dce truncated then trimmed",
			input:    "MSCI-ingest-australiacentral2-" + strings.Repeat("a", 12) + "-x",
			kind:     NameKindDCE,
			expected: "MSCI-ingest-australiacentral2-" + strings.Repeat("a", 12),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeName(tc.input, tc.kind))
		})
	}
}

func TestSanitizeDCRNameProperties(t *testing.T) {
	terminal := regexp.MustCompile(`[A-Za-z0-9]$`)
	regions := []string{"eastus", "australiacentral2", "westeurope"}
	clusters := []string{"c", strings.Repeat("long-cluster-name-", 6), "ends-with-dash-", "under_score__"}
	for _, r := range regions {
		for _, c := range clusters {
			got := SanitizeName("MSCI-"+r+"-"+c, NameKindDCR)
			assert.LessOrEqual(t, len(got), MaxDCRNameLength)
			assert.Regexp(t, terminal, got)
		}
	}
}

func TestSanitizeWorkspaceResourceID(t *testing.T) {
	assert.Equal(t, "/subscriptions/s/rg", SanitizeWorkspaceResourceID(" subscriptions/s/rg// "))
	assert.Equal(t, "/subscriptions/s", SanitizeWorkspaceResourceID("/subscriptions/s"))
}

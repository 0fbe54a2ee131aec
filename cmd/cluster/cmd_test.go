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

package cluster

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

func TestNewCommand(t *testing.T) {
	cmd, err := NewCommand("main")
	require.NoError(t, err)
	assert.Equal(t, "main", cmd.GroupID)

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{
		"create", "update", "show", "list", "delete", "upgrade", "scale",
		"get-credentials", "check-acr", "browse", "runcommand", "command-result",
	}, names)
}

func TestUpdateFlagsAreBound(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	require.NoError(t, BindUpdateOptions(DefaultClusterOptions(), cmd))
	for _, flag := range models.UpdateFlags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "update flag %q is not bound", flag)
	}
}

func TestCreateOptionsComplete(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		check    func(t *testing.T, raw *models.RawParameters)
		wantErr  string
		supplied []string
	}{
		{
			name: "defaults stay unset",
			args: []string{"-g", "rg", "-n", "c1"},
			check: func(t *testing.T, raw *models.RawParameters) {
				assert.Equal(t, "rg", raw.ResourceGroupName)
				assert.Equal(t, "c1", raw.Name)
				assert.Nil(t, raw.Tags)
				assert.False(t, raw.MinCount.IsSet())
				assert.Equal(t, int32(0), raw.NodeCount)
			},
			supplied: []string{"resource-group", "name"},
		},
		{
			name: "tags labels and optionals",
			args: []string{
				"-g", "rg", "-n", "c1",
				"--tags", "env=dev,owner",
				"--nodepool-labels", "tier=web",
				"--min-count", "0",
				"--api-server-authorized-ip-ranges", "",
				"--node-count", "5",
			},
			check: func(t *testing.T, raw *models.RawParameters) {
				assert.Equal(t, map[string]string{"env": "dev", "owner": ""}, raw.Tags)
				assert.Equal(t, map[string]string{"tier": "web"}, raw.NodepoolLabels)
				assert.Equal(t, models.Some(int32(0)), raw.MinCount)
				assert.True(t, raw.APIServerAuthorizedIPRanges.IsSet())
				assert.Equal(t, int32(5), raw.NodeCount)
			},
			supplied: []string{"tags", "nodepool-labels", "min-count", "api-server-authorized-ip-ranges", "node-count"},
		},
		{
			name:    "invalid label",
			args:    []string{"-g", "rg", "-n", "c1", "--nodepool-labels", "=bad"},
			wantErr: "Invalid label",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := DefaultClusterOptions()
			cmd := &cobra.Command{Use: "create"}
			require.NoError(t, BindCreateOptions(opts, cmd))
			require.NoError(t, cmd.ParseFlags(tc.args))

			raw, err := opts.Complete(cmd)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			tc.check(t, raw)
			for _, flag := range tc.supplied {
				assert.True(t, raw.WasSupplied(flag), flag)
			}
		})
	}
}

func TestParseResourceGroup(t *testing.T) {
	id := "/subscriptions/sub/resourceGroups/my-rg/providers/Microsoft.ContainerService/managedClusters/c1"
	rg, err := parseResourceGroup(&id)
	require.NoError(t, err)
	assert.Equal(t, "my-rg", rg)

	_, err = parseResourceGroup(nil)
	assert.Error(t, err)
}

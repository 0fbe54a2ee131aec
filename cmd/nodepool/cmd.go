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

package nodepool

import (
	"github.com/spf13/cobra"
)

func NewCommand(group string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "nodepool",
		Aliases: []string{"np"},
		Short:   "Manage node pools of a managed cluster",
		GroupID: group,
		Long: `nodepool adds, updates and operates the node pools of a managed cluster.

Every subcommand addresses the cluster with --cluster-name and the pool with --name.`,
		Example: `  aksctl nodepool add -g my-rg --cluster-name my-cluster -n userpool --node-count 2
  aksctl nodepool upgrade -g my-rg --cluster-name my-cluster -n userpool --node-image-only`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	for _, newCmd := range []func() (*cobra.Command, error){
		newAddCommand,
		newUpdateCommand,
		newShowCommand,
		newListCommand,
		newScaleCommand,
		newUpgradeCommand,
		newDeleteCommand,
		newGetUpgradeProfileCommand,
	} {
		c, err := newCmd()
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}
	return cmd, nil
}

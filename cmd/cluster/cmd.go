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
	"github.com/spf13/cobra"
)

func NewCommand(group string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "cluster",
		Aliases: []string{"aks"},
		Short:   "Manage AKS managed clusters",
		GroupID: group,
		Long: `cluster creates, updates and operates AKS managed clusters.

The subcommands cover the cluster lifecycle, credentials and diagnostics.`,
		Example: `  aksctl cluster create -g my-rg -n my-cluster --generate-ssh-keys
  aksctl cluster get-credentials -g my-rg -n my-cluster`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	for _, newCmd := range []func() (*cobra.Command, error){
		newCreateCommand,
		newUpdateCommand,
		newShowCommand,
		newListCommand,
		newDeleteCommand,
		newUpgradeCommand,
		newScaleCommand,
		newGetCredentialsCommand,
		newCheckACRCommand,
		newBrowseCommand,
		newRunCommandCommand,
		newCommandResultCommand,
	} {
		c, err := newCmd()
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}
	return cmd, nil
}

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

package kubelogin

import (
	"github.com/spf13/cobra"

	"github.com/Azure/kubelogin/pkg/cmd"
)

// NewCommand embeds kubelogin so kubeconfigs written by get-credentials --login
// work without a separate binary.
func NewCommand(group string) (*cobra.Command, error) {
	c := cmd.NewRootCmd("aksctl")
	c.Use = "kubelogin"
	c.Short = "Exec credential plugin for clusters with managed AAD"
	c.Long = `Acquire AAD tokens for a managed cluster on behalf of kubectl.

Kubeconfigs converted by 'aksctl cluster get-credentials --login <mode>' call
'aksctl kubelogin get-token' instead of a separately installed kubelogin.`
	c.GroupID = group
	return c, nil
}

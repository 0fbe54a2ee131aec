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

package version

import (
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/version"
)

func NewCommand(group string) (*cobra.Command, error) {
	var format string
	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Display version information",
		Long:    "Display the commit SHA, build date and container service API version of aksctl.",
		GroupID: group,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ValidateFormat(format)
			if err != nil {
				return clierrors.InvalidArgumentValue("invalid output format '%s': %s", format, err.Error())
			}
			return output.Print(cmd.OutOrStdout(), version.Get(string(models.DefaultAPIVersion)), f)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatYAML), "Output format: json, yaml")
	return cmd, nil
}

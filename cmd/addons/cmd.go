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

package addons

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/base"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	clusterops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/cluster"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/decorator"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
)

func NewCommand(group string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "addons",
		Short:   "Manage the addons of a managed cluster",
		GroupID: group,
		Long: `addons enables, disables and inspects the addons of a managed cluster.

Use 'aksctl addons list-available' to see every addon that can be managed.`,
		Example: `  aksctl addons enable -g my-rg -n my-cluster -a monitoring --enable-msi-auth-for-monitoring
  aksctl addons list -g my-rg -n my-cluster -o table`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	for _, newCmd := range []func() (*cobra.Command, error){
		newEnableCommand,
		newDisableCommand,
		newListCommand,
		newShowCommand,
		newListAvailableCommand,
	} {
		c, err := newCmd()
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}
	return cmd, nil
}

// RawAddonsOptions carry the flags of addons enable and disable.
type RawAddonsOptions struct {
	Azure  *base.RawAzureOptions
	Raw    models.RawParameters
	Addons string
}

func DefaultAddonsOptions() *RawAddonsOptions {
	return &RawAddonsOptions{Azure: base.DefaultAzureOptions()}
}

func BindAddonsOptions(opts *RawAddonsOptions, cmd *cobra.Command) error {
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	if err := base.ResourceFlags(cmd, &r.ResourceGroupName, &r.Name, "managed cluster"); err != nil {
		return err
	}
	cmd.Flags().StringVarP(&opts.Addons, "addons", "a", "", "Comma separated list of addons")
	cmd.Flags().BoolVar(&r.NoWait, "no-wait", false, "Do not wait for the long-running operation to finish")
	if err := cmd.MarkFlagRequired("addons"); err != nil {
		return fmt.Errorf("failed to mark flag %q as required: %w", "addons", err)
	}
	return nil
}

// Validate parses the addon list.
func (o *RawAddonsOptions) Validate() ([]models.Addon, error) {
	addons, err := models.ParseAddons(o.Addons, "--addons")
	if err != nil {
		return nil, clierrors.Wrap(clierrors.KindInvalidArgumentValue, err, err.Error())
	}
	if len(addons) == 0 {
		return nil, clierrors.RequiredArgumentMissing("Please specify at least one addon with --addons.")
	}
	return addons, nil
}

func newEnableCommand() (*cobra.Command, error) {
	opts := DefaultAddonsOptions()
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "Enable addons on a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddons(cmd.Context(), cmd, opts, true)
		},
	}
	if err := BindAddonsOptions(opts, cmd); err != nil {
		return nil, err
	}
	base.BindAddonFlags(&opts.Raw, cmd)
	cmd.Flags().StringVar(&opts.Raw.VnetSubnetID, "vnet-subnet-id", "", "Subnet of the cluster, used by the virtual node addon")
	cmd.Flags().BoolVar(&opts.Raw.EnableSecretRotation, "enable-secret-rotation", false, "Enable secret rotation of the keyvault secrets provider")
	cmd.Flags().StringVar(&opts.Raw.RotationPollInterval, "rotation-poll-interval", "", "Secret rotation poll interval")
	return cmd, nil
}

func newDisableCommand() (*cobra.Command, error) {
	opts := DefaultAddonsOptions()
	cmd := &cobra.Command{
		Use:   "disable",
		Short: "Disable addons on a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddons(cmd.Context(), cmd, opts, false)
		},
	}
	if err := BindAddonsOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func runAddons(ctx context.Context, cmd *cobra.Command, opts *RawAddonsOptions, enable bool) error {
	addons, err := opts.Validate()
	if err != nil {
		return err
	}
	completed, err := opts.Azure.ValidateAndComplete(ctx)
	if err != nil {
		return err
	}
	raw := &opts.Raw
	base.MarkSupplied(raw, cmd)
	dec, err := completed.Decorating(ctx, raw, models.ModeUpdate)
	if err != nil {
		return err
	}

	d := decorator.NewAddonsDecorator(dec.Context, dec.Roles, dec.Monitoring)
	enableOrDisable := d.Disable
	if enable {
		enableOrDisable = d.Enable
	}
	mc, err := enableOrDisable(ctx, addons)
	if err != nil {
		return err
	}
	if mc == nil {
		return nil
	}
	return output.Print(cmd.OutOrStdout(), mc, completed.OutputFormat)
}

type RawShowOptions struct {
	Azure         *base.RawAzureOptions
	ResourceGroup string
	Name          string
	Addon         string
}

var addonTable = output.Table[clusterops.AddonStatus]{
	Kind: "addons",
	Columns: []output.Column[clusterops.AddonStatus]{
		{Header: "NAME", Field: func(a clusterops.AddonStatus) string { return a.Name }},
		{Header: "ENABLED", Field: func(a clusterops.AddonStatus) string { return fmt.Sprintf("%t", a.Enabled) }},
	},
}

func newListCommand() (*cobra.Command, error) {
	opts := &RawShowOptions{Azure: base.DefaultAzureOptions()}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the addons of a managed cluster and their status",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			completed, err := opts.Azure.ValidateAndComplete(ctx)
			if err != nil {
				return err
			}
			ops := clusterops.New(completed.Clients, completed.Credential, completed.Prompter, completed.Cloud, completed.Yes)
			statuses, err := ops.ListAddons(ctx, opts.ResourceGroup, opts.Name)
			if err != nil {
				return err
			}
			return addonTable.Write(cmd.OutOrStdout(), statuses, completed.OutputFormat)
		},
	}
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return nil, err
	}
	if err := base.ResourceFlags(cmd, &opts.ResourceGroup, &opts.Name, "managed cluster"); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newShowCommand() (*cobra.Command, error) {
	opts := &RawShowOptions{Azure: base.DefaultAzureOptions()}
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the status and configuration of an addon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			completed, err := opts.Azure.ValidateAndComplete(ctx)
			if err != nil {
				return err
			}
			ops := clusterops.New(completed.Clients, completed.Credential, completed.Prompter, completed.Cloud, completed.Yes)
			status, err := ops.ShowAddon(ctx, opts.ResourceGroup, opts.Name, opts.Addon)
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), status, completed.OutputFormat)
		},
	}
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return nil, err
	}
	if err := base.ResourceFlags(cmd, &opts.ResourceGroup, &opts.Name, "managed cluster"); err != nil {
		return nil, err
	}
	cmd.Flags().StringVarP(&opts.Addon, "addon", "a", "", "Name of the addon")
	if err := cmd.MarkFlagRequired("addon"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "addon", err)
	}
	return cmd, nil
}

var availableTable = output.Table[clusterops.AvailableAddon]{
	Kind: "addons",
	Columns: []output.Column[clusterops.AvailableAddon]{
		{Header: "NAME", Field: func(a clusterops.AvailableAddon) string { return a.Name }},
		{Header: "DESCRIPTION", Field: func(a clusterops.AvailableAddon) string { return a.Description }},
		{Header: "CONFIG KEYS", Field: func(a clusterops.AvailableAddon) string { return strings.Join(a.ConfigKeys, ",") }},
	},
}

func newListAvailableCommand() (*cobra.Command, error) {
	var format string
	cmd := &cobra.Command{
		Use:   "list-available",
		Short: "List the addons that can be enabled",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := output.ValidateFormat(format)
			if err != nil {
				return clierrors.InvalidArgumentValue("invalid output format '%s': %s", format, err.Error())
			}
			return availableTable.Write(cmd.OutOrStdout(), clusterops.ListAvailableAddons(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatTable), "Output format: json, yaml, table, none")
	return cmd, nil
}

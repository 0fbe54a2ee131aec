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

package snapshot

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/base"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
	snapshotops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/snapshot"
)

func NewCommand(group string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "snapshot",
		Short:   "Manage node pool snapshots",
		GroupID: group,
		Long: `snapshot captures the configuration of a node pool so new pools and
clusters can be created from it.`,
		Example: `  aksctl snapshot create -g my-rg -n snap1 --nodepool-id $POOL_ID
  aksctl snapshot list -g my-rg -o table`,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	for _, newCmd := range []func() (*cobra.Command, error){
		newCreateCommand,
		newShowCommand,
		newListCommand,
		newUpdateCommand,
		newDeleteCommand,
	} {
		c, err := newCmd()
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}
	return cmd, nil
}

type RawSnapshotOptions struct {
	Azure         *base.RawAzureOptions
	ResourceGroup string
	Name          string
	Tags          []string
}

func DefaultSnapshotOptions() *RawSnapshotOptions {
	return &RawSnapshotOptions{Azure: base.DefaultAzureOptions()}
}

func BindSnapshotOptions(opts *RawSnapshotOptions, cmd *cobra.Command) error {
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return err
	}
	return base.ResourceFlags(cmd, &opts.ResourceGroup, &opts.Name, "snapshot")
}

func operations(ctx context.Context, azure *base.RawAzureOptions) (*snapshotops.Operations, output.Format, error) {
	completed, err := azure.ValidateAndComplete(ctx)
	if err != nil {
		return nil, "", err
	}
	return snapshotops.New(completed.Clients, completed.Prompter, completed.Yes), completed.OutputFormat, nil
}

type RawCreateOptions struct {
	*RawSnapshotOptions
	NodepoolID    string
	Location      string
	CustomHeaders string
}

func newCreateCommand() (*cobra.Command, error) {
	opts := &RawCreateOptions{RawSnapshotOptions: DefaultSnapshotOptions()}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a snapshot of a node pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, format, err := operations(ctx, opts.Azure)
			if err != nil {
				return err
			}
			snap, err := ops.Create(ctx, snapshotops.CreateRequest{
				ResourceGroup: opts.ResourceGroup,
				Name:          opts.Name,
				NodepoolID:    opts.NodepoolID,
				Location:      opts.Location,
				Tags:          helpers.ParseTags(opts.Tags),
				CustomHeaders: opts.CustomHeaders,
			})
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), snap, format)
		},
	}
	if err := BindSnapshotOptions(opts.RawSnapshotOptions, cmd); err != nil {
		return nil, err
	}
	f := cmd.Flags()
	f.StringVar(&opts.NodepoolID, "nodepool-id", "", "Resource ID of the source node pool")
	f.StringVarP(&opts.Location, "location", "l", "", "Location. Defaults to the location of the resource group")
	f.StringSliceVar(&opts.Tags, "tags", nil, "Space separated tags: key[=value]")
	f.StringVar(&opts.CustomHeaders, "aks-custom-headers", "", "Comma separated key=value pairs sent as custom headers")
	if err := cmd.MarkFlagRequired("nodepool-id"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "nodepool-id", err)
	}
	return cmd, nil
}

func newShowCommand() (*cobra.Command, error) {
	opts := DefaultSnapshotOptions()
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the details of a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, format, err := operations(ctx, opts.Azure)
			if err != nil {
				return err
			}
			snap, err := ops.Show(ctx, opts.ResourceGroup, opts.Name)
			if err != nil {
				return err
			}
			if format == output.FormatTable {
				return snapshotTable.Write(cmd.OutOrStdout(), []*armcontainerservice.Snapshot{snap}, format)
			}
			return output.Print(cmd.OutOrStdout(), snap, format)
		},
	}
	if err := BindSnapshotOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newListCommand() (*cobra.Command, error) {
	opts := DefaultSnapshotOptions()
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List snapshots in a resource group or subscription",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, format, err := operations(ctx, opts.Azure)
			if err != nil {
				return err
			}
			snaps, err := ops.List(ctx, opts.ResourceGroup)
			if err != nil {
				return err
			}
			return snapshotTable.Write(cmd.OutOrStdout(), snaps, format)
		},
	}
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return nil, err
	}
	cmd.Flags().StringVarP(&opts.ResourceGroup, "resource-group", "g", "", "Name of resource group")
	return cmd, nil
}

func newUpdateCommand() (*cobra.Command, error) {
	opts := DefaultSnapshotOptions()
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the tags of a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, format, err := operations(ctx, opts.Azure)
			if err != nil {
				return err
			}
			tags := helpers.ParseTags(opts.Tags)
			if tags == nil {
				tags = map[string]string{}
			}
			snap, err := ops.UpdateTags(ctx, opts.ResourceGroup, opts.Name, tags)
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), snap, format)
		},
	}
	if err := BindSnapshotOptions(opts, cmd); err != nil {
		return nil, err
	}
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "Space separated tags: key[=value]. Use \"\" to clear existing tags")
	if err := cmd.MarkFlagRequired("tags"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "tags", err)
	}
	return cmd, nil
}

func newDeleteCommand() (*cobra.Command, error) {
	opts := DefaultSnapshotOptions()
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, opts.Azure)
			if err != nil {
				return err
			}
			return ops.Delete(ctx, opts.ResourceGroup, opts.Name)
		},
	}
	if err := BindSnapshotOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

var snapshotTable = output.Table[*armcontainerservice.Snapshot]{
	Kind: "snapshots",
	Columns: []output.Column[*armcontainerservice.Snapshot]{
		{Header: "NAME", Field: func(s *armcontainerservice.Snapshot) string { return deref(s.Name) }},
		{Header: "LOCATION", Field: func(s *armcontainerservice.Snapshot) string { return deref(s.Location) }},
		{Header: "KUBERNETES VERSION", Field: func(s *armcontainerservice.Snapshot) string {
			if s.Properties == nil {
				return ""
			}
			return deref(s.Properties.KubernetesVersion)
		}},
		{Header: "NODE IMAGE VERSION", Field: func(s *armcontainerservice.Snapshot) string {
			if s.Properties == nil {
				return ""
			}
			return deref(s.Properties.NodeImageVersion)
		}},
		{Header: "OS SKU", Field: func(s *armcontainerservice.Snapshot) string {
			if s.Properties == nil {
				return ""
			}
			return string(deref(s.Properties.OSSKU))
		}},
	},
	EmptyMessage: "No snapshots found.",
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

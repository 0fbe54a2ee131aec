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
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/decorator"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	poolops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/nodepool"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
)

func newAddCommand() (*cobra.Command, error) {
	opts := DefaultAgentPoolOptions()
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a node pool to a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd.Context(), cmd, opts)
		},
	}
	if err := BindAddOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func runAdd(ctx context.Context, cmd *cobra.Command, opts *RawAgentPoolOptions) error {
	raw, err := opts.Complete(cmd)
	if err != nil {
		return err
	}
	completed, err := opts.Azure.ValidateAndComplete(ctx)
	if err != nil {
		return err
	}
	d := decorator.NewAgentPoolAddDecorator(poolContext(completed, raw, models.ModeCreate))
	ap, err := d.ConstructAgentPool(ctx)
	if err != nil {
		return err
	}
	result, err := d.AddAgentPool(ctx, ap)
	if err != nil {
		return err
	}
	return printPool(cmd, result, completed.OutputFormat)
}

func newUpdateCommand() (*cobra.Command, error) {
	opts := DefaultAgentPoolOptions()
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a node pool",
		Long: `Update the autoscaler, tags, labels, taints, mode or surge of a node pool.

At least one of these flags must be given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), cmd, opts)
		},
	}
	if err := BindUpdateOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func runUpdate(ctx context.Context, cmd *cobra.Command, opts *RawAgentPoolOptions) error {
	raw, err := opts.Complete(cmd)
	if err != nil {
		return err
	}
	completed, err := opts.Azure.ValidateAndComplete(ctx)
	if err != nil {
		return err
	}
	d := decorator.NewAgentPoolUpdateDecorator(poolContext(completed, raw, models.ModeUpdate))
	ap, err := d.UpdateAgentPoolProfileDefault(ctx)
	if err != nil {
		return err
	}
	result, err := d.UpdateAgentPool(ctx, ap)
	if err != nil {
		return err
	}
	return printPool(cmd, result, completed.OutputFormat)
}

func newShowCommand() (*cobra.Command, error) {
	opts := DefaultPoolOptions()
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the details of a node pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			ap, err := ops.Show(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
			if err != nil {
				return err
			}
			if completed.OutputFormat == output.FormatTable {
				return poolTable.Write(cmd.OutOrStdout(), []*armcontainerservice.AgentPool{ap}, completed.OutputFormat)
			}
			return printPool(cmd, ap, completed.OutputFormat)
		},
	}
	if err := BindPoolOptions(opts, cmd, true); err != nil {
		return nil, err
	}
	return cmd, nil
}

func newListCommand() (*cobra.Command, error) {
	opts := DefaultPoolOptions()
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the node pools of a managed cluster",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			pools, err := ops.List(ctx, opts.ResourceGroup, opts.ClusterName)
			if err != nil {
				return err
			}
			return poolTable.Write(cmd.OutOrStdout(), pools, completed.OutputFormat)
		},
	}
	if err := BindPoolOptions(opts, cmd, false); err != nil {
		return nil, err
	}
	return cmd, nil
}

type RawScaleOptions struct {
	*RawPoolOptions
	NodeCount int32
}

func newScaleCommand() (*cobra.Command, error) {
	opts := &RawScaleOptions{RawPoolOptions: DefaultPoolOptions()}
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale a node pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			ap, err := ops.Scale(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name, opts.NodeCount, opts.NoWait)
			if err != nil {
				return err
			}
			return printPool(cmd, ap, completed.OutputFormat)
		},
	}
	if err := BindPoolOptions(opts.RawPoolOptions, cmd, true); err != nil {
		return nil, err
	}
	bindNoWait(opts.RawPoolOptions, cmd)
	cmd.Flags().Int32VarP(&opts.NodeCount, "node-count", "c", models.DefaultNodeCount, "Number of nodes in the node pool")
	return cmd, nil
}

type RawUpgradeOptions struct {
	*RawPoolOptions
	KubernetesVersion string
	NodeImageOnly     bool
	MaxSurge          string
	SnapshotID        string
	CustomHeaders     string
}

func newUpgradeCommand() (*cobra.Command, error) {
	opts := &RawUpgradeOptions{RawPoolOptions: DefaultPoolOptions()}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade a node pool to a newer version",
		Long: `Upgrade the Kubernetes version or the node image of a node pool.

--snapshot-id seeds the pool from a node pool snapshot. --node-image-only
rolls the node image without changing the Kubernetes version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			ap, err := ops.Upgrade(ctx, poolops.UpgradeRequest{
				ResourceGroup:     opts.ResourceGroup,
				ClusterName:       opts.ClusterName,
				Name:              opts.Name,
				KubernetesVersion: opts.KubernetesVersion,
				NodeImageOnly:     opts.NodeImageOnly,
				MaxSurge:          opts.MaxSurge,
				SnapshotID:        opts.SnapshotID,
				CustomHeaders:     opts.CustomHeaders,
				NoWait:            opts.NoWait,
			})
			if err != nil {
				return err
			}
			return printPool(cmd, ap, completed.OutputFormat)
		},
	}
	if err := BindPoolOptions(opts.RawPoolOptions, cmd, true); err != nil {
		return nil, err
	}
	bindNoWait(opts.RawPoolOptions, cmd)
	f := cmd.Flags()
	f.StringVarP(&opts.KubernetesVersion, "kubernetes-version", "k", "", "Version of Kubernetes to upgrade the node pool to")
	f.BoolVar(&opts.NodeImageOnly, "node-image-only", false, "Only upgrade the node image")
	f.StringVar(&opts.MaxSurge, "max-surge", "", "Extra nodes used to speed up the upgrade, e.g. 5 or 33%")
	f.StringVar(&opts.SnapshotID, "snapshot-id", "", "Source snapshot ID used to upgrade the node pool")
	f.StringVar(&opts.CustomHeaders, "aks-custom-headers", "", "Comma separated key=value pairs sent as custom headers")
	return cmd, nil
}

func newDeleteCommand() (*cobra.Command, error) {
	opts := DefaultPoolOptions()
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a node pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			return ops.Delete(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name, opts.NoWait)
		},
	}
	if err := BindPoolOptions(opts, cmd, true); err != nil {
		return nil, err
	}
	bindNoWait(opts, cmd)
	return cmd, nil
}

func newGetUpgradeProfileCommand() (*cobra.Command, error) {
	opts := DefaultPoolOptions()
	cmd := &cobra.Command{
		Use:   "get-upgrade-profile",
		Short: "Show the available upgrades of a node pool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			profile, err := ops.GetUpgradeProfile(ctx, opts.ResourceGroup, opts.ClusterName, opts.Name)
			if err != nil {
				return err
			}
			return output.Print(cmd.OutOrStdout(), profile, completed.OutputFormat)
		},
	}
	if err := BindPoolOptions(opts, cmd, true); err != nil {
		return nil, err
	}
	return cmd, nil
}

var poolTable = output.Table[*armcontainerservice.AgentPool]{
	Kind: "node pools",
	Columns: []output.Column[*armcontainerservice.AgentPool]{
		{Header: "NAME", Field: func(ap *armcontainerservice.AgentPool) string { return deref(ap.Name) }},
		{Header: "OS TYPE", Field: func(ap *armcontainerservice.AgentPool) string { return string(deref(props(ap).OSType)) }},
		{Header: "VM SIZE", Field: func(ap *armcontainerservice.AgentPool) string { return deref(props(ap).VMSize) }},
		{Header: "COUNT", Field: func(ap *armcontainerservice.AgentPool) string {
			if c := props(ap).Count; c != nil {
				return strconv.Itoa(int(*c))
			}
			return ""
		}},
		{Header: "MODE", Field: func(ap *armcontainerservice.AgentPool) string { return string(deref(props(ap).Mode)) }},
		{Header: "KUBERNETES VERSION", Field: func(ap *armcontainerservice.AgentPool) string { return deref(props(ap).OrchestratorVersion) }},
		{Header: "PROVISIONING STATE", Field: func(ap *armcontainerservice.AgentPool) string { return deref(props(ap).ProvisioningState) }},
	},
	EmptyMessage: "No node pools found.",
}

func props(ap *armcontainerservice.AgentPool) *armcontainerservice.ManagedClusterAgentPoolProfileProperties {
	if ap.Properties == nil {
		return &armcontainerservice.ManagedClusterAgentPoolProfileProperties{}
	}
	return ap.Properties
}

func printPool(cmd *cobra.Command, ap *armcontainerservice.AgentPool, format output.Format) error {
	if ap == nil {
		return nil
	}
	if err := output.Print(cmd.OutOrStdout(), ap, format); err != nil {
		return fmt.Errorf("failed to print node pool: %w", err)
	}
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/base"
	clusterops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/cluster"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/discovery"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
)

// RawResourceOptions address a single managed cluster.
type RawResourceOptions struct {
	Azure         *base.RawAzureOptions
	ResourceGroup string
	Name          string
	NoWait        bool
}

func DefaultResourceOptions() *RawResourceOptions {
	return &RawResourceOptions{Azure: base.DefaultAzureOptions()}
}

func BindResourceOptions(opts *RawResourceOptions, cmd *cobra.Command) error {
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return err
	}
	return base.ResourceFlags(cmd, &opts.ResourceGroup, &opts.Name, "managed cluster")
}

func bindNoWait(opts *RawResourceOptions, cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opts.NoWait, "no-wait", false, "Do not wait for the long-running operation to finish")
}

// operations validates the shared flags and returns cluster operations bound to cmd's output.
func operations(ctx context.Context, cmd *cobra.Command, azure *base.RawAzureOptions) (*clusterops.Operations, *base.CompletedAzureOptions, error) {
	completed, err := azure.ValidateAndComplete(ctx)
	if err != nil {
		return nil, nil, err
	}
	ops := clusterops.New(completed.Clients, completed.Credential, completed.Prompter, completed.Cloud, completed.Yes)
	ops.Out = cmd.OutOrStdout()
	return ops, completed, nil
}

func newShowCommand() (*cobra.Command, error) {
	opts := DefaultResourceOptions()
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the details of a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			mc, err := ops.Show(ctx, opts.ResourceGroup, opts.Name)
			if err != nil {
				return err
			}
			if completed.OutputFormat == output.FormatTable {
				return clusterTable.Write(cmd.OutOrStdout(), []*armcontainerservice.ManagedCluster{mc}, completed.OutputFormat)
			}
			return printCluster(cmd, mc, completed.OutputFormat)
		},
	}
	if err := BindResourceOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

var clusterTable = output.Table[*armcontainerservice.ManagedCluster]{
	Kind: "managed clusters",
	Columns: []output.Column[*armcontainerservice.ManagedCluster]{
		{Header: "NAME", Field: func(mc *armcontainerservice.ManagedCluster) string { return deref(mc.Name) }},
		{Header: "LOCATION", Field: func(mc *armcontainerservice.ManagedCluster) string { return deref(mc.Location) }},
		{Header: "RESOURCE GROUP", Field: func(mc *armcontainerservice.ManagedCluster) string {
			if id, err := parseResourceGroup(mc.ID); err == nil {
				return id
			}
			return ""
		}},
		{Header: "KUBERNETES VERSION", Field: func(mc *armcontainerservice.ManagedCluster) string {
			if mc.Properties == nil {
				return ""
			}
			return deref(mc.Properties.KubernetesVersion)
		}},
		{Header: "PROVISIONING STATE", Field: func(mc *armcontainerservice.ManagedCluster) string {
			if mc.Properties == nil {
				return ""
			}
			return deref(mc.Properties.ProvisioningState)
		}},
		{Header: "FQDN", Field: func(mc *armcontainerservice.ManagedCluster) string {
			if mc.Properties == nil {
				return ""
			}
			return deref(mc.Properties.Fqdn)
		}},
	},
	EmptyMessage: "No managed clusters found.",
}

var discoveredTable = output.Table[discovery.ClusterSummary]{
	Kind: "managed clusters",
	Columns: []output.Column[discovery.ClusterSummary]{
		{Header: "NAME", Field: func(c discovery.ClusterSummary) string { return c.Name }},
		{Header: "LOCATION", Field: func(c discovery.ClusterSummary) string { return c.Location }},
		{Header: "RESOURCE GROUP", Field: func(c discovery.ClusterSummary) string { return c.ResourceGroup }},
		{Header: "SUBSCRIPTION", Field: func(c discovery.ClusterSummary) string { return c.Subscription }},
		{Header: "KUBERNETES VERSION", Field: func(c discovery.ClusterSummary) string { return c.KubernetesVersion }},
		{Header: "PROVISIONING STATE", Field: func(c discovery.ClusterSummary) string { return c.State }},
	},
	EmptyMessage: "No managed clusters found.",
}

type RawListOptions struct {
	Azure            *base.RawAzureOptions
	ResourceGroup    string
	AllSubscriptions bool
	Location         string
}

func newListCommand() (*cobra.Command, error) {
	opts := &RawListOptions{Azure: base.DefaultAzureOptions()}
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List managed clusters",
		Long: `List managed clusters in a resource group or in the subscription.

With --all-subscriptions the clusters are found through Azure Resource Graph
in every subscription the signed in principal can read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			if opts.AllSubscriptions {
				found, err := discovery.New(completed.Clients.ResourceGraph).Clusters(ctx, &discovery.ClusterFilter{
					ResourceGroup: opts.ResourceGroup,
					Location:      opts.Location,
				})
				if err != nil {
					return err
				}
				return discoveredTable.Write(cmd.OutOrStdout(), found, completed.OutputFormat)
			}
			clusters, err := ops.List(ctx, opts.ResourceGroup)
			if err != nil {
				return err
			}
			return clusterTable.Write(cmd.OutOrStdout(), clusters, completed.OutputFormat)
		},
	}
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return nil, err
	}
	cmd.Flags().StringVarP(&opts.ResourceGroup, "resource-group", "g", "", "Name of resource group")
	cmd.Flags().BoolVar(&opts.AllSubscriptions, "all-subscriptions", false, "Search every readable subscription through Azure Resource Graph")
	cmd.Flags().StringVarP(&opts.Location, "location", "l", "", "Only list clusters in this location, with --all-subscriptions")
	return cmd, nil
}

func newDeleteCommand() (*cobra.Command, error) {
	opts := DefaultResourceOptions()
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			return ops.Delete(ctx, opts.ResourceGroup, opts.Name, opts.NoWait)
		},
	}
	if err := BindResourceOptions(opts, cmd); err != nil {
		return nil, err
	}
	bindNoWait(opts, cmd)
	return cmd, nil
}

type RawUpgradeOptions struct {
	*RawResourceOptions
	KubernetesVersion string
	ControlPlaneOnly  bool
	NodeImageOnly     bool
}

func newUpgradeCommand() (*cobra.Command, error) {
	opts := &RawUpgradeOptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade a managed cluster to a newer version",
		Long: `Upgrade the control plane and node pools of a managed cluster.

--node-image-only upgrades the node image of every scale set pool without
changing the Kubernetes version.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			mc, err := ops.Upgrade(ctx, clusterops.UpgradeRequest{
				ResourceGroup:     opts.ResourceGroup,
				Name:              opts.Name,
				KubernetesVersion: opts.KubernetesVersion,
				ControlPlaneOnly:  opts.ControlPlaneOnly,
				NodeImageOnly:     opts.NodeImageOnly,
				NoWait:            opts.NoWait,
			})
			if err != nil {
				return err
			}
			return printCluster(cmd, mc, completed.OutputFormat)
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	bindNoWait(opts.RawResourceOptions, cmd)
	cmd.Flags().StringVarP(&opts.KubernetesVersion, "kubernetes-version", "k", "", "Version of Kubernetes to upgrade the cluster to")
	cmd.Flags().BoolVar(&opts.ControlPlaneOnly, "control-plane-only", false, "Upgrade the cluster control plane only")
	cmd.Flags().BoolVar(&opts.NodeImageOnly, "node-image-only", false, "Only upgrade the node images of the agent pools")
	return cmd, nil
}

type RawScaleOptions struct {
	*RawResourceOptions
	NodepoolName string
	NodeCount    int32
}

func newScaleCommand() (*cobra.Command, error) {
	opts := &RawScaleOptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Scale the node pool of a managed cluster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, completed, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			mc, err := ops.Scale(ctx, clusterops.ScaleRequest{
				ResourceGroup: opts.ResourceGroup,
				Name:          opts.Name,
				NodepoolName:  opts.NodepoolName,
				NodeCount:     opts.NodeCount,
				NoWait:        opts.NoWait,
			})
			if err != nil {
				return err
			}
			return printCluster(cmd, mc, completed.OutputFormat)
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	bindNoWait(opts.RawResourceOptions, cmd)
	cmd.Flags().StringVar(&opts.NodepoolName, "nodepool-name", "", "Node pool name, required when the cluster has more than one pool")
	cmd.Flags().Int32VarP(&opts.NodeCount, "node-count", "c", 0, "Number of nodes in the node pool")
	if err := cmd.MarkFlagRequired("node-count"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "node-count", err)
	}
	return cmd, nil
}

func newBrowseCommand() (*cobra.Command, error) {
	opts := DefaultResourceOptions()
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Show the Azure portal URL of the cluster's Kubernetes resources view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			return ops.Browse(opts.ResourceGroup, opts.Name)
		},
	}
	if err := BindResourceOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func parseResourceGroup(id *string) (string, error) {
	rid, err := arm.ParseResourceID(deref(id))
	if err != nil {
		return "", err
	}
	return rid.ResourceGroupName, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

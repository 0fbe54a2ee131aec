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

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/decorator"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
)

func newCreateCommand() (*cobra.Command, error) {
	opts := DefaultClusterOptions()
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new managed cluster",
		Long: `Create a new managed Kubernetes cluster.

Defaults are completed from the resource group, the signed in principal and
the local SSH key. Addons listed in --enable-addons are provisioned together
with the cluster.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd.Context(), cmd, opts)
		},
	}
	if err := BindCreateOptions(opts, cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

func runCreate(ctx context.Context, cmd *cobra.Command, opts *RawClusterOptions) error {
	raw, err := opts.Complete(cmd)
	if err != nil {
		return err
	}
	completed, err := opts.Azure.ValidateAndComplete(ctx)
	if err != nil {
		return err
	}
	dec, err := completed.Decorating(ctx, raw, models.ModeCreate)
	if err != nil {
		return err
	}

	d := decorator.NewCreateDecorator(dec.Context, dec.Roles, dec.Monitoring)
	mc, err := d.ConstructDefaultMC(ctx)
	if err != nil {
		return err
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("creating managed cluster", "name", raw.Name, "resourceGroup", raw.ResourceGroupName)
	result, err := d.CreateMC(ctx, mc)
	if err != nil {
		return err
	}
	return printCluster(cmd, result, completed.OutputFormat)
}

func newUpdateCommand() (*cobra.Command, error) {
	opts := DefaultClusterOptions()
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a managed cluster",
		Long: `Update the settings of an existing managed cluster.

At least one setting flag must be given. The cluster is fetched, the requested
changes are applied and the full model is written back.`,
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

func runUpdate(ctx context.Context, cmd *cobra.Command, opts *RawClusterOptions) error {
	raw, err := opts.Complete(cmd)
	if err != nil {
		return err
	}
	completed, err := opts.Azure.ValidateAndComplete(ctx)
	if err != nil {
		return err
	}
	dec, err := completed.Decorating(ctx, raw, models.ModeUpdate)
	if err != nil {
		return err
	}

	d := decorator.NewUpdateDecorator(dec.Context, dec.Roles, dec.Monitoring)
	mc, err := d.UpdateMCProfileDefault(ctx)
	if err != nil {
		return err
	}
	result, err := d.UpdateMC(ctx, mc)
	if err != nil {
		return err
	}
	return printCluster(cmd, result, completed.OutputFormat)
}

// printCluster prints mc unless the command returned before the operation finished.
func printCluster(cmd *cobra.Command, mc *armcontainerservice.ManagedCluster, format output.Format) error {
	if mc == nil {
		return nil
	}
	return output.Print(cmd.OutOrStdout(), mc, format)
}

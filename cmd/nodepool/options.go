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

	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/base"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	poolops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/nodepool"
)

// RawPoolOptions address a node pool of a cluster.
type RawPoolOptions struct {
	Azure         *base.RawAzureOptions
	ResourceGroup string
	ClusterName   string
	Name          string
	NoWait        bool
}

func DefaultPoolOptions() *RawPoolOptions {
	return &RawPoolOptions{Azure: base.DefaultAzureOptions()}
}

// BindPoolOptions binds the resource group, cluster and pool flags.
func BindPoolOptions(opts *RawPoolOptions, cmd *cobra.Command, withName bool) error {
	if err := base.BindAzureOptions(opts.Azure, cmd); err != nil {
		return err
	}
	f := cmd.Flags()
	f.StringVarP(&opts.ResourceGroup, "resource-group", "g", "", "Name of resource group")
	f.StringVar(&opts.ClusterName, "cluster-name", "", "Name of the managed cluster")
	required := []string{"resource-group", "cluster-name"}
	if withName {
		f.StringVarP(&opts.Name, "name", "n", "", "Name of the node pool")
		required = append(required, "name")
	}
	for _, flag := range required {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return fmt.Errorf("failed to mark flag %q as required: %w", flag, err)
		}
	}
	return nil
}

func bindNoWait(opts *RawPoolOptions, cmd *cobra.Command) {
	cmd.Flags().BoolVar(&opts.NoWait, "no-wait", false, "Do not wait for the long-running operation to finish")
}

func operations(ctx context.Context, cmd *cobra.Command, azure *base.RawAzureOptions) (*poolops.Operations, *base.CompletedAzureOptions, error) {
	completed, err := azure.ValidateAndComplete(ctx)
	if err != nil {
		return nil, nil, err
	}
	ops := poolops.New(completed.Clients, completed.Prompter, completed.Yes)
	ops.Out = cmd.OutOrStdout()
	return ops, completed, nil
}

// RawAgentPoolOptions carry the flags of nodepool add and update.
type RawAgentPoolOptions struct {
	*RawPoolOptions
	Raw    models.RawParameters
	Tags   []string
	Labels []string
}

func DefaultAgentPoolOptions() *RawAgentPoolOptions {
	return &RawAgentPoolOptions{RawPoolOptions: DefaultPoolOptions()}
}

// BindAddOptions binds the nodepool add flags.
func BindAddOptions(opts *RawAgentPoolOptions, cmd *cobra.Command) error {
	if err := bindAgentPoolCommon(opts, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	f := cmd.Flags()
	f.StringVarP(&r.KubernetesVersion, "kubernetes-version", "k", "", "Version of Kubernetes for the node pool")
	f.Int32VarP(&r.NodeCount, "node-count", "c", models.DefaultNodeCount, "Number of nodes in the node pool")
	f.StringVarP(&r.NodeVMSize, "node-vm-size", "s", "", "Size of virtual machines to create as Kubernetes nodes")
	f.StringVar(&r.OSType, "os-type", "", "OS type of the node pool: Linux or Windows")
	f.StringVar(&r.OSSKU, "os-sku", "", "OS SKU of the node pool: Ubuntu or CBLMariner")
	f.StringVar(&r.VnetSubnetID, "vnet-subnet-id", "", "Subnet in a VNet to deploy the node pool")
	f.StringVar(&r.PodSubnetID, "pod-subnet-id", "", "Subnet for pod IPs")
	f.StringVar(&r.PPG, "ppg", "", "ID of a proximity placement group")
	f.StringSliceVarP(&r.Zones, "zones", "z", nil, "Availability zones where agent nodes will be placed")
	f.BoolVar(&r.EnableNodePublicIP, "enable-node-public-ip", false, "Enable VMSS node public IP")
	f.StringVar(&r.NodePublicIPPrefixID, "node-public-ip-prefix-id", "", "Public IP prefix ID used to assign public IPs to VMSS nodes")
	f.BoolVar(&r.EnableEncryptionAtHost, "enable-encryption-at-host", false, "Enable EncryptionAtHost")
	f.BoolVar(&r.EnableUltraSSD, "enable-ultra-ssd", false, "Enable UltraSSD")
	f.BoolVar(&r.EnableFIPSImage, "enable-fips-image", false, "Use a FIPS-enabled OS")
	f.Int32Var(&r.MaxPods, "max-pods", 0, "Maximum number of pods deployable to a node")
	f.Int32Var(&r.NodeOSDiskSize, "node-osdisk-size", 0, "Size in GiB of the OS disk for each node")
	f.StringVar(&r.NodeOSDiskType, "node-osdisk-type", "", "OS disk type: Ephemeral or Managed")
	f.StringVar(&r.KubeletConfig, "kubelet-config", "", "Path to a JSON file with the kubelet configuration")
	f.StringVar(&r.LinuxOSConfig, "linux-os-config", "", "Path to a JSON file with the Linux OS configuration")
	f.StringVar(&r.SnapshotID, "snapshot-id", "", "Source snapshot ID used to create the node pool")
	return nil
}

// BindUpdateOptions binds the nodepool update flags.
func BindUpdateOptions(opts *RawAgentPoolOptions, cmd *cobra.Command) error {
	if err := bindAgentPoolCommon(opts, cmd); err != nil {
		return err
	}
	r := &opts.Raw
	f := cmd.Flags()
	f.BoolVar(&r.DisableClusterAutoscaler, "disable-cluster-autoscaler", false, "Disable the cluster autoscaler")
	f.BoolVar(&r.UpdateClusterAutoscaler, "update-cluster-autoscaler", false, "Update min-count or max-count of the cluster autoscaler")
	return nil
}

func bindAgentPoolCommon(opts *RawAgentPoolOptions, cmd *cobra.Command) error {
	if err := BindPoolOptions(opts.RawPoolOptions, cmd, true); err != nil {
		return err
	}
	bindNoWait(opts.RawPoolOptions, cmd)
	r := &opts.Raw
	f := cmd.Flags()
	f.StringSliceVar(&opts.Tags, "tags", nil, "Space separated tags: key[=value]. Use \"\" to clear existing tags")
	f.StringSliceVar(&opts.Labels, "labels", nil, "Space separated labels: key=value. Use \"\" to clear existing labels")
	f.StringVar(&r.NodeTaints, "node-taints", "", "Comma separated node taints")
	f.StringVar(&r.NodepoolMode, "mode", "", "Node pool mode: System or User")
	f.StringVar(&r.MaxSurge, "max-surge", "", "Extra nodes used to speed up upgrades, e.g. 5 or 33%")
	f.BoolVar(&r.EnableClusterAutoscaler, "enable-cluster-autoscaler", false, "Enable the cluster autoscaler")
	base.OptionalInt32Var(cmd, &r.MinCount, "min-count", "Minimum node count used for the autoscaler")
	base.OptionalInt32Var(cmd, &r.MaxCount, "max-count", "Maximum node count used for the autoscaler")
	f.StringVar(&r.AKSCustomHeaders, "aks-custom-headers", "", "Comma separated key=value pairs sent as custom headers")
	return nil
}

// Complete returns the raw parameters with the pool addressed by the options.
func (o *RawAgentPoolOptions) Complete(cmd *cobra.Command) (*models.RawParameters, error) {
	r := &o.Raw
	r.ResourceGroupName = o.ResourceGroup
	r.Name = o.ClusterName
	r.NodepoolName = o.Name
	r.NoWait = o.NoWait
	if cmd.Flags().Changed("tags") {
		r.NodepoolTags = helpers.ParseTags(o.Tags)
	}
	if cmd.Flags().Changed("labels") {
		labels, err := helpers.ParseLabels(o.Labels)
		if err != nil {
			return nil, err
		}
		r.NodepoolLabels = labels
	}
	base.MarkSupplied(r, cmd)
	return r, nil
}

// poolContext builds the context the agent pool decorators read their flags from.
func poolContext(completed *base.CompletedAzureOptions, raw *models.RawParameters, mode models.DecoratorMode) *mcontext.Context {
	raw.Yes = completed.Yes
	c := mcontext.New(raw, mode, completed.Clients)
	c.CloudName = completed.Cloud
	c.Prompter = completed.Prompter
	return c
}

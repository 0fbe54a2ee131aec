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
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	clusterops "github.com/Azure/ARO-HCP/tooling/aksctl/pkg/cluster"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/kubeconfig"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/runcommand"
)

type RawCredentialsOptions struct {
	*RawResourceOptions
	Admin       bool
	PublicFQDN  bool
	File        string
	Overwrite   bool
	ContextName string
	LoginMode   string
}

func newGetCredentialsCommand() (*cobra.Command, error) {
	opts := &RawCredentialsOptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "get-credentials",
		Short: "Get access credentials for a managed cluster",
		Long: `Get access credentials for a managed cluster and merge them into a kubeconfig.

The default file is the first entry of $KUBECONFIG or ~/.kube/config. Use
--file - to print the kubeconfig instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			return ops.GetCredentials(ctx, clusterops.CredentialsRequest{
				ResourceGroup: opts.ResourceGroup,
				Name:          opts.Name,
				Admin:         opts.Admin,
				PublicFQDN:    opts.PublicFQDN,
				Path:          opts.File,
				Overwrite:     opts.Overwrite,
				ContextName:   opts.ContextName,
				LoginMode:     opts.LoginMode,
			})
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	f := cmd.Flags()
	f.BoolVarP(&opts.Admin, "admin", "a", false, "Get cluster administrator credentials")
	f.BoolVar(&opts.PublicFQDN, "public-fqdn", false, "Get a kubeconfig that uses the public FQDN of a private cluster")
	f.StringVarP(&opts.File, "file", "f", "", "Kubernetes configuration file to update. Use \"-\" to print YAML to stdout")
	f.BoolVar(&opts.Overwrite, "overwrite-existing", false, "Overwrite any existing cluster entry with the same name")
	f.StringVar(&opts.ContextName, "context", "", "Set the context name, defaults to the cluster name")
	f.StringVar(&opts.LoginMode, "login", "", fmt.Sprintf("Convert the kubeconfig to a kubelogin mode: %s", strings.Join(kubeconfig.LoginModes, ", ")))
	if err := cmd.RegisterFlagCompletionFunc("login", cobra.FixedCompletions(kubeconfig.LoginModes, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return nil, fmt.Errorf("failed to register completion for %q: %w", "login", err)
	}
	return cmd, nil
}

type RawCheckACROptions struct {
	*RawResourceOptions
	ACR      string
	NodeName string
}

func newCheckACRCommand() (*cobra.Command, error) {
	opts := &RawCheckACROptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "check-acr",
		Short: "Validate that an ACR is accessible from the cluster nodes",
		Long: `Validate that an Azure Container Registry is accessible from the cluster nodes.

A short-lived pod is scheduled on the cluster to attempt an image pull from the
registry. Its log is printed and the pod is removed afterwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ops, _, err := operations(ctx, cmd, opts.Azure)
			if err != nil {
				return err
			}
			return ops.CheckACR(ctx, clusterops.CheckACRRequest{
				ResourceGroup: opts.ResourceGroup,
				Name:          opts.Name,
				ACR:           opts.ACR,
				NodeName:      opts.NodeName,
			})
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	cmd.Flags().StringVar(&opts.ACR, "acr", "", "Login server of the registry, e.g. myregistry.azurecr.io")
	cmd.Flags().StringVar(&opts.NodeName, "node-name", "", "Name of a specific node to run the check on")
	if err := cmd.MarkFlagRequired("acr"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "acr", err)
	}
	return cmd, nil
}

type RawRunCommandOptions struct {
	*RawResourceOptions
	Command string
	Files   []string
}

func newRunCommandCommand() (*cobra.Command, error) {
	opts := &RawRunCommandOptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "runcommand",
		Short: "Run a shell command inside the cluster",
		Long: `Run a shell command, such as kubectl or helm, inside the cluster.

Files given with --file are zipped and made available to the command. A single
"." attaches the current directory.`,
		Example: `  aksctl cluster runcommand -g my-rg -n my-cluster --command "kubectl get pods -A"
  aksctl cluster runcommand -g my-rg -n my-cluster --command "kubectl apply -f deployment.yaml" --file deployment.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			completed, err := opts.Azure.ValidateAndComplete(ctx)
			if err != nil {
				return err
			}
			runner := &runcommand.Runner{
				Clusters:   completed.Clients.ManagedClusters,
				Credential: completed.Credential,
				Out:        cmd.OutOrStdout(),
			}
			result, err := runner.Run(ctx, opts.ResourceGroup, opts.Name, runcommand.Request{
				Command: opts.Command,
				Files:   opts.Files,
				NoWait:  opts.NoWait,
			})
			if err != nil {
				return err
			}
			runcommand.Print(cmd.OutOrStdout(), result)
			return nil
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	bindNoWait(opts.RawResourceOptions, cmd)
	cmd.Flags().StringVarP(&opts.Command, "command", "c", "", "Command to run")
	cmd.Flags().StringArrayVarP(&opts.Files, "file", "f", nil, "Files used by the command. Use \".\" to attach the current directory")
	if err := cmd.MarkFlagRequired("command"); err != nil {
		return nil, fmt.Errorf("failed to mark flag %q as required: %w", "command", err)
	}
	return cmd, nil
}

type RawCommandResultOptions struct {
	*RawResourceOptions
	CommandID string
}

func newCommandResultCommand() (*cobra.Command, error) {
	opts := &RawCommandResultOptions{RawResourceOptions: DefaultResourceOptions()}
	cmd := &cobra.Command{
		Use:   "command-result",
		Short: "Fetch the result of a command started with runcommand",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			completed, err := opts.Azure.ValidateAndComplete(ctx)
			if err != nil {
				return err
			}
			runner := &runcommand.Runner{
				Clusters:   completed.Clients.ManagedClusters,
				Credential: completed.Credential,
				Out:        cmd.OutOrStdout(),
			}
			result, err := runner.Result(ctx, opts.ResourceGroup, opts.Name, opts.CommandID)
			if err != nil {
				return err
			}
			runcommand.Print(cmd.OutOrStdout(), result)
			return nil
		},
	}
	if err := BindResourceOptions(opts.RawResourceOptions, cmd); err != nil {
		return nil, err
	}
	cmd.Flags().StringVarP(&opts.CommandID, "command-id", "i", "", "ID of the command returned by runcommand")
	return cmd, nil
}

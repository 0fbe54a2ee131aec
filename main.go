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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dusted-go/logging/prettylog"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/addons"
	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/cluster"
	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/kubelogin"
	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/nodepool"
	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/snapshot"
	"github.com/Azure/ARO-HCP/tooling/aksctl/cmd/version"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

// Command group IDs
const (
	mainGroupID   = "main"
	helperGroupID = "helper"
)

func main() {
	logger := createLogger(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := newRootCommand(ctx)
	if err != nil {
		logger.Error(err, "failed to create command")
		os.Exit(1)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		err = clierrors.MapAzureError(err)
		if !errors.Is(err, clierrors.ErrDecoratorEarlyExit) {
			logger.Error(err, "command failed", "kind", clierrors.KindOf(err).String())
		}
		stop()
		os.Exit(clierrors.ExitCode(err))
	}
}

func newRootCommand(ctx context.Context) (*cobra.Command, error) {
	var logVerbosity int

	cmd := &cobra.Command{
		Use:   "aksctl",
		Short: "AKS managed cluster CLI",
		Long: `aksctl creates, updates and operates AKS managed clusters.

It covers the cluster lifecycle, node pools, node pool snapshots and addons,
including the monitoring and role assignment side effects they need.`,
		SilenceUsage:     true,
		SilenceErrors:    true,
		TraverseChildren: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx = logr.NewContext(ctx, createLogger(logVerbosity))
			cmd.SetContext(ctx)
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	cmd.PersistentFlags().IntVarP(&logVerbosity, "verbosity", "v", 0, "set the verbosity level")

	cmd.AddGroup(&cobra.Group{
		ID:    mainGroupID,
		Title: "Main Commands:",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    helperGroupID,
		Title: "Helper Commands:",
	})

	mainCommands := []func(string) (*cobra.Command, error){
		cluster.NewCommand,
		nodepool.NewCommand,
		snapshot.NewCommand,
		addons.NewCommand,
	}
	for _, newCmd := range mainCommands {
		c, err := newCmd(mainGroupID)
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}

	helperCommands := []func(string) (*cobra.Command, error){
		kubelogin.NewCommand,
		version.NewCommand,
	}
	for _, newCmd := range helperCommands {
		c, err := newCmd(helperGroupID)
		if err != nil {
			return nil, err
		}
		cmd.AddCommand(c)
	}

	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	return cmd, nil
}

func createLogger(verbosity int) logr.Logger {
	prettyHandler := prettylog.NewHandler(&slog.HandlerOptions{
		Level:       slog.Level(verbosity * -1),
		AddSource:   false,
		ReplaceAttr: nil,
	})
	return logr.FromSlogHandler(prettyHandler)
}

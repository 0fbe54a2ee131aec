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

package base

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/Azure/ARO-Tools/tools/cmdutils"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/auth"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/graph"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

// SubscriptionEnv is the fallback for --subscription.
const SubscriptionEnv = "AZURE_SUBSCRIPTION_ID"

// Authentication modes accepted by --auth-mode.
const (
	AuthModeDefault         = "default"
	AuthModeDeviceCode      = "devicecode"
	AuthModeManagedIdentity = "managed-identity"
)

var authModes = []string{AuthModeDefault, AuthModeDeviceCode, AuthModeManagedIdentity}

// RawAzureOptions are the flags shared by every command that talks to Azure.
type RawAzureOptions struct {
	SubscriptionID string
	Cloud          string
	AuthMode       string
	Output         string
	Yes            bool
}

// DefaultAzureOptions returns options with the subscription taken from the environment.
func DefaultAzureOptions() *RawAzureOptions {
	return &RawAzureOptions{
		SubscriptionID: os.Getenv(SubscriptionEnv),
		Cloud:          client.CloudAzure,
		AuthMode:       AuthModeDefault,
		Output:         string(output.FormatJSON),
	}
}

// BindAzureOptions registers the shared flags on cmd.
func BindAzureOptions(opts *RawAzureOptions, cmd *cobra.Command) error {
	flags := cmd.Flags()
	flags.StringVar(&opts.SubscriptionID, "subscription", opts.SubscriptionID, fmt.Sprintf("Azure subscription ID (defaults to $%s)", SubscriptionEnv))
	flags.StringVar(&opts.Cloud, "cloud", opts.Cloud, fmt.Sprintf("Azure cloud: %s", strings.Join(client.SupportedClouds, ", ")))
	flags.StringVar(&opts.AuthMode, "auth-mode", opts.AuthMode, fmt.Sprintf("How to sign in: %s", strings.Join(authModes, ", ")))
	flags.StringVarP(&opts.Output, "output", "o", opts.Output, "Output format: json, yaml, table, none")
	flags.BoolVarP(&opts.Yes, "yes", "y", opts.Yes, "Do not prompt for confirmation")

	if err := cmd.RegisterFlagCompletionFunc("cloud", cobra.FixedCompletions(client.SupportedClouds, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("failed to register completion for %q: %w", "cloud", err)
	}
	if err := cmd.RegisterFlagCompletionFunc("auth-mode", cobra.FixedCompletions(authModes, cobra.ShellCompDirectiveNoFileComp)); err != nil {
		return fmt.Errorf("failed to register completion for %q: %w", "auth-mode", err)
	}
	return nil
}

// validatedAzureOptions is a private struct that enforces the options validation pattern.
type validatedAzureOptions struct {
	*RawAzureOptions
	CloudConfig  cloud.Configuration
	OutputFormat output.Format
	Credential   azcore.TokenCredential
}

// ValidatedAzureOptions have a usable credential and output format.
type ValidatedAzureOptions struct {
	// Embed a private pointer that cannot be instantiated outside of this package
	*validatedAzureOptions
}

// NewCredential builds the credential for an auth mode. Tests replace it.
var NewCredential = func(mode string, cfg cloud.Configuration) (azcore.TokenCredential, error) {
	clientOptions := azcore.ClientOptions{Cloud: cfg}
	switch mode {
	case AuthModeDeviceCode:
		return azidentity.NewDeviceCodeCredential(&azidentity.DeviceCodeCredentialOptions{ClientOptions: clientOptions})
	case AuthModeManagedIdentity:
		return azidentity.NewManagedIdentityCredential(&azidentity.ManagedIdentityCredentialOptions{ClientOptions: clientOptions})
	default:
		return cmdutils.GetAzureTokenCredentials()
	}
}

// Validate checks the shared flags and obtains Azure credentials.
func (o *RawAzureOptions) Validate(ctx context.Context) (*ValidatedAzureOptions, error) {
	if o.SubscriptionID == "" {
		return nil, clierrors.RequiredArgumentMissing("--subscription is required when $%s is not set.", SubscriptionEnv)
	}
	cfg, err := client.CloudConfiguration(o.Cloud)
	if err != nil {
		return nil, clierrors.InvalidArgumentValue("%s", err.Error())
	}
	format, err := output.ValidateFormat(o.Output)
	if err != nil {
		return nil, clierrors.InvalidArgumentValue("invalid output format '%s': %s", o.Output, err.Error())
	}
	switch o.AuthMode {
	case AuthModeDefault, AuthModeDeviceCode, AuthModeManagedIdentity:
	default:
		return nil, clierrors.InvalidArgumentValue("--auth-mode must be one of %s.", strings.Join(authModes, ", "))
	}

	cred, err := NewCredential(o.AuthMode, cfg)
	if err != nil {
		return nil, clierrors.Wrap(clierrors.KindUnauthorized, err, "failed to obtain Azure credentials")
	}

	return &ValidatedAzureOptions{
		validatedAzureOptions: &validatedAzureOptions{
			RawAzureOptions: o,
			CloudConfig:     cfg,
			OutputFormat:    format,
			Credential:      cred,
		},
	}, nil
}

// CompletedAzureOptions hold the clients of the selected subscription.
type CompletedAzureOptions struct {
	*validatedAzureOptions
	Builder  client.ClientBuilder
	Clients  *client.Clients
	Prompter prompt.Prompter
}

// Complete builds the ARM clients for the subscription.
func (o *ValidatedAzureOptions) Complete(ctx context.Context) (*CompletedAzureOptions, error) {
	clientOptions, err := client.NewClientOptions(o.Cloud, nil)
	if err != nil {
		return nil, err
	}
	builder := client.NewClientBuilder(o.Credential, clientOptions)
	clients, err := builder.ForSubscription(o.SubscriptionID)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure clients: %w", err)
	}
	logr.FromContextOrDiscard(ctx).V(1).Info("azure clients ready", "subscription", o.SubscriptionID, "cloud", o.Cloud)

	return &CompletedAzureOptions{
		validatedAzureOptions: o.validatedAzureOptions,
		Builder:               builder,
		Clients:               clients,
		Prompter:              prompt.New(o.Yes),
	}, nil
}

// Graph returns a Microsoft Graph client for the selected cloud.
func (o *CompletedAzureOptions) Graph() (graph.Client, error) {
	return graph.NewClient(o.Credential, o.Cloud)
}

// TenantID returns the tenant of the signed in principal.
func (o *CompletedAzureOptions) TenantID(ctx context.Context) (string, error) {
	principal, err := auth.SignedInPrincipal(ctx, o.Credential, o.CloudConfig)
	if err != nil {
		return "", clierrors.Wrap(clierrors.KindUnauthorized, err, "failed to read the signed in tenant")
	}
	return principal.TenantID, nil
}

// ValidateAndComplete runs Validate followed by Complete.
func (o *RawAzureOptions) ValidateAndComplete(ctx context.Context) (*CompletedAzureOptions, error) {
	validated, err := o.Validate(ctx)
	if err != nil {
		return nil, err
	}
	return validated.Complete(ctx)
}

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
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/output"
)

type staticCredential struct{}

func (staticCredential) GetToken(context.Context, policy.TokenRequestOptions) (azcore.AccessToken, error) {
	return azcore.AccessToken{Token: "token"}, nil
}

func stubCredential(t *testing.T) *string {
	t.Helper()
	var mode string
	original := NewCredential
	NewCredential = func(m string, _ cloud.Configuration) (azcore.TokenCredential, error) {
		mode = m
		return staticCredential{}, nil
	}
	t.Cleanup(func() { NewCredential = original })
	return &mode
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		opts     RawAzureOptions
		wantKind clierrors.Kind
		wantErr  string
	}{
		{
			name:     "missing subscription",
			opts:     RawAzureOptions{Cloud: "AzureCloud", Output: "json", AuthMode: AuthModeDefault},
			wantKind: clierrors.KindRequiredArgumentMissing,
			wantErr:  "--subscription is required",
		},
		{
			name:     "unknown cloud",
			opts:     RawAzureOptions{SubscriptionID: "sub", Cloud: "Mars", Output: "json", AuthMode: AuthModeDefault},
			wantKind: clierrors.KindInvalidArgumentValue,
		},
		{
			name:     "bad output",
			opts:     RawAzureOptions{SubscriptionID: "sub", Cloud: "AzureCloud", Output: "xml", AuthMode: AuthModeDefault},
			wantKind: clierrors.KindInvalidArgumentValue,
			wantErr:  "invalid output format 'xml'",
		},
		{
			name:     "bad auth mode",
			opts:     RawAzureOptions{SubscriptionID: "sub", Cloud: "AzureCloud", Output: "json", AuthMode: "password"},
			wantKind: clierrors.KindInvalidArgumentValue,
			wantErr:  "--auth-mode must be one of",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stubCredential(t)
			_, err := tc.opts.Validate(context.Background())
			require.Error(t, err)
			assert.Equal(t, tc.wantKind, clierrors.KindOf(err))
			if tc.wantErr != "" {
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestValidateSuccess(t *testing.T) {
	mode := stubCredential(t)
	opts := RawAzureOptions{SubscriptionID: "sub", Cloud: "azurechinacloud", Output: "TABLE", AuthMode: AuthModeDeviceCode}

	validated, err := opts.Validate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, output.FormatTable, validated.OutputFormat)
	assert.Equal(t, cloud.AzureChina.ActiveDirectoryAuthorityHost, validated.CloudConfig.ActiveDirectoryAuthorityHost)
	assert.Equal(t, AuthModeDeviceCode, *mode)
	assert.NotNil(t, validated.Credential)
}

func TestDefaultAzureOptions(t *testing.T) {
	t.Setenv(SubscriptionEnv, "from-env")
	opts := DefaultAzureOptions()
	assert.Equal(t, "from-env", opts.SubscriptionID)
	assert.Equal(t, "AzureCloud", opts.Cloud)
	assert.Equal(t, "json", opts.Output)
}

func TestBindAzureOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	opts := DefaultAzureOptions()
	require.NoError(t, BindAzureOptions(opts, cmd))

	require.NoError(t, cmd.ParseFlags([]string{"--subscription", "abc", "-o", "yaml", "-y", "--cloud", "AzureUSGovernment"}))
	assert.Equal(t, "abc", opts.SubscriptionID)
	assert.Equal(t, "yaml", opts.Output)
	assert.True(t, opts.Yes)
	assert.Equal(t, "AzureUSGovernment", opts.Cloud)
}

func TestOptionalFlags(t *testing.T) {
	raw := &models.RawParameters{}
	cmd := &cobra.Command{Use: "test"}
	OptionalInt32Var(cmd, &raw.MinCount, "min-count", "")
	OptionalInt32Var(cmd, &raw.MaxCount, "max-count", "")
	OptionalStringVar(cmd, &raw.APIServerAuthorizedIPRanges, "api-server-authorized-ip-ranges", "")
	cmd.Flags().StringVar(&raw.Name, "name", "", "")

	require.NoError(t, cmd.ParseFlags([]string{"--min-count", "0", "--api-server-authorized-ip-ranges", ""}))
	MarkSupplied(raw, cmd)

	minCount, ok := raw.MinCount.Get()
	assert.True(t, ok)
	assert.Equal(t, int32(0), minCount)
	assert.False(t, raw.MaxCount.IsSet())
	ranges, ok := raw.APIServerAuthorizedIPRanges.Get()
	assert.True(t, ok)
	assert.Empty(t, ranges)
	assert.True(t, raw.WasSupplied("min-count"))
	assert.False(t, raw.WasSupplied("name"))

	assert.Error(t, cmd.ParseFlags([]string{"--max-count", "many"}))
}

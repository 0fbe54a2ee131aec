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

package runcommand

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

func zipNames(t *testing.T, encoded string) []string {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestBuildContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "b.yaml"), []byte("b"), 0o600))

	t.Run("no files", func(t *testing.T) {
		got, err := BuildContext(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("files are flattened", func(t *testing.T) {
		got, err := BuildContext(context.Background(), []string{filepath.Join(dir, "a.yaml"), filepath.Join(dir, "sub", "b.yaml")})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.yaml", "b.yaml"}, zipNames(t, got))
	})

	t.Run("current directory keeps layout", func(t *testing.T) {
		t.Chdir(dir)
		got, err := BuildContext(context.Background(), []string{"."})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.yaml", "sub/b.yaml"}, zipNames(t, got))
	})

	t.Run("dot mixed with files", func(t *testing.T) {
		_, err := BuildContext(context.Background(), []string{".", filepath.Join(dir, "a.yaml")})
		require.EqualError(t, err, ". is used to attach current folder, not expecting other attachements.")
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing")
		_, err := BuildContext(context.Background(), []string{missing})
		require.EqualError(t, err, missing+" is not valid file, or not accessable.")
		assert.True(t, clierrors.IsKind(err, clierrors.KindInvalidArgumentValue))
	})
}

func TestRunValidation(t *testing.T) {
	testCases := []struct {
		name    string
		command string
		wantErr string
	}{
		{name: "empty", command: "", wantErr: "Command cannot be empty."},
		{name: "unbalanced quotes", command: `kubectl get pods -l "app=x`, wantErr: `failed to parse command "kubectl get pods -l \"app=x": EOF found when expecting closing quote`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Runner{Clusters: client.NewMockManagedClustersClient(gomock.NewController(t))}
			_, err := r.Run(context.Background(), "r1", "c1", Request{Command: tc.command})
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestResult(t *testing.T) {
	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	testCases := []struct {
		name    string
		props   *armcontainerservice.CommandResultProperties
		wantNil bool
		wantOut string
	}{
		{
			name:  "finished",
			props: &armcontainerservice.CommandResultProperties{ProvisioningState: to.Ptr("Succeeded")},
		},
		{
			name:    "running",
			props:   &armcontainerservice.CommandResultProperties{ProvisioningState: to.Ptr("Running"), StartedAt: &started},
			wantNil: true,
			wantOut: "command id: abc, started at: 2024-01-02T03:04:05Z, status: Running\n" +
				"Please use command \"aksctl cluster command-result -g r1 -n c1 -i abc\" to get the future execution result\n",
		},
		{
			name:    "no body",
			wantNil: true,
			wantOut: "failed to fetch command result for command id: abc\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clusters := client.NewMockManagedClustersClient(gomock.NewController(t))
			clusters.EXPECT().GetCommandResult(gomock.Any(), "r1", "c1", "abc", nil).Return(armcontainerservice.ManagedClustersClientGetCommandResultResponse{
				RunCommandResult: armcontainerservice.RunCommandResult{Properties: tc.props},
			}, nil)
			var out bytes.Buffer
			r := &Runner{Clusters: clusters, Out: &out}

			got, err := r.Result(context.Background(), "r1", "c1", "abc")
			require.NoError(t, err)
			assert.Equal(t, tc.wantNil, got == nil)
			assert.Equal(t, tc.wantOut, out.String())
		})
	}

	_, err := (&Runner{}).Result(context.Background(), "r1", "c1", "")
	require.EqualError(t, err, "CommandID cannot be empty.")
}

func TestPrint(t *testing.T) {
	started := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	finished := started.Add(time.Minute)
	testCases := []struct {
		name  string
		props *armcontainerservice.CommandResultProperties
		want  string
	}{
		{
			name: "succeeded",
			props: &armcontainerservice.CommandResultProperties{
				ProvisioningState: to.Ptr("Succeeded"), StartedAt: &started, FinishedAt: &finished, ExitCode: to.Ptr[int32](0), Logs: to.Ptr("pod/a Running"),
			},
			want: "command started at 2024-01-02T03:04:05Z, finished at 2024-01-02T03:05:05Z with exitcode=0\npod/a Running\n",
		},
		{
			name:  "failed",
			props: &armcontainerservice.CommandResultProperties{ProvisioningState: to.Ptr("Failed"), Reason: to.Ptr("timeout")},
			want:  "command failed with reason: timeout\n",
		},
		{
			name:  "failed without reason",
			props: &armcontainerservice.CommandResultProperties{ProvisioningState: to.Ptr("Failed")},
			want:  "command failed with reason: \n",
		},
		{
			name:  "running",
			props: &armcontainerservice.CommandResultProperties{ProvisioningState: to.Ptr("Running")},
			want:  "command is in Running state\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			Print(&out, &armcontainerservice.RunCommandResult{Properties: tc.props})
			assert.Equal(t, tc.want, out.String())
		})
	}
}

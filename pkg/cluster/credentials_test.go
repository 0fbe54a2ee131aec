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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"k8s.io/client-go/tools/clientcmd"
)

const userKubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: c1
  cluster:
    server: https://c1-r1.hcp.eastus.azmk8s.io:443
users:
- name: %s
  user:
    token: secret
contexts:
- name: c1
  context:
    cluster: c1
    user: %s
current-context: c1
`

func credentialResults(user string) armcontainerservice.CredentialResults {
	raw := []byte(fmt.Sprintf(userKubeconfig, user, user))
	return armcontainerservice.CredentialResults{
		Kubeconfigs: []*armcontainerservice.CredentialResult{{Name: to.Ptr("clusterUser"), Value: raw}},
	}
}

func TestGetCredentials(t *testing.T) {
	testCases := []struct {
		name            string
		admin           bool
		publicFQDN      bool
		contextName     string
		expectedContext string
	}{
		{
			name:            "user",
			expectedContext: "c1",
		},
		{
			name:            "admin",
			admin:           true,
			expectedContext: "c1-admin",
		},
		{
			name:            "renamed public fqdn",
			publicFQDN:      true,
			contextName:     "dev",
			expectedContext: "dev",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m, _ := newTestOperations(t, true)
			var serverFqdn *string
			if tc.publicFQDN {
				serverFqdn = to.Ptr("public")
			}
			if tc.admin {
				m.clusters.EXPECT().ListClusterAdminCredentials(gomock.Any(), "r1", "c1",
					&armcontainerservice.ManagedClustersClientListClusterAdminCredentialsOptions{}).
					Return(armcontainerservice.ManagedClustersClientListClusterAdminCredentialsResponse{CredentialResults: credentialResults("clusterAdmin_r1_c1")}, nil)
			} else {
				m.clusters.EXPECT().ListClusterUserCredentials(gomock.Any(), "r1", "c1",
					&armcontainerservice.ManagedClustersClientListClusterUserCredentialsOptions{ServerFqdn: serverFqdn}).
					Return(armcontainerservice.ManagedClustersClientListClusterUserCredentialsResponse{CredentialResults: credentialResults("clusterUser_r1_c1")}, nil)
			}
			path := filepath.Join(t.TempDir(), "kube", "config")

			err := o.GetCredentials(context.Background(), CredentialsRequest{
				ResourceGroup: "r1",
				Name:          "c1",
				Admin:         tc.admin,
				PublicFQDN:    tc.publicFQDN,
				Path:          path,
				ContextName:   tc.contextName,
			})
			require.NoError(t, err)

			config, err := clientcmd.LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedContext, config.CurrentContext)
			assert.Contains(t, config.Contexts, tc.expectedContext)
		})
	}
}

func TestGetCredentialsPrint(t *testing.T) {
	o, m, out := newTestOperations(t, true)
	m.clusters.EXPECT().ListClusterUserCredentials(gomock.Any(), "r1", "c1", gomock.Any()).
		Return(armcontainerservice.ManagedClustersClientListClusterUserCredentialsResponse{CredentialResults: credentialResults("clusterUser_r1_c1")}, nil)

	err := o.GetCredentials(context.Background(), CredentialsRequest{ResourceGroup: "r1", Name: "c1", Path: "-", LoginMode: "azurecli"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "current-context: c1")
}

func TestGetCredentialsEmpty(t *testing.T) {
	o, m, _ := newTestOperations(t, true)
	m.clusters.EXPECT().ListClusterUserCredentials(gomock.Any(), "r1", "c1", gomock.Any()).
		Return(armcontainerservice.ManagedClustersClientListClusterUserCredentialsResponse{}, nil)

	err := o.GetCredentials(context.Background(), CredentialsRequest{ResourceGroup: "r1", Name: "c1", Path: "-"})
	require.EqualError(t, err, "No Kubernetes credentials found.")
}

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

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/kubeconfig"
)

const serverFqdnPublic = "public"

// CredentialsRequest selects which kubeconfig to fetch and where it goes.
type CredentialsRequest struct {
	ResourceGroup string
	Name          string
	Admin         bool
	// PublicFQDN returns a kubeconfig pointing at the public FQDN of a
	// private cluster.
	PublicFQDN  bool
	Path        string
	Overwrite   bool
	ContextName string
	// LoginMode, when set, converts the merged kubeconfig to the given
	// kubelogin mode.
	LoginMode string
}

// GetCredentials fetches the cluster kubeconfig and prints or merges it.
func (o *Operations) GetCredentials(ctx context.Context, req CredentialsRequest) error {
	var serverFqdn *string
	if req.PublicFQDN {
		serverFqdn = to.Ptr(serverFqdnPublic)
	}

	var results armcontainerservice.CredentialResults
	if req.Admin {
		resp, err := o.Clients.ManagedClusters.ListClusterAdminCredentials(ctx, req.ResourceGroup, req.Name,
			&armcontainerservice.ManagedClustersClientListClusterAdminCredentialsOptions{ServerFqdn: serverFqdn})
		if err != nil {
			return clierrors.MapAzureError(err)
		}
		results = resp.CredentialResults
	} else {
		resp, err := o.Clients.ManagedClusters.ListClusterUserCredentials(ctx, req.ResourceGroup, req.Name,
			&armcontainerservice.ManagedClustersClientListClusterUserCredentialsOptions{ServerFqdn: serverFqdn})
		if err != nil {
			return clierrors.MapAzureError(err)
		}
		results = resp.CredentialResults
	}
	if len(results.Kubeconfigs) == 0 || results.Kubeconfigs[0] == nil {
		return clierrors.CLIInternal("No Kubernetes credentials found.")
	}

	path := kubeconfig.ResolvePath(ctx, req.Path)
	err := kubeconfig.PrintOrMerge(ctx, results.Kubeconfigs[0].Value, kubeconfig.Options{
		Path:        path,
		Overwrite:   req.Overwrite,
		ContextName: req.ContextName,
		Prompter:    o.Prompter,
		Stdout:      o.Out,
	})
	if err != nil {
		return err
	}
	if req.LoginMode == "" || path == kubeconfig.StdoutPath {
		return nil
	}
	return kubeconfig.Convert(ctx, path, req.LoginMode)
}

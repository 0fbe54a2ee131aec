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

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/monitoring"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/roleassignment"
)

// Decorating bundles the collaborators the cluster decorators run with.
type Decorating struct {
	Context    *mcontext.Context
	Roles      *roleassignment.Assigner
	Monitoring *monitoring.Provisioner
}

// Decorating wires a managed cluster context for raw in the given mode.
func (o *CompletedAzureOptions) Decorating(ctx context.Context, raw *models.RawParameters, mode models.DecoratorMode) (*Decorating, error) {
	graphClient, err := o.Graph()
	if err != nil {
		return nil, fmt.Errorf("failed to create graph client: %w", err)
	}
	tenantID, err := o.TenantID(ctx)
	if err != nil {
		return nil, err
	}
	raw.Yes = o.Yes
	mon := monitoring.New(o.Clients, o.Builder, o.Cloud)

	c := mcontext.New(raw, mode, o.Clients)
	c.CloudName = o.Cloud
	c.TenantID = tenantID
	c.Graph = graphClient
	c.Prompter = o.Prompter
	c.Workspaces = mon

	return &Decorating{
		Context:    c,
		Roles:      roleassignment.New(o.Clients, graphClient),
		Monitoring: mon,
	}, nil
}

// MarkSupplied records every flag the user set on cmd.
func MarkSupplied(raw *models.RawParameters, cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		raw.MarkSupplied(f.Name)
	})
}

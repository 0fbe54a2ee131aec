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

// Package decorator turns the request scoped context of a cluster create or
// update into a ManagedCluster body, sends it, and runs the role assignment
// and monitoring side effects that must follow.
package decorator

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/mcontext"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/monitoring"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/roleassignment"
)

//go:generate $MOCKGEN -typed -source=decorator.go -destination=mock_decorator.go -package decorator RoleAssigner MonitoringProvisioner

// RoleAssigner is the role assignment surface the decorators drive.
type RoleAssigner interface {
	Add(ctx context.Context, role, assignee string, isServicePrincipal bool, scope string) bool
	SubnetAssignmentExists(ctx context.Context, scope string) (bool, error)
	EnsureKubeletIdentityPermission(ctx context.Context, clusterIdentityObjectID, kubeletIdentityResourceID string) error
	EnsureACR(ctx context.Context, assignee, acrNameOrID string, isServicePrincipal, detach bool) error
	AddMonitoringRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster, clusterResourceID string)
	AddIngressAppGWRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster)
	AddVirtualNodeRoleAssignment(ctx context.Context, mc *armcontainerservice.ManagedCluster, vnetSubnetID string)
}

var _ RoleAssigner = (*roleassignment.Assigner)(nil)

// MonitoringProvisioner creates the container insights and metrics collateral.
type MonitoringProvisioner interface {
	EnsureContainerInsights(ctx context.Context, req monitoring.Request) (monitoring.State, error)
	EnableAzureMonitorMetrics(ctx context.Context, req monitoring.MetricsRequest) error
	DisableAzureMonitorMetrics(ctx context.Context, req monitoring.MetricsRequest) error
}

var _ MonitoringProvisioner = (*monitoring.Provisioner)(nil)

const (
	// Service principals take a while to replicate to the tenant the
	// cluster resource provider reads from.
	spPropagationAttempts = 30
	spPropagationDelay    = 3 * time.Second
	spNotFoundMessage     = "not found in Active Directory tenant"
)

// Step mutates the cluster record. Steps run in order and stop at the first error.
type Step struct {
	Name  string
	Apply func(ctx context.Context, mc *armcontainerservice.ManagedCluster) error
}

// PostEffect runs once the cluster write has completed.
type PostEffect struct {
	Name string
	Run  func(ctx context.Context, cluster *armcontainerservice.ManagedCluster) error
}

func fold(ctx context.Context, mc *armcontainerservice.ManagedCluster, steps []Step) error {
	logger := logr.FromContextOrDiscard(ctx)
	for _, s := range steps {
		logger.V(2).Info("Applying step.", "step", s.Name)
		if err := s.Apply(ctx, mc); err != nil {
			return err
		}
	}
	return nil
}

// withCustomHeaders attaches --aks-custom-headers to every request sent with ctx.
func withCustomHeaders(ctx context.Context, c *mcontext.Context) (context.Context, error) {
	headers, err := c.AKSCustomHeaders()
	if err != nil {
		return ctx, err
	}
	if len(headers) == 0 {
		return ctx, nil
	}
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return policy.WithHTTPHeader(ctx, h), nil
}

func isSPNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), spNotFoundMessage)
}

func ptrMap(m map[string]string) map[string]*string {
	if m == nil {
		return nil
	}
	out := make(map[string]*string, len(m))
	for k, v := range m {
		out[k] = to.Ptr(v)
	}
	return out
}

func ptrSlice(s []string) []*string {
	if s == nil {
		return nil
	}
	out := make([]*string, 0, len(s))
	for _, v := range s {
		out = append(out, to.Ptr(v))
	}
	return out
}

// nonZero returns nil for the zero value so the field is left out of the body.
func nonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func references(ids []string) []*armcontainerservice.ResourceReference {
	out := make([]*armcontainerservice.ResourceReference, 0, len(ids))
	for _, id := range ids {
		out = append(out, &armcontainerservice.ResourceReference{ID: to.Ptr(id)})
	}
	return out
}

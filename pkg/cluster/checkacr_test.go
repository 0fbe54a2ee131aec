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
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/version"
	fakediscovery "k8s.io/client-go/discovery/fake"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"
)

func TestCanipullPod(t *testing.T) {
	pod := canipullPod("canipull-1", "myacr.azurecr.io", "")
	assert.Equal(t, []string{"-v6", "myacr.azurecr.io"}, pod.Spec.Containers[0].Args)
	assert.Equal(t, corev1.RestartPolicyNever, pod.Spec.RestartPolicy)
	assert.True(t, pod.Spec.HostNetwork)
	assert.Equal(t, int64(0), *pod.Spec.Containers[0].SecurityContext.RunAsUser)
	assert.Equal(t, map[string]string{"kubernetes.io/os": "linux"}, pod.Spec.NodeSelector)
	assert.Nil(t, pod.Spec.Affinity)
	assert.Len(t, pod.Spec.Volumes, 3)
	assert.Equal(t, corev1.HostPathDirectoryOrCreate, *pod.Spec.Volumes[2].HostPath.Type)

	pinned := canipullPod("canipull-1", "myacr.azurecr.io", "aks-nodepool1-0")
	require.NotNil(t, pinned.Spec.Affinity)
	term := pinned.Spec.Affinity.NodeAffinity.RequiredDuringSchedulingIgnoredDuringExecution.NodeSelectorTerms[0]
	assert.Equal(t, "kubernetes.io/hostname", term.MatchExpressions[0].Key)
	assert.Equal(t, []string{"aks-nodepool1-0"}, term.MatchExpressions[0].Values)
}

func TestCheckACR(t *testing.T) {
	testCases := []struct {
		name          string
		serverVersion string
		phase         corev1.PodPhase
		expectWarning bool
		expectedErr   string
	}{
		{
			name:          "succeeded",
			serverVersion: "v1.29.2",
			phase:         corev1.PodSucceeded,
		},
		{
			name:          "old server",
			serverVersion: "v1.17.13",
			phase:         corev1.PodSucceeded,
			expectWarning: true,
		},
		{
			name:          "failed pod",
			serverVersion: "v1.29.2",
			phase:         corev1.PodFailed,
			expectedErr:   "Failed to check the ACR: pod",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o, m, out := newTestOperations(t, true)
			m.clusters.EXPECT().ListClusterUserCredentials(gomock.Any(), "r1", "c1", nil).
				Return(armcontainerservice.ManagedClustersClientListClusterUserCredentialsResponse{
					CredentialResults: armcontainerservice.CredentialResults{
						Kubeconfigs: []*armcontainerservice.CredentialResult{{Name: to.Ptr("clusterUser"), Value: []byte("kubeconfig")}},
					},
				}, nil)

			kube := fake.NewClientset()
			kube.Discovery().(*fakediscovery.FakeDiscovery).FakedServerVersion = &version.Info{GitVersion: tc.serverVersion}
			kube.PrependReactor("create", "pods", func(action k8stesting.Action) (bool, runtime.Object, error) {
				pod := action.(k8stesting.CreateAction).GetObject().(*corev1.Pod)
				pod.Status.Phase = tc.phase
				return false, nil, nil
			})
			o.KubeClient = func(raw []byte, _ azcore.TokenCredential) (kubernetes.Interface, error) {
				assert.Equal(t, "kubeconfig", string(raw))
				return kube, nil
			}

			var logs []string
			ctx := logr.NewContext(context.Background(), funcr.New(func(_, args string) {
				logs = append(logs, args)
			}, funcr.Options{}))

			err := o.CheckACR(ctx, CheckACRRequest{ResourceGroup: "r1", Name: "c1", ACR: "myacr.azurecr.io"})
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, "fake logs", out.String())

			pods, err := kube.CoreV1().Pods("default").List(context.Background(), metav1.ListOptions{})
			require.NoError(t, err)
			assert.Empty(t, pods.Items, "canipull pod should be removed")

			warned := false
			for _, l := range logs {
				warned = warned || strings.Contains(l, "known issue for Kubernetes versions < 1.17.14")
			}
			assert.Equal(t, tc.expectWarning, warned)
		})
	}
}

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
	"io"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/runcommand"
)

const (
	canipullImage     = "mcr.microsoft.com/aks/canipull:v0.1.0"
	canipullNamespace = "default"
	canipullTimeout   = 5 * time.Minute

	hostnameLabel = "kubernetes.io/hostname"
	osLabel       = "kubernetes.io/os"
)

var msiACRFixedVersion = semver.MustParse("1.17.14")

// KubeClientFactory builds a Kubernetes client for a cluster kubeconfig.
type KubeClientFactory func(raw []byte, credential azcore.TokenCredential) (kubernetes.Interface, error)

// CheckACRRequest validates that the nodes of a cluster can pull from a registry.
type CheckACRRequest struct {
	ResourceGroup string
	Name          string
	// ACR is the registry login server, e.g. myregistry.azurecr.io.
	ACR string
	// NodeName pins the check to a single node.
	NodeName string
}

// CheckACR schedules a short-lived canipull pod on the cluster, prints its
// log and removes it.
func (o *Operations) CheckACR(ctx context.Context, req CheckACRRequest) error {
	logger := logr.FromContextOrDiscard(ctx)

	resp, err := o.Clients.ManagedClusters.ListClusterUserCredentials(ctx, req.ResourceGroup, req.Name, nil)
	if err != nil {
		return clierrors.MapAzureError(err)
	}
	if len(resp.Kubeconfigs) == 0 || resp.Kubeconfigs[0] == nil {
		return clierrors.CLIInternal("No Kubernetes credentials found.")
	}
	newClient := o.KubeClient
	if newClient == nil {
		newClient = NewKubeClient
	}
	kube, err := newClient(resp.Kubeconfigs[0].Value, o.Credential)
	if err != nil {
		return clierrors.Wrap(clierrors.KindCLIInternal, err, "Failed to check the ACR.")
	}

	if info, err := kube.Discovery().ServerVersion(); err != nil {
		logger.V(1).Info("could not read server version", "error", err)
	} else if v, err := semver.NewVersion(info.GitVersion); err != nil {
		logger.V(1).Info("could not parse server version", "version", info.GitVersion, "error", err)
	} else if v.LessThan(msiACRFixedVersion) {
		warn(ctx, "There is a known issue for Kubernetes versions < 1.17.14 when connecting to ACR using MSI. " +
			"See https://github.com/kubernetes/kubernetes/pull/96355 for more information.")
	}

	pod := canipullPod("canipull-"+uuid.NewString(), req.ACR, req.NodeName)
	pods := kube.CoreV1().Pods(canipullNamespace)
	if _, err := pods.Create(ctx, pod, metav1.CreateOptions{}); err != nil {
		return clierrors.Wrap(clierrors.KindAzureInternal, err, "Failed to check the ACR.")
	}
	defer func() {
		// the request context may already be cancelled
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if err := pods.Delete(cleanupCtx, pod.Name, metav1.DeleteOptions{}); err != nil {
			logger.Error(err, "failed to delete canipull pod", "pod", pod.Name)
		}
	}()

	interval := o.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	var phase corev1.PodPhase
	err = wait.PollUntilContextTimeout(ctx, interval, canipullTimeout, true, func(ctx context.Context) (bool, error) {
		current, err := pods.Get(ctx, pod.Name, metav1.GetOptions{})
		if err != nil {
			return false, err
		}
		phase = current.Status.Phase
		return phase == corev1.PodSucceeded || phase == corev1.PodFailed, nil
	})
	if err != nil {
		return clierrors.Wrap(clierrors.KindAzureInternal, err, "Failed to check the ACR.")
	}

	stream, err := pods.GetLogs(pod.Name, &corev1.PodLogOptions{}).Stream(ctx)
	if err != nil {
		return clierrors.Wrap(clierrors.KindAzureInternal, err, "Failed to check the ACR.")
	}
	defer stream.Close()
	if _, err := io.Copy(o.Out, stream); err != nil {
		return err
	}
	if phase == corev1.PodFailed {
		return clierrors.AzureInternal("Failed to check the ACR: pod %s exited with phase %s.", pod.Name, phase)
	}
	return nil
}

func canipullPod(name, acr, nodeName string) *corev1.Pod {
	root := int64(0)
	directoryOrCreate := corev1.HostPathDirectoryOrCreate
	pod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: canipullNamespace,
		},
		Spec: corev1.PodSpec{
			RestartPolicy: corev1.RestartPolicyNever,
			HostNetwork:   true,
			Containers: []corev1.Container{{
				Name:            name,
				Image:           canipullImage,
				Args:            []string{"-v6", acr},
				SecurityContext: &corev1.SecurityContext{RunAsUser: &root},
				VolumeMounts: []corev1.VolumeMount{
					{Name: "azurejson", MountPath: "/etc/kubernetes"},
					{Name: "sslcerts", MountPath: "/etc/ssl/certs"},
					{Name: "sfcerts", MountPath: "/etc/pki"},
				},
			}},
			Tolerations: []corev1.Toleration{
				{Key: "CriticalAddonsOnly", Operator: corev1.TolerationOpExists},
				{Effect: corev1.TaintEffectNoExecute, Operator: corev1.TolerationOpExists},
			},
			Volumes: []corev1.Volume{
				{Name: "azurejson", VolumeSource: corev1.VolumeSource{HostPath: &corev1.HostPathVolumeSource{Path: "/etc/kubernetes"}}},
				{Name: "sslcerts", VolumeSource: corev1.VolumeSource{HostPath: &corev1.HostPathVolumeSource{Path: "/etc/ssl/certs"}}},
				{Name: "sfcerts", VolumeSource: corev1.VolumeSource{HostPath: &corev1.HostPathVolumeSource{Path: "/etc/pki", Type: &directoryOrCreate}}},
			},
			NodeSelector: map[string]string{osLabel: "linux"},
		},
	}
	if nodeName != "" {
		pod.Spec.Affinity = &corev1.Affinity{
			NodeAffinity: &corev1.NodeAffinity{
				RequiredDuringSchedulingIgnoredDuringExecution: &corev1.NodeSelector{
					NodeSelectorTerms: []corev1.NodeSelectorTerm{{
						MatchExpressions: []corev1.NodeSelectorRequirement{{
							Key:      hostnameLabel,
							Operator: corev1.NodeSelectorOpIn,
							Values:   []string{nodeName},
						}},
					}},
				},
			},
		}
	}
	return pod
}

// NewKubeClient builds a client from a cluster kubeconfig. Users that
// authenticate through an exec plugin (AAD clusters) get an Azure token for
// the AKS server application instead, so no kubelogin binary is needed.
func NewKubeClient(raw []byte, credential azcore.TokenCredential) (kubernetes.Interface, error) {
	config, err := clientcmd.Load(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	var restConfig *rest.Config
	kubeContext := currentContext(config)
	authInfo := config.AuthInfos[kubeContext.AuthInfo]
	if authInfo != nil && authInfo.Exec != nil && credential != nil {
		cluster := config.Clusters[kubeContext.Cluster]
		if cluster == nil {
			return nil, fmt.Errorf("no cluster found in kubeconfig")
		}
		restConfig = &rest.Config{
			Host: cluster.Server,
			TLSClientConfig: rest.TLSClientConfig{
				CAData:     cluster.CertificateAuthorityData,
				ServerName: cluster.TLSServerName,
				Insecure:   cluster.InsecureSkipTLSVerify,
			},
		}
		restConfig.Wrap(func(rt http.RoundTripper) http.RoundTripper {
			return &azureTokenRoundTripper{credential: credential, base: rt}
		})
	} else {
		restConfig, err = clientcmd.NewDefaultClientConfig(*config, &clientcmd.ConfigOverrides{}).ClientConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to build rest config: %w", err)
		}
	}
	return kubernetes.NewForConfig(restConfig)
}

func currentContext(config *clientcmdapi.Config) *clientcmdapi.Context {
	if c, ok := config.Contexts[config.CurrentContext]; ok && c != nil {
		return c
	}
	return &clientcmdapi.Context{}
}

// azureTokenRoundTripper authenticates requests with an Azure token for the
// AKS server application.
type azureTokenRoundTripper struct {
	credential azcore.TokenCredential
	base       http.RoundTripper
}

func (rt *azureTokenRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := rt.credential.GetToken(req.Context(), policy.TokenRequestOptions{
		Scopes: []string{runcommand.AKSServerAppID + "/.default"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get Azure token: %w", err)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token.Token)
	return rt.base.RoundTrip(clone)
}

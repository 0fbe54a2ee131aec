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

package kubeconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/Azure/kubelogin/pkg/cmd"
)

// LoginModes accepted by Convert.
var LoginModes = []string{"devicecode", "interactive", "spn", "ropc", "msi", "azurecli", "azd", "workloadidentity", "azurepipelines"}

// Convert rewrites the exec plugin of every AAD user in the kubeconfig at
// path to the given kubelogin login mode, then points the plugin at the
// kubelogin embedded in this binary.
func Convert(ctx context.Context, path, loginMode string) error {
	kubeloginCmd := cmd.NewRootCmd("aksctl")
	kubeloginCmd.SetArgs([]string{"convert-kubeconfig", "-l", loginMode, "--kubeconfig", path})
	if err := kubeloginCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("failed to convert kubeconfig with kubelogin: %w", err)
	}

	config, err := clientcmd.LoadFromFile(path)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}
	useEmbeddedKubelogin(config, execPath)
	if err := clientcmd.WriteToFile(*config, path); err != nil {
		return fmt.Errorf("failed to write updated kubeconfig: %w", err)
	}
	return nil
}

func useEmbeddedKubelogin(config *clientcmdapi.Config, execPath string) {
	for _, authInfo := range config.AuthInfos {
		if authInfo.Exec == nil || authInfo.Exec.Command != "kubelogin" {
			continue
		}
		authInfo.Exec.Command = execPath
		authInfo.Exec.Args = append([]string{"kubelogin"}, authInfo.Exec.Args...)
		authInfo.Exec.InstallHint = fmt.Sprintf("\n%s is not installed or not accessible.\n\nThe kubeconfig is configured to use: %s\n", filepath.Base(execPath), execPath)
	}
}

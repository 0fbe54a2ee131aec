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

// Package kubeconfig merges cluster credentials into a local kubeconfig file.
package kubeconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/prompt"
)

// StdoutPath prints the kubeconfig instead of merging it.
const StdoutPath = "-"

const adminUserPrefix = "clusterAdmin"

// DefaultPath is ~/.kube/config.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".kube", "config")
	}
	return filepath.Join(home, ".kube", "config")
}

// ResolvePath swaps the default path for the first KUBECONFIG entry when the
// variable is set. Explicit paths are returned untouched.
func ResolvePath(ctx context.Context, path string) string {
	logger := logr.FromContextOrDiscard(ctx)
	env, ok := os.LookupEnv(clientcmd.RecommendedConfigPathEnvVar)
	if !ok || path != DefaultPath() {
		return path
	}
	first := filepath.SplitList(env)
	if len(first) == 0 || first[0] == "" {
		logger.Info("WARNING: invalid path defined in KUBECONFIG", "path", env)
		return path
	}
	logger.V(1).Info("default path replaced by KUBECONFIG", "default", path, "path", first[0])
	return first[0]
}

// Options control how credentials are written.
type Options struct {
	// Path is the kubeconfig file, or "-" to print.
	Path string
	// Overwrite replaces same-named entries without asking.
	Overwrite bool
	// ContextName renames the incoming context and its cluster.
	ContextName string
	// Prompter asks before replacing a different same-named entry.
	Prompter prompt.Prompter
	// Stdout receives the kubeconfig when Path is "-".
	Stdout io.Writer
}

// PrintOrMerge prints raw when the path is "-", otherwise merges it into the
// kubeconfig at opts.Path, creating the file with owner-only permissions.
func PrintOrMerge(ctx context.Context, raw []byte, opts Options) error {
	if opts.Path == StdoutPath {
		out := opts.Stdout
		if out == nil {
			out = os.Stdout
		}
		_, err := fmt.Fprintln(out, string(raw))
		return err
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to create directory for %s", opts.Path))
	}
	f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_RDONLY, 0o600)
	if err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to open %s", opts.Path))
	}
	if err := f.Close(); err != nil {
		return err
	}

	return MergeFile(ctx, opts.Path, raw, opts)
}

// MergeFile merges raw into the kubeconfig stored at path.
func MergeFile(ctx context.Context, path string, raw []byte, opts Options) error {
	logger := logr.FromContextOrDiscard(ctx)

	existingRaw, err := os.ReadFile(path)
	if err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to read %s", path))
	}
	var existing *clientcmdapi.Config
	if len(strings.TrimSpace(string(existingRaw))) > 0 {
		existing, err = clientcmd.Load(existingRaw)
		if err != nil {
			return clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to load existing configuration from %s", path))
		}
	}
	addition, err := clientcmd.Load(raw)
	if err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, "failed to load additional configuration")
	}

	merged, err := Merge(existing, addition, opts)
	if err != nil {
		return err
	}

	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSymlink == 0 {
		if perm := info.Mode().Perm(); perm != 0o600 {
			logger.Info(fmt.Sprintf("WARNING: %s has permissions \"%o\".\nIt should be readable and writable only by its owner.", path, perm))
		}
	}

	if err := clientcmd.WriteToFile(*merged, path); err != nil {
		return clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to write %s", path))
	}
	logger.Info(fmt.Sprintf("Merged %q as current context in %s", merged.CurrentContext, path))
	return nil
}

// Merge folds addition into existing. A nil existing config is replaced by
// the addition. The addition's current context becomes the current context.
func Merge(existing, addition *clientcmdapi.Config, opts Options) (*clientcmdapi.Config, error) {
	if addition == nil {
		return nil, clierrors.FileOperation("failed to load additional configuration")
	}
	if opts.ContextName != "" {
		renameContext(addition, opts.ContextName)
	}
	markAdmin(addition)

	if existing == nil {
		return addition, nil
	}

	c := &conflicts{overwrite: opts.Overwrite, prompter: opts.Prompter}
	if err := mergeEntries(c, "clusters", existing.Clusters, addition.Clusters); err != nil {
		return nil, err
	}
	if err := mergeEntries(c, "users", existing.AuthInfos, addition.AuthInfos); err != nil {
		return nil, err
	}
	if err := mergeEntries(c, "contexts", existing.Contexts, addition.Contexts); err != nil {
		return nil, err
	}
	existing.CurrentContext = addition.CurrentContext
	return existing, nil
}

// renameContext renames the current context of cfg and the cluster it points to.
func renameContext(cfg *clientcmdapi.Config, name string) {
	oldCtx := cfg.CurrentContext
	kctx, ok := cfg.Contexts[oldCtx]
	if !ok {
		for n, c := range cfg.Contexts {
			oldCtx, kctx = n, c
			break
		}
	}
	if kctx == nil {
		return
	}
	if cluster, ok := cfg.Clusters[kctx.Cluster]; ok {
		delete(cfg.Clusters, kctx.Cluster)
		cfg.Clusters[name] = cluster
	}
	kctx.Cluster = name
	delete(cfg.Contexts, oldCtx)
	cfg.Contexts[name] = kctx
	cfg.CurrentContext = name
}

// markAdmin suffixes admin contexts with "-admin" so they sit next to the
// user context of the same cluster.
func markAdmin(cfg *clientcmdapi.Config) {
	for name, kctx := range cfg.Contexts {
		if !strings.HasPrefix(kctx.AuthInfo, adminUserPrefix) || strings.HasSuffix(name, "-admin") {
			continue
		}
		adminName := name + "-admin"
		delete(cfg.Contexts, name)
		cfg.Contexts[adminName] = kctx
		cfg.CurrentContext = adminName
		return
	}
}

type conflicts struct {
	overwrite bool
	prompter  prompt.Prompter
}

func (c *conflicts) replace(name string) (bool, error) {
	if c.overwrite {
		return true, nil
	}
	if c.prompter == nil {
		return false, nil
	}
	ok, err := c.prompter.Confirm(fmt.Sprintf("A different object named %s already exists in your kubeconfig file.\nOverwrite?", name), false)
	if errors.Is(err, prompt.ErrNoTTY) {
		return false, nil
	}
	return ok, err
}

func mergeEntries[T any](c *conflicts, kind string, existing, addition map[string]T) error {
	for name, entry := range addition {
		if current, found := existing[name]; found && !equality.Semantic.DeepEqual(current, entry) {
			ok, err := c.replace(name)
			if err != nil {
				return err
			}
			if !ok {
				return clierrors.FileOperation("A different object named %s already exists in %s in your kubeconfig file.", name, kind)
			}
		}
		existing[name] = entry
	}
	return nil
}

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

// Package runcommand runs commands inside a cluster through the managed
// cluster command API.
package runcommand

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/shlex"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerservice/armcontainerservice"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/azure/client"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
)

// AKSServerAppID is the AAD server application shared by every managed cluster.
const AKSServerAppID = "6dae42f8-4368-4678-94ff-3960e28e3630"

const (
	defaultPollInterval = 5 * time.Second
	resultTimeout       = 300 * time.Second
)

var commandIDPattern = regexp.MustCompile(`commandResults/(\w+)`)

// Request is a command to run.
type Request struct {
	Command string
	// Files to attach. A single "." attaches the working directory.
	Files  []string
	NoWait bool
}

// Runner submits commands and fetches their results.
type Runner struct {
	Clusters   client.ManagedClustersClient
	Credential azcore.TokenCredential
	// Out receives progress notes for commands still running.
	Out          io.Writer
	PollInterval time.Duration
}

// Run submits req against the cluster and waits for the result unless
// req.NoWait is set, in which case nil is returned after the status is
// printed.
func (r *Runner) Run(ctx context.Context, resourceGroup, name string, req Request) (*armcontainerservice.RunCommandResult, error) {
	logger := logr.FromContextOrDiscard(ctx)

	if req.Command == "" {
		return nil, clierrors.InvalidArgumentValue("Command cannot be empty.")
	}
	if _, err := shlex.Split(req.Command); err != nil {
		return nil, clierrors.InvalidArgumentValue("failed to parse command %q: %v", req.Command, err)
	}

	mc, err := r.Clusters.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}

	payload := armcontainerservice.RunCommandRequest{Command: to.Ptr(req.Command)}
	attachment, err := BuildContext(ctx, req.Files)
	if err != nil {
		return nil, err
	}
	if attachment != "" {
		payload.Context = to.Ptr(attachment)
	}

	if mc.Properties != nil && mc.Properties.AADProfile != nil && helpers.Deref(mc.Properties.AADProfile.Managed) {
		logger.V(1).Info("acquiring cluster token for managed AAD cluster")
		token, err := r.Credential.GetToken(ctx, policy.TokenRequestOptions{Scopes: []string{AKSServerAppID + "/.default"}})
		if err != nil {
			return nil, clierrors.Wrap(clierrors.KindUnauthorized, err, "failed to acquire a token for the cluster")
		}
		payload.ClusterToken = to.Ptr(token.Token)
	}

	poller, err := r.Clusters.BeginRunCommand(ctx, resourceGroup, name, payload, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}

	if req.NoWait {
		id, err := commandID(poller)
		if err != nil {
			return nil, err
		}
		_, err = r.Result(ctx, resourceGroup, name, id)
		return nil, err
	}

	interval := r.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	waitCtx, cancel := context.WithTimeout(ctx, resultTimeout)
	defer cancel()
	resp, err := client.PollUntilDone(waitCtx, poller, false, interval)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	return &resp.RunCommandResult, nil
}

// Result fetches a command result. Commands still running are reported on
// Out and yield a nil result.
func (r *Runner) Result(ctx context.Context, resourceGroup, name, id string) (*armcontainerservice.RunCommandResult, error) {
	if id == "" {
		return nil, clierrors.InvalidArgumentValue("CommandID cannot be empty.")
	}
	resp, err := r.Clusters.GetCommandResult(ctx, resourceGroup, name, id, nil)
	if err != nil {
		return nil, clierrors.MapAzureError(err)
	}
	props := resp.Properties
	if props == nil {
		fmt.Fprintf(r.Out, "failed to fetch command result for command id: %s\n", id)
		return nil, nil
	}
	if state := helpers.Deref(props.ProvisioningState); state == "Succeeded" || state == "Failed" {
		return &resp.RunCommandResult, nil
	}
	startedAt := ""
	if props.StartedAt != nil {
		startedAt = props.StartedAt.Format(time.RFC3339)
	}
	fmt.Fprintf(r.Out, "command id: %s, started at: %s, status: %s\n", id, startedAt, helpers.Deref(props.ProvisioningState))
	fmt.Fprintf(r.Out, "Please use command \"aksctl cluster command-result -g %s -n %s -i %s\" to get the future execution result\n", resourceGroup, name, id)
	return nil, nil
}

// Print renders a finished or running result for a terminal.
func Print(w io.Writer, result *armcontainerservice.RunCommandResult) {
	if result == nil || result.Properties == nil {
		return
	}
	props := result.Properties
	switch state := helpers.Deref(props.ProvisioningState); state {
	case "Succeeded":
		fmt.Fprintf(w, "command started at %s, finished at %s with exitcode=%d\n", formatTime(props.StartedAt), formatTime(props.FinishedAt), helpers.Deref(props.ExitCode))
		fmt.Fprintln(w, helpers.Deref(props.Logs))
	case "Failed":
		fmt.Fprintf(w, "command failed with reason: %s\n", helpers.Deref(props.Reason))
	default:
		fmt.Fprintf(w, "command is in %s state\n", state)
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

// commandID extracts the command id from the polling location of a submitted
// command.
func commandID[T any](poller *runtime.Poller[T]) (string, error) {
	token, err := poller.ResumeToken()
	if err != nil {
		return "", clierrors.CLIInternal("failed to read the command polling location: %v", err)
	}
	var state map[string]any
	if err := json.Unmarshal([]byte(token), &state); err == nil {
		for _, key := range []string{"pollURL", "location", "asyncURL"} {
			if u, ok := state[key].(string); ok {
				if m := commandIDPattern.FindStringSubmatch(u); m != nil {
					return m[1], nil
				}
			}
		}
	}
	if m := commandIDPattern.FindStringSubmatch(token); m != nil {
		return m[1], nil
	}
	return "", clierrors.CLIInternal("failed to find the command id in the polling location")
}

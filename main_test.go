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

package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd, err := newRootCommand(context.Background())
	require.NoError(t, err)

	groups := map[string][]string{}
	for _, c := range cmd.Commands() {
		if c.Hidden {
			continue
		}
		groups[c.GroupID] = append(groups[c.GroupID], c.Name())
	}
	assert.ElementsMatch(t, []string{"cluster", "nodepool", "snapshot", "addons"}, groups[mainGroupID])
	assert.ElementsMatch(t, []string{"kubelogin", "version"}, groups[helperGroupID])
}

func TestVersionCommand(t *testing.T) {
	cmd, err := newRootCommand(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version", "-o", "json"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"apiVersion": "2022-03-01"`)
	assert.Contains(t, out.String(), `"commit": "unknown"`)
}

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

package sshkey

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

func TestResolveGeneratesAndReuses(t *testing.T) {
	dir := t.TempDir()
	pubPath := filepath.Join(dir, "id_rsa.pub")

	_, err := Resolve(context.Background(), pubPath, false)
	require.Error(t, err)
	assert.True(t, clierrors.IsKind(err, clierrors.KindInvalidArgumentValue))

	generated, err := Resolve(context.Background(), pubPath, true)
	require.NoError(t, err)
	assert.True(t, IsValidRSAPublicKey(generated))

	info, err := os.Stat(filepath.Join(dir, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	fromFile, err := Resolve(context.Background(), pubPath, false)
	require.NoError(t, err)
	assert.Equal(t, generated, fromFile)

	// the private key is reused when only the public half is missing
	require.NoError(t, os.Remove(pubPath))
	regenerated, err := Resolve(context.Background(), pubPath, true)
	require.NoError(t, err)
	assert.Equal(t, generated, regenerated)
}

func TestResolveNonPubPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mykey")

	_, err := Resolve(context.Background(), path, true)
	require.NoError(t, err)
	_, err = os.Stat(path + ".private")
	require.NoError(t, err)
}

func TestResolveLiteralKey(t *testing.T) {
	dir := t.TempDir()
	key, err := Generate(filepath.Join(dir, "k"), filepath.Join(dir, "k.pub"))
	require.NoError(t, err)

	got, err := Resolve(context.Background(), "  "+key+"\n", false)
	require.NoError(t, err)
	assert.Equal(t, key, got)
}

func TestResolveInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.pub")
	require.NoError(t, os.WriteFile(path, []byte("ssh-ed25519 AAAA"), 0o644))

	_, err := Resolve(context.Background(), path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid or non-existent")
}

func TestIsValidRSAPublicKey(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		want bool
	}{
		{name: "empty", key: "", want: false},
		{name: "garbage", key: "ssh-rsa notbase64!", want: false},
		{name: "path", key: "~/.ssh/id_rsa.pub", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidRSAPublicKey(tc.key))
		})
	}
}

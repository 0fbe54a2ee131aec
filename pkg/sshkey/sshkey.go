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

// Package sshkey resolves the --ssh-key-value flag into an authorized key line.
package sshkey

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/crypto/ssh"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/helpers"
	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/models"
)

const bitSize = 2048

// IsValidRSAPublicKey reports whether key is a single ssh-rsa authorized key line.
func IsValidRSAPublicKey(key string) bool {
	pub, _, _, rest, err := ssh.ParseAuthorizedKey([]byte(strings.TrimSpace(key)))
	if err != nil || len(strings.TrimSpace(string(rest))) > 0 {
		return false
	}
	return pub.Type() == ssh.KeyAlgoRSA
}

// Resolve turns the flag value into key material. An empty value means the
// default public key file. A path that exists is read. Anything else must be
// a key, unless generate is set, in which case a key pair is written at the
// implied path and its public half returned.
func Resolve(ctx context.Context, value string, generate bool) (string, error) {
	logger := logr.FromContextOrDiscard(ctx)

	stringOrFile := value
	if stringOrFile == "" {
		stringOrFile = helpers.ExpandUser(models.DefaultSSHKeyFile)
	}

	if _, err := os.Stat(stringOrFile); err == nil {
		logger.V(1).Info("Use existing SSH public key file", "path", stringOrFile)
		content, err := os.ReadFile(stringOrFile)
		if err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to read %s", stringOrFile))
		}
		return validate(string(content))
	}

	if IsValidRSAPublicKey(stringOrFile) {
		return strings.TrimSpace(stringOrFile), nil
	}

	if !generate {
		return "", clierrors.InvalidArgumentValue("An RSA key file or key value must be supplied to SSH Key Value. You can use --generate-ssh-keys to let CLI generate one for you")
	}

	publicPath := stringOrFile
	var privatePath string
	if strings.EqualFold(filepath.Ext(publicPath), ".pub") {
		privatePath = publicPath[:len(publicPath)-4]
	} else {
		privatePath = publicPath + ".private"
	}
	content, err := Generate(privatePath, publicPath)
	if err != nil {
		return "", err
	}
	logger.Info(fmt.Sprintf("SSH key files '%s' and '%s' have been generated under ~/.ssh to allow SSH access to the VM. "+
		"If using machines without permanent storage, back up your keys to a safe location", privatePath, publicPath))
	return content, nil
}

func validate(content string) (string, error) {
	if !IsValidRSAPublicKey(content) {
		return "", clierrors.InvalidArgumentValue("Provided ssh key (%s) is invalid or non-existent", strings.TrimSpace(content))
	}
	return strings.TrimSpace(content), nil
}

// Generate writes an RSA key pair, reusing an existing private key, and
// returns the public key in authorized key format.
func Generate(privatePath, publicPath string) (string, error) {
	var key *rsa.PrivateKey

	existing, err := os.ReadFile(privatePath)
	switch {
	case err == nil:
		block, _ := pem.Decode(existing)
		if block == nil {
			return "", clierrors.FileOperation("Private key file %s is not PEM encoded", privatePath)
		}
		parsed, err := ssh.ParseRawPrivateKey(existing)
		if err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to parse private key %s", privatePath))
		}
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return "", clierrors.FileOperation("Private key file %s is not an RSA key", privatePath)
		}
		key = rsaKey
	case errors.Is(err, os.ErrNotExist):
		if key, err = rsa.GenerateKey(rand.Reader, bitSize); err != nil {
			return "", fmt.Errorf("failed to generate private key: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(privatePath), 0o700); err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to create %s", filepath.Dir(privatePath)))
		}
		data := pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		})
		if err := os.WriteFile(privatePath, data, 0o600); err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to write %s", privatePath))
		}
	default:
		return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to read %s", privatePath))
	}

	pub, err := ssh.NewPublicKey(&key.PublicKey)
	if err != nil {
		return "", fmt.Errorf("failed to derive public key: %w", err)
	}
	authorized := strings.TrimSpace(string(ssh.MarshalAuthorizedKey(pub)))
	if err := os.WriteFile(publicPath, []byte(authorized+"\n"), 0o644); err != nil {
		return "", clierrors.Wrap(clierrors.KindFileOperation, err, fmt.Sprintf("failed to write %s", publicPath))
	}
	return authorized, nil
}

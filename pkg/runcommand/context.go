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

package runcommand

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-logr/logr"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

// BuildContext zips files into the base64 attachment sent with a command.
// A single "." attaches the working directory with its layout kept; other
// files are flattened to their base names.
func BuildContext(ctx context.Context, files []string) (string, error) {
	if len(files) == 0 {
		return "", nil
	}

	entries := map[string]string{}
	if len(files) == 1 && files[0] == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, "failed to read the current directory")
		}
		err = filepath.WalkDir(cwd, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(cwd, path)
			if err != nil {
				return err
			}
			entries[path] = filepath.ToSlash(rel)
			return nil
		})
		if err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, "failed to walk the current directory")
		}
	} else {
		for _, file := range files {
			if file == "." {
				return "", clierrors.InvalidArgumentValue(". is used to attach current folder, not expecting other attachements.")
			}
			info, err := os.Stat(file)
			if err != nil || !info.Mode().IsRegular() {
				return "", clierrors.InvalidArgumentValue("%s is not valid file, or not accessable.", file)
			}
			entries[file] = filepath.Base(file)
		}
	}

	if len(entries) == 0 {
		logr.FromContextOrDiscard(ctx).V(1).Info("no files to attach")
		return "", nil
	}

	paths := make([]string, 0, len(entries))
	for p := range entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range paths {
		if err := addFile(zw, p, entries[p]); err != nil {
			return "", clierrors.Wrap(clierrors.KindFileOperation, err, "failed to attach "+p)
		}
	}
	if err := zw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func addFile(zw *zip.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}

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

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// FinishedPoller returns a poller that is already done and yields body, with
// properties.provisioningState set to Succeeded when body has properties.
func FinishedPoller[T any](t *testing.T, url string, body any) *runtime.Poller[T] {
	t.Helper()
	raw := []byte("{}")
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
		var withState map[string]any
		require.NoError(t, json.Unmarshal(raw, &withState))
		if props, ok := withState["properties"].(map[string]any); ok {
			props["provisioningState"] = "Succeeded"
		}
		raw, err = json.Marshal(withState)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPut, url, nil)
	require.NoError(t, err)
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(bytes.NewReader(raw)),
		Request:    req,
	}
	poller, err := runtime.NewPoller[T](resp, runtime.NewPipeline("aksctl", "test", runtime.PipelineOptions{}, nil), nil)
	require.NoError(t, err)
	return poller
}

// SinglePage returns a pager that yields page once.
func SinglePage[T any](page T) *runtime.Pager[T] {
	return runtime.NewPager(runtime.PagingHandler[T]{
		More: func(T) bool { return false },
		Fetcher: func(context.Context, *T) (T, error) {
			return page, nil
		},
	})
}

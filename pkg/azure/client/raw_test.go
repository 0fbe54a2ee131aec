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

package client

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

type fakeResponse struct {
	status int
	body   string
}

type fakeTransport struct {
	requests  []*http.Request
	bodies    []string
	responses []fakeResponse
}

func (f *fakeTransport) Do(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req)
	body := ""
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		body = string(b)
	}
	f.bodies = append(f.bodies, body)

	r := fakeResponse{status: http.StatusOK, body: "{}"}
	if len(f.responses) > 0 {
		r = f.responses[0]
		f.responses = f.responses[1:]
	}
	return &http.Response{
		StatusCode: r.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(r.body)),
		Request:    req,
	}, nil
}

func newTestRawClient(transport *fakeTransport, perCall ...policy.Policy) RawClient {
	pl := runtime.NewPipeline("test", "v0.0.1", runtime.PipelineOptions{}, &policy.ClientOptions{
		Transport:       transport,
		Retry:           policy.RetryOptions{MaxRetries: -1},
		PerCallPolicies: perCall,
	})
	return newRawClientFromPipeline(pl, "https://management.azure.com/")
}

func TestRawClientSend(t *testing.T) {
	testCases := []struct {
		name        string
		method      string
		url         string
		body        any
		options     *RawRequestOptions
		response    fakeResponse
		expectURL   string
		expectBody  string
		expectError string
	}{
		{
			name:      "relative url is resolved against the endpoint",
			method:    http.MethodGet,
			url:       "/subscriptions/sub/locations?api-version=2019-11-01",
			response:  fakeResponse{status: http.StatusOK, body: `{"value":[]}`},
			expectURL: "https://management.azure.com/subscriptions/sub/locations?api-version=2019-11-01",
		},
		{
			name:       "body is sent as json",
			method:     http.MethodPut,
			url:        "https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Insights/dataCollectionRules/dcr?api-version=2022-06-01",
			body:       map[string]any{"location": "eastus"},
			response:   fakeResponse{status: http.StatusCreated, body: `{}`},
			expectURL:  "https://management.azure.com/subscriptions/sub/resourceGroups/rg/providers/Microsoft.Insights/dataCollectionRules/dcr?api-version=2022-06-01",
			expectBody: `{"location":"eastus"}`,
		},
		{
			name:        "unexpected status is a response error",
			method:      http.MethodDelete,
			url:         "/subscriptions/sub/thing?api-version=1",
			options:     &RawRequestOptions{ExpectedStatusCodes: []int{http.StatusOK}},
			response:    fakeResponse{status: http.StatusNoContent},
			expectURL:   "https://management.azure.com/subscriptions/sub/thing?api-version=1",
			expectError: "204",
		},
		{
			name:        "server errors surface",
			method:      http.MethodGet,
			url:         "/subscriptions/sub/thing?api-version=1",
			response:    fakeResponse{status: http.StatusNotFound, body: `{"error":{"code":"ResourceNotFound","message":"gone"}}`},
			expectURL:   "https://management.azure.com/subscriptions/sub/thing?api-version=1",
			expectError: "ResourceNotFound",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &fakeTransport{responses: []fakeResponse{tc.response}}
			c := newTestRawClient(transport)

			_, err := c.Send(context.Background(), tc.method, tc.url, tc.body, tc.options)
			if tc.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectError)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, transport.requests, 1)
			assert.Equal(t, tc.method, transport.requests[0].Method)
			assert.Equal(t, tc.expectURL, transport.requests[0].URL.String())
			if tc.expectBody != "" {
				assert.JSONEq(t, tc.expectBody, transport.bodies[0])
			}
		})
	}
}

func TestRawClientNotFoundIsDetectable(t *testing.T) {
	transport := &fakeTransport{responses: []fakeResponse{{status: http.StatusNotFound, body: `{"error":{"code":"NotFound"}}`}}}
	_, err := newTestRawClient(transport).Send(context.Background(), http.MethodGet, "/x?api-version=1", nil, nil)
	require.Error(t, err)
	assert.True(t, IsNotFoundErr(err))
}

func TestCustomHeadersPolicy(t *testing.T) {
	assert.Nil(t, NewCustomHeadersPolicy(nil))

	transport := &fakeTransport{responses: []fakeResponse{{status: http.StatusOK}, {status: http.StatusOK}}}
	c := newTestRawClient(transport, NewCustomHeadersPolicy(map[string]string{"EnableAzureDiskFileCSIDriver": "true"}))

	_, err := c.Send(context.Background(), http.MethodGet, "/subscriptions/s/resourceGroups/r/providers/Microsoft.ContainerService/managedClusters/c?api-version=1", nil, nil)
	require.NoError(t, err)
	_, err = c.Send(context.Background(), http.MethodGet, "/subscriptions/s/resourceGroups/r?api-version=1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "true", transport.requests[0].Header.Get("EnableAzureDiskFileCSIDriver"))
	assert.Empty(t, transport.requests[1].Header.Get("EnableAzureDiskFileCSIDriver"))
}

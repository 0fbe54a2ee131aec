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
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

const (
	moduleName    = "github.com/Azure/ARO-HCP/tooling/aksctl"
	moduleVersion = "v0.1.0"
)

// RawRequestOptions tunes a single RawClient.Send call.
type RawRequestOptions struct {
	// ExpectedStatusCodes defaults to 200, 201, 202 and 204.
	ExpectedStatusCodes []int
}

// RawClient sends hand-built JSON bodies to ARM for resource types and
// api-versions the typed SDK clients in go.mod don't cover.
//
//go:generate $MOCKGEN -typed -source=raw.go -destination=mock_raw.go -package client RawClient
type RawClient interface {
	// Send issues method against url. A url starting with "/" is resolved
	// against the resource manager endpoint. body is marshalled to JSON unless nil.
	Send(ctx context.Context, method string, url string, body any, options *RawRequestOptions) ([]byte, error)
	// Endpoint is the resource manager endpoint of the selected cloud.
	Endpoint() string
}

type rawClient struct {
	pipeline runtime.Pipeline
	endpoint string
}

var _ RawClient = (*rawClient)(nil)

// NewRawClient builds a RawClient on the same ARM pipeline the typed clients use.
func NewRawClient(credential azcore.TokenCredential, options *arm.ClientOptions) (RawClient, error) {
	c, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create ARM client: %w", err)
	}
	return &rawClient{pipeline: c.Pipeline(), endpoint: c.Endpoint()}, nil
}

func newRawClientFromPipeline(pipeline runtime.Pipeline, endpoint string) RawClient {
	return &rawClient{pipeline: pipeline, endpoint: endpoint}
}

func (c *rawClient) Endpoint() string {
	return c.endpoint
}

func (c *rawClient) Send(ctx context.Context, method string, url string, body any, options *RawRequestOptions) ([]byte, error) {
	if options == nil {
		options = &RawRequestOptions{}
	}
	if strings.HasPrefix(url, "/") {
		url = strings.TrimSuffix(c.endpoint, "/") + url
	}

	req, err := runtime.NewRequest(ctx, method, url)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request for %s: %w", method, url, err)
	}
	req.Raw().Header.Set("Accept", "application/json")
	if body != nil {
		if err := runtime.MarshalAsJSON(req, body); err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	resp, err := c.pipeline.Do(req)
	if err != nil {
		return nil, err
	}
	expected := options.ExpectedStatusCodes
	if len(expected) == 0 {
		expected = []int{http.StatusOK, http.StatusCreated, http.StatusAccepted, http.StatusNoContent}
	}
	if !runtime.HasStatusCode(resp, expected...) {
		return nil, runtime.NewResponseError(resp)
	}
	return runtime.Payload(resp)
}

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
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

// customHeadersPolicy forwards --aks-custom-headers to the container service resource provider.
type customHeadersPolicy struct {
	headers http.Header
}

// NewCustomHeadersPolicy returns nil when there is nothing to forward.
func NewCustomHeadersPolicy(headers map[string]string) policy.Policy {
	if len(headers) == 0 {
		return nil
	}
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &customHeadersPolicy{headers: h}
}

func (p *customHeadersPolicy) Do(req *policy.Request) (*http.Response, error) {
	if strings.Contains(strings.ToLower(req.Raw().URL.Path), "/providers/microsoft.containerservice/") {
		for k, values := range p.headers {
			for _, v := range values {
				req.Raw().Header.Set(k, v)
			}
		}
	}
	return req.Next()
}

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

package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/ARO-HCP/tooling/aksctl/pkg/clierrors"
)

// ExtractOptions controls how ExtractList and ExtractKeyValues split a comma separated flag.
type ExtractOptions struct {
	// Strip trims whitespace around the whole input, every item, and each key and value.
	Strip bool
	// AllowEmptyValue accepts "key" and "key=" items.
	AllowEmptyValue bool
	// AppendToSameKey joins repeated keys as "v1,v2" instead of keeping the last one.
	AppendToSameKey bool
}

// ExtractList splits a comma separated value. Empty input yields def.
func ExtractList(raw string, strip bool, def []string) []string {
	if strip {
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if strip {
			item = strings.TrimSpace(item)
		}
		out = append(out, item)
	}
	return out
}

// ExtractKeyValues parses "k1=v1,k2=v2". Empty input yields def.
func ExtractKeyValues(raw string, opts ExtractOptions, def map[string]string) (map[string]string, error) {
	if opts.Strip {
		raw = strings.TrimSpace(raw)
	}
	if raw == "" {
		return def, nil
	}
	out := map[string]string{}
	for _, item := range strings.Split(raw, ",") {
		if opts.Strip {
			item = strings.TrimSpace(item)
		}
		kv := strings.Split(item, "=")
		if len(kv) > 2 {
			return nil, clierrors.InvalidArgumentValue(
				"The format of '%s' in '%s' is incorrect, correct format should be 'Key1=Value1,Key2=Value2'.", item, raw)
		}
		key, value := kv[0], ""
		if len(kv) == 2 {
			value = kv[1]
		}
		if !opts.AllowEmptyValue && strings.TrimSpace(value) == "" {
			return nil, clierrors.InvalidArgumentValue(
				"Empty value not allowed. The value '%s' of key '%s' in '%s' is empty. Raw input '%s'.", value, key, item, raw)
		}
		if opts.Strip {
			key = strings.TrimSpace(key)
			value = strings.TrimSpace(value)
		}
		if prev, ok := out[key]; ok && opts.AppendToSameKey {
			value = fmt.Sprintf("%s,%s", prev, value)
		}
		out[key] = value
	}
	return out, nil
}

// CustomHeaders parses --aks-custom-headers into request headers. Repeated
// keys are joined.
func CustomHeaders(raw string) (http.Header, error) {
	kv, err := ExtractKeyValues(raw, ExtractOptions{Strip: true, AppendToSameKey: true}, nil)
	if err != nil {
		return nil, err
	}
	h := http.Header{}
	for k, v := range kv {
		h.Set(k, v)
	}
	return h, nil
}

// Deref returns the value p points to, or the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

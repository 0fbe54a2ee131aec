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
	"strings"
	"unicode"
)

// NameKind selects the naming rules applied by SanitizeName.
type NameKind int

const (
	NameKindDCR NameKind = iota
	NameKindDCE
	NameKindRuleGroup
)

// Maximum name lengths accepted by the monitor resource providers.
const (
	MaxDCRNameLength       = 64
	MaxDCENameLength       = 43
	MaxRuleGroupNameLength = 260
)

// SanitizeName trims name to the length allowed for kind and strips trailing
// characters that are not letters or digits. DCE names cannot contain underscores.
func SanitizeName(name string, kind NameKind) string {
	maxLen := MaxDCRNameLength
	switch kind {
	case NameKindDCE:
		maxLen = MaxDCENameLength
		name = strings.ReplaceAll(name, "_", "")
	case NameKindRuleGroup:
		maxLen = MaxRuleGroupNameLength
	}
	if len(name) > maxLen {
		name = name[:maxLen]
	}
	return strings.TrimRightFunc(name, func(r rune) bool {
		return r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r))
	})
}

// SanitizeWorkspaceResourceID normalizes a log analytics workspace id to a single leading slash and no trailing slash.
func SanitizeWorkspaceResourceID(id string) string {
	id = strings.TrimSpace(id)
	if !strings.HasPrefix(id, "/") {
		id = "/" + id
	}
	return strings.TrimRight(id, "/")
}

// Truncate returns at most n bytes of s.
func Truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

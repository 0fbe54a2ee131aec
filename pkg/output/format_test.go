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

package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pool struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func poolTable() *Table[pool] {
	return &Table[pool]{
		Kind: "Node pools",
		Columns: []Column[pool]{
			{Header: "NAME", Field: func(p pool) string { return p.Name }},
			{Header: "COUNT", Field: func(p pool) string { return strings.Repeat("*", p.Count) }},
		},
	}
}

func TestValidateFormat(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "json", input: "json", want: FormatJSON},
		{name: "upper case yaml", input: "YAML", want: FormatYAML},
		{name: "table", input: "table", want: FormatTable},
		{name: "none", input: "none", want: FormatNone},
		{name: "invalid", input: "tsv", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateFormat(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTableFormat(t *testing.T) {
	items := []pool{{Name: "nodepool1", Count: 3}, {Name: "np2", Count: 1}}

	out, err := poolTable().Format(items, FormatTable)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, lines[1], "nodepool1")
	assert.Contains(t, lines[1], "***")

	out, err = poolTable().Format(items, FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["))
	assert.Contains(t, out, `"name": "np2"`)

	out, err = poolTable().Format(items, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, out, "- count: 3")
}

func TestTableEmpty(t *testing.T) {
	out, err := poolTable().Format(nil, FormatTable)
	require.NoError(t, err)
	assert.Equal(t, "No node pools found\n", out)

	out, err = poolTable().Format(nil, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, pool{Name: "a"}, FormatNone))
	assert.Empty(t, buf.String())

	require.NoError(t, Print(&buf, nil, FormatJSON))
	assert.Empty(t, buf.String())

	require.NoError(t, Print(&buf, pool{Name: "a", Count: 2}, FormatTable))
	assert.Equal(t, "{\n  \"name\": \"a\",\n  \"count\": 2\n}\n", buf.String())
}

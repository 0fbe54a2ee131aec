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

package version

// Info describes the build of aksctl.
type Info struct {
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	// APIVersion is the container service API the clients talk.
	APIVersion string `json:"apiVersion"`
}

var (
	// set at build time with -ldflags "-X ..."
	commit    = "unknown"
	buildDate = "unknown"
)

func Get(apiVersion string) Info {
	return Info{
		Commit:     commit,
		BuildDate:  buildDate,
		APIVersion: apiVersion,
	}
}
